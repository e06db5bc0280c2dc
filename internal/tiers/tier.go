package tiers

// Multiplier and fee rates are fixed-point basis points so tier math stays
// exact under repeated application. 10000 basis points == 1.0.
const BasisPointScale = 10000

// Tier is one ascension band in the progression ladder. Tables are ordered
// by ascending MinLevel and never mutated after load.
type Tier struct {
	ID               string
	Name             string
	MinLevel         int
	XPMultiplierBP   int64
	PlatformFeeBP    int64
	PriorityMatching string
	Theme            string
	Effects          []string
}

// XPMultiplier returns the display form of the XP multiplier.
func (t Tier) XPMultiplier() float64 {
	return float64(t.XPMultiplierBP) / BasisPointScale
}

// PlatformFeePercent returns the display form of the platform fee rate.
func (t Tier) PlatformFeePercent() float64 {
	return float64(t.PlatformFeeBP) / 100
}

// DefaultTable is the production ascension ladder.
func DefaultTable() []Tier {
	return []Tier{
		{
			ID:               "hustler",
			Name:             "Hustler",
			MinLevel:         1,
			XPMultiplierBP:   10000,
			PlatformFeeBP:    1500,
			PriorityMatching: "standard queue",
			Theme:            "slate",
			Effects:          nil,
		},
		{
			ID:               "grinder",
			Name:             "Grinder",
			MinLevel:         25,
			XPMultiplierBP:   10500,
			PlatformFeeBP:    1200,
			PriorityMatching: "standard queue",
			Theme:            "bronze",
			Effects:          []string{"profile_frame_bronze"},
		},
		{
			ID:               "operator",
			Name:             "Operator",
			MinLevel:         50,
			XPMultiplierBP:   11000,
			PlatformFeeBP:    1000,
			PriorityMatching: "priority queue",
			Theme:            "silver",
			Effects:          []string{"profile_frame_silver", "task_feed_highlight"},
		},
		{
			ID:               "ascendant",
			Name:             "Ascendant",
			MinLevel:         75,
			XPMultiplierBP:   12000,
			PlatformFeeBP:    800,
			PriorityMatching: "priority queue",
			Theme:            "gold",
			Effects:          []string{"profile_frame_gold", "task_feed_highlight"},
		},
		{
			ID:               "elite",
			Name:             "Elite",
			MinLevel:         100,
			XPMultiplierBP:   13500,
			PlatformFeeBP:    500,
			PriorityMatching: "front of queue",
			Theme:            "platinum",
			Effects:          []string{"profile_frame_platinum", "task_feed_highlight", "animated_avatar"},
		},
		{
			ID:               "legend",
			Name:             "Legend",
			MinLevel:         150,
			XPMultiplierBP:   15000,
			PlatformFeeBP:    300,
			PriorityMatching: "front of queue",
			Theme:            "obsidian",
			Effects:          []string{"profile_frame_obsidian", "task_feed_highlight", "animated_avatar", "legend_title"},
		},
	}
}
