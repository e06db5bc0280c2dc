package badges

import "fmt"

// Rarity buckets for achievement badges.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Badge is a static achievement definition. Award logic lives with the
// activity pipeline; the catalog only describes what can be unlocked.
type Badge struct {
	ID          string
	Name        string
	Rarity      string
	Description string
	Criteria    string
}

// Catalog is an immutable badge lookup table.
type Catalog struct {
	ordered []Badge
	byID    map[string]Badge
}

// NewCatalog freezes a badge list, rejecting duplicate ids.
func NewCatalog(defs []Badge) (*Catalog, error) {
	byID := make(map[string]Badge, len(defs))
	ordered := make([]Badge, len(defs))
	copy(ordered, defs)
	for _, b := range ordered {
		if b.ID == "" {
			return nil, fmt.Errorf("badge with empty id")
		}
		if _, dup := byID[b.ID]; dup {
			return nil, fmt.Errorf("duplicate badge id %q", b.ID)
		}
		byID[b.ID] = b
	}
	return &Catalog{ordered: ordered, byID: byID}, nil
}

// NewDefaultCatalog builds the production badge catalog.
func NewDefaultCatalog() *Catalog {
	cat, err := NewCatalog(defaultBadges())
	if err != nil {
		panic(err) // the default catalog is validated by tests
	}
	return cat
}

// Get looks up a badge definition by id.
func (c *Catalog) Get(id string) (Badge, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// All returns the catalog in declaration order.
func (c *Catalog) All() []Badge {
	out := make([]Badge, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ByRarity filters the catalog to one rarity bucket.
func (c *Catalog) ByRarity(rarity string) []Badge {
	var out []Badge
	for _, b := range c.ordered {
		if b.Rarity == rarity {
			out = append(out, b)
		}
	}
	return out
}

func defaultBadges() []Badge {
	return []Badge{
		{ID: "first_gig", Name: "First Gig", Rarity: RarityCommon, Description: "Completed a first task.", Criteria: "complete 1 task"},
		{ID: "ten_gigs", Name: "Regular", Rarity: RarityCommon, Description: "Ten tasks in the books.", Criteria: "complete 10 tasks"},
		{ID: "hundred_gigs", Name: "Centurion", Rarity: RarityRare, Description: "A hundred tasks completed.", Criteria: "complete 100 tasks"},
		{ID: "week_streak", Name: "Consistent", Rarity: RarityCommon, Description: "Worked seven days in a row.", Criteria: "7 day completion streak"},
		{ID: "month_streak", Name: "Relentless", Rarity: RarityRare, Description: "Thirty days without a break in the chain.", Criteria: "30 day completion streak"},
		{ID: "big_ticket", Name: "Big Ticket", Rarity: RarityRare, Description: "Closed a single task worth 500 or more.", Criteria: "complete one task paying >= 500"},
		{ID: "tier_operator", Name: "Operator", Rarity: RarityRare, Description: "Reached the Operator tier.", Criteria: "reach level 50"},
		{ID: "tier_elite", Name: "Elite", Rarity: RarityEpic, Description: "Reached the Elite tier.", Criteria: "reach level 100"},
		{ID: "first_prestige", Name: "Reborn", Rarity: RarityEpic, Description: "Prestiged for the first time.", Criteria: "execute prestige once"},
		{ID: "max_prestige", Name: "Apex", Rarity: RarityLegendary, Description: "Hit the prestige cap.", Criteria: "reach max prestige"},
		{ID: "crown_collector", Name: "Crown Collector", Rarity: RarityEpic, Description: "Holds 50 crowns at once.", Criteria: "hold 50 crowns"},
	}
}
