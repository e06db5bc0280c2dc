package tiers

import (
	"fmt"
	"sort"
)

// NearTierThreshold is the default progress fraction at which callers
// surface "almost there" messaging.
const NearTierThreshold = 0.8

// Registry resolves levels against an immutable ascension tier table.
type Registry struct {
	tiers []Tier
}

// NewRegistry validates and freezes a tier table. The table must be
// non-empty with strictly increasing MinLevel values.
func NewRegistry(table []Tier) (*Registry, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("tier table must not be empty")
	}

	tiers := make([]Tier, len(table))
	copy(tiers, table)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinLevel < tiers[j].MinLevel })

	seen := make(map[string]struct{}, len(tiers))
	for i, t := range tiers {
		if t.ID == "" {
			return nil, fmt.Errorf("tier at index %d has empty id", i)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tier id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.XPMultiplierBP <= 0 {
			return nil, fmt.Errorf("tier %q has non-positive xp multiplier", t.ID)
		}
		if t.PlatformFeeBP < 0 {
			return nil, fmt.Errorf("tier %q has negative platform fee", t.ID)
		}
		if i > 0 && tiers[i-1].MinLevel == t.MinLevel {
			return nil, fmt.Errorf("tiers %q and %q share min level %d", tiers[i-1].ID, t.ID, t.MinLevel)
		}
	}

	return &Registry{tiers: tiers}, nil
}

// NewDefaultRegistry builds a registry over the production tier table.
func NewDefaultRegistry() *Registry {
	reg, err := NewRegistry(DefaultTable())
	if err != nil {
		panic(err) // the default table is validated by tests
	}
	return reg
}

// Tiers returns the ordered table for catalog display.
func (r *Registry) Tiers() []Tier {
	out := make([]Tier, len(r.tiers))
	copy(out, r.tiers)
	return out
}

// TierForLevel returns the tier with the greatest MinLevel at or below the
// given level. Levels below the lowest threshold resolve to the lowest
// tier so lookups never fail on pre-ladder or repaired records.
func (r *Registry) TierForLevel(level int) Tier {
	lo, hi := 0, len(r.tiers)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if r.tiers[mid].MinLevel <= level {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return r.tiers[lo]
}

// NextTier returns the tier with the smallest MinLevel above the given
// level, or false when the level is already inside the top tier.
func (r *Registry) NextTier(level int) (Tier, bool) {
	for _, t := range r.tiers {
		if t.MinLevel > level {
			return t, true
		}
	}
	return Tier{}, false
}

// ProgressToNextTier reports the position of level between its current
// tier threshold and the next one, clamped to [0, 1]. At the top tier it
// returns 0; callers should consult NextTier for the max-tier flag.
func (r *Registry) ProgressToNextTier(level int) float64 {
	current := r.TierForLevel(level)
	next, ok := r.NextTier(level)
	if !ok {
		return 0
	}
	span := next.MinLevel - current.MinLevel
	if span <= 0 {
		return 0
	}
	frac := float64(level-current.MinLevel) / float64(span)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// LevelsUntilNextTier returns how many levels remain before the next
// threshold, or 0 at the top tier.
func (r *Registry) LevelsUntilNextTier(level int) int {
	next, ok := r.NextTier(level)
	if !ok {
		return 0
	}
	remaining := next.MinLevel - level
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsNearNextTier reports whether progress toward the next tier has reached
// the given threshold fraction.
func (r *Registry) IsNearNextTier(level int, thresholdFraction float64) bool {
	if _, ok := r.NextTier(level); !ok {
		return false
	}
	return r.ProgressToNextTier(level) >= thresholdFraction
}

// TierJustUnlocked detects a tier-up event between two levels, as opposed
// to a plain level-up inside the same band.
func (r *Registry) TierJustUnlocked(oldLevel, newLevel int) bool {
	return r.TierForLevel(oldLevel).ID != r.TierForLevel(newLevel).ID
}
