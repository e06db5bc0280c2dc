package prestige

import (
	"errors"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/profile"
)

// MinPrestigeLevel is both the eligibility threshold and the post-reset
// level baseline. A prestiged user restarts at level 100, not level 1.
const MinPrestigeLevel = 100

// DefaultMaxPrestige caps the prestige ladder. Reaching it is terminal;
// no further transitions are offered.
const DefaultMaxPrestige = 10

// ErrNotEligible occurs when prestige is requested below the level
// threshold or past the prestige cap. Nothing is mutated.
var ErrNotEligible = errors.New("not eligible for prestige")

// Reward is what one prestige transition grants.
type Reward struct {
	Crowns        int64 `json:"crowns"`
	PayoutBoostBP int64 `json:"payout_boost_bp"`
	Themes        int   `json:"themes"`
}

// KeptItems previews what survives the reset: durable currencies and the
// permanent badge sets. Crowns include the reward about to be granted.
type KeptItems struct {
	BadgeCount        int   `json:"badge_count"`
	TaskCredits       int64 `json:"task_credits"`
	Crowns            int64 `json:"crowns"`
	VerificationCount int   `json:"verification_count"`
}

// Result is the transient preview of a prestige transition. It is a value
// object; computing it mutates nothing.
type Result struct {
	Eligible         bool      `json:"eligible"`
	NewPrestigeLevel int       `json:"new_prestige_level"`
	Rewards          Reward    `json:"rewards"`
	Kept             KeptItems `json:"kept_items"`
}

// Engine evaluates and executes prestige transitions against progression
// snapshots. The reward curve is configuration, never inferred.
type Engine struct {
	maxPrestige int
	rewards     map[int]Reward
}

// NewEngine builds a prestige engine with an explicit reward table keyed
// by the prestige level being entered.
func NewEngine(maxPrestige int, rewards map[int]Reward) *Engine {
	if maxPrestige <= 0 {
		maxPrestige = DefaultMaxPrestige
	}
	return &Engine{maxPrestige: maxPrestige, rewards: rewards}
}

// NewDefaultEngine builds an engine over the default reward curve.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultMaxPrestige, DefaultRewardTable(DefaultMaxPrestige))
}

// DefaultRewardTable generates the production reward curve: entering
// prestige level n grants 5n crowns, a permanent +2% payout boost, and
// one cosmetic theme, with a bonus theme at the midpoint and the cap.
func DefaultRewardTable(maxPrestige int) map[int]Reward {
	table := make(map[int]Reward, maxPrestige)
	for n := 1; n <= maxPrestige; n++ {
		r := Reward{Crowns: int64(5 * n), PayoutBoostBP: 200, Themes: 1}
		if n == maxPrestige || n == (maxPrestige+1)/2 {
			r.Themes++
		}
		table[n] = r
	}
	return table
}

// MaxPrestige returns the configured cap.
func (e *Engine) MaxPrestige() int {
	return e.maxPrestige
}

// CanPrestige reports whether the user has reached the level threshold.
func (e *Engine) CanPrestige(p profile.Progression) bool {
	return p.Level >= MinPrestigeLevel
}

// ComputeResult previews the next prestige transition without mutating
// anything. ok is false when the user is ineligible or already at the cap.
func (e *Engine) ComputeResult(p profile.Progression) (Result, bool) {
	if !e.CanPrestige(p) {
		return Result{}, false
	}
	next := p.Prestige.Level + 1
	if next > e.maxPrestige {
		return Result{}, false
	}

	reward, ok := e.rewards[next]
	if !ok {
		return Result{}, false
	}

	return Result{
		Eligible:         true,
		NewPrestigeLevel: next,
		Rewards:          reward,
		Kept: KeptItems{
			BadgeCount:        len(p.Badges),
			TaskCredits:       p.Wallet.TaskCredits,
			Crowns:            p.Wallet.Crowns + reward.Crowns,
			VerificationCount: len(p.VerificationBadges),
		},
	}, true
}

// Execute re-derives the result and applies the reset to a copy of the
// snapshot: level pinned to the baseline, XP and grit zeroed, task
// credits carried, crowns credited with the reward, prestige counters and
// permanent payout boost advanced. Badges and verification badges are
// never touched. Fails all-or-nothing with ErrNotEligible.
func (e *Engine) Execute(p profile.Progression) (profile.Progression, Result, error) {
	result, ok := e.ComputeResult(p)
	if !ok {
		return profile.Progression{}, Result{}, ErrNotEligible
	}

	p.Level = MinPrestigeLevel
	p.XP = 0
	p.Wallet.Grit = 0
	p.Wallet.Crowns += result.Rewards.Crowns
	p.Prestige.Level = result.NewPrestigeLevel
	p.Prestige.TotalPrestige++
	p.Prestige.PayoutBoostBP += result.Rewards.PayoutBoostBP

	return p, result, nil
}
