package profile

import (
	"time"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/economy"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/levels"
)

// PrestigeState tracks permanent prestige progress. PayoutBoostBP is the
// accumulated permanent payout boost in basis points.
type PrestigeState struct {
	Level         int   `json:"level"`
	TotalPrestige int   `json:"total_prestige"`
	PayoutBoostBP int64 `json:"payout_boost_bp"`
}

// Progression is the per-user progression record. It is treated as an
// immutable snapshot: every mutating operation returns a new value and
// the host linearizes writes per user (see Repository.Update).
type Progression struct {
	UserID             string
	Level              int
	XP                 int64
	Wallet             economy.Wallet
	Prestige           PrestigeState
	Badges             []string
	VerificationBadges []string
	TasksCompleted     int64
	StreakDays         int
	LastTaskAt         time.Time
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// New creates a fresh progression record at level 1 with empty balances.
func New(userID string) Progression {
	now := time.Now().UTC()
	return Progression{
		UserID:    userID,
		Level:     1,
		XP:        0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasBadge reports whether the badge id has already been unlocked.
func (p Progression) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// WithBadge returns a copy with the badge added. Badge sets only grow;
// adding an already-held badge is a no-op.
func (p Progression) WithBadge(id string) Progression {
	if id == "" || p.HasBadge(id) {
		return p
	}
	badges := make([]string, len(p.Badges)+1)
	copy(badges, p.Badges)
	badges[len(p.Badges)] = id
	p.Badges = badges
	return p
}

// RecordTask advances the task counter and the daily streak. Same-day
// completions keep the streak; a gap of exactly one day extends it; any
// longer gap restarts it at one.
func (p Progression) RecordTask(at time.Time) Progression {
	at = at.UTC()
	today := at.Truncate(24 * time.Hour)
	lastDay := p.LastTaskAt.UTC().Truncate(24 * time.Hour)

	switch {
	case p.TasksCompleted == 0:
		p.StreakDays = 1
	case today.Equal(lastDay):
		// streak unchanged
	case today.Sub(lastDay) == 24*time.Hour:
		p.StreakDays++
	default:
		p.StreakDays = 1
	}
	p.TasksCompleted++
	p.LastTaskAt = at
	return p
}

// DerivedLevel recomputes the level from XP, honoring the post-prestige
// floor: once a user has prestiged, their level never displays below the
// prestige reset baseline even while XP rebuilds from zero.
func (p Progression) DerivedLevel(floorLevel int) int {
	level := levels.LevelForXP(p.XP)
	if p.Prestige.Level > 0 && level < floorLevel {
		return floorLevel
	}
	return level
}
