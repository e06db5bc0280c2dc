package progression

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/economy"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/levels"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/notification"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/prestige"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/profile"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/rewards"
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/tiers"
)

// Badges granted by the progression pipeline itself. Tier badges map the
// tier id reached to the badge unlocked.
var tierBadges = map[string]string{
	"operator": "tier_operator",
	"elite":    "tier_elite",
}

// Milestone thresholds for pipeline-awarded badges. BigTicketPayMinor is
// 500 reference units expressed in minor units.
const (
	tenGigs           = 10
	hundredGigs       = 100
	weekStreakDays    = 7
	monthStreakDays   = 30
	bigTicketPayMinor = 50000
	crownCollectorMin = 50
)

// Service orchestrates the progression pipeline: task payouts become XP,
// XP becomes levels, levels resolve tiers, and every currency movement
// lands in the audit log. All engine math is pure; the service owns the
// read-compute-write cycle and serializes it per user with a keyed mutex
// on top of the repository's optimistic version check.
type Service struct {
	repo     profile.Repository
	store    economy.Store
	tiers    *tiers.Registry
	calc     *rewards.Calculator
	prestige *prestige.Engine
	notifier notification.Notifier

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService wires the progression service.
func NewService(repo profile.Repository, store economy.Store, registry *tiers.Registry, calc *rewards.Calculator, engine *prestige.Engine, notifier notification.Notifier) *Service {
	return &Service{
		repo:     repo,
		store:    store,
		tiers:    registry,
		calc:     calc,
		prestige: engine,
		notifier: notifier,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lockUser serializes mutations for one user. Cross-user operations never
// contend; there is no global lock.
func (s *Service) lockUser(userID string) func() {
	s.mu.Lock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Provision creates the progression record for a new account.
func (s *Service) Provision(ctx context.Context, userID string) (profile.Progression, error) {
	p := profile.New(userID)
	if err := s.repo.Create(ctx, p); err != nil {
		return profile.Progression{}, err
	}
	return p, nil
}

// Get returns the raw progression snapshot.
func (s *Service) Get(ctx context.Context, userID string) (profile.Progression, error) {
	return s.repo.Get(ctx, userID)
}

// TaskCompletionInput carries one completed task event from the activity
// source.
type TaskCompletionInput struct {
	UserID         string
	TaskID         string
	PayAmountMinor int64
}

// TaskAward is the outcome of applying a task completion.
type TaskAward struct {
	TaskID           string              `json:"task_id"`
	BaseXP           int64               `json:"base_xp"`
	AdjustedXP       int64               `json:"adjusted_xp"`
	TotalXP          int64               `json:"total_xp"`
	OldLevel         int                 `json:"old_level"`
	NewLevel         int                 `json:"new_level"`
	LeveledUp        bool                `json:"leveled_up"`
	TierUnlocked     bool                `json:"tier_unlocked"`
	Tier             string              `json:"tier"`
	PlatformFeeMinor int64               `json:"platform_fee_minor"`
	GritEarned       int64               `json:"grit_earned"`
	Wallet           economy.Wallet      `json:"wallet"`
	Transaction      economy.Transaction `json:"transaction"`
}

// CompleteTask applies one task completion to a user's progression: base
// XP from pay, the event-time tier multiplier, level re-derivation, tier
// unlock detection, and a grit credit with its audit record.
func (s *Service) CompleteTask(ctx context.Context, input TaskCompletionInput) (TaskAward, error) {
	if input.PayAmountMinor < 0 {
		return TaskAward{}, economy.ErrInvalidAmount
	}
	if input.TaskID == "" {
		input.TaskID = uuid.NewString()
	}

	unlock := s.lockUser(input.UserID)
	defer unlock()

	p, err := s.repo.Get(ctx, input.UserID)
	if err != nil {
		return TaskAward{}, err
	}

	baseXP := s.calc.TaskXP(input.PayAmountMinor)
	adjustedXP := s.calc.TierAdjustedXP(baseXP, p.Level)
	fee := s.calc.TierAdjustedPlatformFee(input.PayAmountMinor, p.Level)

	oldLevel := p.Level
	p.XP += adjustedXP
	p.Level = p.DerivedLevel(prestige.MinPrestigeLevel)

	tierUnlocked := s.tiers.TierJustUnlocked(oldLevel, p.Level)
	newTier := s.tiers.TierForLevel(p.Level)

	var tx economy.Transaction
	gritEarned := adjustedXP
	if gritEarned > 0 {
		p.Wallet, tx, err = economy.Credit(p.Wallet, p.UserID, economy.CurrencyGrit, gritEarned,
			"task", fmt.Sprintf("task %s payout", input.TaskID))
		if err != nil {
			return TaskAward{}, err
		}
	}

	p = p.RecordTask(time.Now())
	p = p.WithBadge("first_gig")
	if p.TasksCompleted >= tenGigs {
		p = p.WithBadge("ten_gigs")
	}
	if p.TasksCompleted >= hundredGigs {
		p = p.WithBadge("hundred_gigs")
	}
	if p.StreakDays >= weekStreakDays {
		p = p.WithBadge("week_streak")
	}
	if p.StreakDays >= monthStreakDays {
		p = p.WithBadge("month_streak")
	}
	if input.PayAmountMinor >= bigTicketPayMinor {
		p = p.WithBadge("big_ticket")
	}
	if tierUnlocked {
		p = p.WithBadge(tierBadges[newTier.ID])
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return TaskAward{}, err
	}
	if gritEarned > 0 {
		if err := s.store.Append(ctx, tx); err != nil {
			return TaskAward{}, err
		}
	}

	if updated.Level > oldLevel {
		s.notify(ctx, notification.KindLevelUp, updated.UserID,
			fmt.Sprintf("Reached level %d", updated.Level))
	}
	if tierUnlocked {
		s.notify(ctx, notification.KindTierUnlocked, updated.UserID,
			fmt.Sprintf("Ascended to %s", newTier.Name))
	}

	return TaskAward{
		TaskID:           input.TaskID,
		BaseXP:           baseXP,
		AdjustedXP:       adjustedXP,
		TotalXP:          updated.XP,
		OldLevel:         oldLevel,
		NewLevel:         updated.Level,
		LeveledUp:        updated.Level > oldLevel,
		TierUnlocked:     tierUnlocked,
		Tier:             newTier.ID,
		PlatformFeeMinor: fee,
		GritEarned:       gritEarned,
		Wallet:           updated.Wallet,
		Transaction:      tx,
	}, nil
}

// Spend debits a currency from the user's wallet, recording the spend.
func (s *Service) Spend(ctx context.Context, userID string, currency economy.Currency, amount int64, source, description string) (profile.Progression, economy.Transaction, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return profile.Progression{}, economy.Transaction{}, err
	}

	wallet, tx, err := economy.Debit(p.Wallet, userID, currency, amount, source, description)
	if err != nil {
		return profile.Progression{}, economy.Transaction{}, err
	}
	p.Wallet = wallet

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return profile.Progression{}, economy.Transaction{}, err
	}
	if err := s.store.Append(ctx, tx); err != nil {
		return profile.Progression{}, economy.Transaction{}, err
	}
	return updated, tx, nil
}

// Convert exchanges grit into task credits at the fixed rate.
func (s *Service) Convert(ctx context.Context, userID string, from, to economy.Currency, amount int64) (profile.Progression, economy.Transaction, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return profile.Progression{}, economy.Transaction{}, err
	}

	wallet, tx, err := economy.Convert(p.Wallet, userID, from, to, amount)
	if err != nil {
		return profile.Progression{}, economy.Transaction{}, err
	}
	p.Wallet = wallet

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return profile.Progression{}, economy.Transaction{}, err
	}
	if err := s.store.Append(ctx, tx); err != nil {
		return profile.Progression{}, economy.Transaction{}, err
	}
	return updated, tx, nil
}

// Transactions lists the newest audit records for a user.
func (s *Service) Transactions(ctx context.Context, userID string, limit int) ([]economy.Transaction, error) {
	return s.store.ListByUser(ctx, userID, limit)
}

// PrestigePreview computes the prestige result without mutating anything,
// so the UI can show a confirmation. An ineligible user gets a zero
// Result with Eligible false, not an error.
func (s *Service) PrestigePreview(ctx context.Context, userID string) (prestige.Result, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return prestige.Result{}, err
	}
	result, ok := s.prestige.ComputeResult(p)
	if !ok {
		return prestige.Result{}, nil
	}
	return result, nil
}

// ExecutePrestige commits a prestige transition. Eligibility is
// re-derived under the user lock, so a preview that went stale between
// confirmation and commit fails cleanly with prestige.ErrNotEligible.
func (s *Service) ExecutePrestige(ctx context.Context, userID string) (profile.Progression, prestige.Result, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return profile.Progression{}, prestige.Result{}, err
	}

	next, result, err := s.prestige.Execute(p)
	if err != nil {
		return profile.Progression{}, prestige.Result{}, err
	}

	next = next.WithBadge("first_prestige")
	if next.Prestige.Level == s.prestige.MaxPrestige() {
		next = next.WithBadge("max_prestige")
	}
	if next.Wallet.Crowns >= crownCollectorMin {
		next = next.WithBadge("crown_collector")
	}

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return profile.Progression{}, prestige.Result{}, err
	}

	if result.Rewards.Crowns > 0 {
		tx := economy.NewTransaction(userID, economy.KindEarn, economy.CurrencyCrowns,
			result.Rewards.Crowns, "prestige", fmt.Sprintf("prestige %d crown grant", result.NewPrestigeLevel))
		if err := s.store.Append(ctx, tx); err != nil {
			return profile.Progression{}, prestige.Result{}, err
		}
	}

	s.notify(ctx, notification.KindPrestigeComplete, userID,
		fmt.Sprintf("Prestige %d complete", result.NewPrestigeLevel))

	return updated, result, nil
}

// Summary is the read-only progression view for UI refresh.
type Summary struct {
	UserID           string                `json:"user_id"`
	Level            int                   `json:"level"`
	XP               int64                 `json:"xp"`
	XPForNextLevel   int64                 `json:"xp_for_next_level"`
	ProgressFraction float64               `json:"progress_fraction"`
	Tier             tiers.Tier            `json:"tier"`
	NextTierID       string                `json:"next_tier_id,omitempty"`
	IsMaxTier        bool                  `json:"is_max_tier"`
	TierProgress     float64               `json:"tier_progress"`
	LevelsUntilTier  int                   `json:"levels_until_next_tier"`
	NearNextTier     bool                  `json:"near_next_tier"`
	FeeSavings       rewards.FeeSavings    `json:"fee_savings"`
	Wallet           economy.Wallet        `json:"wallet"`
	Prestige         profile.PrestigeState `json:"prestige"`
	CanPrestige      bool                  `json:"can_prestige"`
	BadgeCount       int                   `json:"badge_count"`
	TasksCompleted   int64                 `json:"tasks_completed"`
	StreakDays       int                   `json:"streak_days"`
}

// Summarize aggregates the side-effect-free query surface for one user.
func (s *Service) Summarize(ctx context.Context, userID string) (Summary, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		UserID:           p.UserID,
		Level:            p.Level,
		XP:               p.XP,
		XPForNextLevel:   levels.XPRequiredForNextLevel(p.XP),
		ProgressFraction: levels.ProgressFraction(p.XP),
		Tier:             s.tiers.TierForLevel(p.Level),
		TierProgress:     s.tiers.ProgressToNextTier(p.Level),
		LevelsUntilTier:  s.tiers.LevelsUntilNextTier(p.Level),
		NearNextTier:     s.tiers.IsNearNextTier(p.Level, tiers.NearTierThreshold),
		FeeSavings:       s.calc.FeeSavingsVsBaseline(p.Level),
		Wallet:           p.Wallet,
		Prestige:         p.Prestige,
		CanPrestige:      s.prestige.CanPrestige(p),
		BadgeCount:       len(p.Badges),
		TasksCompleted:   p.TasksCompleted,
		StreakDays:       p.StreakDays,
	}

	if next, ok := s.tiers.NextTier(p.Level); ok {
		summary.NextTierID = next.ID
	} else {
		summary.IsMaxTier = true
		summary.TierProgress = 1
	}

	return summary, nil
}

func (s *Service) notify(ctx context.Context, kind, userID, body string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Send(ctx, notification.Message{Kind: kind, Destination: userID, Body: body})
}
