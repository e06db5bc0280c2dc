package rewards

import (
	"testing"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/tiers"
)

func testRegistry(t *testing.T) *tiers.Registry {
	t.Helper()
	reg, err := tiers.NewRegistry([]tiers.Tier{
		{ID: "base", Name: "Base", MinLevel: 1, XPMultiplierBP: 10000, PlatformFeeBP: 1500},
		{ID: "boosted", Name: "Boosted", MinLevel: 30, XPMultiplierBP: 12000, PlatformFeeBP: 1000},
	})
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

func TestTaskXP(t *testing.T) {
	calc := NewCalculator(testRegistry(t))

	// 50.00 units of pay -> floor(50 * 2) = 100 XP.
	if got := calc.TaskXP(5_000); got != 100 {
		t.Fatalf("TaskXP(5000) = %d, want 100", got)
	}
	if got := calc.TaskXP(49); got != 0 {
		t.Fatalf("TaskXP(49) = %d, want 0", got)
	}
	if got := calc.TaskXP(-100); got != 0 {
		t.Fatalf("negative pay must yield 0 XP, got %d", got)
	}
}

func TestTierAdjustedXPUsesEventTimeTier(t *testing.T) {
	calc := NewCalculator(testRegistry(t))

	if got := calc.TierAdjustedXP(100, 40); got != 120 {
		t.Fatalf("expected 120 adjusted XP at level 40, got %d", got)
	}
	// Below the boosted threshold the base multiplier applies even if the
	// award itself would push the level past 30.
	if got := calc.TierAdjustedXP(100, 29); got != 100 {
		t.Fatalf("expected 100 adjusted XP at level 29, got %d", got)
	}
}

func TestTierAdjustedPlatformFee(t *testing.T) {
	calc := NewCalculator(testRegistry(t))

	if got := calc.TierAdjustedPlatformFee(10_000, 10); got != 1_500 {
		t.Fatalf("expected 1500 fee at base tier, got %d", got)
	}
	if got := calc.TierAdjustedPlatformFee(10_000, 40); got != 1_000 {
		t.Fatalf("expected 1000 fee at boosted tier, got %d", got)
	}
	if got := calc.TierAdjustedPlatformFee(-50, 10); got != 0 {
		t.Fatalf("negative amount must yield 0 fee, got %d", got)
	}
}

func TestFeeSavingsVsBaseline(t *testing.T) {
	calc := NewCalculator(testRegistry(t))

	savings := calc.FeeSavingsVsBaseline(40)
	if savings.BaselineFeePercent != 15 {
		t.Fatalf("expected 15%% baseline, got %f", savings.BaselineFeePercent)
	}
	if savings.CurrentFeePercent != 10 {
		t.Fatalf("expected 10%% current fee, got %f", savings.CurrentFeePercent)
	}
	if savings.FeePercentSaved != 5 {
		t.Fatalf("expected 5%% saved, got %f", savings.FeePercentSaved)
	}

	if base := calc.FeeSavingsVsBaseline(1); base.FeePercentSaved != 0 {
		t.Fatalf("expected no savings at baseline tier, got %f", base.FeePercentSaved)
	}
}
