package rewards

import (
	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/tiers"
)

// BaselineFeeBP is the no-tier platform fee rate (15%) used as the
// reference point for savings display.
const BaselineFeeBP int64 = 1500

// Pay amounts arrive in minor units (cents of the reference monetary
// unit). Base XP is floor(pay * 2) with pay expressed in whole units, so
// 50 minor units of pay earn one XP.
const minorUnitsPerXP int64 = 50

// Calculator computes tier-adjusted XP awards and platform fees. It is a
// pure composition over the tier registry; all methods are side-effect
// free.
type Calculator struct {
	tiers *tiers.Registry
}

// NewCalculator builds a reward calculator over the given tier registry.
func NewCalculator(registry *tiers.Registry) *Calculator {
	return &Calculator{tiers: registry}
}

// TaskXP derives base XP purely from the pay amount, independent of tier.
// Negative input yields zero; validation belongs to the boundary.
func (c *Calculator) TaskXP(payAmountMinor int64) int64 {
	if payAmountMinor <= 0 {
		return 0
	}
	return payAmountMinor / minorUnitsPerXP
}

// TierAdjustedXP applies the XP multiplier of the tier the user occupies
// at the moment of the event. Using the pre-award tier prevents an award
// from retroactively inflating itself across a tier boundary.
func (c *Calculator) TierAdjustedXP(baseXP int64, level int) int64 {
	if baseXP <= 0 {
		return 0
	}
	tier := c.tiers.TierForLevel(level)
	return baseXP * tier.XPMultiplierBP / tiers.BasisPointScale
}

// TierAdjustedPlatformFee computes the fee retained on an amount at the
// user's current tier rate. Amounts are minor units; the fee rounds down.
func (c *Calculator) TierAdjustedPlatformFee(amountMinor int64, level int) int64 {
	if amountMinor <= 0 {
		return 0
	}
	tier := c.tiers.TierForLevel(level)
	return amountMinor * tier.PlatformFeeBP / tiers.BasisPointScale
}

// FeeSavings reports the delta between the baseline fee rate and the
// user's current tier rate, for display.
type FeeSavings struct {
	BaselineFeePercent float64 `json:"baseline_fee_percent"`
	CurrentFeePercent  float64 `json:"current_fee_percent"`
	FeePercentSaved    float64 `json:"fee_percent_saved"`
}

// FeeSavingsVsBaseline compares the user's tier fee against the fixed
// 15% baseline.
func (c *Calculator) FeeSavingsVsBaseline(level int) FeeSavings {
	tier := c.tiers.TierForLevel(level)
	savedBP := BaselineFeeBP - tier.PlatformFeeBP
	if savedBP < 0 {
		savedBP = 0
	}
	return FeeSavings{
		BaselineFeePercent: float64(BaselineFeeBP) / 100,
		CurrentFeePercent:  float64(tier.PlatformFeeBP) / 100,
		FeePercentSaved:    float64(savedBP) / 100,
	}
}
