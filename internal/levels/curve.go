package levels

import "math"

// The level curve is quadratic: reaching level L costs (L-1)^2 * 100 XP.
// Level 1 starts at 0 XP, level 2 at 100, level 3 at 400 and so on.
const xpPerUnit = 100

// LevelForXP derives the level for a total XP amount. Negative XP is
// treated as zero; level is never below 1.
func LevelForXP(xp int64) int {
	if xp <= 0 {
		return 1
	}
	root := int64(math.Sqrt(float64(xp) / xpPerUnit))
	// Correct for floating point drift around exact thresholds.
	for (root+1)*(root+1)*xpPerUnit <= xp {
		root++
	}
	for root > 0 && root*root*xpPerUnit > xp {
		root--
	}
	return int(root) + 1
}

// XPFloorForLevel returns the exact XP threshold at which the given level
// begins. It inverts LevelForXP: LevelForXP(XPFloorForLevel(L)) == L, and
// one XP less resolves to L-1.
func XPFloorForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	l := int64(level - 1)
	return l * l * xpPerUnit
}

// XPRequiredForNextLevel returns the total XP threshold of the level after
// the one the given XP resolves to.
func XPRequiredForNextLevel(xp int64) int64 {
	return XPFloorForLevel(LevelForXP(xp) + 1)
}

// ProgressFraction reports how far the given XP sits inside its current
// level band, clamped to [0, 1].
func ProgressFraction(xp int64) float64 {
	if xp < 0 {
		xp = 0
	}
	level := LevelForXP(xp)
	floor := XPFloorForLevel(level)
	ceiling := XPFloorForLevel(level + 1)
	if ceiling <= floor {
		return 0
	}
	frac := float64(xp-floor) / float64(ceiling-floor)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
