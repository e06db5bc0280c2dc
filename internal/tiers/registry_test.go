package tiers

import "testing"

func testTable() []Tier {
	return []Tier{
		{ID: "bronze", Name: "Bronze", MinLevel: 1, XPMultiplierBP: 10000, PlatformFeeBP: 1500},
		{ID: "silver", Name: "Silver", MinLevel: 20, XPMultiplierBP: 11000, PlatformFeeBP: 1200},
		{ID: "gold", Name: "Gold", MinLevel: 40, XPMultiplierBP: 12000, PlatformFeeBP: 1000},
		{ID: "diamond", Name: "Diamond", MinLevel: 80, XPMultiplierBP: 13000, PlatformFeeBP: 500},
	}
}

func mustRegistry(t *testing.T, table []Tier) *Registry {
	t.Helper()
	reg, err := NewRegistry(table)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

func TestTierForLevel(t *testing.T) {
	reg := mustRegistry(t, testTable())

	cases := []struct {
		level int
		want  string
	}{
		{1, "bronze"},
		{19, "bronze"},
		{20, "silver"},
		{39, "silver"},
		{40, "gold"},
		{80, "diamond"},
		{500, "diamond"},
		// Below and above the table: defensive floor, never an error.
		{0, "bronze"},
		{-3, "bronze"},
	}
	for _, c := range cases {
		if got := reg.TierForLevel(c.level); got.ID != c.want {
			t.Fatalf("TierForLevel(%d) = %s, want %s", c.level, got.ID, c.want)
		}
	}
}

func TestTierForLevelIsMonotonic(t *testing.T) {
	reg := mustRegistry(t, testTable())
	prev := reg.TierForLevel(0).MinLevel
	for level := 1; level <= 200; level++ {
		cur := reg.TierForLevel(level).MinLevel
		if cur < prev {
			t.Fatalf("tier min level regressed at level %d: %d < %d", level, cur, prev)
		}
		prev = cur
	}
}

func TestNextTier(t *testing.T) {
	reg := mustRegistry(t, testTable())

	next, ok := reg.NextTier(25)
	if !ok || next.ID != "gold" {
		t.Fatalf("expected gold next after level 25, got %v ok=%v", next.ID, ok)
	}

	if _, ok := reg.NextTier(80); ok {
		t.Fatalf("expected no next tier at the top band")
	}
}

func TestProgressToNextTier(t *testing.T) {
	reg := mustRegistry(t, testTable())

	if got := reg.ProgressToNextTier(30); got != 0.5 {
		t.Fatalf("expected 0.5 progress at level 30, got %f", got)
	}
	if got := reg.ProgressToNextTier(20); got != 0 {
		t.Fatalf("expected 0 progress at a fresh threshold, got %f", got)
	}
	if got := reg.ProgressToNextTier(100); got != 0 {
		t.Fatalf("expected 0 progress at max tier, got %f", got)
	}
	if got := reg.ProgressToNextTier(-5); got != 0 {
		t.Fatalf("expected clamped progress below the table, got %f", got)
	}
}

func TestLevelsUntilNextTier(t *testing.T) {
	reg := mustRegistry(t, testTable())

	if got := reg.LevelsUntilNextTier(35); got != 5 {
		t.Fatalf("expected 5 levels until gold, got %d", got)
	}
	if got := reg.LevelsUntilNextTier(90); got != 0 {
		t.Fatalf("expected 0 at max tier, got %d", got)
	}
}

func TestIsNearNextTier(t *testing.T) {
	reg := mustRegistry(t, testTable())

	if !reg.IsNearNextTier(36, NearTierThreshold) {
		t.Fatalf("level 36 should be near gold (progress 0.8)")
	}
	if reg.IsNearNextTier(30, NearTierThreshold) {
		t.Fatalf("level 30 should not be near gold")
	}
	if reg.IsNearNextTier(100, NearTierThreshold) {
		t.Fatalf("max tier is never near a next tier")
	}
}

func TestTierJustUnlocked(t *testing.T) {
	reg := mustRegistry(t, testTable())

	if !reg.TierJustUnlocked(39, 40) {
		t.Fatalf("expected tier-up crossing level 40")
	}
	if reg.TierJustUnlocked(40, 45) {
		t.Fatalf("level-up inside gold is not a tier-up")
	}
}

func TestNewRegistryRejectsBadTables(t *testing.T) {
	if _, err := NewRegistry(nil); err == nil {
		t.Fatalf("expected error for empty table")
	}

	dupID := testTable()
	dupID[1].ID = "bronze"
	if _, err := NewRegistry(dupID); err == nil {
		t.Fatalf("expected error for duplicate tier id")
	}

	dupLevel := testTable()
	dupLevel[1].MinLevel = 1
	if _, err := NewRegistry(dupLevel); err == nil {
		t.Fatalf("expected error for duplicate min level")
	}

	badMult := testTable()
	badMult[0].XPMultiplierBP = 0
	if _, err := NewRegistry(badMult); err == nil {
		t.Fatalf("expected error for non-positive multiplier")
	}
}

func TestDefaultTableIsValid(t *testing.T) {
	reg := mustRegistry(t, DefaultTable())

	if got := reg.TierForLevel(1).ID; got != "hustler" {
		t.Fatalf("expected hustler at level 1, got %s", got)
	}
	if got := reg.TierForLevel(150).ID; got != "legend" {
		t.Fatalf("expected legend at level 150, got %s", got)
	}
}
