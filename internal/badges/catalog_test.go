package badges

import "testing"

func TestDefaultCatalogLookup(t *testing.T) {
	cat := NewDefaultCatalog()

	badge, ok := cat.Get("first_gig")
	if !ok {
		t.Fatalf("expected first_gig in catalog")
	}
	if badge.Rarity != RarityCommon {
		t.Fatalf("expected common rarity, got %s", badge.Rarity)
	}

	if _, ok := cat.Get("nope"); ok {
		t.Fatalf("unexpected badge for unknown id")
	}
}

func TestByRarity(t *testing.T) {
	cat := NewDefaultCatalog()

	legendary := cat.ByRarity(RarityLegendary)
	if len(legendary) == 0 {
		t.Fatalf("expected at least one legendary badge")
	}
	for _, b := range legendary {
		if b.Rarity != RarityLegendary {
			t.Fatalf("badge %s leaked into legendary bucket", b.ID)
		}
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	defs := []Badge{
		{ID: "a", Name: "A", Rarity: RarityCommon},
		{ID: "a", Name: "A again", Rarity: RarityRare},
	}
	if _, err := NewCatalog(defs); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}
