package sim

import "testing"

// TestWorldCull verifies entities below the limit and collected coins are dropped
func TestWorldCull(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld(cfg)
	keep := w.AddHole(0, 100)
	w.AddHole(0, 500)
	w.AddCoin(0, 100).Collect(nil)
	coin := w.AddCoin(0, 120)
	w.AddSpring(0, 400)
	w.AddMovingPlatform(0, 100, 1)
	w.AddTeleporterPair(0, 1000, 0, 100)
	w.AddTeleporterPair(0, 1000, 0, 900)

	w.Cull(300)

	if len(w.Holes) != 1 || w.Holes[0] != keep {
		t.Errorf("Expected only the upper hole kept, got %d holes", len(w.Holes))
	}
	if len(w.Coins) != 1 || w.Coins[0] != coin {
		t.Errorf("Expected only the uncollected coin kept, got %d coins", len(w.Coins))
	}
	if len(w.Springs) != 0 {
		t.Errorf("Expected spring culled, got %d", len(w.Springs))
	}
	if len(w.MovingPlatforms) != 1 {
		t.Errorf("Expected moving platform kept, got %d", len(w.MovingPlatforms))
	}
	if len(w.Teleporters) != 1 || w.Teleporters[0].ID != 0 {
		t.Errorf("Expected the pair with an upper end kept, got %d pairs", len(w.Teleporters))
	}
}
