package sim

import (
	"math/rand"
	"testing"
)

func newEndlessSim(seed int64) *Simulation {
	return NewSimulation(DefaultConfig(), nil, ModeEndless, rand.New(rand.NewSource(seed)))
}

// TestSpawnerSeedsAboveScreen verifies the opening holes and coins spawn in the band above the view
func TestSpawnerSeedsAboveScreen(t *testing.T) {
	cfg := DefaultConfig()
	s := newEndlessSim(42)
	cam := NewCamera(cfg.ScreenWidth, cfg.ScreenHeight, s.Ball.X, s.Ball.Y)
	s.AttachViewport(cam)

	s.Step(Input{}, stepDT)

	if len(s.World.Holes) != 5 {
		t.Errorf("Expected 5 holes, got %d", len(s.World.Holes))
	}
	if len(s.World.Coins) != 5 {
		t.Errorf("Expected 5 coins, got %d", len(s.World.Coins))
	}
	for _, h := range s.World.Holes {
		if h.Y < cam.Y-200 || h.Y > cam.Y-10 {
			t.Errorf("Hole at y=%.1f outside spawn band [%.1f, %.1f]", h.Y, cam.Y-200, cam.Y-10)
		}
		if h.X < 0 || h.X > cfg.GameWidth {
			t.Errorf("Hole at x=%.1f outside the playfield", h.X)
		}
	}
}

// TestSpawnerCaps verifies obstacle counts stay within their limits
func TestSpawnerCaps(t *testing.T) {
	s := newEndlessSim(9)
	for i := 0; i < 200; i++ {
		s.Step(Input{}, stepDT)
		w := s.World
		if len(w.MovingPlatforms) > 2 || len(w.Springs) > 3 || len(w.Teleporters) > 2 {
			t.Fatalf("Step %d exceeded caps: %d platforms, %d springs, %d pairs",
				i, len(w.MovingPlatforms), len(w.Springs), len(w.Teleporters))
		}
		if w.ActiveCoins() < 3 {
			t.Fatalf("Step %d left only %d coins", i, w.ActiveCoins())
		}
	}
	if len(s.World.Springs) == 0 || len(s.World.Teleporters) == 0 {
		t.Error("Expected obstacles to be spawned")
	}
}

// TestSpawnerDeterministic verifies two runs with the same seed produce the same world
func TestSpawnerDeterministic(t *testing.T) {
	a := newEndlessSim(1234)
	b := newEndlessSim(1234)
	for i := 0; i < 120; i++ {
		in := Input{Left: -1, Right: -0.5}
		a.Step(in, stepDT)
		b.Step(in, stepDT)
	}
	if len(a.World.Holes) != len(b.World.Holes) {
		t.Fatalf("Hole counts differ: %d vs %d", len(a.World.Holes), len(b.World.Holes))
	}
	for i := range a.World.Holes {
		if *a.World.Holes[i] != *b.World.Holes[i] {
			t.Errorf("Hole %d differs: %+v vs %+v", i, *a.World.Holes[i], *b.World.Holes[i])
		}
	}
	if a.Ball.X != b.Ball.X || a.Ball.Y != b.Ball.Y {
		t.Errorf("Ball diverged: (%.3f, %.3f) vs (%.3f, %.3f)", a.Ball.X, a.Ball.Y, b.Ball.X, b.Ball.Y)
	}
	if a.Session() != b.Session() {
		t.Errorf("Sessions diverged: %+v vs %+v", a.Session(), b.Session())
	}
}

// TestSpawnerCullsBelowPlatform verifies obstacles far below the platform are dropped
func TestSpawnerCullsBelowPlatform(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWorld(cfg)
	p := NewPlatform(0, cfg)
	below := p.Top() + cfg.GameHeight*0.4 + 100 + cfg.HoleRadius
	w.AddHole(100, below)
	w.AddHole(100, -300)

	sp := NewSpawner(cfg, rand.New(rand.NewSource(5)))
	sp.ObstacleChance = 0
	sp.Refill(w, p, -500)

	for _, h := range w.Holes {
		if h.Y == below {
			t.Error("Expected hole below the platform culled")
		}
	}
	if len(w.Holes) < sp.HoleTarget {
		t.Errorf("Expected holes topped up to %d, got %d", sp.HoleTarget, len(w.Holes))
	}
	if len(w.MovingPlatforms)+len(w.Springs)+len(w.Teleporters) != 0 {
		t.Error("Expected no obstacles with zero chance")
	}
}
