package sim

import "testing"

// TestAutoPilotSteersToCoin verifies the autopilot tilts toward a coin ahead
func TestAutoPilotSteersToCoin(t *testing.T) {
	s := newLevelSim(nil)
	s.World.AddCoin(400, s.Ball.Y-100)
	ap := NewAutoPilot()

	in := ap.Read(s)
	if in.Left >= in.Right {
		t.Errorf("Expected left end raised more to roll right, got %+v", in)
	}
	if in.Left < -1 || in.Left > 1 || in.Right < -1 || in.Right > 1 {
		t.Errorf("Input out of range: %+v", in)
	}
	if ap.TargetX != 400 {
		t.Errorf("Expected target x 400, got %.1f", ap.TargetX)
	}
}

// TestAutoPilotAvoidsHole verifies the target is moved clear of a hole in the path
func TestAutoPilotAvoidsHole(t *testing.T) {
	cfg := DefaultConfig()
	s := newLevelSim(nil)
	s.World.AddHole(s.Ball.X, s.Ball.Y-80)
	ap := NewAutoPilot()

	ap.Read(s)
	gap := cfg.HoleRadius + cfg.BallRadius
	if d := ap.TargetX - s.Ball.X; d > -gap && d < gap {
		t.Errorf("Target %.1f still inside the hole's path", ap.TargetX)
	}
}

// TestAutoPilotRun drives an endless run and checks the session stays consistent
func TestAutoPilotRun(t *testing.T) {
	s := newEndlessSim(77)
	cam := NewCamera(s.Config.ScreenWidth, s.Config.ScreenHeight, s.Ball.X, s.Ball.Y)
	s.AttachViewport(cam)
	ap := NewAutoPilot()

	last := 0
	for i := 0; i < 1200 && s.Outcome() == OutcomeRunning; i++ {
		ap.Update(stepDT)
		s.Step(ap.Read(s), stepDT)
		cam.Follow(s.Ball.X, s.Ball.Y)

		score := s.Session().Score
		if score < last {
			t.Fatalf("Score decreased from %d to %d", last, score)
		}
		last = score
	}
	if s.Session().Coins*s.Config.CoinScore > last {
		t.Errorf("Coin bonus %d exceeds total score %d", s.Session().Coins*s.Config.CoinScore, last)
	}
}
