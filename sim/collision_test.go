package sim

import "testing"

// TestCircleCollisionTouching verifies touching circles count as a hit
func TestCircleCollisionTouching(t *testing.T) {
	cfg := DefaultConfig()
	h := NewHole(0, 0, cfg)
	ball := NewBall(cfg.HoleRadius+cfg.BallRadius, 0, cfg)
	if !h.CheckCollision(ball) {
		t.Error("Expected touching ball to hit the hole")
	}
	ball.X += 0.01
	if h.CheckCollision(ball) {
		t.Error("Expected separated ball to miss the hole")
	}
}
