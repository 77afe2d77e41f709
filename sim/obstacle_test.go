package sim

import "testing"

// spyListener counts coin notifications
type spyListener struct {
	calls int
}

func (s *spyListener) CoinCollected(c *Coin) { s.calls++ }

// TestCoinCollectIdempotent verifies a coin is collected and reported only once
func TestCoinCollectIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	c := NewCoin(100, 100, cfg)
	spy := &spyListener{}

	if !c.Collect(spy) {
		t.Fatal("Expected first collect to succeed")
	}
	if c.Collect(spy) {
		t.Error("Expected second collect to be a no-op")
	}
	if spy.calls != 1 {
		t.Errorf("Expected listener called once, got %d", spy.calls)
	}

	ball := NewBall(100, 100, cfg)
	if c.CheckCollision(ball) {
		t.Error("Collected coin should not collide")
	}

	rot := c.Rotation
	c.Update(1)
	if c.Rotation != rot {
		t.Error("Collected coin should stop animating")
	}
}

// TestSpringCompressionCycle verifies a spring fires once and re-arms after release
func TestSpringCompressionCycle(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSpring(100, 100, cfg)
	ball := NewBall(100, 90, cfg)

	if !s.CheckCollision(ball) {
		t.Fatal("Expected idle spring to fire")
	}
	if s.CheckCollision(ball) {
		t.Error("Compressed spring must not fire again")
	}

	s.Update(0.05)
	if s.State != SpringCompressed {
		t.Error("Spring released too early")
	}
	s.Update(0.06)
	if s.State != SpringIdle {
		t.Error("Expected spring released after 0.11s")
	}
	if !s.CheckCollision(ball) {
		t.Error("Expected re-armed spring to fire")
	}
}

// TestSpringEdgeContact verifies shared edges are not an overlap
func TestSpringEdgeContact(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSpring(100, 100, cfg)
	// Ball bottom exactly on the spring top
	ball := NewBall(100, s.Bounds().Top()-cfg.BallRadius, cfg)
	if s.CheckCollision(ball) {
		t.Error("Edge contact should not compress the spring")
	}
}

// TestMovingPlatformReversal verifies oscillation inside [StartX, StartX+Range]
func TestMovingPlatformReversal(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMovingPlatform(0, 0, 1, cfg)

	m.Update(1)
	if m.X != 50 || m.Direction != 1 {
		t.Errorf("Expected x=50 moving right, got x=%.1f dir=%.0f", m.X, m.Direction)
	}
	m.Update(4)
	if m.Direction != -1 {
		t.Errorf("Expected reversal past the range, got dir=%.0f at x=%.1f", m.Direction, m.X)
	}
	m.Update(6)
	if m.Direction != 1 {
		t.Errorf("Expected reversal below start, got dir=%.0f at x=%.1f", m.Direction, m.X)
	}

	left := NewMovingPlatform(0, 0, -1, cfg)
	left.Update(1)
	if left.X != -50 || left.Direction != 1 {
		t.Errorf("Expected immediate turn back, got x=%.1f dir=%.0f", left.X, left.Direction)
	}
}

// TestTeleporterPairTargets verifies each end sends the ball to the other
func TestTeleporterPairTargets(t *testing.T) {
	cfg := DefaultConfig()
	p := NewTeleporterPair(0, 100, 0, 300, -300, cfg)

	ball := NewBall(100, 0, cfg)
	target, ok := p.CheckCollision(ball)
	if !ok || target != (Vec2{X: 300, Y: -300}) {
		t.Errorf("Expected target (300, -300), got %v ok=%v", target, ok)
	}

	ball.X, ball.Y = 300, -300
	target, ok = p.CheckCollision(ball)
	if !ok || target != (Vec2{X: 100, Y: 0}) {
		t.Errorf("Expected target (100, 0), got %v ok=%v", target, ok)
	}
}

// TestTeleporterCooldown verifies the cooldown suppresses triggers until it runs out
func TestTeleporterCooldown(t *testing.T) {
	cfg := DefaultConfig()
	p := NewTeleporterPair(0, 100, 0, 300, -300, cfg)
	platform := NewPlatform(10000, cfg)

	ball := NewBall(100, 0, cfg)
	ball.TeleportCooldown = cfg.TeleportCooldown
	if _, ok := p.CheckCollision(ball); ok {
		t.Fatal("Expected no trigger during cooldown")
	}
	ball.X, ball.Y = 300, -300
	if _, ok := p.CheckCollision(ball); ok {
		t.Fatal("Expected partner end suppressed during cooldown")
	}

	for i := 0; i < 31; i++ {
		ball.Update(platform, 1.0/60)
	}
	if ball.TeleportCooldown > 0 {
		t.Fatalf("Expected cooldown expired, got %.4f", ball.TeleportCooldown)
	}
	ball.X, ball.Y, ball.VX, ball.VY = 100, 0, 0, 0
	if _, ok := p.CheckCollision(ball); !ok {
		t.Error("Expected trigger after cooldown")
	}
}
