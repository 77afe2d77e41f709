package sim

import (
	"math"
	"testing"
)

// flatPlatform returns a level platform at height y
func flatPlatform(y float64) *Platform {
	return NewPlatform(y, DefaultConfig())
}

// TestBallBounceRestitution verifies a landing reflects vy scaled by the bounce factor
func TestBallBounceRestitution(t *testing.T) {
	cfg := DefaultConfig()
	p := flatPlatform(300)
	b := NewBall(220, 276, cfg)
	b.VY = 4

	b.Update(p, 1.0/60)

	// Gravity is applied before the landing is resolved
	want := -(4 + cfg.Gravity) * cfg.Bounce
	if math.Abs(b.VY-want) > 1e-9 {
		t.Errorf("Expected vy %.4f after bounce, got %.4f", want, b.VY)
	}
	if math.Abs(b.VY) > cfg.Bounce*(4+cfg.Gravity)+1e-9 {
		t.Errorf("Rebound speed %.4f exceeds restitution bound", math.Abs(b.VY))
	}
	if b.Y != 300-cfg.BallRadius {
		t.Errorf("Expected ball snapped to %.1f, got %.4f", 300-cfg.BallRadius, b.Y)
	}
	if b.VX != 0 {
		t.Errorf("Flat platform should not push the ball sideways, got vx %.4f", b.VX)
	}
}

// TestBallIgnoresPlatformWhenRising verifies an upward-moving ball passes through the line
func TestBallIgnoresPlatformWhenRising(t *testing.T) {
	cfg := DefaultConfig()
	p := flatPlatform(300)
	b := NewBall(220, 295, cfg)
	b.VY = -10

	b.Update(p, 1.0/60)

	if b.VY != -10+cfg.Gravity {
		t.Errorf("Expected vy %.2f, got %.2f", -10+cfg.Gravity, b.VY)
	}
}

// TestBallTiltAcceleratesDownhill verifies landing on a slope pushes the ball toward the low end
func TestBallTiltAcceleratesDownhill(t *testing.T) {
	cfg := DefaultConfig()
	p := flatPlatform(300)
	p.Y2 = 340 // right end lower

	b := NewBall(220, p.GroundY(220)-cfg.BallRadius-0.2, cfg)
	b.Update(p, 1.0/60)

	if b.VX <= 0 {
		t.Errorf("Expected positive vx on a right-down slope, got %.4f", b.VX)
	}
	want := cfg.Gravity * math.Sin(math.Atan2(40, cfg.GameWidth)) * cfg.TiltSensitivity
	if math.Abs(b.VX-want) > 1e-9 {
		t.Errorf("Expected vx %.5f, got %.5f", want, b.VX)
	}
}

// TestBallWallReflection verifies the wall clamp and reflected horizontal speed
func TestBallWallReflection(t *testing.T) {
	cfg := DefaultConfig()
	p := flatPlatform(300)

	b := NewBall(cfg.BallRadius-1, 0, cfg)
	b.VX = -5
	b.Update(p, 1.0/60)

	if b.X != cfg.BallRadius {
		t.Errorf("Expected x clamped to %.1f, got %.4f", cfg.BallRadius, b.X)
	}
	if b.VX != 5*cfg.Bounce {
		t.Errorf("Expected vx %.2f, got %.4f", 5*cfg.Bounce, b.VX)
	}
	if !b.CollisionSide() {
		t.Error("Expected ball to report side contact")
	}

	r := NewBall(cfg.GameWidth-cfg.BallRadius+1, 0, cfg)
	r.VX = 5
	r.Update(p, 1.0/60)
	if r.X != cfg.GameWidth-cfg.BallRadius {
		t.Errorf("Expected x clamped to %.1f, got %.4f", cfg.GameWidth-cfg.BallRadius, r.X)
	}
	if r.VX != -5*cfg.Bounce {
		t.Errorf("Expected vx %.2f, got %.4f", -5*cfg.Bounce, r.VX)
	}
}

// TestBallDropSettles drops the ball from rest and checks it bounces with shrinking
// peaks and then settles on the platform
func TestBallDropSettles(t *testing.T) {
	cfg := DefaultConfig()
	p := flatPlatform(300)
	b := NewBall(220, 100, cfg)
	rest := 300 - cfg.BallRadius

	var peaks []float64
	peak := b.Y
	rising := false
	for i := 0; i < 400; i++ {
		prevVY := b.VY
		b.Update(p, 1.0/60)

		if b.VY < 0 && prevVY >= 0 && b.Y == rest {
			rising = true
			peak = b.Y
		}
		if rising {
			if b.Y < peak {
				peak = b.Y
			}
			if b.VY >= 0 {
				if peak < rest-1 {
					peaks = append(peaks, peak)
				}
				rising = false
			}
		}
	}

	if len(peaks) < 2 {
		t.Fatalf("Expected at least 2 visible bounces, got %d", len(peaks))
	}
	for i := 1; i < len(peaks); i++ {
		if peaks[i] <= peaks[i-1] {
			t.Errorf("Bounce %d peaked at %.3f, not lower than previous %.3f", i, peaks[i], peaks[i-1])
		}
	}
	if b.Y != rest {
		t.Errorf("Expected ball to settle at %.1f, got %.4f", rest, b.Y)
	}
	if math.Abs(b.VY) > 0.5 {
		t.Errorf("Expected ball at rest, got vy %.4f", b.VY)
	}

	// Resting ball alternates between a tiny rebound and zero
	sawZero := false
	for i := 0; i < 4; i++ {
		b.Update(p, 1.0/60)
		if b.Y != rest {
			t.Errorf("Resting ball drifted to %.4f", b.Y)
		}
		if b.VY == 0 {
			sawZero = true
		}
	}
	if !sawZero {
		t.Error("Expected vy to be zeroed while resting")
	}
}

// TestBallFallAnimation verifies the eased slide into a hole and its terminal state
func TestBallFallAnimation(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBall(220, -100, cfg)
	b.VX, b.VY = 3, 4

	b.StartFallAnimation(100, 50)
	if !b.IsFalling() {
		t.Fatal("Expected ball to be falling")
	}
	if b.VX != 0 || b.VY != 0 {
		t.Errorf("Expected velocity zeroed, got (%.2f, %.2f)", b.VX, b.VY)
	}

	// Starting again must not move the target
	b.StartFallAnimation(0, 0)

	b.UpdateFallAnimation(0.25) // progress 0.5, eased 0.125
	if math.Abs(b.X-205) > 1e-9 || math.Abs(b.Y-(-81.25)) > 1e-9 {
		t.Errorf("Expected (205, -81.25) halfway, got (%.4f, %.4f)", b.X, b.Y)
	}
	if math.Abs(b.DisplayRadius()-17.5) > 1e-9 {
		t.Errorf("Expected display radius 17.5, got %.4f", b.DisplayRadius())
	}
	if b.IsAnimationComplete() {
		t.Error("Animation should not be complete at half progress")
	}

	// Physics is frozen while falling
	b.Update(flatPlatform(300), 1.0/60)
	if math.Abs(b.X-205) > 1e-9 {
		t.Errorf("Update moved a falling ball to x=%.4f", b.X)
	}

	for i := 0; i < 10; i++ {
		b.UpdateFallAnimation(0.1)
	}
	if !b.IsAnimationComplete() {
		t.Fatal("Expected animation complete")
	}
	if b.X != 100 || b.Y != 50 {
		t.Errorf("Expected ball exactly at hole (100, 50), got (%.6f, %.6f)", b.X, b.Y)
	}
	if b.DisplayRadius() != 0 {
		t.Errorf("Expected display radius 0, got %.4f", b.DisplayRadius())
	}
}

// TestTeleportCooldownDecrements verifies Update counts the cooldown down by dt
func TestTeleportCooldownDecrements(t *testing.T) {
	cfg := DefaultConfig()
	b := NewBall(220, -500, cfg)
	b.TeleportCooldown = 0.5

	b.Update(flatPlatform(300), 0.1)
	if math.Abs(b.TeleportCooldown-0.4) > 1e-9 {
		t.Errorf("Expected cooldown 0.4, got %.4f", b.TeleportCooldown)
	}
}
