package sim

import "testing"

// TestCameraFollow verifies the camera eases toward the anchor and round-trips coordinates
func TestCameraFollow(t *testing.T) {
	cam := NewCamera(800, 600, 220, -100)
	if cam.X != 0 || cam.Y != -460 {
		t.Fatalf("Expected camera snapped to (0, -460), got (%.2f, %.2f)", cam.X, cam.Y)
	}

	sx, sy := cam.WorldToScreen(220, -100)
	if sx != 220 || sy != 360 {
		t.Errorf("Expected ball at screen (220, 360), got (%.1f, %.1f)", sx, sy)
	}
	wx, wy := cam.ScreenToWorld(sx, sy)
	if wx != 220 || wy != -100 {
		t.Errorf("Round trip gave (%.1f, %.1f)", wx, wy)
	}

	cam.Follow(220, -200)
	if cam.Y != -470 {
		t.Errorf("Expected camera to cover 10%% of the gap, got y=%.2f", cam.Y)
	}
}
