package sim

import "testing"

// TestInputAdd verifies opposite pushes cancel and sums stay in range
func TestInputAdd(t *testing.T) {
	var in Input
	in = in.Add(Input{Left: -1})
	in = in.Add(Input{Left: 1})
	if in.Left != 0 {
		t.Errorf("Expected opposite keys to cancel, got %.2f", in.Left)
	}

	in = in.Add(Input{Right: -1}).Add(Input{Right: -1})
	if in.Right != -1 {
		t.Errorf("Expected right clamped to -1, got %.2f", in.Right)
	}

	in = Input{Left: 0.5}.Add(Input{Left: 0.25, Right: 2})
	if in.Left != 0.75 || in.Right != 1 {
		t.Errorf("Expected (0.75, 1), got (%.2f, %.2f)", in.Left, in.Right)
	}
}

// TestInputCancelHoldsPlatform verifies a cancelled end leaves the platform where it was
func TestInputCancelHoldsPlatform(t *testing.T) {
	p := NewPlatform(100, DefaultConfig())
	p.Apply(Input{Left: -1}.Add(Input{Left: 1}))
	if p.Y1 != 100 || p.Y2 != 100 {
		t.Errorf("Expected platform unchanged, got (%.1f, %.1f)", p.Y1, p.Y2)
	}
}
