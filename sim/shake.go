package sim

import "math/rand"

// Shake is a countdown magnitude that produces bounded screen jitter
type Shake struct {
	Magnitude int
	rng       *rand.Rand
}

// NewShake creates a shake driven by rng
func NewShake(rng *rand.Rand) *Shake {
	return &Shake{rng: rng}
}

// Trigger replaces the current magnitude; the latest trigger wins
func (s *Shake) Trigger(magnitude int) {
	s.Magnitude = magnitude
}

// Offset returns the jitter for this frame. Each call with a positive
// magnitude consumes one unit and returns offsets in [-2, 2].
func (s *Shake) Offset() (int, int) {
	if s.Magnitude <= 0 {
		return 0, 0
	}
	s.Magnitude--
	return s.rng.Intn(5) - 2, s.rng.Intn(5) - 2
}
