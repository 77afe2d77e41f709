package sim

// Hole ends the run when the ball rolls into it
type Hole struct {
	X, Y   float64
	Radius float64
}

// NewHole creates a hole at (x, y)
func NewHole(x, y float64, config Config) *Hole {
	return &Hole{X: x, Y: y, Radius: config.HoleRadius}
}

// Update is a no-op; holes are static
func (h *Hole) Update(dt float64) {}

// CheckCollision reports whether the ball overlaps the hole
func (h *Hole) CheckCollision(ball *Ball) bool {
	hit, _ := checkCircleCollision(Vec2{X: h.X, Y: h.Y}, h.Radius, ball.Position(), ball.Radius)
	return hit
}

// FinishLine is the goal of a level. y grows downward, so the line is reached
// once the ball is at or above it.
type FinishLine struct {
	Y float64
}

// CheckReached reports whether the ball has crossed the line
func (f *FinishLine) CheckReached(ball *Ball) bool {
	return ball.Y <= f.Y
}
