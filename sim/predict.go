package sim

// PredictPath returns where the ball would be over the next steps if the
// platform held still and no obstacle interfered. It works on copies, so the
// simulation itself is untouched. The first point is the current position.
func (s *Simulation) PredictPath(steps int) []Vec2 {
	ball := *s.Ball
	platform := *s.Platform
	dt := s.Config.StepDuration()

	path := make([]Vec2, 0, steps+1)
	path = append(path, ball.Position())
	if ball.IsFalling() {
		return path
	}
	for i := 0; i < steps; i++ {
		ball.Update(&platform, dt)
		path = append(path, ball.Position())
	}
	return path
}
