package sim

// Input is one step of platform control. Each axis is in [-1, 1]; negative
// raises that end of the platform and the magnitude is the speed factor.
type Input struct {
	Left  float64
	Right float64
}

// Add combines two controls axis by axis, clamped to [-1, 1]. Opposite
// pushes on one end cancel out.
func (in Input) Add(other Input) Input {
	return Input{
		Left:  clampAxis(in.Left + other.Left),
		Right: clampAxis(in.Right + other.Right),
	}
}

// InputProvider defines the interface for anything that drives the platform
type InputProvider interface {
	// Update updates the input provider state
	Update(deltaTime float64)

	// Read returns the control for the next step
	Read(s *Simulation) Input
}

// clampAxis limits an axis value to [-1, 1]
func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
