package sim

// Clock converts variable frame times into a whole number of fixed steps
type Clock struct {
	Step     float64
	MaxSteps int

	accumulator float64
}

// NewClock creates a clock from the configured step rate
func NewClock(config Config) *Clock {
	maxSteps := config.MaxStepsPerFrame
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &Clock{Step: config.StepDuration(), MaxSteps: maxSteps}
}

// Advance adds frame time and returns how many steps to run now. Time beyond
// MaxSteps is dropped so a long stall does not snowball.
func (c *Clock) Advance(frameDT float64) int {
	if frameDT > 0 {
		c.accumulator += frameDT
	}
	// Absorb float drift so 60 frames of 1/60s give exactly 60 steps
	const slack = 1e-9
	steps := 0
	for c.accumulator+slack >= c.Step && steps < c.MaxSteps {
		c.accumulator -= c.Step
		steps++
	}
	if steps == c.MaxSteps && c.accumulator >= c.Step {
		c.accumulator = 0
	}
	if c.accumulator < 0 {
		c.accumulator = 0
	}
	return steps
}

// Reset drops any accumulated time
func (c *Clock) Reset() {
	c.accumulator = 0
}
