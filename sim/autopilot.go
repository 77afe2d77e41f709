package sim

import "math"

// AutoPilot drives the platform without a player: it keeps climbing, rolls the
// ball toward the nearest coin ahead and steers around holes in its path
type AutoPilot struct {
	// LookAhead is how far above the ball obstacles are considered
	LookAhead float64

	// Clearance is the extra gap kept from a hole's edge
	Clearance float64

	// Climb is the base raise speed factor for both ends
	Climb float64

	// TargetX is the x the autopilot steered toward on the last read
	TargetX float64
}

// NewAutoPilot creates an autopilot with default tuning
func NewAutoPilot() *AutoPilot {
	return &AutoPilot{
		LookAhead: 260,
		Clearance: 12,
		Climb:     0.6,
	}
}

// Update is a no-op; every read is computed from the current simulation state
func (a *AutoPilot) Update(deltaTime float64) {}

// Read returns the platform control for the next step
func (a *AutoPilot) Read(s *Simulation) Input {
	ball := s.Ball
	if ball.IsFalling() {
		return Input{}
	}

	target := a.pickTarget(s)
	target = a.avoidHoles(s, target)
	a.TargetX = target

	// Roll toward the target and damp current speed so the ball does not overshoot
	width := s.Config.GameWidth
	tilt := clampAxis((target-ball.X)/width*4 - ball.VX*0.15)

	left, right := -a.Climb, -a.Climb
	if tilt > 0 {
		// Raising the left end more makes the ball roll right
		right += tilt * a.Climb
		left -= tilt * (1 - a.Climb)
	} else {
		left -= tilt * a.Climb
		right += tilt * (1 - a.Climb)
	}
	return Input{Left: clampAxis(left), Right: clampAxis(right)}
}

// pickTarget returns the x of the nearest coin ahead, or the ball's own x
func (a *AutoPilot) pickTarget(s *Simulation) float64 {
	ball := s.Ball
	best := ball.X
	bestDist := math.Inf(1)
	for _, c := range s.World.Coins {
		if c.Collected() {
			continue
		}
		ahead := ball.Y - c.Y
		if ahead < 0 || ahead > a.LookAhead {
			continue
		}
		d := math.Hypot(c.X-ball.X, ahead)
		if d < bestDist {
			bestDist = d
			best = c.X
		}
	}
	return best
}

// avoidHoles shifts target out of the way of the closest hole ahead that the
// ball would pass through
func (a *AutoPilot) avoidHoles(s *Simulation, target float64) float64 {
	ball := s.Ball
	width := s.Config.GameWidth
	var threat *Hole
	for _, h := range s.World.Holes {
		ahead := ball.Y - h.Y
		if ahead < -h.Radius || ahead > a.LookAhead {
			continue
		}
		gap := h.Radius + ball.Radius + a.Clearance
		if math.Abs(h.X-target) >= gap && math.Abs(h.X-ball.X) >= gap {
			continue
		}
		if threat == nil || h.Y > threat.Y {
			threat = h
		}
	}
	if threat == nil {
		return target
	}

	gap := threat.Radius + ball.Radius + a.Clearance
	leftX := threat.X - gap
	rightX := threat.X + gap
	leftOK := leftX >= ball.Radius
	rightOK := rightX <= width-ball.Radius
	switch {
	case leftOK && rightOK:
		if math.Abs(leftX-ball.X) <= math.Abs(rightX-ball.X) {
			return leftX
		}
		return rightX
	case leftOK:
		return leftX
	case rightOK:
		return rightX
	default:
		return target
	}
}
