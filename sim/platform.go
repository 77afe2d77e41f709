package sim

import "math"

// Platform is the tiltable line segment from (0, Y1) to (GameWidth, Y2).
// |Y1-Y2| never exceeds MaxSlope after a move.
type Platform struct {
	Y1, Y2   float64
	Speed    float64 // Height change per control tick at full deflection
	MaxSlope float64
	Width    float64
}

// NewPlatform creates a level platform at height y
func NewPlatform(y float64, config Config) *Platform {
	return &Platform{
		Y1:       y,
		Y2:       y,
		Speed:    config.PlatformSpeed,
		MaxSlope: config.MaxSlope,
		Width:    config.GameWidth,
	}
}

// Move raises (up) or lowers the selected endpoints by Speed*speedFactor.
// The left endpoint is applied first. When a move breaks the slope limit the
// other endpoint is dragged along so the moved one keeps its new height.
func (p *Platform) Move(left, right, up bool, speedFactor float64) {
	if math.IsNaN(speedFactor) || speedFactor < 0 {
		speedFactor = 0
	} else if speedFactor > 1 {
		speedFactor = 1
	}
	delta := p.Speed * speedFactor
	if up {
		delta = -delta
	}

	if left {
		p.Y1 += delta
		if p.Y2 > p.Y1+p.MaxSlope {
			p.Y2 = p.Y1 + p.MaxSlope
		} else if p.Y2 < p.Y1-p.MaxSlope {
			p.Y2 = p.Y1 - p.MaxSlope
		}
	}
	if right {
		p.Y2 += delta
		if p.Y1 > p.Y2+p.MaxSlope {
			p.Y1 = p.Y2 + p.MaxSlope
		} else if p.Y1 < p.Y2-p.MaxSlope {
			p.Y1 = p.Y2 - p.MaxSlope
		}
	}
}

// Apply moves both endpoints from an analog input, negative values raise
func (p *Platform) Apply(in Input) {
	if in.Left != 0 {
		p.Move(true, false, in.Left < 0, math.Abs(in.Left))
	}
	if in.Right != 0 {
		p.Move(false, true, in.Right < 0, math.Abs(in.Right))
	}
}

// GroundY returns the platform height under x
func (p *Platform) GroundY(x float64) float64 {
	return p.Slope()*x + p.Y1
}

// Slope returns dy/dx of the platform line
func (p *Platform) Slope() float64 {
	if p.Width == 0 {
		return 0
	}
	return (p.Y2 - p.Y1) / p.Width
}

// Top returns the highest point of the platform (smallest y)
func (p *Platform) Top() float64 {
	return math.Min(p.Y1, p.Y2)
}
