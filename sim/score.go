package sim

import "math"

// Scorer turns distance climbed from the start line into points.
// It only counts new ground, so backtracking never costs or repays points.
type Scorer struct {
	StartY float64
	Unit   float64

	// counted is the distance already converted into points
	counted float64
}

// NewScorer creates a scorer measuring from startY
func NewScorer(startY, unit float64) *Scorer {
	if unit <= 0 {
		unit = 10
	}
	return &Scorer{StartY: startY, Unit: unit}
}

// Accrue returns the points earned by the ball reaching y
func (s *Scorer) Accrue(y float64) int {
	distance := s.StartY - y
	if distance <= s.counted {
		return 0
	}
	gained := int(math.Floor((distance - s.counted) / s.Unit))
	if gained <= 0 {
		return 0
	}
	s.counted += float64(gained) * s.Unit
	return gained
}

// Distance returns the distance already converted into points
func (s *Scorer) Distance() float64 {
	return s.counted
}
