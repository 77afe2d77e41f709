package sim

import "math"

// Vec2 is a point or offset in world coordinates
type Vec2 struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box described by its center and size
type Rect struct {
	CX, CY        float64
	Width, Height float64
}

// Left returns the left edge of the box
func (r Rect) Left() float64 { return r.CX - r.Width/2 }

// Right returns the right edge of the box
func (r Rect) Right() float64 { return r.CX + r.Width/2 }

// Top returns the top edge of the box
func (r Rect) Top() float64 { return r.CY - r.Height/2 }

// Bottom returns the bottom edge of the box
func (r Rect) Bottom() float64 { return r.CY + r.Height/2 }

// checkCircleCollision reports whether two circles touch or overlap.
// Touching counts as a hit.
func checkCircleCollision(pos1 Vec2, radius1 float64, pos2 Vec2, radius2 float64) (bool, float64) {
	dist := math.Hypot(pos1.X-pos2.X, pos1.Y-pos2.Y)
	return dist <= radius1+radius2, dist
}

// checkRectOverlap reports strict overlap between two boxes; shared edges do not count
func checkRectOverlap(a, b Rect) bool {
	return a.Right() > b.Left() &&
		a.Left() < b.Right() &&
		a.Bottom() > b.Top() &&
		a.Top() < b.Bottom()
}
