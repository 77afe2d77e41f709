package sim

// Viewport maps between world and screen coordinates
type Viewport interface {
	WorldToScreen(wx, wy float64) (float64, float64)
	ScreenToWorld(sx, sy float64) (float64, float64)
}

// Camera represents the viewport into the world. X, Y is the world point
// shown at the top-left corner of the screen.
type Camera struct {
	X, Y   float64 // Camera position in world coordinates
	Width  float64 // Viewport width
	Height float64 // Viewport height
	Smooth float64 // Fraction of the remaining distance covered per follow

	// AnchorY is where the target sits on screen, as a fraction of Height
	AnchorY float64
}

// NewCamera creates a camera already centered on the target
func NewCamera(width, height, targetX, targetY float64) *Camera {
	c := &Camera{
		Width:   width,
		Height:  height,
		Smooth:  1,
		AnchorY: 0.6,
	}
	c.Follow(targetX, targetY)
	c.Smooth = 0.1
	return c
}

// Follow eases the camera so the target drifts toward its anchor. The target
// keeps its own x on screen, so the camera x settles at 0.
func (c *Camera) Follow(targetX, targetY float64) {
	screenX := targetX
	screenY := c.Height * c.AnchorY
	c.X += (targetX - screenX - c.X) * c.Smooth
	c.Y += (targetY - screenY - c.Y) * c.Smooth
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - c.X, wy - c.Y
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + c.X, sy + c.Y
}
