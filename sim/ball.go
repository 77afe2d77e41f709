package sim

import "math"

// BallPhase is the ball's motion state
type BallPhase int

const (
	// BallFree is normal gravity and collision integration
	BallFree BallPhase = iota
	// BallFalling is the terminal fall-into-hole animation
	BallFalling
)

// Ball is the player's ball
type Ball struct {
	X, Y   float64
	VX, VY float64
	Bounce float64
	Radius float64

	// TeleportCooldown is the time left before another teleport may trigger
	TeleportCooldown float64

	Phase BallPhase

	// Fall animation, valid while Phase == BallFalling
	fallProgress float64
	fallStart    Vec2
	fallTarget   Vec2

	gravity      float64
	tilt         float64
	restVelocity float64
	epsilon      float64
	fallRate     float64
	wallRight    float64
}

// NewBall creates a ball at rest at (x, y)
func NewBall(x, y float64, config Config) *Ball {
	return &Ball{
		X:            x,
		Y:            y,
		Bounce:       config.Bounce,
		Radius:       config.BallRadius,
		Phase:        BallFree,
		gravity:      config.Gravity,
		tilt:         config.TiltSensitivity,
		restVelocity: config.RestVelocity,
		epsilon:      config.CollisionEpsilon,
		fallRate:     config.FallRate,
		wallRight:    config.GameWidth,
	}
}

// Position returns the ball center
func (b *Ball) Position() Vec2 {
	return Vec2{X: b.X, Y: b.Y}
}

// Bounds returns the ball's bounding box
func (b *Ball) Bounds() Rect {
	return Rect{CX: b.X, CY: b.Y, Width: b.Radius * 2, Height: b.Radius * 2}
}

// IsFalling reports whether the fall animation has started
func (b *Ball) IsFalling() bool {
	return b.Phase == BallFalling
}

// Update advances the ball by one fixed step against the platform.
// Gravity is a per-step impulse; dt only drives the teleport cooldown.
func (b *Ball) Update(p *Platform, dt float64) {
	if b.Phase == BallFalling {
		return
	}

	if b.TeleportCooldown > 0 {
		b.TeleportCooldown -= dt
	}

	b.VY += b.gravity
	b.X += b.VX
	b.Y += b.VY

	// Side walls
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.VX = -b.VX * b.Bounce
	} else if b.X+b.Radius > b.wallRight {
		b.X = b.wallRight - b.Radius
		b.VX = -b.VX * b.Bounce
	}

	if p.Width == 0 {
		return
	}
	dy := p.Y2 - p.Y1
	yGround := p.GroundY(b.X)

	// Only a ball moving down onto the line from above collides
	ground := yGround - b.epsilon
	if b.VY > 0 && b.Y+b.Radius >= ground && ground >= b.Y-b.Radius {
		b.VY = -b.VY * b.Bounce
		b.Y = yGround - b.Radius
		if math.Abs(b.VY) < b.restVelocity {
			b.VY = 0
		}

		angle := math.Atan2(dy, p.Width)
		b.VX += b.gravity * math.Sin(angle) * b.tilt
	}
}

// CollisionSide reports whether the ball touches either side wall
func (b *Ball) CollisionSide() bool {
	return b.X-b.Radius <= 0 || b.X+b.Radius >= b.wallRight
}

// StartFallAnimation freezes the ball and starts sliding it into the hole at (x, y).
// Calling it again while falling does nothing.
func (b *Ball) StartFallAnimation(x, y float64) {
	if b.Phase == BallFalling {
		return
	}
	b.Phase = BallFalling
	b.fallProgress = 0
	b.fallStart = Vec2{X: b.X, Y: b.Y}
	b.fallTarget = Vec2{X: x, Y: y}
	b.VX = 0
	b.VY = 0
}

// UpdateFallAnimation advances the fall with a cubic ease-in
func (b *Ball) UpdateFallAnimation(dt float64) {
	if b.Phase != BallFalling {
		return
	}
	b.fallProgress += dt * b.fallRate
	if b.fallProgress >= 1 {
		b.fallProgress = 1
		b.X = b.fallTarget.X
		b.Y = b.fallTarget.Y
		return
	}
	eased := b.eased()
	b.X = b.fallStart.X + (b.fallTarget.X-b.fallStart.X)*eased
	b.Y = b.fallStart.Y + (b.fallTarget.Y-b.fallStart.Y)*eased
}

// IsAnimationComplete reports whether the fall has reached the hole center
func (b *Ball) IsAnimationComplete() bool {
	return b.Phase == BallFalling && b.fallProgress >= 1
}

// FallProgress returns the linear fall progress in [0, 1]
func (b *Ball) FallProgress() float64 {
	return b.fallProgress
}

// DisplayRadius returns the radius to draw; it shrinks to zero during the fall
func (b *Ball) DisplayRadius() float64 {
	if b.Phase != BallFalling {
		return b.Radius
	}
	return b.Radius * (1 - b.eased())
}

func (b *Ball) eased() float64 {
	t := b.fallProgress
	return t * t * t
}
