package sim

// MovingPlatform is a bar oscillating horizontally in [StartX, StartX+Range]
type MovingPlatform struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Direction     float64 // -1 or +1
	StartX        float64
	Range         float64
}

// NewMovingPlatform creates a platform with the default size and speed.
// Any direction other than -1 is treated as +1.
func NewMovingPlatform(x, y float64, direction int, config Config) *MovingPlatform {
	dir := 1.0
	if direction < 0 {
		dir = -1.0
	}
	return &MovingPlatform{
		X:         x,
		Y:         y,
		Width:     config.PlatformWidth,
		Height:    config.PlatformHeight,
		Speed:     config.PlatformMoveSpeed,
		Direction: dir,
		StartX:    x,
		Range:     config.PlatformRange,
	}
}

// Update moves the platform and reverses at the range bounds
func (m *MovingPlatform) Update(dt float64) {
	m.X += m.Speed * m.Direction * dt
	if m.X > m.StartX+m.Range {
		m.Direction = -1
	} else if m.X < m.StartX {
		m.Direction = 1
	}
}

// Bounds returns the platform's box
func (m *MovingPlatform) Bounds() Rect {
	return Rect{CX: m.X, CY: m.Y, Width: m.Width, Height: m.Height}
}

// CheckCollision reports whether the ball's bounding box overlaps the platform
func (m *MovingPlatform) CheckCollision(ball *Ball) bool {
	return checkRectOverlap(ball.Bounds(), m.Bounds())
}

// SpringState is the compression state of a spring
type SpringState int

const (
	SpringIdle SpringState = iota
	SpringCompressed
)

// Spring launches the ball upward once per compression cycle
type Spring struct {
	X, Y          float64
	Width, Height float64
	BouncePower   float64
	State         SpringState

	// compressedFor is the time spent compressed
	compressedFor float64
	release       float64
}

// NewSpring creates an idle spring
func NewSpring(x, y float64, config Config) *Spring {
	return &Spring{
		X:           x,
		Y:           y,
		Width:       config.SpringWidth,
		Height:      config.SpringHeight,
		BouncePower: config.SpringPower,
		release:     config.SpringRelease,
	}
}

// Update releases a compressed spring once the release time has passed
func (s *Spring) Update(dt float64) {
	if s.State != SpringCompressed {
		return
	}
	s.compressedFor += dt
	if s.compressedFor > s.release {
		s.State = SpringIdle
		s.compressedFor = 0
	}
}

// Bounds returns the spring's box
func (s *Spring) Bounds() Rect {
	return Rect{CX: s.X, CY: s.Y, Width: s.Width, Height: s.Height}
}

// CheckCollision compresses an idle spring the ball overlaps and reports
// whether it should launch the ball
func (s *Spring) CheckCollision(ball *Ball) bool {
	if !checkRectOverlap(ball.Bounds(), s.Bounds()) {
		return false
	}
	if s.State == SpringCompressed {
		return false
	}
	s.State = SpringCompressed
	s.compressedFor = 0
	return true
}
