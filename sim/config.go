package sim

// Config holds physics and gameplay constants
type Config struct {
	// GameWidth is the width of the playfield in world units; the platform spans [0, GameWidth]
	GameWidth float64

	// GameHeight is the height of the visible playfield in world units
	GameHeight float64

	// ScreenWidth is the viewport width in pixels
	ScreenWidth float64

	// ScreenHeight is the viewport height in pixels
	ScreenHeight float64

	// StepRate is the number of fixed simulation steps per second
	StepRate float64

	// MaxStepsPerFrame caps how many fixed steps a single rendered frame may run
	MaxStepsPerFrame int

	// Ball
	BallRadius       float64
	Bounce           float64 // Restitution coefficient
	Gravity          float64 // Velocity added per step
	TiltSensitivity  float64
	RestVelocity     float64 // Bounce speeds below this are zeroed
	CollisionEpsilon float64
	FallRate         float64 // Fall animation progress per second

	// Platform
	MaxSlope      float64
	PlatformSpeed float64

	// Obstacles
	HoleRadius          float64
	CoinRadius          float64
	CoinScore           int
	TeleporterRadius    float64
	TeleportCooldown    float64
	TeleportDamping     float64
	SpringWidth         float64
	SpringHeight        float64
	SpringPower         float64
	SpringRelease       float64
	PlatformWidth       float64
	PlatformHeight      float64
	PlatformMoveSpeed   float64
	PlatformRange       float64
	PlatformBumpDamping float64

	// Shake magnitudes per event
	BumpShake     int
	SpringShake   int
	TeleportShake int
	CoinShake     int
	WallShake     int
	HoleShake     int

	// ScoreUnit is the distance worth one point
	ScoreUnit float64

	// OffscreenBuffer is how far below the screen the ball may drop before the run is lost
	OffscreenBuffer float64
}

// DefaultConfig returns the standard tuning
func DefaultConfig() Config {
	return Config{
		GameWidth:        440, // 0.55 of the screen width
		GameHeight:       440,
		ScreenWidth:      800,
		ScreenHeight:     600,
		StepRate:         60,
		MaxStepsPerFrame: 5,

		BallRadius:       20,
		Bounce:           0.7,
		Gravity:          0.5,
		TiltSensitivity:  6.0,
		RestVelocity:     0.2,
		CollisionEpsilon: 1e-3,
		FallRate:         2.0,

		MaxSlope:      50,
		PlatformSpeed: 5,

		HoleRadius:          25,
		CoinRadius:          12,
		CoinScore:           50,
		TeleporterRadius:    25,
		TeleportCooldown:    0.5,
		TeleportDamping:     0.5,
		SpringWidth:         40,
		SpringHeight:        15,
		SpringPower:         15,
		SpringRelease:       0.1,
		PlatformWidth:       100,
		PlatformHeight:      10,
		PlatformMoveSpeed:   50,
		PlatformRange:       200,
		PlatformBumpDamping: 0.3,

		BumpShake:     3,
		SpringShake:   5,
		TeleportShake: 8,
		CoinShake:     2,
		WallShake:     10,
		HoleShake:     50,

		ScoreUnit:       10,
		OffscreenBuffer: 100,
	}
}

// StepDuration returns the length of one fixed step in seconds
func (c Config) StepDuration() float64 {
	if c.StepRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / c.StepRate
}
