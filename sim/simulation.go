package sim

import (
	"math"
	"math/rand"
)

// Mode selects how a run ends
type Mode int

const (
	// ModeLevel ends at the world's finish line
	ModeLevel Mode = iota
	// ModeEndless keeps spawning obstacles until the ball is lost
	ModeEndless
)

func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "level"
}

// Outcome is the terminal state of a run
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "running"
	}
}

// StepResult is what one step changed, for the caller to fold into its own state
type StepResult struct {
	ScoreGained    int
	CoinsCollected int
	Events         []Event
	Outcome        Outcome
}

// Session is the running total of a run
type Session struct {
	Score   int
	Coins   int
	Victory bool
	Endless bool
}

// Simulation advances one run: platform, ball and obstacles
type Simulation struct {
	Config   Config
	Mode     Mode
	Platform *Platform
	Ball     *Ball
	World    *World
	Shake    *Shake
	Scorer   *Scorer
	Paused   bool

	// CoinListener, if set, is told about every collected coin
	CoinListener CoinListener

	viewport Viewport
	spawner  *Spawner
	startY   float64
	score    int
	coins    int
	outcome  Outcome
	onWall   bool
}

// NewSimulation creates a run over world. The platform starts at BallRadius and
// the ball 100 units above it. rng drives shake jitter and, in endless mode,
// obstacle spawning.
func NewSimulation(config Config, world *World, mode Mode, rng *rand.Rand) *Simulation {
	if world == nil {
		world = NewWorld(config)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	platform := NewPlatform(config.BallRadius, config)
	x, y := StartPosition(config)
	ball := NewBall(x, y, config)

	s := &Simulation{
		Config:   config,
		Mode:     mode,
		Platform: platform,
		Ball:     ball,
		World:    world,
		Shake:    NewShake(rng),
		Scorer:   NewScorer(ball.Y, config.ScoreUnit),
		startY:   ball.Y,
	}
	if mode == ModeEndless {
		s.spawner = NewSpawner(config, rng)
	}
	return s
}

// StartPosition returns where the ball is dropped: centered, 100 units above
// the starting platform
func StartPosition(config Config) (float64, float64) {
	return config.GameWidth / 2, config.BallRadius - config.BallRadius - 100
}

// AttachViewport sets the transform used for off-screen detection and spawn placement
func (s *Simulation) AttachViewport(v Viewport) {
	s.viewport = v
}

// Viewport returns the attached viewport, or nil
func (s *Simulation) Viewport() Viewport {
	return s.viewport
}

// Outcome returns the current terminal state
func (s *Simulation) Outcome() Outcome {
	return s.outcome
}

// StartY returns the ball's starting height
func (s *Simulation) StartY() float64 {
	return s.startY
}

// Session returns the totals of the run so far
func (s *Simulation) Session() Session {
	return Session{
		Score:   s.score,
		Coins:   s.coins,
		Victory: s.outcome == OutcomeWon,
		Endless: s.Mode == ModeEndless,
	}
}

// Progress returns how far the ball is from start to finish in [0, 1], or 0
// without a finish line
func (s *Simulation) Progress() float64 {
	if s.World.Finish == nil {
		return 0
	}
	total := math.Abs(s.startY - s.World.Finish.Y)
	if total == 0 {
		return 0
	}
	current := math.Abs(s.Ball.Y - s.World.Finish.Y)
	return math.Max(0, math.Min(1, 1-current/total))
}

// TogglePause flips the paused flag
func (s *Simulation) TogglePause() {
	s.Paused = !s.Paused
}

// Step advances the run by one fixed step of dt seconds
func (s *Simulation) Step(in Input, dt float64) StepResult {
	res := StepResult{Outcome: s.outcome}
	if s.outcome != OutcomeRunning || s.Paused {
		return res
	}

	ball := s.Ball
	// The finish line is checked even mid-fall
	if s.Mode == ModeLevel && s.World.Finish != nil && s.World.Finish.CheckReached(ball) {
		s.end(OutcomeWon, &res)
		return res
	}

	if ball.IsFalling() {
		ball.UpdateFallAnimation(dt)
		if ball.IsAnimationComplete() {
			s.end(OutcomeLost, &res)
		}
		return res
	}

	s.Platform.Apply(in)
	ball.Update(s.Platform, dt)

	if s.spawner != nil {
		s.spawner.Seed(s.World, s.viewTop())
	}

	s.accrue(&res)
	s.updateObstacles(dt, &res)

	if s.spawner != nil {
		s.spawner.Refill(s.World, s.Platform, s.viewTop())
	}

	touching := ball.CollisionSide()
	if touching {
		s.Shake.Trigger(s.Config.WallShake)
		if !s.onWall {
			res.Events = append(res.Events, Event{Kind: EventWall, X: ball.X, Y: ball.Y})
		}
	}
	s.onWall = touching

	s.checkHoles(&res)

	if !ball.IsFalling() && s.viewport != nil {
		_, sy := s.viewport.WorldToScreen(ball.X, ball.Y)
		if sy > s.Config.ScreenHeight+s.Config.OffscreenBuffer {
			s.end(OutcomeLost, &res)
		}
	}

	return res
}

// accrue converts new distance into points
func (s *Simulation) accrue(res *StepResult) {
	if gained := s.Scorer.Accrue(s.Ball.Y); gained > 0 {
		s.score += gained
		res.ScoreGained += gained
	}
}

// updateObstacles runs every obstacle category in priority order: moving
// platforms, springs, teleporters, coins
func (s *Simulation) updateObstacles(dt float64, res *StepResult) {
	ball := s.Ball
	cfg := s.Config

	for _, m := range s.World.MovingPlatforms {
		m.Update(dt)
		if m.CheckCollision(ball) {
			ball.VY = -math.Abs(ball.VY) * cfg.PlatformBumpDamping
			s.Shake.Trigger(cfg.BumpShake)
			res.Events = append(res.Events, Event{Kind: EventBump, X: ball.X, Y: ball.Y})
		}
	}

	for _, sp := range s.World.Springs {
		sp.Update(dt)
		if sp.CheckCollision(ball) {
			ball.VY = -sp.BouncePower
			s.Shake.Trigger(cfg.SpringShake)
			res.Events = append(res.Events, Event{Kind: EventSpring, X: sp.X, Y: sp.Y})
		}
	}

	teleported := false
	for _, pair := range s.World.Teleporters {
		pair.Update(dt)
		if teleported {
			continue
		}
		if target, ok := pair.CheckCollision(ball); ok {
			ball.X, ball.Y = target.X, target.Y
			ball.VX *= cfg.TeleportDamping
			ball.VY *= cfg.TeleportDamping
			ball.TeleportCooldown = cfg.TeleportCooldown
			s.Shake.Trigger(cfg.TeleportShake)
			res.Events = append(res.Events, Event{Kind: EventTeleport, X: target.X, Y: target.Y})
			teleported = true
		}
	}

	for _, c := range s.World.Coins {
		c.Update(dt)
		if c.CheckCollision(ball) && c.Collect(s.CoinListener) {
			s.coins++
			s.score += cfg.CoinScore
			res.CoinsCollected++
			res.ScoreGained += cfg.CoinScore
			s.Shake.Trigger(cfg.CoinShake)
			res.Events = append(res.Events, Event{Kind: EventCoin, X: c.X, Y: c.Y})
		}
	}
}

// checkHoles starts the fall into the first hole the ball overlaps
func (s *Simulation) checkHoles(res *StepResult) {
	ball := s.Ball
	for _, h := range s.World.Holes {
		if !h.CheckCollision(ball) || ball.IsFalling() {
			continue
		}
		// Points for the ground covered this step still count
		s.accrue(res)
		ball.StartFallAnimation(h.X, h.Y)
		s.Shake.Trigger(s.Config.HoleShake)
		res.Events = append(res.Events, Event{Kind: EventHole, X: h.X, Y: h.Y})
		return
	}
}

func (s *Simulation) end(outcome Outcome, res *StepResult) {
	s.outcome = outcome
	res.Outcome = outcome
	kind := EventGameOver
	if outcome == OutcomeWon {
		kind = EventFinish
	}
	res.Events = append(res.Events, Event{Kind: kind, X: s.Ball.X, Y: s.Ball.Y})
}

// viewTop returns the world y at the top of the screen
func (s *Simulation) viewTop() float64 {
	if s.viewport != nil {
		_, y := s.viewport.ScreenToWorld(0, 0)
		return y
	}
	return s.Ball.Y - s.Config.ScreenHeight*0.6
}
