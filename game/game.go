package game

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tiltball/config"
	"tiltball/save"
	"tiltball/sim"
)

// Game represents the main game state
type Game struct {
	app       config.App
	sim       *sim.Simulation
	clock     *sim.Clock
	camera    *sim.Camera
	renderer  *Renderer
	particles *ParticleSystem
	sprites   *Sprites
	sound     *SoundBoard

	// Controllers; the autopilot takes over when toggled with Tab
	player       *PlayerInput
	autopilot    *sim.AutoPilot
	useAutoPilot bool

	// Persisted progress and whether the current run was already folded into it
	progress save.Progress
	recorded bool
	newBest  bool

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	// Performance profiling
	profiler        *Profiler
	lastFPSDropTime time.Time
	fpsDropCooldown time.Duration

	// Game start time to ignore FPS drops during startup
	gameStartTime time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance and starts the first run
func NewGame(app config.App) (*Game, error) {
	progress, err := save.Load(app.SavePath)
	if err != nil {
		log.Printf("[SAVE] Warning: %v, playing without saved progress", err)
	}

	g := &Game{
		app:             app,
		clock:           sim.NewClock(app.Sim),
		particles:       NewParticleSystem(),
		sound:           NewSoundBoard(app.Sound, progress.VolumeLevel()),
		player:          NewPlayerInput(progress.Vibration),
		autopilot:       sim.NewAutoPilot(),
		progress:        progress,
		fps:             60.0,
		profiler:        NewProfiler(app.ProfileDir),
		fpsDropCooldown: 10 * time.Second,
		gameStartTime:   time.Now(),
		lastUpdateTime:  time.Now(),
	}
	cfg := app.Sim
	if g.sprites, err = LoadSprites(int(cfg.BallRadius*2), int(cfg.CoinRadius*2)); err != nil {
		log.Printf("[SPRITES] %v, using vector shapes", err)
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart throws away the current run and builds a new one
func (g *Game) restart() error {
	s, err := g.app.NewSimulation()
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}
	cfg := s.Config
	camera := sim.NewCamera(cfg.ScreenWidth, cfg.ScreenHeight, s.Ball.X, s.Ball.Y)
	s.AttachViewport(camera)

	g.sim = s
	g.camera = camera
	g.renderer = NewRenderer(camera, g.particles, g.sprites, cfg)
	g.particles.Clear()
	g.clock.Reset()
	g.recorded = false
	g.newBest = false
	g.lastUpdateTime = time.Now()
	return nil
}

// controller returns the active input provider
func (g *Game) controller() sim.InputProvider {
	if g.useAutoPilot {
		return g.autopilot
	}
	return g.player
}

// record folds a finished run into the saved progress once
func (g *Game) record() {
	if g.recorded {
		return
	}
	g.recorded = true

	session := g.sim.Session()
	g.newBest = g.progress.Fold(session)
	fmt.Printf("Run over (%s): score=%d coins=%d best=%d\n",
		g.sim.Outcome(), session.Score, session.Coins, g.progress.HighestScore)

	if err := save.Save(g.app.SavePath, g.progress); err != nil {
		log.Printf("[SAVE] Failed to save progress: %v", err)
	}
}

// handleKeys processes the shell's own keys
func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.sim.Outcome() == sim.OutcomeRunning {
		g.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.useAutoPilot = !g.useAutoPilot
	}

	// Debug overlays
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debug := GetDebugState()
		debug.ShowPath = !debug.ShowPath
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		debug := GetDebugState()
		debug.ShowBounds = !debug.ShowBounds
	}

	// Settings are saved as soon as they change
	before := g.progress
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.progress.SetVolume(before.Volume + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.progress.SetVolume(before.Volume - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.progress.Vibration = !g.progress.Vibration
		g.player.Vibration = g.progress.Vibration
	}
	if g.progress == before {
		return nil
	}
	if g.progress.Volume != before.Volume {
		g.sound.SetVolume(g.progress.VolumeLevel())
	}
	if err := save.Save(g.app.SavePath, g.progress); err != nil {
		log.Printf("[SAVE] Failed to save settings: %v", err)
	}
	return nil
}

// trackFPS updates the FPS counter and captures a profile on sustained drops
func (g *Game) trackFPS(deltaTime float64) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}
	g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0.0

	// Skip detection in the first 3 seconds after launch
	if g.fps >= 45.0 || time.Since(g.gameStartTime) < 3*time.Second || time.Since(g.lastFPSDropTime) < g.fpsDropCooldown {
		return
	}
	g.lastFPSDropTime = time.Now()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("FPS drop detected (%.0f FPS, %d obstacles). GC stats: NumGC=%d, HeapAlloc=%d KB\n",
		g.fps, g.sim.World.Count(), m.NumGC, m.HeapAlloc/1024)

	reason := fmt.Sprintf("fps%.0f-obstacles%d", g.fps, g.sim.World.Count())
	if err := g.profiler.CaptureProfile(reason); err != nil {
		fmt.Printf("Failed to capture profile: %v\n", err)
	}
}

// Update updates the game state
func (g *Game) Update() error {
	// Calculate delta time
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	if err := g.handleKeys(); err != nil {
		return err
	}
	g.trackFPS(deltaTime)

	in := g.controller()
	in.Update(deltaTime)

	steps := g.clock.Advance(deltaTime)
	for i := 0; i < steps; i++ {
		res := g.sim.Step(in.Read(g.sim), g.clock.Step)
		g.sound.Play(res.Events)
		g.particles.Emit(res.Events)
		g.player.Rumble(res.Events)
		if res.Outcome != sim.OutcomeRunning {
			g.record()
			break
		}
	}

	if !g.sim.Paused {
		g.particles.Update(deltaTime)
		if g.sim.Outcome() == sim.OutcomeRunning {
			g.camera.Follow(g.sim.Ball.X, g.sim.Ball.Y)
		}
	}
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.sim, HUD{
		Best:      g.progress.HighestScore,
		FPS:       g.fps,
		ShowFPS:   g.app.ShowFPS,
		AutoPilot: g.useAutoPilot,
		NewBest:   g.newBest,
	})
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.app.Sim.ScreenWidth), int(g.app.Sim.ScreenHeight)
}
