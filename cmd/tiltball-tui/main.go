// Command tiltball-tui plays tiltball in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"tiltball/config"
	"tiltball/save"
	"tiltball/sim"
)

// keyHold is how long one key press keeps an end moving. Terminals only
// report presses, so auto-repeat keeps the hold alive.
const keyHold = 0.15

// keyInput turns terminal key presses into platform control
type keyInput struct {
	left, right         float64
	leftHold, rightHold float64
}

func (k *keyInput) press(left bool, v float64) {
	if left {
		k.left, k.leftHold = v, keyHold
	} else {
		k.right, k.rightHold = v, keyHold
	}
}

// Update expires holds that were not refreshed
func (k *keyInput) Update(deltaTime float64) {
	k.leftHold -= deltaTime
	if k.leftHold <= 0 {
		k.left = 0
	}
	k.rightHold -= deltaTime
	if k.rightHold <= 0 {
		k.right = 0
	}
}

func (k *keyInput) Read(s *sim.Simulation) sim.Input {
	return sim.Input{Left: k.left, Right: k.right}
}

type tui struct {
	app      config.App
	screen   tcell.Screen
	sim      *sim.Simulation
	camera   *sim.Camera
	clock    *sim.Clock
	keys     *keyInput
	pilot    *sim.AutoPilot
	auto     bool
	progress save.Progress
	recorded bool
	width    int
	height   int
}

func newTUI(app config.App) (*tui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	progress, err := save.Load(app.SavePath)
	if err != nil {
		log.Printf("[SAVE] Warning: %v", err)
	}

	t := &tui{
		app:      app,
		screen:   screen,
		clock:    sim.NewClock(app.Sim),
		keys:     &keyInput{},
		pilot:    sim.NewAutoPilot(),
		progress: progress,
	}
	t.width, t.height = screen.Size()
	if err := t.restart(); err != nil {
		screen.Fini()
		return nil, err
	}
	return t, nil
}

func (t *tui) restart() error {
	s, err := t.app.NewSimulation()
	if err != nil {
		return err
	}
	cfg := s.Config
	t.camera = sim.NewCamera(cfg.ScreenWidth, cfg.ScreenHeight, s.Ball.X, s.Ball.Y)
	s.AttachViewport(t.camera)
	t.sim = s
	t.recorded = false
	t.clock.Reset()
	return nil
}

func (t *tui) controller() sim.InputProvider {
	if t.auto {
		return t.pilot
	}
	return t.keys
}

// handleInput returns false when the player quits
func (t *tui) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.keys.press(false, -1)
		case tcell.KeyDown:
			t.keys.press(false, 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				t.keys.press(true, -1)
			case 's':
				t.keys.press(true, 1)
			case 'p':
				if t.sim.Outcome() == sim.OutcomeRunning {
					t.sim.TogglePause()
				}
			case 'a':
				t.auto = !t.auto
			case 'r':
				if err := t.restart(); err != nil {
					log.Printf("[RUN] Restart failed: %v", err)
					return false
				}
			}
		}
	case *tcell.EventResize:
		t.width, t.height = t.screen.Size()
		t.screen.Sync()
	}
	return true
}

func (t *tui) update(dt float64) {
	in := t.controller()
	in.Update(dt)
	for i, n := 0, t.clock.Advance(dt); i < n; i++ {
		res := t.sim.Step(in.Read(t.sim), t.clock.Step)
		if res.Outcome != sim.OutcomeRunning {
			t.record()
			break
		}
	}
	if !t.sim.Paused && t.sim.Outcome() == sim.OutcomeRunning {
		t.camera.Follow(t.sim.Ball.X, t.sim.Ball.Y)
	}
}

func (t *tui) record() {
	if t.recorded {
		return
	}
	t.recorded = true
	t.progress.Fold(t.sim.Session())
	if err := save.Save(t.app.SavePath, t.progress); err != nil {
		log.Printf("[SAVE] Failed to save progress: %v", err)
	}
}

// cell maps a world point to a terminal cell inside the playfield rows
func (t *tui) cell(wx, wy float64) (int, int, bool) {
	cfg := t.sim.Config
	sx, sy := t.camera.WorldToScreen(wx, wy)
	rows := t.height - 1
	col := int(sx / cfg.GameWidth * float64(t.width-2))
	row := int(sy/cfg.ScreenHeight*float64(rows)) + 1
	if col < 0 || col >= t.width-2 || row < 1 || row > rows {
		return 0, 0, false
	}
	return col + 1, row, true
}

func (t *tui) put(wx, wy float64, r rune, style tcell.Style) {
	if x, y, ok := t.cell(wx, wy); ok {
		t.screen.SetContent(x, y, r, nil, style)
	}
}

func (t *tui) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *tui) draw() {
	t.screen.Clear()
	cfg := t.sim.Config
	w := t.sim.World

	wall := tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	for y := 1; y < t.height; y++ {
		t.screen.SetContent(0, y, '│', nil, wall)
		t.screen.SetContent(t.width-1, y, '│', nil, wall)
	}

	if w.Finish != nil {
		for x := 0.0; x < cfg.GameWidth; x += cfg.GameWidth / float64(t.width) {
			t.put(x, w.Finish.Y, '#', tcell.StyleDefault.Foreground(tcell.ColorWhite))
		}
	}
	for _, h := range w.Holes {
		t.put(h.X, h.Y, 'O', tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	}
	for _, c := range w.Coins {
		if !c.Collected() {
			t.put(c.X, c.Y, '$', tcell.StyleDefault.Foreground(tcell.ColorYellow))
		}
	}
	for _, sp := range w.Springs {
		t.put(sp.X, sp.Y, '^', tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}
	for _, m := range w.MovingPlatforms {
		b := m.Bounds()
		for x := b.Left(); x <= b.Right(); x += 8 {
			t.put(x, m.Y, '=', tcell.StyleDefault.Foreground(tcell.ColorOrange))
		}
	}
	for _, pair := range w.Teleporters {
		for _, end := range pair.Ends {
			t.put(end.X, end.Y, '@', tcell.StyleDefault.Foreground(tcell.ColorPurple))
		}
	}

	p := t.sim.Platform
	step := cfg.GameWidth / float64(max(t.width-2, 1))
	for x := 0.0; x <= cfg.GameWidth; x += step {
		t.put(x, p.GroundY(x), '─', tcell.StyleDefault.Foreground(tcell.ColorAqua))
	}

	ball := t.sim.Ball
	glyph := '●'
	if ball.IsFalling() {
		glyph = '·'
	}
	t.put(ball.X, ball.Y, glyph, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	session := t.sim.Session()
	hud := fmt.Sprintf(" score %d  coins %d  best %d ", session.Score, session.Coins, t.progress.HighestScore)
	if t.auto {
		hud += " [auto]"
	}
	switch {
	case t.sim.Outcome() == sim.OutcomeWon:
		hud += "  LEVEL COMPLETE (r)"
	case t.sim.Outcome() == sim.OutcomeLost:
		hud += "  GAME OVER (r)"
	case t.sim.Paused:
		hud += "  PAUSED (p)"
	}
	t.text(0, 0, hud, tcell.StyleDefault.Reverse(true))

	t.screen.Show()
}

func (t *tui) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), 0.1)
			last = now
			t.update(dt)
			t.draw()
		}
	}
}

var debugFlag = flag.Bool("debug", false, "Write logs to logs/tiltball-tui.log")

func main() {
	flag.Parse()

	// The screen owns the terminal from here on
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	app := config.Load()

	t, err := newTUI(app)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	t.run()
	t.screen.Fini()

	fmt.Printf("Final score %d, best %d\n", t.sim.Session().Score, t.progress.HighestScore)
}
