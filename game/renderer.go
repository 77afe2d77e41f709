package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"tiltball/sim"
)

var (
	colorBackground = color.RGBA{20, 20, 40, 255}
	colorField      = color.RGBA{34, 38, 64, 255}
	colorWall       = color.RGBA{90, 96, 140, 255}
	colorBall       = color.RGBA{235, 235, 245, 255}
	colorPlatform   = color.RGBA{120, 200, 255, 255}
	colorHole       = color.RGBA{5, 5, 10, 255}
	colorHoleRim    = color.RGBA{70, 70, 90, 255}
	colorCoin       = color.RGBA{255, 210, 40, 255}
	colorSpring     = color.RGBA{80, 220, 120, 255}
	colorMover      = color.RGBA{200, 140, 80, 255}
	colorPortal     = color.RGBA{180, 90, 255, 255}
	colorFinish     = color.RGBA{255, 255, 255, 255}
	colorHUD        = color.RGBA{255, 255, 255, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 160}
	colorPath       = color.NRGBA{255, 255, 255, 200}
	colorBounds     = color.RGBA{255, 60, 60, 255}
)

// predictedPathSteps is how far ahead the debug path looks, one second at 60 steps
const predictedPathSteps = 60

// HUD is the text state drawn over the playfield
type HUD struct {
	Best      int
	FPS       float64
	ShowFPS   bool
	AutoPilot bool
	NewBest   bool
}

// Renderer draws a simulation through its camera
type Renderer struct {
	camera    *sim.Camera
	particles *ParticleSystem
	sprites   *Sprites
	face      text.Face

	// offsetX centers the playfield horizontally on screen
	offsetX float64

	// shake offset for the frame being drawn
	shakeX, shakeY float64
}

// NewRenderer creates a new renderer
func NewRenderer(camera *sim.Camera, particles *ParticleSystem, sprites *Sprites, config sim.Config) *Renderer {
	return &Renderer{
		camera:    camera,
		particles: particles,
		sprites:   sprites,
		face:      text.NewGoXFace(basicfont.Face7x13),
		offsetX:   (config.ScreenWidth - config.GameWidth) / 2,
	}
}

// toScreen converts a world point, applying the shake offset
func (r *Renderer) toScreen(wx, wy float64) (float32, float32) {
	sx, sy := r.camera.WorldToScreen(wx, wy)
	return float32(sx + r.offsetX + r.shakeX), float32(sy + r.shakeY)
}

// Render draws the playfield, every obstacle, the platform, the ball and the HUD
func (r *Renderer) Render(screen *ebiten.Image, s *sim.Simulation, hud HUD) {
	cfg := s.Config
	screen.Fill(colorBackground)

	dx, dy := s.Shake.Offset()
	r.shakeX, r.shakeY = float64(dx), float64(dy)

	fieldX := float32(r.offsetX)
	vector.DrawFilledRect(screen, fieldX, 0, float32(cfg.GameWidth), float32(cfg.ScreenHeight), colorField, false)
	vector.StrokeLine(screen, fieldX, 0, fieldX, float32(cfg.ScreenHeight), 3, colorWall, true)
	vector.StrokeLine(screen, fieldX+float32(cfg.GameWidth), 0, fieldX+float32(cfg.GameWidth), float32(cfg.ScreenHeight), 3, colorWall, true)

	w := s.World
	if w.Finish != nil {
		r.renderFinish(screen, cfg, w.Finish.Y)
	}
	for _, h := range w.Holes {
		x, y := r.toScreen(h.X, h.Y)
		vector.DrawFilledCircle(screen, x, y, float32(h.Radius), colorHoleRim, true)
		vector.DrawFilledCircle(screen, x, y, float32(h.Radius-3), colorHole, true)
	}
	for _, c := range w.Coins {
		if c.Collected() {
			continue
		}
		x, y := r.toScreen(c.X, c.Y)
		// Spin is faked by squashing the width
		sx := math.Max(0.2, math.Abs(math.Cos(c.Rotation)))
		sy := 1 + 0.1*math.Sin(c.Pulse)
		if r.sprites != nil && r.sprites.Coin != nil {
			r.drawSprite(screen, r.sprites.Coin, x, y, c.Radius*2*sx, c.Radius*2*sy)
			continue
		}
		rx, ry := float32(c.Radius*sx), float32(c.Radius*sy)
		vector.DrawFilledRect(screen, x-rx, y-ry, rx*2, ry*2, colorCoin, true)
	}
	for _, sp := range w.Springs {
		b := sp.Bounds()
		h := b.Height
		if sp.State == sim.SpringCompressed {
			h /= 2
		}
		x, y := r.toScreen(b.Left(), b.Bottom()-h)
		vector.DrawFilledRect(screen, x, y, float32(b.Width), float32(h), colorSpring, true)
	}
	for _, m := range w.MovingPlatforms {
		b := m.Bounds()
		x, y := r.toScreen(b.Left(), b.Top())
		vector.DrawFilledRect(screen, x, y, float32(b.Width), float32(b.Height), colorMover, true)
	}
	for _, pair := range w.Teleporters {
		for _, end := range pair.Ends {
			x, y := r.toScreen(end.X, end.Y)
			swirl := float32(3 * math.Sin(end.AnimationTime))
			vector.StrokeCircle(screen, x, y, float32(end.Radius), 3, colorPortal, true)
			vector.StrokeCircle(screen, x, y, float32(end.Radius)*0.6+swirl, 2, colorPortal, true)
		}
	}

	p := s.Platform
	x1, y1 := r.toScreen(0, p.Y1)
	x2, y2 := r.toScreen(cfg.GameWidth, p.Y2)
	vector.StrokeLine(screen, x1, y1, x2, y2, 4, colorPlatform, true)

	ball := s.Ball
	bx, by := r.toScreen(ball.X, ball.Y)
	if r.sprites != nil && r.sprites.Ball != nil {
		d := ball.DisplayRadius() * 2
		r.drawSprite(screen, r.sprites.Ball, bx, by, d, d)
	} else {
		vector.DrawFilledCircle(screen, bx, by, float32(ball.DisplayRadius()), colorBall, true)
	}

	if r.particles != nil {
		r.particles.Draw(screen, r)
	}

	debug := GetDebugState()
	if debug.ShowPath {
		r.renderPath(screen, s.PredictPath(predictedPathSteps))
	}
	if debug.ShowBounds {
		r.renderBounds(screen, s)
	}
	r.renderHUD(screen, s, hud)
}

// drawSprite draws img centered at (x, y) scaled to w by h
func (r *Renderer) drawSprite(screen, img *ebiten.Image, x, y float32, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// renderPath draws the predicted path as segments fading out along the trail
func (r *Renderer) renderPath(screen *ebiten.Image, positions []sim.Vec2) {
	if len(positions) <= 1 {
		return
	}
	for i := 0; i < len(positions)-1; i++ {
		x1, y1 := r.toScreen(positions[i].X, positions[i].Y)
		x2, y2 := r.toScreen(positions[i+1].X, positions[i+1].Y)

		// Fade from full to 20% along the path
		progress := float64(i) / float64(len(positions)-1)
		faded := colorPath
		faded.A = uint8(float64(colorPath.A) * (1.0 - progress*0.8))
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, faded, true)
	}
}

// renderBounds outlines what the ball collides against
func (r *Renderer) renderBounds(screen *ebiten.Image, s *sim.Simulation) {
	rect := func(b sim.Rect) {
		x, y := r.toScreen(b.Left(), b.Top())
		vector.StrokeRect(screen, x, y, float32(b.Width), float32(b.Height), 1, colorBounds, false)
	}
	circle := func(cx, cy, radius float64) {
		x, y := r.toScreen(cx, cy)
		vector.StrokeCircle(screen, x, y, float32(radius), 1, colorBounds, false)
	}

	rect(s.Ball.Bounds())
	circle(s.Ball.X, s.Ball.Y, s.Ball.Radius)
	for _, h := range s.World.Holes {
		circle(h.X, h.Y, h.Radius)
	}
	for _, c := range s.World.Coins {
		circle(c.X, c.Y, c.Radius)
	}
	for _, sp := range s.World.Springs {
		rect(sp.Bounds())
	}
	for _, m := range s.World.MovingPlatforms {
		rect(m.Bounds())
	}
	for _, pair := range s.World.Teleporters {
		for _, end := range pair.Ends {
			circle(end.X, end.Y, end.Radius)
		}
	}
}

func (r *Renderer) renderFinish(screen *ebiten.Image, cfg sim.Config, y float64) {
	const square = 20.0
	for i := 0; float64(i)*square < cfg.GameWidth; i++ {
		if i%2 == 1 {
			continue
		}
		x, sy := r.toScreen(float64(i)*square, y-square/2)
		vector.DrawFilledRect(screen, x, sy, square, square/2, colorFinish, false)
	}
}

func (r *Renderer) renderHUD(screen *ebiten.Image, s *sim.Simulation, hud HUD) {
	cfg := s.Config
	session := s.Session()

	lines := []string{
		fmt.Sprintf("Score: %d", session.Score),
		fmt.Sprintf("Coins: %d", session.Coins),
		fmt.Sprintf("Best:  %d", hud.Best),
	}
	if hud.ShowFPS {
		lines = append(lines, fmt.Sprintf("FPS:   %.0f", hud.FPS))
	}
	if hud.AutoPilot {
		lines = append(lines, "AUTO")
	}
	for i, line := range lines {
		r.drawText(screen, line, 12, 12+float64(i)*16)
	}

	if s.Mode == sim.ModeLevel && s.World.Finish != nil {
		barX := float32(cfg.ScreenWidth - 30)
		barH := float32(cfg.ScreenHeight - 80)
		vector.StrokeRect(screen, barX, 40, 12, barH, 1, colorHUD, false)
		filled := barH * float32(s.Progress())
		vector.DrawFilledRect(screen, barX, 40+barH-filled, 12, filled, colorSpring, false)
	}

	var banner string
	switch {
	case s.Outcome() == sim.OutcomeWon:
		banner = "LEVEL COMPLETE - press R"
	case s.Outcome() == sim.OutcomeLost:
		banner = "GAME OVER - press R"
	case s.Paused:
		banner = "PAUSED - Esc to resume"
	default:
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(cfg.ScreenWidth), float32(cfg.ScreenHeight), colorOverlay, false)
	cx, cy := cfg.ScreenWidth/2-float64(len(banner))*3.5, cfg.ScreenHeight/2
	r.drawText(screen, banner, cx, cy)
	if hud.NewBest {
		msg := "New high score!"
		r.drawText(screen, msg, cfg.ScreenWidth/2-float64(len(msg))*3.5, cy+20)
	}
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorHUD)
	text.Draw(screen, s, r.face, op)
}
