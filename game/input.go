package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tiltball/sim"
)

// Gamepad stick axes driving the left and right platform ends
const (
	axisLeftStickY  = 1
	axisRightStickY = 3
)

// PlayerInput provides platform control from keyboard/gamepad
type PlayerInput struct {
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID

	// DeadZone is the stick deflection ignored around center
	DeadZone float64

	// Vibration enables gamepad rumble
	Vibration bool

	left, right float64
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput(vibration bool) *PlayerInput {
	return &PlayerInput{
		keys:      make([]ebiten.Key, 0, 10),
		DeadZone:  0.2,
		Vibration: vibration,
	}
}

// Update samples the keyboard and the first connected gamepad.
// W/S move the left end, Up/Down the right end; opposite keys held together
// cancel. A stick past the dead zone overrides the keys for its end.
func (p *PlayerInput) Update(deltaTime float64) {
	p.keys = inpututil.AppendPressedKeys(p.keys[:0])

	var in sim.Input
	for _, k := range p.keys {
		switch k {
		case ebiten.KeyW:
			in = in.Add(sim.Input{Left: -1})
		case ebiten.KeyS:
			in = in.Add(sim.Input{Left: 1})
		case ebiten.KeyArrowUp:
			in = in.Add(sim.Input{Right: -1})
		case ebiten.KeyArrowDown:
			in = in.Add(sim.Input{Right: 1})
		}
	}
	p.left, p.right = in.Left, in.Right

	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])
	if len(p.gamepads) == 0 {
		return
	}
	id := p.gamepads[0]
	if v := p.deadZone(ebiten.GamepadAxisValue(id, axisLeftStickY)); v != 0 {
		p.left = v
	}
	if v := p.deadZone(ebiten.GamepadAxisValue(id, axisRightStickY)); v != 0 {
		p.right = v
	}
}

// Read returns the sampled control
func (p *PlayerInput) Read(s *sim.Simulation) sim.Input {
	return sim.Input{Left: p.left, Right: p.right}
}

func (p *PlayerInput) deadZone(v float64) float64 {
	if math.Abs(v) < p.DeadZone {
		return 0
	}
	return v
}

// Rumble vibrates the first gamepad for events worth feeling
func (p *PlayerInput) Rumble(events []sim.Event) {
	if !p.Vibration || len(p.gamepads) == 0 {
		return
	}
	for _, e := range events {
		var op *ebiten.VibrateGamepadOptions
		switch e.Kind {
		case sim.EventHole, sim.EventGameOver:
			op = &ebiten.VibrateGamepadOptions{Duration: 400 * time.Millisecond, StrongMagnitude: 1, WeakMagnitude: 0.5}
		case sim.EventWall, sim.EventSpring, sim.EventTeleport:
			op = &ebiten.VibrateGamepadOptions{Duration: 80 * time.Millisecond, StrongMagnitude: 0.2, WeakMagnitude: 0.6}
		default:
			continue
		}
		ebiten.VibrateGamepad(p.gamepads[0], op)
	}
}
