package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tiltball/sim"
)

// Particle represents a single particle in a burst
type Particle struct {
	pos      sim.Vec2 // world position
	vel      sim.Vec2 // velocity in units per second
	age      float64  // age in seconds
	lifetime float64  // total lifetime in seconds
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// burstStyle describes the particles thrown for one event kind
type burstStyle struct {
	count                    int
	velocityMin, velocityMax float64
	lifetimeMin, lifetimeMax float64
	sizeMin, sizeMax         float64
	colorBase                color.NRGBA
	colorVariation           color.NRGBA
}

var burstStyles = map[sim.EventKind]burstStyle{
	sim.EventCoin: {
		count: 14, velocityMin: 40, velocityMax: 120, lifetimeMin: 0.3, lifetimeMax: 0.6, sizeMin: 1.5, sizeMax: 3,
		colorBase: color.NRGBA{R: 255, G: 210, B: 40, A: 255}, colorVariation: color.NRGBA{G: 40, B: 40},
	},
	sim.EventSpring: {
		count: 10, velocityMin: 60, velocityMax: 140, lifetimeMin: 0.2, lifetimeMax: 0.4, sizeMin: 1.5, sizeMax: 2.5,
		colorBase: color.NRGBA{R: 80, G: 220, B: 120, A: 255}, colorVariation: color.NRGBA{R: 30, G: 30, B: 30},
	},
	sim.EventTeleport: {
		count: 24, velocityMin: 30, velocityMax: 160, lifetimeMin: 0.3, lifetimeMax: 0.7, sizeMin: 1.5, sizeMax: 3.5,
		colorBase: color.NRGBA{R: 180, G: 90, B: 255, A: 255}, colorVariation: color.NRGBA{R: 60, G: 60},
	},
	sim.EventBump: {
		count: 6, velocityMin: 30, velocityMax: 80, lifetimeMin: 0.15, lifetimeMax: 0.3, sizeMin: 1, sizeMax: 2,
		colorBase: color.NRGBA{R: 200, G: 140, B: 80, A: 255}, colorVariation: color.NRGBA{R: 40, G: 40},
	},
	sim.EventHole: {
		count: 30, velocityMin: 20, velocityMax: 90, lifetimeMin: 0.4, lifetimeMax: 0.9, sizeMin: 1, sizeMax: 3,
		colorBase: color.NRGBA{R: 120, G: 120, B: 140, A: 255}, colorVariation: color.NRGBA{R: 40, G: 40, B: 40},
	},
}

// ParticleSystem throws short bursts of particles where events happen
type ParticleSystem struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates an empty particle system
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{
		particles:    make([]Particle, 0, 256),
		maxParticles: 256,
		rng:          rand.New(rand.NewSource(1)),
	}
}

// Emit adds a burst for every event with a style
func (ps *ParticleSystem) Emit(events []sim.Event) {
	for _, e := range events {
		style, ok := burstStyles[e.Kind]
		if !ok {
			continue
		}
		for i := 0; i < style.count && len(ps.particles) < ps.maxParticles; i++ {
			ps.emitParticle(style, e.X, e.Y)
		}
	}
}

// emitParticle creates one particle flying away from (x, y) in a random direction
func (ps *ParticleSystem) emitParticle(style burstStyle, x, y float64) {
	rng := ps.rng
	angle := rng.Float64() * 2 * math.Pi
	speed := style.velocityMin + rng.Float64()*(style.velocityMax-style.velocityMin)
	vary := func(base, variation uint8) uint8 {
		v := float64(base) + rng.Float64()*float64(variation)*2 - float64(variation)
		return uint8(math.Max(0, math.Min(255, v)))
	}

	ps.particles = append(ps.particles, Particle{
		pos:      sim.Vec2{X: x, Y: y},
		vel:      sim.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		lifetime: style.lifetimeMin + rng.Float64()*(style.lifetimeMax-style.lifetimeMin),
		size:     style.sizeMin + rng.Float64()*(style.sizeMax-style.sizeMin),
		color: color.NRGBA{
			R: vary(style.colorBase.R, style.colorVariation.R),
			G: vary(style.colorBase.G, style.colorVariation.G),
			B: vary(style.colorBase.B, style.colorVariation.B),
			A: style.colorBase.A,
		},
	})
}

// Update ages particles and drops dead ones
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		p.pos.X += p.vel.X * dt
		p.pos.Y += p.vel.Y * dt
		if p.IsAlive() {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Clear drops every particle
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Draw renders all particles, fading them out with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image, r *Renderer) {
	for _, p := range ps.particles {
		x, y := r.toScreen(p.pos.X, p.pos.Y)
		alpha := math.Max(0, math.Min(1, 1-p.age/p.lifetime))
		c := p.color
		c.A = uint8(float64(c.A) * alpha)
		vector.DrawFilledCircle(screen, x, y, float32(p.size), c, true)
	}
}
