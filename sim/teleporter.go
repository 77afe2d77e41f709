package sim

// Teleporter is one end of a pair. Target holds the partner's coordinates.
type Teleporter struct {
	X, Y   float64
	Radius float64
	Target Vec2

	// AnimationTime drives the portal swirl
	AnimationTime float64
}

// Update advances the swirl animation
func (t *Teleporter) Update(dt float64) {
	t.AnimationTime += dt * 3.0
}

// CheckCollision returns the destination when the ball overlaps this end
func (t *Teleporter) CheckCollision(ball *Ball) (Vec2, bool) {
	hit, _ := checkCircleCollision(Vec2{X: t.X, Y: t.Y}, t.Radius, ball.Position(), ball.Radius)
	if !hit {
		return Vec2{}, false
	}
	return t.Target, true
}

// TeleporterPair owns both ends of a portal. Each end only knows where the
// other one is.
type TeleporterPair struct {
	ID   int
	Ends [2]Teleporter
}

// NewTeleporterPair links (x1, y1) and (x2, y2)
func NewTeleporterPair(id int, x1, y1, x2, y2 float64, config Config) *TeleporterPair {
	r := config.TeleporterRadius
	return &TeleporterPair{
		ID: id,
		Ends: [2]Teleporter{
			{X: x1, Y: y1, Radius: r, Target: Vec2{X: x2, Y: y2}},
			{X: x2, Y: y2, Radius: r, Target: Vec2{X: x1, Y: y1}},
		},
	}
}

// Update advances both ends
func (p *TeleporterPair) Update(dt float64) {
	for i := range p.Ends {
		p.Ends[i].Update(dt)
	}
}

// CheckCollision returns the destination of the first end the ball overlaps.
// Nothing triggers while the ball's teleport cooldown is running.
func (p *TeleporterPair) CheckCollision(ball *Ball) (Vec2, bool) {
	if ball.TeleportCooldown > 0 {
		return Vec2{}, false
	}
	for i := range p.Ends {
		if target, ok := p.Ends[i].CheckCollision(ball); ok {
			return target, true
		}
	}
	return Vec2{}, false
}
