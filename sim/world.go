package sim

// World owns every obstacle of a run. Each collection keeps insertion order,
// which is also the order collisions are checked in.
type World struct {
	Config Config

	Holes           []*Hole
	Coins           []*Coin
	Springs         []*Spring
	MovingPlatforms []*MovingPlatform
	Teleporters     []*TeleporterPair

	// Finish is nil in endless mode
	Finish *FinishLine

	nextPairID int
}

// NewWorld creates an empty world
func NewWorld(config Config) *World {
	return &World{
		Config:          config,
		Holes:           make([]*Hole, 0, 8),
		Coins:           make([]*Coin, 0, 8),
		Springs:         make([]*Spring, 0, 4),
		MovingPlatforms: make([]*MovingPlatform, 0, 4),
		Teleporters:     make([]*TeleporterPair, 0, 2),
	}
}

// AddHole registers a hole at (x, y)
func (w *World) AddHole(x, y float64) *Hole {
	h := NewHole(x, y, w.Config)
	w.Holes = append(w.Holes, h)
	return h
}

// AddCoin registers a coin at (x, y)
func (w *World) AddCoin(x, y float64) *Coin {
	c := NewCoin(x, y, w.Config)
	w.Coins = append(w.Coins, c)
	return c
}

// AddSpring registers a spring at (x, y)
func (w *World) AddSpring(x, y float64) *Spring {
	s := NewSpring(x, y, w.Config)
	w.Springs = append(w.Springs, s)
	return s
}

// AddMovingPlatform registers a moving platform starting at (x, y)
func (w *World) AddMovingPlatform(x, y float64, direction int) *MovingPlatform {
	m := NewMovingPlatform(x, y, direction, w.Config)
	w.MovingPlatforms = append(w.MovingPlatforms, m)
	return m
}

// AddTeleporterPair registers a portal between two points and assigns it the next pair id
func (w *World) AddTeleporterPair(x1, y1, x2, y2 float64) *TeleporterPair {
	p := NewTeleporterPair(w.nextPairID, x1, y1, x2, y2, w.Config)
	w.nextPairID++
	w.Teleporters = append(w.Teleporters, p)
	return p
}

// SetFinishLine places the level goal
func (w *World) SetFinishLine(y float64) {
	w.Finish = &FinishLine{Y: y}
}

// ActiveCoins returns the number of coins not yet collected
func (w *World) ActiveCoins() int {
	n := 0
	for _, c := range w.Coins {
		if !c.Collected() {
			n++
		}
	}
	return n
}

// Cull removes everything whose top edge is at or below limit, plus collected
// coins. A teleporter pair survives while either end is above the limit.
func (w *World) Cull(limit float64) {
	holes := w.Holes[:0]
	for _, h := range w.Holes {
		if h.Y-h.Radius < limit {
			holes = append(holes, h)
		}
	}
	clear(w.Holes[len(holes):])
	w.Holes = holes

	coins := w.Coins[:0]
	for _, c := range w.Coins {
		if !c.Collected() && c.Y-c.Radius < limit {
			coins = append(coins, c)
		}
	}
	clear(w.Coins[len(coins):])
	w.Coins = coins

	springs := w.Springs[:0]
	for _, s := range w.Springs {
		if s.Y-s.Height < limit {
			springs = append(springs, s)
		}
	}
	clear(w.Springs[len(springs):])
	w.Springs = springs

	platforms := w.MovingPlatforms[:0]
	for _, m := range w.MovingPlatforms {
		if m.Y-m.Height < limit {
			platforms = append(platforms, m)
		}
	}
	clear(w.MovingPlatforms[len(platforms):])
	w.MovingPlatforms = platforms

	pairs := w.Teleporters[:0]
	for _, p := range w.Teleporters {
		a, b := p.Ends[0], p.Ends[1]
		if a.Y-a.Radius < limit || b.Y-b.Radius < limit {
			pairs = append(pairs, p)
		}
	}
	clear(w.Teleporters[len(pairs):])
	w.Teleporters = pairs
}

// Count returns the total number of obstacles
func (w *World) Count() int {
	return len(w.Holes) + len(w.Coins) + len(w.Springs) + len(w.MovingPlatforms) + len(w.Teleporters)
}
