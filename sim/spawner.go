package sim

import "math/rand"

// Spawner keeps an endless run supplied with obstacles above the screen and
// drops the ones left far below the platform
type Spawner struct {
	Config Config

	// HoleTarget is the hole count topped up to each step
	HoleTarget int
	// CoinMin triggers a coin refill when fewer coins remain
	CoinMin int

	MaxMovingPlatforms int
	MaxSprings         int
	MaxTeleporterPairs int

	// ObstacleChance is the per-step probability of trying each obstacle type
	ObstacleChance float64

	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(config Config, rng *rand.Rand) *Spawner {
	return &Spawner{
		Config:             config,
		HoleTarget:         5,
		CoinMin:            3,
		MaxMovingPlatforms: 2,
		MaxSprings:         3,
		MaxTeleporterPairs: 2,
		ObstacleChance:     1.0,
		rng:                rng,
	}
}

// Seed fills an empty world with the opening holes and coins
func (sp *Spawner) Seed(w *World, top float64) {
	if len(w.Holes) == 0 {
		sp.spawnHoles(w, top, 5)
	}
	if len(w.Coins) == 0 {
		sp.spawnCoins(w, top, 5)
	}
}

// Refill culls what fell behind the platform, tops up holes and coins and
// rolls for new obstacles
func (sp *Spawner) Refill(w *World, p *Platform, top float64) {
	w.Cull(p.Top() + sp.Config.GameHeight*0.4 + 100)

	if len(w.Holes) < sp.HoleTarget {
		sp.spawnHoles(w, top, sp.HoleTarget-len(w.Holes)+sp.rng.Intn(3))
	}
	if w.ActiveCoins() < sp.CoinMin {
		sp.spawnCoins(w, top, 2+sp.rng.Intn(2))
	}

	sp.spawnObstacles(w, top)
}

func (sp *Spawner) spawnHoles(w *World, top float64, n int) {
	for i := 0; i < n; i++ {
		x, y := sp.abovePoint(top)
		w.AddHole(x, y)
	}
}

func (sp *Spawner) spawnCoins(w *World, top float64, n int) {
	for i := 0; i < n; i++ {
		x, y := sp.abovePoint(top)
		w.AddCoin(x, y)
	}
}

// abovePoint picks a point in the band just above the top of the screen
func (sp *Spawner) abovePoint(top float64) (float64, float64) {
	x := float64(sp.rng.Intn(int(sp.Config.GameWidth) + 1))
	y := top + float64(randRange(sp.rng, -200, -10))
	return x, y
}

func (sp *Spawner) spawnObstacles(w *World, top float64) {
	width := int(sp.Config.GameWidth)
	height := sp.Config.GameHeight

	if sp.rng.Float64() < sp.ObstacleChance && len(w.MovingPlatforms) < sp.MaxMovingPlatforms {
		x := float64(randRange(sp.rng, 100, width-100))
		y := top - height*0.4 - float64(randRange(sp.rng, 50, 200))
		direction := 1
		if sp.rng.Intn(2) == 0 {
			direction = -1
		}
		m := w.AddMovingPlatform(x, y, direction)
		m.Width = 120
		m.Speed = 80
	}

	if sp.rng.Float64() < sp.ObstacleChance && len(w.Springs) < sp.MaxSprings {
		x := float64(randRange(sp.rng, 50, width-50))
		y := top - height*0.5 - float64(randRange(sp.rng, 100, 250))
		w.AddSpring(x, y)
	}

	if sp.rng.Float64() < sp.ObstacleChance && len(w.Teleporters) < sp.MaxTeleporterPairs {
		x1 := float64(randRange(sp.rng, 100, width-100))
		y1 := top - height*0.5 - float64(randRange(sp.rng, 150, 300))
		x2 := float64(randRange(sp.rng, 100, width-100))
		y2 := y1 - float64(randRange(sp.rng, 200, 400))
		w.AddTeleporterPair(x1, y1, x2, y2)
	}
}

// randRange returns an int in [lo, hi]
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
