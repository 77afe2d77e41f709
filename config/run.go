package config

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"tiltball/level"
	"tiltball/sim"
)

// Levels returns the configured level file, or the built-in set
func (a App) Levels() (*level.File, error) {
	if a.LevelFile == "" {
		return level.Default(), nil
	}
	f, err := level.Load(a.LevelFile)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ResolveSeed returns the configured seed, or one taken from the clock when unset
func (a App) ResolveSeed() int64 {
	if a.Seed != 0 {
		return a.Seed
	}
	return time.Now().UnixNano()
}

// NewSimulation builds a fresh run for the configured mode and level
func (a App) NewSimulation() (*sim.Simulation, error) {
	mode, err := a.SimMode()
	if err != nil {
		return nil, err
	}

	var world *sim.World
	if mode == sim.ModeLevel {
		levels, err := a.Levels()
		if err != nil {
			return nil, err
		}
		l, err := levels.Find(a.LevelID)
		if err != nil {
			return nil, err
		}
		world, err = level.Build(l, a.Sim)
		if err != nil {
			return nil, fmt.Errorf("failed to build level: %w", err)
		}
		log.Printf("[RUN] Level %s (%s): %d holes, %d coins, finish at y=%.0f",
			l.ID, l.Name, len(world.Holes), len(world.Coins), l.FinishLineY)
	}

	seed := a.ResolveSeed()
	log.Printf("[RUN] Mode %s, seed %d", mode, seed)
	return sim.NewSimulation(a.Sim, world, mode, rand.New(rand.NewSource(seed))), nil
}
