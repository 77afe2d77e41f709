// Command headless plays tiltball with the autopilot and no window, for
// balancing levels and checking that runs reproduce from a seed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"tiltball/config"
	"tiltball/save"
	"tiltball/sim"
)

// runSummary is what one headless run produced
type runSummary struct {
	seed    int64
	steps   int
	outcome sim.Outcome
	session sim.Session
	events  map[sim.EventKind]int
}

func main() {
	app := config.Load()

	// Parse command line flags; environment values are the defaults
	mode := flag.String("mode", app.Mode, "Run mode: level or endless (or set TILTBALL_MODE)")
	levelID := flag.String("level", app.LevelID, "Level id for level mode (or set TILTBALL_LEVEL)")
	levelFile := flag.String("levels", app.LevelFile, "TOML level file, empty for built-in levels")
	seed := flag.Int64("seed", app.Seed, "Seed for the first run, 0 for a random one")
	runs := flag.Int("runs", 1, "Number of runs; each run uses the next seed")
	maxSteps := flag.Int("max-steps", 60*60*5, "Stop a run after this many steps")
	persist := flag.Bool("save", false, "Fold results into the save file")
	verbose := flag.Bool("v", false, "Log every event")
	flag.Parse()

	app.Mode = *mode
	app.LevelID = *levelID
	app.LevelFile = *levelFile
	app.Seed = *seed
	if app.Seed == 0 {
		app.Seed = time.Now().UnixNano()
	}

	var progress save.Progress
	if *persist {
		var err error
		if progress, err = save.Load(app.SavePath); err != nil {
			log.Fatalf("Failed to load save: %v", err)
		}
	}

	log.Printf("Headless %s runs=%d first seed=%d\n", app.Mode, *runs, app.Seed)
	start := time.Now()

	failed := false
	for i := 0; i < *runs; i++ {
		run := app
		run.Seed = app.Seed + int64(i)

		summary, err := play(run, *maxSteps, *verbose)
		if err != nil {
			log.Fatalf("Run %d failed: %v", i, err)
		}
		fmt.Printf("run %d seed=%d steps=%d outcome=%s score=%d coins=%d events=%v\n",
			i, summary.seed, summary.steps, summary.outcome,
			summary.session.Score, summary.session.Coins, summary.events)

		if summary.outcome == sim.OutcomeLost && app.Mode == "level" {
			failed = true
		}
		if *persist {
			progress.Fold(summary.session)
		}
	}

	if *persist {
		if err := save.Save(app.SavePath, progress); err != nil {
			log.Fatalf("Failed to save progress: %v", err)
		}
		log.Printf("Progress saved to %s (best %d, coins %d)\n", app.SavePath, progress.HighestScore, progress.TotalCoins)
	}
	log.Printf("Done in %v\n", time.Since(start).Round(time.Millisecond))

	if failed {
		os.Exit(1)
	}
}

// play runs one simulation at the fixed step until it ends or maxSteps pass
func play(app config.App, maxSteps int, verbose bool) (runSummary, error) {
	s, err := app.NewSimulation()
	if err != nil {
		return runSummary{}, err
	}
	cfg := s.Config
	camera := sim.NewCamera(cfg.ScreenWidth, cfg.ScreenHeight, s.Ball.X, s.Ball.Y)
	s.AttachViewport(camera)

	pilot := sim.NewAutoPilot()
	dt := cfg.StepDuration()
	summary := runSummary{seed: app.Seed, events: make(map[sim.EventKind]int)}

	for summary.steps < maxSteps {
		pilot.Update(dt)
		res := s.Step(pilot.Read(s), dt)
		summary.steps++
		for _, e := range res.Events {
			summary.events[e.Kind]++
			if verbose {
				log.Printf("[STEP %d] %s at (%.0f, %.0f)", summary.steps, e.Kind, e.X, e.Y)
			}
		}
		if res.Outcome != sim.OutcomeRunning {
			break
		}
		camera.Follow(s.Ball.X, s.Ball.Y)
	}

	summary.outcome = s.Outcome()
	summary.session = s.Session()
	return summary, nil
}
