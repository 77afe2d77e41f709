package main

import (
	"maps"
	"testing"

	"tiltball/config"
	"tiltball/sim"
)

// TestPlayReproducible verifies the same seed replays the same endless run
func TestPlayReproducible(t *testing.T) {
	app := config.Default()
	app.Mode = "endless"
	app.Seed = 99

	a, err := play(app, 900, false)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	b, err := play(app, 900, false)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if a.steps != b.steps || a.outcome != b.outcome || a.session != b.session {
		t.Errorf("Runs differ: %+v vs %+v", a, b)
	}
	if !maps.Equal(a.events, b.events) {
		t.Errorf("Event counts differ: %v vs %v", a.events, b.events)
	}
}

// TestPlayStepLimit verifies a run stops at the step limit while still running
func TestPlayStepLimit(t *testing.T) {
	app := config.Default()
	app.Seed = 1

	s, err := play(app, 30, false)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if s.outcome == sim.OutcomeRunning && s.steps != 30 {
		t.Errorf("Expected 30 steps for an unfinished run, got %d", s.steps)
	}
	if s.steps > 30 {
		t.Errorf("Run exceeded the step limit: %d", s.steps)
	}
}

// TestPlayBadLevel verifies a missing level is reported
func TestPlayBadLevel(t *testing.T) {
	app := config.Default()
	app.LevelID = "nope"
	if _, err := play(app, 10, false); err == nil {
		t.Error("Expected error for a missing level")
	}
}
