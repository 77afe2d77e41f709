// Package config loads application settings from defaults, an optional .env
// file and TILTBALL_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"tiltball/sim"
)

// ErrUnknownMode is returned for a mode name other than level or endless
var ErrUnknownMode = errors.New("unknown mode")

// App holds everything the binaries need to start a run
type App struct {
	// Sim holds the physics constants
	Sim sim.Config

	// Title is the window title
	Title string

	// Mode is "level" or "endless"
	Mode string

	// LevelID picks the level played in level mode
	LevelID string

	// LevelFile is a TOML level file; empty uses the built-in levels
	LevelFile string

	// SavePath is where progress and settings are stored
	SavePath string

	// Seed drives the endless spawner; 0 picks one from the clock
	Seed int64

	// Sound enables effect playback
	Sound bool

	// ShowFPS draws the frame counter
	ShowFPS bool

	// ProfileDir receives CPU profiles and traces
	ProfileDir string
}

// Default returns the settings used when nothing is overridden
func Default() App {
	return App{
		Sim:        sim.DefaultConfig(),
		Title:      "Tiltball",
		Mode:       "level",
		LevelID:    "level_1",
		SavePath:   "data/save.toml",
		Sound:      true,
		ShowFPS:    true,
		ProfileDir: "profiles",
	}
}

// Load reads .env if present and applies environment overrides to the defaults
func Load() App {
	// Load .env file if it exists
	godotenv.Load()

	d := Default()
	app := App{
		Title:      getEnv("TILTBALL_TITLE", d.Title),
		Mode:       strings.ToLower(getEnv("TILTBALL_MODE", d.Mode)),
		LevelID:    getEnv("TILTBALL_LEVEL", d.LevelID),
		LevelFile:  getEnv("TILTBALL_LEVEL_FILE", d.LevelFile),
		SavePath:   getEnv("TILTBALL_SAVE_PATH", d.SavePath),
		Seed:       getEnvInt64("TILTBALL_SEED", d.Seed),
		Sound:      getEnvBool("TILTBALL_SOUND", d.Sound),
		ShowFPS:    getEnvBool("TILTBALL_SHOW_FPS", d.ShowFPS),
		ProfileDir: getEnv("TILTBALL_PROFILE_DIR", d.ProfileDir),
	}

	// Physics tuning
	s := d.Sim
	s.StepRate = getEnvFloat("TILTBALL_STEP_RATE", s.StepRate)
	s.Gravity = getEnvFloat("TILTBALL_GRAVITY", s.Gravity)
	s.Bounce = getEnvFloat("TILTBALL_BOUNCE", s.Bounce)
	s.TiltSensitivity = getEnvFloat("TILTBALL_TILT_SENSITIVITY", s.TiltSensitivity)
	s.MaxSlope = getEnvFloat("TILTBALL_MAX_SLOPE", s.MaxSlope)
	s.PlatformSpeed = getEnvFloat("TILTBALL_PLATFORM_SPEED", s.PlatformSpeed)
	app.Sim = s

	return app
}

// SimMode converts the mode name
func (a App) SimMode() (sim.Mode, error) {
	switch a.Mode {
	case "level", "":
		return sim.ModeLevel, nil
	case "endless":
		return sim.ModeEndless, nil
	}
	return sim.ModeLevel, fmt.Errorf("%w: %q", ErrUnknownMode, a.Mode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
