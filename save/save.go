// Package save persists player progress and settings between runs.
package save

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tiltball/sim"
)

// MaxVolume is the top of the volume scale
const MaxVolume = 10

// Progress is everything kept across runs
type Progress struct {
	HighestScore int  `toml:"highest_score"`
	TotalCoins   int  `toml:"total_coins"`
	Volume       int  `toml:"volume"`
	Vibration    bool `toml:"vibration"`
}

// Defaults returns the progress of a fresh install
func Defaults() Progress {
	return Progress{Volume: 5, Vibration: true}
}

// Fold adds a finished run to the totals and reports whether it set a new high score
func (p *Progress) Fold(s sim.Session) bool {
	p.TotalCoins += s.Coins
	if s.Score > p.HighestScore {
		p.HighestScore = s.Score
		return true
	}
	return false
}

// VolumeLevel returns the volume as a gain in [0, 1]
func (p Progress) VolumeLevel() float64 {
	v := p.Volume
	if v < 0 {
		v = 0
	} else if v > MaxVolume {
		v = MaxVolume
	}
	return float64(v) / MaxVolume
}

// SetVolume stores a volume clamped to [0, MaxVolume]
func (p *Progress) SetVolume(v int) {
	p.Volume = max(0, min(v, MaxVolume))
}

// Load reads progress from path. A missing, empty or unreadable-as-TOML file
// is replaced by defaults on disk, so a corrupt save never blocks the game.
func Load(path string) (Progress, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Defaults(), fmt.Errorf("failed to read save file: %w", err)
		}
		log.Printf("[SAVE] No save at %s, creating defaults", path)
		p := Defaults()
		return p, Save(path, p)
	}

	p := Defaults()
	if len(data) == 0 {
		log.Printf("[SAVE] Empty save at %s, resetting", path)
		return p, Save(path, p)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		log.Printf("[SAVE] Corrupt save at %s (%v), resetting", path, err)
		p = Defaults()
		return p, Save(path, p)
	}
	return p, nil
}

// Save writes progress to path, creating parent directories. The file is
// replaced atomically.
func Save(path string, p Progress) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".save-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace save: %w", err)
	}
	return nil
}
