// Package level loads level layouts from TOML and builds them into simulation worlds.
package level

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"tiltball/sim"
)

// Obstacle type names used in level files
const (
	TypeMovingPlatform = "moving_platform"
	TypeSpring         = "spring"
	TypeTeleporterPair = "teleporter_pair"
)

var (
	// ErrLevelNotFound is returned when no level has the requested id
	ErrLevelNotFound = errors.New("level not found")

	// ErrUnknownObstacle is returned for an obstacle type the builder does not know
	ErrUnknownObstacle = errors.New("unknown obstacle type")

	// ErrInvalidLevel is returned for a level that cannot be played
	ErrInvalidLevel = errors.New("invalid level")
)

//go:embed levels.toml
var defaultLevels []byte

// Point is a position in world coordinates
type Point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Obstacle is one entry of a level's obstacle list. Which fields matter depends on Type.
type Obstacle struct {
	Type      string  `toml:"type"`
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Direction int     `toml:"direction"`
	X1        float64 `toml:"x1"`
	Y1        float64 `toml:"y1"`
	X2        float64 `toml:"x2"`
	Y2        float64 `toml:"y2"`
}

// Level is a fixed layout with a finish line
type Level struct {
	ID          string     `toml:"id"`
	Name        string     `toml:"name"`
	FinishLineY float64    `toml:"finish_line_y"`
	Holes       []Point    `toml:"holes"`
	Coins       []Point    `toml:"coins"`
	Obstacles   []Obstacle `toml:"obstacles"`
}

// File is the top-level document of a level file
type File struct {
	Levels []Level `toml:"levels"`
}

// Parse decodes a level file. Unknown keys are rejected so typos surface early.
func Parse(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse level file: %w", err)
	}
	return &f, nil
}

// Load reads and parses the level file at path
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in level set
func Default() *File {
	f, err := Parse(defaultLevels)
	if err != nil {
		panic(fmt.Sprintf("built-in levels are broken: %v", err))
	}
	return f
}

// Find returns the level with the given id
func (f *File) Find(id string) (*Level, error) {
	for i := range f.Levels {
		if f.Levels[i].ID == id {
			return &f.Levels[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLevelNotFound, id)
}

// IDs returns the level ids in file order
func (f *File) IDs() []string {
	ids := make([]string, 0, len(f.Levels))
	for _, l := range f.Levels {
		ids = append(ids, l.ID)
	}
	return ids
}

// Build creates a world holding the level's finish line and obstacles in file order
func Build(l *Level, config sim.Config) (*sim.World, error) {
	_, startY := sim.StartPosition(config)
	if l.FinishLineY >= startY {
		return nil, fmt.Errorf("%w: %s finish line y=%.0f is not above the start y=%.0f",
			ErrInvalidLevel, l.ID, l.FinishLineY, startY)
	}

	w := sim.NewWorld(config)
	w.SetFinishLine(l.FinishLineY)
	for _, h := range l.Holes {
		w.AddHole(h.X, h.Y)
	}
	for _, c := range l.Coins {
		w.AddCoin(c.X, c.Y)
	}
	for i, o := range l.Obstacles {
		switch o.Type {
		case TypeMovingPlatform:
			w.AddMovingPlatform(o.X, o.Y, o.Direction)
		case TypeSpring:
			w.AddSpring(o.X, o.Y)
		case TypeTeleporterPair, "teleporterPair":
			w.AddTeleporterPair(o.X1, o.Y1, o.X2, o.Y2)
		default:
			return nil, fmt.Errorf("%w: %q (level %s, obstacle %d)", ErrUnknownObstacle, o.Type, l.ID, i)
		}
	}
	return w, nil
}
