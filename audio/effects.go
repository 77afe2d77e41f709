package audio

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"

	"tiltball/sim"
)

// SampleRate is the PCM rate every effect is rendered at
const SampleRate = 44100

// Config controls effect loudness
type Config struct {
	// MasterVolume scales every effect, 0 to 1
	MasterVolume float64

	// EffectVolumes scales single effects; missing kinds play at 1
	EffectVolumes map[sim.EventKind]float64
}

// DefaultConfig returns a config with the wall thud and bump softened
func DefaultConfig() Config {
	return Config{
		MasterVolume: 0.5,
		EffectVolumes: map[sim.EventKind]float64{
			sim.EventBump: 0.6,
			sim.EventWall: 0.4,
		},
	}
}

func (c Config) volume(kind sim.EventKind) float64 {
	v, ok := c.EffectVolumes[kind]
	if !ok {
		v = 1
	}
	return math.Max(0, math.Min(1, c.MasterVolume*v))
}

// Duration returns the length of the effect for kind, or 0 if there is none
func Duration(kind sim.EventKind) time.Duration {
	switch kind {
	case sim.EventBump, sim.EventWall:
		return 60 * time.Millisecond
	case sim.EventSpring:
		return 180 * time.Millisecond
	case sim.EventTeleport:
		return 250 * time.Millisecond
	case sim.EventCoin:
		return 200 * time.Millisecond
	case sim.EventHole:
		return 500 * time.Millisecond
	case sim.EventFinish:
		return 360 * time.Millisecond
	case sim.EventGameOver:
		return 600 * time.Millisecond
	}
	return 0
}

// Effect returns a streamer for the event kind at unity gain, or nil if the kind is silent
func Effect(kind sim.EventKind) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	d := Duration(kind)

	switch kind {
	case sim.EventBump:
		return tone(140, 110, d, WaveSquare, rate)
	case sim.EventWall:
		return tone(0, 0, d, WaveNoise, rate)
	case sim.EventSpring:
		return tone(220, 720, d, WaveSine, rate)
	case sim.EventTeleport:
		return beep.Mix(
			newVolume(tone(900, 300, d, WaveSaw, rate), 0.6),
			newVolume(tone(0, 1, d, WaveNoise, rate), 0.3),
		)
	case sim.EventCoin:
		// B5 then E6
		return beep.Seq(
			tone(987.77, 987.77, 80*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 1318.51, 120*time.Millisecond, WaveSquare, rate),
		)
	case sim.EventHole:
		return tone(420, 70, d, WaveSine, rate)
	case sim.EventFinish:
		// C major arpeggio
		notes := []float64{523.25, 659.25, 783.99, 1046.5}
		parts := make([]beep.Streamer, len(notes))
		for i, f := range notes {
			parts[i] = tone(f, f, d/time.Duration(len(notes)), WaveSquare, rate)
		}
		return beep.Seq(parts...)
	case sim.EventGameOver:
		return beep.Seq(
			tone(330, 330, 200*time.Millisecond, WaveSaw, rate),
			tone(247, 247, 200*time.Millisecond, WaveSaw, rate),
			tone(165, 110, 200*time.Millisecond, WaveSaw, rate),
		)
	}
	return nil
}

// Render produces the effect for kind as 16-bit little-endian stereo PCM at
// SampleRate, scaled by the config's volume. A silent kind yields nil.
func Render(kind sim.EventKind, cfg Config) []byte {
	s := Effect(kind)
	if s == nil {
		return nil
	}
	limit := beep.SampleRate(SampleRate).N(Duration(kind))
	return encode(beep.Take(limit, newVolume(s, cfg.volume(kind))), limit)
}

// encode drains s into interleaved int16 frames
func encode(s beep.Streamer, limit int) []byte {
	out := make([]byte, 0, limit*4)
	var buf [512][2]float64
	for {
		n, ok := s.Stream(buf[:])
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// Bank caches rendered effects for one config
type Bank struct {
	mu     sync.RWMutex
	config Config
	store  map[sim.EventKind][]byte
}

// NewBank creates an empty effect cache
func NewBank(cfg Config) *Bank {
	return &Bank{config: cfg, store: make(map[sim.EventKind][]byte)}
}

// Get returns the cached PCM for kind, rendering it on first use
func (b *Bank) Get(kind sim.EventKind) []byte {
	b.mu.RLock()
	pcm, ok := b.store[kind]
	b.mu.RUnlock()
	if ok {
		return pcm
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if pcm, ok := b.store[kind]; ok {
		return pcm
	}
	pcm = Render(kind, b.config)
	b.store[kind] = pcm
	return pcm
}

// SetMasterVolume changes the master volume and drops cached renders
func (b *Bank) SetMasterVolume(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.config.MasterVolume = v
	clear(b.store)
}
