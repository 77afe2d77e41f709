package game

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	tbaudio "tiltball/audio"
	"tiltball/sim"
)

// SoundBoard plays synthesized effects for step events
type SoundBoard struct {
	context *audio.Context
	bank    *tbaudio.Bank
	enabled bool
}

// NewSoundBoard creates a sound board at the given master volume in [0, 1]
func NewSoundBoard(enabled bool, volume float64) *SoundBoard {
	cfg := tbaudio.DefaultConfig()
	cfg.MasterVolume = volume
	return &SoundBoard{
		context: audio.NewContext(tbaudio.SampleRate),
		bank:    tbaudio.NewBank(cfg),
		enabled: enabled,
	}
}

// Play starts one effect per event. The same kind fires at most once per call.
func (s *SoundBoard) Play(events []sim.Event) {
	if !s.enabled {
		return
	}
	var played [sim.EventGameOver + 1]bool
	for _, e := range events {
		if e.Kind < 0 || e.Kind > sim.EventGameOver || played[e.Kind] {
			continue
		}
		played[e.Kind] = true
		pcm := s.bank.Get(e.Kind)
		if len(pcm) == 0 {
			continue
		}
		s.context.NewPlayerFromBytes(pcm).Play()
	}
}

// SetVolume changes the master volume in [0, 1]
func (s *SoundBoard) SetVolume(v float64) {
	s.bank.SetMasterVolume(v)
}
