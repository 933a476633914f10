package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// SampleRate is the output rate used for every cue.
const SampleRate = beep.SampleRate(44100)

// Speaker plays cues on the local audio device through a shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	muted  bool
}

// NewSpeaker opens the default output device. volume is in 0..1.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the cue for snd. It never blocks on playback.
func (s *Speaker) Play(snd core.Sound) {
	s.mu.Lock()
	muted, vol := s.muted, s.volume
	s.mu.Unlock()
	if muted {
		return
	}
	st := Streamer(snd, SampleRate, vol)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// SetMuted toggles output without releasing the device.
func (s *Speaker) SetMuted(m bool) {
	s.mu.Lock()
	s.muted = m
	s.mu.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
