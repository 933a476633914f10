// Package audio voices the arcade's symbolic sound events as short
// synthesized chiptune cues.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// Note is one pitched segment of a cue. Freq 0 is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
}

// Cues maps every sound event to its note sequence.
var Cues = map[core.Sound][]Note{
	core.SoundSelect:    {{Freq: 660, Duration: 30 * time.Millisecond, Wave: WaveSquare}},
	core.SoundConfirm:   {{Freq: 660, Duration: 40 * time.Millisecond, Wave: WaveSquare}, {Freq: 990, Duration: 60 * time.Millisecond, Wave: WaveSquare}},
	core.SoundStart:     {{Freq: 523, Duration: 60 * time.Millisecond, Wave: WaveSquare}, {Freq: 659, Duration: 60 * time.Millisecond, Wave: WaveSquare}, {Freq: 784, Duration: 90 * time.Millisecond, Wave: WaveSquare}},
	core.SoundGameOver:  {{Freq: 392, Duration: 120 * time.Millisecond, Wave: WaveTriangle}, {Freq: 330, Duration: 120 * time.Millisecond, Wave: WaveTriangle}, {Freq: 262, Duration: 240 * time.Millisecond, Wave: WaveTriangle}},
	core.SoundHighScore: {{Freq: 784, Duration: 80 * time.Millisecond, Wave: WaveSquare}, {Freq: 0, Duration: 20 * time.Millisecond}, {Freq: 784, Duration: 80 * time.Millisecond, Wave: WaveSquare}, {Freq: 1047, Duration: 200 * time.Millisecond, Wave: WaveSquare}},
	core.SoundPause:     {{Freq: 440, Duration: 50 * time.Millisecond, Wave: WaveSine}, {Freq: 330, Duration: 50 * time.Millisecond, Wave: WaveSine}},
	core.SoundEat:       {{Freq: 880, Duration: 35 * time.Millisecond, Wave: WaveSquare}},
	core.SoundHit:       {{Freq: 0, Duration: 90 * time.Millisecond, Wave: WaveNoise}},
	core.SoundShoot:     {{Freq: 1200, Duration: 25 * time.Millisecond, Wave: WaveSquare}, {Freq: 800, Duration: 25 * time.Millisecond, Wave: WaveSquare}},
	core.SoundBounce:    {{Freq: 520, Duration: 20 * time.Millisecond, Wave: WaveTriangle}},
	core.SoundLine:      {{Freq: 700, Duration: 40 * time.Millisecond, Wave: WaveSquare}, {Freq: 1050, Duration: 60 * time.Millisecond, Wave: WaveSquare}},
	core.SoundDrop:      {{Freq: 180, Duration: 30 * time.Millisecond, Wave: WaveTriangle}},
	core.SoundMove:      {{Freq: 110, Duration: 15 * time.Millisecond, Wave: WaveSquare}},
}

// oscillator generates a single note.
type oscillator struct {
	freq     float64
	phase    float64
	wave     WaveType
	rate     beep.SampleRate
	fadeLen  int
	total    int
	position int
}

func newOscillator(n Note, rate beep.SampleRate) *oscillator {
	total := rate.N(n.Duration)
	return &oscillator{
		freq:    n.Freq,
		wave:    n.Wave,
		rate:    rate,
		fadeLen: rate.N(5 * time.Millisecond),
		total:   total,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch {
		case o.wave == WaveNoise:
			val = rand.Float64()*2 - 1
		case o.freq == 0:
			val = 0
		case o.wave == WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case o.wave == WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case o.wave == WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		// Short linear release avoids clicks at note boundaries.
		if left := o.total - o.position; left < o.fadeLen {
			val *= float64(left) / float64(o.fadeLen)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Samples returns the length of a cue in samples at rate.
func Samples(s core.Sound, rate beep.SampleRate) int {
	total := 0
	for _, n := range Cues[s] {
		total += rate.N(n.Duration)
	}
	return total
}

// Streamer builds the cue for s at the given volume (0..1).
// Unknown sounds yield nil.
func Streamer(s core.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := Cues[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newOscillator(n, rate))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
