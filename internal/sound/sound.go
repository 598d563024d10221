// Package sound synthesises the game's cues as beep streamers and renders
// them to PCM for the audio device.
package sound

import (
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is shared with the output device.
const SampleRate beep.SampleRate = 44100

// Cue identifies a sound effect.
type Cue int

const (
	CueEat Cue = iota
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueGameOver:
		return "game_over"
	}
	return "unknown"
}

// Sweep describes one cue: a waveform whose frequency and gain both
// ramp exponentially over Duration.
type Sweep struct {
	Wave     Wave
	FromHz   float64
	ToHz     float64
	FromGain float64
	ToGain   float64
	Duration time.Duration
}

var cues = map[Cue]Sweep{
	CueEat:      {Wave: WaveSine, FromHz: 800, ToHz: 1200, FromGain: 0.3, ToGain: 0.01, Duration: 100 * time.Millisecond},
	CueGameOver: {Wave: WaveSaw, FromHz: 400, ToHz: 50, FromGain: 0.3, ToGain: 0.01, Duration: 500 * time.Millisecond},
}

// Streamer builds a fresh streamer for c scaled by volume in [0,1].
// It returns nil for unknown cues.
func Streamer(c Cue, volume float64) beep.Streamer {
	sw, ok := cues[c]
	if !ok {
		return nil
	}
	n := SampleRate.N(sw.Duration)
	osc := newSweepOscillator(sw.Wave, sw.FromHz, sw.ToHz, n, SampleRate)
	shaped := newExpEnvelope(beep.Take(n, osc), sw.FromGain, sw.ToGain, n)
	return newVolume(shaped, volume)
}
