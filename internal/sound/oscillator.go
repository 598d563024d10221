package sound

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveSaw
)

// sweepOscillator glides exponentially from one frequency to another
// over span samples, then holds the final frequency.
type sweepOscillator struct {
	wave     Wave
	from, to float64
	span     int
	phase    float64
	position int
	rate     beep.SampleRate
}

func newSweepOscillator(wave Wave, from, to float64, span int, rate beep.SampleRate) *sweepOscillator {
	if span < 1 {
		span = 1
	}
	return &sweepOscillator{wave: wave, from: from, to: to, span: span, rate: rate}
}

func (o *sweepOscillator) freq() float64 {
	p := float64(o.position) / float64(o.span)
	if p > 1 {
		p = 1
	}
	return o.from * math.Pow(o.to/o.from, p)
}

func (o *sweepOscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweepOscillator) Err() error { return nil }

// expEnvelope scales a stream by a gain that decays exponentially
// from g0 to g1 across total samples.
type expEnvelope struct {
	streamer beep.Streamer
	g0, g1   float64
	total    int
	position int
}

func newExpEnvelope(s beep.Streamer, g0, g1 float64, total int) *expEnvelope {
	if total < 1 {
		total = 1
	}
	return &expEnvelope{streamer: s, g0: g0, g1: g1, total: total}
}

func (e *expEnvelope) gain() float64 {
	p := float64(e.position) / float64(e.total)
	if p > 1 {
		p = 1
	}
	return e.g0 * math.Pow(e.g1/e.g0, p)
}

func (e *expEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *expEnvelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume becomes a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	if vol > 1 {
		vol = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
