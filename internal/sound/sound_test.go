package sound

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			break
		}
		if len(out) > int(SampleRate) {
			t.Fatal("Streamer did not terminate")
		}
	}
	return out
}

// TestCueLengths verifies each cue lasts exactly its configured duration.
func TestCueLengths(t *testing.T) {
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CueEat, 100 * time.Millisecond},
		{CueGameOver, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		got := drain(t, Streamer(tt.cue, 1))
		if want := SampleRate.N(tt.want); len(got) != want {
			t.Errorf("%v: expected %d samples, got %d", tt.cue, want, len(got))
		}
	}
}

// TestEnvelopeDecays verifies the gain starts at 0.3 and ends near 0.01.
func TestEnvelopeDecays(t *testing.T) {
	for _, cue := range []Cue{CueEat, CueGameOver} {
		samples := drain(t, Streamer(cue, 1))
		n := len(samples)
		peak := func(from, to int) float64 {
			m := 0.0
			for _, s := range samples[from:to] {
				m = math.Max(m, math.Abs(s[0]))
			}
			return m
		}
		head := peak(0, n/10)
		tail := peak(n-n/20, n)
		if head > 0.3+1e-9 || head < 0.15 {
			t.Errorf("%v: head peak %v out of range", cue, head)
		}
		if tail > 0.02 {
			t.Errorf("%v: tail peak %v, expected below 0.02", cue, tail)
		}
		for i, s := range samples {
			if s[0] != s[1] {
				t.Fatalf("%v: channels differ at %d", cue, i)
			}
		}
	}
}

// TestEatSweepRises checks the pitch glide by counting zero crossings.
func TestEatSweepRises(t *testing.T) {
	samples := drain(t, Streamer(CueEat, 1))
	half := len(samples) / 2
	crossings := func(s [][2]float64) int {
		c := 0
		for i := 1; i < len(s); i++ {
			if (s[i-1][0] < 0) != (s[i][0] < 0) {
				c++
			}
		}
		return c
	}
	first, second := crossings(samples[:half]), crossings(samples[half:])
	if second <= first {
		t.Errorf("Expected rising pitch, crossings %d then %d", first, second)
	}
	// 800 -> 1200 Hz exponential over 0.1 s is about 99 cycles.
	if total := first + second; total < 180 || total > 215 {
		t.Errorf("Expected about 197 crossings, got %d", total)
	}
}

func TestMutedCueIsSilent(t *testing.T) {
	for _, s := range drain(t, Streamer(CueGameOver, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatal("Expected silence at volume 0")
		}
	}
}

func TestRenderPCM(t *testing.T) {
	pcm := Render(CueEat, 1)
	if want := SampleRate.N(100*time.Millisecond) * BytesPerFrame; len(pcm) != want {
		t.Fatalf("Expected %d bytes, got %d", want, len(pcm))
	}
	for i := 0; i < len(pcm); i += 4 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(pcm[i:]))
		if v > 1 || v < -1 || math.IsNaN(float64(v)) {
			t.Fatalf("Sample %d out of range: %v", i/4, v)
		}
	}
	if Render(Cue(42), 1) != nil {
		t.Error("Expected nil for unknown cue")
	}
}
