package sound

import (
	"math"

	"github.com/gopxl/beep"
)

// BytesPerFrame is one stereo float32 frame.
const BytesPerFrame = 8

// Render drains a cue into interleaved stereo float32 little-endian PCM.
func Render(c Cue, volume float64) []byte {
	s := Streamer(c, volume)
	if s == nil {
		return nil
	}
	return Encode(s)
}

// Encode drains s into stereo float32 LE bytes, soft-saturating each sample.
func Encode(s beep.Streamer) []byte {
	var out []byte
	chunk := make([][2]float64, 512)
	for {
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = putStereoF32LR(out, softSat(chunk[i][0]), softSat(chunk[i][1]))
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func putStereoF32LR(buf []byte, left, right float64) []byte {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	return append(buf,
		byte(lv), byte(lv>>8), byte(lv>>16), byte(lv>>24),
		byte(rv), byte(rv>>8), byte(rv>>16), byte(rv>>24),
	)
}

// softSat applies gentle tanh-like saturation; no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}
