// Package audio plays the game's cues through an oto output context.
package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"gridsnake/internal/game"
	"gridsnake/internal/sound"
)

const (
	ChannelCount = 2
	sfxVolume    = 0.8
)

// System owns the output context and a cache of rendered cues.
type System struct {
	ctx   *oto.Context
	ready chan struct{}

	mu    sync.Mutex
	cache map[sound.Cue][]byte
}

// New opens the audio device. The context becomes usable once ready closes;
// cues requested before that are dropped.
func New() (*System, error) {
	ctx, ready, err := oto.NewContext(int(sound.SampleRate), ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return &System{ctx: ctx, ready: ready, cache: make(map[sound.Cue][]byte)}, nil
}

// Play starts a cue on its own player and returns immediately.
func (a *System) Play(c sound.Cue) {
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	pcm := a.samples(c)
	if len(pcm) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(bytes.NewReader(pcm))
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func (a *System) samples(c sound.Cue) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	pcm, ok := a.cache[c]
	if !ok {
		pcm = sound.Render(c, 1)
		a.cache[c] = pcm
	}
	return pcm
}

// Watch plays the eat cue on FoodEaten and the game-over cue on Collided.
func (a *System) Watch(bus *game.EventBus) {
	bus.Subscribe(game.EventFoodEaten, func(game.Event) { a.Play(sound.CueEat) })
	bus.Subscribe(game.EventCollided, func(game.Event) { a.Play(sound.CueGameOver) })
}
