package desktop

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/game"
	"gridsnake/internal/scene"
)

const (
	windowTitle   = "Snake"
	shakeStrength = 4.0
	shakeDuration = 0.35
)

type Options struct {
	Scale int
	Seed  uint64
}

// Run opens the window and drives sess until the window closes.
// It must be called from the main goroutine.
func Run(sess *game.Session, opts Options) error {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	window, err := initWindow(opts.Scale, windowTitle)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Printf("desktop: OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	var cam Camera
	sess.Bus().Subscribe(game.EventCollided, func(game.Event) {
		cam.AddShake(shakeStrength, shakeDuration)
	})

	builder := scene.NewBuilder(opts.Seed)
	input := NewInput()
	title := ""

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if input.QuitRequested(window) {
			window.SetShouldClose(true)
			continue
		}
		for _, k := range input.Poll(window) {
			sess.HandleKey(k)
		}
		sess.Update(secondsToDuration(dt))
		cam.UpdateShake(dt, opts.Seed^uint64(now*1000))

		snap := sess.Snapshot()
		if t := titleFor(snap); t != title {
			title = t
			window.SetTitle(title)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.Draw(builder.Build(snap), cam, fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}

func titleFor(s game.Snapshot) string {
	return fmt.Sprintf("%s  |  Score %d  |  Best %d", windowTitle, s.Score, s.Best)
}

// secondsToDuration converts a GLFW timestamp delta; negative gaps become zero.
func secondsToDuration(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
