package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/game"
)

var keyBindings = []struct {
	key    glfw.Key
	action game.Key
}{
	{glfw.KeyUp, game.KeyUp},
	{glfw.KeyW, game.KeyUp},
	{glfw.KeyDown, game.KeyDown},
	{glfw.KeyS, game.KeyDown},
	{glfw.KeyLeft, game.KeyLeft},
	{glfw.KeyA, game.KeyLeft},
	{glfw.KeyRight, game.KeyRight},
	{glfw.KeyD, game.KeyRight},
	{glfw.KeyEnter, game.KeyConfirm},
	{glfw.KeyKPEnter, game.KeyConfirm},
	{glfw.KeySpace, game.KeyConfirm},
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Poll returns the game keys pressed since the last poll.
func (in *Input) Poll(window *glfw.Window) []game.Key {
	var keys []game.Key
	for _, b := range keyBindings {
		if in.JustPressed(window, b.key) {
			keys = append(keys, b.action)
		}
	}
	return keys
}

// QuitRequested reports Escape or Q.
func (in *Input) QuitRequested(window *glfw.Window) bool {
	return window.GetKey(glfw.KeyEscape) == glfw.Press || window.GetKey(glfw.KeyQ) == glfw.Press
}
