package terminal

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

// action is what a terminal key event means to the game loop.
type action struct {
	key  game.Key
	quit bool
}

func mapKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyUp:
		return action{key: game.KeyUp}
	case tcell.KeyDown:
		return action{key: game.KeyDown}
	case tcell.KeyLeft:
		return action{key: game.KeyLeft}
	case tcell.KeyRight:
		return action{key: game.KeyRight}
	case tcell.KeyEnter:
		return action{key: game.KeyConfirm}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return action{quit: true}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return action{key: game.KeyUp}
		case 's', 'S':
			return action{key: game.KeyDown}
		case 'a', 'A':
			return action{key: game.KeyLeft}
		case 'd', 'D':
			return action{key: game.KeyRight}
		case ' ':
			return action{key: game.KeyConfirm}
		case 'q', 'Q':
			return action{quit: true}
		}
	}
	return action{}
}
