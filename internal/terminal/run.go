// Package terminal runs the game inside a terminal using tcell.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// NewScreen opens and initialises the controlling terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

// Run drives sess on screen until the player quits or ctx is done.
// The caller owns the screen and must Fini it afterwards.
func Run(ctx context.Context, screen tcell.Screen, sess *game.Session) error {
	rend := NewRenderer(screen)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	rend.Draw(sess.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a := mapKey(ev)
				if a.quit {
					return nil
				}
				sess.HandleKey(a.key)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			sess.Update(now.Sub(last))
			last = now
			rend.Draw(sess.Snapshot())
		}
	}
}
