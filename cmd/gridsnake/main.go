// Command gridsnake is a single-player Snake game for the desktop or the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"gridsnake/internal/audio"
	"gridsnake/internal/autopilot"
	"gridsnake/internal/config"
	"gridsnake/internal/desktop"
	"gridsnake/internal/game"
	"gridsnake/internal/store"
	"gridsnake/internal/terminal"
)

func main() {
	log.SetPrefix("gridsnake: ")
	opts, err := config.Parse(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridsnake: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run(opts config.Options) error {
	closeLog, err := setupLog(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	best := openStore(opts.BestFile)
	score, err := best.Load()
	switch {
	case errors.Is(err, store.ErrNoRecord):
	case err != nil:
		log.Printf("best score reset to 0: %v", err)
	}

	sess := game.NewSession(opts.Game, score)
	best.Watch(sess.Bus())
	if opts.Autopilot {
		sess.SetPilot(autopilot.New())
	}

	if !opts.Mute {
		if snd, err := audio.New(); err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			snd.Watch(sess.Bus())
		}
	}

	log.Printf("starting %s ui, tick %v, seed %d", opts.UI, opts.Game.Tick, opts.Game.Seed)
	switch opts.UI {
	case config.UITerminal:
		screen, err := terminal.NewScreen()
		if err != nil {
			return err
		}
		defer screen.Fini()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := terminal.Run(ctx, screen, sess); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	default:
		return desktop.Run(sess, desktop.Options{Scale: opts.Scale, Seed: opts.Game.Seed})
	}
}

func openStore(path string) *store.Store {
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			log.Printf("%v; best score kept in the working directory", err)
			p = "best.json"
		}
		path = p
	}
	return store.New(path)
}

// setupLog routes logs away from stderr in terminal mode, where it would
// corrupt the screen.
func setupLog(opts config.Options) (func(), error) {
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	}
	if opts.UI == config.UITerminal {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}
