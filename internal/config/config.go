// Package config turns command-line flags and environment variables into
// the settings the game is started with.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"gridsnake/internal/game"
)

const (
	UIDesktop  = "desktop"
	UITerminal = "terminal"
)

type Options struct {
	UI        string
	Game      game.Config
	Scale     int
	Mute      bool
	Autopilot bool
	BestFile  string
	LogFile   string
}

// Parse reads flags, falling back to environment variables for
// the UI, tick and seed when the flag is not given.
func Parse(args []string, getenv func(string) string, stderr io.Writer) (Options, error) {
	cfg := game.DefaultConfig()
	opts := Options{UI: UIDesktop, Scale: 2}

	if v := getenv("GRIDSNAKE_UI"); v != "" {
		opts.UI = v
	}
	if v := getenv("GRIDSNAKE_TICK"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return opts, fmt.Errorf("GRIDSNAKE_TICK: %w", err)
		}
		cfg.Tick = d
	}
	if v := getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("SNAKE_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	fs := flag.NewFlagSet("gridsnake", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.UI, "ui", opts.UI, "frontend: desktop or terminal")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "time per simulation step")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for food and particles")
	fs.IntVar(&cfg.BurstCount, "burst", cfg.BurstCount, "particles per eaten food")
	fs.IntVar(&opts.Scale, "scale", opts.Scale, "desktop window scale factor")
	fs.BoolVar(&opts.Mute, "mute", false, "disable sound")
	fs.BoolVar(&opts.Autopilot, "autopilot", false, "let the computer steer")
	fs.StringVar(&opts.BestFile, "best-file", "", "best score file (default: user config dir)")
	fs.StringVar(&opts.LogFile, "log", "", "log file (terminal mode discards logs otherwise)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if opts.UI != UIDesktop && opts.UI != UITerminal {
		return opts, fmt.Errorf("unknown ui %q", opts.UI)
	}
	if opts.Scale < 1 || opts.Scale > 8 {
		return opts, errors.New("scale must be between 1 and 8")
	}
	if err := cfg.Validate(); err != nil {
		return opts, err
	}
	opts.Game = cfg
	return opts, nil
}
