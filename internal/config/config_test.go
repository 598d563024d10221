package config

import (
	"io"
	"testing"
	"time"

	"gridsnake/internal/game"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseDefaults(t *testing.T) {
	opts, err := Parse(nil, env(nil), io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.UI != UIDesktop || opts.Game.Tick != game.DefaultTick || opts.Game.BurstCount != game.DefaultBurstCount {
		t.Errorf("Unexpected defaults %+v", opts)
	}
	if opts.Scale != 2 || opts.Mute || opts.Autopilot {
		t.Errorf("Unexpected defaults %+v", opts)
	}
}

func TestParseEnvAndFlags(t *testing.T) {
	e := env(map[string]string{
		"GRIDSNAKE_UI":   "terminal",
		"GRIDSNAKE_TICK": "100ms",
		"SNAKE_SEED":     "77",
	})
	opts, err := Parse(nil, e, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.UI != UITerminal || opts.Game.Tick != 100*time.Millisecond || opts.Game.Seed != 77 {
		t.Errorf("Environment not applied: %+v", opts)
	}

	// Flags win over the environment.
	opts, err = Parse([]string{"-ui", "desktop", "-seed", "5", "-burst", "0", "-mute"}, e, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.UI != UIDesktop || opts.Game.Seed != 5 || opts.Game.BurstCount != 0 || !opts.Mute {
		t.Errorf("Flags not applied: %+v", opts)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad ui", []string{"-ui", "web"}, nil},
		{"tick too short", []string{"-tick", "1ms"}, nil},
		{"burst too large", []string{"-burst", "5000"}, nil},
		{"scale", []string{"-scale", "0"}, nil},
		{"bad env tick", nil, map[string]string{"GRIDSNAKE_TICK": "fast"}},
		{"bad env seed", nil, map[string]string{"SNAKE_SEED": "-1"}},
		{"stray args", []string{"extra"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args, env(tt.env), io.Discard); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
