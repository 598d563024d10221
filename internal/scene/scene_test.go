package scene

import (
	"testing"

	"github.com/joonazan/vec2"

	"gridsnake/internal/game"
)

func snapshot(phase game.Phase, dir game.Direction) game.Snapshot {
	return game.Snapshot{
		Phase: phase,
		Snake: game.Snake{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		Dir:   dir,
		Food:  game.Position{X: 12, Y: 7},
		Score: 7,
		Best:  12,
	}
}

func find(sprites []Sprite, match func(Sprite) bool) []Sprite {
	var out []Sprite
	for _, s := range sprites {
		if match(s) {
			out = append(out, s)
		}
	}
	return out
}

func isEye(s Sprite) bool {
	return s.Shape == ShapeDisc && s.Size == 6 && s.Color == (Color{1, 1, 1, 1})
}

// TestEyesFollowDirection verifies the eye offset for each heading.
func TestEyesFollowDirection(t *testing.T) {
	tests := []struct {
		dir    game.Direction
		dx, dy float32
	}{
		{game.Up, 0, -3},
		{game.Down, 0, 3},
		{game.Left, -3, 0},
		{game.Right, 3, 0},
	}
	hx, hy := cellCentre(game.Position{X: 5, Y: 5})
	for _, tt := range tests {
		eyes := find(NewBuilder(1).Build(snapshot(game.PhaseRunning, tt.dir)), isEye)
		if len(eyes) != 2 {
			t.Fatalf("%v: expected 2 eyes, got %d", tt.dir, len(eyes))
		}
		if eyes[0].X != hx-4+tt.dx || eyes[1].X != hx+4+tt.dx {
			t.Errorf("%v: eye x = %v,%v", tt.dir, eyes[0].X, eyes[1].X)
		}
		if eyes[0].Y != hy-2+tt.dy {
			t.Errorf("%v: eye y = %v, want %v", tt.dir, eyes[0].Y, hy-2+tt.dy)
		}
	}
}

func TestSnakeSegments(t *testing.T) {
	sprites := NewBuilder(1).Build(snapshot(game.PhaseRunning, game.Right))
	heads := find(sprites, func(s Sprite) bool { return s.Shape == ShapeHead })
	body := find(sprites, func(s Sprite) bool { return s.Shape == ShapeRound })
	if len(heads) != 1 || len(body) != 2 {
		t.Fatalf("Expected 1 head and 2 body segments, got %d and %d", len(heads), len(body))
	}
	hx, hy := cellCentre(game.Position{X: 5, Y: 5})
	if heads[0].X != hx || heads[0].Y != hy {
		t.Errorf("Head drawn at (%v,%v)", heads[0].X, heads[0].Y)
	}
}

func TestFoodDrawnOnlyWhenPresent(t *testing.T) {
	isApple := func(s Sprite) bool { return s.Size == 2*appleRadius && s.Shape == ShapeDisc }

	snap := snapshot(game.PhaseRunning, game.Right)
	apples := find(NewBuilder(1).Build(snap), isApple)
	if len(apples) != 2 {
		t.Fatalf("Expected two apple halves, got %d", len(apples))
	}
	fx, fy := cellCentre(snap.Food)
	if apples[0].X != fx-1 || apples[1].X != fx+1 || apples[0].Y != fy {
		t.Errorf("Apple misplaced: %+v", apples)
	}

	snap.Food = game.NoFood
	if got := find(NewBuilder(1).Build(snap), isApple); len(got) != 0 {
		t.Errorf("Expected no apple for NoFood, got %d", len(got))
	}
}

func TestParticleAlphaIsLife(t *testing.T) {
	snap := snapshot(game.PhaseRunning, game.Right)
	snap.Particles = []game.Particle{
		{Pos: vec2.Vector{X: 100, Y: 50}, Life: 0.25, Size: 3, Col: game.ParticleColors[0]},
		{Pos: vec2.Vector{X: 10, Y: 10}, Life: 0, Size: 3, Col: game.ParticleColors[1]},
	}
	dots := find(NewBuilder(1).Build(snap), func(s Sprite) bool {
		return s.Shape == ShapeDisc && s.Color.A == 0.25
	})
	if len(dots) != 1 {
		t.Fatalf("Expected one live particle sprite, got %d", len(dots))
	}
	if dots[0].Size != 6 || dots[0].X != 100 || dots[0].Y != 50+HUDHeight {
		t.Errorf("Unexpected particle sprite %+v", dots[0])
	}
}

// TestOverlays verifies the dimming layer appears only outside a running round.
func TestOverlays(t *testing.T) {
	isShade := func(s Sprite) bool { return s.Color.A == 0.6 && s.Size == game.CellSize }
	for phase, want := range map[game.Phase]int{
		game.PhaseNotStarted: game.GridCount * game.GridCount,
		game.PhaseRunning:    0,
		game.PhaseGameOver:   game.GridCount * game.GridCount,
	} {
		got := find(NewBuilder(1).Build(snapshot(phase, game.Right)), isShade)
		if len(got) != want {
			t.Errorf("%v: expected %d shade tiles, got %d", phase, want, len(got))
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := NewBuilder(9).Build(snapshot(game.PhaseRunning, game.Up))
	first := append([]Sprite(nil), a...)
	b := NewBuilder(9).Build(snapshot(game.PhaseRunning, game.Up))
	if len(first) != len(b) {
		t.Fatalf("Length differs: %d vs %d", len(first), len(b))
	}
	for i := range first {
		if first[i] != b[i] {
			t.Fatalf("Sprite %d differs", i)
		}
	}
}

func TestPack(t *testing.T) {
	buf := Pack(nil, []Sprite{{X: 1, Y: 2, Size: 3, Color: Color{0.1, 0.2, 0.3, 0.4}, Shape: ShapeHead}})
	want := []float32{1, 2, 3, 0.1, 0.2, 0.3, 0.4, float32(ShapeHead)}
	if len(buf) != FloatsPerSprite {
		t.Fatalf("Expected %d floats, got %d", FloatsPerSprite, len(buf))
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("Float %d: expected %v, got %v", i, want[i], buf[i])
		}
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("AB", 2); got != 14 {
		t.Errorf("Expected 14, got %v", got)
	}
	if got := TextWidth("", 2); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if s, b := HUDLine(snapshot(game.PhaseRunning, game.Up)); s != "SCORE 7" || b != "BEST 12" {
		t.Errorf("Unexpected HUD %q %q", s, b)
	}
}
