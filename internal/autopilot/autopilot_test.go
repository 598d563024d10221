package autopilot

import (
	"io"
	"log"
	"os"
	"testing"

	"gridsnake/internal/game"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func world(s game.Snake, dir game.Direction, food game.Position) game.World {
	return game.World{Phase: game.PhaseRunning, Snake: s, Dir: dir, Next: dir, Food: food}
}

func TestHeadsTowardFood(t *testing.T) {
	w := world(game.Snake{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, game.Right, game.Position{X: 5, Y: 1})
	d, ok := New().Next(w)
	if !ok || d != game.Up {
		t.Errorf("Expected up toward food, got %v (%v)", d, ok)
	}
}

// TestAvoidsWall verifies the pilot turns away from an edge it would hit.
func TestAvoidsWall(t *testing.T) {
	w := world(game.Snake{{X: 19, Y: 0}, {X: 18, Y: 0}}, game.Right, game.NoFood)
	d, ok := New().Next(w)
	if !ok || d != game.Down {
		t.Errorf("Expected down, got %v (%v)", d, ok)
	}
}

func TestNeverReverses(t *testing.T) {
	// Food directly behind the head.
	w := world(game.Snake{{X: 5, Y: 5}, {X: 4, Y: 5}}, game.Right, game.Position{X: 2, Y: 5})
	d, ok := New().Next(w)
	if !ok || d == game.Left {
		t.Errorf("Expected a non-reversing move, got %v (%v)", d, ok)
	}
}

func TestTrapped(t *testing.T) {
	// Corner with the body sealing the only exit.
	w := world(game.Snake{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, game.Left, game.Position{X: 10, Y: 10})
	if _, ok := New().Next(w); ok {
		t.Error("Expected no safe move")
	}
}

func TestRoom(t *testing.T) {
	s := game.Snake{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if got := room(s, game.Position{X: 0, Y: 0}); got != 1 {
		t.Errorf("Expected sealed pocket of 1, got %d", got)
	}
	if got := room(game.Snake{}, game.Position{X: 3, Y: 3}); got != game.GridCount*game.GridCount {
		t.Errorf("Expected whole board, got %d", got)
	}
}

// TestPilotPlays lets the pilot drive a session and expects it to eat.
func TestPilotPlays(t *testing.T) {
	sess := game.NewSession(game.Config{Tick: game.DefaultTick, BurstCount: 0, Seed: 21}, 0)
	sess.SetPilot(New())
	sess.Start()
	for i := 0; i < 2000 && sess.Phase() == game.PhaseRunning; i++ {
		sess.Update(game.DefaultTick)
	}
	if got := sess.World().Score; got < 3 {
		t.Errorf("Expected the pilot to eat at least 3 times, got %d", got)
	}
}
