package game

type Phase int

const (
	PhaseNotStarted Phase = iota // start overlay
	PhaseRunning                 // main gameplay
	PhaseGameOver                // snake collided
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// World is the complete gameplay state. Step treats it as a value:
// the input World, including its Snake backing array, is never modified.
type World struct {
	Phase Phase
	Snake Snake
	Dir   Direction // applied on the last step
	Next  Direction // buffered for the next step
	Food  Position
	Score int
	Best  int
	Tick  uint64
	Cause CollisionCause
}

// NewWorld returns the pre-game board shown behind the start overlay.
func NewWorld(best int, rng Intner) World {
	w := freshWorld(best, rng)
	w.Phase = PhaseNotStarted
	return w
}

// Restart re-initialises everything except Best and enters PhaseRunning.
func (w World) Restart(rng Intner) World {
	nw := freshWorld(w.Best, rng)
	nw.Phase = PhaseRunning
	return nw
}

func freshWorld(best int, rng Intner) World {
	if best < 0 {
		best = 0
	}
	s := InitialSnake()
	return World{
		Snake: s,
		Dir:   Right,
		Next:  Right,
		Food:  PlaceFood(s, rng),
		Best:  best,
	}
}

// Step advances a running world by one tick.
//
// The buffered direction is applied unless it reverses the previous one.
// Moving off the grid or onto any current segment (the tail included)
// ends the round and leaves the body where it was.
func Step(w World, rng Intner) (World, []Event) {
	if w.Phase != PhaseRunning || len(w.Snake) == 0 {
		return w, nil
	}

	dir := w.Next
	if dir == w.Dir.Opposite() {
		dir = w.Dir
	}
	head := w.Snake.Head().Add(dir)

	next := w
	next.Dir = dir
	next.Next = dir
	next.Tick++

	cause := CauseNone
	switch {
	case !head.InBounds():
		cause = CauseWall
	case w.Snake.Contains(head):
		cause = CauseSelf
	}
	if cause != CauseNone {
		next.Phase = PhaseGameOver
		next.Cause = cause
		x, y := head.Center()
		return next, []Event{{
			Type: EventCollided, Pos: head, X: x, Y: y,
			Score: w.Score, Best: w.Best, Cause: cause,
		}}
	}

	body := make(Snake, 0, len(w.Snake)+1)
	body = append(body, head)
	if head != w.Food {
		next.Snake = append(body, w.Snake[:len(w.Snake)-1]...)
		return next, nil
	}

	next.Snake = append(body, w.Snake...)
	next.Score++
	x, y := head.Center()
	events := []Event{{
		Type: EventFoodEaten, Pos: head, X: x, Y: y,
		Score: next.Score, Best: next.Best,
	}}
	if next.Score > next.Best {
		next.Best = next.Score
		events = append(events, Event{Type: EventNewBest, Pos: head, X: x, Y: y, Score: next.Score, Best: next.Best})
	}
	next.Food = PlaceFood(next.Snake, rng)
	return next, events
}
