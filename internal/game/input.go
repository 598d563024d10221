package game

import "sync/atomic"

// Key is a frontend-independent input action.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
)

// Direction maps an arrow key to its direction.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return 0, false
}

// InputMapper buffers the next direction between ticks.
// Requests may arrive from any goroutine; the driver commits once per step.
type InputMapper struct {
	committed atomic.Uint32
	pending   atomic.Uint32
}

func NewInputMapper(d Direction) *InputMapper {
	in := &InputMapper{}
	in.Reset(d)
	return in
}

// Reset sets both the committed and buffered direction, e.g. on game start.
func (in *InputMapper) Reset(d Direction) {
	in.committed.Store(uint32(d))
	in.pending.Store(uint32(d))
}

// Request buffers d unless it reverses the committed direction.
func (in *InputMapper) Request(d Direction) bool {
	if d == Direction(in.committed.Load()).Opposite() {
		return false
	}
	in.pending.Store(uint32(d))
	return true
}

func (in *InputMapper) Pending() Direction {
	return Direction(in.pending.Load())
}

func (in *InputMapper) Committed() Direction {
	return Direction(in.committed.Load())
}

// Commit records the direction a step actually applied.
func (in *InputMapper) Commit(d Direction) {
	in.committed.Store(uint32(d))
}
