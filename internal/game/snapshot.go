package game

// Snapshot is an immutable copy of everything a renderer may show.
type Snapshot struct {
	Phase     Phase
	Snake     Snake
	Dir       Direction
	Food      Position
	Score     int
	Best      int
	Tick      uint64
	Cause     CollisionCause
	Round     string
	Particles []Particle
}

// HasFood reports whether Food is on the board.
func (s Snapshot) HasFood() bool {
	return s.Food != NoFood && s.Food.InBounds()
}
