package game

import "golang.org/x/exp/rand"

// Intner is the slice of a random source food placement needs.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// NoFood marks a board with no free cell left.
var NoFood = Position{X: -1, Y: -1}

// rejectionAttempts caps blind sampling before falling back to enumerating free cells.
const rejectionAttempts = 4 * GridCount * GridCount

// NewFoodRand returns the food placement source for a seed.
func NewFoodRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// PlaceFood picks a cell not occupied by s, uniformly at random.
// It returns NoFood when the snake covers the whole grid.
func PlaceFood(s Snake, rng Intner) Position {
	if len(s) >= GridCount*GridCount {
		return NoFood
	}
	for i := 0; i < rejectionAttempts; i++ {
		p := Position{X: rng.Intn(GridCount), Y: rng.Intn(GridCount)}
		if !s.Contains(p) {
			return p
		}
	}

	// Crowded board: draw directly from the free cells.
	occupied := make(map[Position]struct{}, len(s))
	for _, seg := range s {
		occupied[seg] = struct{}{}
	}
	free := make([]Position, 0, GridCount*GridCount-len(s))
	for y := 0; y < GridCount; y++ {
		for x := 0; x < GridCount; x++ {
			p := Position{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return NoFood
	}
	return free[rng.Intn(len(free))]
}
