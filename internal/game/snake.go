package game

// Position is a grid cell.
type Position struct {
	X, Y int
}

// Add returns p moved one step in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies inside the GridCount×GridCount grid.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < GridCount && p.Y >= 0 && p.Y < GridCount
}

// Center returns the pixel centre of the cell.
func (p Position) Center() (float64, float64) {
	return float64(p.X*CellSize) + CellSize/2, float64(p.Y*CellSize) + CellSize/2
}

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Snake is the ordered body, head first.
type Snake []Position

// InitialSnake is the three-cell body every game starts with, heading right.
func InitialSnake() Snake {
	return Snake{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
}

func (s Snake) Head() Position {
	return s[0]
}

// Contains reports whether any segment occupies p.
func (s Snake) Contains(p Position) bool {
	for _, seg := range s {
		if seg == p {
			return true
		}
	}
	return false
}

func (s Snake) Clone() Snake {
	out := make(Snake, len(s))
	copy(out, s)
	return out
}
