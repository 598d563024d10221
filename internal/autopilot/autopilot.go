// Package autopilot steers the snake for demo mode: it follows an A*
// route to the food and falls back to the roomiest safe turn.
package autopilot

import (
	"github.com/nickdavies/go-astar/astar"

	"gridsnake/internal/game"
)

var directions = [...]game.Direction{game.Up, game.Down, game.Left, game.Right}

// Pilot implements game.Pilot.
type Pilot struct{}

func New() *Pilot { return &Pilot{} }

// Next picks the direction for the coming step. It reports false when
// every move is fatal.
func (p *Pilot) Next(w game.World) (game.Direction, bool) {
	if len(w.Snake) == 0 {
		return w.Dir, false
	}
	head := w.Snake.Head()

	if w.Food != game.NoFood {
		if d, ok := routeStep(w.Snake, w.Food); ok && d != w.Dir.Opposite() {
			if next := head.Add(d); safe(w.Snake, next) && room(w.Snake, next) >= len(w.Snake) {
				return d, true
			}
		}
	}

	best, bestRoom := w.Dir, -1
	for _, d := range directions {
		if d == w.Dir.Opposite() {
			continue
		}
		next := head.Add(d)
		if !safe(w.Snake, next) {
			continue
		}
		if r := room(w.Snake, next); r > bestRoom {
			best, bestRoom = d, r
		}
	}
	return best, bestRoom >= 0
}

func safe(s game.Snake, p game.Position) bool {
	return p.InBounds() && !s.Contains(p)
}

func toPoint(p game.Position) astar.Point {
	return astar.Point{Row: p.Y, Col: p.X}
}

// routeStep searches from the head to target around the body and returns
// the first move of the route.
func routeStep(s game.Snake, target game.Position) (game.Direction, bool) {
	a := astar.NewAStar(game.GridCount, game.GridCount)
	for _, seg := range s[1:] {
		a.FillTile(toPoint(seg), -1)
	}
	head := toPoint(s.Head())
	path := a.FindPath(astar.NewPointToPoint(), []astar.Point{head}, []astar.Point{toPoint(target)})
	if path == nil {
		return 0, false
	}

	var points []astar.Point
	for pp := path; pp != nil; pp = pp.Parent {
		points = append(points, pp.Point)
	}
	if len(points) < 2 {
		return 0, false
	}
	// The chain may run either way; the step is whichever end touches the head.
	var step astar.Point
	switch {
	case points[0] == head:
		step = points[1]
	case points[len(points)-1] == head:
		step = points[len(points)-2]
	default:
		return 0, false
	}
	return directionTo(s.Head(), game.Position{X: step.Col, Y: step.Row})
}

func directionTo(from, to game.Position) (game.Direction, bool) {
	for _, d := range directions {
		if from.Add(d) == to {
			return d, true
		}
	}
	return 0, false
}

// room counts the free cells reachable from start.
func room(s game.Snake, start game.Position) int {
	var blocked [game.GridCount][game.GridCount]bool
	for _, seg := range s {
		blocked[seg.Y][seg.X] = true
	}
	if blocked[start.Y][start.X] {
		return 0
	}
	stack := []game.Position{start}
	blocked[start.Y][start.X] = true
	n := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		for _, d := range directions {
			q := p.Add(d)
			if q.InBounds() && !blocked[q.Y][q.X] {
				blocked[q.Y][q.X] = true
				stack = append(stack, q)
			}
		}
	}
	return n
}
