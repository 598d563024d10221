package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
	"gridsnake/internal/scene"
)

// Layout in terminal cells: a HUD row, then the board framed by a border.
// Each grid cell is two columns wide so it looks square.
const (
	cellCols  = 2
	boardLeft = 1
	boardTop  = 2
	MinWidth  = game.GridCount*cellCols + 2
	MinHeight = game.GridCount + 3
)

func rgb(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// cellOrigin is the screen column and row of grid cell p.
func cellOrigin(p game.Position) (int, int) {
	return boardLeft + p.X*cellCols, boardTop + p.Y
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w < MinWidth || h < MinHeight {
		r.text(0, 0, "terminal too small", tcell.StyleDefault)
		r.screen.Show()
		return
	}

	r.hud(s)
	r.border()
	r.grass()
	r.particles(s.Particles)
	if s.HasFood() {
		r.food(s.Food)
	}
	r.snake(s)
	switch s.Phase {
	case game.PhaseNotStarted:
		r.overlay("SNAKE", "Arrows or WASD to move", "Press Enter to start")
	case game.PhaseGameOver:
		score, _ := scene.HUDLine(s)
		r.overlay("GAME OVER", "Final "+score, "Press Enter to play again")
	}
	r.screen.Show()
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) hud(s game.Snapshot) {
	score, best := scene.HUDLine(s)
	r.text(0, 0, score, tcell.StyleDefault.Foreground(rgb(game.Palette.Text)).Bold(true))
	r.text(MinWidth-len(best), 0, best, tcell.StyleDefault.Foreground(rgb(game.Palette.TextAccent)).Bold(true))
}

func (r *Renderer) border() {
	style := tcell.StyleDefault.Foreground(rgb(game.Palette.GrassDark))
	right := boardLeft + game.GridCount*cellCols
	bottom := boardTop + game.GridCount
	for x := boardLeft; x < right; x++ {
		r.screen.SetContent(x, boardTop-1, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := boardTop; y < bottom; y++ {
		r.screen.SetContent(boardLeft-1, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(boardLeft-1, boardTop-1, '┌', nil, style)
	r.screen.SetContent(right, boardTop-1, '┐', nil, style)
	r.screen.SetContent(boardLeft-1, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func grassColor(p game.Position) game.RGB {
	if (p.X+p.Y)%2 == 0 {
		return game.Palette.GrassLight
	}
	return game.Palette.GrassDark
}

func (r *Renderer) fill(p game.Position, glyphs [cellCols]rune, style tcell.Style) {
	x, y := cellOrigin(p)
	for i, ch := range glyphs {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) grass() {
	for y := 0; y < game.GridCount; y++ {
		for x := 0; x < game.GridCount; x++ {
			p := game.Position{X: x, Y: y}
			r.fill(p, [cellCols]rune{' ', ' '}, tcell.StyleDefault.Background(rgb(grassColor(p))))
		}
	}
}

// headGlyphs puts the eyes on the side the snake is facing.
func headGlyphs(d game.Direction) [cellCols]rune {
	switch d {
	case game.Left:
		return [cellCols]rune{':', ' '}
	case game.Right:
		return [cellCols]rune{' ', ':'}
	case game.Down:
		return [cellCols]rune{'.', '.'}
	}
	return [cellCols]rune{'\'', '\''}
}

func (r *Renderer) snake(s game.Snapshot) {
	body := tcell.StyleDefault.Background(rgb(game.Palette.Body))
	for i := len(s.Snake) - 1; i >= 1; i-- {
		r.fill(s.Snake[i], [cellCols]rune{' ', ' '}, body)
	}
	if len(s.Snake) == 0 {
		return
	}
	head := tcell.StyleDefault.Background(rgb(game.Palette.HeadTop)).Foreground(rgb(game.Palette.Pupil)).Bold(true)
	r.fill(s.Snake[0], headGlyphs(s.Dir), head)
}

func (r *Renderer) food(p game.Position) {
	style := tcell.StyleDefault.Background(rgb(grassColor(p))).Foreground(rgb(game.Palette.Apple))
	r.fill(p, [cellCols]rune{'●', ' '}, style)
}

// particles fade toward the grass colour as their life runs out.
func (r *Renderer) particles(ps []game.Particle) {
	for _, pt := range ps {
		if pt.Dead() {
			continue
		}
		col := int(math.Floor(pt.Pos.X / game.CellSize * cellCols))
		row := int(math.Floor(pt.Pos.Y / game.CellSize))
		cell := game.Position{X: col / cellCols, Y: row}
		if col < 0 || !cell.InBounds() {
			continue
		}
		bg := grassColor(cell)
		fg := game.LerpRGB(bg, pt.Col, pt.Life)
		style := tcell.StyleDefault.Background(rgb(bg)).Foreground(rgb(fg))
		r.screen.SetContent(boardLeft+col, boardTop+row, '*', nil, style)
	}
}

func (r *Renderer) overlay(lines ...string) {
	style := tcell.StyleDefault.Background(rgb(game.Palette.Overlay)).Foreground(rgb(game.Palette.Text))
	title := style.Foreground(rgb(game.Palette.TextAccent)).Bold(true)
	mid := boardLeft + game.GridCount*cellCols/2
	top := boardTop + game.GridCount/2 - len(lines)
	for i, line := range lines {
		st := style
		if i == 0 {
			st = title
		}
		padded := " " + line + " "
		r.text(mid-len(padded)/2, top+i*2, padded, st)
	}
}
