// Package scene turns a game snapshot into a flat list of sprites that
// any backend able to draw squares and discs can render.
package scene

import (
	"math"
	"strconv"

	"gridsnake/internal/game"
)

// Layout in scene pixels. The board sits below a HUD strip.
const (
	HUDHeight = 24
	Width     = game.CanvasSize
	Height    = game.CanvasSize + HUDHeight

	textPx    = 2
	overlayPx = 4
)

// Shape selects how a point sprite is filled.
type Shape uint8

const (
	ShapeSquare Shape = iota
	ShapeDisc
	ShapeRound // rounded square, body segment
	ShapeHead  // rounded square with the head gradient
)

// Color is straight (non-premultiplied) RGBA in [0,1].
type Color struct {
	R, G, B, A float32
}

func rgba(c game.RGB, a float64) Color {
	return Color{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(a)}
}

// Sprite is a filled shape centred on (X, Y) with side/diameter Size.
type Sprite struct {
	X, Y  float32
	Size  float32
	Color Color
	Shape Shape
}

// FloatsPerSprite is the stride Pack writes: x, y, size, r, g, b, a, shape.
const FloatsPerSprite = 8

// Pack appends sprites to dst in the vertex layout of the point-sprite program.
func Pack(dst []float32, sprites []Sprite) []float32 {
	for _, s := range sprites {
		dst = append(dst, s.X, s.Y, s.Size, s.Color.R, s.Color.G, s.Color.B, s.Color.A, float32(s.Shape))
	}
	return dst
}

// Builder reuses its sprite buffer across frames.
type Builder struct {
	seed uint64
	buf  []Sprite
}

// NewBuilder returns a builder; seed only varies the grass texture.
func NewBuilder(seed uint64) *Builder {
	return &Builder{seed: seed, buf: make([]Sprite, 0, 4096)}
}

func (b *Builder) add(s Sprite) { b.buf = append(b.buf, s) }

// Build draws a full frame back to front. The returned slice is only
// valid until the next call.
func (b *Builder) Build(s game.Snapshot) []Sprite {
	b.buf = b.buf[:0]
	b.grass()
	b.snake(s)
	if s.HasFood() {
		b.food(s.Food)
	}
	b.particles(s.Particles)
	b.hud(s)
	switch s.Phase {
	case game.PhaseNotStarted:
		b.startOverlay()
	case game.PhaseGameOver:
		b.gameOverOverlay(s.Score)
	}
	return b.buf
}

// cellCentre maps a grid cell to scene pixels.
func cellCentre(p game.Position) (float32, float32) {
	x, y := p.Center()
	return float32(x), float32(y) + HUDHeight
}

func (b *Builder) grass() {
	speck := rgba(game.Palette.GrassSpeck, 0.3)
	for y := 0; y < game.GridCount; y++ {
		for x := 0; x < game.GridCount; x++ {
			c := game.Palette.GrassLight
			if (x+y)%2 != 0 {
				c = game.Palette.GrassDark
			}
			cx, cy := cellCentre(game.Position{X: x, Y: y})
			b.add(Sprite{X: cx, Y: cy, Size: game.CellSize, Color: rgba(c, 1), Shape: ShapeSquare})

			h := game.Hash2D(b.seed, x, y)
			for k := 0; k < 3; k++ {
				ox := float32(h&0xF) + 2
				oy := float32((h>>4)&0xF) + 2
				h >>= 8
				b.add(Sprite{
					X:     cx - game.CellSize/2 + ox,
					Y:     cy - game.CellSize/2 + oy,
					Size:  2,
					Color: speck,
					Shape: ShapeSquare,
				})
			}
		}
	}
}

// EyeOffset shifts the eyes toward the direction of travel.
func EyeOffset(d game.Direction) (float32, float32) {
	switch d {
	case game.Left:
		return -3, 0
	case game.Right:
		return 3, 0
	case game.Down:
		return 0, 3
	}
	return 0, -3
}

func (b *Builder) snake(s game.Snapshot) {
	// Tail first so the head overlaps its neighbour.
	for i := len(s.Snake) - 1; i >= 1; i-- {
		cx, cy := cellCentre(s.Snake[i])
		b.add(Sprite{X: cx, Y: cy, Size: game.CellSize - 2, Color: rgba(game.Palette.Body, 1), Shape: ShapeRound})
	}
	if len(s.Snake) == 0 {
		return
	}

	cx, cy := cellCentre(s.Snake[0])
	b.add(Sprite{X: cx, Y: cy, Size: game.CellSize - 2, Color: rgba(game.Palette.HeadTop, 1), Shape: ShapeHead})

	ox, oy := EyeOffset(s.Dir)
	white := rgba(game.Palette.EyeWhite, 1)
	pupil := rgba(game.Palette.Pupil, 1)
	for _, side := range []float32{-4, 4} {
		ex, ey := cx+side+ox, cy-2+oy
		b.add(Sprite{X: ex, Y: ey, Size: 6, Color: white, Shape: ShapeDisc})
		b.add(Sprite{X: ex + 1, Y: ey, Size: 3, Color: pupil, Shape: ShapeDisc})
	}

	// Smile: a few dots along the lower arc.
	mouth := rgba(game.Palette.Mouth, 1)
	mx, my := cx+ox, cy+3+oy
	for _, a := range []float64{0.25, 0.5, 0.75} {
		b.add(Sprite{
			X:     mx + float32(3*math.Cos(a*math.Pi)),
			Y:     my + float32(3*math.Sin(a*math.Pi)),
			Size:  1.5,
			Color: mouth,
			Shape: ShapeDisc,
		})
	}
}

const appleRadius = game.CellSize/2 - 3

func (b *Builder) food(p game.Position) {
	cx, cy := cellCentre(p)
	apple := rgba(game.Palette.Apple, 1)
	b.add(Sprite{X: cx - 1, Y: cy, Size: 2 * appleRadius, Color: apple, Shape: ShapeDisc})
	b.add(Sprite{X: cx + 1, Y: cy, Size: 2 * appleRadius, Color: apple, Shape: ShapeDisc})

	stem := rgba(game.Palette.Stem, 1)
	top := cy - appleRadius
	b.add(Sprite{X: cx, Y: top - 1, Size: 2, Color: stem, Shape: ShapeSquare})
	b.add(Sprite{X: cx + 1.5, Y: top - 2.5, Size: 2, Color: stem, Shape: ShapeSquare})

	b.add(Sprite{X: cx + 4, Y: top - 2, Size: 5, Color: rgba(game.Palette.Leaf, 1), Shape: ShapeDisc})
	b.add(Sprite{X: cx - 2, Y: cy - 2, Size: 6, Color: rgba(game.Palette.Highlight, 0.4), Shape: ShapeDisc})
}

func (b *Builder) particles(ps []game.Particle) {
	for _, p := range ps {
		if p.Dead() {
			continue
		}
		b.add(Sprite{
			X:     float32(p.Pos.X),
			Y:     float32(p.Pos.Y) + HUDHeight,
			Size:  float32(2 * p.Size),
			Color: rgba(p.Col, math.Min(p.Life, 1)),
			Shape: ShapeDisc,
		})
	}
}

// HUDLine is the score line shared by all frontends.
func HUDLine(s game.Snapshot) (score, best string) {
	return "SCORE " + strconv.Itoa(s.Score), "BEST " + strconv.Itoa(s.Best)
}

func (b *Builder) hud(s game.Snapshot) {
	for x := 0; x < game.GridCount; x++ {
		b.add(Sprite{
			X:     float32(x*game.CellSize) + game.CellSize/2,
			Y:     HUDHeight / 2,
			Size:  game.CellSize,
			Color: rgba(game.Palette.Overlay, 1),
			Shape: ShapeSquare,
		})
	}
	y := (HUDHeight - TextHeight(textPx)) / 2
	score, best := HUDLine(s)
	b.text(score, 6, y, textPx, rgba(game.Palette.Text, 1))
	b.text(best, Width-6-TextWidth(best, textPx), y, textPx, rgba(game.Palette.TextAccent, 1))
}

func (b *Builder) dim() {
	shade := rgba(game.Palette.Overlay, 0.6)
	for y := 0; y < game.GridCount; y++ {
		for x := 0; x < game.GridCount; x++ {
			cx, cy := cellCentre(game.Position{X: x, Y: y})
			b.add(Sprite{X: cx, Y: cy, Size: game.CellSize, Color: shade, Shape: ShapeSquare})
		}
	}
}

func (b *Builder) startOverlay() {
	b.dim()
	mid := float32(Width) / 2
	top := float32(HUDHeight) + game.CanvasSize/2 - 60
	b.centredText("SNAKE", mid, top, overlayPx*2, rgba(game.Palette.TextAccent, 1))
	b.centredText("ARROWS OR WASD TO MOVE", mid, top+60, textPx, rgba(game.Palette.Text, 1))
	b.centredText("PRESS ENTER TO START", mid, top+80, textPx, rgba(game.Palette.Text, 1))
}

func (b *Builder) gameOverOverlay(score int) {
	b.dim()
	mid := float32(Width) / 2
	top := float32(HUDHeight) + game.CanvasSize/2 - 50
	b.centredText("GAME OVER", mid, top, overlayPx, rgba(game.Palette.TextAccent, 1))
	b.centredText("FINAL SCORE "+strconv.Itoa(score), mid, top+40, textPx, rgba(game.Palette.Text, 1))
	b.centredText("PRESS ENTER TO PLAY AGAIN", mid, top+60, textPx, rgba(game.Palette.Text, 1))
}
