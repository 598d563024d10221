package scene

// glyphs is a 3x5 pixel font; each row is three columns, '#' lit.
var glyphs = map[rune][5]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", ".##", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", ".#.", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'A': {".#.", "#.#", "###", "#.#", "#.#"},
	'B': {"##.", "#.#", "##.", "#.#", "##."},
	'C': {".##", "#..", "#..", "#..", ".##"},
	'D': {"##.", "#.#", "#.#", "#.#", "##."},
	'E': {"###", "#..", "##.", "#..", "###"},
	'F': {"###", "#..", "##.", "#..", "#.."},
	'G': {".##", "#..", "#.#", "#.#", ".##"},
	'H': {"#.#", "#.#", "###", "#.#", "#.#"},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'J': {"..#", "..#", "..#", "#.#", ".#."},
	'K': {"#.#", "#.#", "##.", "#.#", "#.#"},
	'L': {"#..", "#..", "#..", "#..", "###"},
	'M': {"#.#", "###", "###", "#.#", "#.#"},
	'N': {"##.", "#.#", "#.#", "#.#", "#.#"},
	'O': {".#.", "#.#", "#.#", "#.#", ".#."},
	'P': {"##.", "#.#", "##.", "#..", "#.."},
	'Q': {".#.", "#.#", "#.#", "##.", ".##"},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'S': {".##", "#..", ".#.", "..#", "##."},
	'T': {"###", ".#.", ".#.", ".#.", ".#."},
	'U': {"#.#", "#.#", "#.#", "#.#", "###"},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
	'W': {"#.#", "#.#", "###", "###", "#.#"},
	'X': {"#.#", "#.#", ".#.", "#.#", "#.#"},
	'Y': {"#.#", "#.#", ".#.", ".#.", ".#."},
	'Z': {"###", "..#", ".#.", "#..", "###"},
	':': {"...", ".#.", "...", ".#.", "..."},
	'-': {"...", "...", "###", "...", "..."},
	'!': {".#.", ".#.", ".#.", "...", ".#."},
	' ': {"...", "...", "...", "...", "..."},
}

const (
	glyphW = 3
	glyphH = 5
)

// TextWidth is the pixel width of s at the given pixel scale,
// with one blank column between glyphs.
func TextWidth(s string, px float32) float32 {
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return float32(n*(glyphW+1)-1) * px
}

// TextHeight is the pixel height of one line at scale px.
func TextHeight(px float32) float32 { return glyphH * px }

// text appends one square sprite per lit glyph pixel, with (x, y) the
// top-left corner of the first glyph. Unknown runes render blank.
func (b *Builder) text(s string, x, y, px float32, c Color) {
	for _, r := range s {
		if g, ok := glyphs[r]; ok {
			for row, line := range g {
				for col := 0; col < glyphW; col++ {
					if line[col] != '#' {
						continue
					}
					b.add(Sprite{
						X:     x + (float32(col)+0.5)*px,
						Y:     y + (float32(row)+0.5)*px,
						Size:  px,
						Color: c,
						Shape: ShapeSquare,
					})
				}
			}
		}
		x += (glyphW + 1) * px
	}
}

// centredText draws s horizontally centred on cx.
func (b *Builder) centredText(s string, cx, y, px float32, c Color) {
	b.text(s, cx-TextWidth(s, px)/2, y, px, c)
}
