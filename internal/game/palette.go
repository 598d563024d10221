package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

var Palette = struct {
	GrassLight RGB
	GrassDark  RGB
	GrassSpeck RGB
	HeadTop    RGB
	HeadBottom RGB
	Body       RGB
	EyeWhite   RGB
	Pupil      RGB
	Mouth      RGB
	Apple      RGB
	Stem       RGB
	Leaf       RGB
	Highlight  RGB
	Text       RGB
	TextAccent RGB
	Overlay    RGB
}{
	GrassLight: RGB{R: 0x7E, G: 0xC8, B: 0x50},
	GrassDark:  RGB{R: 0x72, G: 0xB9, B: 0x46},
	GrassSpeck: RGB{R: 100, G: 150, B: 60},
	HeadTop:    RGB{R: 0xFF, G: 0xD7, B: 0x00},
	HeadBottom: RGB{R: 0xFF, G: 0xA5, B: 0x00},
	Body:       RGB{R: 0xFF, G: 0xA5, B: 0x00},
	EyeWhite:   RGB{R: 0xFF, G: 0xFF, B: 0xFF},
	Pupil:      RGB{R: 0x00, G: 0x00, B: 0x00},
	Mouth:      RGB{R: 0x8B, G: 0x45, B: 0x13},
	Apple:      RGB{R: 0x4C, G: 0xAF, B: 0x50},
	Stem:       RGB{R: 0x8B, G: 0x45, B: 0x13},
	Leaf:       RGB{R: 0x2E, G: 0x7D, B: 0x32},
	Highlight:  RGB{R: 0xFF, G: 0xFF, B: 0xFF},
	Text:       RGB{R: 0xFF, G: 0xFF, B: 0xFF},
	TextAccent: RGB{R: 0xFF, G: 0xD7, B: 0x00},
	Overlay:    RGB{R: 0x10, G: 0x18, B: 0x10},
}

// ParticleColors are the burst colours, picked uniformly.
var ParticleColors = [...]RGB{
	{R: 0xFF, G: 0xD7, B: 0x00},
	{R: 0xFF, G: 0xA5, B: 0x00},
	{R: 0x4C, G: 0xAF, B: 0x50},
	{R: 0x81, G: 0xC7, B: 0x84},
}
