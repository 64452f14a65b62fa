package core

// Color identifies a palette entry for a drawn cell or text.
// Frontends translate it to their own representation via Hex or RGB.
type Color uint8

// Palette entries used by the scenes.
const (
	ColorNone Color = iota
	ColorBackground
	ColorWall
	ColorSnake
	ColorHead
	ColorApple
	ColorText
)

type paletteEntry struct {
	r, g, b uint8
	hex     string
	glyph   rune
}

var palette = map[Color]paletteEntry{
	ColorBackground: {30, 40, 50, "#1e2832", ' '},
	ColorWall:       {119, 136, 153, "#778899", '#'}, // lightslategrey
	ColorSnake:      {50, 205, 50, "#32cd32", 'o'},   // limegreen
	ColorHead:       {0, 100, 0, "#006400", '@'},     // darkgreen
	ColorApple:      {255, 99, 71, "#ff6347", '*'},   // tomato
	ColorText:       {255, 255, 255, "#ffffff", ' '},
}

// RGB returns the 8-bit channels of the color. ColorNone is black.
func (c Color) RGB() (r, g, b uint8) {
	e := palette[c]
	return e.r, e.g, e.b
}

// Hex returns the color as "#rrggbb", or "" for ColorNone.
func (c Color) Hex() string {
	return palette[c].hex
}

// Glyph returns the rune used when a cell of this color is drawn as text.
func (c Color) Glyph() rune {
	if e, ok := palette[c]; ok {
		return e.glyph
	}
	return ' '
}

func (c Color) String() string {
	switch c {
	case ColorBackground:
		return "background"
	case ColorWall:
		return "wall"
	case ColorSnake:
		return "snake"
	case ColorHead:
		return "head"
	case ColorApple:
		return "apple"
	case ColorText:
		return "text"
	default:
		return "none"
	}
}
