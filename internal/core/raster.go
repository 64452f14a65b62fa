package core

import "unicode/utf8"

// RasterOptions controls how a Frame is turned into characters.
type RasterOptions struct {
	// Glyphs draws each cell with its color's glyph instead of a colored space.
	// Used for plain-text output where backgrounds are lost.
	Glyphs bool
}

// Rasterize draws f onto dst using g to place cells. The whole screen is
// repainted: background first, then backdrop, cells and overlays.
func Rasterize(f Frame, g Geometry, dst *Screen, opts RasterOptions) {
	dst.Fill(f.Background)

	paint := func(cells []DrawCell) {
		for _, dc := range cells {
			c := ScreenCell{Rune: ' ', BG: dc.Color}
			if opts.Glyphs {
				c.Rune = dc.Color.Glyph()
			}
			dst.FillRect(g.CellRect(dc.Cell), c)
		}
	}
	paint(f.Backdrop)
	paint(f.Cells)

	play := g.PlayRect()
	cx, cy := play.Center()
	for _, o := range f.Overlays {
		y := cy + o.Row*g.CellH
		x := cx - utf8.RuneCountInString(o.Text)/2
		dst.DrawText(x, y, o.Text, o.Color, o.Size == TextLarge)
	}
}
