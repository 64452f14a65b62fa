package core

// DrawCell is a single colored board cell in a render list.
type DrawCell struct {
	Cell  Cell
	Color Color
}

// TextSize selects the font used for an overlay.
type TextSize int

const (
	TextSmall TextSize = iota
	TextLarge
)

// Overlay is a line of text centered horizontally over the play area.
// Row is measured in board cells from the vertical center of the play area.
type Overlay struct {
	Text  string
	Row   int
	Size  TextSize
	Color Color
}

// Frame is everything a frontend needs to present one scene state.
// Backdrop is a frozen image of an earlier frame and is drawn first,
// Cells are drawn in order on top of it, Overlays last.
type Frame struct {
	Background Color
	Backdrop   []DrawCell
	Cells      []DrawCell
	Overlays   []Overlay
}

// Snapshot flattens the frame's image (backdrop and cells) into a new slice.
// Overlays are not part of the image.
func (f Frame) Snapshot() []DrawCell {
	out := make([]DrawCell, 0, len(f.Backdrop)+len(f.Cells))
	out = append(out, f.Backdrop...)
	out = append(out, f.Cells...)
	return out
}

// Empty reports whether the frame draws nothing besides its background.
func (f Frame) Empty() bool {
	return len(f.Backdrop) == 0 && len(f.Cells) == 0 && len(f.Overlays) == 0
}
