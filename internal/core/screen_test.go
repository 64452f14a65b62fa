package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	want := ScreenCell{Rune: 'X', FG: ColorApple}
	s.Set(5, 5, want)
	if s.Get(5, 5) != want {
		t.Errorf("Get(5, 5) = %+v, expected %+v", s.Get(5, 5), want)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, want)
	s.Set(100, 0, want)
	s.Set(0, -1, want)
	s.Set(0, 100, want)

	if s.Get(-1, 0) != blankCell || s.Get(100, 0) != blankCell {
		t.Error("Out of bounds Get should return a blank cell")
	}
}

func TestScreenDrawTextKeepsBackground(t *testing.T) {
	s := NewScreen(20, 5)
	s.Fill(ColorBackground)
	s.DrawText(2, 1, "Hello", ColorText, true)

	for i, ch := range "Hello" {
		c := s.Get(2+i, 1)
		if c.Rune != ch || c.FG != ColorText || c.BG != ColorBackground || !c.Bold {
			t.Errorf("DrawText: unexpected cell %+v at (%d, 1)", c, 2+i)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorText, false)
	if s.Get(18, 0).Rune != 'H' || s.Get(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), ScreenCell{Rune: '#'})

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y).Rune != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d)", x, y)
			}
		}
	}
	if s.Get(1, 1).Rune != ' ' || s.Get(5, 5).Rune != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorText, false)
	s.DrawText(0, 1, "BBBBB", ColorText, false)
	s.DrawText(0, 2, "CCCCC", ColorText, false)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(1); got != "BBBBB" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if len(s.Row(3)) != 8 {
		t.Errorf("Row length should be 8, got %d", len(s.Row(3)))
	}
}

func TestRasterizeGlyphs(t *testing.T) {
	g := Geometry{Board: Board{W: 3, H: 3}, CellW: 1, CellH: 1, OffsetX: 1, OffsetY: 1}
	s := NewScreen(5, 5)

	f := Frame{
		Background: ColorBackground,
		Backdrop:   []DrawCell{{C(-1, -1), ColorWall}},
		Cells: []DrawCell{
			{C(0, 0), ColorApple},
			{C(1, 1), ColorSnake},
			{C(1, 2), ColorHead},
		},
	}
	Rasterize(f, g, s, RasterOptions{Glyphs: true})

	expected := []string{
		"#    ",
		" *   ",
		"  o  ",
		"  @  ",
		"     ",
	}
	for y, row := range expected {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, expected %q", y, got, row)
		}
	}
	if s.Get(4, 4).BG != ColorBackground {
		t.Error("background should fill the whole screen")
	}
}

func TestRasterizeOverlayCentered(t *testing.T) {
	g := Geometry{Board: Board{W: 10, H: 10}, CellW: 2, CellH: 1, OffsetX: 2, OffsetY: 1}
	w, h := g.ScreenSize()
	s := NewScreen(w, h)

	f := Frame{
		Background: ColorBackground,
		Overlays:   []Overlay{{Text: "START", Row: -2, Size: TextLarge, Color: ColorText}},
	}
	Rasterize(f, g, s, RasterOptions{})

	// Play rect is 20x10 at (2, 1): center (12, 6), text row 4
	row := s.Row(4)
	if !strings.Contains(row, "START") {
		t.Fatalf("row 4 = %q, expected overlay text", row)
	}
	if idx := strings.Index(row, "START"); idx != 10 {
		t.Errorf("overlay starts at %d, expected 10", idx)
	}
	if !s.Get(10, 4).Bold {
		t.Error("large overlays should be bold")
	}
}

func TestFrameSnapshotCopies(t *testing.T) {
	f := Frame{
		Backdrop: []DrawCell{{C(0, 0), ColorWall}},
		Cells:    []DrawCell{{C(1, 1), ColorSnake}},
		Overlays: []Overlay{{Text: "x"}},
	}

	snap := f.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Snapshot() len = %d, expected 2", len(snap))
	}

	// Mutating the snapshot must not touch the frame
	snap[1].Color = ColorApple
	if f.Cells[0].Color != ColorSnake {
		t.Error("Snapshot() should copy cells")
	}

	if f.Empty() {
		t.Error("frame with cells should not be empty")
	}
	if !(Frame{Background: ColorBackground}).Empty() {
		t.Error("background-only frame should be empty")
	}
}
