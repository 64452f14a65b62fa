package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Level is a named interior wall pattern.
type Level struct {
	Name  string
	Walls CellSet
}

// GenerateLevels builds the built-in patterns for board b. Shapes depend only
// on the board size; all of them keep the lower-left spawn area clear.
// The result is meant to be built once and shared read-only.
func GenerateLevels(b core.Board) []Level {
	w, h := b.W, b.H

	split := NewCellSet()
	for i := 0; i < h/2-3; i++ {
		split.Add(core.C(w/2, i))
	}
	for i := h/2 + 3; i < h; i++ {
		split.Add(core.C(w/2, i))
	}

	pillars := NewCellSet()
	for i := 0; i < 3*h/5; i++ {
		pillars.Add(core.C(w/4, i))
	}
	for i := 2 * h / 5; i < h; i++ {
		pillars.Add(core.C(3*w/4, i))
	}

	cross := NewCellSet()
	for i := 5; i < h-5; i++ {
		cross.Add(core.C(w/2, i))
	}
	for i := 3; i < w/2-3; i++ {
		cross.Add(core.C(i, h/2))
		cross.Add(core.C(i+w/2+3, h/2))
	}

	return []Level{
		{Name: "Split", Walls: split},
		{Name: "Offset Pillars", Walls: pillars},
		{Name: "Cross", Walls: cross},
	}
}
