// Package game implements the snake simulation: the snake itself, apples,
// walls, level patterns and collision resolution. It never reads the clock;
// callers pass monotonic milliseconds.
package game

import (
	"sort"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// CellSet is an unordered set of cells.
type CellSet map[core.Cell]struct{}

// NewCellSet creates a set holding the given cells.
func NewCellSet(cells ...core.Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set. A nil set is empty.
func (s CellSet) Has(c core.Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c.
func (s CellSet) Add(c core.Cell) {
	s[c] = struct{}{}
}

// AddAll inserts every cell of other.
func (s CellSet) AddAll(other CellSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Len returns the number of cells.
func (s CellSet) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	out.AddAll(s)
	return out
}

// Cells returns the cells sorted by row, then column.
func (s CellSet) Cells() []core.Cell {
	out := make([]core.Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Border returns the wall ring one cell outside the board, corners included.
func Border(b core.Board) CellSet {
	walls := make(CellSet, 2*(b.W+2)+2*b.H)
	for x := -1; x <= b.W; x++ {
		walls.Add(core.C(x, -1))
		walls.Add(core.C(x, b.H))
	}
	for y := -1; y <= b.H; y++ {
		walls.Add(core.C(-1, y))
		walls.Add(core.C(b.W, y))
	}
	return walls
}

// NewWalls builds a fresh wall set: the border plus the level's interior.
// The level itself is not modified.
func NewWalls(b core.Board, lvl Level) CellSet {
	walls := Border(b)
	walls.AddAll(lvl.Walls)
	return walls
}
