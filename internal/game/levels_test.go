package game

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestGenerateLevels(t *testing.T) {
	levels := GenerateLevels(board32)

	expected := []struct {
		name  string
		cells int
	}{
		{"Split", 26},
		{"Offset Pillars", 39},
		{"Cross", 42},
	}
	if len(levels) != len(expected) {
		t.Fatalf("GenerateLevels() returned %d levels, expected %d", len(levels), len(expected))
	}

	spawn := DefaultSnakeSettings().InitialBody()
	for i, want := range expected {
		lvl := levels[i]
		if lvl.Name != want.name {
			t.Errorf("level %d name = %q, expected %q", i, lvl.Name, want.name)
		}
		if lvl.Walls.Len() != want.cells {
			t.Errorf("%s: %d cells, expected %d", lvl.Name, lvl.Walls.Len(), want.cells)
		}
		for c := range lvl.Walls {
			if !board32.InBounds(c) {
				t.Errorf("%s: wall %v outside the board", lvl.Name, c)
			}
		}
		for _, c := range spawn {
			if lvl.Walls.Has(c) {
				t.Errorf("%s: spawn cell %v is walled", lvl.Name, c)
			}
		}
	}
}

func TestGenerateLevelsDeterministic(t *testing.T) {
	a := GenerateLevels(board32)
	b := GenerateLevels(board32)

	for i := range a {
		if !cellsEqual(a[i].Walls.Cells(), b[i].Walls.Cells()) {
			t.Errorf("level %d differs between runs", i)
		}
	}
}

func TestBorder(t *testing.T) {
	walls := Border(board32)

	if walls.Len() != 132 {
		t.Errorf("Border() has %d cells, expected 132", walls.Len())
	}
	for _, c := range []core.Cell{core.C(-1, -1), core.C(32, 32), core.C(-1, 16), core.C(16, 32)} {
		if !walls.Has(c) {
			t.Errorf("Border() missing %v", c)
		}
	}
	for c := range walls {
		if board32.InBounds(c) {
			t.Errorf("Border() contains in-bounds cell %v", c)
		}
	}
}

func TestNewWallsLeavesLevelUntouched(t *testing.T) {
	lvl := GenerateLevels(board32)[0]
	before := lvl.Walls.Len()

	walls := NewWalls(board32, lvl)
	walls.Add(core.C(1, 1))

	if lvl.Walls.Len() != before {
		t.Error("NewWalls() modified the level")
	}
	if walls.Len() != 132+before+1 {
		t.Errorf("walls has %d cells, expected %d", walls.Len(), 132+before+1)
	}
}

func TestCellSetCellsSorted(t *testing.T) {
	s := NewCellSet(core.C(2, 1), core.C(0, 1), core.C(5, 0))
	want := []core.Cell{core.C(5, 0), core.C(0, 1), core.C(2, 1)}

	if got := s.Cells(); !cellsEqual(got, want) {
		t.Errorf("Cells() = %v, expected %v", got, want)
	}
}
