package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fullCheckEvery is how many rejected samples pass between checks for a
// board with no free cell left.
const fullCheckEvery = 1024

// Apple is the single piece of food on the board.
type Apple struct {
	board core.Board
	rng   *rand.Rand
	walls CellSet
	pos   core.Cell
}

// NewApple places an apple on a cell free of walls and the snake.
func NewApple(b core.Board, rng *rand.Rand, walls CellSet, s *Snake) *Apple {
	a := &Apple{board: b, rng: rng, walls: walls}
	a.pos = a.Spawn(s.Occupied(), walls)
	return a
}

// Position returns the apple's cell.
func (a *Apple) Position() core.Cell {
	return a.pos
}

// Spawn picks a uniformly random board cell outside every obstacle set using
// rejection sampling. It panics if the obstacles cover the whole board.
func (a *Apple) Spawn(obstacles ...CellSet) core.Cell {
	for attempt := 1; ; attempt++ {
		c := core.C(a.rng.Intn(a.board.W), a.rng.Intn(a.board.H))
		if !inAny(c, obstacles) {
			return c
		}
		if attempt%fullCheckEvery == 0 && freeCells(a.board, obstacles) == 0 {
			panic(fmt.Sprintf("game: no free cell for apple on %dx%d board", a.board.W, a.board.H))
		}
	}
}

// OnEaten moves the apple to a cell free of the snake and the walls.
func (a *Apple) OnEaten(s *Snake) {
	a.pos = a.Spawn(s.Occupied(), a.walls)
}

func inAny(c core.Cell, sets []CellSet) bool {
	for _, s := range sets {
		if s.Has(c) {
			return true
		}
	}
	return false
}

func freeCells(b core.Board, obstacles []CellSet) int {
	n := 0
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if !inAny(core.C(x, y), obstacles) {
				n++
			}
		}
	}
	return n
}
