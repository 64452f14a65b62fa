package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var board32 = core.Board{W: 32, H: 32}

func appleAt(c core.Cell, walls CellSet) *Apple {
	return &Apple{board: board32, rng: rand.New(rand.NewSource(1)), walls: walls, pos: c}
}

func snakeWithBody(body ...core.Cell) *Snake {
	s := NewSnake(DefaultSnakeSettings())
	s.body = body
	s.recompute()
	return s
}

func TestCheckCollisions(t *testing.T) {
	tests := []struct {
		name  string
		body  []core.Cell
		apple core.Cell
		walls CellSet
		want  Outcome
		dead  bool
	}{
		{
			name:  "nothing",
			body:  []core.Cell{core.C(5, 6), core.C(5, 5)},
			apple: core.C(20, 20),
			walls: Border(board32),
			want:  OutcomeNone,
		},
		{
			name:  "apple",
			body:  []core.Cell{core.C(5, 6), core.C(5, 5)},
			apple: core.C(5, 5),
			walls: Border(board32),
			want:  OutcomeAte,
		},
		{
			name:  "border",
			body:  []core.Cell{core.C(0, 0), core.C(-1, 0)},
			apple: core.C(20, 20),
			walls: Border(board32),
			want:  OutcomeHitWall,
			dead:  true,
		},
		{
			name:  "interior wall",
			body:  []core.Cell{core.C(5, 6), core.C(5, 5)},
			apple: core.C(20, 20),
			walls: NewCellSet(core.C(5, 5)),
			want:  OutcomeHitWall,
			dead:  true,
		},
		{
			name:  "apple beats wall",
			body:  []core.Cell{core.C(5, 6), core.C(5, 5)},
			apple: core.C(5, 5),
			walls: NewCellSet(core.C(5, 5)),
			want:  OutcomeAte,
		},
		{
			name:  "wall beats self",
			body:  []core.Cell{core.C(5, 5), core.C(5, 6), core.C(6, 6), core.C(6, 5), core.C(5, 5)},
			apple: core.C(20, 20),
			walls: NewCellSet(core.C(5, 5)),
			want:  OutcomeHitWall,
			dead:  true,
		},
		{
			name:  "self",
			body:  []core.Cell{core.C(5, 5), core.C(5, 6), core.C(6, 6), core.C(6, 5), core.C(5, 5)},
			apple: core.C(20, 20),
			walls: Border(board32),
			want:  OutcomeHitSelf,
			dead:  true,
		},
		{
			name:  "duplicate away from head",
			body:  []core.Cell{core.C(3, 3), core.C(3, 4), core.C(3, 3), core.C(4, 3)},
			apple: core.C(20, 20),
			walls: Border(board32),
			want:  OutcomeHitSelf,
			dead:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snakeWithBody(tt.body...)
			a := appleAt(tt.apple, tt.walls)

			got := CheckCollisions(s, a, tt.walls)
			if got != tt.want {
				t.Errorf("CheckCollisions() = %v, expected %v", got, tt.want)
			}
			if s.Dead() != tt.dead {
				t.Errorf("Dead() = %v, expected %v", s.Dead(), tt.dead)
			}
			if got.Fatal() != tt.dead {
				t.Errorf("Fatal() = %v, expected %v", got.Fatal(), tt.dead)
			}
		})
	}
}

func TestEatingRespawnsApple(t *testing.T) {
	walls := NewWalls(board32, GenerateLevels(board32)[2])

	for seed := int64(1); seed <= 50; seed++ {
		s := NewSnake(DefaultSnakeSettings())
		a := &Apple{board: board32, rng: rand.New(rand.NewSource(seed)), walls: walls, pos: core.C(10, 23)}

		s.Update(tick)
		if CheckCollisions(s, a, walls) != OutcomeAte {
			t.Fatalf("seed %d: expected to eat the apple", seed)
		}
		p := a.Position()
		if s.Occupied().Has(p) || walls.Has(p) {
			t.Fatalf("seed %d: apple respawned on %v", seed, p)
		}
		if !board32.InBounds(p) {
			t.Fatalf("seed %d: apple off the board at %v", seed, p)
		}
		if s.Owed() != 3 {
			t.Fatalf("seed %d: Owed() = %d, expected 3", seed, s.Owed())
		}
	}
}

func TestFollowingTailIsNotACollision(t *testing.T) {
	// A 2x2 loop: the head steps into the cell the tail leaves this tick.
	s := snakeWithBody(core.C(1, 2), core.C(1, 1), core.C(2, 1), core.C(2, 2))
	s.dir = core.DirDown
	s.vector = core.DirDown.Vector()
	s.EnqueueDirection(core.DirLeft)

	s.Update(tick)
	if s.Head() != core.C(1, 2) {
		t.Fatalf("Head() = %v, expected (1,2)", s.Head())
	}

	a := appleAt(core.C(20, 20), Border(board32))
	if got := CheckCollisions(s, a, Border(board32)); got != OutcomeNone {
		t.Errorf("CheckCollisions() = %v, expected none", got)
	}
}

func TestGrowingIntoTailIsACollision(t *testing.T) {
	s := snakeWithBody(core.C(1, 2), core.C(1, 1), core.C(2, 1), core.C(2, 2))
	s.dir = core.DirDown
	s.vector = core.DirDown.Vector()
	s.EnqueueDirection(core.DirLeft)
	s.Grow()

	s.Update(tick)

	a := appleAt(core.C(20, 20), Border(board32))
	if got := CheckCollisions(s, a, Border(board32)); got != OutcomeHitSelf {
		t.Errorf("CheckCollisions() = %v, expected hit self", got)
	}
}
