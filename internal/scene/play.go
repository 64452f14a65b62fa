package scene

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Play is the gameplay scene. Every reset builds a new snake, wall set and
// apple; the wall set uses a randomly chosen level.
type Play struct {
	base
	board    core.Board
	settings game.SnakeSettings
	levels   []game.Level
	rng      *rand.Rand
	logger   *log.Logger

	level int
	snake *game.Snake
	walls game.CellSet
	apple *game.Apple
	cause game.Outcome
}

// NewPlay creates the play scene. levels are shared read-only; rng drives
// level choice and apple placement. A nil logger discards output.
func NewPlay(board core.Board, settings game.SnakeSettings, levels []game.Level, rng *rand.Rand, logger *log.Logger) *Play {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Play{
		base:     base{id: IDPlay, next: IDDeath},
		board:    board,
		settings: settings,
		levels:   levels,
		rng:      rng,
		logger:   logger,
	}
	s.Reset()
	return s
}

// Start activates the scene. The previous frame is not used.
func (s *Play) Start(now int64, _ core.Frame) {
	s.start(now)
}

// Reset prepares a fresh session.
func (s *Play) Reset() {
	s.reset()
	s.cause = game.OutcomeNone

	var lvl game.Level
	s.level = -1
	if len(s.levels) > 0 {
		s.level = s.rng.Intn(len(s.levels))
		lvl = s.levels[s.level]
	}
	s.walls = game.NewWalls(s.board, lvl)
	s.snake = game.NewSnake(s.settings)
	s.apple = game.NewApple(s.board, s.rng, s.walls, s.snake)

	s.logger.Debug("level chosen", "level", lvl.Name, "apple", s.apple.Position())
}

// HandleEvent queues direction keys on the snake. Other keys are ignored.
func (s *Play) HandleEvent(ev core.Event) {
	if ev.Kind != core.EventKeyDown || !ev.HasDir {
		return
	}
	if !s.snake.EnqueueDirection(ev.Dir) {
		s.logger.Debug("turn dropped, queue full", "dir", ev.Dir)
	}
}

// Update moves the snake and resolves collisions. The scene is done on the
// tick the snake dies.
func (s *Play) Update(now int64) {
	if s.snake.Update(now) != game.StateMoved {
		return
	}

	switch out := game.CheckCollisions(s.snake, s.apple, s.walls); out {
	case game.OutcomeAte:
		s.logger.Debug("apple eaten", "head", s.snake.Head(), "length", s.snake.Len(), "next", s.apple.Position())
	case game.OutcomeHitWall, game.OutcomeHitSelf:
		s.cause = out
		s.logger.Info("snake died", "cause", out, "length", s.snake.Len())
	}

	if s.snake.Dead() {
		s.done = true
	}
}

// Frame draws the apple, walls, body and head in that order.
func (s *Play) Frame() core.Frame {
	body := s.snake.Body()
	cells := make([]core.DrawCell, 0, 1+s.walls.Len()+len(body)+1)

	cells = append(cells, core.DrawCell{Cell: s.apple.Position(), Color: core.ColorApple})
	for _, c := range s.walls.Cells() {
		cells = append(cells, core.DrawCell{Cell: c, Color: core.ColorWall})
	}
	for _, c := range body {
		cells = append(cells, core.DrawCell{Cell: c, Color: core.ColorSnake})
	}
	cells = append(cells, core.DrawCell{Cell: s.snake.Head(), Color: core.ColorHead})

	return core.Frame{Background: core.ColorBackground, Cells: cells}
}

// Snake returns the current snake.
func (s *Play) Snake() *game.Snake { return s.snake }

// Apple returns the current apple.
func (s *Play) Apple() *game.Apple { return s.apple }

// Walls returns the current wall set.
func (s *Play) Walls() game.CellSet { return s.walls }

// Level returns the name of the chosen level, or "" without one.
func (s *Play) Level() string {
	if s.level < 0 {
		return ""
	}
	return s.levels[s.level].Name
}

// Cause returns what killed the snake, or OutcomeNone while alive.
func (s *Play) Cause() game.Outcome { return s.cause }
