package game

import "github.com/vovakirdan/tui-snake/internal/core"

// SnakeSettings holds the start-time parameters of a snake.
type SnakeSettings struct {
	Start          core.Cell      // tail cell at spawn
	Direction      core.Direction // initial heading
	Speed          int            // cells per second
	GrowthPerApple int
	QueueSize      int
}

// DefaultSnakeSettings returns the classic setup: two cells at (10, 25)
// heading up at 8 cells per second.
func DefaultSnakeSettings() SnakeSettings {
	return SnakeSettings{
		Start:          core.C(10, 25),
		Direction:      core.DirUp,
		Speed:          8,
		GrowthPerApple: 3,
		QueueSize:      5,
	}
}

// InitialBody returns the spawn body, tail first.
func (s SnakeSettings) InitialBody() []core.Cell {
	return []core.Cell{s.Start, s.Start.Add(s.Direction.Vector())}
}

// IntervalMS returns the time between moves in milliseconds.
func (s SnakeSettings) IntervalMS() float64 {
	if s.Speed <= 0 {
		return 1000
	}
	return 1000.0 / float64(s.Speed)
}

// State is the outcome of a single Update call.
type State int

const (
	StateIdle  State = iota // alive, waiting for the next tick
	StateMoved              // alive, took a step
	StateDead
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoved:
		return "moved"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Snake is the player. Body index 0 is the tail, the last element the head.
type Snake struct {
	settings SnakeSettings
	body     []core.Cell
	occupied CellSet
	dir      core.Direction
	vector   core.Cell
	queue    *DirectionQueue
	owed     int // ticks left during which the tail is kept
	dead     bool
	lastMove int64
}

// NewSnake creates a live snake in its spawn position.
func NewSnake(settings SnakeSettings) *Snake {
	s := &Snake{
		settings: settings,
		body:     settings.InitialBody(),
		dir:      settings.Direction,
		vector:   settings.Direction.Vector(),
		queue:    NewDirectionQueue(settings.QueueSize),
	}
	s.recompute()
	return s
}

// EnqueueDirection buffers a turn. Returns false if the queue was full and
// the turn was dropped.
func (s *Snake) EnqueueDirection(d core.Direction) bool {
	return s.queue.Push(d)
}

// Update advances the snake by one cell if a full interval has passed since
// the previous move. At most one buffered turn is applied per move.
func (s *Snake) Update(now int64) State {
	if s.dead {
		return StateDead
	}
	if float64(now-s.lastMove) < s.settings.IntervalMS() {
		return StateIdle
	}
	s.lastMove = now

	next, ok := s.queue.Pop()
	if !ok {
		next = s.dir
	}
	if next != s.dir && next != s.dir.Opposite() {
		s.dir = next
		s.vector = next.Vector()
	}

	s.body = append(s.body, s.Head().Add(s.vector))
	if s.owed > 0 {
		s.owed--
	} else {
		s.body = s.body[1:]
	}
	s.recompute()
	return StateMoved
}

// Grow arms one apple's worth of growth. Growth owed from earlier apples
// is kept.
func (s *Snake) Grow() {
	s.owed += s.settings.GrowthPerApple
}

func (s *Snake) recompute() {
	s.occupied = NewCellSet(s.body...)
}

// Body returns a copy of the body, tail first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[len(s.body)-1]
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Occupied returns the set of body cells. Callers must not modify it.
func (s *Snake) Occupied() CellSet {
	return s.occupied
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Growing reports whether the tail will be kept on the next move.
func (s *Snake) Growing() bool {
	return s.owed > 0
}

// Owed returns the remaining growth ticks.
func (s *Snake) Owed() int {
	return s.owed
}

// Dead reports whether the snake has died.
func (s *Snake) Dead() bool {
	return s.dead
}

// Pending returns the number of buffered turns.
func (s *Snake) Pending() int {
	return s.queue.Len()
}
