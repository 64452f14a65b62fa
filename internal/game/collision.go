package game

// Outcome is the result of a collision check.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAte
	OutcomeHitWall
	OutcomeHitSelf
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeAte:
		return "ate apple"
	case OutcomeHitWall:
		return "hit wall"
	case OutcomeHitSelf:
		return "hit self"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome kills the snake.
func (o Outcome) Fatal() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf
}

// CheckCollisions resolves the snake's head against the apple, the walls and
// its own body, in that order; the first hit wins. Eating respawns the apple
// and arms growth. Hitting a wall or the body kills the snake.
//
// Self-collision is a duplicate cell in the body, so it is evaluated after
// the tail has moved: following the tail into its vacated cell is allowed.
func CheckCollisions(s *Snake, apple *Apple, walls CellSet) Outcome {
	head := s.Head()
	switch {
	case head == apple.Position():
		apple.OnEaten(s)
		s.Grow()
		return OutcomeAte
	case walls.Has(head):
		s.dead = true
		return OutcomeHitWall
	case s.occupied.Len() != len(s.body):
		s.dead = true
		return OutcomeHitSelf
	}
	return OutcomeNone
}
