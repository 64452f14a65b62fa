// Package scene implements the three program modes (title, play, death)
// behind one interface. Scenes are driven by engine.Control and never read
// the clock themselves.
package scene

import "github.com/vovakirdan/tui-snake/internal/core"

// ID identifies a scene in the transition table.
type ID string

const (
	IDTitle ID = "title"
	IDPlay  ID = "play"
	IDDeath ID = "death"
)

// Scene is one mode of the program.
type Scene interface {
	// ID returns the scene identifier.
	ID() ID

	// Next returns the scene that takes over once this one is done.
	Next() ID

	// Start activates the scene. last is the most recently presented frame.
	Start(now int64, last core.Frame)

	// Started reports whether Start ran since the last Reset.
	Started() bool

	// HandleEvent processes one input event.
	HandleEvent(ev core.Event)

	// Update advances the scene to now.
	Update(now int64)

	// Done reports whether the scene wants to hand over.
	Done() bool

	// Reset prepares the scene for its next activation.
	Reset()

	// Frame returns the current render list.
	Frame() core.Frame
}

// base holds the bookkeeping every scene shares.
type base struct {
	id        ID
	next      ID
	done      bool
	started   bool
	startTime int64
}

func (b *base) ID() ID        { return b.id }
func (b *base) Next() ID      { return b.next }
func (b *base) Done() bool    { return b.done }
func (b *base) Started() bool { return b.started }

// StartTime returns the activation timestamp.
func (b *base) StartTime() int64 { return b.startTime }

func (b *base) start(now int64) {
	b.started = true
	b.startTime = now
}

func (b *base) reset() {
	b.done = false
	b.started = false
	b.startTime = 0
}
