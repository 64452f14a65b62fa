package scene

import "github.com/vovakirdan/tui-snake/internal/core"

// PromptText is the blinking line under the caption.
const PromptText = "Press any key"

// AnyKey shows a caption over a frozen image of the previous frame and ends
// on the first key press. It serves as both the title and the death screen.
type AnyKey struct {
	base
	caption    string
	board      core.Board
	interval   int64
	blinkTimer int64
	blink      bool
	background core.Color
	backdrop   []core.DrawCell
}

// NewAnyKey creates an any-key scene. blinkMS is the prompt toggle period.
func NewAnyKey(id, next ID, caption string, board core.Board, blinkMS int) *AnyKey {
	s := &AnyKey{
		base:     base{id: id, next: next},
		caption:  caption,
		board:    board,
		interval: int64(blinkMS),
	}
	s.Reset()
	return s
}

// NewTitle creates the start screen.
func NewTitle(board core.Board, blinkMS int) *AnyKey {
	return NewAnyKey(IDTitle, IDPlay, "START", board, blinkMS)
}

// NewDeath creates the game over screen.
func NewDeath(board core.Board, blinkMS int) *AnyKey {
	return NewAnyKey(IDDeath, IDTitle, "DEAD.", board, blinkMS)
}

// Start freezes the last frame as backdrop.
func (s *AnyKey) Start(now int64, last core.Frame) {
	s.start(now)
	s.background = last.Background
	s.backdrop = last.Snapshot()
}

// HandleEvent ends the scene on any key press.
func (s *AnyKey) HandleEvent(ev core.Event) {
	if ev.Kind == core.EventKeyDown {
		s.done = true
	}
}

// Update toggles the prompt once per blink interval.
func (s *AnyKey) Update(now int64) {
	if now-s.blinkTimer > s.interval {
		s.blink = !s.blink
		s.blinkTimer = now
	}
}

// Reset clears the snapshot and blink state.
func (s *AnyKey) Reset() {
	s.reset()
	s.blinkTimer = 0
	s.blink = false
	s.background = core.ColorBackground
	s.backdrop = nil
}

// Blinking reports whether the prompt is currently visible.
func (s *AnyKey) Blinking() bool {
	return s.blink
}

// Caption returns the large text.
func (s *AnyKey) Caption() string {
	return s.caption
}

// Frame draws the backdrop, the caption above the center and the prompt
// below it while visible.
func (s *AnyKey) Frame() core.Frame {
	row := textRow(s.board)
	overlays := []core.Overlay{
		{Text: s.caption, Row: -row, Size: core.TextLarge, Color: core.ColorText},
	}
	if s.blink {
		overlays = append(overlays, core.Overlay{Text: PromptText, Row: row, Size: core.TextSmall, Color: core.ColorText})
	}
	return core.Frame{
		Background: s.background,
		Backdrop:   s.backdrop,
		Overlays:   overlays,
	}
}

// textRow is the caption distance from the play area center in cells,
// 9 on the 32 row board.
func textRow(b core.Board) int {
	return b.H * 9 / 32
}
