// Package input holds the static key table shared by all frontends.
// Keys are named the way Bubble Tea names them ("up", "w", "ctrl+c"); the
// window frontend translates Ebiten keys into the same names.
package input

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Name is a key name. It implements fmt.Stringer so it can be matched
// against bindings with key.Matches.
type Name string

func (n Name) String() string {
	return string(n)
}

// KeyMap translates key names into game events.
// It also implements help.KeyMap for the terminal footer.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the arrow/WASD bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// IsQuit reports whether name ends the program.
func (k KeyMap) IsQuit(name string) bool {
	return key.Matches(Name(name), k.Quit)
}

// Direction returns the direction bound to name, if any.
func (k KeyMap) Direction(name string) (core.Direction, bool) {
	n := Name(name)
	switch {
	case key.Matches(n, k.Up):
		return core.DirUp, true
	case key.Matches(n, k.Down):
		return core.DirDown, true
	case key.Matches(n, k.Left):
		return core.DirLeft, true
	case key.Matches(n, k.Right):
		return core.DirRight, true
	}
	return 0, false
}

// Event translates a key press into a scene event.
func (k KeyMap) Event(name string) core.Event {
	if k.IsQuit(name) {
		return core.QuitEvent()
	}
	if d, ok := k.Direction(name); ok {
		return core.DirectionKey(name, d)
	}
	return core.KeyDown(name)
}
