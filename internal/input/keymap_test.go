package input

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestEvent(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key    string
		kind   core.EventKind
		dir    core.Direction
		hasDir bool
	}{
		{"up", core.EventKeyDown, core.DirUp, true},
		{"w", core.EventKeyDown, core.DirUp, true},
		{"down", core.EventKeyDown, core.DirDown, true},
		{"s", core.EventKeyDown, core.DirDown, true},
		{"left", core.EventKeyDown, core.DirLeft, true},
		{"a", core.EventKeyDown, core.DirLeft, true},
		{"right", core.EventKeyDown, core.DirRight, true},
		{"d", core.EventKeyDown, core.DirRight, true},
		{"enter", core.EventKeyDown, 0, false},
		{"x", core.EventKeyDown, 0, false},
		{"ctrl+c", core.EventQuit, 0, false},
		{"esc", core.EventQuit, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			ev := km.Event(tt.key)
			if ev.Kind != tt.kind {
				t.Errorf("Kind = %v, expected %v", ev.Kind, tt.kind)
			}
			if ev.HasDir != tt.hasDir {
				t.Errorf("HasDir = %v, expected %v", ev.HasDir, tt.hasDir)
			}
			if tt.hasDir && ev.Dir != tt.dir {
				t.Errorf("Dir = %v, expected %v", ev.Dir, tt.dir)
			}
		})
	}
}

func TestHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", len(km.ShortHelp()))
	}
	n := 0
	for _, group := range km.FullHelp() {
		n += len(group)
	}
	if n != 5 {
		t.Errorf("FullHelp() has %d bindings, expected 5", n)
	}
}
