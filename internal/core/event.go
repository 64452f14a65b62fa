package core

// EventKind classifies input events delivered to scenes.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// Event is one logical input event. Key carries the frontend-neutral key name
// (Bubble Tea naming: "up", "a", "ctrl+c"). Dir is meaningful only when
// HasDir is set, i.e. the key is bound to a direction.
type Event struct {
	Kind   EventKind
	Key    string
	Dir    Direction
	HasDir bool
}

// KeyDown builds a key-down event for an unbound key.
func KeyDown(key string) Event {
	return Event{Kind: EventKeyDown, Key: key}
}

// DirectionKey builds a key-down event for a key bound to d.
func DirectionKey(key string, d Direction) Event {
	return Event{Kind: EventKeyDown, Key: key, Dir: d, HasDir: true}
}

// QuitEvent builds the program-exit event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}
