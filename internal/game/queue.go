package game

import "github.com/vovakirdan/tui-snake/internal/core"

// DirectionQueue is a fixed-capacity FIFO of pending turns.
// Push and Pop never block: a full queue rejects, an empty queue reports !ok.
type DirectionQueue struct {
	buf  []core.Direction
	head int
	n    int
}

// NewDirectionQueue creates an empty queue holding at most capacity entries.
// Capacity below 1 is raised to 1.
func NewDirectionQueue(capacity int) *DirectionQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &DirectionQueue{buf: make([]core.Direction, capacity)}
}

// Push appends d. Returns false, dropping d, if the queue is full.
func (q *DirectionQueue) Push(d core.Direction) bool {
	if q.n == len(q.buf) {
		return false
	}
	q.buf[(q.head+q.n)%len(q.buf)] = d
	q.n++
	return true
}

// Pop removes and returns the oldest entry.
func (q *DirectionQueue) Pop() (core.Direction, bool) {
	if q.n == 0 {
		return 0, false
	}
	d := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return d, true
}

// Len returns the number of pending entries.
func (q *DirectionQueue) Len() int {
	return q.n
}

// Cap returns the queue capacity.
func (q *DirectionQueue) Cap() int {
	return len(q.buf)
}

// Reset empties the queue.
func (q *DirectionQueue) Reset() {
	q.head = 0
	q.n = 0
}
