// Package engine drives the scenes: it owns the transition table, routes
// input, advances the active scene and hands finished frames to a frontend.
package engine

import "time"

// Clock supplies monotonic milliseconds.
type Clock interface {
	Now() int64
}

// MonotonicClock measures milliseconds since its creation.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns elapsed milliseconds. time.Since uses the monotonic reading.
func (c *MonotonicClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is advanced explicitly. Used by replays and tests.
type ManualClock struct {
	T int64
}

// Now returns the current manual time.
func (c *ManualClock) Now() int64 {
	return c.T
}

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms int64) {
	c.T += ms
}
