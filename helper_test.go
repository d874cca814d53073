package journal

import (
	"fmt"
	"time"
)

// clock is a helper for test to control the time seen by a Tracker.
type clock struct{ t time.Time }

func newClock(s string) *clock {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &clock{t}
}

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// sequence is a helper for test to generate predictable ids.
func sequence(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// newTestTracker returns an empty tracker on a memory store with a fixed clock.
func newTestTracker(c *clock) (*Tracker, *MemStore) {
	store := &MemStore{}
	return NewTracker(Options{Store: store, Now: c.Now, NewID: sequence("rec")}), store
}
