package net

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock numbers the frames one host publishes. The site ID changes every
// run so viewers can tell a restarted host from a stale frame.
type Clock struct {
	site string
	seq  atomic.Uint64
}

func NewClock() *Clock {
	return &Clock{site: uuid.NewString()}
}

func (c *Clock) Site() string { return c.site }

// Next returns the next sequence number, starting at 1.
func (c *Clock) Next() uint64 { return c.seq.Add(1) }

// Tracker remembers the newest frame a viewer has applied.
type Tracker struct {
	site string
	last uint64
}

// Accept reports whether f is newer than anything seen so far. A frame from
// a different site always wins.
func (t *Tracker) Accept(f Frame) bool {
	if f.Site != t.site {
		t.site = f.Site
		t.last = f.Seq
		return true
	}
	if f.Seq <= t.last {
		return false
	}
	t.last = f.Seq
	return true
}
