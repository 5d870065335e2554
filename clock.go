package reveal

import (
	"sort"
	"time"
)

// Clock is the host's time source and deferred-execution facility. Deferred
// functions run on a later tick of the host loop, never synchronously from
// AfterFunc.
type Clock interface {
	Now() time.Duration
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type timer struct {
	at        time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// FrameClock is a Clock advanced explicitly by the host loop. Timers fire
// from Advance in deadline order; timers scheduled while firing wait for the
// next Advance.
type FrameClock struct {
	now    time.Duration
	seq    uint64
	timers []*timer
	due    []*timer // reused buffer
}

// Now returns the accumulated time.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// AfterFunc schedules fn to run on the first Advance at or past Now()+d.
func (c *FrameClock) AfterFunc(d time.Duration, fn func()) (cancel func()) {
	c.seq++
	t := &timer{at: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return func() { t.cancelled = true }
}

// Pending returns the number of timers that have not fired or been cancelled.
func (c *FrameClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by dt and fires every timer now due.
func (c *FrameClock) Advance(dt time.Duration) {
	c.now += dt

	c.due = c.due[:0]
	kept := c.timers[:0]
	for _, t := range c.timers {
		switch {
		case t.cancelled:
		case t.at <= c.now:
			c.due = append(c.due, t)
		default:
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = kept

	sort.Slice(c.due, func(i, j int) bool {
		if c.due[i].at != c.due[j].at {
			return c.due[i].at < c.due[j].at
		}
		return c.due[i].seq < c.due[j].seq
	})
	for _, t := range c.due {
		if !t.cancelled {
			t.fn()
		}
	}
}
