package reveal

import "time"

// Throttle is the trailing-edge rate limit used for scroll-driven scans.
// The first Trigger arms a timer; further triggers while it is armed are
// absorbed, and fn runs once when the timer fires, so it observes the state
// at the end of the interval rather than at the first trigger.
type Throttle struct {
	clock    Clock
	interval time.Duration
	fn       func()
	armed    bool
	cancel   func()
}

// NewThrottle creates a Throttle running fn at most once per interval.
func NewThrottle(clock Clock, interval time.Duration, fn func()) *Throttle {
	return &Throttle{clock: clock, interval: interval, fn: fn}
}

// Trigger requests a run at the end of the current interval.
func (t *Throttle) Trigger() {
	if t.armed {
		return
	}
	t.armed = true
	t.cancel = t.clock.AfterFunc(t.interval, t.fire)
}

func (t *Throttle) fire() {
	t.armed = false
	t.cancel = nil
	t.fn()
}

// Pending reports whether a run is scheduled.
func (t *Throttle) Pending() bool {
	return t.armed
}

// Stop cancels a scheduled run.
func (t *Throttle) Stop() {
	if t.cancel != nil {
		t.cancel()
	}
	t.armed = false
	t.cancel = nil
}

// Debounce is the leading-edge quiet-period policy used for resize and
// orientation changes. A Trigger outside the quiet period runs fn
// immediately; every Trigger, run or suppressed, restarts the quiet period.
type Debounce struct {
	clock Clock
	quiet time.Duration
	fn    func()
	until time.Duration
	seen  bool
}

// NewDebounce creates a Debounce with the given quiet period.
func NewDebounce(clock Clock, quiet time.Duration, fn func()) *Debounce {
	return &Debounce{clock: clock, quiet: quiet, fn: fn}
}

// Trigger runs fn unless a previous trigger happened within the quiet period.
func (d *Debounce) Trigger() {
	now := d.clock.Now()
	suppressed := d.seen && now < d.until
	d.seen = true
	d.until = now + d.quiet
	if suppressed {
		return
	}
	d.fn()
}

// Quiet reports whether a Trigger now would be suppressed.
func (d *Debounce) Quiet() bool {
	return d.seen && d.clock.Now() < d.until
}

// scan evaluates every trigger once, in registration order, against the
// host's current viewport. If a side effect rebuilds the registry the
// remaining triggers of the old set are skipped.
func (r *Registry) scan() {
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	gen := r.generation
	height, scroll := r.host.Viewport()
	var stats scanStats
	for _, t := range r.triggers {
		if r.generation != gen {
			break
		}
		stats.scanned++
		if !r.transition(t, Evaluate(t.desc, r.host, height, scroll)) {
			continue
		}
		if t.pos == Triggered {
			stats.entered++
		} else {
			stats.left++
		}
	}
	r.scans++

	if r.debug {
		stats.elapsed = time.Since(t0)
		stats.scroll = scroll
		r.debugLog(stats)
	}
}
