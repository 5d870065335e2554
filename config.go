package reveal

import "time"

// Config holds the global reveal options. Per-element attributes override
// Offset, Delay, Easing, Duration, Once, Mirror and AnchorPlacement.
type Config struct {
	// Offset is subtracted from the viewport edge, in pixels.
	Offset   float64
	Delay    time.Duration
	Easing   string
	Duration time.Duration

	Disable DisablePolicy

	Once   bool
	Mirror bool

	AnchorPlacement Placement

	// StartEvent is the host event that starts scanning. EventDOMContentLoaded
	// and EventLoad start immediately.
	StartEvent string

	AnimatedClassName string
	InitClassName     string
	// UseClassNames toggles the element's trigger names as classes instead
	// of AnimatedClassName.
	UseClassNames bool

	DisableMutationObserver bool

	// ThrottleDelay is the minimum interval between scroll-driven scans.
	ThrottleDelay time.Duration
	// DebounceDelay is the quiet period for resize and orientation changes.
	DebounceDelay time.Duration
}

// DefaultConfig returns the stock options.
func DefaultConfig() Config {
	return Config{
		Offset:            120,
		Delay:             0,
		Easing:            "ease",
		Duration:          400 * time.Millisecond,
		Disable:           DisableNever,
		AnchorPlacement:   Placement{Element: EdgeTop, Viewport: EdgeBottom},
		StartEvent:        EventDOMContentLoaded,
		AnimatedClassName: "reveal-animate",
		InitClassName:     "reveal-init",
		ThrottleDelay:     99 * time.Millisecond,
		DebounceDelay:     50 * time.Millisecond,
	}
}

// startsImmediately reports whether the start event is one of the
// document-ready events, which a Scene has always already passed.
func (c Config) startsImmediately() bool {
	return c.StartEvent == "" || c.StartEvent == EventDOMContentLoaded || c.StartEvent == EventLoad
}
