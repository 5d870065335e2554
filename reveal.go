package reveal

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Empty reports whether the rectangle has no extent on either axis.
func (r Rect) Empty() bool {
	return r.Width == 0 && r.Height == 0
}

// Top returns the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Edge selects a horizontal line on an element or on the viewport.
type Edge uint8

const (
	EdgeTop    Edge = iota // top edge (viewport factor 0)
	EdgeCenter             // vertical midpoint (viewport factor 0.5)
	EdgeBottom             // bottom edge (viewport factor 1)
)

var edgeNames = [...]string{"top", "center", "bottom"}

// String returns the edge name used in placement strings.
func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return "unknown"
}

// factor returns the fraction of a span at which the edge lies.
func (e Edge) factor() float64 {
	switch e {
	case EdgeCenter:
		return 0.5
	case EdgeBottom:
		return 1
	default:
		return 0
	}
}

// Position is the trigger state of a registered element.
type Position uint8

const (
	Untriggered Position = iota // initial state; animate classes absent
	Triggered                   // animate classes applied
)

// String returns "untriggered" or "triggered".
func (p Position) String() string {
	if p == Triggered {
		return "triggered"
	}
	return "untriggered"
}

// Host events understood by the registry. Any other name may be used as a
// custom start event.
const (
	EventScroll            = "scroll"
	EventResize            = "resize"
	EventOrientationChange = "orientationchange"
	EventLoad              = "load"
	EventDOMContentLoaded  = "DOMContentLoaded"
)

// TriggerEventType identifies a trigger state change.
type TriggerEventType uint8

const (
	EventEnter TriggerEventType = iota // element became triggered
	EventLeave                         // element returned to untriggered
)

// String returns "enter" or "leave".
func (t TriggerEventType) String() string {
	if t == EventLeave {
		return "leave"
	}
	return "enter"
}
