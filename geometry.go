package reveal

import "strings"

// Geometry reports document-space bounds for nodes. A node that is detached
// or collapsed reports an empty Rect.
type Geometry interface {
	Bounds(n *Node) Rect
}

// Placement selects which edge of the element is compared with which edge
// of the viewport, e.g. "top-bottom": the element's top against the
// viewport's bottom.
type Placement struct {
	Element  Edge
	Viewport Edge
}

// String returns the "element-viewport" form, e.g. "center-top".
func (p Placement) String() string {
	return p.Element.String() + "-" + p.Viewport.String()
}

func parseEdge(s string) (Edge, bool) {
	for i, name := range edgeNames {
		if s == name {
			return Edge(i), true
		}
	}
	return 0, false
}

// ParsePlacement parses one of the nine "element-viewport" combinations of
// top, center and bottom.
func ParsePlacement(s string) (Placement, bool) {
	el, vp, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "-")
	if !ok {
		return Placement{}, false
	}
	e, ok := parseEdge(el)
	if !ok {
		return Placement{}, false
	}
	v, ok := parseEdge(vp)
	if !ok {
		return Placement{}, false
	}
	return Placement{Element: e, Viewport: v}, true
}

// triggerBounds returns the bounds used for d's trigger point: the node's own
// bounds, or the anchor's when the node has no vertical extent.
func triggerBounds(d *Descriptor, geo Geometry) Rect {
	b := geo.Bounds(d.Node)
	if degenerate(b) && d.Anchor != nil {
		return geo.Bounds(d.Anchor)
	}
	return b
}

// degenerate reports whether b has no height. A full-width row of zero height
// has no usable top or bottom of its own.
func degenerate(b Rect) bool {
	return b.Height <= 0
}

// TriggerPoint returns the document-space Y of d's trigger point.
func TriggerPoint(d *Descriptor, geo Geometry) float64 {
	b := triggerBounds(d, geo)
	return b.Top() + b.Height*d.Placement.Element.factor()
}

// ViewportEdge returns the document-space Y of the line d's trigger point is
// compared with.
func ViewportEdge(d *Descriptor, viewportHeight, scroll float64) float64 {
	return scroll + viewportHeight*d.Placement.Viewport.factor() - d.Offset
}

// Evaluate reports whether d's trigger point has been scrolled past the
// viewport edge. It holds no state: every call re-tests the inequality, so
// the answer is the same whichever direction the viewport arrived from.
func Evaluate(d *Descriptor, geo Geometry, viewportHeight, scroll float64) bool {
	return TriggerPoint(d, geo) <= ViewportEdge(d, viewportHeight, scroll)
}
