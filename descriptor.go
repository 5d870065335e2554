package reveal

import (
	"strconv"
	"strings"
	"time"
)

// Node attributes read by BuildDescriptor.
const (
	AttrTrigger         = "data-reveal"
	AttrID              = "data-reveal-id"
	AttrOffset          = "data-reveal-offset"
	AttrDelay           = "data-reveal-delay"
	AttrDuration        = "data-reveal-duration"
	AttrEasing          = "data-reveal-easing"
	AttrAnchorPlacement = "data-reveal-anchor-placement"
	AttrAnchor          = "data-reveal-anchor"
	AttrOnce            = "data-reveal-once"
	AttrMirror          = "data-reveal-mirror"
)

// rootAttrs lists the defaults Registry.Init writes onto the document root.
var rootAttrs = []string{AttrEasing, AttrDuration, AttrDelay}

// metadataAttrs lists every attribute stripped by Registry.Disable.
var metadataAttrs = []string{
	AttrTrigger, AttrID, AttrOffset, AttrDelay, AttrDuration, AttrEasing,
	AttrAnchorPlacement, AttrAnchor, AttrOnce, AttrMirror,
}

// AnimationParams are forwarded untouched to the Effect.
type AnimationParams struct {
	// Name is the raw data-reveal value, e.g. "fade-up".
	Name     string
	Easing   string
	Duration time.Duration
	Delay    time.Duration
}

// Descriptor is the normalized trigger metadata of one element. It is not
// modified after BuildDescriptor returns.
type Descriptor struct {
	Node      *Node
	ID        string
	Offset    float64
	Placement Placement
	// Anchor, when set, supplies geometry if Node's own bounds are empty.
	Anchor *Node
	Params AnimationParams
	Once   bool
	Mirror bool
	// Classes are toggled on Node while triggered.
	Classes []string
}

// attrReader reads typed attribute values, substituting the fallback for
// absent or malformed input.
type attrReader struct {
	n *Node
}

func (r attrReader) str(key, fallback string) string {
	if v, ok := r.n.Attr(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func (r attrReader) float(key string, fallback float64) float64 {
	v, ok := r.n.Attr(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return f
}

// millis reads an integer millisecond value. Negative values are malformed.
func (r attrReader) millis(key string, fallback time.Duration) time.Duration {
	v, ok := r.n.Attr(key)
	if !ok {
		return fallback
	}
	ms, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

// boolean treats a present but empty attribute as true.
func (r attrReader) boolean(key string, fallback bool) bool {
	v, ok := r.n.Attr(key)
	if !ok {
		return fallback
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func (r attrReader) placement(key string, fallback Placement) Placement {
	v, ok := r.n.Attr(key)
	if !ok {
		return fallback
	}
	p, ok := ParsePlacement(v)
	if !ok {
		return fallback
	}
	return p
}

// BuildDescriptor derives n's descriptor from its attributes, falling back to
// cfg for anything absent or malformed. find resolves the anchor selector; a
// nil find or an unresolved selector leaves Anchor nil.
func BuildDescriptor(n *Node, cfg Config, find func(selector string) *Node) Descriptor {
	r := attrReader{n: n}

	d := Descriptor{
		Node:      n,
		ID:        r.str(AttrID, ""),
		Offset:    r.float(AttrOffset, cfg.Offset),
		Placement: r.placement(AttrAnchorPlacement, cfg.AnchorPlacement),
		Params: AnimationParams{
			Name:     r.str(AttrTrigger, ""),
			Easing:   r.str(AttrEasing, cfg.Easing),
			Duration: r.millis(AttrDuration, cfg.Duration),
			Delay:    r.millis(AttrDelay, cfg.Delay),
		},
		Once:   r.boolean(AttrOnce, cfg.Once),
		Mirror: r.boolean(AttrMirror, cfg.Mirror),
	}
	if d.Once {
		d.Mirror = false
	}

	if sel := r.str(AttrAnchor, ""); sel != "" && find != nil {
		if a := find(sel); a != nil && a != n {
			d.Anchor = a
		}
	}

	if cfg.UseClassNames {
		d.Classes = strings.Fields(d.Params.Name)
	}
	if len(d.Classes) == 0 && cfg.AnimatedClassName != "" {
		d.Classes = []string{cfg.AnimatedClassName}
	}
	return d
}
