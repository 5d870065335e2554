package reveal

import "strconv"

// Host is the rendering environment a Registry runs against.
type Host interface {
	Geometry
	Clock

	// Root returns the document root. Elements are collected from its subtree.
	Root() *Node
	// Viewport returns the viewport height and the vertical scroll offset.
	Viewport() (height, scroll float64)
	// Listen registers fn for a named host event.
	Listen(event string, fn func()) (cancel func())
}

// MutationObserver is an optional Host capability: fn is called after nodes
// carrying attr are added to or removed from the document. Without it the
// caller must invoke RefreshHard after changing the document.
type MutationObserver interface {
	ObserveMutations(attr string, fn func()) (cancel func())
}

// Supporter is an optional Host capability. A host reporting false disables
// reveal entirely.
type Supporter interface {
	Supported() bool
}

// Registry owns the registered elements, their trigger state and the event
// wiring for one document. Create one with NewRegistry and call Init.
type Registry struct {
	host   Host
	cfg    Config
	device Device
	effect Effect
	store  EntityStore
	debug  bool

	nodes      []*Node
	triggers   []*trigger
	generation uint64
	scans      int

	initialized bool
	disabled    bool

	scroll    *Throttle
	scrollOff func()
	layout    *Debounce
	cancels   []func()
}

// NewRegistry creates a registry for host with DefaultConfig.
func NewRegistry(host Host) *Registry {
	return &Registry{host: host, cfg: DefaultConfig()}
}

// SetDevice sets the device classification used by device-class disable
// policies.
func (r *Registry) SetDevice(d Device) {
	r.device = d
}

// SetEffect sets the side-effect layer notified on every state change.
func (r *Registry) SetEffect(e Effect) {
	r.effect = e
}

// SetEntityStore sets the optional ECS bridge.
func (r *Registry) SetEntityStore(store EntityStore) {
	r.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, scan stats are
// logged at debug level, disposed-node tree operations panic, and tree depth
// and child count warnings are logged.
func (r *Registry) SetDebugMode(enabled bool) {
	r.debug = enabled
	globalDebug = enabled
}

// Config returns the active configuration.
func (r *Registry) Config() Config {
	return r.cfg
}

// Init applies cfg, collects the document's elements and, unless disabled,
// wires scanning to the host's events. Calling Init again replaces all
// previous wiring. Returns the descriptor set, nil when disabled, or an empty
// set when scanning waits for a custom start event.
func (r *Registry) Init(cfg Config) []*Descriptor {
	r.teardown()
	r.cfg = cfg
	r.initialized = false
	r.disabled = false
	r.nodes = r.collect()

	if !r.cfg.DisableMutationObserver {
		if mo, ok := r.host.(MutationObserver); ok {
			r.cancels = append(r.cancels, mo.ObserveMutations(AttrTrigger, func() { r.RefreshHard() }))
		} else {
			logger.Info().Msg("mutation observation is not supported by this host; " +
				"call RefreshHard after changing the document")
			r.cfg.DisableMutationObserver = true
		}
	}

	if r.isDisabled() {
		r.Disable()
		return nil
	}

	root := r.host.Root()
	root.SetAttr(AttrEasing, r.cfg.Easing)
	root.SetAttr(AttrDuration, strconv.FormatInt(r.cfg.Duration.Milliseconds(), 10))
	root.SetAttr(AttrDelay, strconv.FormatInt(r.cfg.Delay.Milliseconds(), 10))

	if !r.cfg.startsImmediately() {
		r.cancels = append(r.cancels, r.host.Listen(r.cfg.StartEvent, func() { r.Refresh(true) }))
	}

	r.layout = NewDebounce(r.host, r.cfg.DebounceDelay, func() { r.Refresh(false) })
	r.cancels = append(r.cancels,
		r.host.Listen(EventResize, r.layout.Trigger),
		r.host.Listen(EventOrientationChange, r.layout.Trigger),
	)

	if r.cfg.startsImmediately() {
		return r.Refresh(true)
	}
	return r.Descriptors()
}

// Refresh rebuilds descriptors for the collected elements and scans once.
// initialize marks the registry as started; before that Refresh does nothing.
func (r *Registry) Refresh(initialize bool) []*Descriptor {
	if initialize {
		r.initialized = true
	}
	if !r.initialized || r.disabled {
		return nil
	}

	r.prepare()
	r.scan()

	if r.scroll == nil {
		r.scroll = NewThrottle(r.host, r.cfg.ThrottleDelay, r.scan)
		r.scrollOff = r.host.Listen(EventScroll, r.scroll.Trigger)
	}
	return r.Descriptors()
}

// RefreshHard re-collects elements from the document, re-applies the disable
// policy and refreshes.
func (r *Registry) RefreshHard() []*Descriptor {
	r.nodes = r.collect()
	if r.isDisabled() {
		r.Disable()
		return nil
	}
	r.disabled = false
	return r.Refresh(false)
}

// Disable strips the reveal classes and metadata attributes from every
// collected element and stops scanning. Safe to call repeatedly.
func (r *Registry) Disable() {
	for _, n := range r.nodes {
		d := r.describe(n)
		for _, c := range d.Classes {
			n.RemoveClass(c)
		}
		n.RemoveClass(r.cfg.AnimatedClassName)
		n.RemoveClass(r.cfg.InitClassName)
		for _, key := range metadataAttrs {
			n.RemoveAttr(key)
		}
		if r.effect != nil {
			r.effect.Reset(&d)
		}
	}
	root := r.host.Root()
	for _, key := range rootAttrs {
		root.RemoveAttr(key)
	}
	r.stopScroll()
	r.triggers = nil
	r.generation++
	r.disabled = true
}

// Descriptors returns the current descriptor set in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(r.triggers))
	for i, t := range r.triggers {
		out[i] = t.desc
	}
	return out
}

// Position returns the trigger state of n and whether n is registered.
func (r *Registry) Position(n *Node) (Position, bool) {
	for _, t := range r.triggers {
		if t.desc.Node == n {
			return t.pos, true
		}
	}
	return Untriggered, false
}

// Initialized reports whether the start event has fired.
func (r *Registry) Initialized() bool { return r.initialized }

// Disabled reports whether the registry has been disabled.
func (r *Registry) Disabled() bool { return r.disabled }

// Scans returns the number of scans run since creation.
func (r *Registry) Scans() int { return r.scans }

// isDisabled evaluates the configured policy and host support.
func (r *Registry) isDisabled() bool {
	if r.cfg.Disable.Disabled(r.device) {
		return true
	}
	if s, ok := r.host.(Supporter); ok && !s.Supported() {
		return true
	}
	return false
}

// collect returns the document's elements carrying AttrTrigger in document order.
func (r *Registry) collect() []*Node {
	var nodes []*Node
	r.host.Root().Walk(func(n *Node) bool {
		if n.HasAttr(AttrTrigger) {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

func (r *Registry) find(selector string) *Node {
	return r.host.Root().Find(selector)
}

func (r *Registry) describe(n *Node) Descriptor {
	return BuildDescriptor(n, r.cfg, r.find)
}

// prepare replaces the trigger set with fresh descriptors for the collected
// elements. Each position is taken from the node's classes, so a rebuild
// never undoes a transition.
func (r *Registry) prepare() {
	prev := make(map[*Node]Position, len(r.triggers))
	for _, t := range r.triggers {
		prev[t.desc.Node] = t.pos
	}

	triggers := make([]*trigger, 0, len(r.nodes))
	for _, n := range r.nodes {
		if n.IsDisposed() || !n.HasAttr(AttrTrigger) {
			continue
		}
		d := r.describe(n)
		t := &trigger{desc: &d}
		if hasClasses(&d) || (len(d.Classes) == 0 && prev[n] == Triggered) {
			t.pos = Triggered
		}
		n.AddClass(r.cfg.InitClassName)
		if r.effect != nil {
			r.effect.Prepare(&d, t.pos)
		}
		triggers = append(triggers, t)
	}
	r.triggers = triggers
	r.generation++
}

// teardown cancels every listener and timer installed by a previous Init.
func (r *Registry) teardown() {
	for _, cancel := range r.cancels {
		cancel()
	}
	r.cancels = nil
	r.stopScroll()
	r.layout = nil
	r.triggers = nil
	r.generation++
}

// stopScroll cancels a pending scroll scan and detaches the scroll listener.
// The next Refresh wires it again.
func (r *Registry) stopScroll() {
	if r.scroll == nil {
		return
	}
	r.scroll.Stop()
	r.scrollOff()
	r.scroll = nil
	r.scrollOff = nil
}
