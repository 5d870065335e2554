package reveal

import (
	"math"
	"time"
)

// Scene is the bundled Host: it owns the document tree, the viewport camera,
// a frame clock and the event listeners. Drive it by calling Update once per
// frame; events raised between frames are dispatched from Update.
type Scene struct {
	root   *Node
	camera *Camera
	clock  FrameClock

	listeners map[string][]*listener
	pending   []string
	mutations mutationWatch

	lastX, lastY float64

	injectQueue []syntheticEvent
	testRunner  *TestRunner
	snapshots   []Snapshot
}

type listener struct {
	fn        func()
	cancelled bool
}

// NewScene creates a scene with a pre-created root container and a viewport
// of the given size.
func NewScene(width, height float64) *Scene {
	s := &Scene{
		root:      NewContainer("root"),
		camera:    newCamera(Rect{Width: width, Height: height}),
		listeners: make(map[string][]*listener),
	}
	s.root.mutations = &s.mutations
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the viewport camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Viewport returns the viewport height and vertical scroll offset.
func (s *Scene) Viewport() (height, scroll float64) {
	return s.camera.Viewport.Height, s.camera.Y
}

// Bounds returns n's document-space bounds, or an empty Rect when n is not in
// this scene or is hidden.
func (s *Scene) Bounds(n *Node) Rect {
	if n == nil || n.IsDisposed() || n.Root() != s.root || !n.IsShown() {
		return Rect{}
	}
	return n.WorldBounds()
}

// ContentBounds returns the union of the bounds of every shown node.
func (s *Scene) ContentBounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	s.root.Walk(func(n *Node) bool {
		if !n.Visible {
			return false
		}
		if n.Width == 0 && n.Height == 0 {
			return true
		}
		b := n.WorldBounds()
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.X+b.Width)
		maxY = math.Max(maxY, b.Y+b.Height)
		return true
	})
	if math.IsInf(minX, 1) {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Now returns the scene clock.
func (s *Scene) Now() time.Duration {
	return s.clock.Now()
}

// AfterFunc schedules fn on the first Update at or past Now()+d.
func (s *Scene) AfterFunc(d time.Duration, fn func()) (cancel func()) {
	return s.clock.AfterFunc(d, fn)
}

// Listen registers fn for the named event.
func (s *Scene) Listen(event string, fn func()) (cancel func()) {
	l := &listener{fn: fn}
	s.listeners[event] = append(s.listeners[event], l)
	return func() {
		l.cancelled = true
		ls := s.listeners[event]
		for i, c := range ls {
			if c == l {
				s.listeners[event] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Dispatch calls the listeners of event immediately.
func (s *Scene) Dispatch(event string) {
	ls := append([]*listener(nil), s.listeners[event]...)
	for _, l := range ls {
		if !l.cancelled {
			l.fn()
		}
	}
}

// Post queues event for dispatch on the next Update.
func (s *Scene) Post(event string) {
	for _, e := range s.pending {
		if e == event {
			return
		}
	}
	s.pending = append(s.pending, event)
}

// ObserveMutations calls fn on the Update after a subtree containing a node
// with attr was added to or removed from the scene.
func (s *Scene) ObserveMutations(attr string, fn func()) (cancel func()) {
	return s.mutations.add(attr, fn)
}

// SetScroll moves the viewport to the given vertical offset. The scroll event
// is dispatched on the next Update.
func (s *Scene) SetScroll(y float64) {
	s.camera.StopScroll()
	s.camera.Y = y
	s.camera.ClampToBounds()
}

// ScrollBy moves the viewport vertically by dy.
func (s *Scene) ScrollBy(dy float64) {
	s.SetScroll(s.camera.Y + dy)
}

// Resize changes the viewport size and posts a resize event.
func (s *Scene) Resize(width, height float64) {
	vp := &s.camera.Viewport
	if vp.Width == width && vp.Height == height {
		return
	}
	vp.Width, vp.Height = width, height
	s.camera.ClampToBounds()
	s.Post(EventResize)
}

// Rotate swaps the viewport's width and height and posts an orientation
// change followed by a resize.
func (s *Scene) Rotate() {
	vp := &s.camera.Viewport
	vp.Width, vp.Height = vp.Height, vp.Width
	s.camera.ClampToBounds()
	s.Post(EventOrientationChange)
	s.Post(EventResize)
}

// Update advances the scene by dt seconds: it runs the script runner and
// injected input, advances the camera, delivers mutation notifications,
// dispatches pending events, and fires due timers.
func (s *Scene) Update(dt float64) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjected()

	s.camera.update(float32(dt))
	if s.camera.X != s.lastX || s.camera.Y != s.lastY {
		s.lastX, s.lastY = s.camera.X, s.camera.Y
		s.Post(EventScroll)
	}

	s.mutations.flush()

	pending := s.pending
	s.pending = nil
	for _, e := range pending {
		s.Dispatch(e)
	}

	s.clock.Advance(time.Duration(dt * float64(time.Second)))
}

// --- Mutation watch ---

type mutationWatcher struct {
	attr      string
	fn        func()
	pending   bool
	cancelled bool
}

// mutationWatch collects structural changes reported by node.go and
// delivers them once per frame.
type mutationWatch struct {
	watchers []*mutationWatcher
}

func (w *mutationWatch) add(attr string, fn func()) (cancel func()) {
	mw := &mutationWatcher{attr: attr, fn: fn}
	w.watchers = append(w.watchers, mw)
	return func() {
		mw.cancelled = true
		for i, c := range w.watchers {
			if c == mw {
				w.watchers = append(w.watchers[:i:i], w.watchers[i+1:]...)
				return
			}
		}
	}
}

func (w *mutationWatch) record(subtree *Node) {
	for _, mw := range w.watchers {
		if mw.pending || mw.cancelled {
			continue
		}
		subtree.Walk(func(n *Node) bool {
			if n.HasAttr(mw.attr) {
				mw.pending = true
			}
			return !mw.pending
		})
	}
}

func (w *mutationWatch) flush() {
	ws := append([]*mutationWatcher(nil), w.watchers...)
	for _, mw := range ws {
		if mw.pending && !mw.cancelled {
			mw.pending = false
			mw.fn()
		}
	}
}
