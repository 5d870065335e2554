package reveal

type syntheticKind uint8

const (
	syntheticScroll syntheticKind = iota // absolute scroll offset
	syntheticWheel                       // relative scroll
	syntheticResize
	syntheticRotate
)

// syntheticEvent represents a single injected viewport event.
type syntheticEvent struct {
	kind syntheticKind
	y    float64
	w, h float64
}

// InjectScroll queues a scroll to the absolute offset y. Queued events are
// consumed one per Update.
func (s *Scene) InjectScroll(y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticScroll, y: y})
}

// InjectWheel queues a relative scroll by dy.
func (s *Scene) InjectWheel(dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticWheel, y: dy})
}

// InjectResize queues a viewport resize.
func (s *Scene) InjectResize(w, h float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticResize, w: w, h: h})
}

// InjectRotate queues an orientation change.
func (s *Scene) InjectRotate() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticRotate})
}

// InjectScrollSweep queues a scroll from fromY to toY over the given number
// of frames, linearly interpolated. Minimum frames is 1.
func (s *Scene) InjectScrollSweep(fromY, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.InjectScroll(fromY + (toY-fromY)*t)
	}
}

// processInjected pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (s *Scene) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticScroll:
		s.SetScroll(evt.y)
	case syntheticWheel:
		s.ScrollBy(evt.y)
	case syntheticResize:
		s.Resize(evt.w, evt.h)
	case syntheticRotate:
		s.Rotate()
	}
	return true
}
