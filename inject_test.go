package reveal

import "testing"

func TestInjectScroll(t *testing.T) {
	s := NewScene(640, 480)
	s.InjectScroll(250)
	if len(s.injectQueue) != 1 {
		t.Fatalf("expected 1 queued event, got %d", len(s.injectQueue))
	}
	if _, y := s.Viewport(); y != 0 {
		t.Error("injection should not apply before Update")
	}
	s.Update(0.01)
	if _, y := s.Viewport(); y != 250 {
		t.Errorf("scroll = %v, want 250", y)
	}
}

func TestInjectScrollSweep(t *testing.T) {
	s := NewScene(640, 480)
	s.InjectScrollSweep(0, 400, 4)
	want := []float64{100, 200, 300, 400}
	if len(s.injectQueue) != len(want) {
		t.Fatalf("expected %d queued events, got %d", len(want), len(s.injectQueue))
	}
	for i, w := range want {
		s.Update(0.01)
		if _, y := s.Viewport(); y != w {
			t.Errorf("frame %d: scroll = %v, want %v", i, y, w)
		}
	}
}

func TestInjectScrollSweep_MinFrames(t *testing.T) {
	s := NewScene(640, 480)
	s.InjectScrollSweep(0, 100, 0)
	if len(s.injectQueue) != 1 {
		t.Errorf("expected 1 event for frames=0, got %d", len(s.injectQueue))
	}
}

func TestInjectQueueOrder(t *testing.T) {
	s := NewScene(640, 480)
	s.InjectScroll(100)
	s.InjectWheel(-40)
	s.InjectResize(800, 600)
	s.InjectRotate()

	kinds := []syntheticKind{syntheticScroll, syntheticWheel, syntheticResize, syntheticRotate}
	for i, k := range kinds {
		if s.injectQueue[i].kind != k {
			t.Errorf("event %d kind = %d, want %d", i, s.injectQueue[i].kind, k)
		}
	}

	s.processInjected()
	s.processInjected()
	if _, y := s.Viewport(); y != 60 {
		t.Errorf("scroll after wheel = %v, want 60", y)
	}
	s.processInjected()
	if h, _ := s.Viewport(); h != 600 {
		t.Errorf("height after resize = %v, want 600", h)
	}
	s.processInjected()
	if h, _ := s.Viewport(); h != 800 {
		t.Errorf("height after rotate = %v, want 800", h)
	}
}

func TestProcessInjected_EmptyQueue(t *testing.T) {
	s := NewScene(640, 480)
	if s.processInjected() {
		t.Error("empty queue should report false")
	}
}

func TestInjectedScrollTriggersElement(t *testing.T) {
	s := NewScene(640, 480)
	box := NewNode("box", 100, 100)
	box.Y = 600
	box.SetAttr(AttrTrigger, "fade")
	s.Root().AddChild(box)
	r := NewRegistry(s)
	r.Init(DefaultConfig())

	s.InjectScrollSweep(0, 300, 3)
	for i := 0; i < 20; i++ {
		s.Update(0.01)
	}
	if pos, _ := r.Position(box); pos != Triggered {
		t.Errorf("pos = %s, want triggered", pos)
	}
}
