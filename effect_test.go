package reveal

import (
	"testing"
	"time"
)

func fadeDescriptor(n *Node) *Descriptor {
	return &Descriptor{
		Node:   n,
		Params: AnimationParams{Easing: "linear", Duration: time.Second},
	}
}

func TestFadeEffectPrepareSnaps(t *testing.T) {
	e := NewFadeEffect()
	n := NewNode("n", 10, 10)
	d := fadeDescriptor(n)

	e.Prepare(d, Untriggered)
	if n.Alpha != 0 {
		t.Errorf("Alpha = %v, want hidden 0", n.Alpha)
	}
	e.Prepare(d, Triggered)
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want shown 1", n.Alpha)
	}
}

func TestFadeEffectEnterAnimates(t *testing.T) {
	e := NewFadeEffect()
	n := NewNode("n", 10, 10)
	d := fadeDescriptor(n)
	d.Params.Delay = 200 * time.Millisecond

	e.Prepare(d, Untriggered)
	e.Enter(d)
	e.Update(0.1)
	if n.Alpha != 0 {
		t.Errorf("Alpha during delay = %v, want 0", n.Alpha)
	}
	e.Update(0.6)
	if n.Alpha <= 0 || n.Alpha >= 1 {
		t.Errorf("Alpha mid-animation = %v", n.Alpha)
	}
	// A rebuild mid-animation must not snap the node.
	e.Prepare(d, Triggered)
	if n.Alpha == 1 {
		t.Error("Prepare should leave a running animation alone")
	}
	e.Update(1)
	if n.Alpha != 1 || e.Animating() != 0 {
		t.Errorf("Alpha = %v animating = %d, want 1 and 0", n.Alpha, e.Animating())
	}
}

func TestFadeEffectLeave(t *testing.T) {
	e := NewFadeEffect()
	n := NewNode("n", 10, 10)
	d := fadeDescriptor(n)

	e.Leave(d)
	if n.Alpha != 0 || e.Animating() != 0 {
		t.Errorf("plain leave should snap hidden, Alpha = %v", n.Alpha)
	}

	n.Alpha = 1
	d.Mirror = true
	e.Leave(d)
	if e.Animating() != 1 {
		t.Fatal("mirror leave should animate")
	}
	e.Update(0.5)
	if n.Alpha <= 0 || n.Alpha >= 1 {
		t.Errorf("Alpha mid-mirror = %v", n.Alpha)
	}
	e.Update(0.5)
	if n.Alpha != 0 {
		t.Errorf("Alpha = %v, want 0", n.Alpha)
	}
}

func TestFadeEffectZoom(t *testing.T) {
	e := NewFadeEffect()
	e.Zoom = 0.5
	n := NewNode("n", 10, 10)
	d := fadeDescriptor(n)

	e.Prepare(d, Untriggered)
	if n.ScaleX != 0.5 || n.ScaleY != 0.5 {
		t.Errorf("scale = (%v, %v), want 0.5", n.ScaleX, n.ScaleY)
	}
	e.Enter(d)
	e.Update(1)
	if n.ScaleX != 1 || n.ScaleY != 1 || n.Alpha != 1 {
		t.Errorf("after enter: alpha %v scale (%v, %v)", n.Alpha, n.ScaleX, n.ScaleY)
	}
}

func TestFadeEffectReset(t *testing.T) {
	e := NewFadeEffect()
	e.Zoom = 0.5
	n := NewNode("n", 10, 10)
	d := fadeDescriptor(n)
	e.Prepare(d, Untriggered)
	e.Enter(d)
	e.Reset(d)
	if n.Alpha != 1 || n.ScaleX != 1 || e.Animating() != 0 {
		t.Errorf("after reset: alpha %v scale %v animating %d", n.Alpha, n.ScaleX, e.Animating())
	}
}
