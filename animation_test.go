package reveal

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenAlphaReachesTarget(t *testing.T) {
	n := NewContainer("n")
	n.Alpha = 0
	g := TweenAlpha(n, 1, 1, ease.Linear)

	g.Update(0.5)
	if math.Abs(n.Alpha-0.5) > 1e-6 {
		t.Errorf("Alpha at half time = %v, want 0.5", n.Alpha)
	}
	if g.Done {
		t.Error("group should not be done at half time")
	}
	g.Update(0.6)
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !g.Done {
		t.Error("group should be done")
	}
	g.Update(1)
	if n.Alpha != 1 {
		t.Error("Update after Done should not write")
	}
}

func TestTweenScale(t *testing.T) {
	n := NewContainer("n")
	g := TweenScale(n, 2, 3, 1, ease.Linear)
	g.Update(1)
	if n.ScaleX != 2 || n.ScaleY != 3 {
		t.Errorf("Scale = (%v, %v), want (2, 3)", n.ScaleX, n.ScaleY)
	}
}

func TestTweenFade(t *testing.T) {
	n := NewContainer("n")
	n.Alpha = 0
	n.SetScale(0.5, 0.5)
	g := TweenFade(n, 1, 1, 0.4, ease.Linear)
	g.Update(0.4)
	if n.Alpha != 1 || n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("got alpha %v scale (%v, %v), want 1 and (1, 1)", n.Alpha, n.ScaleX, n.ScaleY)
	}
	if !g.Done {
		t.Error("group should be done")
	}
}

func TestTweenGroupDelay(t *testing.T) {
	n := NewContainer("n")
	n.Alpha = 0
	g := TweenAlpha(n, 1, 1, ease.Linear).WithDelay(0.5)

	g.Update(0.4)
	if n.Alpha != 0 {
		t.Errorf("Alpha during delay = %v, want 0", n.Alpha)
	}
	// 0.1 of delay remains; the other 0.4 advances the tween.
	g.Update(0.5)
	if math.Abs(n.Alpha-0.4) > 1e-6 {
		t.Errorf("Alpha = %v, want 0.4", n.Alpha)
	}
}

func TestTweenGroupStopsOnDisposedTarget(t *testing.T) {
	n := NewContainer("n")
	n.Alpha = 0
	g := TweenAlpha(n, 1, 1, ease.Linear)
	n.Dispose()
	g.Update(0.5)
	if !g.Done {
		t.Error("group should be done once the target is disposed")
	}
	if n.Alpha != 0 {
		t.Errorf("disposed node Alpha = %v, want 0", n.Alpha)
	}
}

func TestEasingLookup(t *testing.T) {
	for _, name := range []string{"linear", "ease", "ease-in-out-back", "EASE-OUT-CUBIC"} {
		if Easing(name) == nil {
			t.Errorf("Easing(%q) = nil", name)
		}
	}
	// Unknown names fall back to the default curve.
	if Easing("bogus") == nil {
		t.Error("unknown easing should fall back, got nil")
	}
	if got := Easing("linear")(0.5, 0, 1, 1); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("linear(0.5) = %v, want 0.5", got)
	}
}
