package reveal

import "time"

// Effect is the visual side-effect layer. The registry toggles classes
// itself; an Effect adds whatever presentation the host wants on top.
type Effect interface {
	// Prepare is called for every descriptor on each rebuild with its current
	// position, before the first evaluation.
	Prepare(d *Descriptor, pos Position)
	// Enter is called when d becomes triggered.
	Enter(d *Descriptor)
	// Leave is called when d returns to untriggered. d.Mirror asks for the
	// reverse animation instead of an instant reset.
	Leave(d *Descriptor)
	// Reset returns the node to its un-augmented presentation.
	Reset(d *Descriptor)
}

// FadeEffect fades (and optionally zooms) nodes in when they trigger,
// driven by each descriptor's easing, duration and delay. There is no global
// animation manager: call Update every frame.
type FadeEffect struct {
	// HiddenAlpha and ShownAlpha are the untriggered and triggered alpha.
	HiddenAlpha float64
	ShownAlpha  float64
	// Zoom is the untriggered scale. Zero leaves scale untouched.
	Zoom float64

	tweens map[*Node]*TweenGroup
}

// NewFadeEffect creates a FadeEffect fading between 0 and 1.
func NewFadeEffect() *FadeEffect {
	return &FadeEffect{HiddenAlpha: 0, ShownAlpha: 1}
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

func (e *FadeEffect) start(d *Descriptor, alpha, scale float64, delay time.Duration) {
	if e.tweens == nil {
		e.tweens = make(map[*Node]*TweenGroup)
	}
	fn := Easing(d.Params.Easing)
	dur := seconds(d.Params.Duration)
	var g *TweenGroup
	if e.Zoom != 0 {
		g = TweenFade(d.Node, alpha, scale, dur, fn)
	} else {
		g = TweenAlpha(d.Node, alpha, dur, fn)
	}
	e.tweens[d.Node] = g.WithDelay(seconds(delay))
}

func (e *FadeEffect) snap(n *Node, alpha, scale float64) {
	delete(e.tweens, n)
	n.Alpha = alpha
	if e.Zoom != 0 {
		n.SetScale(scale, scale)
	}
}

// Prepare snaps nodes that are not mid-animation to the state matching pos.
func (e *FadeEffect) Prepare(d *Descriptor, pos Position) {
	if _, animating := e.tweens[d.Node]; animating {
		return
	}
	if pos == Triggered {
		e.snap(d.Node, e.ShownAlpha, 1)
	} else {
		e.snap(d.Node, e.HiddenAlpha, e.Zoom)
	}
}

// Enter starts the show animation after the descriptor's delay.
func (e *FadeEffect) Enter(d *Descriptor) {
	e.start(d, e.ShownAlpha, 1, d.Params.Delay)
}

// Leave plays the show animation backwards when d.Mirror is set and snaps
// to the hidden state otherwise.
func (e *FadeEffect) Leave(d *Descriptor) {
	if d.Mirror {
		e.start(d, e.HiddenAlpha, e.Zoom, 0)
		return
	}
	e.snap(d.Node, e.HiddenAlpha, e.Zoom)
}

// Reset stops any animation and shows the node as if reveal were absent.
func (e *FadeEffect) Reset(d *Descriptor) {
	e.snap(d.Node, 1, 1)
}

// Update advances every running animation by dt seconds.
func (e *FadeEffect) Update(dt float32) {
	for n, g := range e.tweens {
		g.Update(dt)
		if g.Done {
			delete(e.tweens, n)
		}
	}
}

// Animating returns the number of running animations.
func (e *FadeEffect) Animating() int {
	return len(e.tweens)
}
