package reveal

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the document viewport: X and Y are the document-space scroll
// offsets of the viewport's top-left corner, Viewport is the screen-space
// rectangle the document is shown in.
type Camera struct {
	X, Y     float64
	Viewport Rect

	// BoundsEnabled clamps the scroll offsets so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the document-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	scrollTween *scrollAnim
}

// newCamera creates a Camera at scroll offset zero with the given viewport.
func newCamera(viewport Rect) *Camera {
	return &Camera{Viewport: viewport}
}

// ScrollTo animates the camera to the given scroll offsets over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ScrollToNode animates the camera so the node's top edge is aligned with
// the top of the viewport.
func (c *Camera) ScrollToNode(n *Node, duration float32, easeFn ease.TweenFunc) {
	b := n.WorldBounds()
	c.ScrollTo(c.X, b.Y, duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// StopScroll cancels any ScrollTo animation, leaving the camera where it is.
func (c *Camera) StopScroll() {
	c.scrollTween = nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the scroll offsets. No-op if BoundsEnabled
// is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// update advances the scroll animation and bounds clamping. Returns true if
// the scroll offsets changed. Called from Scene.Update.
func (c *Camera) update(dt float32) bool {
	prevX, prevY := c.X, c.Y

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	return c.X != prevX || c.Y != prevY
}

// clampToBounds restricts the scroll offsets so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	maxX := c.Bounds.X + c.Bounds.Width - c.Viewport.Width
	maxY := c.Bounds.Y + c.Bounds.Height - c.Viewport.Height

	// If bounds are smaller than the visible area, pin to the bounds origin.
	if maxX < c.Bounds.X {
		c.X = c.Bounds.X
	} else {
		c.X = math.Max(c.Bounds.X, math.Min(c.X, maxX))
	}
	if maxY < c.Bounds.Y {
		c.Y = c.Bounds.Y
	} else {
		c.Y = math.Max(c.Bounds.Y, math.Min(c.Y, maxY))
	}
}

// WorldToScreen converts document coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx - c.X + c.Viewport.X, wy - c.Y + c.Viewport.Y
}

// ScreenToWorld converts screen coordinates to document coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx - c.Viewport.X + c.X, sy - c.Viewport.Y + c.Y
}

// VisibleBounds returns the document-space rectangle currently in view.
func (c *Camera) VisibleBounds() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Viewport.Width, Height: c.Viewport.Height}
}
