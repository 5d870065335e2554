// Package ebitenhost runs a reveal Scene inside an [Ebitengine] window.
//
// The Game maps the mouse wheel and the keyboard to scrolling, turns window
// layout changes into resize events, advances the Scene and an optional
// FadeEffect every tick, and draws every shown node as a filled box.
//
//	scene := reveal.NewScene(800, 600)
//	// ... add nodes with data-reveal attributes ...
//	reg := reveal.NewRegistry(scene)
//	fade := reveal.NewFadeEffect()
//	reg.SetEffect(fade)
//	game := ebitenhost.NewGame(scene, reg, fade)
//	reg.SetDevice(game.Device())
//	reg.Init(reveal.DefaultConfig())
//	ebitenhost.Run(game, ebitenhost.RunConfig{Title: "reveal", Width: 800, Height: 600})
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/reveal"
	"github.com/tanema/gween/ease"
)

const (
	defaultWheelSpeed = 40
	pageOverlap       = 40
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Resizable allows the user to resize the window, producing resize events.
	Resizable bool
}

// Game is an ebiten.Game driving a reveal Scene.
type Game struct {
	Scene    *reveal.Scene
	Registry *reveal.Registry
	Effect   *reveal.FadeEffect

	// Background fills the screen before nodes are drawn.
	Background color.Color
	// WheelSpeed is the scroll distance per wheel notch.
	WheelSpeed float64

	device *ScreenDevice
	width  int
	height int
}

// NewGame creates a Game. effect may be nil.
func NewGame(scene *reveal.Scene, reg *reveal.Registry, effect *reveal.FadeEffect) *Game {
	vp := scene.Camera().Viewport
	return &Game{
		Scene:      scene,
		Registry:   reg,
		Effect:     effect,
		Background: color.RGBA{R: 0x1a, G: 0x1a, B: 0x26, A: 0xff},
		WheelSpeed: defaultWheelSpeed,
		device:     &ScreenDevice{Width: vp.Width},
		width:      int(vp.Width),
		height:     int(vp.Height),
	}
}

// Device returns the screen-size device classifier kept current by Layout.
func (g *Game) Device() *ScreenDevice {
	return g.device
}

// Update handles scroll input and advances the scene by one tick.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		g.device.Touch = true
	}

	if dy := scrollDelta(g.input(), g.WheelSpeed, g.Scene.Camera().Viewport.Height); dy.animate {
		cam := g.Scene.Camera()
		cam.ScrollTo(cam.X, cam.Y+dy.amount, 0.3, ease.OutCubic)
	} else if dy.amount != 0 {
		g.Scene.ScrollBy(dy.amount)
	}

	g.Scene.Update(dt)
	if g.Effect != nil {
		g.Effect.Update(float32(dt))
	}
	return nil
}

// Draw fills the background and draws every shown node in document order.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Background)
	cam := g.Scene.Camera()
	view := cam.VisibleBounds()
	g.Scene.Root().Walk(func(n *reveal.Node) bool {
		if !n.Visible {
			return false
		}
		if n.Width == 0 || n.Height == 0 {
			return true
		}
		b := n.WorldBounds()
		if !b.Intersects(view) {
			return true
		}
		sx, sy := cam.WorldToScreen(b.X, b.Y)
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(b.Width), float32(b.Height),
			toRGBA(n.Color, n.WorldAlpha()), false)
		return true
	})
}

// Layout reports the window size as the logical screen size and forwards
// size changes to the scene as resize events.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.device.Width = float64(outsideWidth)
		g.Scene.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the game until it is closed.
func Run(g *Game, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(g)
}

// inputState is one tick of scroll-related input.
type inputState struct {
	wheelY   float64
	pageDown bool
	pageUp   bool
	down     bool
	up       bool
}

func (g *Game) input() inputState {
	_, wy := ebiten.Wheel()
	return inputState{
		wheelY:   wy,
		pageDown: inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		pageUp:   inpututil.IsKeyJustPressed(ebiten.KeyPageUp),
		down:     ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		up:       ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}
}

type scrollStep struct {
	amount  float64
	animate bool
}

// scrollDelta converts input into a scroll distance. Page keys animate a
// viewport-sized jump; wheel and arrows scroll immediately.
func scrollDelta(in inputState, wheelSpeed, viewportHeight float64) scrollStep {
	page := viewportHeight - pageOverlap
	if page < 0 {
		page = viewportHeight
	}
	switch {
	case in.pageDown:
		return scrollStep{amount: page, animate: true}
	case in.pageUp:
		return scrollStep{amount: -page, animate: true}
	}
	// Positive wheel Y means scrolling up.
	amount := -in.wheelY * wheelSpeed
	if in.down {
		amount += wheelSpeed / 4
	}
	if in.up {
		amount -= wheelSpeed / 4
	}
	return scrollStep{amount: amount}
}

func toRGBA(c reveal.Color, alpha float64) color.NRGBA {
	clamp := func(v float64) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A * alpha)}
}
