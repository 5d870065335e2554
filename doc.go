// Package reveal adds classes to document elements as they are scrolled into
// view, the way scroll-animation libraries do for web pages, on top of a
// small retained scene graph.
//
// Every element is a [Node]. Nodes carrying a data-reveal attribute are
// collected by a [Registry], which turns each one into a [Descriptor]
// (offset, anchor placement, once, mirror and animation parameters, read
// from data-reveal-* attributes with [Config] defaults) and keeps a
// two-state trigger per element. A scan compares each element's trigger
// point with a line in the viewport; elements past the line gain the
// animate class, and elements scrolled back above it lose it unless they
// trigger only once.
//
// # Quick start
//
// [Scene] is the built-in host. Add nodes, create a registry, and call
// [Scene.Update] every frame:
//
//	scene := reveal.NewScene(800, 600)
//	box := reveal.NewNode("box", 200, 120)
//	box.Y = 900
//	box.SetAttr(reveal.AttrTrigger, "fade-up")
//	box.SetAttr(reveal.AttrOffset, "50")
//	scene.Root().AddChild(box)
//
//	reg := reveal.NewRegistry(scene)
//	reg.Init(reveal.DefaultConfig())
//
//	scene.SetScroll(500)
//	scene.Update(1.0 / 60)
//
// Scroll events are throttled (trailing edge, 99ms by default) and resize
// and orientation changes are debounced (leading edge, 50ms). Both run on
// the host [Clock], which for a Scene is advanced by Update, so tests are
// deterministic.
//
// # Hosts
//
// Any type implementing [Host] can drive a Registry. A host that also
// implements [MutationObserver] gets automatic [Registry.RefreshHard] calls
// when elements are added or removed; otherwise callers invoke it
// themselves. Package ebitenhost runs a Scene in an [Ebitengine] window.
//
// # Effects
//
// The registry only toggles classes. An [Effect] such as [FadeEffect]
// animates nodes on enter and leave using [gween] easing curves named after
// CSS timing functions.
//
// # Configuration
//
// [LoadConfig] reads options from YAML or TOML through [koanf]. Logging
// goes through [zerolog]; see [SetLogger]. Package ecs forwards trigger
// events to a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [koanf]: https://github.com/knadh/koanf
// [zerolog]: https://github.com/rs/zerolog
// [Donburi]: https://github.com/yohamta/donburi
package reveal
