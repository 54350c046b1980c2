// Package dragscroll implements drag-to-scroll for [Ebitengine] surfaces and
// any other host that can deliver named pointer events.
//
// Pressing on an element arms a [Scroller]. Moving the pointer picks a
// destination on the content boundary in the direction of the drag and
// glides the element there with a linear [gween] tween whose length scales
// with the distance. Releasing stops the glide where it is.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	host := dragscroll.NewHost(640, 480)
//	canvas := dragscroll.NewSurface("canvas", 2000, 2000)
//	canvas.Image = img
//	host.AddSurface(canvas)
//	host.NewScroller("canvas", canvas, dragscroll.DefaultConfig())
//	dragscroll.Run(host, dragscroll.RunConfig{
//		Title: "Canvas", Width: 640, Height: 480,
//	})
//
// # Other hosts
//
// A Scroller only needs an [Element] (position and box sizes), a [Viewport]
// (frame size) and a stream of [PointerEvent]s passed to
// [Scroller.HandleEvent], plus [Scroller.Update] once per tick:
//
//	s, err := dragscroll.NewScroller("grid", el, viewport, cfg)
//	// on input:
//	s.HandleEvent(dragscroll.PointerEvent{Name: dragscroll.EventMouseDown, ...})
//	// every tick:
//	s.Update(dt)
//
// See examples/terminal for a tcell host.
//
// # Geometry
//
// [CalculateTarget] is a pure function from frame size, content extent,
// start offset and pointer positions to a [ScrollTarget]. [Angle] gives the
// drag orientation used by the overlay cursor.
//
// # Lifecycle events
//
// Hooks registered with [Scroller.OnStart], [Scroller.OnInitiate],
// [Scroller.OnStep] and [Scroller.OnStop] run synchronously. An [EventSink]
// receives the same lifecycle as [ScrollEvent] values; the ecs subpackage
// publishes them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package dragscroll
