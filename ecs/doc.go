// Package ecs provides ECS adapters for dragscroll's scroll lifecycle events.
//
// The primary adapter is [NewDonburiSink], which publishes every
// [dragscroll.ScrollEvent] (start, initiate, step, stop) into a [Donburi]
// world as a typed event. Subscribe to [ScrollEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scroller.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
