package ecs

import (
	"github.com/phanxgames/dragscroll"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ScrollEventType is the Donburi event type for scroll lifecycle events.
var ScrollEventType = events.NewEventType[dragscroll.ScrollEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on ScrollEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) dragscroll.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event dragscroll.ScrollEvent) {
	ScrollEventType.Publish(s.world, event)
}
