package dragscroll

import "time"

// PointerEvent is one host input notification translated for a Scroller.
type PointerEvent struct {
	// Name is the event name (EventMouseDown, EventTouchMove, ...). Start and
	// stop events are matched against the Scroller's trigger sets.
	Name string
	// Position is the pointer location in viewport space.
	Position Vec2
	// Target is the element under the pointer, or nil.
	Target Element
	// Time is the host clock reading when the event occurred. Used for rate
	// limiting.
	Time time.Duration

	Button    MouseButton
	Modifiers KeyModifiers
}

// ScrollEventType identifies a Scroller lifecycle notification.
type ScrollEventType uint8

const (
	ScrollStart    ScrollEventType = iota // session armed
	ScrollInitiate                        // first movement of the session
	ScrollStep                            // animation frame written
	ScrollStop                            // session released
)

// String returns the lowercase event type name.
func (t ScrollEventType) String() string {
	switch t {
	case ScrollStart:
		return "start"
	case ScrollInitiate:
		return "initiate"
	case ScrollStep:
		return "step"
	case ScrollStop:
		return "stop"
	default:
		return "unknown"
	}
}

// ScrollEvent carries a lifecycle notification to an EventSink.
type ScrollEvent struct {
	Type ScrollEventType
	// Name is the Scroller's name.
	Name string
	// Point is the pointer position for start, initiate and stop events.
	Point Vec2
	// Offset is the element offset when the event was emitted.
	Offset Vec2
	// ScaleFactor is the ScaleFactor of the tween in flight (step events).
	ScaleFactor float64
}

// EventSink is the interface for optional forwarding of lifecycle events,
// for example into an ECS world (see the ecs subpackage).
type EventSink interface {
	EmitEvent(event ScrollEvent)
}
