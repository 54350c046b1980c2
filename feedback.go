package dragscroll

// VisualFeedback renders presentation side effects of a drag (a substitute
// cursor, debug text). The Scroller calls it at fixed points of the
// lifecycle and never touches presentation state itself.
type VisualFeedback interface {
	// Initiate is called on the first movement of a session.
	Initiate(at Vec2)
	// Move is called for each handled move event with the session start
	// point, the pointer position and Angle(start, point).
	Move(start, point Vec2, angle float64)
	// Step is called after each animation frame with the written offset and
	// the ScaleFactor of the tween in flight.
	Step(offset Vec2, scaleFactor float64)
	// Stop is called when the session ends.
	Stop()
}

// NopFeedback is a VisualFeedback that does nothing.
type NopFeedback struct{}

func (NopFeedback) Initiate(Vec2)            {}
func (NopFeedback) Move(Vec2, Vec2, float64) {}
func (NopFeedback) Step(Vec2, float64)       {}
func (NopFeedback) Stop()                    {}
