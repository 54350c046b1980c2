package dragscroll

import "math"

// ScrollTarget is where a drag should scroll to and how long it should take.
type ScrollTarget struct {
	// Offset is the target element position (left, top). It is the negation
	// of the target top-left scroll position.
	Offset Vec2
	// ScaleFactor is the fraction of the raw movement vector that fits before
	// a content boundary is hit. Always >= 0. Animation duration is the base
	// duration multiplied by ScaleFactor.
	ScaleFactor float64
}

// TopLeft returns the target in top-left convention (how far the content is
// scrolled from its origin).
func (t ScrollTarget) TopLeft() Vec2 {
	return t.Offset.Neg()
}

// quadrant is one row of the ordered direction table used by CalculateTarget.
// forwardX/forwardY select which boundary each axis travels towards.
type quadrant struct {
	name     string
	match    func(m Vec2) bool
	forwardX bool
	forwardY bool
}

// quadrants is evaluated in order and the first match wins. The predicates
// overlap where a component is zero, so the order is part of the contract.
var quadrants = [...]quadrant{
	{"down-right", func(m Vec2) bool { return m.X >= 0 && m.Y >= 0 }, true, true},
	{"up-right", func(m Vec2) bool { return m.X >= 0 && m.Y <= 0 }, true, false},
	{"down-left", func(m Vec2) bool { return m.X <= 0 && m.Y >= 0 }, false, true},
	{"up-left", func(m Vec2) bool { return m.X <= 0 && m.Y <= 0 }, false, false},
}

// classify returns the first quadrant whose predicate accepts m.
func classify(m Vec2) quadrant {
	for _, q := range quadrants {
		if q.match(m) {
			return q
		}
	}
	// Unreachable for finite m: the four predicates cover the plane.
	return quadrants[0]
}

// axisRoom returns the remaining travel along one axis, from the current
// top-left position to the boundary the axis is heading for.
func axisRoom(forward bool, extent, frame, topLeft float64) float64 {
	if forward {
		return extent - frame - topLeft
	}
	return -topLeft
}

// CalculateTarget computes the boundary-clamped scroll target for a drag from
// start to point. frame is the viewport size, extent the content size, and
// current the element offset the drag is anchored at.
//
// The movement vector m = point - start is extended as a ray from the current
// top-left position until the first content boundary; the returned
// ScaleFactor is the multiple of m that fits. A zero movement returns current
// unchanged with ScaleFactor 0. An axis with no movement places no constraint
// on the result.
func CalculateTarget(frame, extent Size, current, start, point Vec2) ScrollTarget {
	topLeft := current.Neg()
	m := point.Sub(start)

	if m.IsZero() {
		return ScrollTarget{Offset: current, ScaleFactor: 0}
	}

	q := classify(m)

	n := math.Inf(1)
	if m.X != 0 {
		n = math.Min(n, axisRoom(q.forwardX, extent.Width, frame.Width, topLeft.X)/m.X)
	}
	if m.Y != 0 {
		n = math.Min(n, axisRoom(q.forwardY, extent.Height, frame.Height, topLeft.Y)/m.Y)
	}

	// Negative room means the element already sits past the boundary it is
	// heading for (or the content is smaller than the frame). Stay put rather
	// than scroll backwards.
	if n < 0 {
		n = 0
	}

	dest := Vec2{
		X: roundHalfUp(topLeft.X + n*m.X),
		Y: roundHalfUp(topLeft.Y + n*m.Y),
	}
	return ScrollTarget{Offset: dest.Neg(), ScaleFactor: n}
}

// Angle returns the direction from a to b in degrees, in [0, 360), rounded to
// two decimal places (a value that rounds up to 360 wraps to 0). The
// arguments to atan2 are (dx, dy), so 0° points down (south) and angles
// increase counter-clockwise on screen: (1,0) is 90°, (0,-1) is 180°. This
// matches a "V" glyph that points down when unrotated.
func Angle(a, b Vec2) float64 {
	deg := math.Atan2(b.X-a.X, b.Y-a.Y) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	deg = math.Round(deg*100) / 100
	if deg >= 360 {
		deg = 0
	}
	return deg
}
