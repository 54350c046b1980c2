package dragscroll

// Element is a scrollable container bound to a Scroller.
//
// Offset is the element's position (left, top) relative to its frame. An
// element scrolled 100px to the right of its origin has Offset().X == -100.
type Element interface {
	Positioner
	// ClientSize is the inner box: content plus padding, no border.
	ClientSize() Size
	// OuterSize is the outer box: client box plus border and margin.
	OuterSize() Size
}

// Viewport supplies the frame an Element is scrolled within.
type Viewport interface {
	FrameSize() Size
}

// Parented is implemented by elements that belong to a tree. It is used to
// accept start events from descendants when Config.TriggerOnChild is set.
type Parented interface {
	Parent() Element
}

// FixedViewport is a Viewport of constant size.
type FixedViewport Size

// FrameSize returns the viewport size.
func (v FixedViewport) FrameSize() Size { return Size(v) }

// isSelfOrDescendant reports whether target is root or sits below root in
// the Parented chain.
func isSelfOrDescendant(root, target Element) bool {
	for e := target; e != nil; {
		if e == root {
			return true
		}
		p, ok := e.(Parented)
		if !ok {
			return false
		}
		e = p.Parent()
	}
	return false
}
