package dragscroll

import "github.com/hajimehoshi/ebiten/v2"

// Surface is an Ebitengine Element: a rectangle of content that can be
// scrolled within its frame, optionally with child surfaces laid out on it.
//
// X and Y are the position of the client box relative to the parent's client
// box (or to the screen for a root surface). Scrolling writes negative values
// here. Border and Margin extend the box outwards and only affect OuterSize
// and, for Border, hit testing.
type Surface struct {
	Name string

	X, Y          float64
	Width, Height float64
	Border        float64
	Margin        float64

	// Image is drawn at the client box origin, if set.
	Image *ebiten.Image

	// Visible=false hides the surface and its subtree from drawing and hit
	// testing.
	Visible bool
	// Interactable=false makes the surface transparent to hit testing. Its
	// children are still tested.
	Interactable bool

	parent   *Surface
	children []*Surface
}

// NewSurface creates a visible, interactable surface with the given client
// size at the origin.
func NewSurface(name string, width, height float64) *Surface {
	return &Surface{
		Name:         name,
		Width:        width,
		Height:       height,
		Visible:      true,
		Interactable: true,
	}
}

// Offset returns the client box position.
func (s *Surface) Offset() Vec2 { return Vec2{X: s.X, Y: s.Y} }

// SetOffset moves the client box.
func (s *Surface) SetOffset(v Vec2) {
	s.X = v.X
	s.Y = v.Y
}

// ClientSize returns the client box size.
func (s *Surface) ClientSize() Size { return Size{Width: s.Width, Height: s.Height} }

// OuterSize returns the client box grown by border and margin on every side.
func (s *Surface) OuterSize() Size {
	grow := 2 * (s.Border + s.Margin)
	return Size{Width: s.Width + grow, Height: s.Height + grow}
}

// Parent returns the parent surface, or nil for a root.
func (s *Surface) Parent() Element {
	if s.parent == nil {
		return nil
	}
	return s.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (s *Surface) Children() []*Surface {
	return s.children
}

// AddChild appends c to s, detaching it from any previous parent.
func (s *Surface) AddChild(c *Surface) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = s
	s.children = append(s.children, c)
}

// RemoveChild detaches c from s. No-op if c is not a child of s.
func (s *Surface) RemoveChild(c *Surface) {
	for i, child := range s.children {
		if child == c {
			copy(s.children[i:], s.children[i+1:])
			s.children[len(s.children)-1] = nil
			s.children = s.children[:len(s.children)-1]
			c.parent = nil
			return
		}
	}
}

// ScreenOrigin returns the screen position of the client box origin.
func (s *Surface) ScreenOrigin() Vec2 {
	var o Vec2
	for p := s; p != nil; p = p.parent {
		o.X += p.X
		o.Y += p.Y
	}
	return o
}

// hitRect returns the border box in screen space for a client origin o.
func (s *Surface) hitRect(o Vec2) Rect {
	return Rect{
		X:      o.X - s.Border,
		Y:      o.Y - s.Border,
		Width:  s.Width + 2*s.Border,
		Height: s.Height + 2*s.Border,
	}
}

// hitTest returns the topmost surface under (x, y) in the subtree rooted at
// s, whose parent client origin is po. Later children are on top.
func (s *Surface) hitTest(x, y float64, po Vec2) *Surface {
	if !s.Visible {
		return nil
	}
	o := Vec2{X: po.X + s.X, Y: po.Y + s.Y}
	for i := len(s.children) - 1; i >= 0; i-- {
		if hit := s.children[i].hitTest(x, y, o); hit != nil {
			return hit
		}
	}
	if s.Interactable && s.hitRect(o).Contains(x, y) {
		return s
	}
	return nil
}

// Draw renders the surface and its children onto dst.
func (s *Surface) Draw(dst *ebiten.Image) {
	s.draw(dst, Vec2{})
}

func (s *Surface) draw(dst *ebiten.Image, po Vec2) {
	if !s.Visible {
		return
	}
	o := Vec2{X: po.X + s.X, Y: po.Y + s.Y}
	if s.Image != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(o.X, o.Y)
		dst.DrawImage(s.Image, &op)
	}
	for _, c := range s.children {
		c.draw(dst, o)
	}
}
