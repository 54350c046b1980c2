package dragscroll

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// setCursorMode is swapped by tests.
var setCursorMode = ebiten.SetCursorMode

const (
	chevronArm   = 10.0
	chevronWidth = 2.0
)

// Overlay is the Ebitengine VisualFeedback. It optionally replaces the system
// cursor with a "V" chevron that points along the drag, and prints the
// Scroller's position and ScaleFactor as debug text.
type Overlay struct {
	DrawCursor    bool
	ShowDebugging bool

	// TextAt is the screen position of the debug text.
	TextAt Vec2
	// Color is the chevron color. Nil means white.
	Color color.Color

	cursorOn  bool
	initAt    Vec2
	cursorPos Vec2
	angle     float64
	text      string
}

// NewOverlay creates an Overlay with the cursor and debug flags taken from
// cfg.
func NewOverlay(cfg Config) *Overlay {
	return &Overlay{
		DrawCursor:    cfg.DrawCursor,
		ShowDebugging: cfg.ShowDebugging,
	}
}

// Initiate hides the system cursor and shows the chevron at the initiating
// point.
func (o *Overlay) Initiate(at Vec2) {
	if !o.DrawCursor {
		return
	}
	o.cursorOn = true
	o.initAt = at
	o.cursorPos = at
	o.angle = 0
	setCursorMode(ebiten.CursorModeHidden)
}

// Move translates the chevron by the drag delta and turns it toward point.
func (o *Overlay) Move(start, point Vec2, angle float64) {
	if !o.cursorOn {
		return
	}
	o.cursorPos = o.initAt.Add(point.Sub(start))
	o.angle = angle
}

// Step refreshes the debug text.
func (o *Overlay) Step(offset Vec2, scaleFactor float64) {
	if !o.ShowDebugging {
		return
	}
	o.text = DebugText(offset, scaleFactor)
}

// Stop removes the chevron, restores the system cursor and clears the debug
// text.
func (o *Overlay) Stop() {
	if o.cursorOn {
		o.cursorOn = false
		setCursorMode(ebiten.CursorModeVisible)
	}
	o.text = ""
}

// Text returns the current debug text, empty when idle.
func (o *Overlay) Text() string { return o.text }

// CursorVisible reports whether the chevron is shown.
func (o *Overlay) CursorVisible() bool { return o.cursorOn }

// CursorPosition returns the chevron tip and its rotation in degrees.
func (o *Overlay) CursorPosition() (Vec2, float64) { return o.cursorPos, o.angle }

// chevron returns the three points of the "V" (left arm end, tip, right arm
// end). Unrotated, the tip points down; it is rotated by -angle so that it
// points along Angle(start, point).
func (o *Overlay) chevron() [3]Vec2 {
	rad := -o.angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	rot := func(v Vec2) Vec2 {
		return Vec2{
			X: o.cursorPos.X + v.X*cos - v.Y*sin,
			Y: o.cursorPos.Y + v.X*sin + v.Y*cos,
		}
	}
	return [3]Vec2{
		rot(Vec2{-chevronArm, -chevronArm}),
		rot(Vec2{}),
		rot(Vec2{chevronArm, -chevronArm}),
	}
}

// Draw renders the chevron and debug text onto dst.
func (o *Overlay) Draw(dst *ebiten.Image) {
	if o.cursorOn {
		clr := o.Color
		if clr == nil {
			clr = color.White
		}
		p := o.chevron()
		vector.StrokeLine(dst, float32(p[0].X), float32(p[0].Y), float32(p[1].X), float32(p[1].Y), chevronWidth, clr, true)
		vector.StrokeLine(dst, float32(p[1].X), float32(p[1].Y), float32(p[2].X), float32(p[2].Y), chevronWidth, clr, true)
	}
	if o.text != "" {
		ebitenutil.DebugPrintAt(dst, o.text, int(o.TextAt.X), int(o.TextAt.Y))
	}
}
