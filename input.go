package dragscroll

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// pointerNames maps a pointer kind onto the event names it produces.
type pointerNames struct {
	down, move, up string
	hover          bool // emit move events while not pressed
}

var (
	mouseNames = pointerNames{EventMouseDown, EventMouseMove, EventMouseUp, true}
	touchNames = pointerNames{EventTouchStart, EventTouchMove, EventTouchEnd, false}

	// touchCancelNames ends a touch that was interrupted rather than lifted.
	touchCancelNames = pointerNames{EventTouchStart, EventTouchMove, EventTouchCancel, false}
)

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	seen   bool
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
}

// Input polls Ebitengine mouse and touch state once per tick, hit-tests the
// registered surfaces and dispatches PointerEvents to every bound Scroller.
// Only the mouse and the first active touch are tracked.
type Input struct {
	roots     []*Surface
	scrollers []*Scroller

	clock time.Duration

	mouse        pointerState
	touch        pointerState
	touchID      ebiten.TouchID
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
	noPoll      bool
}

// NewInput creates an Input with no surfaces or scrollers.
func NewInput() *Input {
	return &Input{}
}

// SetPolling enables or disables reading the real mouse, touch and keyboard.
// Injected events are processed either way.
func (in *Input) SetPolling(enabled bool) {
	in.noPoll = !enabled
}

// AddSurface registers a root surface for hit testing. Later surfaces are on
// top.
func (in *Input) AddSurface(s *Surface) {
	in.roots = append(in.roots, s)
}

// RemoveSurface unregisters a root surface.
func (in *Input) RemoveSurface(s *Surface) {
	if i := slices.Index(in.roots, s); i >= 0 {
		in.roots = slices.Delete(in.roots, i, i+1)
	}
}

// Bind routes events to s.
func (in *Input) Bind(s *Scroller) {
	if !slices.Contains(in.scrollers, s) {
		in.scrollers = append(in.scrollers, s)
	}
}

// Unbind stops routing events to s.
func (in *Input) Unbind(s *Scroller) {
	if i := slices.Index(in.scrollers, s); i >= 0 {
		in.scrollers = slices.Delete(in.scrollers, i, i+1)
	}
}

// Clock returns the accumulated time passed to Update.
func (in *Input) Clock() time.Duration {
	return in.clock
}

// Update advances the input clock by dt seconds and processes one tick of
// input. A queued synthetic event replaces real input for the tick.
func (in *Input) Update(dt float32) {
	in.clock += time.Duration(float64(dt) * float64(time.Second))

	if in.processInjectedInput() || in.noPoll {
		return
	}
	mods := readModifiers()
	in.processMouse(mods)
	in.processTouch(mods)
}

// hitTest returns the topmost surface at (x, y), or nil.
func (in *Input) hitTest(x, y float64) *Surface {
	for i := len(in.roots) - 1; i >= 0; i-- {
		if hit := in.roots[i].hitTest(x, y, Vec2{}); hit != nil {
			return hit
		}
	}
	return nil
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processMouse handles the mouse pointer.
func (in *Input) processMouse(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, keep the stored button so it cannot
	// change mid-interaction.
	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	in.processPointer(&in.mouse, mouseNames, float64(mx), float64(my), pressed, button, mods)
}

// processTouch follows the first active touch. Further touches are ignored
// until it lifts. Losing window focus cancels it.
func (in *Input) processTouch(mods KeyModifiers) {
	ids := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = ids

	if in.touch.down {
		if !ebiten.IsFocused() {
			in.cancelTouch(mods)
			return
		}
		if slices.Contains(ids, in.touchID) {
			tx, ty := ebiten.TouchPosition(in.touchID)
			in.processPointer(&in.touch, touchNames, float64(tx), float64(ty), true, MouseButtonLeft, mods)
			return
		}
		in.processPointer(&in.touch, touchNames, in.touch.lastX, in.touch.lastY, false, MouseButtonLeft, mods)
		return
	}
	if len(ids) > 0 && ebiten.IsFocused() {
		in.touchID = ids[0]
		tx, ty := ebiten.TouchPosition(in.touchID)
		in.processPointer(&in.touch, touchNames, float64(tx), float64(ty), true, MouseButtonLeft, mods)
	}
}

// cancelTouch ends the tracked touch with a touchcancel event at its last
// position. Called when the window loses focus mid-touch.
func (in *Input) cancelTouch(mods KeyModifiers) {
	if !in.touch.down {
		return
	}
	in.processPointer(&in.touch, touchCancelNames, in.touch.lastX, in.touch.lastY, false, MouseButtonLeft, mods)
}

// processPointer runs the press/move/release state machine for one pointer
// and dispatches the resulting event, if any.
func (in *Input) processPointer(ps *pointerState, names pointerNames, x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	moved := !ps.seen || x != ps.lastX || y != ps.lastY
	ps.seen = true

	var name string
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		name = names.down
	case !pressed && ps.down:
		ps.down = false
		name = names.up
	case pressed && ps.down:
		if moved {
			name = names.move
		}
	default:
		if moved && names.hover {
			name = names.move
		}
	}
	ps.lastX = x
	ps.lastY = y

	if name == "" {
		return
	}
	if ps.down || name == names.up {
		button = ps.button
	}

	ev := PointerEvent{
		Name:      name,
		Position:  Vec2{X: x, Y: y},
		Time:      in.clock,
		Button:    button,
		Modifiers: mods,
	}
	if hit := in.hitTest(x, y); hit != nil {
		ev.Target = hit
	}
	in.dispatch(ev)
}

// dispatch delivers ev to every bound scroller in binding order. Stop events
// reach every scroller whatever the target.
func (in *Input) dispatch(ev PointerEvent) {
	for _, s := range in.scrollers {
		s.HandleEvent(ev)
	}
}
