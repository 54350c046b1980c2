package dragscroll

import (
	"fmt"
	"slices"
)

// dragSession is the anchor of one arm → move* → release cycle.
type dragSession struct {
	startPoint  Vec2
	startOffset Vec2
}

// moveListener exists while a session is armed or dragging. Move events
// arriving without one are ignored.
type moveListener struct {
	limit RateLimiter
}

// --- Hook registry ---

type hookKind uint8

const (
	hookStart hookKind = iota
	hookInitiate
	hookStep
	hookStop
)

type hook[F any] struct {
	id uint32
	fn F
}

type hookRegistry struct {
	start    []hook[func(PointerEvent)]
	initiate []hook[func(PointerEvent)]
	step     []hook[func()]
	stop     []hook[func(PointerEvent)]
	nextID   uint32
}

// CallbackHandle allows removing a registered hook.
type CallbackHandle struct {
	id   uint32
	reg  *hookRegistry
	kind hookKind
}

// Remove unregisters the hook so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case hookStart:
		h.reg.start = removeHook(h.reg.start, h.id)
	case hookInitiate:
		h.reg.initiate = removeHook(h.reg.initiate, h.id)
	case hookStep:
		h.reg.step = removeHook(h.reg.step, h.id)
	case hookStop:
		h.reg.stop = removeHook(h.reg.stop, h.id)
	}
}

// removeHook returns a new slice without id. Dispatch loops keep ranging over
// the old one, so a hook may remove itself while it runs.
func removeHook[F any](s []hook[F], id uint32) []hook[F] {
	return slices.DeleteFunc(slices.Clone(s), func(h hook[F]) bool { return h.id == id })
}

// --- Scroller ---

// Scroller turns drags over an Element into boundary-clamped scroll
// animations. It is driven entirely by its host: HandleEvent for input and
// Update once per frame. Not safe for concurrent use.
type Scroller struct {
	name string
	el   Element
	view Viewport
	cfg  Config

	anim     *Animator
	limiter  RateLimiter
	feedback VisualFeedback
	sink     EventSink

	state   State
	session dragSession
	move    *moveListener
	hooks   hookRegistry
}

// NewScroller binds a Scroller to el, scrolling within view. cfg is validated
// and copied.
func NewScroller(name string, el Element, view Viewport, cfg Config) (*Scroller, error) {
	if el == nil {
		return nil, fmt.Errorf("scroller %q: nil element", name)
	}
	if view == nil {
		return nil, fmt.Errorf("scroller %q: nil viewport", name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scroller %q: %w", name, err)
	}
	s := &Scroller{
		name:     name,
		el:       el,
		view:     view,
		cfg:      cfg.clone(),
		limiter:  limiterFor(cfg),
		feedback: NopFeedback{},
	}
	s.anim = NewAnimator(el, s.cfg.Duration, s.handleStep)
	return s, nil
}

// Name returns the name given to NewScroller.
func (s *Scroller) Name() string { return s.name }

// Element returns the bound element.
func (s *Scroller) Element() Element { return s.el }

// Config returns a copy of the Scroller's configuration.
func (s *Scroller) Config() Config { return s.cfg.clone() }

// State returns the current lifecycle state.
func (s *Scroller) State() State { return s.state }

// Active reports whether a session is armed or dragging. It is still true
// while OnStop hooks run.
func (s *Scroller) Active() bool { return s.state != StateIdle }

// SetFeedback sets the visual feedback. nil restores NopFeedback.
func (s *Scroller) SetFeedback(f VisualFeedback) {
	if f == nil {
		f = NopFeedback{}
	}
	s.feedback = f
}

// SetRateLimiter replaces the move rate limiter chosen from the Config.
// nil restores NoLimit. Takes effect from the next session.
func (s *Scroller) SetRateLimiter(l RateLimiter) {
	if l == nil {
		l = NoLimit{}
	}
	s.limiter = l
}

// SetEventSink sets the optional lifecycle event bridge.
func (s *Scroller) SetEventSink(sink EventSink) {
	s.sink = sink
}

// --- Hook registration ---

// OnStart registers a hook fired when a session is armed.
func (s *Scroller) OnStart(fn func(PointerEvent)) CallbackHandle {
	s.hooks.nextID++
	id := s.hooks.nextID
	s.hooks.start = append(s.hooks.start, hook[func(PointerEvent)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.hooks, kind: hookStart}
}

// OnInitiate registers a hook fired once per session, on the first move.
func (s *Scroller) OnInitiate(fn func(PointerEvent)) CallbackHandle {
	s.hooks.nextID++
	id := s.hooks.nextID
	s.hooks.initiate = append(s.hooks.initiate, hook[func(PointerEvent)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.hooks, kind: hookInitiate}
}

// OnStep registers a hook fired after every animation frame.
func (s *Scroller) OnStep(fn func()) CallbackHandle {
	s.hooks.nextID++
	id := s.hooks.nextID
	s.hooks.step = append(s.hooks.step, hook[func()]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.hooks, kind: hookStep}
}

// OnStop registers a hook fired when a session is released, before the
// Scroller becomes inactive.
func (s *Scroller) OnStop(fn func(PointerEvent)) CallbackHandle {
	s.hooks.nextID++
	id := s.hooks.nextID
	s.hooks.stop = append(s.hooks.stop, hook[func(PointerEvent)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.hooks, kind: hookStop}
}

// --- Event handling ---

// HandleEvent feeds one pointer event to the state machine. Start events are
// matched against StartTriggers, stop events against StopTriggers, and
// mousemove/touchmove drive the drag. Other events are ignored.
func (s *Scroller) HandleEvent(ev PointerEvent) {
	switch {
	case s.cfg.isStart(ev.Name):
		s.handleStart(ev)
	case s.cfg.isStop(ev.Name):
		s.handleStop(ev)
	case isMoveEvent(ev.Name):
		s.handleMove(ev)
	}
}

// Update advances the scroll animation by dt seconds.
func (s *Scroller) Update(dt float32) {
	s.anim.Update(dt)
}

// accepts applies the target scoping rule to a start event.
func (s *Scroller) accepts(target Element) bool {
	if target == nil {
		return false
	}
	if s.cfg.TriggerOnChild {
		return isSelfOrDescendant(s.el, target)
	}
	return target == s.el
}

func (s *Scroller) handleStart(ev PointerEvent) {
	if s.state != StateIdle || !s.accepts(ev.Target) {
		return
	}
	s.state = StateArmed
	s.session = dragSession{startPoint: ev.Position, startOffset: s.el.Offset()}
	s.debugLog("armed at %v, offset %v", ev.Position, s.session.startOffset)
	s.emit(ScrollStart, ev.Position, 0)

	for _, h := range s.hooks.start {
		h.fn(ev)
	}

	if s.state == StateArmed {
		s.attachMove()
	}
}

func (s *Scroller) handleMove(ev PointerEvent) {
	if s.move == nil || ev.Target == nil || !isSelfOrDescendant(s.el, ev.Target) {
		return
	}

	if s.state == StateArmed {
		s.state = StateDragging
		s.debugLog("dragging")
		s.feedback.Initiate(ev.Position)
		for _, h := range s.hooks.initiate {
			h.fn(ev)
		}
		s.emit(ScrollInitiate, ev.Position, 0)
		// A hook may have ended the session.
		if s.move == nil {
			return
		}
	}

	if !s.move.limit.Allow(ev.Time) {
		return
	}

	start := s.session.startPoint
	target := CalculateTarget(s.view.FrameSize(), s.contentExtent(),
		s.session.startOffset, start, ev.Position)
	s.feedback.Move(start, ev.Position, Angle(start, ev.Position))

	if target.ScaleFactor == 0 {
		// No direction or no room: hold the current position.
		s.anim.Cancel()
		return
	}
	s.anim.Animate(target)
}

func (s *Scroller) handleStop(ev PointerEvent) {
	if s.state == StateIdle {
		return
	}
	s.debugLog("released at %v, offset %v", ev.Position, s.el.Offset())

	// Hooks still observe the session as active.
	for _, h := range s.hooks.stop {
		h.fn(ev)
	}
	s.emit(ScrollStop, ev.Position, 0)

	s.state = StateIdle
	s.session = dragSession{}
	s.anim.Cancel()
	s.detachMove()
	s.feedback.Stop()
}

// handleStep is the Animator's per-frame callback.
func (s *Scroller) handleStep() {
	var n float64
	if t, ok := s.anim.Target(); ok {
		n = t.ScaleFactor
	}
	for _, h := range s.hooks.step {
		h.fn()
	}
	s.feedback.Step(s.el.Offset(), n)
	s.emit(ScrollStep, Vec2{}, n)
}

func (s *Scroller) attachMove() {
	s.limiter.Reset()
	s.move = &moveListener{limit: s.limiter}
}

func (s *Scroller) detachMove() {
	s.move = nil
}

func (s *Scroller) contentExtent() Size {
	if s.cfg.UseOuterBox {
		return s.el.OuterSize()
	}
	return s.el.ClientSize()
}

func (s *Scroller) emit(t ScrollEventType, point Vec2, n float64) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(ScrollEvent{
		Type:        t,
		Name:        s.name,
		Point:       point,
		Offset:      s.el.Offset(),
		ScaleFactor: n,
	})
}
