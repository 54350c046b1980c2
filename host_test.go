package dragscroll

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// newTestHost builds a 500x500 host with a 1000x1000 canvas and one scroller.
// Real input is switched off so tick only sees injected events.
func newTestHost(t *testing.T, cfg Config) (*Host, *Surface, *Scroller) {
	t.Helper()
	h := NewHost(500, 500)
	h.input.SetPolling(false)
	canvas := NewSurface("canvas", 1000, 1000)
	h.AddSurface(canvas)
	s, err := h.NewScroller("canvas", canvas, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return h, canvas, s
}

func TestHostLayoutIsFrame(t *testing.T) {
	h := NewHost(320, 240)
	if h.FrameSize() != (Size{320, 240}) {
		t.Errorf("FrameSize = %v, want 320x240", h.FrameSize())
	}
	w, ht := h.Layout(800, 600)
	if w != 800 || ht != 600 || h.FrameSize() != (Size{800, 600}) {
		t.Errorf("after Layout: %dx%d, FrameSize %v", w, ht, h.FrameSize())
	}
}

func TestHostDragScrollsCanvas(t *testing.T) {
	h, canvas, s := newTestHost(t, DefaultConfig())

	h.input.InjectPress(100, 100)
	h.input.InjectMove(200, 150)
	h.input.InjectRelease(200, 150)

	// Frame 1 presses, frame 2 moves and starts the tween.
	if err := h.tick(tick); err != nil {
		t.Fatal(err)
	}
	if err := h.tick(tick); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateDragging {
		t.Fatalf("state = %v, want dragging", s.State())
	}
	off := canvas.Offset()
	if off.X >= 0 || off.Y >= 0 {
		t.Errorf("canvas did not start moving: %v", off)
	}

	if err := h.tick(tick); err != nil {
		t.Fatal(err)
	}
	if s.Active() {
		t.Error("release did not end the session")
	}
	frozen := canvas.Offset()
	for i := 0; i < 10; i++ {
		_ = h.tick(tick)
	}
	if canvas.Offset() != frozen {
		t.Errorf("canvas kept moving after release: %v -> %v", frozen, canvas.Offset())
	}
}

func TestHostFrameFollowsLayout(t *testing.T) {
	h, canvas, _ := newTestHost(t, DefaultConfig())
	h.Layout(900, 900)

	h.input.InjectPress(100, 100)
	h.input.InjectMove(200, 200)
	_ = h.tick(tick)
	_ = h.tick(tick)
	for i := 0; i < 60; i++ {
		_ = h.tick(0.1)
	}
	// 1000 - 900 leaves 100 of room on each axis.
	if canvas.Offset() != (Vec2{-100, -100}) {
		t.Errorf("offset = %v, want (-100, -100)", canvas.Offset())
	}
}

func TestHostOverlays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowDebugging = true
	var buf bytes.Buffer
	prev := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = prev })

	h, _, _ := newTestHost(t, cfg)
	other := NewSurface("other", 1000, 1000)
	s2, err := h.NewScroller("other", other, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(h.overlays) != 2 || h.overlays[1].TextAt.Y <= h.overlays[0].TextAt.Y {
		t.Fatalf("overlays not stacked: %+v", h.overlays)
	}

	h.input.InjectPress(100, 100)
	h.input.InjectMove(200, 150)
	_ = h.tick(tick)
	_ = h.tick(tick)
	if !strings.HasPrefix(h.overlays[0].Text(), "Left:") {
		t.Errorf("debug text = %q", h.overlays[0].Text())
	}
	if !strings.Contains(buf.String(), "[dragscroll] canvas:") {
		t.Errorf("no debug log for canvas: %q", buf.String())
	}

	h.RemoveScroller(s2)
	if len(h.Scrollers()) != 1 || len(h.overlays) != 1 {
		t.Errorf("RemoveScroller left %d scrollers, %d overlays", len(h.Scrollers()), len(h.overlays))
	}
}

func TestHostRemoveActiveScroller(t *testing.T) {
	h, _, s := newTestHost(t, DefaultConfig())
	stopped := 0
	s.OnStop(func(PointerEvent) { stopped++ })

	h.input.InjectPress(100, 100)
	_ = h.tick(tick)
	if !s.Active() {
		t.Fatal("not armed")
	}
	h.RemoveScroller(s)
	if s.Active() || stopped != 1 {
		t.Errorf("active=%v stopped=%d, want inactive and one stop", s.Active(), stopped)
	}
	h.RemoveScroller(s) // no-op
}

func TestHostDebugModePropagates(t *testing.T) {
	h := NewHost(100, 100)
	h.SetDebugMode(true)
	s, err := h.NewScroller("x", NewSurface("x", 10, 10), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !s.Config().ShowDebugging {
		t.Error("debug mode should turn on ShowDebugging")
	}
}

func TestHostNewScrollerError(t *testing.T) {
	h := NewHost(100, 100)
	cfg := DefaultConfig()
	cfg.StartTriggers = nil
	_, err := h.NewScroller("bad", NewSurface("bad", 10, 10), cfg)
	if !errors.Is(err, ErrNoTriggers) {
		t.Errorf("err = %v, want ErrNoTriggers", err)
	}
	if len(h.Scrollers()) != 0 {
		t.Error("failed scroller was registered")
	}
}

func TestHostScriptTermination(t *testing.T) {
	h, _, _ := newTestHost(t, DefaultConfig())
	h.ExitWhenScriptDone = true
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	h.SetTestRunner(runner)

	var got error
	for i := 0; i < 5 && got == nil; i++ {
		got = h.tick(tick)
	}
	if !errors.Is(got, ebiten.Termination) {
		t.Errorf("tick = %v, want ebiten.Termination", got)
	}
}

func TestFPSCounter(t *testing.T) {
	var f fpsCounter
	if !f.update(0.016, 60, 60) {
		t.Fatal("first update should format")
	}
	if f.text != "FPS: 60.0\nTPS: 60.0" {
		t.Errorf("text = %q", f.text)
	}
	if f.update(0.2, 30, 60) {
		t.Error("update inside the interval should not reformat")
	}
	if !f.update(0.4, 30, 60) || f.text != "FPS: 30.0\nTPS: 60.0" {
		t.Errorf("text after interval = %q", f.text)
	}
}
