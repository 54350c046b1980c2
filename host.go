package dragscroll

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Host is an ebiten.Game that owns the surfaces, the Input, the bound
// scrollers with their overlays, and the optional test runner. It is also the
// Viewport of every Scroller it creates: the frame is the window layout size.
type Host struct {
	// ScreenshotDir is where Screenshot writes PNGs. Default "screenshots".
	ScreenshotDir string
	// Background fills the screen before surfaces are drawn. Nil leaves the
	// screen as is.
	Background color.Color
	// ShowFPS draws an FPS/TPS line in the top right corner.
	ShowFPS bool
	// ExitWhenScriptDone ends the game loop once the test runner finishes.
	ExitWhenScriptDone bool

	width, height int

	roots     []*Surface
	input     *Input
	scrollers []*Scroller
	overlays  []*Overlay

	runner          *TestRunner
	screenshotQueue []string
	fps             fpsCounter
	debug           bool
}

// NewHost creates a Host with the given initial layout size.
func NewHost(width, height int) *Host {
	return &Host{
		ScreenshotDir: "screenshots",
		width:         width,
		height:        height,
		input:         NewInput(),
	}
}

// FrameSize returns the current layout size.
func (h *Host) FrameSize() Size {
	return Size{Width: float64(h.width), Height: float64(h.height)}
}

// Input returns the host's input dispatcher.
func (h *Host) Input() *Input {
	return h.input
}

// AddSurface adds a root surface. Later surfaces draw on top and win hit
// tests.
func (h *Host) AddSurface(s *Surface) {
	h.roots = append(h.roots, s)
	h.input.AddSurface(s)
}

// NewScroller creates a Scroller for el framed by the window, gives it an
// Overlay built from cfg, and binds it to the host's input.
func (h *Host) NewScroller(name string, el Element, cfg Config) (*Scroller, error) {
	if h.debug {
		cfg.ShowDebugging = true
	}
	s, err := NewScroller(name, el, h, cfg)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	ov := NewOverlay(cfg)
	ov.TextAt = Vec2{X: 4, Y: float64(4 + 16*len(h.overlays))}
	s.SetFeedback(ov)

	h.scrollers = append(h.scrollers, s)
	h.overlays = append(h.overlays, ov)
	h.input.Bind(s)
	return s, nil
}

// RemoveScroller unbinds s and drops its overlay. An active session is
// stopped first.
func (h *Host) RemoveScroller(s *Scroller) {
	i := slices.Index(h.scrollers, s)
	if i < 0 {
		return
	}
	if s.Active() {
		s.HandleEvent(PointerEvent{Name: s.cfg.StopTriggers[0], Time: h.input.Clock()})
	}
	h.input.Unbind(s)
	h.scrollers = slices.Delete(h.scrollers, i, i+1)
	h.overlays = slices.Delete(h.overlays, i, i+1)
}

// Scrollers returns the bound scrollers. The returned slice MUST NOT be
// mutated.
func (h *Host) Scrollers() []*Scroller {
	return h.scrollers
}

// SetTestRunner attaches a test runner. Real input is ignored while a script
// is attached.
func (h *Host) SetTestRunner(r *TestRunner) {
	h.runner = r
	h.input.SetPolling(r == nil)
}

// SetDebugMode enables host debug logging. Scrollers created afterwards also
// log and print their debug text.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
}

func (h *Host) debugLog(format string, args ...any) {
	if !h.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[dragscroll] host: %s\n", fmt.Sprintf(format, args...))
}

// Update advances one tick at the current TPS.
func (h *Host) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if h.ShowFPS {
		h.fps.update(float64(dt), ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return h.tick(dt)
}

// tick runs the test runner, input and animations for dt seconds.
func (h *Host) tick(dt float32) error {
	if h.runner != nil {
		wasDone := h.runner.Done()
		h.runner.step(h.input, h.Screenshot)
		if h.runner.Done() && !wasDone {
			h.debugLog("test script done")
			if h.ExitWhenScriptDone {
				return ebiten.Termination
			}
		}
	}
	h.input.Update(dt)
	for _, s := range h.scrollers {
		s.Update(dt)
	}
	return nil
}

// Draw renders the surfaces, overlays and FPS line, then captures any queued
// screenshots.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.Background != nil {
		screen.Fill(h.Background)
	}
	for _, r := range h.roots {
		r.Draw(screen)
	}
	for _, ov := range h.overlays {
		ov.Draw(screen)
	}
	if h.ShowFPS {
		h.fps.draw(screen)
	}
	h.flushScreenshots(screen)
}

// Layout tracks the window size so the frame follows resizes.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.width, h.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	Debug         bool
}

// Run opens a window and runs h until it closes or the test runner finishes
// with ExitWhenScriptDone set.
func Run(h *Host, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	h.width, h.height = cfg.Width, cfg.Height
	h.ShowFPS = h.ShowFPS || cfg.ShowFPS
	if cfg.Debug {
		h.SetDebugMode(true)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
