package dragscroll

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
)

// Event names understood by the Scroller. Hosts translate their native input
// into PointerEvents carrying one of these names.
const (
	EventMouseDown   = "mousedown"
	EventMouseUp     = "mouseup"
	EventMouseMove   = "mousemove"
	EventTouchStart  = "touchstart"
	EventTouchEnd    = "touchend"
	EventTouchCancel = "touchcancel"
	EventTouchMove   = "touchmove"
)

// Defaults applied by DefaultConfig and LoadConfig.
const (
	DefaultDuration      = 250 * time.Millisecond
	DefaultThrottleLimit = 20 * time.Millisecond
)

var (
	// ErrUnknownTrigger is returned for a trigger name that is not a known
	// start or stop event.
	ErrUnknownTrigger = errors.New("unknown trigger")
	// ErrNoTriggers is returned when a trigger set is empty.
	ErrNoTriggers = errors.New("empty trigger set")
	// ErrBadDuration is returned for a negative duration or a non-positive
	// throttle interval while throttling is enabled.
	ErrBadDuration = errors.New("invalid duration")
)

var (
	startEvents = []string{EventMouseDown, EventTouchStart}
	stopEvents  = []string{EventMouseUp, EventTouchEnd, EventTouchCancel}
)

// isMoveEvent reports whether name is a pointer movement event.
func isMoveEvent(name string) bool {
	return name == EventMouseMove || name == EventTouchMove
}

// Config configures one Scroller. A Scroller copies its Config at
// construction; changing the original afterwards has no effect.
type Config struct {
	// StartTriggers are the event names that arm a drag session.
	StartTriggers []string `json:"startEvents"`
	// StopTriggers are the event names that end a drag session. They are
	// observed host-wide, not only over the bound element.
	StopTriggers []string `json:"stopEvents"`

	// Duration is the animation length for a ScaleFactor of 1. Lower is
	// quicker.
	Duration time.Duration `json:"-"`

	// UseOuterBox makes scrolling stop at the element's outer box (border and
	// margin included) instead of its client box.
	UseOuterBox bool `json:"useOuterWidth"`
	// TriggerOnChild accepts start events whose target is a descendant of the
	// bound element. When false the target must be the element itself.
	TriggerOnChild bool `json:"triggerOnChild"`

	// Throttle limits move handling to one event per ThrottleLimit.
	Throttle      bool          `json:"throttle"`
	ThrottleLimit time.Duration `json:"-"`

	// DrawCursor asks the visual feedback to replace the system cursor with a
	// direction indicator while dragging.
	DrawCursor bool `json:"drawCursor"`
	// ShowDebugging enables the debug text overlay and stderr logging.
	ShowDebugging bool `json:"showDebugging"`
}

// DefaultConfig returns a Config with mousedown/mouseup triggers, a 250ms
// base duration and throttling off.
func DefaultConfig() Config {
	return Config{
		StartTriggers: []string{EventMouseDown},
		StopTriggers:  []string{EventMouseUp},
		Duration:      DefaultDuration,
		ThrottleLimit: DefaultThrottleLimit,
	}
}

// jsonConfig carries the millisecond fields that map onto time.Duration.
type jsonConfig struct {
	Config
	DurationMS      *float64 `json:"duration"`
	ThrottleLimitMS *float64 `json:"throttleLimit"`
}

// LoadConfig parses a JSON configuration over DefaultConfig and validates
// it. Durations are given in milliseconds:
//
//	{"startEvents": ["mousedown", "touchstart"], "duration": 400, "throttle": true}
func LoadConfig(data []byte) (Config, error) {
	jc := jsonConfig{Config: DefaultConfig()}
	if err := json.Unmarshal(data, &jc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg := jc.Config
	if jc.DurationMS != nil {
		cfg.Duration = time.Duration(*jc.DurationMS * float64(time.Millisecond))
	}
	if jc.ThrottleLimitMS != nil {
		cfg.ThrottleLimit = time.Duration(*jc.ThrottleLimitMS * float64(time.Millisecond))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks trigger names and durations.
func (c Config) Validate() error {
	if err := validateTriggers("start", c.StartTriggers, startEvents); err != nil {
		return err
	}
	if err := validateTriggers("stop", c.StopTriggers, stopEvents); err != nil {
		return err
	}
	if c.Duration < 0 {
		return fmt.Errorf("config: duration %v: %w", c.Duration, ErrBadDuration)
	}
	if c.Throttle && c.ThrottleLimit <= 0 {
		return fmt.Errorf("config: throttle limit %v: %w", c.ThrottleLimit, ErrBadDuration)
	}
	return nil
}

func validateTriggers(kind string, names, allowed []string) error {
	if len(names) == 0 {
		return fmt.Errorf("config: %s triggers: %w", kind, ErrNoTriggers)
	}
	for _, n := range names {
		if !slices.Contains(allowed, n) {
			return fmt.Errorf("config: %s trigger %q: %w", kind, n, ErrUnknownTrigger)
		}
	}
	return nil
}

// clone returns a deep copy so the Scroller's Config cannot be mutated
// through the caller's slices.
func (c Config) clone() Config {
	c.StartTriggers = slices.Clone(c.StartTriggers)
	c.StopTriggers = slices.Clone(c.StopTriggers)
	return c
}

func (c *Config) isStart(name string) bool {
	return slices.Contains(c.StartTriggers, name)
}

func (c *Config) isStop(name string) bool {
	return slices.Contains(c.StopTriggers, name)
}
