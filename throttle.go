package dragscroll

import "time"

// RateLimiter decides whether a move event is handled. now is the host clock
// reading carried by the event.
type RateLimiter interface {
	Allow(now time.Duration) bool
	// Reset forgets the previous call so the next one is allowed.
	Reset()
}

// NoLimit is the identity RateLimiter: every call is allowed.
type NoLimit struct{}

// Allow always returns true.
func (NoLimit) Allow(time.Duration) bool { return true }

// Reset is a no-op.
func (NoLimit) Reset() {}

// IntervalLimiter allows the first call and then at most one call per
// Interval. Calls inside the interval are dropped; nothing is replayed when
// it elapses.
type IntervalLimiter struct {
	Interval time.Duration

	last time.Duration
	seen bool
}

// NewIntervalLimiter returns an IntervalLimiter for the given interval.
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	return &IntervalLimiter{Interval: interval}
}

// Allow reports whether a call at now is outside the interval of the last
// allowed call, and records it if so.
func (l *IntervalLimiter) Allow(now time.Duration) bool {
	if l.seen && now-l.last < l.Interval {
		return false
	}
	l.seen = true
	l.last = now
	return true
}

// Reset clears the last allowed call.
func (l *IntervalLimiter) Reset() {
	l.seen = false
	l.last = 0
}

// limiterFor picks the RateLimiter a Config asks for.
func limiterFor(cfg Config) RateLimiter {
	if cfg.Throttle && cfg.ThrottleLimit > 0 {
		return NewIntervalLimiter(cfg.ThrottleLimit)
	}
	return NoLimit{}
}
