package dragscroll

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Positioner is anything whose offset an Animator can read and write.
type Positioner interface {
	Offset() Vec2
	SetOffset(Vec2)
}

// scrollAnim holds the in-flight X and Y tweens of one Animate call.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	target ScrollTarget
}

// Animator tweens the offset of a Positioner towards a ScrollTarget. It holds
// at most one tween; every Animate call replaces the previous one. Call
// Update once per frame to advance it.
//
// There is no completion callback: reaching the target is silent.
type Animator struct {
	target Positioner
	base   time.Duration
	onStep func()

	anim *scrollAnim
	gen  uint64
}

// NewAnimator creates an Animator that writes to target. base is the duration
// of a tween whose ScaleFactor is 1. onStep, if non-nil, runs after every
// offset write.
func NewAnimator(target Positioner, base time.Duration, onStep func()) *Animator {
	return &Animator{target: target, base: base, onStep: onStep}
}

// Animate starts a linear tween from the current offset to t.Offset lasting
// t.ScaleFactor times the base duration. Any tween already in flight is
// dropped without further writes. A zero-length tween writes t.Offset at once
// and steps once.
func (a *Animator) Animate(t ScrollTarget) {
	a.Cancel()

	duration := float32(t.ScaleFactor * a.base.Seconds())
	if duration <= 0 {
		gen := a.gen
		a.target.SetOffset(t.Offset)
		a.step(gen)
		return
	}

	from := a.target.Offset()
	a.anim = &scrollAnim{
		tweenX: gween.New(float32(from.X), float32(t.Offset.X), duration, ease.Linear),
		tweenY: gween.New(float32(from.Y), float32(t.Offset.Y), duration, ease.Linear),
		target: t,
	}
}

// Cancel stops the tween in flight, if any. The offset keeps whatever value
// was last written.
func (a *Animator) Cancel() {
	a.gen++
	a.anim = nil
}

// Running reports whether a tween is in flight.
func (a *Animator) Running() bool {
	return a.anim != nil
}

// Target returns the ScrollTarget of the tween in flight.
func (a *Animator) Target() (ScrollTarget, bool) {
	if a.anim == nil {
		return ScrollTarget{}, false
	}
	return a.anim.target, true
}

// Generation is incremented by every Animate and Cancel. A frame scheduled
// under an older generation belongs to a superseded tween.
func (a *Animator) Generation() uint64 {
	return a.gen
}

// Update advances the tween by dt seconds, writes the interpolated offset and
// runs the step callback. No-op when idle.
func (a *Animator) Update(dt float32) {
	anim := a.anim
	if anim == nil {
		return
	}
	gen := a.gen

	x, doneX := anim.tweenX.Update(dt)
	y, doneY := anim.tweenY.Update(dt)
	a.target.SetOffset(Vec2{X: float64(x), Y: float64(y)})

	a.step(gen)

	// The step callback may have started or cancelled a tween.
	if doneX && doneY && a.gen == gen {
		a.anim = nil
	}
}

func (a *Animator) step(gen uint64) {
	if a.onStep != nil && a.gen == gen {
		a.onStep()
	}
}
