package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween eases a value from its start toward a target over a fixed duration
// A gween tween supplies eased progress, endpoints are interpolated in float64
type Tween struct {
	from     float64
	to       float64
	value    float64
	elapsed  float64
	duration float64
	ease     Ease

	progress *gween.Tween
}

// New creates a settled tween holding value
func New(value, duration float64, e Ease) *Tween {
	if e == nil {
		e = Linear
	}
	return &Tween{
		from:     value,
		to:       value,
		value:    value,
		elapsed:  duration,
		duration: duration,
		ease:     e,
	}
}

// Retarget restarts the tween from the current value when target changes
// An unchanged target keeps the running tween intact
func (t *Tween) Retarget(target float64) {
	if target == t.to {
		return
	}
	t.from = t.value
	t.to = target
	t.elapsed = 0
	t.progress = gween.New(0, 1, float32(t.duration), t.curve())
}

// curve lifts the normalized ease back into gween's (t, begin, change, duration) form
func (t *Tween) curve() ease.TweenFunc {
	e := t.ease
	return func(tm, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(e(float64(tm/d)))
	}
}

// Advance steps the tween by dt seconds and returns the current value
func (t *Tween) Advance(dt float64) float64 {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.progress == nil || t.duration <= 0 || t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.value = t.to
		return t.value
	}
	// Elapsed is kept in float64, gween only evaluates the curve
	p, _ := t.progress.Set(float32(t.elapsed))
	t.value = t.from + (t.to-t.from)*float64(p)
	return t.value
}

// Value returns the last computed value
func (t *Tween) Value() float64 { return t.value }

// Target returns the value being eased toward
func (t *Tween) Target() float64 { return t.to }

// Done reports whether the tween has reached its target
func (t *Tween) Done() bool {
	return t.duration <= 0 || t.elapsed >= t.duration
}
