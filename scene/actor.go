package scene

import (
	"math"

	"github.com/lixenwraith/goo-scene/noise"
)

// AxisMotion drives one rotation axis:
// angle = cos(t * Frequency) * Cos + noise(axis(t)) * Noise + Base
type AxisMotion struct {
	Cos   float64
	Noise float64
	Base  float64
}

// MotionPolicy is a per-actor procedural rotation rule
// Nil axes are left untouched
type MotionPolicy struct {
	Frequency float64
	X, Y, Z   *AxisMotion
}

// Animated reports whether the policy drives any axis
func (p *MotionPolicy) Animated() bool {
	return p != nil && (p.X != nil || p.Y != nil || p.Z != nil)
}

// Apply sets obj rotation for elapsed time t
// Each axis samples noise along its own coordinate so the axes decorrelate
func (p *MotionPolicy) Apply(obj *Object, t float64, n noise.Source) {
	if !p.Animated() || obj == nil {
		return
	}
	wave := math.Cos(t * p.Frequency)

	if p.X != nil {
		obj.Transform.Rotation.X = wave*p.X.Cos + sample(n, t, 0, 0)*p.X.Noise + p.X.Base
	}
	if p.Y != nil {
		obj.Transform.Rotation.Y = wave*p.Y.Cos + sample(n, 0, t, 0)*p.Y.Noise + p.Y.Base
	}
	if p.Z != nil {
		obj.Transform.Rotation.Z = wave*p.Z.Cos + sample(n, 0, 0, t)*p.Z.Noise + p.Z.Base
	}
}

func sample(n noise.Source, x, y, z float64) float64 {
	if n == nil {
		return 0
	}
	return n.Noise3D(x, y, z)
}

// Actor couples a motion policy with an asynchronously bound object
type Actor struct {
	Name    string
	Policy  *MotionPolicy
	Binding *Binding

	// Reactive actors turn to face the pointer hit point
	Reactive bool
	// Intersectable actors take part in pointer ray casts
	Intersectable bool
}

// Object returns the bound object, nil until loading completes
func (a *Actor) Object() *Object {
	if a.Binding == nil {
		return nil
	}
	obj, _ := a.Binding.Poll()
	return obj
}

// Bound reports whether the actor's object has been delivered
func (a *Actor) Bound() bool {
	return a.Object() != nil
}
