package vmath

// ClampF bounds v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpF interpolates a toward b by t (unclamped)
func LerpF(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DampF advances current toward target by rate*dt of the remaining distance
// Step factor is clamped to [0, 1] so a static target is never overshot, zero dt is a no-op
func DampF(current, target, rate, dt float64) float64 {
	k := ClampF(rate*dt, 0, 1)
	return current + (target-current)*k
}

// V3FDamp applies DampF per component
func V3FDamp(current, target Vec3F, rate, dt float64) Vec3F {
	return Vec3F{
		DampF(current.X, target.X, rate, dt),
		DampF(current.Y, target.Y, rate, dt),
		DampF(current.Z, target.Z, rate, dt),
	}
}
