package vmath

import "math"

// Ray is a half-line with normalized direction
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// NewRay normalizes dir
func NewRay(origin, dir Vec3F) Ray {
	return Ray{Origin: origin, Dir: V3FNormalize(dir)}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vec3F {
	return V3FAdd(r.Origin, V3FScale(r.Dir, t))
}

// IntersectSphere returns the nearest non-negative hit distance
// Origin inside the sphere reports the exit point
func (r Ray) IntersectSphere(center Vec3F, radius float64) (float64, bool) {
	if radius <= 0 {
		return 0, false
	}
	oc := V3FSub(r.Origin, center)
	b := V3FDot(oc, r.Dir)
	c := V3FMagSq(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
