package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Euler holds rotation angles in radians applied in XYZ order
type Euler struct {
	X, Y, Z float64
}

// Mat3 is a row-major 3x3 rotation matrix
// Columns are the local X, Y, Z axes expressed in parent space
type Mat3 [3][3]float64

// Mat3Identity returns the identity rotation
func Mat3Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mat3FromEuler builds a rotation matrix for intrinsic XYZ order
func Mat3FromEuler(e Euler) Mat3 {
	return Mat3FromMgl(mgl64.AnglesToQuat(e.X, e.Y, e.Z, mgl64.XYZ).Mat4().Mat3())
}

// Mat3FromMgl converts a column-major mgl64 matrix
func Mat3FromMgl(m mgl64.Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m.At(r, c)
		}
	}
	return out
}

// Mat4 embeds m as the rotation part of an affine mgl64 matrix
func (m Mat3) Mat4() mgl64.Mat4 {
	out := mgl64.Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Set(r, c, m[r][c])
		}
	}
	return out
}

// Euler extracts XYZ angles from a pure rotation matrix
// Gimbal lock (|m13| ~ 1) pins Z to zero
func (m Mat3) Euler() Euler {
	m13 := ClampF(m[0][2], -1, 1)
	y := math.Asin(m13)

	if math.Abs(m13) < 0.9999999 {
		return Euler{
			X: math.Atan2(-m[1][2], m[2][2]),
			Y: y,
			Z: math.Atan2(-m[0][1], m[0][0]),
		}
	}
	return Euler{
		X: math.Atan2(m[2][1], m[1][1]),
		Y: y,
		Z: 0,
	}
}

// MulVec transforms v by m
func (m Mat3) MulVec(v Vec3F) Vec3F {
	return Vec3F{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the inverse of a pure rotation
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Column returns axis i (0=X, 1=Y, 2=Z)
func (m Mat3) Column(i int) Vec3F {
	return Vec3F{m[0][i], m[1][i], m[2][i]}
}

// Mat3LookAt returns the rotation whose +Z axis points from target toward eye
// Cameras pass (eye=position, target) so their -Z faces the target
// Regular objects pass (eye=target, target=position) so their +Z faces the target
func Mat3LookAt(eye, target, up Vec3F) Mat3 {
	back := V3FSub(eye, target)
	if V3FMagSq(back) == 0 {
		back.Z = 1
	}
	if V3FMagSq(V3FCross(up, back)) == 0 {
		// up and view axis are parallel, nudge off-axis
		if math.Abs(up.Z) == 1 {
			back.X += 0.0001 * V3FMag(back)
		} else {
			back.Z += 0.0001 * V3FMag(back)
		}
	}
	eye = V3FAdd(target, back)

	// The view matrix maps world to eye space, its rotation transposed is the eye basis
	view := mgl64.LookAtV(V3FToMgl(eye), V3FToMgl(target), V3FToMgl(up))
	return Mat3FromMgl(view.Mat3()).Transpose()
}
