package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func approxV(a, b Vec3F) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestDampF(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		rate, dt        float64
		want            float64
	}{
		{"half step", 0, 0.25, 5, 0.1, 0.125},
		{"zero delta", 0.3, 1, 5, 0, 0.3},
		{"large delta clamps to target", 0, 1, 5, 10, 1},
		{"negative delta ignored", 0.5, 1, 5, -1, 0.5},
		{"at target", 2, 2, 5, 0.016, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DampF(tt.current, tt.target, tt.rate, tt.dt)
			if !approx(got, tt.want) {
				t.Errorf("DampF(%v, %v, %v, %v) = %v, want %v", tt.current, tt.target, tt.rate, tt.dt, got, tt.want)
			}
		})
	}
}

func TestDampConvergesWithoutOvershoot(t *testing.T) {
	target := -0.25
	pos := 0.4
	prevDist := math.Abs(target - pos)
	deltas := []float64{0.016, 0.033, 0, 0.1, 0.25, 0.5, 1.0, 0.016}

	for i := 0; i < 200; i++ {
		dt := deltas[i%len(deltas)]
		pos = DampF(pos, target, 5, dt)
		dist := math.Abs(target - pos)
		if dist > prevDist+eps {
			t.Fatalf("step %d: distance grew from %v to %v", i, prevDist, dist)
		}
		if pos < target-eps {
			t.Fatalf("step %d: overshot target %v with %v", i, target, pos)
		}
		prevDist = dist
	}
	if prevDist > 1e-6 {
		t.Errorf("expected convergence, remaining distance %v", prevDist)
	}
}

func TestMat3EulerRoundTrip(t *testing.T) {
	cases := []Euler{
		{0, 0, 0},
		{0.3, -0.2, 0.1},
		{math.Pi / 2.4, 0, 0},
		{-1.1, 0.7, 2.5},
	}
	for _, e := range cases {
		got := Mat3FromEuler(e).Euler()
		if !approx(got.X, e.X) || !approx(got.Y, e.Y) || !approx(got.Z, e.Z) {
			t.Errorf("round trip %+v -> %+v", e, got)
		}
	}
}

func TestMat3FromEulerAppliesZThenYThenX(t *testing.T) {
	// Rx*Ry*Rz: +X turns to -Z about Y, then to +Y about X
	m := Mat3FromEuler(Euler{X: math.Pi / 2, Y: math.Pi / 2})
	if got := m.MulVec(Vec3F{1, 0, 0}); !approxV(got, Vec3F{0, 1, 0}) {
		t.Errorf("rotated +X = %+v, want +Y", got)
	}

	m = Mat3FromEuler(Euler{X: math.Pi / 2})
	if got := m.MulVec(Vec3F{0, 1, 0}); !approxV(got, Vec3F{0, 0, 1}) {
		t.Errorf("rotated +Y about X = %+v, want +Z", got)
	}
}

func TestMat3LookAtCamera(t *testing.T) {
	eye := Vec3F{2, -2, 2.5}
	target := Vec3F{0, 0.75, 0}

	m := Mat3LookAt(eye, target, V3FUp)
	forward := V3FScale(m.Column(2), -1)
	want := V3FNormalize(V3FSub(target, eye))
	if !approxV(forward, want) {
		t.Errorf("camera forward = %+v, want %+v", forward, want)
	}

	// Euler path must reproduce the same basis
	back := Mat3FromEuler(m.Euler())
	for i := 0; i < 3; i++ {
		if !approxV(back.Column(i), m.Column(i)) {
			t.Errorf("column %d mismatch after euler round trip: %+v vs %+v", i, back.Column(i), m.Column(i))
		}
	}
}

func TestMat3LookAtParallelUp(t *testing.T) {
	m := Mat3LookAt(Vec3F{0, 5, 0}, Vec3F{}, V3FUp)
	for i := 0; i < 3; i++ {
		c := m.Column(i)
		if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z) {
			t.Fatalf("NaN in column %d", i)
		}
		if !approx(V3FMag(c), 1) {
			t.Errorf("column %d not unit: %v", i, V3FMag(c))
		}
	}
}

func TestRayIntersectSphere(t *testing.T) {
	r := NewRay(Vec3F{0, 0, 5}, Vec3F{0, 0, -1})

	d, ok := r.IntersectSphere(Vec3F{}, 1)
	if !ok || !approx(d, 4) {
		t.Fatalf("hit = %v, %v; want 4, true", d, ok)
	}
	if p := r.At(d); !approxV(p, Vec3F{0, 0, 1}) {
		t.Errorf("hit point = %+v", p)
	}

	if _, ok := r.IntersectSphere(Vec3F{3, 0, 0}, 1); ok {
		t.Error("expected miss for offset sphere")
	}
	if _, ok := r.IntersectSphere(Vec3F{0, 0, 10}, 1); ok {
		t.Error("expected miss for sphere behind origin")
	}

	inside := NewRay(Vec3F{}, Vec3F{1, 0, 0})
	if d, ok := inside.IntersectSphere(Vec3F{}, 2); !ok || !approx(d, 2) {
		t.Errorf("inside hit = %v, %v; want 2, true", d, ok)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		fa, fb := a.Float64(), b.Float64()
		if fa != fb {
			t.Fatalf("sequence diverged at %d", i)
		}
		if fa < 0 || fa >= 1 {
			t.Fatalf("Float64 out of range: %v", fa)
		}
	}
}
