package noise

import (
	"math"
	"testing"
)

func TestSimplexDeterministic(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.137
		if va, vb := a.Noise3D(x, 0, 0), b.Noise3D(x, 0, 0); va != vb {
			t.Fatalf("same seed diverged at x=%v: %v vs %v", x, va, vb)
		}
		if va, again := a.Noise3D(0, x, 0), a.Noise3D(0, x, 0); va != again {
			t.Fatalf("repeated sample differs at y=%v", x)
		}
	}
}

func TestSimplexSatisfiesSource(t *testing.T) {
	var src Source = New(42)
	if v := src.Noise3D(0, 0, 0); math.IsNaN(v) || v < -1 || v > 1 {
		t.Errorf("origin sample = %v", v)
	}
	if got := New(42).Seed(); got != 42 {
		t.Errorf("Seed = %d", got)
	}
}

func TestSimplexRangeAndContinuity(t *testing.T) {
	s := New(3)
	prev := s.Noise3D(0, 0, 0)
	for i := 1; i < 5000; i++ {
		x := float64(i) * 0.001
		v := s.Noise3D(x, 0.5, -0.25)
		if v < -1.0001 || v > 1.0001 {
			t.Fatalf("value out of range at %v: %v", x, v)
		}
		if i > 1 && math.Abs(v-prev) > 0.05 {
			t.Fatalf("discontinuity at x=%v: %v -> %v", x, prev, v)
		}
		prev = v
	}
}

func TestSimplexSeedsDiffer(t *testing.T) {
	a, b := New(1), New(2)
	same := true
	for i := 1; i < 50; i++ {
		x := float64(i) * 0.31
		if a.Noise3D(x, x*0.5, 0) != b.Noise3D(x, x*0.5, 0) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical fields")
	}
}
