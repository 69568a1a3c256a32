package scene

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/goo-scene/input"
	"github.com/lixenwraith/goo-scene/noise"
	"github.com/lixenwraith/goo-scene/tween"
	"github.com/lixenwraith/goo-scene/vmath"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func approxV(a, b vmath.Vec3F) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

// ball returns a unit-ish point cloud shaped like a sphere shell
func ball(radius float64) Mesh {
	return Mesh{
		Points: []vmath.Vec3F{
			{X: radius}, {X: -radius}, {Y: radius}, {Y: -radius}, {Z: radius}, {Z: -radius},
		},
		Color: colorful.Color{R: 1, G: 1, B: 1},
	}
}

func sunglassesPolicy() *MotionPolicy {
	return &MotionPolicy{
		Frequency: 4,
		X:         &AxisMotion{Cos: 0.04, Noise: 0.15},
		Y:         &AxisMotion{Cos: 0.2, Noise: 0.05, Base: math.Pi * 0.2},
	}
}

func newTestState() *State {
	st := &State{
		Rig: CameraRig{
			Camera: Camera{
				Position: vmath.Vec3F{X: 2, Y: -2, Z: 2.5},
				FOV:      75,
				Near:     0.1,
				Far:      100,
			},
			Target: vmath.Vec3F{Y: 0.75},
		},
		Noise:           noise.New(1),
		Parallax:        Parallax{Factor: 0.5, SmoothingRate: 5},
		ObjectsDistance: 4,
		MaxScroll:       10,
		CellAspect:      0.5,
	}
	st.Resize(80, 24)
	return st
}

func boundActor(name string, pos vmath.Vec3F, policy *MotionPolicy) *Actor {
	a := &Actor{Name: name, Policy: policy, Binding: NewBinding()}
	tr := Identity()
	tr.Position = pos
	a.Binding.Resolve(NewObject(name, tr, ball(0.5)))
	return a
}

func TestMotionAtTimeZero(t *testing.T) {
	st := newTestState()
	a := boundActor("sunglasses", vmath.Vec3F{Y: 1}, sunglassesPolicy())
	st.Actors = []*Actor{a}

	Update(st, FrameInput{})

	rot := a.Object().Transform.Rotation
	// cos(0) = 1 plus the noise baseline at the origin
	base := st.Noise.Noise3D(0, 0, 0)
	if want := 0.04 + base*0.15; !approx(rot.X, want) {
		t.Errorf("rotation.x = %v, want %v", rot.X, want)
	}
	if want := 0.2 + base*0.05 + math.Pi*0.2; !approx(rot.Y, want) {
		t.Errorf("rotation.y = %v, want %v", rot.Y, want)
	}
	if st.Rig.Group != (vmath.Vec3F{}) {
		t.Errorf("rig moved with centered pointer: %+v", st.Rig.Group)
	}
}

func TestMotionDeterministic(t *testing.T) {
	run := func() vmath.Euler {
		st := newTestState()
		a := boundActor("glass", vmath.Vec3F{}, sunglassesPolicy())
		st.Actors = []*Actor{a}
		for _, el := range []float64{0.016, 0.5, 1.37, 2.9} {
			Update(st, FrameInput{Elapsed: el, Delta: 0.016, Pointer: input.PointerSample{X: 0.1, Y: 0.2}})
		}
		return a.Object().Transform.Rotation
	}
	if a, b := run(), run(); a != b {
		t.Errorf("identical inputs produced %+v and %+v", a, b)
	}
}

func TestParallaxHalfStep(t *testing.T) {
	st := newTestState()
	st.Rig.Group = vmath.Vec3F{X: 0.05, Y: 0.1}
	prev := st.Rig.Group

	Update(st, FrameInput{Elapsed: 0.1, Delta: 0.1, Pointer: input.PointerSample{X: 0.5, Y: -0.5}})

	wantX := prev.X + (0.25-prev.X)*5*0.1
	wantY := prev.Y + (-0.25-prev.Y)*5*0.1
	if !approx(st.Rig.Group.X, wantX) || !approx(st.Rig.Group.Y, wantY) {
		t.Errorf("rig = %+v, want (%v, %v)", st.Rig.Group, wantX, wantY)
	}
}

func TestParallaxZeroDelta(t *testing.T) {
	st := newTestState()
	st.Rig.Group = vmath.Vec3F{X: 0.1}
	Update(st, FrameInput{Elapsed: 1, Delta: 0, Pointer: input.PointerSample{X: 0.5, Y: 0.5}})
	if st.Rig.Group != (vmath.Vec3F{X: 0.1}) {
		t.Errorf("zero delta moved rig to %+v", st.Rig.Group)
	}
}

func TestCameraAlwaysLooksAtTarget(t *testing.T) {
	for _, offset := range []vmath.Vec3F{{}, {X: 0.25, Y: -0.25}, {X: 40, Y: -30}} {
		st := newTestState()
		st.Rig.Group = offset
		st.Rig.Camera.Rotation = vmath.Euler{X: 1, Y: 2, Z: 3}

		Update(st, FrameInput{Elapsed: 0.2, Delta: 0.016, Pointer: input.PointerSample{X: 0.4, Y: 0.3}})

		want := vmath.V3FNormalize(vmath.V3FSub(st.Rig.Target, st.Rig.WorldPosition()))
		if got := st.Rig.Forward(); !approxV(got, want) {
			t.Errorf("offset %+v: forward %+v, want %+v", offset, got, want)
		}
	}
}

func TestCameraLiftEasesTowardScroll(t *testing.T) {
	st := newTestState()
	st.Rig.Lift = tween.New(st.Rig.Camera.Position.Y, 4, tween.Power2Out)
	st.ScrollBy(2)

	Update(st, FrameInput{Elapsed: 1, Delta: 1})
	y := st.Rig.Camera.Position.Y
	if y >= -2 || y <= -8 {
		t.Fatalf("after 1s camera y = %v, want between -2 and -8", y)
	}
	Update(st, FrameInput{Elapsed: 5, Delta: 4})
	if !approx(st.Rig.Camera.Position.Y, -8) {
		t.Errorf("settled camera y = %v, want -8", st.Rig.Camera.Position.Y)
	}

	st.ScrollBy(100)
	if st.Scroll != 10 {
		t.Errorf("scroll not clamped: %v", st.Scroll)
	}
	st.ScrollBy(-100)
	if st.Scroll != 0 {
		t.Errorf("scroll not clamped at top: %v", st.Scroll)
	}
}

func TestUnboundActorsSkipped(t *testing.T) {
	st := newTestState()
	pending := &Actor{Name: "mask", Policy: sunglassesPolicy(), Binding: NewBinding(), Reactive: true}
	st.Actors = []*Actor{pending, {Name: "nil binding", Policy: sunglassesPolicy()}}

	rep := Update(st, FrameInput{Elapsed: 1, Delta: 0.016})
	if rep.Bound != 0 || rep.Animated != 0 || rep.Faults != 0 || rep.Oriented {
		t.Errorf("unexpected report %+v", rep)
	}

	// Late binding is picked up by the next tick
	pending.Binding.Resolve(NewObject("mask", Identity(), ball(1)))
	rep = Update(st, FrameInput{Elapsed: 1.016, Delta: 0.016})
	if rep.Bound != 1 || rep.Animated != 1 {
		t.Errorf("after resolve report %+v", rep)
	}
}

func TestRaycastNoHit(t *testing.T) {
	st := newTestState()
	reactive := boundActor("sunglasses", vmath.Vec3F{Y: 1}, nil)
	reactive.Reactive = true
	before := reactive.Object().Transform.Rotation
	st.Actors = []*Actor{reactive}

	rep := Update(st, FrameInput{Elapsed: 1, Delta: 0.016, Pointer: input.PointerSample{X: 0.3, Y: 0.1}})
	if rep.Hit != nil || rep.Oriented {
		t.Errorf("expected no hit, got %+v", rep)
	}
	if reactive.Object().Transform.Rotation != before {
		t.Error("reactive actor rotated without a hit")
	}
}

func TestRaycastOrientsReactiveActor(t *testing.T) {
	st := newTestState()
	reactive := boundActor("sunglasses", vmath.Vec3F{X: 0.2, Y: 1, Z: 0.35}, nil)
	reactive.Reactive = true
	target := boundActor("mask", st.Rig.Target, nil)
	target.Intersectable = true
	st.Actors = []*Actor{reactive, target}

	// Centered pointer casts along the view axis straight at the look-at target
	rep := Update(st, FrameInput{Elapsed: 1, Delta: 0})
	if rep.Hit == nil || rep.Hit.Object != target.Object() {
		t.Fatalf("expected hit on mask, got %+v", rep.Hit)
	}
	if !rep.Oriented {
		t.Fatal("reactive actor not oriented")
	}

	obj := reactive.Object()
	facing := obj.Transform.Basis().Column(2)
	want := vmath.V3FNormalize(vmath.V3FSub(rep.Hit.Point, obj.Transform.Position))
	if !approxV(facing, want) {
		t.Errorf("reactive +Z = %+v, want %+v", facing, want)
	}
}

func TestRaycastGuardsUnboundReactive(t *testing.T) {
	st := newTestState()
	reactive := &Actor{Name: "sunglasses", Binding: NewBinding(), Reactive: true}
	target := boundActor("mask", st.Rig.Target, nil)
	target.Intersectable = true
	st.Actors = []*Actor{reactive, target}

	rep := Update(st, FrameInput{Elapsed: 1})
	if rep.Hit == nil {
		t.Fatal("expected a hit")
	}
	if rep.Oriented {
		t.Error("unbound reactive actor reported as oriented")
	}
}

// faultyNoise panics on any sample along the Y axis
type faultyNoise struct{}

func (faultyNoise) Noise3D(x, y, z float64) float64 {
	if y != 0 {
		panic("broken noise")
	}
	return 0
}

func TestActorFaultIsolated(t *testing.T) {
	st := newTestState()
	st.Noise = faultyNoise{}
	bad := boundActor("bad", vmath.Vec3F{}, &MotionPolicy{Frequency: 1, Y: &AxisMotion{Noise: 1}})
	good := boundActor("good", vmath.Vec3F{}, &MotionPolicy{Frequency: 1, X: &AxisMotion{Cos: 0.5}})
	st.Actors = []*Actor{bad, good}

	rep := Update(st, FrameInput{Elapsed: 1, Delta: 0.016})
	if rep.Faults != 1 || rep.Animated != 1 {
		t.Errorf("report %+v, want 1 fault and 1 animated", rep)
	}
	if !approx(good.Object().Transform.Rotation.X, math.Cos(1)*0.5) {
		t.Errorf("good actor rotation %v", good.Object().Transform.Rotation.X)
	}
}

func TestBindingResolveOnce(t *testing.T) {
	b := NewBinding()
	if _, ok := b.Poll(); ok {
		t.Fatal("unresolved binding reported bound")
	}
	first := NewObject("a", Identity(), ball(1))
	if !b.Resolve(first) {
		t.Fatal("first resolve rejected")
	}
	if b.Resolve(NewObject("b", Identity(), ball(1))) {
		t.Error("second resolve accepted")
	}
	select {
	case <-b.Done():
	default:
		t.Error("Done not closed after resolve")
	}
	if obj, ok := b.Poll(); !ok || obj != first {
		t.Errorf("Poll = %v, %v", obj, ok)
	}
	if obj, _ := b.Poll(); obj != first {
		t.Error("second Poll lost the object")
	}
}

func TestProjectRoundTrip(t *testing.T) {
	st := newTestState()
	st.Rig.Aim()

	ray := st.Rig.Ray(0.3, -0.2)
	p := ray.At(3)
	x, y, depth, ok := st.Rig.Project(p)
	if !ok {
		t.Fatalf("point on ray not visible")
	}
	if !approx(x, 0.3) || !approx(y, -0.2) {
		t.Errorf("projected ndc (%v, %v), want (0.3, -0.2)", x, y)
	}
	if depth <= 0 {
		t.Errorf("depth %v", depth)
	}

	behind := vmath.V3FSub(st.Rig.WorldPosition(), st.Rig.Forward())
	if _, _, _, ok := st.Rig.Project(behind); ok {
		t.Error("point behind camera reported visible")
	}
}

func TestViewPutsTargetOnAxis(t *testing.T) {
	st := newTestState()
	st.Rig.Group = vmath.Vec3F{X: 0.3, Y: -0.1}
	st.Rig.Aim()

	view := st.Rig.View()
	eye := view.Mul4x1(vmath.V3FToMgl(st.Rig.WorldPosition()).Vec4(1))
	if !approx(eye.X(), 0) || !approx(eye.Y(), 0) || !approx(eye.Z(), 0) {
		t.Errorf("camera in eye space = %v, want origin", eye)
	}

	dist := vmath.V3FDist(st.Rig.WorldPosition(), st.Rig.Target)
	tgt := view.Mul4x1(vmath.V3FToMgl(st.Rig.Target).Vec4(1))
	if !approx(tgt.X(), 0) || !approx(tgt.Y(), 0) || !approx(tgt.Z(), -dist) {
		t.Errorf("target in eye space = %v, want (0, 0, %v)", tgt, -dist)
	}

	x, y, depth, ok := st.Rig.Project(st.Rig.Target)
	if !ok || !approx(x, 0) || !approx(y, 0) || !approx(depth, dist) {
		t.Errorf("Project(target) = (%v, %v, %v, %v)", x, y, depth, ok)
	}
}
