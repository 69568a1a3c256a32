package scene

import (
	"log"

	"github.com/lixenwraith/goo-scene/input"
	"github.com/lixenwraith/goo-scene/noise"
	"github.com/lixenwraith/goo-scene/vmath"
)

// Viewport is the drawable surface size in terminal cells
type Viewport struct {
	Width, Height int
}

// Parallax configures pointer-driven rig motion
type Parallax struct {
	// Factor scales the normalized pointer into a rig offset
	Factor float64
	// SmoothingRate is the exponential approach rate per second
	SmoothingRate float64
}

// State is the complete mutable scene, owned by a single scheduler
type State struct {
	Actors    []*Actor
	Rig       CameraRig
	Particles []vmath.Vec3F
	Noise     noise.Source
	Parallax  Parallax

	// ObjectsDistance is the world height of one scrolled viewport
	ObjectsDistance float64
	// Scroll is measured in viewport heights from the top
	Scroll    float64
	MaxScroll float64

	Viewport Viewport
	// CellAspect is terminal cell width over height
	CellAspect float64
}

// FrameInput is everything a tick reads from outside the scene
type FrameInput struct {
	Elapsed float64
	Delta   float64
	Pointer input.PointerSample
}

// Report summarizes one Update
type Report struct {
	Elapsed  float64
	Delta    float64
	Bound    int
	Animated int
	Faults   int
	Hit      *Intersection
	Oriented bool
}

// ScrollBy moves the scroll position by delta viewport heights, clamped to [0, MaxScroll]
func (st *State) ScrollBy(delta float64) {
	hi := st.MaxScroll
	if hi < 0 {
		hi = 0
	}
	st.Scroll = vmath.ClampF(st.Scroll+delta, 0, hi)
}

// LiftTarget is the camera's local Y for the current scroll position
func (st *State) LiftTarget() float64 {
	return -st.Scroll * st.ObjectsDistance
}

// Resize updates the viewport and the camera aspect ratio
func (st *State) Resize(width, height int) {
	st.Viewport = Viewport{Width: width, Height: height}
	st.updateAspect()
}

func (st *State) updateAspect() {
	if st.Viewport.Width <= 0 || st.Viewport.Height <= 0 {
		return
	}
	cell := st.CellAspect
	if cell <= 0 {
		cell = 1
	}
	st.Rig.Camera.Aspect = float64(st.Viewport.Width) * cell / float64(st.Viewport.Height)
}

// Reactive returns the first actor flagged reactive, nil if none
func (st *State) Reactive() *Actor {
	for _, a := range st.Actors {
		if a.Reactive {
			return a
		}
	}
	return nil
}

// Intersectables returns bound objects eligible for pointer ray casts
// The reactive actor is excluded so it never aims at itself
func (st *State) Intersectables() []*Object {
	var objs []*Object
	for _, a := range st.Actors {
		if !a.Intersectable || a.Reactive {
			continue
		}
		if obj := a.Object(); obj != nil {
			objs = append(objs, obj)
		}
	}
	return objs
}

// Update advances the scene by one frame: actor motion, rig parallax, camera lift,
// camera aim, pointer ray cast and reactive orientation
func Update(st *State, in FrameInput) Report {
	rep := Report{Elapsed: in.Elapsed, Delta: in.Delta}

	for _, a := range st.Actors {
		obj := a.Object()
		if obj == nil {
			continue
		}
		rep.Bound++
		if !a.Policy.Animated() {
			continue
		}
		if animate(a, obj, in.Elapsed, st.Noise) {
			rep.Animated++
		} else {
			rep.Faults++
		}
	}

	// Parallax: ease rig toward a fraction of the pointer
	target := vmath.Vec3F{
		X: in.Pointer.X * st.Parallax.Factor,
		Y: in.Pointer.Y * st.Parallax.Factor,
		Z: st.Rig.Group.Z,
	}
	st.Rig.Group = vmath.V3FDamp(st.Rig.Group, target, st.Parallax.SmoothingRate, in.Delta)

	// Scroll lift is delegated to the tween, only target and time are supplied
	if st.Rig.Lift != nil {
		st.Rig.Lift.Retarget(st.LiftTarget())
		st.Rig.Camera.Position.Y = st.Rig.Lift.Advance(in.Delta)
	}

	// Camera pose is final from here on, aim before casting through it
	st.updateAspect()
	st.Rig.Aim()

	ndcX, ndcY := PointerNDC(in.Pointer.X, in.Pointer.Y)
	hits := Intersect(st.Rig.Ray(ndcX, ndcY), st.Intersectables())
	if len(hits) > 0 {
		hit := hits[0]
		rep.Hit = &hit
		if r := st.Reactive(); r != nil {
			if obj := r.Object(); obj != nil {
				obj.Transform.LookAt(hit.Point)
				rep.Oriented = true
			}
		}
	}

	return rep
}

// animate applies one actor's policy, isolating panics so other actors still update
func animate(a *Actor, obj *Object, t float64, n noise.Source) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scene: actor %q motion failed: %v", a.Name, r)
			ok = false
		}
	}()
	a.Policy.Apply(obj, t, n)
	return true
}
