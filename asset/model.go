package asset

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/goo-scene/scene"
	"github.com/lixenwraith/goo-scene/vmath"
)

// ModelSpec describes one procedural model and where it sits in the world
type ModelSpec struct {
	Name     string
	Shape    Shape
	Detail   int
	Scale    float64
	Position vmath.Vec3F
	Rotation vmath.Euler
	Color    colorful.Color
	// Latency delays binding to mimic a slow fetch
	Latency time.Duration
}

// Build generates the model's point cloud and wraps it in a scene object
func Build(spec ModelSpec) (*scene.Object, error) {
	pts, err := generate(spec.Shape, spec.Detail)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", spec.Name, err)
	}
	scale := spec.Scale
	if scale <= 0 {
		scale = 1
	}
	tr := scene.Transform{
		Position: spec.Position,
		Rotation: spec.Rotation,
		Scale:    vmath.Vec3F{X: scale, Y: scale, Z: scale},
	}
	return scene.NewObject(spec.Name, tr, scene.Mesh{Points: pts, Color: spec.Color}), nil
}

// Particles scatters count points in a cube of side spread, stretched downward by depth
// so scrolled viewports are populated too
func Particles(count int, spread, depth float64, seed uint64) []vmath.Vec3F {
	if count <= 0 {
		return nil
	}
	rng := vmath.NewFastRand(seed)
	pts := make([]vmath.Vec3F, count)
	for i := range pts {
		pts[i] = vmath.Vec3F{
			X: (rng.Float64() - 0.5) * spread,
			Y: spread*0.5 - rng.Float64()*(spread+depth),
			Z: (rng.Float64() - 0.5) * spread,
		}
	}
	return pts
}
