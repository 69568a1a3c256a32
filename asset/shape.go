// Package asset builds procedural point-cloud models and loads them asynchronously into scene bindings
package asset

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/goo-scene/vmath"
)

// Shape names a procedural mesh generator
type Shape string

const (
	ShapeSphere  Shape = "sphere"
	ShapeTorus   Shape = "torus"
	ShapeBox     Shape = "box"
	ShapeRing    Shape = "ring"
	ShapeGlasses Shape = "glasses"
)

// ErrUnknownShape is returned for shapes without a generator
var ErrUnknownShape = errors.New("asset: unknown shape")

// generate returns local-space points for shape at the given detail, all within unit radius
func generate(shape Shape, detail int) ([]vmath.Vec3F, error) {
	if detail < 4 {
		detail = 4
	}
	switch shape {
	case ShapeSphere:
		return sphere(detail * detail / 2), nil
	case ShapeTorus:
		return torus(0.7, 0.3, detail, detail/2), nil
	case ShapeBox:
		return box(detail / 2), nil
	case ShapeRing:
		return torus(0.9, 0.05, detail*2, 3), nil
	case ShapeGlasses:
		return glasses(detail), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
}

// sphere distributes n points over the unit sphere on a fibonacci spiral
func sphere(n int) []vmath.Vec3F {
	pts := make([]vmath.Vec3F, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range pts {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		th := golden * float64(i)
		pts[i] = vmath.Vec3F{X: r * math.Cos(th), Y: y, Z: r * math.Sin(th)}
	}
	return pts
}

// torus samples a torus in the XY plane facing +Z
func torus(major, minor float64, segments, sides int) []vmath.Vec3F {
	if sides < 1 {
		sides = 1
	}
	pts := make([]vmath.Vec3F, 0, segments*sides)
	for i := 0; i < segments; i++ {
		u := 2 * math.Pi * float64(i) / float64(segments)
		for j := 0; j < sides; j++ {
			v := 2 * math.Pi * float64(j) / float64(sides)
			w := major + minor*math.Cos(v)
			pts = append(pts, vmath.Vec3F{
				X: w * math.Cos(u),
				Y: w * math.Sin(u),
				Z: minor * math.Sin(v),
			})
		}
	}
	return pts
}

// box samples the edges of a cube inscribed in the unit sphere
func box(n int) []vmath.Vec3F {
	if n < 2 {
		n = 2
	}
	h := 1 / math.Sqrt(3)
	pts := make([]vmath.Vec3F, 0, 12*n)
	corners := [2]float64{-h, h}
	for _, a := range corners {
		for _, b := range corners {
			for i := 0; i < n; i++ {
				t := -h + 2*h*float64(i)/float64(n-1)
				pts = append(pts,
					vmath.Vec3F{X: t, Y: a, Z: b},
					vmath.Vec3F{X: a, Y: t, Z: b},
					vmath.Vec3F{X: a, Y: b, Z: t},
				)
			}
		}
	}
	return pts
}

// glasses builds two lens rings joined by a bridge with temples running back along -Z
func glasses(detail int) []vmath.Vec3F {
	const (
		lens   = 0.35
		offset = 0.45
	)
	ring := torus(lens, 0.03, detail*2, 2)
	pts := make([]vmath.Vec3F, 0, len(ring)*2+detail*3)
	for _, p := range ring {
		pts = append(pts,
			vmath.Vec3F{X: p.X - offset, Y: p.Y, Z: p.Z},
			vmath.Vec3F{X: p.X + offset, Y: p.Y, Z: p.Z},
		)
	}
	gap := offset - lens
	for i := 0; i < detail; i++ {
		t := float64(i) / float64(detail-1)
		// Bridge
		pts = append(pts, vmath.Vec3F{X: -gap + 2*gap*t, Y: 0.1})
		// Temples
		z := -0.8 * t
		pts = append(pts,
			vmath.Vec3F{X: -(offset + lens), Y: 0.1, Z: z},
			vmath.Vec3F{X: offset + lens, Y: 0.1, Z: z},
		)
	}
	return pts
}
