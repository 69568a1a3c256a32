package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/goo-scene/vmath"
)

// Mesh is a point cloud in local space
type Mesh struct {
	Points []vmath.Vec3F
	Color  colorful.Color
}

// Radius returns the local-space bounding radius around the origin
func (m *Mesh) Radius() float64 {
	r := 0.0
	for _, p := range m.Points {
		if d := vmath.V3FMag(p); d > r {
			r = d
		}
	}
	return r
}

// Object is a loaded, mutable scene node
type Object struct {
	Name      string
	Transform Transform
	Mesh      Mesh

	// radius caches Mesh.Radius at bind time
	radius float64
}

// NewObject builds an object and caches its bounds
func NewObject(name string, tr Transform, mesh Mesh) *Object {
	return &Object{
		Name:      name,
		Transform: tr,
		Mesh:      mesh,
		radius:    mesh.Radius(),
	}
}

// BoundingSphere returns the world-space center and radius
func (o *Object) BoundingSphere() (vmath.Vec3F, float64) {
	return o.Transform.Position, o.radius * vmath.V3FMaxComponent(o.Transform.Scale)
}
