package scene

import (
	"sort"

	"github.com/lixenwraith/goo-scene/vmath"
)

// Intersection is one ray hit against an object's bounding sphere
type Intersection struct {
	Distance float64
	Point    vmath.Vec3F
	Object   *Object
}

// Intersect tests the ray against every object and returns hits nearest first
// Nil objects are skipped
func Intersect(ray vmath.Ray, objects []*Object) []Intersection {
	var hits []Intersection
	for _, obj := range objects {
		if obj == nil {
			continue
		}
		center, radius := obj.BoundingSphere()
		d, ok := ray.IntersectSphere(center, radius)
		if !ok {
			continue
		}
		hits = append(hits, Intersection{
			Distance: d,
			Point:    ray.At(d),
			Object:   obj,
		})
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// PointerNDC converts a normalized pointer ([-0.5, 0.5], Y down) to NDC ([-1, 1], Y up)
func PointerNDC(x, y float64) (float64, float64) {
	return x * 2, -y * 2
}
