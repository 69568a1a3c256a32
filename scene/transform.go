package scene

import "github.com/lixenwraith/goo-scene/vmath"

// Transform is an object's placement relative to the world
type Transform struct {
	Position vmath.Vec3F
	Rotation vmath.Euler
	Scale    vmath.Vec3F
}

// Identity returns a transform at the origin with unit scale
func Identity() Transform {
	return Transform{Scale: vmath.V3FOne}
}

// Basis returns the rotation matrix for the current Euler angles
func (t *Transform) Basis() vmath.Mat3 {
	return vmath.Mat3FromEuler(t.Rotation)
}

// Apply maps a local-space point to world space (scale, rotate, translate)
func (t *Transform) Apply(p vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FAdd(t.Position, t.Basis().MulVec(vmath.V3FMul(p, t.Scale)))
}

// LookAt orients the transform so its local +Z faces target
func (t *Transform) LookAt(target vmath.Vec3F) {
	t.Rotation = vmath.Mat3LookAt(target, t.Position, vmath.V3FUp).Euler()
}
