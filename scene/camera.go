package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/goo-scene/tween"
	"github.com/lixenwraith/goo-scene/vmath"
)

// Camera is a perspective camera parented to a rig
// Position is relative to the rig group, Rotation is absolute (the group never rotates)
type Camera struct {
	Position vmath.Vec3F
	Rotation vmath.Euler
	FOV      float64 // vertical, degrees
	Aspect   float64 // width / height in world units
	Near     float64
	Far      float64
}

// CameraRig holds the parallax group, the camera inside it, and the fixed look-at target
type CameraRig struct {
	Group  vmath.Vec3F
	Camera Camera
	Target vmath.Vec3F

	// Lift eases the camera's local Y toward the scroll-derived target
	Lift *tween.Tween
}

// WorldPosition returns the camera position in world space
func (r *CameraRig) WorldPosition() vmath.Vec3F {
	return vmath.V3FAdd(r.Group, r.Camera.Position)
}

// Aim re-orients the camera at the fixed target from its current world position
func (r *CameraRig) Aim() {
	r.Camera.Rotation = vmath.Mat3LookAt(r.WorldPosition(), r.Target, vmath.V3FUp).Euler()
}

// Forward returns the unit view direction in world space
func (r *CameraRig) Forward() vmath.Vec3F {
	return vmath.V3FScale(vmath.Mat3FromEuler(r.Camera.Rotation).Column(2), -1)
}

func (r *CameraRig) aspect() float64 {
	if r.Camera.Aspect <= 0 {
		return 1
	}
	return r.Camera.Aspect
}

// Projection returns the perspective matrix for the camera's lens
// Missing lens values fall back to fov 75 and a 0.1 near plane, a far plane at or before near is pushed out
func (r *CameraRig) Projection() mgl64.Mat4 {
	fov := r.Camera.FOV
	if fov <= 0 {
		fov = 75
	}
	near := r.Camera.Near
	if near <= 0 {
		near = 0.1
	}
	far := r.Camera.Far
	if far <= near {
		far = near * 1000
	}
	return mgl64.Perspective(mgl64.DegToRad(fov), r.aspect(), near, far)
}

// View returns the world to eye matrix for the camera's current pose
func (r *CameraRig) View() mgl64.Mat4 {
	eye := vmath.V3FToMgl(r.WorldPosition())
	rot := vmath.Mat3FromEuler(r.Camera.Rotation).Transpose().Mat4()
	return rot.Mul4(mgl64.Translate3D(-eye[0], -eye[1], -eye[2]))
}

// Ray returns the world ray from the camera through normalized device coordinates
// NDC spans [-1, 1] with +Y up
func (r *CameraRig) Ray(ndcX, ndcY float64) vmath.Ray {
	origin := r.WorldPosition()
	// Viewport (-1, -1, 2, 2) makes window coordinates equal NDC, z=0 is the near plane
	near, err := mgl64.UnProject(mgl64.Vec3{ndcX, ndcY, 0}, r.View(), r.Projection(), -1, -1, 2, 2)
	if err != nil {
		return vmath.NewRay(origin, r.Forward())
	}
	return vmath.NewRay(origin, vmath.V3FSub(vmath.V3FFromMgl(near), origin))
}

// Project maps a world point to NDC plus view depth
// ok is false outside the near/far range or the view frustum
func (r *CameraRig) Project(p vmath.Vec3F) (ndcX, ndcY, depth float64, ok bool) {
	eye := r.View().Mul4x1(vmath.V3FToMgl(p).Vec4(1))
	depth = -eye.Z()
	if depth < r.Camera.Near || (r.Camera.Far > 0 && depth > r.Camera.Far) {
		return 0, 0, depth, false
	}
	clip := r.Projection().Mul4x1(eye)
	ndcX = clip.X() / clip.W()
	ndcY = clip.Y() / clip.W()
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 {
		return ndcX, ndcY, depth, false
	}
	return ndcX, ndcY, depth, true
}
