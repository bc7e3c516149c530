// Package transform provides the local/world transform pair carried by every
// scene graph node.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds a local TRS transform plus the derived matrices.
//
// The local matrix is recomposed lazily after any mutation. The world matrix
// is only valid as of the last world-transform pass over the graph; between a
// local mutation and the next pass it is stale, and callers that need fresh
// world-space data must run that pass first.
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3

	local      mgl32.Mat4
	localDirty bool
	world      mgl32.Mat4
}

// New returns an identity transform.
func New() *Transform {
	return &Transform{
		position: mgl32.Vec3{},
		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
		local:    mgl32.Ident4(),
		world:    mgl32.Ident4(),
	}
}

// Position returns the local position.
func (t *Transform) Position() mgl32.Vec3 { return t.position }

// Rotation returns the local rotation.
func (t *Transform) Rotation() mgl32.Quat { return t.rotation }

// Scale returns the local scale.
func (t *Transform) Scale() mgl32.Vec3 { return t.scale }

// SetPosition sets the local position and invalidates the cached local matrix.
func (t *Transform) SetPosition(p mgl32.Vec3) {
	t.position = p
	t.localDirty = true
}

// SetRotation sets the local rotation and invalidates the cached local matrix.
func (t *Transform) SetRotation(q mgl32.Quat) {
	t.rotation = q
	t.localDirty = true
}

// SetScale sets the local scale and invalidates the cached local matrix.
func (t *Transform) SetScale(s mgl32.Vec3) {
	t.scale = s
	t.localDirty = true
}

// SetUniformScale sets the same scale factor on all three axes.
func (t *Transform) SetUniformScale(s float32) {
	t.SetScale(mgl32.Vec3{s, s, s})
}

// Translate offsets the local position.
func (t *Transform) Translate(d mgl32.Vec3) {
	t.SetPosition(t.position.Add(d))
}

// Rotate applies an axis-angle rotation on top of the current rotation.
// angle is in radians, axis need not be normalized.
func (t *Transform) Rotate(angle float32, axis mgl32.Vec3) {
	t.SetRotation(mgl32.QuatRotate(angle, axis.Normalize()).Mul(t.rotation).Normalize())
}

// Local returns the local matrix, recomposing it from position, rotation and
// scale if a mutation happened since the last call. Composition is standard
// TRS: scale first, then rotate, then translate.
func (t *Transform) Local() mgl32.Mat4 {
	if t.localDirty {
		translate := mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z())
		rotate := t.rotation.Mat4()
		scale := mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z())
		t.local = translate.Mul4(rotate).Mul4(scale)
		t.localDirty = false
	}
	return t.local
}

// ComputeWorld recomputes the world matrix as parentWorld * local and stores
// it for later World() reads.
func (t *Transform) ComputeWorld(parentWorld mgl32.Mat4) mgl32.Mat4 {
	t.world = parentWorld.Mul4(t.Local())
	return t.world
}

// World returns the world matrix from the last ComputeWorld call.
func (t *Transform) World() mgl32.Mat4 {
	return t.world
}

// WorldPosition returns the translation component of the world matrix.
func (t *Transform) WorldPosition() mgl32.Vec3 {
	return mgl32.Vec3{t.world[12], t.world[13], t.world[14]}
}

// Forward returns the local -Z axis rotated into world space, using the world
// matrix from the last ComputeWorld call.
func (t *Transform) Forward() mgl32.Vec3 {
	return mgl32.Vec3{-t.world[8], -t.world[9], -t.world[10]}.Normalize()
}
