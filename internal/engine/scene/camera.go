package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// pitch stays just short of straight up/down so the view matrix never
// degenerates.
const maxPitch = float32(math.Pi/2) * 0.99

// CameraRig holds the tunable state of a camera node. Yaw and pitch are in
// radians, FOV in degrees. FreeLook rigs steer their own transform from
// input; rigs with FreeLook off inherit placement from their parent (a chase
// camera parented to the vehicle).
type CameraRig struct {
	Yaw             float32
	Pitch           float32
	FOV             float32
	Near            float32
	Far             float32
	MoveSpeed       float32
	LookSensitivity float32
	FreeLook        bool

	// active is settable only through Graph.ActivateCamera, which is how
	// the single-active-camera rule is enforced.
	active bool
}

// DefaultCameraRig returns a free-look rig with the usual perspective
// settings.
func DefaultCameraRig() CameraRig {
	return CameraRig{
		FOV:             60,
		Near:            0.1,
		Far:             500,
		MoveSpeed:       10,
		LookSensitivity: 1,
		FreeLook:        true,
	}
}

// Active reports whether this rig is the one the graph currently renders
// from.
func (r *CameraRig) Active() bool { return r.active }

// Projection builds the rig's perspective matrix for the given aspect ratio.
func (r *CameraRig) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(r.FOV), aspect, r.Near, r.Far)
}

func updateCamera(n *Node, ctx *FrameContext) {
	rig := n.camera
	if !rig.active || !rig.FreeLook {
		return
	}

	rig.Yaw -= ctx.Input.Look.X() * rig.LookSensitivity
	rig.Pitch -= ctx.Input.Look.Y() * rig.LookSensitivity
	if rig.Pitch > maxPitch {
		rig.Pitch = maxPitch
	}
	if rig.Pitch < -maxPitch {
		rig.Pitch = -maxPitch
	}

	rot := mgl32.QuatRotate(rig.Yaw, mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(rig.Pitch, mgl32.Vec3{1, 0, 0}))
	n.transform.SetRotation(rot)

	move := ctx.Input.Move
	if move.Len() > 0 {
		speed := rig.MoveSpeed
		if ctx.Input.Boost {
			speed *= 3
		}
		// Move in the camera's own frame: +X right, +Y up, -Z forward.
		dir := rot.Rotate(mgl32.Vec3{move.X(), move.Y(), -move.Z()})
		n.transform.Translate(dir.Mul(speed * ctx.Delta))
	}
}
