package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// VehicleState is the driving model of a vehicle node. While inactive the
// vehicle idles on an autopilot circuit; once activated through the graph it
// follows throttle and steering input instead.
type VehicleState struct {
	// Speed is the current signed speed in units per second.
	Speed float32
	// MaxSpeed caps forward speed; reverse is limited to half of it.
	MaxSpeed float32
	// Acceleration is applied per unit of throttle, units/s^2.
	Acceleration float32
	// TurnRate is the steering rate at full lock, rad/s.
	TurnRate float32
	// Heading is the yaw of the vehicle in radians.
	Heading float32

	// active is settable only through Graph.SetVehicleControlled.
	active bool
}

// DefaultVehicleState returns a drivable setup with mild handling.
func DefaultVehicleState() VehicleState {
	return VehicleState{
		MaxSpeed:     18,
		Acceleration: 9,
		TurnRate:     1.2,
	}
}

// Controlled reports whether the vehicle follows input rather than the
// autopilot.
func (v *VehicleState) Controlled() bool { return v.active }

func updateVehicle(n *Node, ctx *FrameContext) {
	v := n.vehicle
	dt := ctx.Delta

	if v.active {
		v.Speed += ctx.Input.Throttle * v.Acceleration * dt
		if ctx.Input.Throttle == 0 {
			// Coast down when the pedal is released.
			v.Speed -= v.Speed * 1.5 * dt
		}
		if v.Speed > v.MaxSpeed {
			v.Speed = v.MaxSpeed
		}
		if v.Speed < -v.MaxSpeed/2 {
			v.Speed = -v.MaxSpeed / 2
		}
		// Steering only bites while moving, and flips in reverse.
		if v.Speed != 0 {
			sign := float32(1)
			if v.Speed < 0 {
				sign = -1
			}
			v.Heading -= ctx.Input.Steer * v.TurnRate * sign * dt
		}
	} else {
		// Autopilot: a lazy constant-radius loop.
		v.Speed = v.MaxSpeed * 0.35
		v.Heading += v.TurnRate * 0.4 * dt
	}

	n.transform.SetRotation(mgl32.QuatRotate(v.Heading, mgl32.Vec3{0, 1, 0}))

	sin, cos := math.Sincos(float64(v.Heading))
	forward := mgl32.Vec3{float32(sin), 0, float32(cos)}
	n.transform.Translate(forward.Mul(v.Speed * dt))
}
