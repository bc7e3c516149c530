package scene

import "github.com/go-gl/mathgl/mgl32"

// InputState is the per-frame input sample handed to node behaviors. The
// application fills it from whatever input backend it runs on (imgui IO or
// SDL key state); node behaviors never touch an input library directly.
type InputState struct {
	// Move is the camera movement intent on (right, up, forward) axes,
	// each in [-1, 1].
	Move mgl32.Vec3
	// Look is the yaw/pitch delta in radians for this frame.
	Look mgl32.Vec2
	// Throttle is the vehicle drive intent in [-1, 1].
	Throttle float32
	// Steer is the vehicle steering intent in [-1, 1].
	Steer float32
	// Boost speeds up camera movement while held.
	Boost bool
}

// FrameContext carries the per-frame state threaded through the update
// traversal: timing, the sampled input, and the owning graph for registry
// lookups.
type FrameContext struct {
	Graph *Graph
	Input InputState
	// Total is seconds since the application started.
	Total float32
	// Delta is seconds since the previous frame.
	Delta float32
}
