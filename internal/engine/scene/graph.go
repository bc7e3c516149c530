package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoActiveCamera is returned by view/projection queries before any camera
// has been activated.
var ErrNoActiveCamera = errors.New("scene: no active camera")

// Graph owns the node tree and the registry of well-known nodes. Rendering
// state that exactly one node may hold at a time, the active camera and the
// player-controlled vehicle, is assigned through the graph so the exclusivity
// cannot be broken from outside.
type Graph struct {
	root         *Node
	activeCamera *Node
	vehicle      *Node
}

// NewGraph creates a graph with an empty root group.
func NewGraph() *Graph {
	return &Graph{root: NewGroup("root")}
}

// Root returns the root node. Children added to it become part of the
// traversals.
func (g *Graph) Root() *Node { return g.root }

// Update runs node behaviors depth-first over the whole tree.
func (g *Graph) Update(ctx *FrameContext) {
	ctx.Graph = g
	g.root.Update(ctx)
}

// CalculateWorldTransforms recomputes every node's world matrix from the
// current local transforms. World matrices are stale between a transform
// mutation and this call.
func (g *Graph) CalculateWorldTransforms() {
	g.root.CalculateWorldTransform(mgl32.Ident4())
}

// Draw submits every visible model to the target in traversal order.
func (g *Graph) Draw(t DrawTarget) {
	g.root.Draw(t)
}

// ActivateCamera makes n the camera the scene renders from, deactivating the
// previous one. n must be a camera node that belongs to this graph.
func (g *Graph) ActivateCamera(n *Node) error {
	if n == nil {
		return errors.New("scene: activate camera: nil node")
	}
	if n.kind != KindCamera {
		return fmt.Errorf("scene: activate camera: %q is not a camera node", n.name)
	}
	if !g.contains(n) {
		return fmt.Errorf("scene: activate camera: %q is not attached to this graph", n.name)
	}
	if g.activeCamera != nil {
		g.activeCamera.camera.active = false
	}
	g.activeCamera = n
	n.camera.active = true
	return nil
}

// ActiveCamera returns the camera node the scene renders from, or false if
// none has been activated.
func (g *Graph) ActiveCamera() (*Node, bool) {
	return g.activeCamera, g.activeCamera != nil
}

// View returns the active camera's view matrix, the inverse of its world
// transform. Call after CalculateWorldTransforms.
func (g *Graph) View() (mgl32.Mat4, error) {
	if g.activeCamera == nil {
		return mgl32.Ident4(), ErrNoActiveCamera
	}
	return g.activeCamera.transform.World().Inv(), nil
}

// Projection returns the active camera's perspective matrix for the given
// aspect ratio.
func (g *Graph) Projection(aspect float32) (mgl32.Mat4, error) {
	if g.activeCamera == nil {
		return mgl32.Ident4(), ErrNoActiveCamera
	}
	return g.activeCamera.camera.Projection(aspect), nil
}

// CameraPosition returns the active camera's world-space position.
func (g *Graph) CameraPosition() (mgl32.Vec3, error) {
	if g.activeCamera == nil {
		return mgl32.Vec3{}, ErrNoActiveCamera
	}
	return g.activeCamera.transform.WorldPosition(), nil
}

// SetVehicleControlled hands driving input to n, releasing the previously
// controlled vehicle back to autopilot. Passing nil releases control
// entirely.
func (g *Graph) SetVehicleControlled(n *Node) error {
	if n != nil {
		if n.kind != KindVehicle {
			return fmt.Errorf("scene: control vehicle: %q is not a vehicle node", n.name)
		}
		if !g.contains(n) {
			return fmt.Errorf("scene: control vehicle: %q is not attached to this graph", n.name)
		}
	}
	if g.vehicle != nil {
		g.vehicle.vehicle.active = false
	}
	g.vehicle = n
	if n != nil {
		n.vehicle.active = true
	}
	return nil
}

// ControlledVehicle returns the vehicle currently driven by input, or false
// if every vehicle is on autopilot.
func (g *Graph) ControlledVehicle() (*Node, bool) {
	return g.vehicle, g.vehicle != nil
}

// Find searches the tree depth-first and returns the first node matching
// pred.
func (g *Graph) Find(pred func(*Node) bool) (*Node, bool) {
	return g.root.Find(pred)
}

// FindByName returns the first node named name.
func (g *Graph) FindByName(name string) (*Node, bool) {
	return g.root.FindByName(name)
}

func (g *Graph) contains(n *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == g.root {
			return true
		}
	}
	return false
}
