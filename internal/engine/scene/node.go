// Package scene implements the scene graph: a rooted tree of nodes with
// hierarchical transforms, per-kind update/draw behavior and a registry of
// well-known nodes (active camera, vehicle).
package scene

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/solhaug/sceneview/internal/engine/material"
	"github.com/solhaug/sceneview/internal/engine/mesh"
	"github.com/solhaug/sceneview/internal/engine/transform"
)

// Kind tags a node with its behavior variant.
type Kind int

const (
	// KindGroup is a plain grouping node with no behavior of its own.
	KindGroup Kind = iota
	// KindCamera supplies view/projection matrices while active.
	KindCamera
	// KindModel submits a mesh/material pair to the renderer each frame.
	KindModel
	// KindVehicle is a self-driving model node that accepts input while active.
	KindVehicle

	kindCount
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindCamera:
		return "camera"
	case KindModel:
		return "model"
	case KindVehicle:
		return "vehicle"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DrawTarget receives draw submissions during the draw traversal. The
// renderer implements it; tests substitute a recorder.
type DrawTarget interface {
	Submit(m *mesh.Mesh, mat *material.Material, world mgl32.Mat4)
}

// ModelAttachment is the drawable payload of model and vehicle nodes.
type ModelAttachment struct {
	Mesh     *mesh.Mesh
	Material *material.Material
	// Hidden suppresses the draw submission without detaching the node.
	Hidden bool
}

var nextNodeID atomic.Uint64

// Node is one entity in the scene graph. It owns its transform and its
// children; the parent pointer is a non-owning back-reference used only for
// world-transform composition.
type Node struct {
	id   uint64
	name string
	kind Kind

	transform *transform.Transform
	parent    *Node
	children  []*Node

	// Per-kind state. Only the fields matching the kind are set.
	model   *ModelAttachment
	camera  *CameraRig
	vehicle *VehicleState
}

// behavior is the per-kind dispatch entry. A nil hook means no-op; every
// kind still recurses into its children.
type behavior struct {
	update func(n *Node, ctx *FrameContext)
	draw   func(n *Node, t DrawTarget)
}

var behaviors = [kindCount]behavior{
	KindGroup:   {},
	KindCamera:  {update: updateCamera},
	KindModel:   {draw: drawModel},
	KindVehicle: {update: updateVehicle, draw: drawModel},
}

func newNode(name string, kind Kind) *Node {
	return &Node{
		id:        nextNodeID.Add(1),
		name:      name,
		kind:      kind,
		transform: transform.New(),
	}
}

// NewGroup creates a plain grouping node.
func NewGroup(name string) *Node {
	return newNode(name, KindGroup)
}

// NewCamera creates a camera node with the given rig. The camera is inactive
// until the graph activates it.
func NewCamera(name string, rig CameraRig) *Node {
	n := newNode(name, KindCamera)
	n.camera = &rig
	return n
}

// NewModel creates a node that draws the given mesh with the given material.
func NewModel(name string, m *mesh.Mesh, mat *material.Material) *Node {
	n := newNode(name, KindModel)
	n.model = &ModelAttachment{Mesh: m, Material: mat}
	return n
}

// NewVehicle creates a self-driving model node.
func NewVehicle(name string, m *mesh.Mesh, mat *material.Material, state VehicleState) *Node {
	n := newNode(name, KindVehicle)
	n.model = &ModelAttachment{Mesh: m, Material: mat}
	n.vehicle = &state
	return n
}

// ID returns the node's unique identity.
func (n *Node) ID() uint64 { return n.id }

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Kind returns the node's behavior tag.
func (n *Node) Kind() Kind { return n.kind }

// Transform returns the node's local transform.
func (n *Node) Transform() *transform.Transform { return n.transform }

// Parent returns the owning parent, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the owned children in insertion order. The returned slice
// is the node's own; callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// Model returns the drawable attachment of model and vehicle nodes, or nil.
func (n *Node) Model() *ModelAttachment { return n.model }

// Camera returns the camera rig of camera nodes, or nil.
func (n *Node) Camera() *CameraRig { return n.camera }

// Vehicle returns the vehicle state of vehicle nodes, or nil.
func (n *Node) Vehicle() *VehicleState { return n.vehicle }

// AddChild takes ownership of child and appends it to the child list.
// Children are wired up once during scene assembly; re-parenting is not a
// supported operation, so attaching a node that already has a parent panics.
func (n *Node) AddChild(child *Node) *Node {
	if child.parent != nil {
		panic(fmt.Sprintf("scene: node %q already has parent %q", child.name, child.parent.name))
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Update runs this node's kind behavior, then recurses into the children in
// insertion order.
func (n *Node) Update(ctx *FrameContext) {
	if fn := behaviors[n.kind].update; fn != nil {
		fn(n, ctx)
	}
	for _, c := range n.children {
		c.Update(ctx)
	}
}

// CalculateWorldTransform recomputes this node's world matrix from
// parentWorld and recurses with the fresh result. Must run after Update and
// before Draw each frame, since Update may have mutated local transforms.
func (n *Node) CalculateWorldTransform(parentWorld mgl32.Mat4) {
	world := n.transform.ComputeWorld(parentWorld)
	for _, c := range n.children {
		c.CalculateWorldTransform(world)
	}
}

// Draw submits this node's drawable (if its kind has one) and recurses.
func (n *Node) Draw(t DrawTarget) {
	if fn := behaviors[n.kind].draw; fn != nil {
		fn(n, t)
	}
	for _, c := range n.children {
		c.Draw(t)
	}
}

// Find returns the first node in this subtree (including n itself) for which
// pred returns true, searching depth-first in insertion order. The second
// result reports whether a match was found; callers must check it rather
// than assume presence.
func (n *Node) Find(pred func(*Node) bool) (*Node, bool) {
	if pred(n) {
		return n, true
	}
	for _, c := range n.children {
		if found, ok := c.Find(pred); ok {
			return found, true
		}
	}
	return nil, false
}

// FindByName is Find with a name predicate.
func (n *Node) FindByName(name string) (*Node, bool) {
	return n.Find(func(c *Node) bool { return c.name == name })
}

// Walk visits every node in the subtree depth-first.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		c.Walk(visit)
	}
}

func drawModel(n *Node, t DrawTarget) {
	if n.model == nil || n.model.Hidden || n.model.Mesh == nil {
		return
	}
	t.Submit(n.model.Mesh, n.model.Material, n.transform.World())
}
