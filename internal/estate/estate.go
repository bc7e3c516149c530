// Package estate assembles the demo scene: a grass plane, a grid of houses
// with wedge roofs, a patrolling vehicle with a chase camera and a free
// camera to fly around with.
package estate

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/solhaug/sceneview/internal/config"
	"github.com/solhaug/sceneview/internal/engine/assets"
	"github.com/solhaug/sceneview/internal/engine/material"
	"github.com/solhaug/sceneview/internal/engine/mesh"
	"github.com/solhaug/sceneview/internal/engine/scene"
)

// Well-known node names, used by the UI to find its subjects.
const (
	FreeCameraName  = "free-camera"
	ChaseCameraName = "chase-camera"
	VehicleName     = "vehicle"
	HousesName      = "houses"
	GroundName      = "ground"
)

// houseSpacing is the grid pitch in world units.
const houseSpacing = 4

// placement positions one house in the grid.
type placement struct {
	position mgl32.Vec3
	yaw      float32
}

// housePlacements lays out rows*rows houses centered on the origin, each
// with a random facing. The seed pins the layout so a session is
// reproducible.
func housePlacements(rows int, seed int64) []placement {
	rng := rand.New(rand.NewSource(seed))
	out := make([]placement, 0, rows*rows)
	half := float32(rows-1) * houseSpacing / 2
	for r := 0; r < rows; r++ {
		for c := 0; c < rows; c++ {
			out = append(out, placement{
				position: mgl32.Vec3{
					float32(c)*houseSpacing - half,
					1,
					float32(r)*houseSpacing - half,
				},
				yaw: rng.Float32() * 2 * math.Pi,
			})
		}
	}
	return out
}

// meshes and materials are the shared handles the graph references.
type sceneMeshes struct {
	ground  *mesh.Mesh
	house   *mesh.Mesh
	roof    *mesh.Mesh
	vehicle *mesh.Mesh
}

type sceneMaterials struct {
	ground  *material.Material
	house   *material.Material
	roof    *material.Material
	vehicle *material.Material
}

// assemble builds the node tree from already-created handles. Split from
// NewScene so the graph shape is testable without a GL context.
func assemble(m sceneMeshes, mats sceneMaterials, rows int, seed int64) *scene.Graph {
	g := scene.NewGraph()
	root := g.Root()

	ground := root.AddChild(scene.NewModel(GroundName, m.ground, mats.ground))
	groundScale := float32(rows) * houseSpacing
	if rows < 1 {
		groundScale = houseSpacing
	}
	ground.Transform().SetScale(mgl32.Vec3{groundScale, 1, groundScale})

	houses := root.AddChild(scene.NewGroup(HousesName))
	for i, p := range housePlacements(rows, seed) {
		house := houses.AddChild(scene.NewModel(fmt.Sprintf("house-%d", i), m.house, mats.house))
		house.Transform().SetPosition(p.position)
		house.Transform().SetRotation(mgl32.QuatRotate(p.yaw, mgl32.Vec3{0, 1, 0}))

		roof := house.AddChild(scene.NewModel(fmt.Sprintf("roof-%d", i), m.roof, mats.roof))
		roof.Transform().SetPosition(mgl32.Vec3{0, 1, 0})
	}

	vehicle := root.AddChild(scene.NewVehicle(VehicleName, m.vehicle, mats.vehicle, scene.DefaultVehicleState()))
	vehicle.Transform().SetUniformScale(0.2)
	vehicle.Transform().SetPosition(mgl32.Vec3{0, 0.2, -float32(rows+2) * houseSpacing / 2})

	chaseRig := scene.DefaultCameraRig()
	chaseRig.FreeLook = false
	chase := vehicle.AddChild(scene.NewCamera(ChaseCameraName, chaseRig))
	// Local offset in vehicle scale: behind and above the chassis.
	chase.Transform().SetPosition(mgl32.Vec3{0, 12, -30})
	chase.Transform().SetRotation(mgl32.QuatRotate(math.Pi, mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(-0.25, mgl32.Vec3{1, 0, 0})))

	free := root.AddChild(scene.NewCamera(FreeCameraName, scene.DefaultCameraRig()))
	free.Transform().SetPosition(mgl32.Vec3{0, 8, float32(rows+4) * houseSpacing / 2})

	return g
}

// NewScene uploads the shared assets through the library and assembles the
// graph. The free camera starts active.
func NewScene(lib *assets.Library, program uint32, cfg config.SceneConfig) (*scene.Graph, error) {
	var m sceneMeshes
	var err error

	if m.ground, err = lib.Mesh("ground", func() (*mesh.Mesh, error) {
		return mesh.Upload("ground", mesh.Plane(1, 32))
	}); err != nil {
		return nil, fmt.Errorf("estate: ground mesh: %w", err)
	}
	if m.house, err = lib.Mesh("house", func() (*mesh.Mesh, error) {
		return mesh.Upload("house", mesh.Box(2, 2, 2))
	}); err != nil {
		return nil, fmt.Errorf("estate: house mesh: %w", err)
	}
	if m.roof, err = lib.Mesh("roof", func() (*mesh.Mesh, error) {
		return mesh.Upload("roof", mesh.Wedge(2.4, 1, 2.4))
	}); err != nil {
		return nil, fmt.Errorf("estate: roof mesh: %w", err)
	}
	if m.vehicle, err = lib.Mesh("vehicle", func() (*mesh.Mesh, error) {
		return mesh.Upload("vehicle", mesh.Box(4, 3, 10))
	}); err != nil {
		return nil, fmt.Errorf("estate: vehicle mesh: %w", err)
	}

	grassTex := lib.Texture("grass-checker", func() uint32 {
		return material.CheckerTexture([3]uint8{52, 120, 56}, [3]uint8{44, 104, 48}, 16, 8)
	})

	mats := sceneMaterials{
		ground: lib.Material("ground", func() *material.Material {
			mat := material.New("ground", program, mgl32.Vec4{1, 1, 1, 1})
			mat.Texture = grassTex
			return mat
		}),
		house: lib.Material("house", func() *material.Material {
			return material.New("house", program, mgl32.Vec4{0.85, 0.78, 0.62, 1})
		}),
		roof: lib.Material("roof", func() *material.Material {
			return material.New("roof", program, mgl32.Vec4{0.55, 0.2, 0.16, 1})
		}),
		vehicle: lib.Material("vehicle", func() *material.Material {
			return material.New("vehicle", program, mgl32.Vec4{0.16, 0.3, 0.68, 1})
		}),
	}

	g := assemble(m, mats, cfg.HouseRows, 1)

	free, ok := g.FindByName(FreeCameraName)
	if !ok {
		return nil, fmt.Errorf("estate: free camera missing from assembled graph")
	}
	if err := g.ActivateCamera(free); err != nil {
		return nil, fmt.Errorf("estate: activate free camera: %w", err)
	}
	return g, nil
}
