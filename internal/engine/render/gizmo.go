package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/solhaug/sceneview/internal/engine/lighting"
	"github.com/solhaug/sceneview/internal/engine/mesh"
	"github.com/solhaug/sceneview/internal/engine/render/shaders"
	"github.com/solhaug/sceneview/internal/engine/shader"
)

// GizmoRenderer draws wire-sphere markers at the positioned lights so they
// can be located while tuning. Drawn after the scene, before the skybox.
type GizmoRenderer struct {
	program uint32
	sphere  *mesh.Mesh

	uView, uProj, uColor int32
}

// NewGizmos compiles the flat shader and uploads the shared marker mesh.
func NewGizmos() (*GizmoRenderer, error) {
	program, err := shader.CompileProgram(shaders.FlatVert, shaders.FlatFrag)
	if err != nil {
		return nil, fmt.Errorf("render: flat shader: %w", err)
	}
	sphere, err := mesh.Upload("light-gizmo", mesh.WireSphere(0.25, 16))
	if err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("render: gizmo mesh: %w", err)
	}
	return &GizmoRenderer{
		program: program,
		sphere:  sphere,
		uView:   shader.Uniform(program, "uView"),
		uProj:   shader.Uniform(program, "uProj"),
		uColor:  shader.Uniform(program, "uColor"),
	}, nil
}

// Draw renders a marker for the bulb and each spotlight.
func (g *GizmoRenderer) Draw(view, proj mgl32.Mat4, lights *lighting.Lights) {
	gl.UseProgram(g.program)
	gl.UniformMatrix4fv(g.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(g.uProj, 1, false, &proj[0])

	bulb := lights.Bulb()
	g.marker(bulb.Position, bulb.Color)
	for _, s := range []lighting.SpotLight{lights.SpotLightOne(), lights.SpotLightTwo()} {
		g.marker(s.Position, s.Color)
	}
}

func (g *GizmoRenderer) marker(pos mgl32.Vec3, color mgl32.Vec4) {
	gl.Uniform4f(g.uColor, color.X(), color.Y(), color.Z(), 1)
	world := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	g.sphere.DrawInstanced([]mgl32.Mat4{world})
}

// Destroy releases the marker mesh and shader.
func (g *GizmoRenderer) Destroy() {
	if g.sphere != nil {
		g.sphere.Destroy()
		g.sphere = nil
	}
	if g.program != 0 {
		gl.DeleteProgram(g.program)
		g.program = 0
	}
}
