// Package render draws the scene: submissions collected during the draw
// traversal are grouped by mesh and material, then flushed as instanced
// draw calls.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/solhaug/sceneview/internal/engine/debug"
	"github.com/solhaug/sceneview/internal/engine/lighting"
	"github.com/solhaug/sceneview/internal/engine/material"
	"github.com/solhaug/sceneview/internal/engine/mesh"
	"github.com/solhaug/sceneview/internal/engine/render/shaders"
	"github.com/solhaug/sceneview/internal/engine/shader"
)

// FrameStats reports what the last Flush did.
type FrameStats struct {
	Batches   int
	DrawCalls int
	Instances int
}

// Renderer batches scene submissions and issues instanced draws. It
// implements scene.DrawTarget.
type Renderer struct {
	program      uint32
	maxInstances int
	lights       *lighting.Lights

	batches *batchList
	stats   FrameStats

	uniforms modelUniforms
}

// modelUniforms caches the locations looked up once at startup.
type modelUniforms struct {
	view, proj       int32
	color            int32
	useTexture       int32
	cameraPos        int32
	sunDir, sunColor int32

	bulbPos, bulbColor, bulbLinear, bulbQuadratic int32

	spots [2]spotUniforms
}

type spotUniforms struct {
	pos, dir, color, linear, quadratic, cutOff, outerCutOff int32
}

// New compiles the model shader and prepares an empty batch list.
// maxInstances caps the instance count of a single draw call; larger batches
// are split, never truncated.
func New(lights *lighting.Lights, maxInstances int) (*Renderer, error) {
	if maxInstances < 1 {
		return nil, fmt.Errorf("render: maxInstances must be >= 1, got %d", maxInstances)
	}
	program, err := shader.CompileProgram(shaders.InstancedVert, shaders.ModelFrag)
	if err != nil {
		return nil, fmt.Errorf("render: model shader: %w", err)
	}

	r := &Renderer{
		program:      program,
		maxInstances: maxInstances,
		lights:       lights,
		batches:      newBatchList(),
	}
	r.lookupUniforms()
	return r, nil
}

func (r *Renderer) lookupUniforms() {
	loc := func(name string) int32 {
		return shader.Uniform(r.program, name)
	}
	u := &r.uniforms
	u.view = loc("uView")
	u.proj = loc("uProj")
	u.color = loc("uColor")
	u.useTexture = loc("uUseTexture")
	u.cameraPos = loc("uCameraPos")
	u.sunDir = loc("uSun.direction")
	u.sunColor = loc("uSun.color")
	u.bulbPos = loc("uBulb.position")
	u.bulbColor = loc("uBulb.color")
	u.bulbLinear = loc("uBulb.linear")
	u.bulbQuadratic = loc("uBulb.quadratic")
	for i := range u.spots {
		prefix := fmt.Sprintf("uSpots[%d].", i)
		u.spots[i] = spotUniforms{
			pos:         loc(prefix + "position"),
			dir:         loc(prefix + "direction"),
			color:       loc(prefix + "color"),
			linear:      loc(prefix + "linear"),
			quadratic:   loc(prefix + "quadratic"),
			cutOff:      loc(prefix + "cutOff"),
			outerCutOff: loc(prefix + "outerCutOff"),
		}
	}
}

// Program exposes the model shader for material construction.
func (r *Renderer) Program() uint32 { return r.program }

// Submit queues one model for this frame. Called by the scene graph during
// the draw traversal.
func (r *Renderer) Submit(m *mesh.Mesh, mat *material.Material, world mgl32.Mat4) {
	r.batches.add(m, mat, world)
}

// Flush draws everything submitted since the previous flush and clears the
// queue. view/proj come from the active camera, camPos is its world
// position.
func (r *Renderer) Flush(view, proj mgl32.Mat4, camPos mgl32.Vec3) FrameStats {
	r.stats = FrameStats{}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uniforms.view, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uniforms.proj, 1, false, &proj[0])
	gl.Uniform3f(r.uniforms.cameraPos, camPos.X(), camPos.Y(), camPos.Z())
	r.uploadLights()

	r.batches.each(r.maxInstances, func(b *batch, worlds []mgl32.Mat4) {
		r.stats.DrawCalls++
		r.stats.Instances += len(worlds)
		r.bindMaterial(b.material)
		b.mesh.DrawInstanced(worlds)
	})
	r.stats.Batches = len(r.batches.keys)
	r.batches.reset()

	debug.CheckGL("render.Flush")
	return r.stats
}

// Stats returns the counters from the most recent Flush.
func (r *Renderer) Stats() FrameStats { return r.stats }

func (r *Renderer) bindMaterial(mat *material.Material) {
	color := mgl32.Vec4{1, 1, 1, 1}
	var texture uint32
	if mat != nil {
		color = mat.Color
		texture = mat.Texture
	}
	gl.Uniform4f(r.uniforms.color, color.X(), color.Y(), color.Z(), color.W())
	if texture != 0 {
		gl.Uniform1i(r.uniforms.useTexture, 1)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, texture)
	} else {
		gl.Uniform1i(r.uniforms.useTexture, 0)
	}
}

func (r *Renderer) uploadLights() {
	u := &r.uniforms

	sun := r.lights.Sun()
	gl.Uniform3f(u.sunDir, sun.Direction.X(), sun.Direction.Y(), sun.Direction.Z())
	gl.Uniform4f(u.sunColor, sun.Color.X(), sun.Color.Y(), sun.Color.Z(), sun.Color.W())

	bulb := r.lights.Bulb()
	gl.Uniform3f(u.bulbPos, bulb.Position.X(), bulb.Position.Y(), bulb.Position.Z())
	gl.Uniform4f(u.bulbColor, bulb.Color.X(), bulb.Color.Y(), bulb.Color.Z(), bulb.Color.W())
	gl.Uniform1f(u.bulbLinear, bulb.Linear)
	gl.Uniform1f(u.bulbQuadratic, bulb.Quadratic)

	spots := [2]lighting.SpotLight{r.lights.SpotLightOne(), r.lights.SpotLightTwo()}
	for i, s := range spots {
		su := u.spots[i]
		gl.Uniform3f(su.pos, s.Position.X(), s.Position.Y(), s.Position.Z())
		gl.Uniform3f(su.dir, s.Direction.X(), s.Direction.Y(), s.Direction.Z())
		gl.Uniform4f(su.color, s.Color.X(), s.Color.Y(), s.Color.Z(), s.Color.W())
		gl.Uniform1f(su.linear, s.Linear)
		gl.Uniform1f(su.quadratic, s.Quadratic)
		gl.Uniform1f(su.cutOff, s.CosCutOff())
		gl.Uniform1f(su.outerCutOff, s.CosOuterCutOff())
	}
}

// Destroy releases the shader program.
func (r *Renderer) Destroy() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
