// Package skybox draws a procedural sky cubemap behind the scene. It renders
// after the opaque geometry with a LEQUAL depth test so it only fills pixels
// nothing else touched.
package skybox

import (
	_ "embed"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/solhaug/sceneview/internal/engine/shader"
)

//go:embed skybox.vert
var vertSrc string

//go:embed skybox.frag
var fragSrc string

// Skybox owns the cube geometry, the generated cubemap and its shader.
type Skybox struct {
	program uint32
	vao     uint32
	vbo     uint32
	cubemap uint32

	uView, uProj int32
}

// cube is 36 positions forming a unit cube, drawn without an index buffer.
var cube = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1, 1, -1, -1, 1, 1, -1, -1, 1, -1,
	-1, -1, 1, -1, -1, -1, -1, 1, -1, -1, 1, -1, -1, 1, 1, -1, -1, 1,
	1, -1, -1, 1, -1, 1, 1, 1, 1, 1, 1, 1, 1, 1, -1, 1, -1, -1,
	-1, -1, 1, -1, 1, 1, 1, 1, 1, 1, 1, 1, 1, -1, 1, -1, -1, 1,
	-1, 1, -1, 1, 1, -1, 1, 1, 1, 1, 1, 1, -1, 1, 1, -1, 1, -1,
	-1, -1, -1, -1, -1, 1, 1, -1, -1, 1, -1, -1, -1, -1, 1, 1, -1, 1,
}

// New builds the skybox with a vertical gradient sky: horizon color fading
// to zenith going up and to a darker ground tone going down.
func New(horizon, zenith, ground [3]uint8) (*Skybox, error) {
	program, err := shader.CompileProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("skybox: shader: %w", err)
	}

	s := &Skybox{
		program: program,
		uView:   shader.Uniform(program, "uView"),
		uProj:   shader.Uniform(program, "uProj"),
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cube)*4, gl.Ptr(cube), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	s.cubemap = buildGradientCubemap(horizon, zenith, ground)

	loc := shader.Uniform(program, "uSky")
	gl.UseProgram(program)
	gl.Uniform1i(loc, 0)

	return s, nil
}

// Draw renders the box. The view matrix is stripped of translation so the
// sky stays centered on the camera.
func (s *Skybox) Draw(view, proj mgl32.Mat4) {
	rotOnly := view.Mat3().Mat4()

	gl.DepthFunc(gl.LEQUAL)
	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.uView, 1, false, &rotOnly[0])
	gl.UniformMatrix4fv(s.uProj, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubemap)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)
	gl.DepthFunc(gl.LESS)
}

// Destroy releases the GL objects.
func (s *Skybox) Destroy() {
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.cubemap != 0 {
		gl.DeleteTextures(1, &s.cubemap)
		s.cubemap = 0
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

const faceSize = 64

func buildGradientCubemap(horizon, zenith, ground [3]uint8) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)

	for face := 0; face < 6; face++ {
		pixels := gradientFace(face, horizon, zenith, ground)
		gl.TexImage2D(uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X+face), 0, gl.RGBA,
			faceSize, faceSize, 0, gl.RGBA, gl.UNSIGNED_BYTE,
			unsafe.Pointer(&pixels[0]))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	return tex
}

// gradientFace fills one cubemap face, shading each pixel by the Y component
// of its direction vector.
func gradientFace(face int, horizon, zenith, ground [3]uint8) []uint8 {
	pixels := make([]uint8, faceSize*faceSize*4)
	for py := 0; py < faceSize; py++ {
		for px := 0; px < faceSize; px++ {
			u := 2*(float32(px)+0.5)/faceSize - 1
			v := 2*(float32(py)+0.5)/faceSize - 1
			dir := faceDirection(face, u, v).Normalize()

			var c [3]uint8
			if y := dir.Y(); y >= 0 {
				c = lerpColor(horizon, zenith, y)
			} else {
				c = lerpColor(horizon, ground, -y)
			}

			i := (py*faceSize + px) * 4
			pixels[i] = c[0]
			pixels[i+1] = c[1]
			pixels[i+2] = c[2]
			pixels[i+3] = 255
		}
	}
	return pixels
}

// faceDirection maps face-local (u, v) to the cubemap direction per the GL
// face orientation rules.
func faceDirection(face int, u, v float32) mgl32.Vec3 {
	switch face {
	case 0: // +X
		return mgl32.Vec3{1, -v, -u}
	case 1: // -X
		return mgl32.Vec3{-1, -v, u}
	case 2: // +Y
		return mgl32.Vec3{u, 1, v}
	case 3: // -Y
		return mgl32.Vec3{u, -1, -v}
	case 4: // +Z
		return mgl32.Vec3{u, -v, 1}
	default: // -Z
		return mgl32.Vec3{-u, -v, -1}
	}
}

func lerpColor(a, b [3]uint8, t float32) [3]uint8 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	var out [3]uint8
	for i := range out {
		out[i] = uint8(float32(a[i]) + (float32(b[i])-float32(a[i]))*t)
	}
	return out
}
