// Package material provides shader/texture/color bundles used as batching keys.
package material

import (
	"sync/atomic"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var nextID atomic.Uint64

// Material bundles a shader program with a base color and an optional
// texture. Its ID is stable and usable as a batching key; the renderer never
// mutates a material, so one instance can be shared across any number of
// scene nodes.
type Material struct {
	id      uint64
	name    string
	program uint32

	Color   mgl32.Vec4
	Texture uint32 // 0 = untextured
}

// New creates a material for the given shader program.
func New(name string, program uint32, color mgl32.Vec4) *Material {
	return &Material{
		id:      nextID.Add(1),
		name:    name,
		program: program,
		Color:   color,
	}
}

// ID returns the stable material identity.
func (m *Material) ID() uint64 { return m.id }

// Name returns the material name.
func (m *Material) Name() string { return m.name }

// Program returns the shader program handle.
func (m *Material) Program() uint32 { return m.program }

// CheckerTexture builds a two-color checkerboard texture. cells is the number
// of squares per side. Must be called with a current OpenGL context.
func CheckerTexture(a, b [3]uint8, cells, cellPixels int) uint32 {
	size := cells * cellPixels
	pixels := make([]uint8, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cellPixels+y/cellPixels)%2 == 1 {
				c = b
			}
			i := (y*size + x) * 4
			pixels[i+0] = c[0]
			pixels[i+1] = c[1]
			pixels[i+2] = c[2]
			pixels[i+3] = 255
		}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size), int32(size), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
