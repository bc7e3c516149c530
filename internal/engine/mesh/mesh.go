package mesh

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// nextID hands out stable mesh identities used as batching keys.
var nextID atomic.Uint64

// Mesh is a mesh uploaded to the GPU. Its ID is stable for the lifetime of
// the process and usable as a batching key.
type Mesh struct {
	id   uint64
	name string

	vao uint32
	vbo uint32
	ebo uint32

	// Per-instance model matrix buffer, created on first instanced draw.
	instanceVBO uint32
	instanceCap int

	indexCount int32
	lines      bool
}

// Upload creates GPU buffers for the given mesh data.
// Must be called with a current OpenGL context.
func Upload(name string, data Data) (*Mesh, error) {
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return nil, fmt.Errorf("mesh %q: empty vertex or index data", name)
	}

	m := &Mesh{
		id:         nextID.Add(1),
		name:       name,
		indexCount: int32(len(data.Indices)),
		lines:      data.Lines,
	}

	flat := data.flatten()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(flat)*4, gl.Ptr(flat), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	// Vertex attributes: position(0), normal(1), uv(2).
	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)

	return m, nil
}

// ID returns the stable mesh identity.
func (m *Mesh) ID() uint64 { return m.id }

// Name returns the mesh name.
func (m *Mesh) Name() string { return m.name }

// DrawInstanced streams one world matrix per instance into the per-instance
// buffer and issues a single instanced draw call for all of them.
func (m *Mesh) DrawInstanced(worlds []mgl32.Mat4) {
	n := len(worlds)
	if n == 0 {
		return
	}

	// Flatten column-major mat4s into one contiguous buffer.
	buf := make([]float32, 0, n*16)
	for _, w := range worlds {
		buf = append(buf, w[:]...)
	}
	m.uploadInstances(buf, n)

	gl.BindVertexArray(m.vao)
	primitive := uint32(gl.TRIANGLES)
	if m.lines {
		primitive = gl.LINES
	}
	gl.DrawElementsInstanced(primitive, m.indexCount, gl.UNSIGNED_INT, nil, int32(n))
	gl.BindVertexArray(0)
}

// uploadInstances uploads the flattened matrices, creating the instance VBO
// and wiring attribute locations 3-6 into the VAO on first use.
func (m *Mesh) uploadInstances(buf []float32, count int) {
	const stride = int32(16 * 4)

	if m.instanceVBO == 0 {
		gl.GenBuffers(1, &m.instanceVBO)
		gl.BindVertexArray(m.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.instanceVBO)

		// Model matrix columns at locations 3-6, advancing per instance.
		for i := uint32(0); i < 4; i++ {
			gl.EnableVertexAttribArray(3 + i)
			gl.VertexAttribPointerWithOffset(3+i, 4, gl.FLOAT, false, stride, uintptr(i)*16)
			gl.VertexAttribDivisor(3+i, 1)
		}
		gl.BindVertexArray(0)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, m.instanceVBO)
	if count > m.instanceCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.DYNAMIC_DRAW)
		m.instanceCap = count
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Destroy releases the GPU buffers.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.instanceVBO != 0 {
		gl.DeleteBuffers(1, &m.instanceVBO)
		m.instanceVBO = 0
		m.instanceCap = 0
	}
}
