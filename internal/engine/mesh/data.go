// Package mesh provides GPU mesh upload and procedural mesh construction.
package mesh

// Vertex is the interleaved vertex format shared by every mesh.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// floatsPerVertex is the interleaved stride in float32 units.
const floatsPerVertex = 8

// Data is a CPU-side mesh: vertices plus triangle (or line) indices.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
	// Lines marks the index list as line segments instead of triangles.
	Lines bool
}

// flatten packs the vertices into the interleaved float32 layout the vertex
// attributes expect: position(3), normal(3), uv(2).
func (d *Data) flatten() []float32 {
	out := make([]float32, 0, len(d.Vertices)*floatsPerVertex)
	for _, v := range d.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1],
		)
	}
	return out
}
