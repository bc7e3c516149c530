package mesh

import "math"

// Primitive builders. All meshes are centered on the origin unless noted and
// carry per-face normals plus planar UVs, so they light and texture correctly
// without any asset files.

// quad appends a quad (two triangles) built from four corners in
// counter-clockwise order, all sharing one face normal.
func (d *Data) quad(a, b, c, e [3]float32, normal [3]float32) {
	base := uint32(len(d.Vertices))
	d.Vertices = append(d.Vertices,
		Vertex{Position: a, Normal: normal, UV: [2]float32{0, 0}},
		Vertex{Position: b, Normal: normal, UV: [2]float32{1, 0}},
		Vertex{Position: c, Normal: normal, UV: [2]float32{1, 1}},
		Vertex{Position: e, Normal: normal, UV: [2]float32{0, 1}},
	)
	d.Indices = append(d.Indices, base, base+1, base+2, base, base+2, base+3)
}

// tri appends a single triangle with one face normal.
func (d *Data) tri(a, b, c [3]float32, normal [3]float32) {
	base := uint32(len(d.Vertices))
	d.Vertices = append(d.Vertices,
		Vertex{Position: a, Normal: normal, UV: [2]float32{0, 0}},
		Vertex{Position: b, Normal: normal, UV: [2]float32{1, 0}},
		Vertex{Position: c, Normal: normal, UV: [2]float32{0.5, 1}},
	)
	d.Indices = append(d.Indices, base, base+1, base+2)
}

// Plane returns a size x size ground plane in the XZ plane, facing +Y.
// uvRepeat tiles the texture across the plane.
func Plane(size, uvRepeat float32) Data {
	h := size / 2
	d := Data{}
	base := uint32(len(d.Vertices))
	up := [3]float32{0, 1, 0}
	d.Vertices = append(d.Vertices,
		Vertex{Position: [3]float32{-h, 0, -h}, Normal: up, UV: [2]float32{0, 0}},
		Vertex{Position: [3]float32{-h, 0, h}, Normal: up, UV: [2]float32{0, uvRepeat}},
		Vertex{Position: [3]float32{h, 0, h}, Normal: up, UV: [2]float32{uvRepeat, uvRepeat}},
		Vertex{Position: [3]float32{h, 0, -h}, Normal: up, UV: [2]float32{uvRepeat, 0}},
	)
	d.Indices = append(d.Indices, base, base+1, base+2, base, base+2, base+3)
	return d
}

// Box returns an axis-aligned box with the given extents.
func Box(width, height, depth float32) Data {
	x, y, z := width/2, height/2, depth/2
	d := Data{}

	// +Z / -Z
	d.quad([3]float32{-x, -y, z}, [3]float32{x, -y, z}, [3]float32{x, y, z}, [3]float32{-x, y, z}, [3]float32{0, 0, 1})
	d.quad([3]float32{x, -y, -z}, [3]float32{-x, -y, -z}, [3]float32{-x, y, -z}, [3]float32{x, y, -z}, [3]float32{0, 0, -1})
	// +X / -X
	d.quad([3]float32{x, -y, z}, [3]float32{x, -y, -z}, [3]float32{x, y, -z}, [3]float32{x, y, z}, [3]float32{1, 0, 0})
	d.quad([3]float32{-x, -y, -z}, [3]float32{-x, -y, z}, [3]float32{-x, y, z}, [3]float32{-x, y, -z}, [3]float32{-1, 0, 0})
	// +Y / -Y
	d.quad([3]float32{-x, y, z}, [3]float32{x, y, z}, [3]float32{x, y, -z}, [3]float32{-x, y, -z}, [3]float32{0, 1, 0})
	d.quad([3]float32{-x, -y, -z}, [3]float32{x, -y, -z}, [3]float32{x, -y, z}, [3]float32{-x, -y, z}, [3]float32{0, -1, 0})

	return d
}

// Wedge returns a triangular prism: a width x depth footprint with a ridge
// of the given height running along X, sitting on y=0. Used for roofs.
func Wedge(width, height, depth float32) Data {
	x, z := width/2, depth/2
	d := Data{}

	// Slope normals: the two sloped quads face +Z/-Z tilted up by the pitch.
	slope := float32(math.Hypot(float64(height), float64(z)))
	ny := z / slope
	nz := height / slope

	// +Z slope
	d.quad(
		[3]float32{-x, 0, z}, [3]float32{x, 0, z},
		[3]float32{x, height, 0}, [3]float32{-x, height, 0},
		[3]float32{0, ny, nz},
	)
	// -Z slope
	d.quad(
		[3]float32{x, 0, -z}, [3]float32{-x, 0, -z},
		[3]float32{-x, height, 0}, [3]float32{x, height, 0},
		[3]float32{0, ny, -nz},
	)
	// Gable ends
	d.tri([3]float32{x, 0, z}, [3]float32{x, 0, -z}, [3]float32{x, height, 0}, [3]float32{1, 0, 0})
	d.tri([3]float32{-x, 0, -z}, [3]float32{-x, 0, z}, [3]float32{-x, height, 0}, [3]float32{-1, 0, 0})
	// Bottom
	d.quad([3]float32{-x, 0, -z}, [3]float32{x, 0, -z}, [3]float32{x, 0, z}, [3]float32{-x, 0, z}, [3]float32{0, -1, 0})

	return d
}

// WireSphere returns three axis-aligned great circles as line segments,
// used for light gizmo markers.
func WireSphere(radius float32, segments int) Data {
	if segments < 3 {
		segments = 3
	}
	d := Data{Lines: true}

	circle := func(axis int) {
		base := uint32(len(d.Vertices))
		for i := 0; i < segments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(segments)
			c := float32(math.Cos(angle)) * radius
			s := float32(math.Sin(angle)) * radius
			var p [3]float32
			switch axis {
			case 0: // YZ circle
				p = [3]float32{0, c, s}
			case 1: // XZ circle
				p = [3]float32{c, 0, s}
			default: // XY circle
				p = [3]float32{c, s, 0}
			}
			n := p
			d.Vertices = append(d.Vertices, Vertex{Position: p, Normal: n})
		}
		for i := 0; i < segments; i++ {
			d.Indices = append(d.Indices, base+uint32(i), base+uint32((i+1)%segments))
		}
	}

	circle(0)
	circle(1)
	circle(2)
	return d
}
