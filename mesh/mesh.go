// Package mesh holds the static chair geometry in the interleaved layout the
// viewer uploads to the GPU, and exports it as STL.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

// Vertex layout in float32 elements.
const (
	PositionOffset = 0
	NormalOffset   = 3
	UVOffset       = 6
	// Stride is the number of float32 per vertex.
	Stride = 8
	// SizeofFloat is the size in bytes of a vertex element.
	SizeofFloat = 4
)

// Zig zag chair. Each row is position, normal, texture coordinate.
var vertices = [...]float32{
	0.45, -0.80, 0.35, -1.0, 1.0, -1.0, 1.0, 0.0, // 0
	0.45, -0.75, 0.35, -1.0, 1.0, -1.0, 0.0, 0.0, // 1
	-0.30, -0.75, 0.35, 1.0, 1.0, -1.0, 0.0, 1.0, // 2
	-0.35, -0.70, 0.35, 1.0, 1.0, -1.0, 0.0, 1.0, // 3
	0.50, 0.20, 0.45, -1.0, -1.0, -1.0, 0.0, 0.0, // 4
	-0.35, 0.20, 0.35, 1.0, -1.0, -1.0, 0.0, 1.0, // 5
	-0.45, 0.90, 0.35, 1.0, -1.0, -1.0, 0.0, 0.0, // 6
	-0.50, 0.90, 0.35, 1.0, -1.0, -1.0, 0.0, 1.0, // 7
	-0.40, 0.15, 0.35, 1.0, -1.0, -1.0, 1.0, 1.0, // 8
	0.30, 0.15, 0.45, -1.0, -1.0, -1.0, 1.0, 0.0, // 9
	0.35, 0.10, 0.45, -1.0, -1.0, -1.0, 0.0, 0.0, // 10
	-0.50, -0.80, 0.35, 1.0, 1.0, -1.0, 0.0, 1.0, // 11
	0.45, -0.80, -0.35, -1.0, 1.0, -1.0, 0.0, 0.0, // 12
	0.45, -0.75, -0.35, -1.0, 1.0, 1.0, 1.0, 0.0, // 13
	-0.30, -0.75, -0.35, -1.0, 1.0, 1.0, 1.0, 1.0, // 14
	-0.35, -0.70, -0.35, 1.0, 1.0, 1.0, 1.0, 1.0, // 15
	0.50, 0.20, -0.45, -1.0, 1.0, 1.0, 1.0, 0.0, // 16
	-0.35, 0.20, -0.35, 1.0, -1.0, 1.0, 1.0, 1.0, // 17
	-0.45, 0.90, -0.35, 1.0, -1.0, 1.0, 1.0, 0.0, // 18
	-0.50, 0.90, -0.35, 1.0, -1.0, 1.0, 1.0, 1.0, // 19
	-0.40, 0.15, -0.35, 1.0, -1.0, 1.0, 0.0, 1.0, // 20
	0.30, 0.15, -0.45, -1.0, 1.0, 1.0, 0.0, 0.0, // 21
	0.35, 0.10, -0.45, -1.0, 1.0, 1.0, 1.0, 0.0, // 22
	-0.50, -0.80, -0.35, 1.0, 1.0, 1.0, 1.0, 1.0, // 23
}

var indices = [...]uint32{
	// Base.
	0, 1, 13,
	0, 12, 13,
	0, 11, 2,
	0, 1, 2,
	1, 2, 14,
	1, 13, 14,
	12, 23, 14,
	12, 13, 14,
	0, 11, 23,
	0, 12, 23,
	// Leg.
	2, 3, 15,
	2, 14, 15,
	2, 11, 3,
	3, 4, 16,
	3, 15, 16,
	3, 11, 10,
	3, 4, 10,
	4, 9, 10,
	14, 23, 15,
	15, 23, 22,
	15, 16, 22,
	16, 21, 22,
	11, 10, 22,
	11, 23, 22,
	9, 10, 22,
	9, 21, 22,
	// Seat.
	4, 5, 17,
	4, 16, 17,
	4, 5, 8,
	4, 9, 8,
	16, 17, 20,
	16, 21, 20,
	9, 8, 20,
	9, 21, 20,
	// Back.
	5, 6, 18,
	5, 17, 18,
	5, 8, 7,
	5, 6, 7,
	17, 20, 19,
	17, 18, 19,
	8, 20, 19,
	8, 7, 19,
	6, 7, 19,
	6, 18, 19,
}

// Vertices returns a copy of the interleaved vertex data.
func Vertices() []float32 {
	return append([]float32{}, vertices[:]...)
}

// Indices returns a copy of the triangle index data.
func Indices() []uint32 {
	return append([]uint32{}, indices[:]...)
}

// NumVertices is the number of distinct vertices.
func NumVertices() int { return len(vertices) / Stride }

// NumIndices is the number of indices, three per triangle.
func NumIndices() int { return len(indices) }

// Position returns the position of vertex i.
func Position(i int) ms3.Vec {
	v := vertices[i*Stride+PositionOffset:]
	return ms3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Bounds returns the axis aligned bounding box of the untransformed chair.
func Bounds() ms3.Box {
	bb := ms3.Box{Min: Position(0), Max: Position(0)}
	for i := 1; i < NumVertices(); i++ {
		p := Position(i)
		bb.Min = ms3.MinElem(bb.Min, p)
		bb.Max = ms3.MaxElem(bb.Max, p)
	}
	return bb
}

// Triangles returns the chair's triangles with transform applied to every vertex.
func Triangles(transform mgl32.Mat4) []ms3.Triangle {
	tris := make([]ms3.Triangle, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		var tri ms3.Triangle
		for j := range tri {
			p := Position(int(indices[i+j]))
			w := transform.Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
			tri[j] = ms3.Vec{X: w[0], Y: w[1], Z: w[2]}
		}
		tris = append(tris, tri)
	}
	return tris
}
