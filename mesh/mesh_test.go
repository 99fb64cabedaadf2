package mesh

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

func TestLayout(t *testing.T) {
	if NumVertices() != 24 {
		t.Error("expected 24 vertices, got", NumVertices())
	}
	if NumIndices() != 132 || NumIndices()%3 != 0 {
		t.Error("expected 44 triangles, got indices", NumIndices())
	}
	for i, idx := range Indices() {
		if int(idx) >= NumVertices() {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}
	if UVOffset+2 != Stride {
		t.Error("texture coordinates must end the vertex")
	}
	v := Vertices()
	v[0] = 1000
	if Position(0).X == 1000 {
		t.Error("Vertices must return a copy")
	}
}

func TestBounds(t *testing.T) {
	bb := Bounds()
	want := ms3.Box{
		Min: ms3.Vec{X: -0.5, Y: -0.8, Z: -0.45},
		Max: ms3.Vec{X: 0.5, Y: 0.9, Z: 0.45},
	}
	if bb != want {
		t.Error("unexpected bounds", bb, want)
	}
}

func TestTriangles(t *testing.T) {
	tris := Triangles(mgl32.Ident4())
	if len(tris) != NumIndices()/3 {
		t.Fatal("triangle count mismatch", len(tris))
	}
	if tris[0][0] != Position(0) || tris[0][2] != Position(13) {
		t.Error("first triangle vertices mismatch", tris[0])
	}
	moved := Triangles(mgl32.Translate3D(1, 2, 3))
	got := moved[0][0]
	want := ms3.Add(Position(0), ms3.Vec{X: 1, Y: 2, Z: 3})
	if ms3.Norm(ms3.Sub(got, want)) > 1e-6 {
		t.Error("transform not applied", got, want)
	}
}

func TestWriteBinarySTL(t *testing.T) {
	tris := Triangles(mgl32.Ident4())
	var buf bytes.Buffer
	n, err := WriteBinarySTL(&buf, tris)
	if err != nil {
		t.Fatal(err)
	}
	wantSize := stlHeaderSize + 4 + len(tris)*stlTriangleSize
	if n != wantSize || buf.Len() != wantSize {
		t.Fatalf("wrote %d bytes (buffer %d), want %d", n, buf.Len(), wantSize)
	}
	b := buf.Bytes()
	count := binary.LittleEndian.Uint32(b[stlHeaderSize:])
	if int(count) != len(tris) {
		t.Error("bad triangle count in header", count)
	}
	first := b[stlHeaderSize+4:]
	v0x := math.Float32frombits(binary.LittleEndian.Uint32(first[12:]))
	if v0x != tris[0][0].X {
		t.Error("first vertex not written after normal", v0x)
	}

	_, err = WriteBinarySTL(&buf, nil)
	if err == nil {
		t.Error("expected error writing empty triangle set")
	}
}

func TestFacetNormal(t *testing.T) {
	tri := ms3.Triangle{{}, {X: 1}, {Y: 1}}
	if n := facetNormal(tri); n != (ms3.Vec{Z: 1}) {
		t.Error("expected +Z normal for counter clockwise triangle, got", n)
	}
	degenerate := ms3.Triangle{{}, {X: 1}, {X: 2}}
	if n := facetNormal(degenerate); n != (ms3.Vec{}) {
		t.Error("expected zero normal for degenerate triangle, got", n)
	}
}
