package mesh

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/soypat/geometry/ms3"
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 4*3*4 + 2 // normal and 3 vertices plus attribute count.
)

var errNoTriangles = errors.New("no triangles to write")

// WriteBinarySTL writes triangles to w in binary STL format and returns the
// number of bytes written. Facet normals are computed from vertex winding.
func WriteBinarySTL(w io.Writer, triangles []ms3.Triangle) (int, error) {
	if len(triangles) == 0 {
		return 0, errNoTriangles
	} else if uint64(len(triangles)) > math.MaxUint32 {
		return 0, errors.New("too many triangles for STL")
	}
	var header [stlHeaderSize + 4]byte
	copy(header[:], "binary STL generated by chairview")
	binary.LittleEndian.PutUint32(header[stlHeaderSize:], uint32(len(triangles)))
	n, err := w.Write(header[:])
	if err != nil {
		return n, err
	}
	var buf [stlTriangleSize]byte
	for _, tri := range triangles {
		normal := facetNormal(tri)
		off := putVec(buf[:], normal)
		for _, v := range tri {
			off += putVec(buf[off:], v)
		}
		binary.LittleEndian.PutUint16(buf[off:], 0)
		ngot, err := w.Write(buf[:])
		n += ngot
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func facetNormal(t ms3.Triangle) ms3.Vec {
	n := ms3.Cross(ms3.Sub(t[1], t[0]), ms3.Sub(t[2], t[0]))
	if ms3.Norm(n) == 0 {
		return ms3.Vec{}
	}
	return ms3.Unit(n)
}

func putVec(b []byte, v ms3.Vec) int {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
	return 12
}
