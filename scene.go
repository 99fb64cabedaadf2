package chairview

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

// PolygonMode is the rasterization mode of the chair.
type PolygonMode uint8

const (
	PolygonFill PolygonMode = iota
	PolygonLine
)

func (p PolygonMode) String() string {
	if p == PolygonLine {
		return "wireframe"
	}
	return "solid"
}

// Light is a static point light. It is drawn as a small copy of the model.
type Light struct {
	Position ms3.Vec
	Color    ms3.Vec
	Scale    float32
}

var sceneLights = [2]Light{
	{Position: ms3.Vec{X: -4, Y: 2, Z: -5}, Color: ms3.Vec{X: 1, Y: 1, Z: 0}, Scale: 0.3},
	{Position: ms3.Vec{X: 4, Y: -2, Z: 5}, Color: ms3.Vec{X: 0.8, Y: 0.4, Z: 0.6}, Scale: 0.3},
}

// ClearColor is the RGBA background color.
var ClearColor = [4]float32{0.9, 0.9, 0.9, 0.5}

// Lights returns the key and fill lights.
func Lights() [2]Light { return sceneLights }

// ModelMatrix places the chair at the origin turned 180° about Y and doubled in size.
func ModelMatrix() mgl32.Mat4 {
	return mgl32.Ident4().
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(180))).
		Mul4(mgl32.Scale3D(2, 2, 2))
}

// LampModel returns the model matrix of the marker drawn for l.
func LampModel(l Light) mgl32.Mat4 {
	return ModelMatrix().
		Mul4(mgl32.Translate3D(l.Position.X, l.Position.Y, l.Position.Z)).
		Mul4(mgl32.Scale3D(l.Scale, l.Scale, l.Scale))
}
