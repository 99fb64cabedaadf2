package chairview

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects how the scene is projected onto the viewport.
// It also decides which mouse gestures drive the camera, see [Controller.MouseMove].
type ProjectionMode uint8

const (
	Perspective ProjectionMode = iota
	Orthographic
)

const (
	fovyDegrees = 45.0
	orthoExtent = 3.0
	nearPlane   = 0.1
	farPlane    = 100.0
)

func (m ProjectionMode) String() string {
	switch m {
	case Perspective:
		return "Perspective"
	case Orthographic:
		return "Orthographic"
	}
	return "ProjectionMode(?)"
}

// ProjectionMatrix derives the projection matrix for mode. The orthographic box
// has fixed extents and ignores aspect, so non-square viewports stretch the scene.
func ProjectionMatrix(mode ProjectionMode, aspect float32) mgl32.Mat4 {
	if mode == Orthographic {
		return mgl32.Ortho(-orthoExtent, orthoExtent, -orthoExtent, orthoExtent, nearPlane, farPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(fovyDegrees), aspect, nearPlane, farPlane)
}

// AspectRatio returns width/height, or 1 for degenerate dimensions such as a
// minimized window.
func AspectRatio(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// modeKey maps the projection selection keys to their mode.
func modeKey(key rune) (ProjectionMode, bool) {
	switch key {
	case KeyOrthographic:
		return Orthographic, true
	case KeyPerspective:
		return Perspective, true
	}
	return 0, false
}
