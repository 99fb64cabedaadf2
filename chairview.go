// Package chairview implements the interaction and camera core of a single-model
// OpenGL viewer. It converts discrete keyboard and mouse events into camera
// position, orientation and projection state that a renderer reads once per frame.
//
// The package performs no I/O besides writing user notifications to a configurable
// writer and does not depend on cgo, so all of its logic is testable without a GPU.
package chairview

import (
	"errors"

	"github.com/soypat/geometry/ms3"
)

const (
	// DefaultWidth and DefaultHeight are the initial window dimensions in pixels.
	DefaultWidth  = 1064
	DefaultHeight = 800

	// Per-event movement speeds.
	defaultPanSpeed    = 0.005
	defaultZoomSpeed   = 0.005
	defaultSensitivity = 0.005
	// forwardRadius scales the derived forward vector. It is not a unit vector.
	forwardRadius = 5.0
	// maxPitch guards against gimbal lock.
	maxPitch = 89.0
)

// ErrInvalidKey is returned by [Controller.KeyDown] for keys with no binding.
var ErrInvalidKey = errors.New("invalid key")

var (
	origin  = ms3.Vec{}
	worldUp = ms3.Vec{Y: 1}
)
