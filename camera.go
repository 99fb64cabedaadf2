package chairview

import (
	math "github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glgl/math/ms1"
)

// PanDirection is a view-plane translation direction.
type PanDirection uint8

const (
	PanNone PanDirection = iota
	PanLeft
	PanRight
	PanUp
	PanDown
)

func (d PanDirection) String() string {
	switch d {
	case PanNone:
		return "none"
	case PanLeft:
		return "left"
	case PanRight:
		return "right"
	case PanUp:
		return "up"
	case PanDown:
		return "down"
	}
	return "PanDirection(?)"
}

// CameraConfig configures a [Camera]. Zero fields take default values.
type CameraConfig struct {
	// PanSpeed is the distance moved per tick while a pan key is held.
	PanSpeed float32
	// ZoomSpeed is the distance moved along forward per zoom event.
	ZoomSpeed float32
	// Sensitivity scales cursor deltas in pixels into yaw/pitch increments.
	Sensitivity float32
	// RadianAngles converts the accumulated yaw and pitch from degrees to radians
	// before evaluating the forward vector. When false the accumulated values are
	// passed to sin/cos unconverted and orbiting is roughly 57 times faster.
	RadianAngles bool
}

// Camera holds the viewer's eye state. The forward vector is always derived
// from yaw and pitch and cannot be set directly.
type Camera struct {
	position ms3.Vec
	forward  ms3.Vec
	up       ms3.Vec
	// yaw and pitch are accumulated in degrees. pitch is kept within ±89.
	yaw, pitch float32

	panSpeed    float32
	zoomSpeed   float32
	sensitivity float32
	radians     bool
}

// NewCamera returns a camera at the origin with yaw and pitch zeroed.
func NewCamera(cfg CameraConfig) *Camera {
	var c Camera
	c.Configure(cfg)
	return &c
}

// Configure resets the camera to its initial state and applies cfg.
func (c *Camera) Configure(cfg CameraConfig) {
	if cfg.PanSpeed == 0 {
		cfg.PanSpeed = defaultPanSpeed
	}
	if cfg.ZoomSpeed == 0 {
		cfg.ZoomSpeed = defaultZoomSpeed
	}
	if cfg.Sensitivity == 0 {
		cfg.Sensitivity = defaultSensitivity
	}
	*c = Camera{
		position:    origin,
		up:          worldUp,
		panSpeed:    cfg.PanSpeed,
		zoomSpeed:   cfg.ZoomSpeed,
		sensitivity: cfg.Sensitivity,
		radians:     cfg.RadianAngles,
	}
	c.UpdateForward()
}

// Position returns the camera position, which is also the look-at target.
func (c *Camera) Position() ms3.Vec { return c.position }

// Forward returns the derived forward vector. Its magnitude is not normalized.
func (c *Camera) Forward() ms3.Vec { return c.forward }

// Up returns the constant world up vector.
func (c *Camera) Up() ms3.Vec { return c.up }

// Angles returns the accumulated yaw and pitch.
func (c *Camera) Angles() (yaw, pitch float32) { return c.yaw, c.pitch }

// SetPosition moves the camera to p.
func (c *Camera) SetPosition(p ms3.Vec) { c.position = p }

// SetAngles sets yaw and pitch, clamping pitch, and recomputes forward.
func (c *Camera) SetAngles(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)
	c.UpdateForward()
}

// Pan translates the camera one step in the view plane. Right is the normalized
// cross product of forward and up. No bounds are enforced.
func (c *Camera) Pan(dir PanDirection) {
	switch dir {
	case PanLeft, PanRight:
		right := ms3.Cross(c.forward, c.up)
		if ms3.Norm(right) == 0 {
			return // forward parallel to up, no defined view plane.
		}
		step := ms3.Scale(c.panSpeed, ms3.Unit(right))
		if dir == PanLeft {
			c.position = ms3.Sub(c.position, step)
		} else {
			c.position = ms3.Add(c.position, step)
		}
	case PanUp:
		c.position = ms3.Sub(c.position, ms3.Scale(c.panSpeed, c.up))
	case PanDown:
		c.position = ms3.Add(c.position, ms3.Scale(c.panSpeed, c.up))
	}
}

// Reset moves the camera back to the origin. Orientation is kept.
func (c *Camera) Reset() {
	c.position = origin
}

// Orbit accumulates a cursor delta in pixels into yaw and pitch. Moving the
// cursor up (negative dy) increases pitch.
func (c *Camera) Orbit(dx, dy float32) {
	xoff := dx * c.sensitivity
	yoff := -dy * c.sensitivity
	c.yaw += xoff
	c.pitch = clampPitch(c.pitch + yoff)
	c.UpdateForward()
}

// Zoom moves the camera along forward. dy is lastY-y: positive when the cursor
// moved up, which moves towards +forward.
func (c *Camera) Zoom(dy float32) {
	step := ms3.Scale(c.zoomSpeed, c.forward)
	switch {
	case dy > 0:
		c.position = ms3.Add(c.position, step)
	case dy < 0:
		c.position = ms3.Sub(c.position, step)
	}
}

// UpdateForward recomputes forward from yaw and pitch.
func (c *Camera) UpdateForward() {
	yaw, pitch := c.yaw, c.pitch
	if c.radians {
		yaw *= math.Pi / 180
		pitch *= math.Pi / 180
	}
	c.forward = ms3.Vec{
		X: forwardRadius * math.Cos(yaw),
		Y: forwardRadius * math.Sin(pitch),
		Z: forwardRadius * math.Sin(yaw) * math.Cos(pitch),
	}
}

// ViewMatrix returns lookAt(position-forward, position, up).
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	eye := ms3.Sub(c.position, c.forward)
	return mgl32.LookAtV(vec3(eye), vec3(c.position), vec3(c.up))
}

func clampPitch(pitch float32) float32 {
	return ms1.Clamp(pitch, -maxPitch, maxPitch)
}

func vec3(v ms3.Vec) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
