package chairview

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
)

// InteractionState is all mutable viewer state. It is owned by a [Controller]
// which is its only writer; the renderer reads it once per frame.
type InteractionState struct {
	Camera Camera
	Input  InputState
	// Mode is the active projection. requested is the selection made by the last
	// projection key press and becomes Mode when a key is released.
	Mode      ProjectionMode
	requested ProjectionMode
	Wireframe bool
	ShowHelp  bool
}

// ControllerConfig configures a [Controller]. The zero value is usable.
type ControllerConfig struct {
	Camera CameraConfig
	// Output receives user notifications such as mode changes. Defaults to os.Stdout.
	// Use io.Discard to silence the controller.
	Output io.Writer
	// Width and Height of the window, used to place the initial cursor sample
	// at the window center. Default to DefaultWidth and DefaultHeight.
	Width, Height int
	// StickyButtons ignores mouse button releases so that the last pressed button
	// stays recorded as down until another button is pressed.
	StickyButtons bool
}

// Controller maps window events onto an [InteractionState]. Events and Tick
// must be called from a single goroutine, normally the one running the window's
// event loop. Controller is not safe for concurrent use.
type Controller struct {
	state  InteractionState
	out    io.Writer
	sticky bool
}

// NewController returns a controller in perspective mode with solid fill.
func NewController(cfg ControllerConfig) *Controller {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = DefaultWidth, DefaultHeight
	}
	c := &Controller{
		out:    cfg.Output,
		sticky: cfg.StickyButtons,
	}
	c.state.Camera.Configure(cfg.Camera)
	c.state.Input.LastX = float32(cfg.Width) / 2
	c.state.Input.LastY = float32(cfg.Height) / 2
	return c
}

// KeyDown handles a key press or auto-repeat. Pan keys stay latched until the
// next key release. A projection key only requests a mode, the switch happens
// on release. Unbound keys leave state untouched and return an error wrapping
// [ErrInvalidKey].
func (c *Controller) KeyDown(key rune, x, y float32) error {
	st := &c.state
	if mode, ok := modeKey(key); ok {
		st.requested = mode
		return nil
	}
	if dir, ok := panKey(key); ok {
		st.Input.Pan = dir
		return nil
	}
	switch key {
	case KeyWireframeOn:
		if !st.Wireframe {
			st.Wireframe = true
			c.notify("Wireframe Mode Enabled!", rule)
		}
	case KeyWireframeOff:
		if st.Wireframe {
			st.Wireframe = false
			c.notify("Wireframe Mode Disabled!", rule)
		}
	case KeyReset:
		st.Camera.Reset()
		c.notify("Camera Position Reset!", rule)
	case KeyHelp:
		st.ShowHelp = !st.ShowHelp
	default:
		c.notify("xxxxxxx Not a valid key! xxxxxxx")
		return fmt.Errorf("%w %q", ErrInvalidKey, key)
	}
	return nil
}

// KeyUp handles any key release: the pan latch is cleared and the requested
// projection becomes active.
func (c *Controller) KeyUp(key rune, x, y float32) {
	c.state.Input.Pan = PanNone
	c.SetMode(c.state.requested)
}

// SetMode activates mode and notifies the user when the mode changed.
func (c *Controller) SetMode(mode ProjectionMode) {
	st := &c.state
	st.requested = mode
	if st.Mode == mode {
		return
	}
	st.Mode = mode
	c.notify(ModeLines(mode)...)
}

// MouseButton records button presses. Releases are recorded only for the button
// currently held and are ignored entirely with StickyButtons.
func (c *Controller) MouseButton(button MouseButton, action ButtonAction, x, y float32) {
	in := &c.state.Input
	if button != ButtonLeft && button != ButtonRight {
		return
	}
	switch action {
	case ButtonDown:
		in.Button = button
		in.Action = ButtonDown
	case ButtonUp:
		if !c.sticky && in.Button == button {
			in.Action = ButtonUp
		}
	}
}

// MouseMove handles every cursor movement regardless of button state. The
// cursor sample and the forward vector are always refreshed, even when no
// gesture applies.
func (c *Controller) MouseMove(x, y float32, mods ModifierKey) {
	st := &c.state
	in := &st.Input
	in.Mods = mods
	button := ButtonNone
	if in.Action == ButtonDown {
		button = in.Button
	}
	c.handleDrag(st.Mode, button, in.AltHeld(), x-in.LastX, y-in.LastY)
	in.LastX = x
	in.LastY = y
	st.Camera.UpdateForward()
}

// handleDrag applies the gesture for a cursor delta. Perspective mode requires
// Alt: left orbits and right zooms. Orthographic mode orbits with left and has
// no zoom.
func (c *Controller) handleDrag(mode ProjectionMode, button MouseButton, alt bool, dx, dy float32) {
	cam := &c.state.Camera
	switch mode {
	case Perspective:
		if !alt {
			return
		}
		switch button {
		case ButtonLeft:
			cam.Orbit(dx, dy)
		case ButtonRight:
			cam.Zoom(-dy)
		}
	case Orthographic:
		if button == ButtonLeft {
			cam.Orbit(dx, dy)
		}
	}
}

// Tick advances per-frame state. A latched pan key moves the camera one step.
func (c *Controller) Tick() {
	if pan := c.state.Input.Pan; pan != PanNone {
		c.state.Camera.Pan(pan)
	}
}

// Mode returns the active projection mode.
func (c *Controller) Mode() ProjectionMode { return c.state.Mode }

// Camera returns the controlled camera.
func (c *Controller) Camera() *Camera { return &c.state.Camera }

// State returns a snapshot of the interaction state.
func (c *Controller) State() InteractionState { return c.state }

// ViewMatrix returns the camera view matrix.
func (c *Controller) ViewMatrix() mgl32.Mat4 { return c.state.Camera.ViewMatrix() }

// ProjectionMatrix returns the projection of the active mode for aspect.
func (c *Controller) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return ProjectionMatrix(c.state.Mode, aspect)
}

// CameraPosition returns the position passed to shaders as the view position.
func (c *Controller) CameraPosition() ms3.Vec { return c.state.Camera.Position() }

// PolygonMode returns the fill mode selected with the wireframe keys.
func (c *Controller) PolygonMode() PolygonMode {
	if c.state.Wireframe {
		return PolygonLine
	}
	return PolygonFill
}

// ShowHelp reports whether the help overlay is toggled on.
func (c *Controller) ShowHelp() bool { return c.state.ShowHelp }

func (c *Controller) notify(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
}
