package chairview

// Key bindings understood by [Controller.KeyDown].
const (
	KeyOrthographic = 'o'
	KeyPerspective  = 'p'
	KeyWireframeOn  = 'w'
	KeyWireframeOff = 'f'
	KeyReset        = 'q'
	KeyPanLeft      = 'l'
	KeyPanRight     = 'r'
	KeyPanUp        = 'u'
	KeyPanDown      = 'd'
	KeyHelp         = 'h'
)

// MouseButton identifies a mouse button. Only left and right drive the camera.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// ButtonAction is the state reported with a mouse button event.
type ButtonAction uint8

const (
	ButtonUp ButtonAction = iota
	ButtonDown
)

// ModifierKey is a bitmask of held modifier keys.
type ModifierKey uint8

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
)

// InputState holds latched keyboard and mouse state between events.
type InputState struct {
	// Pan is the latched pan direction. Cleared on any key release.
	Pan PanDirection
	// Button and Action are the last recorded mouse button and its state.
	Button MouseButton
	Action ButtonAction
	// LastX and LastY are the last cursor position in window pixels.
	LastX, LastY float32
	// Mods is the modifier state seen on the last event.
	Mods ModifierKey
}

// Dragging reports whether button b is recorded as held down.
func (in *InputState) Dragging(b MouseButton) bool {
	return in.Button == b && in.Action == ButtonDown
}

// AltHeld reports whether Alt was held on the last event.
func (in *InputState) AltHeld() bool {
	return in.Mods&ModAlt != 0
}

func panKey(key rune) (PanDirection, bool) {
	switch key {
	case KeyPanLeft:
		return PanLeft, true
	case KeyPanRight:
		return PanRight, true
	case KeyPanUp:
		return PanUp, true
	case KeyPanDown:
		return PanDown, true
	}
	return PanNone, false
}
