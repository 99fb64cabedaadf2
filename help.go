package chairview

const rule = "-----------------------------------"

// HelpLines returns the viewer controls, one per line.
func HelpLines() []string {
	return []string{
		"[Controls]",
		"----------",
		"Press o for Orthographic Projection",
		"Press p for Perspective Projection",
		"Press w for Wireframe Mode Enable",
		"Press f for Wireframe Mode Disable",
		"Press q for Camera Position Reset",
		"Press l for Pan Camera Left",
		"Press r for Pan Camera Right",
		"Press u for Pan Camera Up",
		"Press d for Pan Camera Down",
		"Press h to toggle this overlay",
		rule,
	}
}

// ModeLines returns the activation message and mouse usage for mode.
func ModeLines(mode ProjectionMode) []string {
	switch mode {
	case Orthographic:
		return []string{
			"Orthographic Projection Active!",
			"===================================",
			"Drag with Mouse Left Button for Orbit",
			rule,
		}
	default:
		return []string{
			"Perspective Projection Active!",
			"===================================",
			"Drag with Mouse Left Button and ALT held for Orbit",
			"Drag with Mouse Right Button and ALT held for Zoom",
			rule,
		}
	}
}
