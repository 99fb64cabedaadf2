// Package glview is the OpenGL front end of chairview. It owns the window,
// shader programs, GPU buffers and textures, and forwards window events to a
// [chairview.Controller] whose state it renders every frame.
package glview

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/soypat/chairview"
)

const defaultTitle = "Zig Zag Chair"

// Config configures [Run]. The zero value opens a default sized window with a
// procedural wood texture.
type Config struct {
	Width, Height int
	Title         string
	// TexturePath is a JPEG or PNG file used for the chair surface. When empty
	// a wood grain texture is generated.
	TexturePath string
	// MaxTextureSize limits the largest texture dimension. Larger images are downscaled.
	MaxTextureSize int
	// Output receives user notifications. Defaults to os.Stdout.
	Output io.Writer
	// Silent discards all notifications.
	Silent bool
	// Context cancels the render loop when done.
	Context context.Context
	// Controller settings. Output and window size are set from this Config.
	Controller chairview.ControllerConfig
}

// InitError is returned when the viewer cannot start. It is not recoverable.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %s", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// Run opens the viewer window and blocks until it is closed or the context is
// done. It must be called from the main OS thread. Startup failures are
// returned as *InitError.
func Run(cfg Config) error {
	cfg.setDefaults()
	return run(cfg)
}

func (cfg *Config) setDefaults() {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = chairview.DefaultWidth, chairview.DefaultHeight
	}
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	if cfg.MaxTextureSize <= 0 {
		cfg.MaxTextureSize = 2048
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Silent {
		cfg.Output = io.Discard
	}
	cfg.Controller.Output = cfg.Output
	cfg.Controller.Width = cfg.Width
	cfg.Controller.Height = cfg.Height
}

// hudLines is the overlay text for the current state.
func hudLines(st chairview.InteractionState) []string {
	lines := chairview.HelpLines()
	lines = append(lines, chairview.ModeLines(st.Mode)...)
	if st.Wireframe {
		lines = append(lines, "Wireframe Mode Enabled")
	}
	return lines
}
