//go:build tinygo || !cgo

package glview

import "errors"

func run(cfg Config) error {
	return &InitError{Stage: "OpenGL", Err: errors.New("require cgo for OpenGL rendering")}
}
