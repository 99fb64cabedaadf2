//go:build !tinygo && cgo

package glview

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/chairview"
	"github.com/soypat/chairview/hud"
	"github.com/soypat/chairview/mesh"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

// transformUniforms are the locations shared by the object and lamp programs.
type transformUniforms struct {
	model, view, projection int32
}

type objectUniforms struct {
	transformUniforms
	texture      int32
	light0Color  int32
	light0Pos    int32
	light1Color  int32
	light1Pos    int32
	viewPosition int32
}

type hudUniforms struct {
	rect, texture int32
}

func run(cfg Config) error {
	window, term, err := startGLFW(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return err
	}
	defer term()
	ctl := chairview.NewController(cfg.Controller)
	fmt.Fprintln(cfg.Output, strings.Join(chairview.HelpLines(), "\n"))
	fmt.Fprintln(cfg.Output, strings.Join(chairview.ModeLines(ctl.Mode()), "\n"))

	objProg, err := glgl.CompileProgram(glgl.ShaderSource{Vertex: objVertexSource, Fragment: objFragmentSource})
	if err != nil {
		return &InitError{Stage: "object program", Err: err}
	}
	defer objProg.Delete()
	lampProg, err := glgl.CompileProgram(glgl.ShaderSource{Vertex: lampVertexSource, Fragment: lampFragmentSource})
	if err != nil {
		return &InitError{Stage: "lamp program", Err: err}
	}
	defer lampProg.Delete()
	hudProg, err := glgl.CompileProgram(glgl.ShaderSource{Vertex: hudVertexSource, Fragment: hudFragmentSource})
	if err != nil {
		return &InitError{Stage: "HUD program", Err: err}
	}
	defer hudProg.Delete()

	var objLoc objectUniforms
	err = lookupUniforms(objProg, map[string]*int32{
		"model\x00":        &objLoc.model,
		"view\x00":         &objLoc.view,
		"projection\x00":   &objLoc.projection,
		"uTexture\x00":     &objLoc.texture,
		"light0Color\x00":  &objLoc.light0Color,
		"light0Pos\x00":    &objLoc.light0Pos,
		"light1Color\x00":  &objLoc.light1Color,
		"light1Pos\x00":    &objLoc.light1Pos,
		"viewPosition\x00": &objLoc.viewPosition,
	})
	if err != nil {
		return &InitError{Stage: "object uniforms", Err: err}
	}
	var lampLoc transformUniforms
	err = lookupUniforms(lampProg, map[string]*int32{
		"model\x00":      &lampLoc.model,
		"view\x00":       &lampLoc.view,
		"projection\x00": &lampLoc.projection,
	})
	if err != nil {
		return &InitError{Stage: "lamp uniforms", Err: err}
	}
	var hudLoc hudUniforms
	err = lookupUniforms(hudProg, map[string]*int32{
		"uRect\x00": &hudLoc.rect,
		"uHUD\x00":  &hudLoc.texture,
	})
	if err != nil {
		return &InitError{Stage: "HUD uniforms", Err: err}
	}

	objVAO, lampVAO, release := createChairBuffers()
	defer release()
	hudVAO, releaseHUD := createQuadBuffer()
	defer releaseHUD()

	var texImg *image.RGBA
	if cfg.TexturePath != "" {
		texImg, err = LoadTexture(cfg.TexturePath, cfg.MaxTextureSize)
		if err != nil {
			return &InitError{Stage: "texture", Err: err}
		}
	} else {
		texImg = WoodTexture(512, 512)
	}
	chairTex := uploadTexture(texImg, true)
	defer gl.DeleteTextures(1, &chairTex)
	if err = glgl.Err(); err != nil {
		return &InitError{Stage: "texture upload", Err: err}
	}

	hudRenderer, err := hud.NewRenderer(hud.Config{})
	if err != nil {
		return &InitError{Stage: "HUD font", Err: err}
	}
	var (
		hudTex     uint32
		hudSize    image.Point
		hudState   chairview.InteractionState
		hudCurrent bool
	)
	defer func() {
		if hudTex != 0 {
			gl.DeleteTextures(1, &hudTex)
		}
	}()

	width, height := window.GetFramebufferSize()
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbw, fbh int) {
		width, height = fbw, fbh
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		r, ok := keyRune(key)
		if !ok {
			return
		}
		x, y := w.GetCursorPos()
		switch action {
		case glfw.Press, glfw.Repeat:
			// Unbound keys are already reported to the user by the controller.
			_ = ctl.KeyDown(r, float32(x), float32(y))
		case glfw.Release:
			ctl.KeyUp(r, float32(x), float32(y))
		}
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b := mouseButton(button)
		x, y := w.GetCursorPos()
		switch action {
		case glfw.Press:
			ctl.MouseButton(b, chairview.ButtonDown, float32(x), float32(y))
		case glfw.Release:
			ctl.MouseButton(b, chairview.ButtonUp, float32(x), float32(y))
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		ctl.MouseMove(float32(xpos), float32(ypos), heldModifiers(w))
	})

	gl.ClearColor(chairview.ClearColor[0], chairview.ClearColor[1], chairview.ClearColor[2], chairview.ClearColor[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	glfw.SwapInterval(1)

	model := chairview.ModelMatrix()
	lights := chairview.Lights()
	ctx := cfg.Context
	for !window.ShouldClose() {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		ctl.Tick()
		view := ctl.ViewMatrix()
		projection := ctl.ProjectionMatrix(chairview.AspectRatio(width, height))
		camPos := ctl.CameraPosition()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.Enable(gl.DEPTH_TEST)
		if ctl.PolygonMode() == chairview.PolygonLine {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}

		// Chair.
		objProg.Bind()
		setTransform(objLoc.transformUniforms, model, view, projection)
		gl.Uniform1i(objLoc.texture, 0)
		setVec3(objLoc.light0Color, lights[0].Color)
		setVec3(objLoc.light0Pos, lights[0].Position)
		setVec3(objLoc.light1Color, lights[1].Color)
		setVec3(objLoc.light1Pos, lights[1].Position)
		setVec3(objLoc.viewPosition, camPos)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, chairTex)
		gl.BindVertexArray(objVAO)
		gl.DrawElements(gl.TRIANGLES, int32(mesh.NumIndices()), gl.UNSIGNED_INT, gl.PtrOffset(0))

		// Lamp markers.
		lampProg.Bind()
		gl.BindVertexArray(lampVAO)
		for _, l := range lights {
			setTransform(lampLoc, chairview.LampModel(l), view, projection)
			gl.DrawElements(gl.TRIANGLES, int32(mesh.NumIndices()), gl.UNSIGNED_INT, gl.PtrOffset(0))
		}

		// Help overlay.
		if st := ctl.State(); st.ShowHelp {
			if !hudCurrent || hudState.Mode != st.Mode || hudState.Wireframe != st.Wireframe {
				img, err := hudRenderer.Render(hudLines(st))
				if err != nil {
					return err
				}
				if hudTex != 0 {
					gl.DeleteTextures(1, &hudTex)
				}
				hudTex = uploadTexture(img, false)
				hudSize = img.Bounds().Size()
				hudState = st
				hudCurrent = true
			}
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
			gl.Disable(gl.DEPTH_TEST)
			gl.Enable(gl.BLEND)
			hudProg.Bind()
			right := -1 + 2*float32(hudSize.X)/float32(max(1, width))
			bottom := 1 - 2*float32(hudSize.Y)/float32(max(1, height))
			gl.Uniform4f(hudLoc.rect, -1, 1, right, bottom)
			gl.Uniform1i(hudLoc.texture, 0)
			gl.BindTexture(gl.TEXTURE_2D, hudTex)
			gl.BindVertexArray(hudVAO)
			gl.DrawArrays(gl.TRIANGLES, 0, 6)
			gl.Disable(gl.BLEND)
		}
		gl.BindVertexArray(0)

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func startGLFW(width, height int, title string) (window *glfw.Window, term func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, &InitError{Stage: "GLFW", Err: err}
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.DepthBits, 24)

	window, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, &InitError{Stage: "window", Err: err}
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, &InitError{Stage: "OpenGL", Err: err}
	}
	return window, glfw.Terminate, nil
}

func lookupUniforms(prog glgl.Program, locs map[string]*int32) error {
	for name, dst := range locs {
		loc, err := prog.UniformLocation(name)
		if err != nil {
			return err
		}
		*dst = loc
	}
	return nil
}

// createChairBuffers uploads the chair mesh and returns the vertex arrays for
// the textured object and the position-only lamp markers, which share buffers.
func createChairBuffers() (objVAO, lampVAO uint32, release func()) {
	vertices := mesh.Vertices()
	indices := mesh.Indices()
	var vbo, ebo uint32
	gl.GenVertexArrays(1, &objVAO)
	gl.GenBuffers(1, &vbo)
	gl.GenBuffers(1, &ebo)

	gl.BindVertexArray(objVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, mesh.SizeofFloat*len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(indices), gl.Ptr(indices), gl.STATIC_DRAW)
	const stride = mesh.Stride * mesh.SizeofFloat
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(mesh.PositionOffset*mesh.SizeofFloat))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(mesh.NormalOffset*mesh.SizeofFloat))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(mesh.UVOffset*mesh.SizeofFloat))
	gl.EnableVertexAttribArray(2)

	gl.GenVertexArrays(1, &lampVAO)
	gl.BindVertexArray(lampVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(mesh.PositionOffset*mesh.SizeofFloat))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return objVAO, lampVAO, func() {
		gl.DeleteVertexArrays(1, &objVAO)
		gl.DeleteVertexArrays(1, &lampVAO)
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteBuffers(1, &ebo)
	}
}

func createQuadBuffer() (vao uint32, release func()) {
	var vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	vertices := []float32{
		0, 0,
		1, 0,
		0, 1,
		0, 1,
		1, 0,
		1, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return vao, func() {
		gl.DeleteVertexArrays(1, &vao)
		gl.DeleteBuffers(1, &vbo)
	}
}

func uploadTexture(img *image.RGBA, mipmap bool) (tex uint32) {
	sz := img.Bounds().Size()
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(sz.X), int32(sz.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if mipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func setTransform(loc transformUniforms, model, view, projection mgl32.Mat4) {
	gl.UniformMatrix4fv(loc.model, 1, false, &model[0])
	gl.UniformMatrix4fv(loc.view, 1, false, &view[0])
	gl.UniformMatrix4fv(loc.projection, 1, false, &projection[0])
}

func setVec3(loc int32, v ms3.Vec) {
	gl.Uniform3f(loc, v.X, v.Y, v.Z)
}

// keyRune maps printable keys to the lowercase rune the controller binds.
// Modifier and navigation keys are not forwarded.
func keyRune(key glfw.Key) (rune, bool) {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return rune('a' + (key - glfw.KeyA)), true
	case key >= glfw.Key0 && key <= glfw.Key9:
		return rune('0' + (key - glfw.Key0)), true
	case key == glfw.KeySpace:
		return ' ', true
	}
	return 0, false
}

func mouseButton(b glfw.MouseButton) chairview.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return chairview.ButtonLeft
	case glfw.MouseButtonRight:
		return chairview.ButtonRight
	case glfw.MouseButtonMiddle:
		return chairview.ButtonMiddle
	}
	return chairview.ButtonNone
}

// heldModifiers polls modifier keys since cursor events carry no modifier state.
func heldModifiers(w *glfw.Window) (mods chairview.ModifierKey) {
	held := func(a, b glfw.Key) bool {
		return w.GetKey(a) == glfw.Press || w.GetKey(b) == glfw.Press
	}
	if held(glfw.KeyLeftShift, glfw.KeyRightShift) {
		mods |= chairview.ModShift
	}
	if held(glfw.KeyLeftControl, glfw.KeyRightControl) {
		mods |= chairview.ModControl
	}
	if held(glfw.KeyLeftAlt, glfw.KeyRightAlt) {
		mods |= chairview.ModAlt
	}
	return mods
}
