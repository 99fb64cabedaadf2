package chairview_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/soypat/chairview"
	"github.com/soypat/geometry/ms3"
)

func newTestController(t *testing.T) (*chairview.Controller, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctl := chairview.NewController(chairview.ControllerConfig{Output: &out})
	return ctl, &out
}

func mustKeyDown(t *testing.T, ctl *chairview.Controller, key rune) {
	t.Helper()
	err := ctl.KeyDown(key, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
}

func TestControllerDefaults(t *testing.T) {
	ctl, out := newTestController(t)
	st := ctl.State()
	if ctl.Mode() != chairview.Perspective {
		t.Error("expected perspective at start, got", ctl.Mode())
	}
	if ctl.PolygonMode() != chairview.PolygonFill {
		t.Error("expected solid fill at start")
	}
	if st.Input.LastX != chairview.DefaultWidth/2 || st.Input.LastY != chairview.DefaultHeight/2 {
		t.Error("expected cursor sample at window center, got", st.Input.LastX, st.Input.LastY)
	}
	if out.Len() != 0 {
		t.Error("unexpected output at start:", out.String())
	}
}

func TestPanIsMomentary(t *testing.T) {
	ctl, _ := newTestController(t)
	mustKeyDown(t, ctl, chairview.KeyPanLeft)
	ctl.Tick()
	held := ctl.CameraPosition()
	if held == (ms3.Vec{}) {
		t.Fatal("expected camera to move while pan key held")
	}
	ctl.KeyUp(chairview.KeyPanLeft, 0, 0)
	ctl.Tick()
	if ctl.CameraPosition() != held {
		t.Error("camera moved after pan key release", held, ctl.CameraPosition())
	}
	if ctl.State().Input.Pan != chairview.PanNone {
		t.Error("pan latch not cleared on release")
	}
}

func TestPanRepeatsWhileHeld(t *testing.T) {
	ctl, _ := newTestController(t)
	mustKeyDown(t, ctl, chairview.KeyPanDown)
	const ticks = 10
	for i := 0; i < ticks; i++ {
		ctl.Tick()
		mustKeyDown(t, ctl, chairview.KeyPanDown) // Auto-repeat.
	}
	want := ms3.Vec{Y: ticks * 0.005}
	if !vecEqual(ctl.CameraPosition(), want, tol) {
		t.Error("expected", want, "got", ctl.CameraPosition())
	}
	// Releasing any key clears the latch.
	ctl.KeyUp('x', 0, 0)
	ctl.Tick()
	if !vecEqual(ctl.CameraPosition(), want, tol) {
		t.Error("camera moved after release", ctl.CameraPosition())
	}
}

func TestModeSwitchDeferredToRelease(t *testing.T) {
	ctl, out := newTestController(t)
	mustKeyDown(t, ctl, chairview.KeyOrthographic)
	ctl.Tick()
	if ctl.Mode() != chairview.Perspective {
		t.Fatal("mode switched before key release")
	}
	if out.Len() != 0 {
		t.Error("notification before mode switch:", out.String())
	}
	ctl.KeyUp(chairview.KeyOrthographic, 0, 0)
	if ctl.Mode() != chairview.Orthographic {
		t.Fatal("mode not committed on key release")
	}
	if !strings.Contains(out.String(), "Orthographic Projection Active!") {
		t.Error("missing mode change notification:", out.String())
	}
	// Releasing unrelated keys keeps the committed selection.
	out.Reset()
	mustKeyDown(t, ctl, chairview.KeyPanUp)
	ctl.KeyUp(chairview.KeyPanUp, 0, 0)
	if ctl.Mode() != chairview.Orthographic {
		t.Error("mode changed on unrelated key release")
	}
	if out.Len() != 0 {
		t.Error("notification without mode change:", out.String())
	}
	mustKeyDown(t, ctl, chairview.KeyPerspective)
	ctl.KeyUp(chairview.KeyPerspective, 0, 0)
	if ctl.Mode() != chairview.Perspective {
		t.Error("expected perspective after p release")
	}
	if !strings.Contains(out.String(), "Perspective Projection Active!") {
		t.Error("missing perspective notification:", out.String())
	}
}

func TestOrbitGating(t *testing.T) {
	tests := []struct {
		name      string
		mode      chairview.ProjectionMode
		mods      chairview.ModifierKey
		wantOrbit bool
	}{
		{name: "ortho", mode: chairview.Orthographic, wantOrbit: true},
		{name: "ortho+alt", mode: chairview.Orthographic, mods: chairview.ModAlt, wantOrbit: true},
		{name: "persp", mode: chairview.Perspective, wantOrbit: false},
		{name: "persp+shift", mode: chairview.Perspective, mods: chairview.ModShift, wantOrbit: false},
		{name: "persp+alt", mode: chairview.Perspective, mods: chairview.ModAlt, wantOrbit: true},
	}
	for _, test := range tests {
		ctl := chairview.NewController(chairview.ControllerConfig{Output: io.Discard})
		ctl.SetMode(test.mode)
		ctl.MouseButton(chairview.ButtonLeft, chairview.ButtonDown, 0, 0)
		st := ctl.State()
		ctl.MouseMove(st.Input.LastX+100, st.Input.LastY-20, test.mods)
		yaw, pitch := ctl.Camera().Angles()
		orbited := yaw != 0 || pitch != 0
		if orbited != test.wantOrbit {
			t.Errorf("%s: want orbit=%v, got yaw=%v pitch=%v", test.name, test.wantOrbit, yaw, pitch)
		}
	}
}

func TestZoomOnlyInPerspective(t *testing.T) {
	ctl, _ := newTestController(t)
	fwd := ctl.Camera().Forward()
	ctl.MouseButton(chairview.ButtonRight, chairview.ButtonDown, 0, 0)
	st := ctl.State()
	x, y := st.Input.LastX, st.Input.LastY
	ctl.MouseMove(x, y-10, chairview.ModAlt) // Cursor up.
	if !vecEqual(ctl.CameraPosition(), ms3.Scale(0.005, fwd), tol) {
		t.Fatal("expected zoom along +forward, got", ctl.CameraPosition())
	}
	ctl.MouseMove(x, y, chairview.ModAlt) // Cursor down.
	if !vecEqual(ctl.CameraPosition(), ms3.Vec{}, tol) {
		t.Fatal("expected zoom back along -forward, got", ctl.CameraPosition())
	}
	ctl.MouseMove(x, y+30, 0) // No Alt.
	if !vecEqual(ctl.CameraPosition(), ms3.Vec{}, tol) {
		t.Error("zoom without Alt in perspective", ctl.CameraPosition())
	}

	ctl.SetMode(chairview.Orthographic)
	before := ctl.CameraPosition()
	ctl.MouseMove(x, y-50, chairview.ModAlt)
	ctl.MouseMove(x, y+50, 0)
	if ctl.CameraPosition() != before {
		t.Error("right drag changed position in orthographic mode")
	}
	if yaw, pitch := ctl.Camera().Angles(); yaw != 0 || pitch != 0 {
		t.Error("right drag orbited in orthographic mode", yaw, pitch)
	}
}

func TestMouseRelease(t *testing.T) {
	for _, sticky := range []bool{false, true} {
		ctl := chairview.NewController(chairview.ControllerConfig{Output: io.Discard, StickyButtons: sticky})
		ctl.SetMode(chairview.Orthographic)
		ctl.MouseButton(chairview.ButtonLeft, chairview.ButtonDown, 0, 0)
		ctl.MouseButton(chairview.ButtonLeft, chairview.ButtonUp, 0, 0)
		st := ctl.State()
		ctl.MouseMove(st.Input.LastX+100, st.Input.LastY, 0)
		yaw, _ := ctl.Camera().Angles()
		if orbited := yaw != 0; orbited != sticky {
			t.Errorf("sticky=%v: orbit after release=%v", sticky, orbited)
		}
	}
	// Releasing a button that is not held keeps the held one.
	ctl := chairview.NewController(chairview.ControllerConfig{Output: io.Discard})
	ctl.MouseButton(chairview.ButtonLeft, chairview.ButtonDown, 0, 0)
	ctl.MouseButton(chairview.ButtonRight, chairview.ButtonUp, 0, 0)
	st := ctl.State()
	if !st.Input.Dragging(chairview.ButtonLeft) {
		t.Error("left button should still be recorded down")
	}
	ctl.MouseButton(chairview.ButtonMiddle, chairview.ButtonDown, 0, 0)
	if st2 := ctl.State(); !st2.Input.Dragging(chairview.ButtonLeft) {
		t.Error("middle button must not replace recorded button")
	}
}

func TestMouseMoveAlwaysSamples(t *testing.T) {
	ctl, _ := newTestController(t)
	ctl.Camera().SetAngles(0.75, 0.25)
	ctl.MouseMove(10, 20, 0)
	st := ctl.State()
	if st.Input.LastX != 10 || st.Input.LastY != 20 {
		t.Error("cursor sample not updated", st.Input.LastX, st.Input.LastY)
	}
	yaw, pitch := ctl.Camera().Angles()
	if yaw != 0.75 || pitch != 0.25 {
		t.Error("orientation changed without a gesture", yaw, pitch)
	}
}

func TestWireframeResetAndHelpKeys(t *testing.T) {
	ctl, out := newTestController(t)
	mustKeyDown(t, ctl, chairview.KeyWireframeOn)
	if ctl.PolygonMode() != chairview.PolygonLine {
		t.Error("expected wireframe after w")
	}
	ctl.KeyUp(chairview.KeyWireframeOn, 0, 0)
	if ctl.PolygonMode() != chairview.PolygonLine {
		t.Error("wireframe must persist after release")
	}
	mustKeyDown(t, ctl, chairview.KeyWireframeOff)
	if ctl.PolygonMode() != chairview.PolygonFill {
		t.Error("expected solid fill after f")
	}
	ctl.Camera().SetAngles(30, 10)
	ctl.Camera().SetPosition(ms3.Vec{X: 1, Y: 2, Z: 3})
	mustKeyDown(t, ctl, chairview.KeyReset)
	if ctl.CameraPosition() != (ms3.Vec{}) {
		t.Error("expected reset to origin, got", ctl.CameraPosition())
	}
	if yaw, pitch := ctl.Camera().Angles(); yaw != 30 || pitch != 10 {
		t.Error("reset changed orientation", yaw, pitch)
	}
	for _, msg := range []string{"Wireframe Mode Enabled!", "Wireframe Mode Disabled!", "Camera Position Reset!"} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("missing notification %q", msg)
		}
	}
	mustKeyDown(t, ctl, chairview.KeyHelp)
	if !ctl.ShowHelp() {
		t.Error("help overlay not toggled on")
	}
	mustKeyDown(t, ctl, chairview.KeyHelp)
	if ctl.ShowHelp() {
		t.Error("help overlay not toggled off")
	}
}

func TestInvalidKey(t *testing.T) {
	ctl, out := newTestController(t)
	mustKeyDown(t, ctl, chairview.KeyPanRight)
	before := ctl.State()
	err := ctl.KeyDown('z', 3, 4)
	if !errors.Is(err, chairview.ErrInvalidKey) {
		t.Fatal("expected ErrInvalidKey, got", err)
	}
	if ctl.State() != before {
		t.Error("invalid key changed state")
	}
	if !strings.Contains(out.String(), "Not a valid key") {
		t.Error("missing invalid key diagnostic:", out.String())
	}
}
