package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/periodic"
)

// GLFWInputAdapter collects GLFW window events into a periodic.InputState.
//
// Events arrive during glfw.PollEvents, so the per-frame flags are cleared
// in EndFrame after the table has consumed them, not before polling.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *periodic.InputState
}

// NewGLFWInputAdapter installs the window callbacks.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  periodic.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update samples the cursor and modifiers after polling and advances key
// repeat timers by dt seconds.
func (a *GLFWInputAdapter) Update(dt float32) *periodic.InputState {
	// Cursor positions are in screen coordinates; the table lays out in
	// framebuffer pixels, which differ on HiDPI displays.
	sx, sy := a.framebufferScale()
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x)*sx, float32(y)*sy)

	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl, glfw.KeyRightControl) ||
		a.pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper)

	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// EndFrame clears the single-frame events.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

func (a *GLFWInputAdapter) framebufferScale() (sx, sy float32) {
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	sx, sy = 1, 1
	if ww > 0 {
		sx = float32(fw) / float32(ww)
	}
	if wh > 0 {
		sy = float32(fh) / float32(wh)
	}
	return sx, sy
}

func (a *GLFWInputAdapter) pressed(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := tableKey(key)
	if k == periodic.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := tableMouseButton(button)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, _, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelY + float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	sx, sy := a.framebufferScale()
	a.input.SetMousePos(float32(xpos)*sx, float32(ypos)*sy)
}

// tableKey maps the GLFW keys the table reacts to. Letters arrive as
// characters through the char callback instead.
func tableKey(key glfw.Key) periodic.Key {
	switch key {
	case glfw.KeyLeft:
		return periodic.KeyLeft
	case glfw.KeyRight:
		return periodic.KeyRight
	case glfw.KeyBackspace:
		return periodic.KeyBackspace
	case glfw.KeyV:
		return periodic.KeyV
	case glfw.KeyKP1:
		return periodic.KeyFreeze
	case glfw.KeyGraveAccent:
		return periodic.KeyToggleDebug
	default:
		return periodic.KeyNone
	}
}

func tableMouseButton(button glfw.MouseButton) (periodic.MouseButton, bool) {
	if button == glfw.MouseButtonLeft {
		return periodic.MouseButtonLeft, true
	}
	return 0, false
}

// Clipboard reads the system clipboard through GLFW.
// It implements periodic.Clipboard.
type Clipboard struct {
	window *glfw.Window
}

// NewClipboard returns a clipboard bound to window.
func NewClipboard(window *glfw.Window) *Clipboard {
	return &Clipboard{window: window}
}

// GetText returns the clipboard contents, or "" when it holds no text.
func (c *Clipboard) GetText() string {
	return c.window.GetClipboardString()
}
