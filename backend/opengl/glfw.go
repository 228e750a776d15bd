package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/widget"
)

// GLFWInputAdapter adapts GLFW input to widget.InputState, which a
// widget.Screen reads through the widget.Input interface.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *widget.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  widget.NewInputState(),
	}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update starts a new input frame. Call it before glfw.PollEvents so the
// callbacks record into the fresh frame.
func (a *GLFWInputAdapter) Update() *widget.InputState {
	a.input.Reset()

	// Update mouse position
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(int(x), int(y))

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *widget.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToWidgetKey(key)
	if k == widget.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	btn := glfwMouseButtonToWidget(button)
	if btn < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(btn, true)
	case glfw.Release:
		a.input.SetMouseButton(btn, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.AddWheel(float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(int(xpos), int(ypos))
}

// glfwKeyToWidgetKey maps GLFW keys to widget keys.
func glfwKeyToWidgetKey(key glfw.Key) widget.Key {
	switch key {
	case glfw.KeyTab:
		return widget.KeyTab
	case glfw.KeyLeft:
		return widget.KeyLeft
	case glfw.KeyRight:
		return widget.KeyRight
	case glfw.KeyUp:
		return widget.KeyUp
	case glfw.KeyDown:
		return widget.KeyDown
	case glfw.KeyPageUp:
		return widget.KeyPageUp
	case glfw.KeyPageDown:
		return widget.KeyPageDown
	case glfw.KeyHome:
		return widget.KeyHome
	case glfw.KeyEnd:
		return widget.KeyEnd
	case glfw.KeyInsert:
		return widget.KeyInsert
	case glfw.KeyDelete:
		return widget.KeyDelete
	case glfw.KeyBackspace:
		return widget.KeyBackspace
	case glfw.KeyEnter:
		return widget.KeyEnter
	case glfw.KeyEscape:
		return widget.KeyEscape
	default:
		return widget.KeyNone
	}
}

// glfwMouseButtonToWidget maps GLFW mouse buttons to widget mouse buttons.
func glfwMouseButtonToWidget(button glfw.MouseButton) widget.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return widget.MouseButtonLeft
	case glfw.MouseButtonRight:
		return widget.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return widget.MouseButtonMiddle
	default:
		return -1
	}
}
