package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/charmap"
)

// GLFWInputAdapter adapts GLFW input to charmap.InputState.
type GLFWInputAdapter struct {
	input *charmap.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		input: charmap.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)

	return adapter
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *charmap.InputState {
	return a.input
}

// EndFrame clears per-frame events once the frame has consumed them.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == charmap.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		a.input.RepeatKey(k)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func glfwKeyToKey(key glfw.Key) charmap.Key {
	switch key {
	case glfw.KeyBackspace:
		return charmap.KeyBackspace
	case glfw.KeyEnter:
		return charmap.KeyEnter
	case glfw.KeyEscape:
		return charmap.KeyEscape
	default:
		return charmap.KeyNone
	}
}
