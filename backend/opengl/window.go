package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/charmap"
)

// FrameFunc draws one frame. t is the time in seconds since the window
// opened; in holds this frame's input.
type FrameFunc func(t float64, in *charmap.InputState) error

// Window is a fixed-size GLFW window with a current OpenGL 4.1 core context.
// It must be created and used on the main thread.
type Window struct {
	win    *glfw.Window
	input  *GLFWInputAdapter
	width  int
	height int
}

// OpenWindow initializes GLFW and OpenGL and opens a window per cfg.
func OpenWindow(cfg charmap.Config) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	charmap.Logger().Info("window opened",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Window{
		win:    win,
		input:  NewGLFWInputAdapter(win),
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

// Size returns the window size the context was created for.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Run polls input, clears the framebuffer and calls frame until the window
// is closed or Escape is pressed. An error from frame stops the loop.
func (w *Window) Run(frame FrameFunc) error {
	for !w.win.ShouldClose() {
		glfw.PollEvents()

		in := w.input.Input()
		if in.IsKeyPressed(charmap.KeyEscape) {
			w.win.SetShouldClose(true)
		}

		fw, fh := w.win.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := frame(glfw.GetTime(), in); err != nil {
			return err
		}

		w.win.SwapBuffers()
		w.input.EndFrame()
	}

	charmap.Logger().Debug("window closed")
	return nil
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
