package display

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"spheres/pkg/config"
)

// Window owns the GLFW window and its OpenGL context.
// GLFW requires every call to happen on the main thread.
type Window struct {
	win *glfw.Window
}

// NewWindow initializes GLFW and OpenGL and opens a window
func NewWindow(cfg config.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	resizable := glfw.False
	if cfg.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
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
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	return &Window{win: win}, nil
}

// GLVersion returns the OpenGL version string of the current context
func (w *Window) GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// FramebufferSize returns the drawable size in pixels
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// ShouldClose reports whether the user asked to close the window
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// RequestClose marks the window for closing
func (w *Window) RequestClose() {
	w.win.SetShouldClose(true)
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Time returns seconds since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// SwapAndPoll presents the back buffer and processes pending events
func (w *Window) SwapAndPoll() {
	w.win.SwapBuffers()
	glfw.PollEvents()
}

// Close destroys the window and shuts GLFW down
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
