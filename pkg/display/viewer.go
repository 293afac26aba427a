package display

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"spheres/internal/logger"
	"spheres/internal/util"
	"spheres/pkg/config"
	"spheres/pkg/engine"
)

const maxPixelScale = 16

// Clock is an animation clock that can be paused
type Clock struct {
	elapsed float64
	last    float64
	paused  bool
	started bool
}

// Tick advances the clock to wall time now and returns the animation time
func (c *Clock) Tick(now float64) float64 {
	if c.started && !c.paused {
		c.elapsed += now - c.last
	}
	c.last = now
	c.started = true
	return c.elapsed
}

// Toggle pauses or resumes the clock and reports whether it is now paused
func (c *Clock) Toggle() bool {
	c.paused = !c.paused
	return c.paused
}

// renderSize is the traced resolution for a framebuffer at the given pixel scale
func renderSize(fbWidth, fbHeight, scale int) (int, int) {
	w, h := fbWidth/scale, fbHeight/scale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Viewer runs the interactive render loop
type Viewer struct {
	window    *Window
	presenter *Presenter
	input     *InputHandler
	engine    *engine.Engine
	logger    *logger.Logger
	title     string

	threaded bool
	scale    int
	clock    Clock

	frame  []byte
	times  *util.FrameTimes
	report time.Time
}

// NewViewer opens the window and prepares presentation for eng
func NewViewer(cfg *config.Config, eng *engine.Engine, log *logger.Logger) (*Viewer, error) {
	window, err := NewWindow(cfg.Window)
	if err != nil {
		return nil, err
	}
	log.Infof("OpenGL %s", window.GLVersion())

	presenter, err := NewPresenter()
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to initialize presenter: %v", err)
	}

	return &Viewer{
		window:    window,
		presenter: presenter,
		input: NewInputHandler(window.win,
			glfw.KeyEscape, glfw.KeyQ, glfw.KeyT, glfw.KeySpace,
			glfw.KeyEqual, glfw.KeyKPAdd, glfw.KeyMinus, glfw.KeyKPSubtract),
		engine:   eng,
		logger:   log,
		title:    cfg.Window.Title,
		threaded: cfg.Render.Threaded,
		scale:    cfg.Window.PixelScale,
		times:    util.NewFrameTimes(256),
	}, nil
}

// Run renders and presents frames until the window is closed
func (v *Viewer) Run() {
	defer v.cleanup()

	v.report = time.Now()
	for !v.window.ShouldClose() {
		v.processInput()

		fbWidth, fbHeight := v.window.FramebufferSize()
		if fbWidth == 0 || fbHeight == 0 {
			// minimized
			v.window.SwapAndPoll()
			continue
		}
		width, height := renderSize(fbWidth, fbHeight, v.scale)
		if len(v.frame) != width*height*4 {
			v.frame = make([]byte, width*height*4)
			v.logger.Debugf("render target resized to %dx%d", width, height)
		}

		start := time.Now()
		v.engine.Render(v.clock.Tick(v.window.Time()), width, height, v.frame, v.threaded)
		v.times.Track(start)

		v.presenter.Present(v.frame, width, height, fbWidth, fbHeight)
		v.window.SwapAndPoll()

		v.updateTitle(width, height)
	}
}

func (v *Viewer) processInput() {
	v.input.Update()

	if v.input.AnyPressed(glfw.KeyEscape, glfw.KeyQ) {
		v.window.RequestClose()
	}
	if v.input.IsKeyPressed(glfw.KeyT) {
		v.threaded = !v.threaded
		v.logger.Infof("threaded rendering: %v", v.threaded)
	}
	if v.input.IsKeyPressed(glfw.KeySpace) {
		v.logger.Infof("animation paused: %v", v.clock.Toggle())
	}
	if v.input.AnyPressed(glfw.KeyEqual, glfw.KeyKPAdd) && v.scale < maxPixelScale {
		v.scale++
		v.logger.Infof("pixel scale: %d", v.scale)
	}
	if v.input.AnyPressed(glfw.KeyMinus, glfw.KeyKPSubtract) && v.scale > 1 {
		v.scale--
		v.logger.Infof("pixel scale: %d", v.scale)
	}
}

// updateTitle shows frame timing once per second
func (v *Viewer) updateTitle(width, height int) {
	if time.Since(v.report) < time.Second || v.times.Count() == 0 {
		return
	}

	mode := "sequential"
	if v.threaded {
		mode = fmt.Sprintf("%d workers", v.engine.Workers())
	}
	avg := util.Milliseconds(v.times.Average())
	v.window.SetTitle(fmt.Sprintf("%s - %dx%d - %.2f ms/frame - %s", v.title, width, height, avg, mode))
	v.logger.Debugf("%d frames, average %.2f ms/frame", v.times.Count(), avg)

	v.times.Reset()
	v.report = time.Now()
}

func (v *Viewer) cleanup() {
	v.logger.Info("Shutting down viewer...")
	v.presenter.Close()
	v.window.Close()
}
