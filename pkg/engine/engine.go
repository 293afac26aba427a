package engine

import (
	"fmt"

	"spheres/internal/logger"
	"spheres/internal/util"
	vm "spheres/internal/vecmath"
	"spheres/pkg/config"
)

// Engine renders animation frames of a scene into caller-owned BGRX buffers
type Engine struct {
	scene     *Scene
	tracer    *Tracer
	cache     *DirectionCache
	scheduler *Scheduler
	logger    *logger.Logger
	eye       vm.Vec3
	frames    uint64
}

// NewEngine creates an engine for the default scene
func NewEngine(cfg config.RenderConfig, log *logger.Logger) (*Engine, error) {
	return NewEngineWithScene(DefaultScene(), cfg, log)
}

// NewEngineWithScene creates an engine that owns scene
func NewEngineWithScene(scene *Scene, cfg config.RenderConfig, log *logger.Logger) (*Engine, error) {
	if scene == nil {
		return nil, fmt.Errorf("scene is nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid worker count %d", cfg.Workers)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = util.ProcessorCount()
	}

	e := &Engine{
		scene:     scene,
		tracer:    NewTracer(scene),
		cache:     NewDirectionCache(),
		scheduler: NewScheduler(workers),
		logger:    log,
	}

	log.Debugf("engine ready: %v, %d workers", scene, e.scheduler.Workers())
	return e, nil
}

// Render traces the scene at time t into buf, which must hold exactly
// width*height*4 bytes. Each pixel is written as B, G, R; the fourth byte is
// left untouched. The call returns once the whole frame is done.
func (e *Engine) Render(t float64, width, height int, buf []byte, threaded bool) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("engine: invalid frame size %dx%d", width, height))
	}
	if len(buf) != width*height*4 {
		panic(fmt.Sprintf("engine: buffer holds %d bytes, %dx%d frame needs %d", len(buf), width, height, width*height*4))
	}

	if e.cache.Ensure(width, height) {
		e.logger.Debugf("direction cache rebuilt for %dx%d", width, height)
	}
	e.scene.Animate(t)

	stride := width * 4
	e.scheduler.Run(height, threaded, func(y int) {
		e.renderRow(y, buf[y*stride:(y+1)*stride])
	})

	e.frames++
}

func (e *Engine) renderRow(y int, row []byte) {
	for x, d := range e.cache.Row(y) {
		c := e.tracer.Trace(e.eye, d)

		px := row[x*4 : x*4+3]
		px[0] = util.Quantize(c.Z)
		px[1] = util.Quantize(c.Y)
		px[2] = util.Quantize(c.X)
	}
}

// Scene returns the scene owned by the engine
func (e *Engine) Scene() *Scene {
	return e.scene
}

// Workers returns the number of goroutines used in threaded mode
func (e *Engine) Workers() int {
	return e.scheduler.Workers()
}

// Frames returns the number of frames rendered so far
func (e *Engine) Frames() uint64 {
	return e.frames
}
