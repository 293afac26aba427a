package main

import (
	"flag"
	"log"
	"os"
	"time"

	"spheres/internal/logger"
	"spheres/internal/util"
	"spheres/pkg/config"
	"spheres/pkg/engine"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	frames := flag.Int("frames", 0, "Number of frames to render (overrides config)")
	width := flag.Int("width", 0, "Frame width (overrides config)")
	height := flag.Int("height", 0, "Frame height (overrides config)")
	sequential := flag.Bool("sequential", false, "Render on a single goroutine")
	flag.Parse()

	cfg, cfgErr := config.LoadConfig(*configPath)
	if *frames > 0 {
		cfg.Headless.Frames = *frames
	}
	if *width > 0 {
		cfg.Headless.Width = *width
	}
	if *height > 0 {
		cfg.Headless.Height = *height
	}
	if *sequential {
		cfg.Render.Threaded = false
	}

	logger, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()
	if cfg.Log.File == "" {
		logger.SetOutput(os.Stderr)
	}
	if cfgErr != nil {
		logger.Debug(cfgErr)
	}

	eng, err := engine.NewEngine(cfg.Render, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize render engine: %v", err)
	}

	run(eng, cfg.Headless, cfg.Render.Threaded, logger)
}

func run(eng *engine.Engine, cfg config.HeadlessConfig, threaded bool, logger *logger.Logger) {
	logger.Infof("CPU: %s, %d workers, threaded=%v", util.CPUModel(), eng.Workers(), threaded)
	logger.Infof("Rendering %d frames at %dx%d", cfg.Frames, cfg.Width, cfg.Height)

	buf := make([]byte, cfg.Width*cfg.Height*4)
	times := util.NewFrameTimes(cfg.Frames)

	for i := 0; i < cfg.Frames; i++ {
		start := time.Now()
		eng.Render(float64(i)*cfg.TimeStep, cfg.Width, cfg.Height, buf, threaded)
		times.Track(start)
	}

	lo, hi := times.MinMax()
	logger.Infof("Average %.2f ms/frame", util.Milliseconds(times.Average()))
	logger.Infof("Median %.2f ms, min %.2f ms, max %.2f ms",
		util.Milliseconds(times.Median()), util.Milliseconds(lo), util.Milliseconds(hi))
}
