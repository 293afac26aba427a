package main

import (
	"flag"
	"log"
	"runtime"

	"spheres/internal/logger"
	"spheres/pkg/config"
	"spheres/pkg/display"
	"spheres/pkg/engine"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	level := flag.String("log", "", "Log level override (debug, info, warn, error)")
	sequential := flag.Bool("sequential", false, "Render on a single goroutine")
	flag.Parse()

	cfg, cfgErr := config.LoadConfig(*configPath)
	if *level != "" {
		cfg.Log.Level = *level
	}
	if *sequential {
		cfg.Render.Threaded = false
	}

	logger, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	if cfgErr != nil {
		logger.Warn(cfgErr)
	}
	logger.Info("Starting spheres viewer...")

	eng, err := engine.NewEngine(cfg.Render, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize render engine: %v", err)
	}

	viewer, err := display.NewViewer(cfg, eng, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize viewer: %v", err)
	}

	logger.Infof("Viewer ready (%d workers, threaded=%v), press T to toggle, Space to pause",
		eng.Workers(), cfg.Render.Threaded)
	viewer.Run()
}
