package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Render   RenderConfig   `yaml:"render"`
	Headless HeadlessConfig `yaml:"headless"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig contains settings for the interactive viewer
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	VSync      bool   `yaml:"vsync"`
	Resizable  bool   `yaml:"resizable"`
	PixelScale int    `yaml:"pixel_scale"` // Window pixels per traced pixel
}

// RenderConfig contains ray tracer settings
type RenderConfig struct {
	Threaded bool `yaml:"threaded"`
	Workers  int  `yaml:"workers"` // 0 means one per logical CPU
}

// HeadlessConfig contains settings for the timing harness
type HeadlessConfig struct {
	Frames   int     `yaml:"frames"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TimeStep float64 `yaml:"time_step"` // Seconds of scene time between frames
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error, fatal
	File  string `yaml:"file"`  // Optional: also write to this file
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      800,
			Height:     800,
			Title:      "spheres",
			VSync:      true,
			Resizable:  true,
			PixelScale: 1,
		},
		Render: RenderConfig{
			Threaded: true,
			Workers:  0,
		},
		Headless: HeadlessConfig{
			Frames:   100,
			Width:    1000,
			Height:   1000,
			TimeStep: 0.01,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a file.
// The defaults are returned alongside any error.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %v", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}

// Validate checks that every dimension and count is usable
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.PixelScale < 1 {
		return fmt.Errorf("pixel_scale must be at least 1, got %d", c.Window.PixelScale)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Render.Workers)
	}
	if c.Headless.Frames <= 0 {
		return fmt.Errorf("headless frames must be positive, got %d", c.Headless.Frames)
	}
	if c.Headless.Width <= 0 || c.Headless.Height <= 0 {
		return fmt.Errorf("headless size must be positive, got %dx%d", c.Headless.Width, c.Headless.Height)
	}
	return nil
}
