// Package config handles sketchview configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all settings.
type Config struct {
	Viewer  ViewerConfig  `yaml:"viewer"`
	Data    DataConfig    `yaml:"data"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewerConfig holds display and rendering settings.
type ViewerConfig struct {
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	Fullscreen      bool          `yaml:"fullscreen"`
	VSync           bool          `yaml:"vsync"`
	MSAA            int           `yaml:"msaa"`              // samples, 0 = off
	FieldOfView     float32       `yaml:"fov"`               // degrees
	Background      [3]float32    `yaml:"background"`        // RGB clear colour
	AutoRotateSpeed float32       `yaml:"auto_rotate_speed"` // radians per second
	FrameBudget     time.Duration `yaml:"frame_budget"`      // 0 = uncapped

	// Screenshot, when set, renders one frame to this PNG and exits.
	Screenshot string `yaml:"-"`
}

// DataConfig holds sketch file locations.
type DataConfig struct {
	SketchDir string `yaml:"sketch_dir"` // resolves relative sketch paths
}

// ExportConfig holds sketchtool export defaults.
type ExportConfig struct {
	Format  string `yaml:"format"` // obj or json
	OutDir  string `yaml:"out_dir"`
	Workers int    `yaml:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Width:           1280,
			Height:          720,
			Fullscreen:      false,
			VSync:           true,
			MSAA:            4,
			FieldOfView:     60,
			Background:      [3]float32{0.1, 0.1, 0.12},
			AutoRotateSpeed: 0.3,
		},
		Data: DataConfig{
			SketchDir: ".",
		},
		Export: ExportConfig{
			Format:  "obj",
			OutDir:  ".",
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("viewer size must be positive, got %dx%d", c.Viewer.Width, c.Viewer.Height)
	}
	if c.Viewer.FieldOfView <= 0 || c.Viewer.FieldOfView >= 180 {
		return fmt.Errorf("viewer fov must be in (0, 180), got %v", c.Viewer.FieldOfView)
	}
	if c.Viewer.MSAA < 0 {
		return fmt.Errorf("viewer msaa must not be negative, got %d", c.Viewer.MSAA)
	}
	switch c.Export.Format {
	case "obj", "json":
	default:
		return fmt.Errorf("unknown export format %q", c.Export.Format)
	}
	if c.Export.Workers < 1 {
		return fmt.Errorf("export workers must be at least 1, got %d", c.Export.Workers)
	}
	return nil
}
