package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Viewer.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Viewer.Height)
	}
	if cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Viewer.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Viewer.FieldOfView != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Viewer.FieldOfView)
	}

	if cfg.Export.Format != "obj" {
		t.Errorf("expected export format obj, got %s", cfg.Export.Format)
	}
	if cfg.Export.Workers != 4 {
		t.Errorf("expected 4 export workers, got %d", cfg.Export.Workers)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewer:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fov: 75
  background: [0, 0, 0]
  auto_rotate_speed: 0.5
  frame_budget: 16ms

data:
  sketch_dir: "/srv/sketches"

export:
  format: json
  out_dir: "out"
  workers: 8

logging:
  level: "debug"
  log_file: "sketchview.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Viewer.Width != 1920 || cfg.Viewer.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if !cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Viewer.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Viewer.FieldOfView != 75 {
		t.Errorf("expected fov 75, got %v", cfg.Viewer.FieldOfView)
	}
	if cfg.Viewer.Background != [3]float32{0, 0, 0} {
		t.Errorf("expected black background, got %v", cfg.Viewer.Background)
	}
	if cfg.Viewer.FrameBudget != 16*time.Millisecond {
		t.Errorf("expected frame budget 16ms, got %v", cfg.Viewer.FrameBudget)
	}

	if cfg.Data.SketchDir != "/srv/sketches" {
		t.Errorf("expected sketch dir /srv/sketches, got %s", cfg.Data.SketchDir)
	}

	if cfg.Export.Format != "json" || cfg.Export.OutDir != "out" || cfg.Export.Workers != 8 {
		t.Errorf("unexpected export config %+v", cfg.Export)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sketchview.log" {
		t.Errorf("expected log file 'sketchview.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
viewer:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFrom(t *testing.T) {
	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom(\"\") failed: %v", err)
	}
	if cfg.Viewer.Width != 1280 {
		t.Errorf("expected defaults, got width %d", cfg.Viewer.Width)
	}

	if _, err := LoadFrom("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.Viewer.Width = 0 }, true},
		{"fov too wide", func(c *Config) { c.Viewer.FieldOfView = 180 }, true},
		{"json export", func(c *Config) { c.Export.Format = "json" }, false},
		{"gltf export", func(c *Config) { c.Export.Format = "gltf" }, true},
		{"no workers", func(c *Config) { c.Export.Workers = 0 }, true},
		{"msaa off", func(c *Config) { c.Viewer.MSAA = 0 }, false},
		{"negative msaa", func(c *Config) { c.Viewer.MSAA = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("viewer:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestResolveSketch(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Default()
	cfg.Data.SketchDir = tmpDir

	if got := cfg.ResolveSketch("/abs/a.tilt"); got != "/abs/a.tilt" {
		t.Errorf("absolute path changed: %s", got)
	}
	if got := cfg.ResolveSketch("missing.tilt"); got != filepath.Join(tmpDir, "missing.tilt") {
		t.Errorf("relative path not joined: %s", got)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Viewer.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Viewer.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Viewer.Width != 2560 || cfg.Viewer.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "no-rotate flag",
			setup: func() { *flagNoRotate = true },
			verify: func(cfg *Config) {
				if cfg.Viewer.AutoRotateSpeed != 0 {
					t.Errorf("expected rotation disabled, got %v", cfg.Viewer.AutoRotateSpeed)
				}
			},
			teardown: func() { *flagNoRotate = false },
		},
		{
			name:  "screenshot flag",
			setup: func() { *flagScreenshot = "shot.png" },
			verify: func(cfg *Config) {
				if cfg.Viewer.Screenshot != "shot.png" {
					t.Errorf("expected screenshot path, got %q", cfg.Viewer.Screenshot)
				}
			},
			teardown: func() { *flagScreenshot = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewer:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Flag beats file
	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Viewer.Width)
	}
	// File beats defaults
	if cfg.Viewer.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Viewer.Height)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Export.Format = "json"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Export.Format != "json" {
		t.Errorf("expected saved format json, got %s", loaded.Export.Format)
	}
}
