// Package config loads optional viewer settings from a .mahagedara.yml
// file. Everything has a default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".mahagedara.yml"

// Config holds viewer and exporter settings.
type Config struct {
	// DataPath points at the family.json file. Relative paths resolve
	// against the config file's directory.
	DataPath string `yaml:"data_path"`

	// AccentColor is the hex accent used by the TUI theme.
	AccentColor string `yaml:"accent_color"`

	Export ExportConfig `yaml:"export"`

	// PreviewPort is the starting port for the bundle preview server.
	PreviewPort int `yaml:"preview_port"`

	// WatchDebounce coalesces rapid file-change events on reload.
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// ExportConfig holds static-bundle export settings.
type ExportConfig struct {
	// OutputDir is the default bundle directory for -export.
	OutputDir string `yaml:"output_dir"`

	// ImageScale multiplies the PNG render resolution.
	ImageScale float64 `yaml:"image_scale"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataPath:      "family.json",
		AccentColor:   "#BD93F9",
		PreviewPort:   9000,
		WatchDebounce: 250 * time.Millisecond,
		Export: ExportConfig{
			OutputDir:  "dist",
			ImageScale: 2.0,
		},
	}
}

// Load reads the config file at path, merging it over the defaults. When
// path is empty, DefaultFileName in the working directory is tried; if it
// does not exist the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultFileName
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Export.ImageScale <= 0 {
		cfg.Export.ImageScale = Default().Export.ImageScale
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = Default().WatchDebounce
	}
	if cfg.PreviewPort <= 0 {
		cfg.PreviewPort = Default().PreviewPort
	}

	if !filepath.IsAbs(cfg.DataPath) {
		cfg.DataPath = filepath.Join(filepath.Dir(path), cfg.DataPath)
	}

	return cfg, nil
}
