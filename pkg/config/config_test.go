package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
	// explicit path that does not exist is an error
	if err == nil {
		t.Fatal("Expected error for explicit missing config path")
	}
	_ = cfg
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Missing default config must not be an error: %v", err)
	}
	if cfg.PreviewPort != 9000 {
		t.Errorf("Expected default preview port 9000, got %d", cfg.PreviewPort)
	}
	if cfg.Export.ImageScale != 2.0 {
		t.Errorf("Expected default image scale 2.0, got %v", cfg.Export.ImageScale)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	content := "data_path: data/family.json\npreview_port: 9100\nexport:\n  output_dir: site\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.PreviewPort != 9100 {
		t.Errorf("Expected preview_port override 9100, got %d", cfg.PreviewPort)
	}
	if cfg.Export.OutputDir != "site" {
		t.Errorf("Expected output_dir override, got %s", cfg.Export.OutputDir)
	}
	// untouched fields keep defaults
	if cfg.WatchDebounce != 250*time.Millisecond {
		t.Errorf("Expected default debounce, got %v", cfg.WatchDebounce)
	}
	// relative data path resolves against the config dir
	want := filepath.Join(dir, "data", "family.json")
	if cfg.DataPath != want {
		t.Errorf("Expected resolved data path %s, got %s", want, cfg.DataPath)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("data_path: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Expected parse error")
	}
}
