package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Scene.HouseRows != 50 {
		t.Errorf("expected house_rows 50, got %d", cfg.Scene.HouseRows)
	}
	if cfg.Scene.MaxInstancesPerDraw != 1024 {
		t.Errorf("expected max_instances_per_draw 1024, got %d", cfg.Scene.MaxInstancesPerDraw)
	}
	if !cfg.Scene.Skybox {
		t.Error("expected skybox to be enabled by default")
	}
	if !cfg.Scene.LightGizmos {
		t.Error("expected light_gizmos to be enabled by default")
	}

	if cfg.Debug.StrictGL {
		t.Error("expected strict_gl to be false by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "sceneview.yaml")

	content := []byte(`graphics:
  width: 1920
  height: 1080
  vsync: false
scene:
  house_rows: 8
  max_instances_per_draw: 64
logging:
  level: debug
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync false after file load")
	}
	if cfg.Scene.HouseRows != 8 {
		t.Errorf("expected house_rows 8, got %d", cfg.Scene.HouseRows)
	}
	if cfg.Scene.MaxInstancesPerDraw != 64 {
		t.Errorf("expected max_instances_per_draw 64, got %d", cfg.Scene.MaxInstancesPerDraw)
	}
	// Fields absent from the file keep their defaults.
	if !cfg.Scene.Skybox {
		t.Error("expected skybox default to survive partial file")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "sceneview.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Scene.HouseRows = 3
	cfg.Scene.Background = [3]float32{0.1, 0.2, 0.3}
	cfg.Debug.StrictGL = true

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if loaded.Graphics.Width != 800 {
		t.Errorf("round-trip width: got %d, want 800", loaded.Graphics.Width)
	}
	if loaded.Scene.HouseRows != 3 {
		t.Errorf("round-trip house_rows: got %d, want 3", loaded.Scene.HouseRows)
	}
	if loaded.Scene.Background != [3]float32{0.1, 0.2, 0.3} {
		t.Errorf("round-trip background: got %v", loaded.Scene.Background)
	}
	if !loaded.Debug.StrictGL {
		t.Error("round-trip strict_gl: got false, want true")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Scene.MaxInstancesPerDraw = 0
	if err := cfg.validate(); err == nil {
		t.Error("expected validation error for zero max_instances_per_draw")
	}

	cfg = Default()
	cfg.Scene.HouseRows = -1
	if err := cfg.validate(); err == nil {
		t.Error("expected validation error for negative house_rows")
	}

	if err := Default().validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}
