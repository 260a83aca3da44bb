package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GATEHOUSE_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.UI.HeaderShown {
		t.Fatalf("header should default to shown")
	}
	if cfg.UI.Background != "#0f0f23" {
		t.Fatalf("background = %q", cfg.UI.Background)
	}
	if cfg.UI.LocationName != "Front Desk" {
		t.Fatalf("location = %q", cfg.UI.LocationName)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
	if cfg.Database.Path == "" {
		t.Fatalf("database path must have a default")
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[ui]\nlocation_name = \"North Lobby\"\nheader_shown = false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HOME", dir)
	t.Setenv("GATEHOUSE_CONFIG", path)
	t.Setenv("GATEHOUSE_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.LocationName != "North Lobby" {
		t.Fatalf("expected file value, got %q", cfg.UI.LocationName)
	}
	if cfg.UI.HeaderShown {
		t.Fatalf("expected header off from file")
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected env override, got %q", cfg.Log.Level)
	}
}
