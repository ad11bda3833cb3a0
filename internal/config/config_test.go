package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Engine.Version != "latest" {
		t.Errorf("expected Version=latest, got %s", cfg.Engine.Version)
	}
	if cfg.Catalog.BaseURL == "" {
		t.Error("expected a default catalog URL")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("IWFM_LIBRARY", "")
	t.Setenv("IWFM_CATALOG_URL", "")
	t.Setenv("IWFM_CACHE_DIR", "")

	path := filepath.Join(t.TempDir(), "hydrobind.yaml")

	cfg := DefaultConfig()
	cfg.Engine.LibraryPath = "/opt/iwfm/libiwfm.so"
	cfg.Engine.Version = "2015.0.1273"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Engine.LibraryPath != "/opt/iwfm/libiwfm.so" {
		t.Errorf("expected LibraryPath round-trip, got %s", loaded.Engine.LibraryPath)
	}
	if loaded.Engine.Version != "2015.0.1273" {
		t.Errorf("expected Version=2015.0.1273, got %s", loaded.Engine.Version)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("IWFM_LIBRARY", "/env/libiwfm.so")
	t.Setenv("IWFM_CATALOG_URL", "http://catalog.local")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.Engine.LibraryPath != "/env/libiwfm.so" {
		t.Errorf("expected env LibraryPath, got %s", cfg.Engine.LibraryPath)
	}
	if cfg.Catalog.BaseURL != "http://catalog.local" {
		t.Errorf("expected env BaseURL, got %s", cfg.Catalog.BaseURL)
	}
}
