// Package config holds hydrobind's file-based configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all hydrobind configuration.
type Config struct {
	// Engine library settings
	Engine EngineConfig `yaml:"engine"`

	// Open-data catalog used to download engine builds
	Catalog CatalogConfig `yaml:"catalog"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig locates the native engine library.
type EngineConfig struct {
	LibraryPath string `yaml:"library_path"`
	Version     string `yaml:"version"` // requested build, "latest" allowed
}

// CatalogConfig configures the engine-build download client.
type CatalogConfig struct {
	BaseURL   string `yaml:"base_url"`
	PackageID string `yaml:"package_id"`
	CacheDir  string `yaml:"cache_dir"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug/info/warn/error
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() *Config {
	cache, _ := os.UserCacheDir()
	return &Config{
		Engine: EngineConfig{
			Version: "latest",
		},
		Catalog: CatalogConfig{
			BaseURL:   "https://data.cnra.ca.gov",
			PackageID: "iwfm-integrated-water-flow-model",
			CacheDir:  filepath.Join(cache, "hydrobind"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// FromEnv returns the default configuration with environment overrides
// applied, for callers running without a config file.
func FromEnv() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg
}

// Load reads a yaml config file and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as yaml.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides lets the environment win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("IWFM_LIBRARY"); v != "" {
		c.Engine.LibraryPath = v
	}
	if v := os.Getenv("IWFM_CATALOG_URL"); v != "" {
		c.Catalog.BaseURL = v
	}
	if v := os.Getenv("IWFM_CACHE_DIR"); v != "" {
		c.Catalog.CacheDir = v
	}
}
