package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Storage paths and backend selection
	Storage StorageConfig `json:"storage" mapstructure:"storage"`

	// Mock backend behavior
	Mock MockConfig `json:"mock" mapstructure:"mock"`

	// Logging
	Log LogConfig `json:"log" mapstructure:"log"`
}

// StorageConfig for local preference persistence.
type StorageConfig struct {
	DataDir string `json:"data_dir" mapstructure:"data_dir"` // Base directory for persisted state
	Backend string `json:"backend" mapstructure:"backend"`   // json or sqlite
}

// MockConfig tunes the simulated backend.
type MockConfig struct {
	Latency    time.Duration `json:"latency" mapstructure:"latency"`         // Base simulated network delay
	Seed       int64         `json:"seed" mapstructure:"seed"`               // 0 = time-seeded randomness
	MaxResults int           `json:"max_results" mapstructure:"max_results"` // Default result cap
}

// LogConfig for logging behavior.
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `json:"format" mapstructure:"format"` // text, json
	File   string `json:"file" mapstructure:"file"`     // Log file path (empty = stderr)
	Color  bool   `json:"color" mapstructure:"color"`   // Enable colored output
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir: ".tubedeck",
			Backend: "json",
		},
		Mock: MockConfig{
			Latency:    600 * time.Millisecond,
			Seed:       0,
			MaxResults: 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   "",
			Color:  true,
		},
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return errors.New("storage.data_dir is required")
	}

	if c.Storage.Backend != "json" && c.Storage.Backend != "sqlite" {
		return fmt.Errorf("invalid storage backend: %s", c.Storage.Backend)
	}

	if c.Mock.Latency < 0 {
		return errors.New("mock.latency must not be negative")
	}

	if c.Mock.MaxResults <= 0 {
		return errors.New("mock.max_results must be positive")
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	return nil
}

// EnsureDirectories creates required directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Storage.DataDir}

	if c.Log.File != "" {
		dirs = append(dirs, filepath.Dir(c.Log.File))
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

// SQLitePath returns the path of the sqlite preference database.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.Storage.DataDir, "prefs.db")
}
