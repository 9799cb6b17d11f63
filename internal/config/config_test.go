package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubedeck/tubedeck/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "json", cfg.Storage.Backend)
	assert.Equal(t, 600*time.Millisecond, cfg.Mock.Latency)
	assert.Equal(t, int64(0), cfg.Mock.Seed)
	assert.Equal(t, 20, cfg.Mock.MaxResults)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"missing data dir", func(c *config.Config) { c.Storage.DataDir = "" }, "data_dir"},
		{"bad backend", func(c *config.Config) { c.Storage.Backend = "redis" }, "backend"},
		{"negative latency", func(c *config.Config) { c.Mock.Latency = -time.Second }, "latency"},
		{"zero max results", func(c *config.Config) { c.Mock.MaxResults = 0 }, "max_results"},
		{"bad log level", func(c *config.Config) { c.Log.Level = "verbose" }, "log level"},
		{"bad log format", func(c *config.Config) { c.Log.Format = "xml" }, "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLoader(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		cfg, err := config.NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Storage.Backend)
	})

	t.Run("reads config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tubedeck.yaml")
		content := `
storage:
  backend: sqlite
  data_dir: /tmp/tubedeck-test
mock:
  latency: 150ms
  seed: 42
log:
  level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := config.NewLoader(path).Load()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", cfg.Storage.Backend)
		assert.Equal(t, "/tmp/tubedeck-test", cfg.Storage.DataDir)
		assert.Equal(t, 150*time.Millisecond, cfg.Mock.Latency)
		assert.Equal(t, int64(42), cfg.Mock.Seed)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 20, cfg.Mock.MaxResults, "unset keys keep defaults")
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("TUBEDECK_LOG_LEVEL", "error")

		cfg, err := config.NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tubedeck.yaml")
		require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: redis\n"), 0600))

		_, err := config.NewLoader(path).Load()
		assert.ErrorContains(t, err, "backend")
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tubedeck.yaml")
		require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0600))

		_, err := config.NewLoader(path).Load()
		assert.Error(t, err)
	})
}

func TestSQLitePath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.DataDir = "/data"
	assert.Equal(t, filepath.Join("/data", "prefs.db"), cfg.SQLitePath())
}
