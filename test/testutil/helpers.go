// Package testutil provides shared helpers for package tests.
package testutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tubedeck/tubedeck/internal/config"
	"github.com/tubedeck/tubedeck/internal/events"
	"github.com/tubedeck/tubedeck/internal/persist"
	"github.com/tubedeck/tubedeck/internal/services/mock"
)

// NewTestLogger creates a logger that discards output into a buffer.
func NewTestLogger() *events.Logger {
	var buf bytes.Buffer
	return events.NewTestLogger(events.DebugLevel, "json", &buf)
}

// NewTestEnv creates a deterministic mock environment: fixed seed, no
// simulated latency.
func NewTestEnv(seed int64) *mock.Env {
	return mock.NewEnv(seed, 0)
}

// NewTestKV creates a JSON key-value store rooted in a per-test temp dir.
func NewTestKV(t *testing.T) persist.KVStore {
	t.Helper()
	kv, err := persist.NewJSONStore(t.TempDir(), NewTestLogger())
	require.NoError(t, err)
	return kv
}

// TestConfigWithDir creates a config rooted at dataDir with deterministic
// mock settings.
func TestConfigWithDir(dataDir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Storage.DataDir = dataDir
	cfg.Mock.Latency = 0
	cfg.Mock.Seed = 1
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"
	cfg.Log.Color = false
	return cfg
}
