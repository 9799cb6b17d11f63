// Package client wires the application together: store, persistence
// bridge and mock services are constructed here and handed to consumers
// explicitly rather than reached through ambient globals.
package client

import (
	"fmt"

	"github.com/tubedeck/tubedeck/internal/config"
	"github.com/tubedeck/tubedeck/internal/events"
	"github.com/tubedeck/tubedeck/internal/persist"
	"github.com/tubedeck/tubedeck/internal/services/catalog"
	"github.com/tubedeck/tubedeck/internal/services/comments"
	"github.com/tubedeck/tubedeck/internal/services/mock"
	"github.com/tubedeck/tubedeck/internal/store"
)

// Client provides the high-level API for the application.
type Client struct {
	Store    *store.Store
	Bridge   *persist.Bridge
	Catalog  *catalog.Service
	Comments *comments.Service

	config *config.Config
	logger *events.Logger
	kv     persist.KVStore
	detach func()
}

// New creates a fully wired client: the store is seeded with defaults,
// rehydrated from the configured storage backend, and mirrored back to it
// on every relevant change.
func New(cfg *config.Config, logger *events.Logger) (*Client, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	kv, err := newKVStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	appStore := store.New(logger)

	bridge := persist.NewBridge(appStore, kv, logger)
	bridge.Rehydrate()
	detach := bridge.Attach()

	env := mock.NewEnv(cfg.Mock.Seed, cfg.Mock.Latency)

	fallback := appStore.Snapshot().Config.FallbackVideo
	catalogService := catalog.NewService(env, fallback, logger)
	commentsService := comments.NewService(env, catalogService, logger)

	return &Client{
		Store:    appStore,
		Bridge:   bridge,
		Catalog:  catalogService,
		Comments: commentsService,
		config:   cfg,
		logger:   logger,
		kv:       kv,
		detach:   detach,
	}, nil
}

// Close flushes persisted state and releases the storage backend.
func (c *Client) Close() error {
	if c.detach != nil {
		c.detach()
	}
	if err := c.Bridge.Flush(); err != nil {
		c.logger.WithError(err).Warn("Failed to flush persisted state")
	}
	return c.kv.Close()
}

func newKVStore(cfg *config.Config, logger *events.Logger) (persist.KVStore, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return persist.NewSQLiteStore(cfg.SQLitePath(), logger)
	case "json":
		return persist.NewJSONStore(cfg.Storage.DataDir, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
