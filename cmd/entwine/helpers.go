package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/spiritatlas/entwine/internal/config"
	"github.com/spiritatlas/entwine/internal/engine"
	"github.com/spiritatlas/entwine/internal/service"
	"github.com/spiritatlas/entwine/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/entwine/entwine.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine wires the analysis engine. The augmenter is attached only
// when withAI is set; a misconfigured AI provider is then a hard error
// rather than a silent downgrade.
func initEngine(store service.Storage, withAI bool) (*engine.AnalysisEngine, func(), error) {
	cfg := engine.DefaultConfig()
	if size := viper.GetInt("engine.cache_size"); size > 0 {
		cfg.CacheSize = size
	}
	if timeout := viper.GetDuration("engine.ai_timeout"); timeout > 0 {
		cfg.AITimeout = timeout
	}

	if !withAI {
		return engine.NewWithConfig(store, nil, cfg), func() {}, nil
	}

	augmenter, err := createAugmenter()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize AI provider: %w", err)
	}

	return engine.NewWithConfig(store, augmenter, cfg), augmenter.Close, nil
}
