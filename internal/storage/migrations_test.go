package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateReachesExpectedVersion(t *testing.T) {
	ctx := context.Background()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Migrate(ctx))

	var version int
	require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := setupTestDB(t)

	require.NoError(t, store.Migrate(ctx), "re-running migrations is a no-op")

	// schema is usable after the second pass
	profile := sampleProfile("alice")
	require.NoError(t, store.SaveProfile(ctx, profile))
}
