package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"products", "orders", "schema_version"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s must exist", table)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not re-run migrations against existing tables.
	db, err = Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var version int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_version`).Scan(&version))
	assert.Equal(t, 1, version)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Seed(ctx, db))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count))
	assert.Equal(t, 5, count)

	var inStock int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT in_stock FROM products WHERE name = 'USB-C Hub'`).Scan(&inStock))
	assert.Equal(t, 0, inStock, "the hub ships out of stock")

	// Seeding again must not duplicate.
	require.NoError(t, Seed(ctx, db))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count))
	assert.Equal(t, 5, count)
}
