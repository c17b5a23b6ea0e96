package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSqliteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	cfg := NewSqliteDefaultConfig()
	cfg.Path = filepath.Join(t.TempDir(), "nested", "vault.db")

	conn, err := OpenSqlite(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var name string
	err = conn.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, SearchResultsTable).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, SearchResultsTable, name)

	// Re-running the migration on an existing table is a no-op.
	require.NoError(t, Migrate(ctx, conn))
}

func TestOpenSqliteRequiresPath(t *testing.T) {
	_, err := OpenSqlite(context.Background(), &SqliteConfig{})
	assert.Error(t, err)

	_, err = OpenSqlite(context.Background(), nil)
	assert.Error(t, err)
}
