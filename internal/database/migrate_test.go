package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "flags.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db := openTestSQLite(t)

	version, err := Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = db.ExecContext(ctx,
		"INSERT INTO unlock_flags (scope, flag_key, value, updated_at) VALUES (?, ?, ?, ?)",
		"visitor", "fanwishUnlocked", "1", 0)
	require.NoError(t, err)

	// Re-running is a no-op and keeps data
	version, err = Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	var value string
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT value FROM unlock_flags WHERE scope = ? AND flag_key = ?", "visitor", "fanwishUnlocked").Scan(&value))
	assert.Equal(t, "1", value)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db := openTestSQLite(t)

	_, err := Migrate(context.Background(), db, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownDialect)
}

func TestMigrationsEmbedded(t *testing.T) {
	for _, dir := range []string{MigrationsDirPostgres, MigrationsDirSQLite} {
		entries, err := migrationsFS.ReadDir(dir)
		require.NoError(t, err, dir)
		assert.NotEmpty(t, entries, dir)
	}
}
