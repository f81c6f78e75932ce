package storage

// =============================================================================
// SQL Query Constants - PostgreSQL
// =============================================================================

const (
	// SQLPostgresSelectFlag retrieves a flag value for a visitor scope
	SQLPostgresSelectFlag = `
		SELECT value
		FROM unlock_flags
		WHERE scope = $1 AND flag_key = $2
	`

	// SQLPostgresUpsertFlag inserts or updates a flag value
	SQLPostgresUpsertFlag = `
		INSERT INTO unlock_flags (scope, flag_key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (scope, flag_key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	// SQLPostgresDeleteFlag removes a flag
	SQLPostgresDeleteFlag = `DELETE FROM unlock_flags WHERE scope = $1 AND flag_key = $2`
)

// =============================================================================
// SQL Query Constants - SQLite
// =============================================================================

const (
	SQLSQLiteSelectFlag = `SELECT value FROM unlock_flags WHERE scope = ? AND flag_key = ?`

	SQLSQLiteUpsertFlag = `
		INSERT INTO unlock_flags (scope, flag_key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (scope, flag_key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
	`

	SQLSQLiteDeleteFlag = `DELETE FROM unlock_flags WHERE scope = ? AND flag_key = ?`

	// SQLiteDriverName is the database/sql driver registered by modernc.org/sqlite
	SQLiteDriverName = "sqlite"

	// SQLiteDSNFormat opens a file database with WAL and a busy timeout
	SQLiteDSNFormat = "file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgGetFlagFailed    = "failed to get flag"
	ErrMsgPutFlagFailed    = "failed to put flag"
	ErrMsgDeleteFlagFailed = "failed to delete flag"
	ErrMsgPingFailed       = "failed to ping store"
	ErrMsgOpenSQLiteFailed = "failed to open sqlite database"
	ErrMsgStoreClosed      = "store is closed"
)

// =============================================================================
// Cache Defaults
// =============================================================================

const (
	DefaultCacheSize = 10000
)

// keySeparator joins scope and key into one cache/map key
const keySeparator = "\x00"

func compositeKey(scope, key string) string {
	return scope + keySeparator + key
}

// Log Messages
const (
	LogMsgStoreOpened = "Flag store opened"
)
