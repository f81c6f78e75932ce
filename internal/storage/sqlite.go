package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Rama-Divya/Myhero/internal/domain"
)

// SQLiteStore implements Store on a local SQLite file, for single-node deployments
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file at path
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open(SQLiteDriverName, fmt.Sprintf(SQLiteDSNFormat, path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenSQLiteFailed, err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewSQLiteStore wraps an open database. The schema must already be migrated.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, scope, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, SQLSQLiteSelectFlag, scope, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrFlagNotFound
		}
		return "", fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgGetFlagFailed, err)
	}
	return value, nil
}

func (s *SQLiteStore) Put(ctx context.Context, scope, key, value string) error {
	if _, err := s.db.ExecContext(ctx, SQLSQLiteUpsertFlag, scope, key, value, time.Now().Unix()); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgPutFlagFailed, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, scope, key string) error {
	if _, err := s.db.ExecContext(ctx, SQLSQLiteDeleteFlag, scope, key); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgDeleteFlagFailed, err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgPingFailed, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
