package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rama-Divya/Myhero/internal/domain"
)

// PostgresStore implements Store on the unlock_flags table
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore wraps an open pool. The schema must already be migrated.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, scope, key string) (string, error) {
	var value string
	err := s.db.QueryRow(ctx, SQLPostgresSelectFlag, scope, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrFlagNotFound
		}
		return "", fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgGetFlagFailed, err)
	}
	return value, nil
}

func (s *PostgresStore) Put(ctx context.Context, scope, key, value string) error {
	if _, err := s.db.Exec(ctx, SQLPostgresUpsertFlag, scope, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgPutFlagFailed, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, scope, key string) error {
	if _, err := s.db.Exec(ctx, SQLPostgresDeleteFlag, scope, key); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgDeleteFlagFailed, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgPingFailed, err)
	}
	return nil
}

// Close closes the underlying pool
func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}
