package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rama-Divya/Myhero/internal/database"
	"github.com/Rama-Divya/Myhero/internal/domain"
)

// Options selects and configures a backend
type Options struct {
	Driver string

	// postgres
	DatabaseURL     string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration

	// sqlite
	SQLitePath string

	// read-through cache in front of durable drivers; zero TTL disables it
	CacheSize int
	CacheTTL  time.Duration
}

// Open builds the configured Store, applying migrations for SQL drivers
func Open(ctx context.Context, opts Options) (Store, error) {
	var store Store
	switch opts.Driver {
	case domain.StorageDriverMemory, "":
		slog.Default().Info(LogMsgStoreOpened, "driver", domain.StorageDriverMemory)
		return NewMemoryStore(), nil

	case domain.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, opts.DatabaseURL, opts.MaxConns, opts.MaxConnIdleTime, opts.MaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
		}
		if _, err := database.MigratePool(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
		}
		store = NewPostgresStore(pool)

	case domain.StorageDriverSQLite:
		db, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
		}
		if _, err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
		}
		store = NewSQLiteStore(db)

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDriver, opts.Driver)
	}

	slog.Default().Info(LogMsgStoreOpened, "driver", opts.Driver, "cache_ttl", opts.CacheTTL)
	if opts.CacheTTL > 0 {
		store = NewCachedStore(store, opts.CacheSize, opts.CacheTTL)
	}
	return store, nil
}
