// Package storage persists the per-visitor unlock flag.
//
// A Store is a tiny scoped key-value table. Backends wrap driver failures in
// domain.ErrStorageUnavailable and report unknown keys as domain.ErrFlagNotFound.
package storage

import (
	"context"
	"errors"

	"github.com/Rama-Divya/Myhero/internal/domain"
)

// Store is a durable key-value table partitioned by visitor scope
type Store interface {
	Get(ctx context.Context, scope, key string) (string, error)
	Put(ctx context.Context, scope, key, value string) error
	Delete(ctx context.Context, scope, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Flag binds one boolean flag of one scope in a Store
type Flag struct {
	store Store
	scope string
	key   string
}

// NewFlag creates a flag view over store
func NewFlag(store Store, scope, key string) *Flag {
	return &Flag{store: store, scope: scope, key: key}
}

// IsSet reports whether the flag holds the "unlocked" value
func (f *Flag) IsSet(ctx context.Context) (bool, error) {
	value, err := f.store.Get(ctx, f.scope, f.key)
	if errors.Is(err, domain.ErrFlagNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == domain.FlagValueSet, nil
}

// Set stores the "unlocked" value
func (f *Flag) Set(ctx context.Context) error {
	return f.store.Put(ctx, f.scope, f.key, domain.FlagValueSet)
}

// Clear removes the flag
func (f *Flag) Clear(ctx context.Context) error {
	return f.store.Delete(ctx, f.scope, f.key)
}
