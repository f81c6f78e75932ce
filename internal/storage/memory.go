package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/Rama-Divya/Myhero/internal/domain"
)

// MemoryStore keeps flags in process memory; they survive page reloads but
// not service restarts.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, scope, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", fmt.Errorf("%w: %s", domain.ErrStorageUnavailable, ErrMsgStoreClosed)
	}
	value, ok := m.values[compositeKey(scope, key)]
	if !ok {
		return "", domain.ErrFlagNotFound
	}
	return value, nil
}

func (m *MemoryStore) Put(_ context.Context, scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("%w: %s", domain.ErrStorageUnavailable, ErrMsgStoreClosed)
	}
	m.values[compositeKey(scope, key)] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("%w: %s", domain.ErrStorageUnavailable, ErrMsgStoreClosed)
	}
	delete(m.values, compositeKey(scope, key))
	return nil
}

func (m *MemoryStore) Ping(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return fmt.Errorf("%w: %s", domain.ErrStorageUnavailable, ErrMsgStoreClosed)
	}
	return nil
}

// Close makes every further call fail with domain.ErrStorageUnavailable
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
