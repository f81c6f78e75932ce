package storage

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/metrics"
)

// cacheEntry remembers both present and absent flags; most visitors have none
type cacheEntry struct {
	value string
	found bool
}

// CachedStore puts an expiring LRU in front of another Store. Writes go
// through to the backing store first; failed writes evict the entry so the
// next read asks the backend again.
type CachedStore struct {
	next Store
	lru  *expirable.LRU[string, cacheEntry]
}

// NewCachedStore wraps next with a cache of size entries living for ttl
func NewCachedStore(next Store, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedStore{
		next: next,
		lru:  expirable.NewLRU[string, cacheEntry](size, nil, ttl),
	}
}

func (c *CachedStore) Get(ctx context.Context, scope, key string) (string, error) {
	k := compositeKey(scope, key)
	if entry, ok := c.lru.Get(k); ok {
		metrics.FlagCacheLookups.WithLabelValues(metrics.CacheResultHit).Inc()
		if !entry.found {
			return "", domain.ErrFlagNotFound
		}
		return entry.value, nil
	}
	metrics.FlagCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()

	value, err := c.next.Get(ctx, scope, key)
	switch {
	case err == nil:
		c.lru.Add(k, cacheEntry{value: value, found: true})
	case errors.Is(err, domain.ErrFlagNotFound):
		c.lru.Add(k, cacheEntry{})
	}
	return value, err
}

func (c *CachedStore) Put(ctx context.Context, scope, key, value string) error {
	k := compositeKey(scope, key)
	if err := c.next.Put(ctx, scope, key, value); err != nil {
		c.lru.Remove(k)
		return err
	}
	c.lru.Add(k, cacheEntry{value: value, found: true})
	return nil
}

func (c *CachedStore) Delete(ctx context.Context, scope, key string) error {
	k := compositeKey(scope, key)
	if err := c.next.Delete(ctx, scope, key); err != nil {
		c.lru.Remove(k)
		return err
	}
	c.lru.Add(k, cacheEntry{})
	return nil
}

func (c *CachedStore) Ping(ctx context.Context) error {
	return c.next.Ping(ctx)
}

// Close purges the cache and closes the backing store
func (c *CachedStore) Close() error {
	c.lru.Purge()
	return c.next.Close()
}

// Len returns the number of cached entries
func (c *CachedStore) Len() int {
	return c.lru.Len()
}
