package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process backend for single-instance deployments and
// local development.
type MemoryCache struct {
	cache *gocache.Cache
}

func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{cache: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, found := m.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	data, ok := value.([]byte)
	if !ok {
		m.cache.Delete(key)
		return nil, false, nil
	}
	return data, true, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.cache.Set(key, stored, ttl)
	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

func (m *MemoryCache) FlushAll(ctx context.Context) error {
	m.cache.Flush()
	return nil
}

func (m *MemoryCache) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryCache) Close() error {
	return nil
}
