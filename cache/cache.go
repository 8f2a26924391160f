package cache

import (
	"context"
	"time"
)

// Cache stores opaque serialized values under string keys. A missing or
// expired key is reported as (nil, false, nil); only backend failures return
// an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	FlushAll(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
