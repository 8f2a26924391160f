package cache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheDisabled = errors.New("cache disabled")

// NopCache always misses. It stands in when no backend is configured or
// Redis was unreachable at startup.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NopCache) Delete(context.Context, string) error { return nil }

func (NopCache) FlushAll(context.Context) error { return nil }

func (NopCache) Ping(context.Context) error { return ErrCacheDisabled }

func (NopCache) Close() error { return nil }
