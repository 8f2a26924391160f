package cache

import (
	"fmt"
	"time"

	"github.com/Soneshaps/musicgpt-clone/config"
)

// New builds the configured backend. Redis connection failures are returned
// so the caller can decide whether to continue without a cache.
func New(cfg *config.Config) (Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		return CreateRedisCache(RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			MinIdle:  cfg.Redis.MinIdle,
			Prefix:   cfg.Cache.Prefix,
		})
	case config.CacheBackendMemory:
		return NewMemoryCache(cfg.Cache.TTL.Std(), time.Minute), nil
	case config.CacheBackendNone:
		return NopCache{}, nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Cache.Backend)
	}
}
