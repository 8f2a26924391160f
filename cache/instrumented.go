package cache

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Soneshaps/musicgpt-clone/monitoring"
	"github.com/Soneshaps/musicgpt-clone/utils"
)

type Stats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Sets    int64   `json:"sets"`
	Errors  int64   `json:"errors"`
	HitRate float64 `json:"hitRate"`
}

// InstrumentedCache decorates a backend with debug logging, Prometheus
// counters and in-process hit/miss stats.
type InstrumentedCache struct {
	inner   Cache
	backend string
	metrics *monitoring.Metrics

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
	errors atomic.Int64
}

func NewInstrumentedCache(inner Cache, backend string, metrics *monitoring.Metrics) *InstrumentedCache {
	return &InstrumentedCache{inner: inner, backend: backend, metrics: metrics}
}

func (c *InstrumentedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	value, ok, err := c.inner.Get(ctx, key)

	result := "miss"
	switch {
	case err != nil:
		result = "error"
		c.errors.Add(1)
	case ok:
		result = "hit"
		c.hits.Add(1)
	default:
		c.misses.Add(1)
	}
	c.observe("get", result, start)

	c.log(ctx, err).Debug("cache get",
		zap.String("key", key),
		zap.String("result", result),
		zap.Duration("latency", time.Since(start)),
	)
	return value, ok, err
}

func (c *InstrumentedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	err := c.inner.Set(ctx, key, value, ttl)
	if err != nil {
		c.errors.Add(1)
	} else {
		c.sets.Add(1)
	}
	c.observe("set", okOrError(err), start)

	c.log(ctx, err).Debug("cache set",
		zap.String("key", key),
		zap.Int("bytes", len(value)),
		zap.Duration("ttl", ttl),
	)
	return err
}

func (c *InstrumentedCache) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := c.inner.Delete(ctx, key)
	if err != nil {
		c.errors.Add(1)
	}
	c.observe("delete", okOrError(err), start)
	c.log(ctx, err).Debug("cache delete", zap.String("key", key))
	return err
}

func (c *InstrumentedCache) FlushAll(ctx context.Context) error {
	start := time.Now()
	err := c.inner.FlushAll(ctx)
	if err != nil {
		c.errors.Add(1)
	}
	c.observe("flush", okOrError(err), start)
	c.log(ctx, err).Warn("cache flushed", zap.String("backend", c.backend))
	return err
}

func (c *InstrumentedCache) Ping(ctx context.Context) error {
	return c.inner.Ping(ctx)
}

func (c *InstrumentedCache) Close() error {
	return c.inner.Close()
}

func (c *InstrumentedCache) Backend() string {
	return c.backend
}

func (c *InstrumentedCache) GetStats() Stats {
	s := Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Sets:   c.sets.Load(),
		Errors: c.errors.Load(),
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}
	return s
}

func (c *InstrumentedCache) observe(op, result string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.CacheOps.WithLabelValues(op, result).Inc()
	c.metrics.CacheLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// log returns the request logger, with the error attached when there is one.
func (c *InstrumentedCache) log(ctx context.Context, err error) *zap.Logger {
	logger := utils.FromContext(ctx).With(zap.String("cache_backend", c.backend))
	if err != nil {
		return logger.With(zap.Error(err))
	}
	return logger
}

func okOrError(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
