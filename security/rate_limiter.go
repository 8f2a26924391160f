package security

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	IdleTTL           time.Duration // limiters unused this long are dropped
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client key.
type RateLimiter struct {
	config   RateLimitConfig
	limiters map[string]*clientLimiter
	mu       sync.Mutex
	stop     chan struct{}
	once     sync.Once
	now      func() time.Time
}

func CreateRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.IdleTTL <= 0 {
		config.IdleTTL = 5 * time.Minute
	}
	rl := &RateLimiter{
		config:   config,
		limiters: make(map[string]*clientLimiter),
		stop:     make(chan struct{}),
		now:      time.Now,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cl, exists := rl.limiters[key]
	if !exists {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.Burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1)
}

// RetryAfter reports how long key must wait for its next token.
func (rl *RateLimiter) RetryAfter(key string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, exists := rl.limiters[key]
	if !exists {
		return 0
	}
	r := cl.limiter.ReserveN(rl.now(), 1)
	defer r.Cancel()
	return r.Delay()
}

func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.IdleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.config.IdleTTL)
	for key, cl := range rl.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimiter) Close() {
	rl.once.Do(func() { close(rl.stop) })
}
