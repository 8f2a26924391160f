package security

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := CreateRateLimiter(RateLimitConfig{RequestsPerSecond: 10, Burst: 10})
	defer limiter.Close()

	t.Run("Allow within limit", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			if !limiter.Allow("client-1") {
				t.Errorf("Request %d should be allowed", i+1)
			}
		}
	})

	t.Run("Block after limit", func(t *testing.T) {
		if limiter.Allow("client-1") {
			t.Error("Request should be blocked after limit")
		}
		if d := limiter.RetryAfter("client-1"); d <= 0 {
			t.Errorf("RetryAfter() = %v, want > 0", d)
		}
	})

	t.Run("Keys are independent", func(t *testing.T) {
		if !limiter.Allow("client-2") {
			t.Error("Different key should have its own bucket")
		}
	})
}

func TestRateLimiter_Refill(t *testing.T) {
	limiter := CreateRateLimiter(RateLimitConfig{RequestsPerSecond: 10, Burst: 2})
	defer limiter.Close()

	limiter.Allow("k")
	limiter.Allow("k")

	if limiter.Allow("k") {
		t.Error("Request should be blocked")
	}

	time.Sleep(150 * time.Millisecond)

	if !limiter.Allow("k") {
		t.Error("Request should be allowed after refill")
	}
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	limiter := CreateRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 1, IdleTTL: time.Hour})
	defer limiter.Close()

	now := time.Now()
	limiter.now = func() time.Time { return now }
	limiter.Allow("old")

	now = now.Add(2 * time.Hour)
	limiter.Allow("fresh")
	limiter.evictIdle()

	if got := limiter.Size(); got != 1 {
		t.Errorf("Size() = %d, want 1", got)
	}
	if d := limiter.RetryAfter("old"); d != 0 {
		t.Errorf("RetryAfter(evicted) = %v, want 0", d)
	}
}

func TestRateLimiter_CloseIdempotent(t *testing.T) {
	limiter := CreateRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	limiter.Close()
	limiter.Close()
}
