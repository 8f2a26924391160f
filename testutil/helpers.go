package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Soneshaps/musicgpt-clone/db"
	"github.com/Soneshaps/musicgpt-clone/models"
)

// NewTestDB returns an isolated in-memory SQLite database with the
// application schema applied.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// Every pooled connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if _, err := db.NewSchemaMigrator(gdb).Up(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// CountRows returns the number of rows in model's table.
func CountRows(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := gdb.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

// SeedVoices inserts voices with strictly increasing created_at values in
// slice order.
func SeedVoices(t *testing.T, gdb *gorm.DB, voices ...models.Voice) []models.Voice {
	t.Helper()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range voices {
		if voices[i].CreatedAt.IsZero() {
			voices[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		}
	}
	if err := gdb.Create(&voices).Error; err != nil {
		t.Fatalf("seed voices: %v", err)
	}
	return voices
}

// NumberedVoices returns n voices named "<prefix> 01".."<prefix> n".
func NumberedVoices(prefix, language string, n int) []models.Voice {
	voices := make([]models.Voice, n)
	for i := range voices {
		voices[i] = models.Voice{Name: fmt.Sprintf("%s %02d", prefix, i+1), Language: language}
	}
	return voices
}

func MockCreateSpeechRequest() *models.CreateSpeechRequest {
	return &models.CreateSpeechRequest{
		Prompt: "A calm narration about mountain villages",
		Type:   string(models.RequestTypeTextToSpeech),
	}
}

func StrPtr(s string) *string {
	return &s
}

// CountingCache is an in-memory cache that records every call.
type CountingCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	Gets    int
	Sets    int
	Flushes int
	LastTTL time.Duration
}

func NewCountingCache() *CountingCache {
	return &CountingCache{data: make(map[string][]byte)}
}

func (c *CountingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gets++
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *CountingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sets++
	c.LastTTL = ttl
	c.data[key] = value
	return nil
}

func (c *CountingCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *CountingCache) FlushAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Flushes++
	c.data = make(map[string][]byte)
	return nil
}

func (c *CountingCache) Ping(ctx context.Context) error { return nil }

func (c *CountingCache) Close() error { return nil }

func (c *CountingCache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	return keys
}

func (c *CountingCache) Calls() (gets, sets int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Gets, c.Sets
}

var ErrCacheDown = errors.New("cache backend unavailable")

// FailingCache fails every operation.
type FailingCache struct{}

func (FailingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, ErrCacheDown
}

func (FailingCache) Set(context.Context, string, []byte, time.Duration) error { return ErrCacheDown }

func (FailingCache) Delete(context.Context, string) error { return ErrCacheDown }

func (FailingCache) FlushAll(context.Context) error { return ErrCacheDown }

func (FailingCache) Ping(context.Context) error { return ErrCacheDown }

func (FailingCache) Close() error { return nil }
