package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const flushBatch = 500

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	MinIdle  int
	Prefix   string // namespace prepended to every key, e.g. "musicgpt"
}

type RedisCache struct {
	client *redis.Client
	prefix string
}

func CreateRedisCache(config RedisConfig) (*RedisCache, error) {
	addr := config.Host + ":" + strconv.Itoa(config.Port)
	if config.Port == 0 {
		addr = config.Host + ":6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdle,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return NewRedisCacheFromClient(client, config.Prefix), nil
}

func NewRedisCacheFromClient(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(key), value, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

// FlushAll removes every key under the prefix. Without a prefix the whole
// logical database is flushed.
func (c *RedisCache) FlushAll(ctx context.Context) error {
	if c.prefix == "" {
		return c.client.FlushDB(ctx).Err()
	}

	iter := c.client.Scan(ctx, 0, c.prefix+":*", flushBatch).Iterator()
	batch := make([]string, 0, flushBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == flushBatch {
			if err := c.client.Unlink(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return c.client.Unlink(ctx, batch...).Err()
	}
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
