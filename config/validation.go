package config

import (
	"fmt"
	"strconv"
)

func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database config: %w", err)
	}

	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache config: %w", err)
	}

	if c.Cache.Backend == CacheBackendRedis {
		if err := c.Redis.Validate(); err != nil {
			return fmt.Errorf("redis config: %w", err)
		}
	}

	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit config: %w", err)
	}

	return nil
}

func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMySQL:
	case DriverSQLite:
		if c.URL == "" && c.DBName == "" {
			return fmt.Errorf("database name is required for sqlite")
		}
		return nil
	default:
		return fmt.Errorf("unsupported driver %q", c.Driver)
	}

	if c.URL != "" {
		return nil
	}
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port == 0 {
		return fmt.Errorf("port is required")
	}
	if c.User == "" {
		return fmt.Errorf("user is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	return nil
}

func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	return nil
}

func (c *RedisConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port == 0 {
		return fmt.Errorf("port is required")
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	switch c.Backend {
	case CacheBackendRedis, CacheBackendMemory, CacheBackendNone:
	default:
		return fmt.Errorf("unsupported backend %q", c.Backend)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be positive")
	}
	return nil
}

func (c *RateLimitConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.RPS <= 0 {
		return fmt.Errorf("rps must be positive")
	}
	if c.Burst <= 0 {
		return fmt.Errorf("burst must be positive")
	}
	return nil
}
