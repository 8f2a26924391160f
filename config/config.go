package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"

	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
	CacheBackendNone   = "none"
)

type Config struct {
	Environment string          `json:"environment" env:"ENVIRONMENT"`
	Database    DatabaseConfig  `json:"database"`
	Server      ServerConfig    `json:"server"`
	Redis       RedisConfig     `json:"redis"`
	Cache       CacheConfig     `json:"cache"`
	Logging     LoggingConfig   `json:"logging"`
	RateLimit   RateLimitConfig `json:"rate_limit"`
}

type DatabaseConfig struct {
	Driver       string   `json:"driver" env:"DB_DRIVER"`
	URL          string   `json:"url" env:"DATABASE_URL"`
	Host         string   `json:"host" env:"DB_HOST"`
	Port         int      `json:"port" env:"DB_PORT"`
	User         string   `json:"user" env:"DB_USER"`
	Password     string   `json:"password" env:"DB_PASSWORD"`
	DBName       string   `json:"dbname" env:"DB_NAME"`
	SSLMode      string   `json:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns int      `json:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns int      `json:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	MaxLifetime  Duration `json:"max_lifetime" env:"DB_MAX_LIFETIME"`
	MaxIdleTime  Duration `json:"max_idle_time" env:"DB_MAX_IDLE_TIME"`
	ReplicaDSNs  []string `json:"replica_dsns" env:"DB_REPLICA_DSNS" envSeparator:","`
	LogQueries   bool     `json:"log_queries" env:"DB_LOG_QUERIES"`
}

type ServerConfig struct {
	Port           string   `json:"port" env:"SERVER_PORT"`
	ReadTimeout    Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout   Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout    Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	MaxHeaderBytes int      `json:"max_header_bytes" env:"SERVER_MAX_HEADER_BYTES"`
	AllowedOrigins []string `json:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type RedisConfig struct {
	Host     string `json:"host" env:"REDIS_HOST"`
	Port     int    `json:"port" env:"REDIS_PORT"`
	Password string `json:"password" env:"REDIS_PASSWORD"`
	DB       int    `json:"db" env:"REDIS_DB"`
	PoolSize int    `json:"pool_size" env:"REDIS_POOL_SIZE"`
	MinIdle  int    `json:"min_idle" env:"REDIS_MIN_IDLE"`
}

type CacheConfig struct {
	Backend string   `json:"backend" env:"CACHE_BACKEND"`
	TTL     Duration `json:"ttl" env:"CACHE_TTL"`
	Prefix  string   `json:"prefix" env:"CACHE_PREFIX"`
}

type LoggingConfig struct {
	Level      string `json:"level" env:"LOG_LEVEL"`
	Format     string `json:"format" env:"LOG_FORMAT"`
	Dir        string `json:"dir" env:"LOG_DIR"`
	MaxSizeMB  int    `json:"max_size_mb" env:"LOG_MAX_SIZE_MB"`
	MaxBackups int    `json:"max_backups" env:"LOG_MAX_BACKUPS"`
	MaxAgeDays int    `json:"max_age_days" env:"LOG_MAX_AGE_DAYS"`
}

type RateLimitConfig struct {
	Enabled bool    `json:"enabled" env:"RATE_LIMIT_ENABLED"`
	RPS     float64 `json:"rps" env:"RATE_LIMIT_RPS"`
	Burst   int     `json:"burst" env:"RATE_LIMIT_BURST"`
}

// LoadConfig reads config/config.json (or CONFIG_FILE) when present, overlays
// the environment and fills per-environment defaults.
func LoadConfig() (*Config, error) {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		configDir, err := filepath.Abs("config")
		if err != nil {
			return nil, err
		}
		path = filepath.Join(configDir, "config.json")
	}
	return LoadConfigFrom(path)
}

func LoadConfigFrom(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	config.setCommonDefaults()
	config.setEnvironmentDefaults()

	return config, nil
}

func (c *Config) setCommonDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.Database.Port == 0 {
		switch c.Database.Driver {
		case DriverPostgres:
			c.Database.Port = 5432
		case DriverMySQL:
			c.Database.Port = 3306
		}
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Server.Port == "" {
		c.Server.Port = "3000"
	}
	if c.Server.MaxHeaderBytes == 0 {
		c.Server.MaxHeaderBytes = 1 << 20
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheBackendRedis
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = Duration(300 * time.Second)
	}
	if c.Cache.Prefix == "" {
		c.Cache.Prefix = "musicgpt"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 50
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 5
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = 14
	}
}

func (c *Config) setEnvironmentDefaults() {
	switch c.Environment {
	case "production":
		c.setProductionDefaults()
	case "staging":
		c.setStagingDefaults()
	default: // development
		c.setDevelopmentDefaults()
	}
}

func (c *Config) setDevelopmentDefaults() {
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 20
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 1000
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 2000
	}
	c.setServerTimeouts(Duration(30 * time.Second))
}

func (c *Config) setStagingDefaults() {
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 50
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 10
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 200
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 400
	}
	c.setServerTimeouts(Duration(15 * time.Second))
}

func (c *Config) setProductionDefaults() {
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 100
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 20
	}
	if c.Database.MaxLifetime == 0 {
		c.Database.MaxLifetime = Duration(time.Hour)
	}
	if c.Database.MaxIdleTime == 0 {
		c.Database.MaxIdleTime = Duration(10 * time.Minute)
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 100
	}
	if c.Redis.MinIdle == 0 {
		c.Redis.MinIdle = 10
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = "logs"
	}
	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 50
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 100
	}
	c.setServerTimeouts(Duration(15 * time.Second))
}

func (c *Config) setServerTimeouts(rw Duration) {
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = rw
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = rw
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = Duration(60 * time.Second)
	}
}

// GetDatabaseURL returns DATABASE_URL verbatim when set, otherwise a DSN for
// the configured driver.
func (c *Config) GetDatabaseURL() string {
	d := c.Database
	if d.URL != "" {
		return d.URL
	}

	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.DBName)
	case DriverSQLite:
		return d.DBName
	default:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(d.User, d.Password),
			Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
			Path:     "/" + d.DBName,
			RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
		}
		return u.String()
	}
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
