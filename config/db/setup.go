package db

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/Soneshaps/musicgpt-clone/utils"
)

type Options struct {
	Driver       string
	PrimaryDSN   string
	ReplicaDSNs  []string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	LogQueries   bool
	Retry        *utils.RetryConfig
}

type DB struct {
	*gorm.DB
}

func (db *DB) GetDB() *gorm.DB {
	return db.DB
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres", "":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// CreateDB opens the primary connection, retrying until it answers a ping,
// and registers any read replicas with dbresolver.
func CreateDB(ctx context.Context, opts Options, log *zap.Logger) (*DB, error) {
	primary, err := dialector(opts.Driver, opts.PrimaryDSN)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if opts.LogQueries {
		level = logger.Info
	}
	config := &gorm.Config{
		Logger: logger.Default.LogMode(level),
	}

	retry := opts.Retry
	if retry == nil {
		retry = utils.DefaultRetryConfig()
	}

	var db *gorm.DB
	err = utils.Retry(ctx, retry, func() error {
		conn, err := gorm.Open(primary, config)
		if err != nil {
			log.Warn("database not ready", zap.Error(err))
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			log.Warn("database ping failed", zap.Error(err))
			_ = sqlDB.Close()
			return err
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to primary database: %w", err)
	}

	if len(opts.ReplicaDSNs) > 0 {
		resolverConfig := dbresolver.Config{Policy: dbresolver.RandomPolicy{}}

		for _, replicaDSN := range opts.ReplicaDSNs {
			replica, err := dialector(opts.Driver, replicaDSN)
			if err != nil {
				return nil, err
			}
			resolverConfig.Replicas = append(resolverConfig.Replicas, replica)
		}

		err = db.Use(dbresolver.Register(resolverConfig).
			SetConnMaxIdleTime(opts.MaxIdleTime).
			SetConnMaxLifetime(opts.MaxLifetime).
			SetMaxIdleConns(opts.MaxIdleConns).
			SetMaxOpenConns(opts.MaxOpenConns))
		if err != nil {
			return nil, fmt.Errorf("failed to configure read replicas: %w", err)
		}

		log.Info("read replicas configured", zap.Int("count", len(opts.ReplicaDSNs)))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.MaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.MaxLifetime)
	}
	if opts.MaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(opts.MaxIdleTime)
	}

	log.Info("connected to database", zap.String("driver", opts.Driver))
	return &DB{db}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
