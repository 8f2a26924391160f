package stores

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// BaseStore gives stores a handle that follows any transaction opened with
// WithTransaction further up the call chain.
type BaseStore struct {
	db *gorm.DB
}

func txFrom(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return tx, ok
}

func (s *BaseStore) GetDB(ctx context.Context) *gorm.DB {
	if tx, ok := txFrom(ctx); ok {
		return tx
	}
	return s.db.WithContext(ctx)
}

// WithTransaction runs fn inside a transaction. When ctx already carries one,
// fn joins it instead of opening a nested transaction.
func (s *BaseStore) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
