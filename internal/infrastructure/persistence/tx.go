package persistence

import (
	"context"

	"github.com/autoexpert/backend/internal/domain/shared"
	"gorm.io/gorm"
)

type txKey struct{}

// WithinTransaction runs fn inside one database transaction. Repository calls
// made with the context fn receives join that transaction; a call already
// inside a transaction reuses it instead of opening a nested one.
func (d *Database) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, falling back to db
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// Ensure Database implements the application transaction port
var _ shared.Transactor = (*Database)(nil)
