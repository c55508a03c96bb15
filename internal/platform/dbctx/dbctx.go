package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with the unit-of-work the caller owns.
// A nil Tx means repositories fall back to their own connection.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

func (c Context) Context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// DB returns the transaction when present, otherwise fallback.
func (c Context) DB(fallback *gorm.DB) *gorm.DB {
	tx := c.Tx
	if tx == nil {
		tx = fallback
	}
	return tx.WithContext(c.Context())
}
