package aggregates

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
)

var (
	errNilDB         = errors.New("transaction runner has nil db")
	errNotConfigured = errors.New("aggregate repos not configured")
)

type BaseDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Runner TxRunner
	Hooks  Hooks
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		if d.Log != nil {
			d.Hooks = NewLogHooks(d.Log)
		} else {
			d.Hooks = noopHooks{}
		}
	}
	return d
}

func executeWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	start := time.Now()
	deps = deps.withDefaults()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "aggregate.write"
	}
	mapped := apierr.FromDB(op, deps.Runner.InTx(ctx, fn))

	status := "success"
	if mapped != nil {
		status = string(apierr.KindOf(mapped))
		if apierr.IsKind(mapped, apierr.KindConflict) {
			deps.Hooks.IncConflict(op)
		}
	}
	deps.Hooks.ObserveOperation(op, status, time.Since(start))
	return mapped
}
