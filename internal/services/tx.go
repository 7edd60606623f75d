package services

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/yungbote/missions-backend/internal/observability"
	"github.com/yungbote/missions-backend/internal/platform/dbctx"
)

// runInTx runs fn inside one transaction. A caller that already holds a
// transaction keeps it; otherwise a new one is opened on db and rolled back
// when fn returns an error.
func runInTx(db *gorm.DB, dbc dbctx.Context, fn func(inner dbctx.Context) error) error {
	if dbc.Tx != nil {
		return fn(dbc)
	}
	ctx := dbc.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}

func startSpan(dbc dbctx.Context, name string, id uint) (dbctx.Context, trace.Span) {
	var attrs []attribute.KeyValue
	if id != 0 {
		attrs = append(attrs, attribute.Int64("entity.id", int64(id)))
	}
	ctx, span := observability.StartSpan(dbc.Ctx, name, attrs...)
	return dbctx.Context{Ctx: ctx, Tx: dbc.Tx}, span
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, observability.MutationOutcome(err))
	}
	span.End()
}
