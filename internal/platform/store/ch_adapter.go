package store

import (
	"context"
	"errors"
	"fmt"

	"interviewcoach/internal/platform/store/ch"
)

// chInner is the part of *ch.CH the adapter needs
type chInner interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (ch.Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

// clickhouseAdapter exposes a ch client as the store.Clickhouse seam
type clickhouseAdapter struct {
	inner chInner
}

var _ Clickhouse = (*clickhouseAdapter)(nil)

func newCHAdapter(c chInner) *clickhouseAdapter { return &clickhouseAdapter{inner: c} }

// Insert accepts [][]any or a single []any row
func (a *clickhouseAdapter) Insert(ctx context.Context, table string, data any) error {
	switch rows := data.(type) {
	case [][]any:
		return a.inner.Insert(ctx, table, rows)
	case []any:
		return a.inner.Insert(ctx, table, [][]any{rows})
	default:
		return fmt.Errorf("store: unsupported CH insert shape %T", data)
	}
}

func (a *clickhouseAdapter) Exec(ctx context.Context, sql string, args ...any) error {
	return a.inner.Exec(ctx, sql, args...)
}

func (a *clickhouseAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.inner.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r}, nil
}

func (a *clickhouseAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil clickhouse adapter")
	}
	return a.inner.Ping(ctx)
}

func (a *clickhouseAdapter) Close() error { return a.inner.Close() }

// chRows drops the Close error so ch rows satisfy store.Rows
type chRows struct{ ch.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }
