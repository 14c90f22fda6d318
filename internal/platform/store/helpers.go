package store

import (
	"context"
	"fmt"

	perr "interviewcoach/internal/platform/errors"
)

// ExecOne runs a write that must touch exactly one row
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	switch {
	case err != nil:
		return err
	case tag.RowsAffected() != 1:
		return fmt.Errorf("write touched %d rows, want 1", tag.RowsAffected())
	}
	return nil
}

// Scalar returns the single value selected by sql, e.g. a count or max
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (out T, err error) {
	err = q.QueryRow(ctx, sql, args...).Scan(&out)
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// One returns the only row of sql mapped through scan.
// Zero rows yields perr.ErrNotFound and more than one row is an error.
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	items, err := collect(ctx, q, scan, 2, sql, args...)
	var zero T
	switch {
	case err != nil:
		return zero, err
	case len(items) == 0:
		return zero, perr.ErrNotFound
	case len(items) > 1:
		return zero, fmt.Errorf("query returned more than one row")
	}
	return items[0], nil
}

// Many returns every row of sql mapped through scan
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	return collect(ctx, q, scan, 0, sql, args...)
}

// collect scans up to limit rows, or all of them when limit is 0
func collect[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), limit int, sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
