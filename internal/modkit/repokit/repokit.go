// Package repokit is what SQL repositories compile against instead of the store package.
// A repo is a small struct over a Queryer; binding it to a transaction swaps the Queryer.
package repokit

import (
	"context"

	"interviewcoach/internal/platform/store"
)

// Store seams re-exported under repo-facing names
type (
	Queryer    = store.RowQuerier
	TxRunner   = store.TxRunner
	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// Binder produces a repo bound to q
type Binder[T any] interface {
	Bind(q Queryer) T
}

// BindFunc adapts a constructor to Binder
type BindFunc[T any] func(Queryer) T

// Bind implements Binder
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds b to q and panics when q is nil
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: bind on nil queryer")
	}
	return b.Bind(q)
}

// WithTx opens a transaction on tx and runs fn with a repo bound to it.
// fn returning an error rolls the transaction back.
func WithTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(repo T) error) error {
	return tx.Tx(ctx, func(q Queryer) error {
		return fn(b.Bind(q))
	})
}
