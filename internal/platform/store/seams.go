package store

import "context"

// The seams below are what repositories see. pgx and clickhouse-go types
// never leak past the adapters in this package.

// Row is one result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a forward-only result set; callers must Close it
type Rows interface {
	Row
	Next() bool
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier runs SQL against a pool or an open transaction
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also scope work to a transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar seam used for append-only analytics
type Clickhouse interface {
	// Insert takes a [][]any batch or a single []any row
	Insert(ctx context.Context, table string, data any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Pinger is implemented by backends that can report liveness
type Pinger interface{ Ping(context.Context) error }
