package store

import (
	"context"
	"errors"
	"time"

	"interviewcoach/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxConn is the statement surface shared by *pgxpool.Pool and pgx.Tx
type pgxConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// tracedConn is a RowQuerier over a pgxConn that reports timings to a tracer
type tracedConn struct {
	conn   pgxConn
	tracer pg.QueryTracer
	slow   time.Duration // < 0 never marks slow
}

func (c tracedConn) report(ctx context.Context, sql string, args []any, began time.Time, err error) {
	if c.tracer == nil {
		return
	}
	took := time.Since(began)
	c.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: took.Microseconds(),
		Err:       err,
		Slow:      c.slow >= 0 && took >= c.slow,
	})
}

func (c tracedConn) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	began := time.Now()
	res, err := c.conn.Exec(ctx, sql, args...)
	c.report(ctx, sql, args, began, err)
	return res, err
}

func (c tracedConn) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	began := time.Now()
	rs, err := c.conn.Query(ctx, sql, args...)
	c.report(ctx, sql, args, began, err)
	if err != nil {
		return nil, err
	}
	return pgRows{rs}, nil
}

// QueryRow defers the report to Scan, which is when pgx surfaces the error
func (c tracedConn) QueryRow(ctx context.Context, sql string, args ...any) Row {
	began := time.Now()
	r := c.conn.QueryRow(ctx, sql, args...)
	return scanHook{row: r, done: func(err error) { c.report(ctx, sql, args, began, err) }}
}

// pgStore is the TxRunner handed to repositories when postgres is enabled
type pgStore struct {
	tracedConn
	db *pg.PG
}

func newPGAdapter(db *pg.PG) *pgStore {
	return &pgStore{
		tracedConn: tracedConn{conn: db.Pool, tracer: db.Tracer, slow: time.Duration(db.SlowMs) * time.Millisecond},
		db:         db,
	}
}

func (s *pgStore) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("postgres adapter not opened")
	}
	return s.db.Pool.Ping(ctx)
}

func (s *pgStore) Close() error {
	s.db.Close()
	return nil
}

func (s *pgStore) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return pgx.BeginFunc(ctx, s.db.Pool, func(tx pgx.Tx) error {
		return fn(tracedConn{conn: tx, tracer: s.tracer, slow: s.slow})
	})
}

type scanHook struct {
	row  pgx.Row
	done func(error)
}

func (h scanHook) Scan(dst ...any) error {
	err := h.row.Scan(dst...)
	h.done(err)
	return err
}

// pgRows adds Columns to pgx.Rows
type pgRows struct{ pgx.Rows }

func (r pgRows) Columns() []string {
	fds := r.FieldDescriptions()
	names := make([]string, 0, len(fds))
	for _, fd := range fds {
		names = append(names, fd.Name)
	}
	return names
}
