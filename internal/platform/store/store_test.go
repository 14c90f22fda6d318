package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"interviewcoach/internal/platform/config"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/store/ch"
)

type fakeTag int64

func (f fakeTag) String() string      { return "UPDATE" }
func (f fakeTag) RowsAffected() int64 { return int64(f) }

type fakeRows struct {
	data [][]any
	i    int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = row[i].(string)
		case *int:
			*d = row[i].(int)
		default:
			return errors.New("unsupported dest")
		}
	}
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }

type fakeQuerier struct {
	tag  fakeTag
	rows *fakeRows
	err  error
}

func (f *fakeQuerier) Exec(context.Context, string, ...any) (CommandTag, error) { return f.tag, f.err }
func (f *fakeQuerier) Query(context.Context, string, ...any) (Rows, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}
func (f *fakeQuerier) QueryRow(context.Context, string, ...any) Row { return rowOf{f.rows} }

type rowOf struct{ r *fakeRows }

func (x rowOf) Scan(dest ...any) error {
	if !x.r.Next() {
		return errors.New("no rows")
	}
	return x.r.Scan(dest...)
}

func scanName(r Row) (string, error) {
	var s string
	return s, r.Scan(&s)
}

func TestExecOne(t *testing.T) {
	ctx := context.Background()
	if err := ExecOne(ctx, &fakeQuerier{tag: 1}, "UPDATE x"); err != nil {
		t.Fatalf("one row: %v", err)
	}
	if err := ExecOne(ctx, &fakeQuerier{tag: 0}, "UPDATE x"); err == nil {
		t.Fatal("zero rows should fail")
	}
	if err := ExecOne(ctx, &fakeQuerier{tag: 11}, "UPDATE x"); err == nil {
		t.Fatal("eleven rows should fail")
	}
}

func TestOneAndMany(t *testing.T) {
	ctx := context.Background()

	got, err := One(ctx, &fakeQuerier{rows: &fakeRows{data: [][]any{{"ada"}}}}, scanName, "q")
	if err != nil || got != "ada" {
		t.Fatalf("One = %q, %v", got, err)
	}

	_, err = One(ctx, &fakeQuerier{rows: &fakeRows{}}, scanName, "q")
	if !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("One on empty = %v, want not found", err)
	}

	_, err = One(ctx, &fakeQuerier{rows: &fakeRows{data: [][]any{{"a"}, {"b"}}}}, scanName, "q")
	if err == nil || !strings.Contains(err.Error(), "more") {
		t.Fatalf("One on two rows = %v", err)
	}

	all, err := Many(ctx, &fakeQuerier{rows: &fakeRows{data: [][]any{{"a"}, {"b"}}}}, scanName, "q")
	if err != nil || len(all) != 2 || all[1] != "b" {
		t.Fatalf("Many = %v, %v", all, err)
	}

	boom := errors.New("boom")
	if _, err := Many(ctx, &fakeQuerier{rows: &fakeRows{err: boom}}, scanName, "q"); !errors.Is(err, boom) {
		t.Fatalf("Many rows err = %v", err)
	}
}

func TestScalar(t *testing.T) {
	n, err := Scalar[int](context.Background(), &fakeQuerier{rows: &fakeRows{data: [][]any{{3}}}}, "SELECT 3")
	if err != nil || n != 3 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}
}

type pingTx struct {
	fakeQuerier
	err error
}

func (p *pingTx) Ping(context.Context) error { return p.err }
func (p *pingTx) Tx(ctx context.Context, fn func(RowQuerier) error) error {
	return fn(&p.fakeQuerier)
}

func TestGuard(t *testing.T) {
	var nilStore *Store
	if err := nilStore.Guard(context.Background()); err == nil {
		t.Fatal("nil store should fail")
	}
	if err := (&Store{}).Guard(context.Background()); err != nil {
		t.Fatalf("no backends = %v", err)
	}

	s := &Store{
		PG: &pingTx{err: errors.New("down")},
		CH: newCHAdapter(&fakeCH{pingErr: errors.New("refused")}),
	}
	err := s.Guard(context.Background())
	if err == nil || !strings.Contains(err.Error(), "pg: down") || !strings.Contains(err.Error(), "ch: refused") {
		t.Fatalf("Guard = %v", err)
	}
}

type fakeCH struct {
	inserted [][]any
	pingErr  error
	closed   bool
}

func (f *fakeCH) Insert(_ context.Context, _ string, rows [][]any) error {
	f.inserted = append(f.inserted, rows...)
	return nil
}
func (f *fakeCH) Exec(context.Context, string, ...any) error { return nil }
func (f *fakeCH) Query(context.Context, string, ...any) (ch.Rows, error) {
	return nil, errors.New("no query")
}
func (f *fakeCH) Ping(context.Context) error { return f.pingErr }
func (f *fakeCH) Close() error               { f.closed = true; return nil }

func TestCHAdapter_InsertShapes(t *testing.T) {
	inner := &fakeCH{}
	a := newCHAdapter(inner)
	ctx := context.Background()

	if err := a.Insert(ctx, "turn_scores", [][]any{{1}, {2}}); err != nil {
		t.Fatalf("batch insert: %v", err)
	}
	if err := a.Insert(ctx, "turn_scores", []any{3}); err != nil {
		t.Fatalf("single row insert: %v", err)
	}
	if err := a.Insert(ctx, "turn_scores", "nope"); err == nil {
		t.Fatal("want shape error")
	}
	if len(inner.inserted) != 3 {
		t.Fatalf("inserted = %d rows, want 3", len(inner.inserted))
	}

	s := &Store{CH: a}
	if err := s.Close(ctx); err != nil || !inner.closed {
		t.Fatalf("Close = %v closed=%v", err, inner.closed)
	}
}

func TestOpen_NoBackends(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatal("disabled backends should stay nil")
	}
}

func TestOpen_BadPGURL(t *testing.T) {
	_, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "postgres://%zz"}})
	if err == nil {
		t.Fatal("want parse error")
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://coach@localhost/coach")
	t.Setenv("SERVICE_CLICKHOUSE_DBURL", "")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "4")

	c := FromConfig(config.New(), "api", "v0.1.0")
	if !c.PG.Enabled || c.PG.MaxConns != 4 {
		t.Fatalf("pg = %+v", c.PG)
	}
	if c.CH.Enabled || c.CH.Role != "api" || c.CH.Table != "turn_scores" {
		t.Fatalf("ch = %+v", c.CH)
	}
}

func TestNextBackoff(t *testing.T) {
	if got := nextBackoff(1500e6, 2e9); got != 2e9 {
		t.Fatalf("nextBackoff capped = %v", got)
	}
}
