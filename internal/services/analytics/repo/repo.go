// Package repo stores turn events in clickhouse
package repo

import (
	"context"
	"fmt"
	"time"

	"interviewcoach/internal/platform/store"
	"interviewcoach/internal/services/analytics/domain"
)

// Repo is the persistence surface for analytics
type Repo interface {
	EnsureTable(ctx context.Context) error
	Insert(ctx context.Context, evs []domain.TurnEvent) error
	ByDomain(ctx context.Context, since time.Time) ([]domain.DomainStat, error)
}

type chRepo struct {
	db    store.Clickhouse
	table string
}

// NewCH binds the repo to db and table
func NewCH(db store.Clickhouse, table string) Repo {
	if table == "" {
		table = "turn_scores"
	}
	return &chRepo{db: db, table: table}
}

func (r *chRepo) EnsureTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
  at DateTime64(3, 'UTC'),
  session_id String,
  domain LowCardinality(String),
  overall Float64,
  communication Float64,
  technical Float64,
  clarity Float64,
  fillers UInt32,
  degraded UInt8
) ENGINE = MergeTree
ORDER BY (domain, at)`, r.table)
	return r.db.Exec(ctx, ddl)
}

func (r *chRepo) Insert(ctx context.Context, evs []domain.TurnEvent) error {
	if len(evs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(evs))
	for _, e := range evs {
		var degraded uint8
		if e.Degraded {
			degraded = 1
		}
		rows = append(rows, []any{
			e.At.UTC(), e.SessionID, e.Domain,
			e.Overall, e.Communication, e.Technical, e.Clarity,
			uint32(max(0, e.Fillers)), degraded,
		})
	}
	return r.db.Insert(ctx, r.table, rows)
}

func (r *chRepo) ByDomain(ctx context.Context, since time.Time) ([]domain.DomainStat, error) {
	sql := fmt.Sprintf(`
SELECT domain, count() AS turns, avg(overall), avg(communication), avg(technical), avg(fillers)
FROM %s
WHERE at >= ?
GROUP BY domain
ORDER BY domain`, r.table)

	rows, err := r.db.Query(ctx, sql, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.DomainStat{}
	for rows.Next() {
		var s domain.DomainStat
		if err := rows.Scan(&s.Domain, &s.Turns, &s.AvgOverall, &s.AvgCommunication, &s.AvgTechnical, &s.AvgFillers); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
