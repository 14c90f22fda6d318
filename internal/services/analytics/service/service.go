// Package service buffers turn events and flushes them to the analytics repo
package service

import (
	"context"
	"sync/atomic"
	"time"

	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/logger"
	"interviewcoach/internal/services/analytics/domain"
	"interviewcoach/internal/services/analytics/repo"
)

// Service is the analytics surface. It is both the sink evaluation writes to
// and the read side handlers use
type Service interface {
	domain.Sink
	domain.ServicePort
	Run(ctx context.Context) error
}

// Options tunes buffering
type Options struct {
	Buffer   int
	Batch    int
	Interval time.Duration
	MaxDays  int
}

// Svc implements Service
type Svc struct {
	repo repo.Repo
	opt  Options
	q    chan domain.TurnEvent
	now  func() time.Time

	dropped atomic.Uint64
}

// New constructs the service; Run must be started to drain the buffer
func New(r repo.Repo, opt Options) *Svc {
	if r == nil {
		panic("analytics service requires a repo")
	}
	if opt.Buffer <= 0 {
		opt.Buffer = 1024
	}
	if opt.Batch <= 0 {
		opt.Batch = 256
	}
	if opt.Interval <= 0 {
		opt.Interval = 2 * time.Second
	}
	if opt.MaxDays <= 0 {
		opt.MaxDays = 365
	}
	return &Svc{repo: r, opt: opt, q: make(chan domain.TurnEvent, opt.Buffer), now: time.Now}
}

// Record enqueues ev and never blocks. A full buffer drops the event
func (s *Svc) Record(ctx context.Context, ev domain.TurnEvent) {
	if ev.At.IsZero() {
		ev.At = s.now()
	}
	select {
	case s.q <- ev:
	default:
		n := s.dropped.Add(1)
		logger.C(ctx).Warn().Uint64("dropped", n).Msg("analytics buffer full, turn event dropped")
	}
}

// Dropped reports how many events were discarded
func (s *Svc) Dropped() uint64 { return s.dropped.Load() }

// Run flushes the buffer on every tick or when a batch fills.
// On cancel it drains what is queued with a short grace context
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("analytics-flusher")
	ticker := time.NewTicker(s.opt.Interval)
	defer ticker.Stop()

	batch := make([]domain.TurnEvent, 0, s.opt.Batch)
	flush := func(fctx context.Context) {
		if len(batch) == 0 {
			return
		}
		if err := s.repo.Insert(fctx, batch); err != nil {
			log.Error().Err(err).Int("events", len(batch)).Msg("analytics insert failed")
		} else {
			log.Debug().Int("events", len(batch)).Msg("analytics flushed")
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			for drained := false; !drained; {
				select {
				case ev := <-s.q:
					batch = append(batch, ev)
				default:
					drained = true
				}
			}
			gctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			flush(gctx)
			cancel()
			return ctx.Err()
		case ev := <-s.q:
			batch = append(batch, ev)
			if len(batch) >= s.opt.Batch {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}

// ByDomain aggregates the last days of turns per domain
func (s *Svc) ByDomain(ctx context.Context, days int) (domain.DomainsOutput, error) {
	if days <= 0 {
		days = 30
	}
	if days > s.opt.MaxDays {
		return domain.DomainsOutput{}, perr.WithField(perr.InvalidArgf("days must be at most %d", s.opt.MaxDays), "days")
	}
	since := s.now().UTC().AddDate(0, 0, -days)
	stats, err := s.repo.ByDomain(ctx, since)
	if err != nil {
		return domain.DomainsOutput{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "query analytics")
	}
	return domain.DomainsOutput{Since: since, Domains: stats}, nil
}
