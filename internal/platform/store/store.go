// Package store opens the optional backends behind small seams: postgres holds
// interview sessions and clickhouse receives per-turn scores for analytics.
// A backend whose DBURL is unset stays nil and callers fall back to memory or skip it.
package store

import (
	"context"
	"errors"
	"fmt"

	"interviewcoach/internal/platform/logger"
)

// Store is the set of opened backends
type Store struct {
	Log logger.Logger

	PG TxRunner   // nil unless SERVICE_PGSQL_DBURL is set
	CH Clickhouse // nil unless SERVICE_CLICKHOUSE_DBURL is set
}

// Option adjusts a Store before any backend is opened
type Option func(*Store) error

// WithLogger makes the adapters log through l
func WithLogger(l logger.Logger) Option {
	return func(s *Store) error {
		s.Log = l
		return nil
	}
}

// Open applies opts and connects every enabled backend.
// On error, backends opened so far are closed again.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	if cfg.PG.Enabled {
		db, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		s.PG = db
		s.Log.Info().Int32("max_conns", cfg.PG.MaxConns).Msg("postgres ready")
	}

	if cfg.CH.Enabled {
		db, err := openCH(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("open clickhouse: %w", err)
		}
		s.CH = db
		s.Log.Info().Str("table", cfg.CH.Table).Msg("clickhouse ready")
	}

	return s, nil
}

// Guard pings each backend that supports it and reports every failure
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("store not opened")
	}
	var errs []error
	for name, b := range map[string]any{"pg": s.PG, "ch": s.CH} {
		p, ok := b.(Pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Close releases every opened backend
func (s *Store) Close(context.Context) error {
	var errs []error
	if s.CH != nil {
		errs = append(errs, s.CH.Close())
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
