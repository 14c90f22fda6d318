package pg

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"interviewcoach/internal/platform/logger"
)

// QueryEvent is emitted once per finished statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer observes finished statements
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// TracerFunc adapts a plain function to QueryTracer
type TracerFunc func(ctx context.Context, ev QueryEvent)

// OnQuery implements QueryTracer
func (f TracerFunc) OnQuery(ctx context.Context, ev QueryEvent) { f(ctx, ev) }

// Tracer returns a QueryTracer writing one line per statement through l.
// Tracing is opt-in via SERVICE_PGSQL_LOG_SQL so it ignores the level l was built with.
func Tracer(l logger.Logger) QueryTracer {
	log := l.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return TracerFunc(func(_ context.Context, ev QueryEvent) {
		lvl := zerolog.InfoLevel
		if ev.Slow {
			lvl = zerolog.WarnLevel
		}
		log.WithLevel(lvl).
			Err(ev.Err).
			Str("sql", oneLine(ev.SQL)).
			Interface("args", ev.Args).
			Float64("elapsed_ms", float64(ev.ElapsedUS)/1e3).
			Bool("slow", ev.Slow).
			Msg("pg query")
	})
}

func oneLine(sql string) string { return strings.Join(strings.Fields(sql), " ") }
