package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"interviewcoach/internal/platform/logger"
	pnet "interviewcoach/internal/platform/net"
)

// AccessLogOptions tunes AccessLog
type AccessLogOptions struct {
	// Slow promotes requests at or above this duration to warn; 0 turns it off
	Slow time.Duration
}

// AccessLog puts the request id on the context logger and writes one line
// per request once the handler returns. Install it after RequestID.
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.C(ctx).WithLevel(accessLevel(status, took, opt.Slow)).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", took).
				Msg("request done")
		})
	}
}

func accessLevel(status int, took, slow time.Duration) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case slow > 0 && took >= slow:
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}
