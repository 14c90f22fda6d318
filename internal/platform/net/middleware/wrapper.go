// Package middleware is the HTTP middleware used by CommonStack. Most entries
// are chi middleware behind stable names; AccessLog and RecoverJSON are our own.
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"

	pstrings "interviewcoach/internal/platform/strings"
)

// Middleware is the standard net/http middleware shape
type Middleware = func(http.Handler) http.Handler

func passthrough(next http.Handler) http.Handler { return next }

// RequestID reuses an incoming X-Request-ID or mints one
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP for RemoteAddr
func RealIP() Middleware { return chimw.RealIP }

// NoCache marks every response uncacheable
func NoCache() Middleware { return chimw.NoCache }

// StripSlashes routes /x/ like /x
func StripSlashes() Middleware { return chimw.StripSlashes }

// Timeout bounds the request context; handlers see ctx.Done after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress gzips or deflates responses at level
func Compress(level int) Middleware { return chimw.NewCompressor(level).Handler }

// Throttle limits in-flight requests to limit; limit <= 0 disables it
func Throttle(limit int) Middleware {
	if limit <= 0 {
		return passthrough
	}
	return chimw.Throttle(limit)
}

// CORSOptions are the CORS knobs the api exposes
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS applies go-chi/cors. Empty lists get defaults suited to the browser client.
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
