package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	Slow        time.Duration
	Throttle    int
}

// StackFromConfig reads CORE_API_ CORS_ORIGINS, REQUEST_TIMEOUT, SLOW_MS and THROTTLE
func StackFromConfig(cfg config.Conf) StackOptions {
	c := cfg.Prefix("CORE_API_")
	return StackOptions{
		CORSOrigins: c.MayCSV("CORS_ORIGINS", []string{"*"}),
		Timeout:     c.MayDuration("REQUEST_TIMEOUT", 60*time.Second),
		Slow:        time.Duration(c.MayInt("SLOW_MS", 2000)) * time.Millisecond,
		Throttle:    c.MayInt("THROTTLE", 0),
	}
}

// CommonStack returns the middleware every versioned route runs through.
// Order matters: request ids before the access log, recovery inside the log so panics are recorded as 500
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Throttle(o.Throttle),
		middleware.Timeout(o.Timeout),
	}
}
