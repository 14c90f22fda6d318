package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof under prefix when on is true (CORE_API_PROFILER)
func MountProfiler(r Router, prefix string, on bool) {
	if !on {
		return
	}
	pprof := stdhttp.StripPrefix(prefix, middleware.Profiler())
	for _, p := range []string{prefix, prefix + "/*"} {
		r.Handle(p, pprof)
	}
}
