// Package swaggerkit mounts the Swagger UI and the JSON spec
package swaggerkit

import (
	"net/http"

	"interviewcoach/internal/platform/config"
	phttp "interviewcoach/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options controls the docs mount
type Options struct {
	Enabled     bool
	TitleSuffix string
}

// FromConfig reads CORE_API_SWAGGER and CORE_API_DOCS_TITLE_SUFFIX
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	return Options{
		Enabled:     c.MayBool("SWAGGER", false),
		TitleSuffix: c.MayString("DOCS_TITLE_SUFFIX", ""),
	}
}

// Mount serves the UI under /api/docs when enabled
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o.TitleSuffix))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
