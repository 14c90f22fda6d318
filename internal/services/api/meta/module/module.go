// Package module wires meta endpoints into the API
package module

import (
	"time"

	modkit "interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"
	str "interviewcoach/internal/platform/strings"

	metahttp "interviewcoach/internal/services/api/meta/http"
)

// Module serves liveness, readiness, version and capability status
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module. The service name is read from CORE_API_SERVICE_NAME
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	md := metahttp.Deps{
		ServiceName:  deps.Cfg.Prefix("CORE_API_").MayString("SERVICE_NAME", "coach-api"),
		StartedAt:    time.Now(),
		Capabilities: deps.Capabilities(),
	}
	// typed nil interfaces would defeat the skipped check
	if deps.PG != nil {
		md.PG = deps.PG
	}
	if deps.CH != nil {
		md.CH = deps.CH
	}
	return &Module{b: b, deps: md}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Ports has nothing to export
func (m *Module) Ports() any { return nil }
