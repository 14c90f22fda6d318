// Package module wires reports into the API using modkit
package module

import (
	modkit "interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"
	str "interviewcoach/internal/platform/strings"

	"interviewcoach/internal/services/reports/domain"
	rhttp "interviewcoach/internal/services/reports/http"
	rsvc "interviewcoach/internal/services/reports/service"
)

// Ports declares what this module needs injected
type Ports struct {
	Sessions domain.SessionReader
}

// Module implements the reports module
type Module struct {
	b   modkit.Built
	svc domain.ServicePort
}

// New constructs the reports module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reports"),
		modkit.WithPrefix("/reports"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	return &Module{b: b, svc: rsvc.New(injected.Sessions)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { rhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Ports exposes the report service
func (m *Module) Ports() any { return m.svc }
