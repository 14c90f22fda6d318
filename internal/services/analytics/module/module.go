// Package module wires analytics into the API using modkit
package module

import (
	"context"

	modkit "interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"
	str "interviewcoach/internal/platform/strings"

	"interviewcoach/internal/services/analytics/domain"
	ahttp "interviewcoach/internal/services/analytics/http"
	arepo "interviewcoach/internal/services/analytics/repo"
	asvc "interviewcoach/internal/services/analytics/service"
)

// Ports is what analytics exposes to the rest of the process
type Ports struct {
	// Sink receives scored turns from evaluation
	Sink domain.Sink
	// Setup creates the clickhouse table
	Setup func(ctx context.Context) error
	// Worker drains the buffer until ctx is done
	Worker func(ctx context.Context) error
}

// Module implements the analytics module
type Module struct {
	b     modkit.Built
	svc   asvc.Service
	ports Ports
}

// New constructs the analytics module. It requires deps.CH
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if deps.CH == nil {
		panic("analytics module requires clickhouse")
	}
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analytics"),
		modkit.WithPrefix("/analytics"),
	}, opts...)...)

	r := arepo.NewCH(deps.CH, Table(deps.Cfg))
	svc := asvc.New(r, FromConfig(deps.Cfg))
	return &Module{b: b, svc: svc, ports: Ports{Sink: svc, Setup: r.EnsureTable, Worker: svc.Run}}
}

// Ports exposes the sink and lifecycle hooks
func (m *Module) Ports() any { return m.ports }

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { ahttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
