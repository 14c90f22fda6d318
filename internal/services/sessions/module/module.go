// Package module wires sessions into the API using modkit
package module

import (
	modkit "interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"
	"interviewcoach/internal/platform/logger"
	str "interviewcoach/internal/platform/strings"

	sesshttp "interviewcoach/internal/services/sessions/http"
	sessrepo "interviewcoach/internal/services/sessions/repo"
	sesssvc "interviewcoach/internal/services/sessions/service"
)

// Module implements the sessions module
type Module struct {
	b     modkit.Built
	ports any
	svc   sesssvc.Service
}

// New constructs the sessions module. Postgres backs it when deps.PG is set,
// otherwise a TTL memory store does
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("sessions"),
		modkit.WithPrefix("/sessions"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Questions == nil {
		panic("sessions module requires a Questions port (from questions)")
	}

	var repo sessrepo.Repo
	if deps.PG != nil {
		repo = sessrepo.NewPG(deps.PG)
		logger.Named("sessions").Info().Msg("sessions stored in postgres")
	} else {
		o := FromConfig(deps.Cfg)
		repo = sessrepo.NewMemory(o.TTL, o.Cleanup)
		logger.Named("sessions").Info().Dur("ttl", o.TTL).Msg("sessions stored in memory")
	}

	svc := sesssvc.New(repo, injected.Questions)
	return &Module{b: b, svc: svc, ports: adaptSessionsPort{svc: svc}}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { sesshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
