// Package module wires questions into the API using modkit
package module

import (
	"context"

	modkit "interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"
	str "interviewcoach/internal/platform/strings"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/lexicon"
	qhttp "interviewcoach/internal/services/questions/http"
	qsvc "interviewcoach/internal/services/questions/service"
)

// Module implements the questions module
type Module struct {
	b   modkit.Built
	svc qsvc.Service
}

// New constructs the questions module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("questions"),
		modkit.WithPrefix("/questions"),
	}, opts...)...)

	svc := qsvc.New(
		deps.Lexicon(),
		deps.Capabilities().Gate(capability.Generation),
		deps.Pool,
		deps.Generator,
		FromConfig(deps.Cfg),
	)
	return &Module{b: b, svc: svc}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { qhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Ports exposes the question source the sessions module consumes
func (m *Module) Ports() any { return Ports{Source: adaptSource{svc: m.svc}} }

// Ports is this module's exported port set
type Ports struct {
	Source interface {
		Question(ctx context.Context, d lexicon.Domain, lvl lexicon.Level) string
		FollowUp(ctx context.Context, d lexicon.Domain, lvl lexicon.Level, previous []string) string
	}
}

type adaptSource struct{ svc qsvc.Service }

func (a adaptSource) Question(ctx context.Context, d lexicon.Domain, lvl lexicon.Level) string {
	return a.svc.Question(ctx, d, lvl)
}

func (a adaptSource) FollowUp(ctx context.Context, d lexicon.Domain, lvl lexicon.Level, previous []string) string {
	return a.svc.FollowUp(ctx, d, lvl, previous)
}
