// Package module wires evaluation into the API using modkit
package module

import (
	modkit "interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"
	str "interviewcoach/internal/platform/strings"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/scoring"
	adomain "interviewcoach/internal/services/analytics/domain"
	"interviewcoach/internal/services/evaluation/domain"
	ehttp "interviewcoach/internal/services/evaluation/http"
	esvc "interviewcoach/internal/services/evaluation/service"
)

// Ports declares what this module needs injected. Sink is optional
type Ports struct {
	Sessions domain.SessionLog
	Sink     adomain.Sink
}

// Module implements the evaluation module
type Module struct {
	b        modkit.Built
	svc      esvc.Service
	maxAudio int64
}

// New constructs the evaluation module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("interview"),
		modkit.WithPrefix("/interview"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Sessions == nil {
		panic("evaluation module requires a Sessions port (from sessions)")
	}

	o := FromConfig(deps.Cfg)
	lx := deps.Lexicon()
	caps := deps.Capabilities()

	ev := scoring.NewEvaluator(
		scoring.NewCommunicationScorer(lx),
		scoring.NewTechnicalScorer(lx, caps.Gate(capability.Embedding), deps.Pool, deps.Embedder, o.Technical),
	)

	svc := esvc.New(esvc.Deps{
		Evaluator:   ev,
		Caps:        caps,
		Sessions:    injected.Sessions,
		Sink:        injected.Sink,
		Transcriber: deps.Transcriber,
	}, o.Service)
	return &Module{b: b, svc: svc, maxAudio: o.MaxAudio}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { ehttp.Register(rr, m.svc, m.maxAudio) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Ports exposes the evaluation service
func (m *Module) Ports() any { return m.svc }
