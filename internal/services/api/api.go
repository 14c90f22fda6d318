// Package api assembles the interview coach HTTP API from its modules
package api

import (
	"context"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/logger"
	phttp "interviewcoach/internal/platform/net/http"
	"interviewcoach/internal/platform/store"

	"interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"
	"interviewcoach/internal/modkit/module"
	"interviewcoach/internal/modkit/swaggerkit"

	analyticsmod "interviewcoach/internal/services/analytics/module"
	metamod "interviewcoach/internal/services/api/meta/module"
	evalmod "interviewcoach/internal/services/evaluation/module"
	questionsmod "interviewcoach/internal/services/questions/module"
	reportsmod "interviewcoach/internal/services/reports/module"
	sessdomain "interviewcoach/internal/services/sessions/domain"
	sessionsmod "interviewcoach/internal/services/sessions/module"
	sessrepo "interviewcoach/internal/services/sessions/repo"
)

// Options are the API options. Config is the root view; modules apply their own prefixes.
// Store, the capability ports and Lexicon may be nil or zero
type Options struct {
	Config       config.Conf
	Store        *store.Store
	Lexicon      *lexicon.Lexicon
	Capabilities *capability.Registry
	Pool         *capability.Pool

	Embedder    capability.Embedder
	Generator   capability.Generator
	Transcriber capability.Transcriber
}

// API is the assembled module set
type API struct {
	cfg     config.Conf
	mods    []module.Module
	setup   []func(context.Context) error
	workers []func(context.Context) error
}

// New builds every module and wires their ports. Analytics is only present
// when clickhouse is configured
func New(opt Options) *API {
	deps := modkit.Deps{
		Cfg:         opt.Config,
		Lex:         opt.Lexicon,
		Caps:        opt.Capabilities,
		Pool:        opt.Pool,
		Embedder:    opt.Embedder,
		Generator:   opt.Generator,
		Transcriber: opt.Transcriber,
	}
	if deps.Caps == nil {
		deps.Caps = deps.Capabilities()
	}
	if deps.Pool == nil {
		deps.Pool = capability.NewPool(4)
	}

	a := &API{cfg: opt.Config}
	if opt.Store != nil {
		if opt.Store.PG != nil {
			deps.PG = opt.Store.PG
			a.setup = append(a.setup, sessrepo.NewPG(opt.Store.PG).EnsureSchema)
		}
		if opt.Store.CH != nil {
			deps.CH = opt.Store.CH
		}
	}

	qm := questionsmod.New(deps)
	sm := sessionsmod.New(deps, modkit.WithPorts(sessionsmod.Ports{
		Questions: module.MustPortsOf[questionsmod.Ports](qm).Source,
	}))
	sessions := module.MustPortsOf[sessdomain.ServicePort](sm)

	evalPorts := evalmod.Ports{Sessions: sessions}
	mods := []module.Module{metamod.New(deps), qm, sm}

	if deps.CH != nil {
		am := analyticsmod.New(deps)
		ap := module.MustPortsOf[analyticsmod.Ports](am)
		evalPorts.Sink = ap.Sink
		a.setup = append(a.setup, ap.Setup)
		a.workers = append(a.workers, ap.Worker)
		mods = append(mods, am)
	}

	mods = append(mods,
		evalmod.New(deps, modkit.WithPorts(evalPorts)),
		reportsmod.New(deps, modkit.WithPorts(reportsmod.Ports{Sessions: sessions})),
	)
	a.mods = mods
	return a
}

// Setup creates the tables the configured stores need
func (a *API) Setup(ctx context.Context) error {
	for _, fn := range a.setup {
		if err := fn(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Workers are the background loops to run next to the server
func (a *API) Workers() []func(context.Context) error { return a.workers }

// Modules lists the mounted modules in mount order
func (a *API) Modules() []module.Module { return a.mods }

// Mount mounts docs, the profiler and every module under /api/v1
func (a *API) Mount(r phttp.Router) {
	log := logger.Named("api")
	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackFromConfig(a.cfg)), func(api httpkit.Router) {
		swaggerkit.Mount(r, swaggerkit.FromConfig(a.cfg))
		phttp.MountProfiler(r, "/debug", a.cfg.Prefix("CORE_API_").MayBool("PROFILER", false))

		for _, m := range a.mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("mounted")
		}
	})
}
