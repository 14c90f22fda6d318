// @title         Interview Coach API
// @version       1.0.0
// @description   Scores interview answers, runs practice sessions and builds improvement reports
// @BasePath      /api/v1

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"interviewcoach/internal/adapters/gemini"
	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/version"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/logger"
	phttp "interviewcoach/internal/platform/net/http"
	"interviewcoach/internal/platform/store"

	"interviewcoach/internal/services/api"
)

func main() {
	// .env is optional; real env wins
	_ = godotenv.Load()

	l := logger.Get()
	root := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// postgres and clickhouse are each enabled by their DBURL
	st, err := store.Open(ctx, store.FromConfig(root, "api", version.Info("coach-api").Version), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	caps := capability.NewRegistry(capability.Embedding, capability.Generation)
	opt := api.Options{
		Config:       root,
		Store:        st,
		Lexicon:      lexicon.MustLoad(),
		Capabilities: caps,
		Pool:         capability.NewPool(root.Prefix("CORE_EVALUATION_").MayInt("POOL_SIZE", 4)),
	}

	gcfg := gemini.FromConfig(root)
	if gcfg.Enabled() {
		gc, err := gemini.New(ctx, gcfg)
		if err != nil {
			l.Panic().Err(err).Msg("gemini client failed")
		}
		defer func() { _ = gc.Close() }()

		// loads run in the background; requests degrade until the gates turn ready
		caps.Gate(capability.Embedding).Start(ctx, gc.EmbeddingLoader())
		caps.Gate(capability.Generation).Start(ctx, gc.GenerationLoader())
		opt.Embedder, opt.Generator, opt.Transcriber = gc, gc, gc
	} else {
		off := errors.New("SERVICE_GEMINI_API_KEY not set")
		caps.Gate(capability.Embedding).MarkFailed(off)
		caps.Gate(capability.Generation).MarkFailed(off)
	}

	a := api.New(opt)
	if err := a.Setup(ctx); err != nil {
		l.Panic().Err(err).Msg("schema setup failed")
	}

	// http server (reads CORE_API_PORT etc)
	srv := phttp.NewServer(root.Prefix("CORE_API_"))
	a.Mount(srv.Router())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	for _, w := range a.Workers() {
		g.Go(func() error {
			if err := w(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("coach-api stopped")
		return
	}
	l.Info().Msg("coach-api stopped")
}
