package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"interviewcoach/internal/adapters/gemini"
	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/platform/config"
)

func newRootCommand() *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:           "coachctl",
		Short:         "Interview coach tooling",
		Long:          "Score answers, synthesize reports and validate lexicon tables without running the API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		newEvaluateCommand(),
		newReportCommand(),
		newLexiconCommand(),
		newQuestionsCommand(),
	)
	return cmd
}

// models are the optional Gemini backed ports. Every field is nil when no key is configured
type models struct {
	caps *capability.Registry
	pool *capability.Pool
	emb  capability.Embedder
	gen  capability.Generator
	done func()
}

// loadModels dials Gemini when SERVICE_GEMINI_API_KEY is set and waits up to
// wait for the gates; without a key every gate is failed and scoring degrades
func loadModels(ctx context.Context, wait time.Duration) (models, error) {
	m := models{
		caps: capability.NewRegistry(capability.Embedding, capability.Generation),
		pool: capability.NewPool(2),
		done: func() {},
	}
	gcfg := gemini.FromConfig(config.New())
	if !gcfg.Enabled() {
		off := errors.New("SERVICE_GEMINI_API_KEY not set")
		m.caps.Gate(capability.Embedding).MarkFailed(off)
		m.caps.Gate(capability.Generation).MarkFailed(off)
		return m, nil
	}

	gc, err := gemini.New(ctx, gcfg)
	if err != nil {
		return models{}, err
	}
	m.emb, m.gen = gc, gc
	m.done = func() { _ = gc.Close() }

	tasks := []*capability.Task{
		m.caps.Gate(capability.Embedding).Start(ctx, gc.EmbeddingLoader()),
		m.caps.Gate(capability.Generation).Start(ctx, gc.GenerationLoader()),
	}
	wctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	for _, t := range tasks {
		_ = t.Wait(wctx)
	}
	return m, nil
}

// readInput reads a file, or stdin for "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
