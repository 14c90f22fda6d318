package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/scoring"
)

type evaluateFlags struct {
	question string
	file     string
	domain   string
	asJSON   bool
	wait     time.Duration
}

func newEvaluateCommand() *cobra.Command {
	f := &evaluateFlags{}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a transcript against a question",
		Long: `Score one answer on communication and technical quality.

The transcript is read from --file, or from stdin with --file -. Semantic
scoring uses Gemini when SERVICE_GEMINI_API_KEY is set and is neutral otherwise.`,
		RunE: func(cmd *cobra.Command, _ []string) error { return runEvaluate(cmd, f) },
	}
	cmd.Flags().StringVarP(&f.question, "question", "q", "", "Interview question (required)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "-", "Transcript file, - for stdin")
	cmd.Flags().StringVarP(&f.domain, "domain", "d", "general", "Interview domain")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the feedback as JSON")
	cmd.Flags().DurationVar(&f.wait, "wait", 10*time.Second, "How long to wait for models to load")
	if err := cmd.MarkFlagRequired("question"); err != nil {
		panic(fmt.Sprintf("failed to mark question flag as required: %v", err))
	}
	return cmd
}

func runEvaluate(cmd *cobra.Command, f *evaluateFlags) error {
	raw, err := readInput(cmd, f.file)
	if err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}
	lx, err := lexicon.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	m, err := loadModels(ctx, f.wait)
	if err != nil {
		return err
	}
	defer m.done()

	ev := scoring.NewEvaluator(
		scoring.NewCommunicationScorer(lx),
		scoring.NewTechnicalScorer(lx, m.caps.Gate(capability.Embedding), m.pool, m.emb, scoring.TechnicalOptions{}),
	)
	fb := ev.EvaluateTurn(ctx, f.question, strings.TrimSpace(string(raw)), lexicon.NormalizeDomain(f.domain))

	if f.asJSON {
		return printJSON(cmd.OutOrStdout(), fb)
	}
	printFeedback(cmd.OutOrStdout(), fb)
	return nil
}
