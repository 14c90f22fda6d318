package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/lexicon"
	qsvc "interviewcoach/internal/services/questions/service"
)

type questionsFlags struct {
	domain   string
	level    string
	followUp []string
	count    int
	wait     time.Duration
}

func newQuestionsCommand() *cobra.Command {
	f := &questionsFlags{}
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print interview questions for a domain and level",
		Long: `Print questions the API would ask. Generated by Gemini when
SERVICE_GEMINI_API_KEY is set, drawn from the lexicon templates otherwise.
Pass --answer one or more times to ask a follow-up instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error { return runQuestions(cmd, f) },
	}
	cmd.Flags().StringVarP(&f.domain, "domain", "d", "general", "Interview domain")
	cmd.Flags().StringVarP(&f.level, "level", "l", "fresher", "Experience level")
	cmd.Flags().StringArrayVar(&f.followUp, "answer", nil, "Previous answer, asks a follow-up")
	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "Number of questions")
	cmd.Flags().DurationVar(&f.wait, "wait", 10*time.Second, "How long to wait for models to load")
	return cmd
}

func runQuestions(cmd *cobra.Command, f *questionsFlags) error {
	if f.count < 1 {
		return fmt.Errorf("count must be positive")
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

	svc := qsvc.New(lx, m.caps.Gate(capability.Generation), m.pool, m.gen, qsvc.Options{})
	d, lvl := lexicon.NormalizeDomain(f.domain), lexicon.NormalizeLevel(f.level)

	w := cmd.OutOrStdout()
	for i := range f.count {
		q := ""
		if len(f.followUp) > 0 {
			q = svc.FollowUp(ctx, d, lvl, f.followUp)
		} else {
			q = svc.Question(ctx, d, lvl)
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, strings.TrimSpace(q))
	}
	return nil
}
