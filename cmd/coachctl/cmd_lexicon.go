package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"interviewcoach/internal/core/lexicon"
)

func newLexiconCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect the lexicon tables",
	}
	cmd.AddCommand(newLexiconValidateCommand())
	return cmd
}

func newLexiconValidateCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a lexicon YAML file or the embedded tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				lx  *lexicon.Lexicon
				err error
			)
			src := "embedded"
			if file == "" {
				lx, err = lexicon.Load()
			} else {
				src = file
				var raw []byte
				if raw, err = os.ReadFile(file); err == nil {
					lx, err = lexicon.Parse(raw)
				}
			}
			w := cmd.OutOrStdout()
			if err != nil {
				color.New(color.FgRed).Fprintf(w, "✗ %s: %v\n", src, err)
				return fmt.Errorf("lexicon %s is invalid", src)
			}

			color.New(color.FgGreen).Fprintf(w, "✓ %s lexicon v%d is valid\n", src, lx.Version)
			fmt.Fprintf(w, "  fillers    %d\n", len(lx.Fillers))
			fmt.Fprintf(w, "  follow-ups %d\n", len(lx.FollowUps))
			for _, d := range lx.Domains {
				levels := 0
				for _, pool := range lx.Questions[d.ID] {
					levels += len(pool)
				}
				fmt.Fprintf(w, "  %-12s keywords=%d concepts=%d questions=%d\n", d.ID, len(lx.Keywords[d.ID]), len(lx.Concepts[d.ID]), levels)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Lexicon YAML file (defaults to the embedded tables)")
	return cmd
}
