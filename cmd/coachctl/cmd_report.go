package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/report"
	"interviewcoach/internal/core/scoring"
)

type reportFlags struct {
	file      string
	domain    string
	sessionID string
	asJSON    bool
}

func newReportCommand() *cobra.Command {
	f := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Synthesize an improvement report from a history file",
		Long: `Build the improvement report for a list of scored turns.

The file holds either a JSON array of turn feedback or a session object with a
"history" field, as returned by GET /api/v1/sessions/{id}.`,
		RunE: func(cmd *cobra.Command, _ []string) error { return runReport(cmd, f) },
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "-", "History file, - for stdin")
	cmd.Flags().StringVarP(&f.domain, "domain", "d", "", "Interview domain (defaults to the session domain or general)")
	cmd.Flags().StringVar(&f.sessionID, "session-id", "", "Session id to stamp on the report")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the report as JSON")
	return cmd
}

type sessionFile struct {
	SessionID string                 `json:"session_id"`
	Domain    string                 `json:"domain"`
	History   []scoring.TurnFeedback `json:"history"`
}

func decodeHistory(raw []byte) (sessionFile, error) {
	var history []scoring.TurnFeedback
	if err := json.Unmarshal(raw, &history); err == nil {
		return sessionFile{History: history}, nil
	}
	var s sessionFile
	if err := json.Unmarshal(raw, &s); err != nil {
		return sessionFile{}, fmt.Errorf("history must be a turn array or a session object: %w", err)
	}
	return s, nil
}

func runReport(cmd *cobra.Command, f *reportFlags) error {
	raw, err := readInput(cmd, f.file)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	s, err := decodeHistory(raw)
	if err != nil {
		return err
	}

	domain := f.domain
	if domain == "" {
		domain = s.Domain
	}
	sid := f.sessionID
	if sid == "" {
		sid = s.SessionID
	}

	rep := report.Synthesize(sid, lexicon.NormalizeDomain(domain), s.History, time.Now())
	if f.asJSON {
		return printJSON(cmd.OutOrStdout(), rep)
	}
	printReport(cmd.OutOrStdout(), rep)
	return nil
}
