// Package service builds improvement reports from stored or supplied histories
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/report"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/logger"
	"interviewcoach/internal/services/reports/domain"
)

// Svc implements domain.ServicePort
type Svc struct {
	sessions domain.SessionReader
	now      func() time.Time
}

// New wires the service. sessions may be nil when only inline histories are used
func New(sessions domain.SessionReader) *Svc {
	return &Svc{sessions: sessions, now: time.Now}
}

// Generate synthesizes a report
func (s *Svc) Generate(ctx context.Context, in domain.GenerateInput) (report.Report, error) {
	d := lexicon.NormalizeDomain(in.Domain)
	history := in.History
	sid := in.SessionID
	asked := -1

	if sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return report.Report{}, perr.WithField(perr.InvalidArgf("session id must be a uuid"), "session_id")
		}
		if s.sessions == nil {
			return report.Report{}, perr.Unavailablef("sessions are not enabled")
		}
		sess, err := s.sessions.Get(ctx, id)
		if err != nil {
			return report.Report{}, err
		}
		history = sess.History
		asked = sess.QuestionsAsked
		if strings.TrimSpace(in.Domain) == "" {
			d = sess.Domain
		}
		sid = id.String()
		ctx = logger.WithSession(ctx, sid)
	}

	rep := report.Synthesize(sid, d, history, s.now().UTC())
	// a stored session counts questions asked, including one still unanswered
	if asked > rep.Summary.TotalQuestions {
		rep.Summary.TotalQuestions = asked
	}
	logger.C(ctx).Info().
		Str("domain", string(d)).
		Int("turns", len(history)).
		Float64("overall", rep.Statistics.OverallScore).
		Msg("report generated")
	return rep, nil
}
