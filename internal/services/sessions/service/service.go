// Package service contains session workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/scoring"
	"interviewcoach/internal/platform/logger"
	"interviewcoach/internal/services/sessions/domain"
	"interviewcoach/internal/services/sessions/repo"
)

// Service defines the sessions service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the sessions service
type Svc struct {
	repo      repo.Repo
	questions domain.QuestionSource
	now       func() time.Time
}

// New constructs a sessions service
func New(r repo.Repo, questions domain.QuestionSource) *Svc {
	if r == nil {
		panic("sessions.Service requires a non nil Repo")
	}
	if questions == nil {
		panic("sessions.Service requires a non nil QuestionSource")
	}
	return &Svc{repo: r, questions: questions, now: time.Now}
}

// Start creates a session and asks its first question
func (s *Svc) Start(ctx context.Context, in domain.StartInput) (domain.StartOutput, error) {
	d := lexicon.NormalizeDomain(in.Domain)
	lvl := lexicon.NormalizeLevel(in.ExperienceLevel)

	sess := domain.Session{
		ID:              uuid.New(),
		Domain:          d,
		ExperienceLevel: lvl,
		CurrentQuestion: s.questions.Question(ctx, d, lvl),
		QuestionsAsked:  1,
		Answers:         []string{},
		History:         []scoring.TurnFeedback{},
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return domain.StartOutput{}, err
	}

	logger.C(logger.WithSession(ctx, sess.ID.String())).Info().
		Str("domain", string(d)).
		Str("level", string(lvl)).
		Msg("session started")

	return domain.StartOutput{
		SessionID:       sess.ID,
		Question:        sess.CurrentQuestion,
		Domain:          d,
		ExperienceLevel: lvl,
	}, nil
}

// Get returns the session with its history
func (s *Svc) Get(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	return s.repo.Get(ctx, id)
}

// Next asks a follow-up based on the answers so far and records it as current
func (s *Svc) Next(ctx context.Context, id uuid.UUID) (domain.NextOutput, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.NextOutput{}, err
	}
	q := s.questions.FollowUp(ctx, sess.Domain, sess.ExperienceLevel, sess.Answers)
	sess, err = s.repo.SetQuestion(ctx, id, q)
	if err != nil {
		return domain.NextOutput{}, err
	}
	return domain.NextOutput{SessionID: id, Question: q, QuestionsAsked: sess.QuestionsAsked}, nil
}

// AppendTurn adds a scored turn to the session history
func (s *Svc) AppendTurn(ctx context.Context, id uuid.UUID, turn scoring.TurnFeedback) (domain.Session, error) {
	sess, err := s.repo.AppendTurn(ctx, id, turn)
	if err != nil {
		return sess, err
	}
	logger.C(logger.WithSession(ctx, id.String())).Debug().
		Int("turns", len(sess.History)).
		Float64("overall", turn.OverallScore).
		Msg("turn appended")
	return sess, nil
}
