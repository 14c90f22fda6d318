package domain

import (
	"context"

	"github.com/google/uuid"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/scoring"
)

// ServicePort is consumed by handlers and by the evaluation and reports modules
type ServicePort interface {
	Start(ctx context.Context, in StartInput) (StartOutput, error)
	Get(ctx context.Context, id uuid.UUID) (Session, error)
	Next(ctx context.Context, id uuid.UUID) (NextOutput, error)
	AppendTurn(ctx context.Context, id uuid.UUID, turn scoring.TurnFeedback) (Session, error)
}

// QuestionSource supplies questions; it always answers, falling back to templates
type QuestionSource interface {
	Question(ctx context.Context, d lexicon.Domain, lvl lexicon.Level) string
	FollowUp(ctx context.Context, d lexicon.Domain, lvl lexicon.Level, previous []string) string
}
