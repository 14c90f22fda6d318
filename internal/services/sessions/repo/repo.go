// Package repo stores sessions in memory or in postgres
package repo

import (
	"context"

	"github.com/google/uuid"

	"interviewcoach/internal/core/scoring"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/services/sessions/domain"
)

// Repo is the persistence surface for sessions.
// AppendTurn and SetQuestion are serialized per session; different sessions do not contend
type Repo interface {
	Create(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, id uuid.UUID) (domain.Session, error)
	AppendTurn(ctx context.Context, id uuid.UUID, turn scoring.TurnFeedback) (domain.Session, error)
	SetQuestion(ctx context.Context, id uuid.UUID, question string) (domain.Session, error)
}

func notFound(id uuid.UUID) error { return perr.NotFoundf("session %s not found", id) }
