// Package domain holds report request types and the session port reports read
package domain

import (
	"context"

	"github.com/google/uuid"

	"interviewcoach/internal/core/report"
	"interviewcoach/internal/core/scoring"
	sessdomain "interviewcoach/internal/services/sessions/domain"
)

// GenerateInput names a stored session or carries a history inline.
// With a session id the stored history wins over History
type GenerateInput struct {
	SessionID string                 `json:"session_id,omitempty" validate:"omitempty,uuid"`
	Domain    string                 `json:"domain" validate:"omitempty,slug" example:"software"`
	History   []scoring.TurnFeedback `json:"history,omitempty" validate:"max=500"`
}

// SessionReader loads a session
type SessionReader interface {
	Get(ctx context.Context, id uuid.UUID) (sessdomain.Session, error)
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Generate(ctx context.Context, in GenerateInput) (report.Report, error)
}
