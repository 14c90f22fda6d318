package module

import (
	"context"

	"github.com/google/uuid"

	"interviewcoach/internal/core/scoring"
	"interviewcoach/internal/services/sessions/domain"
	sesssvc "interviewcoach/internal/services/sessions/service"
)

// Ports declares what this module needs injected
type Ports struct {
	Questions domain.QuestionSource
}

// Ports returns the module's own port, a domain.ServicePort
func (m *Module) Ports() any { return m.ports }

type adaptSessionsPort struct{ svc sesssvc.Service }

func (a adaptSessionsPort) Start(ctx context.Context, in domain.StartInput) (domain.StartOutput, error) {
	return a.svc.Start(ctx, in)
}

func (a adaptSessionsPort) Get(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	return a.svc.Get(ctx, id)
}

func (a adaptSessionsPort) Next(ctx context.Context, id uuid.UUID) (domain.NextOutput, error) {
	return a.svc.Next(ctx, id)
}

func (a adaptSessionsPort) AppendTurn(ctx context.Context, id uuid.UUID, turn scoring.TurnFeedback) (domain.Session, error) {
	return a.svc.AppendTurn(ctx, id, turn)
}
