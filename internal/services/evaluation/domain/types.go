// Package domain holds evaluation inputs, outputs and the ports it consumes
package domain

import (
	"context"

	"github.com/google/uuid"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/scoring"
	sessdomain "interviewcoach/internal/services/sessions/domain"
)

// EvaluateInput scores one answer, optionally appending it to a session
type EvaluateInput struct {
	Question   string `json:"question" validate:"required,max=2000" example:"What is polymorphism?"`
	Transcript string `json:"transcript" validate:"max=20000" example:"Polymorphism lets one interface serve many types."`
	Domain     string `json:"domain" validate:"omitempty,slug" example:"software"`
	SessionID  string `json:"session_id,omitempty" validate:"omitempty,uuid"`
}

// EvaluateOutput is the turn feedback plus where it was recorded
type EvaluateOutput struct {
	scoring.TurnFeedback
	SessionID     string `json:"session_id,omitempty"`
	TurnsRecorded int    `json:"turns_recorded,omitempty"`
}

// CommunicationInput runs only the communication axis
type CommunicationInput struct {
	Transcript string `json:"transcript" validate:"required,max=20000"`
}

// TranscriptOutput is the result of a file transcription
type TranscriptOutput struct {
	Transcript string `json:"transcript"`
}

// ChunkInput is one base64 encoded audio chunk from a live recorder
type ChunkInput struct {
	AudioData string `json:"audio_data" validate:"required"`
	MimeType  string `json:"mime_type,omitempty" validate:"omitempty,max=100" example:"audio/webm"`
}

// ChunkOutput mirrors the live transcript message
type ChunkOutput struct {
	Type string `json:"type" example:"transcript"`
	Text string `json:"text"`
}

// SessionLog is the part of the sessions port evaluation needs
type SessionLog interface {
	Get(ctx context.Context, id uuid.UUID) (sessdomain.Session, error)
	AppendTurn(ctx context.Context, id uuid.UUID, turn scoring.TurnFeedback) (sessdomain.Session, error)
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Evaluate(ctx context.Context, in EvaluateInput) (EvaluateOutput, error)
	Communication(ctx context.Context, in CommunicationInput) (scoring.CommunicationResult, error)
	Transcribe(ctx context.Context, audio []byte, mimeType string) (TranscriptOutput, error)
	TranscribeChunk(ctx context.Context, in ChunkInput) (ChunkOutput, error)
	Capability(ctx context.Context, name string) (capability.State, error)
}
