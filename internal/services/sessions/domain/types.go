// Package domain holds session types and the contracts other modules consume
package domain

import (
	"time"

	"github.com/google/uuid"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/scoring"
)

// Session is one practice interview. History is append-only and ordered
type Session struct {
	ID              uuid.UUID              `json:"session_id"`
	Domain          lexicon.Domain         `json:"domain" example:"software"`
	ExperienceLevel lexicon.Level          `json:"experience_level" example:"fresher"`
	CurrentQuestion string                 `json:"current_question"`
	QuestionsAsked  int                    `json:"questions_asked" example:"1"`
	Answers         []string               `json:"answers"`
	History         []scoring.TurnFeedback `json:"history"`
	CreatedAt       time.Time              `json:"created_at"`
}

// Clone copies the slices so callers never share backing arrays with a store
func (s Session) Clone() Session {
	s.Answers = append([]string{}, s.Answers...)
	s.History = append([]scoring.TurnFeedback{}, s.History...)
	return s
}

// StartInput opens a session
type StartInput struct {
	Domain          string `json:"domain" validate:"omitempty,slug" example:"software"`
	ExperienceLevel string `json:"experience_level" validate:"omitempty,oneof=fresher intermediate senior" example:"fresher"`
}

// StartOutput is returned by start with the first question
type StartOutput struct {
	SessionID       uuid.UUID      `json:"session_id"`
	Question        string         `json:"question"`
	Domain          lexicon.Domain `json:"domain"`
	ExperienceLevel lexicon.Level  `json:"experience_level"`
}

// NextOutput is the follow-up recorded as the session's current question
type NextOutput struct {
	SessionID      uuid.UUID `json:"session_id"`
	Question       string    `json:"question"`
	QuestionsAsked int       `json:"questions_asked"`
}
