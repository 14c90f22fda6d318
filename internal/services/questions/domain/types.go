// Package domain holds question DTOs and the question contract
package domain

import (
	"context"

	"interviewcoach/internal/core/lexicon"
)

// Source says where a question came from
type Source string

// Question sources
const (
	SourceGenerated Source = "generated"
	SourceTemplate  Source = "template"
	SourceFollowUp  Source = "follow_up"
)

// GenerateInput asks for an opening question
type GenerateInput struct {
	Domain          string `json:"domain" validate:"omitempty,slug" example:"software"`
	ExperienceLevel string `json:"experience_level" validate:"omitempty,oneof=fresher intermediate senior" example:"fresher"`
}

// NextInput asks for a follow-up to the answers given so far
type NextInput struct {
	Domain          string   `json:"domain" validate:"omitempty,slug" example:"software"`
	ExperienceLevel string   `json:"experience_level" validate:"omitempty,oneof=fresher intermediate senior" example:"fresher"`
	PreviousAnswers []string `json:"previous_answers" validate:"max=100"`
}

// Question is the answer of both endpoints
type Question struct {
	Question        string         `json:"question" example:"What is a REST API?"`
	Domain          lexicon.Domain `json:"domain" example:"software"`
	ExperienceLevel lexicon.Level  `json:"experience_level" example:"fresher"`
	Source          Source         `json:"source" example:"template"`
}

// DomainsOutput lists the supported domains
type DomainsOutput struct {
	Domains []lexicon.DomainInfo `json:"domains"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Domains() DomainsOutput
	Generate(ctx context.Context, in GenerateInput) (Question, error)
	Next(ctx context.Context, in NextInput) (Question, error)
}
