// Package service picks interview questions, generated when the model is ready
// and drawn from the lexicon templates otherwise
package service

import (
	"context"
	"math/rand/v2"
	"time"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/platform/logger"
	"interviewcoach/internal/services/questions/domain"
)

// Service defines the questions service contract
type Service interface {
	domain.ServicePort
	Question(ctx context.Context, d lexicon.Domain, lvl lexicon.Level) string
	FollowUp(ctx context.Context, d lexicon.Domain, lvl lexicon.Level, previous []string) string
}

// Options bounds how long generation may hold a request
type Options struct {
	CapabilityWait    time.Duration
	GenerationTimeout time.Duration
}

// Svc implements the questions service
type Svc struct {
	lx   *lexicon.Lexicon
	gate *capability.Gate
	pool *capability.Pool
	gen  capability.Generator
	opt  Options

	pick func(n int) int
}

// New wires the service. gen may be nil, then every question is a template
func New(lx *lexicon.Lexicon, gate *capability.Gate, pool *capability.Pool, gen capability.Generator, opt Options) *Svc {
	if lx == nil {
		panic("questions.Service requires a lexicon")
	}
	if gate == nil {
		gate = capability.NewGate(capability.Generation)
	}
	if pool == nil {
		pool = capability.NewPool(1)
	}
	if opt.GenerationTimeout <= 0 {
		opt.GenerationTimeout = 15 * time.Second
	}
	return &Svc{lx: lx, gate: gate, pool: pool, gen: gen, opt: opt, pick: rand.IntN}
}

// Domains lists the domains the lexicon describes
func (s *Svc) Domains() domain.DomainsOutput {
	return domain.DomainsOutput{Domains: append([]lexicon.DomainInfo{}, s.lx.Domains...)}
}

// Generate returns an opening question for the requested domain and level
func (s *Svc) Generate(ctx context.Context, in domain.GenerateInput) (domain.Question, error) {
	d, lvl := lexicon.NormalizeDomain(in.Domain), lexicon.NormalizeLevel(in.ExperienceLevel)
	q, src := s.generate(ctx, d, lvl)
	return domain.Question{Question: q, Domain: d, ExperienceLevel: lvl, Source: src}, nil
}

// Next returns a follow-up question
func (s *Svc) Next(ctx context.Context, in domain.NextInput) (domain.Question, error) {
	d, lvl := lexicon.NormalizeDomain(in.Domain), lexicon.NormalizeLevel(in.ExperienceLevel)
	return domain.Question{
		Question:        s.FollowUp(ctx, d, lvl, in.PreviousAnswers),
		Domain:          d,
		ExperienceLevel: lvl,
		Source:          domain.SourceFollowUp,
	}, nil
}

// Question is Generate without the envelope, for the sessions module
func (s *Svc) Question(ctx context.Context, d lexicon.Domain, lvl lexicon.Level) string {
	q, _ := s.generate(ctx, d, lvl)
	return q
}

// FollowUp picks a random follow-up template. previous is accepted so a
// generated follow-up can use it later; templates ignore it
func (s *Svc) FollowUp(_ context.Context, d lexicon.Domain, _ lexicon.Level, _ []string) string {
	if len(s.lx.FollowUps) == 0 {
		return fallbackFollowUp(d)
	}
	return s.lx.FollowUps[s.pick(len(s.lx.FollowUps))]
}

func (s *Svc) generate(ctx context.Context, d lexicon.Domain, lvl lexicon.Level) (string, domain.Source) {
	if s.gen != nil && s.gate.AwaitReady(ctx, s.opt.CapabilityWait) {
		text, err := capability.Do(ctx, s.pool, func(c context.Context) (string, error) {
			c, cancel := context.WithTimeout(c, s.opt.GenerationTimeout)
			defer cancel()
			return s.gen.Generate(c, Prompt(d, lvl))
		})
		if err == nil {
			if q, ok := ExtractQuestion(text); ok {
				return q, domain.SourceGenerated
			}
			logger.C(ctx).Debug().Int("len", len(text)).Msg("generated question rejected, using template")
		} else {
			logger.C(ctx).Warn().Err(err).Str("domain", string(d)).Msg("question generation failed, using template")
		}
	}
	return s.template(d, lvl), domain.SourceTemplate
}

func (s *Svc) template(d lexicon.Domain, lvl lexicon.Level) string {
	pool := s.lx.QuestionPool(d, lvl)
	return pool[s.pick(len(pool))]
}
