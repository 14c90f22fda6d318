package scoring

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/platform/logger"
)

// TurnFeedback is the unit appended to a session history
type TurnFeedback struct {
	Question      string              `json:"question,omitempty"`
	Answer        string              `json:"answer,omitempty"`
	Domain        lexicon.Domain      `json:"domain,omitempty"`
	Communication CommunicationResult `json:"communication"`
	Technical     TechnicalResult     `json:"technical"`
	OverallScore  float64             `json:"overall_score"`
	Timestamp     time.Time           `json:"timestamp"`
	// Degraded lists the axes that fell back to a neutral signal
	Degraded []string `json:"degraded,omitempty"`
}

// OverallScore is the plain mean of the two axis scores
func OverallScore(communication, technical float64) float64 {
	return (communication + technical) / 2
}

// Evaluator scores one turn on both axes
type Evaluator struct {
	Comm *CommunicationScorer
	Tech *TechnicalScorer
	Now  func() time.Time
}

// NewEvaluator pairs the two scorers
func NewEvaluator(comm *CommunicationScorer, tech *TechnicalScorer) *Evaluator {
	return &Evaluator{Comm: comm, Tech: tech, Now: time.Now}
}

// EvaluateTurn runs both scorers concurrently and always returns a well formed
// TurnFeedback; degraded signals are logged, never surfaced as errors
func (e *Evaluator) EvaluateTurn(ctx context.Context, question, transcript string, domain lexicon.Domain) TurnFeedback {
	var (
		comm Outcome[CommunicationResult]
		tech Outcome[TechnicalResult]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		comm = e.Comm.Score(transcript)
		return nil
	})
	g.Go(func() error {
		tech = e.Tech.Score(gctx, question, transcript, domain)
		return nil
	})
	_ = g.Wait()

	log := logger.C(ctx)
	var degraded []string
	if comm.IsDegraded() {
		degraded = append(degraded, "communication")
		log.Warn().Str("reason", comm.Reason).Msg("communication score degraded")
	}
	if tech.IsDegraded() {
		degraded = append(degraded, "technical")
		log.Debug().Str("reason", tech.Reason).Str("domain", string(domain)).Msg("technical score degraded")
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return TurnFeedback{
		Question:      question,
		Answer:        transcript,
		Domain:        domain,
		Communication: comm.Value,
		Technical:     tech.Value,
		OverallScore:  OverallScore(comm.Value.Score, tech.Value.Score),
		Timestamp:     now().UTC(),
		Degraded:      degraded,
	}
}
