package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/textstats"
	"interviewcoach/internal/platform/logger"
)

// TechnicalResult is the per turn technical assessment
type TechnicalResult struct {
	Score        float64  `json:"score"`
	Correctness  float64  `json:"correctness"`
	Completeness float64  `json:"completeness"`
	Relevance    float64  `json:"relevance"`
	Feedback     string   `json:"feedback"`
	Suggestions  []string `json:"suggestions"`
}

// TechnicalFallback is returned when evaluation faults
func TechnicalFallback() TechnicalResult {
	return TechnicalResult{
		Score:        Neutral,
		Correctness:  Neutral,
		Completeness: Neutral,
		Relevance:    Neutral,
		Feedback:     "Evaluation error occurred",
		Suggestions:  []string{},
	}
}

// TechnicalOptions bounds how long semantic scoring may hold a turn
type TechnicalOptions struct {
	// CapabilityWait is the single bounded wait for a loading embedding gate
	CapabilityWait time.Duration
	// SemanticTimeout caps the embedding call itself
	SemanticTimeout time.Duration
}

// DefaultTechnicalOptions are used for zero fields
func DefaultTechnicalOptions() TechnicalOptions {
	return TechnicalOptions{CapabilityWait: capability.DefaultWait, SemanticTimeout: 10 * time.Second}
}

// TechnicalScorer scores an answer against its question and domain
type TechnicalScorer struct {
	lx   *lexicon.Lexicon
	gate *capability.Gate
	pool *capability.Pool
	emb  capability.Embedder
	opt  TechnicalOptions
}

// NewTechnicalScorer wires the scorer. gate and emb may be nil, in which case
// the semantic signal is always neutral
func NewTechnicalScorer(lx *lexicon.Lexicon, gate *capability.Gate, pool *capability.Pool, emb capability.Embedder, opt TechnicalOptions) *TechnicalScorer {
	def := DefaultTechnicalOptions()
	if opt.CapabilityWait <= 0 {
		opt.CapabilityWait = def.CapabilityWait
	}
	if opt.SemanticTimeout <= 0 {
		opt.SemanticTimeout = def.SemanticTimeout
	}
	if pool == nil {
		pool = capability.NewPool(1)
	}
	return &TechnicalScorer{lx: lx, gate: gate, pool: pool, emb: emb, opt: opt}
}

// Score evaluates answer. It never panics outward; a fault yields TechnicalFallback
func (s *TechnicalScorer) Score(ctx context.Context, question, answer string, domain lexicon.Domain) (out Outcome[TechnicalResult]) {
	defer func() {
		if r := recover(); r != nil {
			out = Degraded(TechnicalFallback(), fmt.Sprintf("technical evaluation: %v", r))
		}
	}()

	semantic := s.Semantic(ctx, question, answer, domain)
	keyword := KeywordScore(answer, s.lx.Keywords.Lookup(domain))
	length := LengthScore(answer)
	score := TechnicalComposite(semantic.Value, keyword, length)

	res := TechnicalResult{
		Score:        Round2(score),
		Correctness:  Round2(semantic.Value),
		Completeness: Round2(length),
		Relevance:    Round2(keyword),
		Feedback:     TechnicalFeedback(domain, score),
		Suggestions:  TechnicalSuggestions(score),
	}
	if semantic.IsDegraded() {
		return Degraded(res, semantic.Reason)
	}
	return OK(res)
}

// TechnicalComposite weights semantic, keyword and length signals 0.5/0.3/0.2
func TechnicalComposite(semantic, keyword, length float64) float64 {
	return clamp01(0.5*semantic + 0.3*keyword + 0.2*length)
}

// Semantic compares the answer with the question and the domain concepts.
// Neutral when the embedding capability is not ready after one bounded wait,
// or when the embedding call fails
func (s *TechnicalScorer) Semantic(ctx context.Context, question, answer string, domain lexicon.Domain) Outcome[float64] {
	if s.gate == nil || s.emb == nil {
		return Degraded(Neutral, "embedding capability not configured")
	}
	if !s.gate.AwaitReady(ctx, s.opt.CapabilityWait) {
		return Degraded(Neutral, "embedding capability "+s.gate.Status().String())
	}

	concepts := s.lx.Concepts.Lookup(domain)
	texts := make([]string, 0, 2+len(concepts))
	texts = append(texts, question, answer)
	texts = append(texts, concepts...)

	cctx, cancel := context.WithTimeout(ctx, s.opt.SemanticTimeout)
	defer cancel()

	vecs, err := capability.Do(cctx, s.pool, func(c context.Context) ([][]float32, error) {
		c, cancel := context.WithTimeout(c, s.opt.SemanticTimeout)
		defer cancel()
		return s.emb.Embed(c, texts)
	})
	if err == nil && len(vecs) != len(texts) {
		err = fmt.Errorf("embedder returned %d vectors for %d texts", len(vecs), len(texts))
	}
	if err != nil {
		log := logger.C(ctx)
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn().Dur("timeout", s.opt.SemanticTimeout).Msg("semantic scoring timed out, using neutral score")
		} else {
			log.Warn().Err(err).Msg("semantic scoring failed, using neutral score")
		}
		return Degraded(Neutral, "embedding failed: "+err.Error())
	}

	return OK(SemanticFromVectors(vecs[0], vecs[1], vecs[2:]))
}

// SemanticFromVectors combines 0.4 x cos(answer, question) with 0.6 x the mean
// cosine against each concept, then maps [-1,1] onto [0,1]
func SemanticFromVectors(question, answer []float32, concepts [][]float32) float64 {
	qSim := Cosine(answer, question)
	cSim := Neutral
	if len(concepts) > 0 {
		var sum float64
		for _, c := range concepts {
			sum += Cosine(answer, c)
		}
		cSim = sum / float64(len(concepts))
	}
	raw := 0.4*qSim + 0.6*cSim
	return clamp01((raw + 1) / 2)
}

// Cosine similarity over the common prefix; 0 when either vector has zero norm
func Cosine(a, b []float32) float64 {
	n := min(len(a), len(b))
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	c := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return math.Max(-1, math.Min(1, c))
}

// KeywordScore tiers the number of distinct keywords found as substrings
func KeywordScore(answer string, keywords []string) float64 {
	hits := presentCount(strings.ToLower(answer), keywords)
	switch {
	case hits == 0:
		return 0.3
	case hits < 3:
		return 0.5
	case hits < 5:
		return 0.7
	default:
		return 0.9
	}
}

// LengthScore tiers the whitespace word count; 21 to 100 words scores best
func LengthScore(answer string) float64 {
	n := len(textstats.Words(answer))
	switch {
	case n < 10:
		return 0.3
	case n < 20:
		return 0.6
	case n <= 100:
		return 0.9
	case n <= 150:
		return 0.8
	default:
		return 0.7
	}
}

// TechnicalFeedback picks the narrative tier for score
func TechnicalFeedback(domain lexicon.Domain, score float64) string {
	switch {
	case score >= 0.7:
		return fmt.Sprintf("Good answer! You demonstrated understanding of %s concepts. Consider adding more specific examples.", domain)
	case score >= 0.5:
		return fmt.Sprintf("Your answer shows basic understanding. Try to be more specific and provide concrete examples from %s.", domain)
	default:
		return fmt.Sprintf("Your answer needs more depth. Review %s fundamentals and practice explaining concepts clearly.", domain)
	}
}

// TechnicalSuggestions picks the suggestion tier for score
func TechnicalSuggestions(score float64) []string {
	switch {
	case score >= 0.7:
		return []string{
			"Great job! Continue practicing to maintain consistency.",
			"Try to add more real-world examples to your answers.",
		}
	case score >= 0.5:
		return []string{
			"Review fundamental concepts in your domain.",
			"Practice explaining technical concepts in simple terms.",
			"Prepare specific examples from your experience.",
		}
	default:
		return []string{
			"Focus on understanding core concepts in your domain.",
			"Practice answering questions out loud.",
			"Study common interview questions for your field.",
			"Work on structuring your answers clearly.",
		}
	}
}
