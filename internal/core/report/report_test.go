package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/scoring"
)

func turn(comm, tech, clarity float64, fillers int) scoring.TurnFeedback {
	return scoring.TurnFeedback{
		Communication: scoring.CommunicationResult{Score: comm, ClarityScore: clarity, FillerWordsCount: fillers},
		Technical:     scoring.TechnicalResult{Score: tech},
		OverallScore:  scoring.OverallScore(comm, tech),
	}
}

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestSynthesize_EmptyHistory(t *testing.T) {
	r := Synthesize("s1", lexicon.Software, nil, t0)

	assert.Equal(t, Statistics{}, r.Statistics)
	assert.Equal(t, 0.0, r.Summary.OverallScore)
	assert.Equal(t, []string{"No data available"}, r.Strengths)
	assert.Equal(t, []string{"Complete more sessions for analysis"}, r.Weaknesses)

	require.Len(t, r.ImprovementPlan, 2)
	assert.Equal(t, "Communication", r.ImprovementPlan[0].Area)
	assert.Equal(t, "Technical Knowledge", r.ImprovementPlan[1].Area)
	assert.Equal(t, "Review fundamental concepts in software", r.ImprovementPlan[1].Actions[0])

	assert.Equal(t, []string{
		"Focus on fundamentals before moving to advanced topics.",
		"Consider structured learning programs for your domain.",
		"Practice software specific questions regularly.",
		"Record your practice sessions and review them critically.",
	}, r.Recommendations)
	assert.Empty(t, r.DetailedFeedback)
}

func TestSynthesize_StrongSession(t *testing.T) {
	h := []scoring.TurnFeedback{turn(0.8, 0.75, 0.8, 1), turn(0.9, 0.95, 0.7, 0)}
	r := Synthesize("s2", lexicon.DataScience, h, t0)

	s := r.Statistics
	assert.InDelta(t, 0.85, s.OverallScore, 1e-9)
	assert.InDelta(t, 0.85, s.AvgCommunication, 1e-9)
	assert.InDelta(t, 0.85, s.AvgTechnical, 1e-9)
	assert.InDelta(t, 0.75, s.AvgClarity, 1e-9)
	assert.Equal(t, 1, s.TotalFillerWords)
	assert.Equal(t, 2, s.SessionsCompleted)
	assert.Equal(t, 2, r.Summary.TotalQuestions)

	assert.Equal(t, []string{
		"Strong communication skills",
		"Solid technical knowledge",
		"Minimal use of filler words",
		"Clear and articulate responses",
	}, r.Strengths)
	assert.Equal(t, []string{"Continue practicing to maintain performance"}, r.Weaknesses)

	require.Len(t, r.ImprovementPlan, 1)
	assert.Equal(t, "Maintenance", r.ImprovementPlan[0].Area)
	assert.Equal(t, Low, r.ImprovementPlan[0].Priority)
	assert.NotNil(t, r.ImprovementPlan[0].Resources)

	assert.Equal(t, "Excellent performance! You're well-prepared for interviews.", r.Recommendations[0])
	assert.Equal(t, "Practice data_science specific questions regularly.", r.Recommendations[2])
}

func TestSynthesize_WeakSession(t *testing.T) {
	h := []scoring.TurnFeedback{turn(0.4, 0.5, 0.5, 7), turn(0.5, 0.55, 0.4, 6)}
	r := Synthesize("s3", "marketing", h, t0)

	assert.Equal(t, []string{"Shows potential with practice"}, r.Strengths)
	assert.Equal(t, []string{
		"Communication skills need improvement",
		"Technical knowledge needs strengthening",
		"High use of filler words (average: 6.5)",
		"Response clarity needs improvement",
	}, r.Weaknesses)

	areas := make([]string, 0, len(r.ImprovementPlan))
	for _, p := range r.ImprovementPlan {
		areas = append(areas, p.Area)
	}
	assert.Equal(t, []string{"Communication", "Technical Knowledge", "Filler Words"}, areas)
	assert.Equal(t, Medium, r.ImprovementPlan[2].Priority)

	// overall 0.4875 rounds to 0.49
	assert.Equal(t, "Focus on fundamentals before moving to advanced topics.", r.Recommendations[0])
	assert.Equal(t, "Practice marketing specific questions regularly.", r.Recommendations[2])
}

func TestSynthesize_MiddleTiers(t *testing.T) {
	h := []scoring.TurnFeedback{turn(0.65, 0.62, 0.65, 3)}
	r := Synthesize("s4", lexicon.Electronics, h, t0)

	assert.Equal(t, []string{"Good communication foundation", "Good technical understanding"}, r.Strengths)
	assert.Equal(t, []string{"Continue practicing to maintain performance"}, r.Weaknesses)
	assert.Equal(t, "You're making good progress. Focus on identified weak areas.", r.Recommendations[0])
	assert.Len(t, r.Recommendations, 4)
}

func TestSynthesize_IsPure(t *testing.T) {
	h := []scoring.TurnFeedback{turn(0.61, 0.72, 0.66, 4), turn(0.58, 0.49, 0.71, 12)}
	before := append([]scoring.TurnFeedback(nil), h...)

	a := Synthesize("s5", lexicon.Software, h, t0)
	b := Synthesize("s5", lexicon.Software, h, t0.Add(time.Hour))

	assert.Equal(t, a.Statistics, b.Statistics)
	assert.Equal(t, a.Strengths, b.Strengths)
	assert.Equal(t, a.Weaknesses, b.Weaknesses)
	assert.Equal(t, a.ImprovementPlan, b.ImprovementPlan)
	assert.Equal(t, a.Recommendations, b.Recommendations)
	assert.NotEqual(t, a.GeneratedAt, b.GeneratedAt)
	assert.Equal(t, before, h)

	// the report owns its copy of the history
	a.DetailedFeedback[0].OverallScore = 99
	assert.NotEqual(t, 99.0, h[0].OverallScore)
}
