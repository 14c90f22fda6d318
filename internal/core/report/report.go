// Package report synthesizes an improvement report from a session history.
// Synthesize is pure: the same history always yields the same report apart
// from the generation timestamp
package report

import (
	"fmt"
	"time"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/scoring"
)

// Statistics are the rounded session aggregates
type Statistics struct {
	OverallScore      float64 `json:"overall_score"`
	AvgCommunication  float64 `json:"avg_communication"`
	AvgTechnical      float64 `json:"avg_technical"`
	TotalFillerWords  int     `json:"total_filler_words"`
	AvgClarity        float64 `json:"avg_clarity"`
	SessionsCompleted int     `json:"sessions_completed"`
}

// Summary is the headline block of a report
type Summary struct {
	TotalQuestions     int     `json:"total_questions"`
	OverallScore       float64 `json:"overall_score"`
	CommunicationScore float64 `json:"communication_score"`
	TechnicalScore     float64 `json:"technical_score"`
}

// Priority orders improvement areas
type Priority string

// Plan priorities
const (
	High   Priority = "High"
	Medium Priority = "Medium"
	Low    Priority = "Low"
)

// PlanItem is one block of the improvement plan
type PlanItem struct {
	Area      string   `json:"area"`
	Priority  Priority `json:"priority"`
	Actions   []string `json:"actions"`
	Resources []string `json:"resources"`
}

// Report is a derived view over a history and is never the source of truth
type Report struct {
	SessionID        string                 `json:"session_id"`
	Domain           lexicon.Domain         `json:"domain"`
	GeneratedAt      time.Time              `json:"generated_at"`
	Summary          Summary                `json:"summary"`
	Statistics       Statistics             `json:"statistics"`
	Strengths        []string               `json:"strengths"`
	Weaknesses       []string               `json:"weaknesses"`
	ImprovementPlan  []PlanItem             `json:"improvement_plan"`
	Recommendations  []string               `json:"recommendations"`
	DetailedFeedback []scoring.TurnFeedback `json:"detailed_feedback"`
}

// means are the unrounded per turn averages the rule lists read
type means struct {
	overall, communication, technical, clarity, fillers float64
	totalFillers                                        int
	n                                                   int
}

func aggregate(history []scoring.TurnFeedback) means {
	m := means{n: len(history)}
	if m.n == 0 {
		return m
	}
	for _, h := range history {
		m.overall += h.OverallScore
		m.communication += h.Communication.Score
		m.technical += h.Technical.Score
		m.clarity += h.Communication.ClarityScore
		m.totalFillers += h.Communication.FillerWordsCount
	}
	n := float64(m.n)
	m.overall /= n
	m.communication /= n
	m.technical /= n
	m.clarity /= n
	m.fillers = float64(m.totalFillers) / n
	return m
}

// Synthesize builds the report. history is read only; now feeds GeneratedAt
func Synthesize(sessionID string, domain lexicon.Domain, history []scoring.TurnFeedback, now time.Time) Report {
	m := aggregate(history)
	stats := statistics(m)

	detailed := make([]scoring.TurnFeedback, len(history))
	copy(detailed, history)

	return Report{
		SessionID:   sessionID,
		Domain:      domain,
		GeneratedAt: now.UTC(),
		Summary: Summary{
			TotalQuestions:     len(history),
			OverallScore:       stats.OverallScore,
			CommunicationScore: stats.AvgCommunication,
			TechnicalScore:     stats.AvgTechnical,
		},
		Statistics:       stats,
		Strengths:        strengths(m),
		Weaknesses:       weaknesses(m),
		ImprovementPlan:  improvementPlan(domain, stats),
		Recommendations:  recommendations(domain, stats),
		DetailedFeedback: detailed,
	}
}

func statistics(m means) Statistics {
	return Statistics{
		OverallScore:      scoring.Round2(m.overall),
		AvgCommunication:  scoring.Round2(m.communication),
		AvgTechnical:      scoring.Round2(m.technical),
		TotalFillerWords:  m.totalFillers,
		AvgClarity:        scoring.Round2(m.clarity),
		SessionsCompleted: m.n,
	}
}

func strengths(m means) []string {
	if m.n == 0 {
		return []string{"No data available"}
	}
	var out []string
	switch {
	case m.communication >= 0.7:
		out = append(out, "Strong communication skills")
	case m.communication >= 0.6:
		out = append(out, "Good communication foundation")
	}
	switch {
	case m.technical >= 0.7:
		out = append(out, "Solid technical knowledge")
	case m.technical >= 0.6:
		out = append(out, "Good technical understanding")
	}
	if m.fillers < 3 {
		out = append(out, "Minimal use of filler words")
	}
	if m.clarity >= 0.7 {
		out = append(out, "Clear and articulate responses")
	}
	if len(out) == 0 {
		out = append(out, "Shows potential with practice")
	}
	return out
}

func weaknesses(m means) []string {
	if m.n == 0 {
		return []string{"Complete more sessions for analysis"}
	}
	var out []string
	if m.communication < 0.6 {
		out = append(out, "Communication skills need improvement")
	}
	if m.technical < 0.6 {
		out = append(out, "Technical knowledge needs strengthening")
	}
	if m.fillers > 5 {
		out = append(out, fmt.Sprintf("High use of filler words (average: %.1f)", m.fillers))
	}
	if m.clarity < 0.6 {
		out = append(out, "Response clarity needs improvement")
	}
	if len(out) == 0 {
		out = append(out, "Continue practicing to maintain performance")
	}
	return out
}

func improvementPlan(domain lexicon.Domain, s Statistics) []PlanItem {
	var plan []PlanItem
	if s.AvgCommunication < 0.7 {
		plan = append(plan, PlanItem{
			Area:     "Communication",
			Priority: High,
			Actions: []string{
				"Practice speaking out loud daily",
				"Record yourself answering questions",
				"Focus on reducing filler words",
				"Work on sentence structure and clarity",
			},
			Resources: []string{
				"Join public speaking groups",
				"Practice with mock interviews",
				"Use voice recording apps for self-review",
			},
		})
	}
	if s.AvgTechnical < 0.7 {
		plan = append(plan, PlanItem{
			Area:     "Technical Knowledge",
			Priority: High,
			Actions: []string{
				fmt.Sprintf("Review fundamental concepts in %s", domain),
				"Practice explaining technical concepts simply",
				"Work on coding problems (if applicable)",
				"Study common interview questions for your domain",
			},
			Resources: []string{
				"Online courses and tutorials",
				"Technical blogs and documentation",
				"Practice platforms (LeetCode, HackerRank, etc.)",
			},
		})
	}
	if s.TotalFillerWords > 10 {
		plan = append(plan, PlanItem{
			Area:     "Filler Words",
			Priority: Medium,
			Actions: []string{
				"Practice pausing instead of using filler words",
				"Slow down your speech slightly",
				"Think before speaking",
				"Use silence as a tool, not filler words",
			},
			Resources: []string{
				"Speech therapy techniques",
				"Mindfulness and breathing exercises",
			},
		})
	}
	if len(plan) == 0 {
		plan = append(plan, PlanItem{
			Area:     "Maintenance",
			Priority: Low,
			Actions: []string{
				"Continue regular practice",
				"Maintain consistency in performance",
				"Challenge yourself with harder questions",
			},
			Resources: []string{},
		})
	}
	return plan
}

func recommendations(domain lexicon.Domain, s Statistics) []string {
	var out []string
	switch {
	case s.OverallScore >= 0.7:
		out = append(out,
			"Excellent performance! You're well-prepared for interviews.",
			"Continue practicing to maintain your skills and confidence.")
	case s.OverallScore >= 0.5:
		out = append(out,
			"You're making good progress. Focus on identified weak areas.",
			"Practice more frequently to build consistency.")
	default:
		out = append(out,
			"Focus on fundamentals before moving to advanced topics.",
			"Consider structured learning programs for your domain.")
	}
	return append(out,
		fmt.Sprintf("Practice %s specific questions regularly.", domain),
		"Record your practice sessions and review them critically.")
}
