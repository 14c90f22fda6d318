package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"interviewcoach/internal/core/report"
	"interviewcoach/internal/core/scoring"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	faint   = color.New(color.Faint)
	warn    = color.New(color.FgYellow)
)

func scoreColor(v float64) *color.Color {
	switch {
	case v >= 0.7:
		return color.New(color.FgGreen)
	case v >= 0.5:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func printScore(w io.Writer, label string, v float64) {
	fmt.Fprintf(w, "  %-14s ", label)
	scoreColor(v).Fprintf(w, "%.2f\n", v)
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	heading.Fprintln(w, title)
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printFeedback(w io.Writer, fb scoring.TurnFeedback) {
	heading.Fprintf(w, "Turn feedback (%s)\n", fb.Domain)
	printScore(w, "overall", fb.OverallScore)
	printScore(w, "communication", fb.Communication.Score)
	printScore(w, "technical", fb.Technical.Score)
	printScore(w, "clarity", fb.Communication.ClarityScore)
	printScore(w, "grammar", fb.Communication.GrammarScore)
	printScore(w, "tone", fb.Communication.ToneScore)
	fmt.Fprintf(w, "  %-14s %d", "fillers", fb.Communication.FillerWordsCount)
	if len(fb.Communication.FillerWords) > 0 {
		faint.Fprintf(w, " %v", fb.Communication.FillerWords)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", fb.Technical.Feedback)
	if len(fb.Degraded) > 0 {
		warn.Fprintf(w, "  degraded: %v\n", fb.Degraded)
	}
	printList(w, "Suggestions", append(append([]string{}, fb.Communication.Suggestions...), fb.Technical.Suggestions...))
}

func printReport(w io.Writer, r report.Report) {
	heading.Fprintf(w, "Report for %s (%d turns)\n", r.Domain, r.Summary.TotalQuestions)
	printScore(w, "overall", r.Statistics.OverallScore)
	printScore(w, "communication", r.Statistics.AvgCommunication)
	printScore(w, "technical", r.Statistics.AvgTechnical)
	printScore(w, "clarity", r.Statistics.AvgClarity)
	fmt.Fprintf(w, "  %-14s %d\n", "fillers", r.Statistics.TotalFillerWords)

	printList(w, "Strengths", r.Strengths)
	printList(w, "Weaknesses", r.Weaknesses)
	for _, p := range r.ImprovementPlan {
		heading.Fprintf(w, "Plan: %s ", p.Area)
		faint.Fprintf(w, "(%s)\n", p.Priority)
		for _, a := range p.Actions {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}
	printList(w, "Recommendations", r.Recommendations)
}
