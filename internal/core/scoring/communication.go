package scoring

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"interviewcoach/internal/core/fillers"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/textstats"
)

// CommunicationResult is the per turn communication assessment
type CommunicationResult struct {
	Score            float64  `json:"score"`
	FillerWordsCount int      `json:"filler_words_count"`
	FillerWords      []string `json:"filler_words"`
	ClarityScore     float64  `json:"clarity_score"`
	GrammarScore     float64  `json:"grammar_score"`
	ToneScore        float64  `json:"tone_score"`
	Suggestions      []string `json:"suggestions"`
}

// CommunicationFallback is returned when analysis faults
func CommunicationFallback() CommunicationResult {
	return CommunicationResult{
		Score:        Neutral,
		FillerWords:  []string{},
		ClarityScore: Neutral,
		GrammarScore: Neutral,
		ToneScore:    Neutral,
		Suggestions:  []string{"Analysis error occurred"},
	}
}

// Suggestion texts
const (
	suggestFillersFmt = "Reduce filler words (found %d). Practice pausing instead of using 'um' or 'uh'."
	suggestClarity    = "Improve clarity by using shorter, more direct sentences. Avoid run-on sentences."
	suggestGrammar    = "Work on grammar and sentence structure. Practice speaking in complete sentences."
	suggestTone       = "Use more confident language. Avoid phrases like 'I think' or 'maybe'. Be more assertive."
	suggestKeepGoing  = "Great communication! Continue practicing to maintain consistency."
)

// CommunicationScorer is stateless after construction
type CommunicationScorer struct {
	fillers *fillers.Detector
	tone    lexicon.Tone
}

// NewCommunicationScorer builds a scorer over the filler and tone lexicons
func NewCommunicationScorer(lx *lexicon.Lexicon) *CommunicationScorer {
	return &CommunicationScorer{fillers: fillers.New(lx.Fillers), tone: lx.Tone}
}

// Score analyzes text. It never panics outward; a fault yields CommunicationFallback
func (s *CommunicationScorer) Score(text string) (out Outcome[CommunicationResult]) {
	defer func() {
		if r := recover(); r != nil {
			out = Degraded(CommunicationFallback(), fmt.Sprintf("communication analysis: %v", r))
		}
	}()

	occ, n := s.fillers.Detect(text)
	sentences := textstats.Sentences(text)

	clarity, readabilityOK := Clarity(text, sentences)
	grammar := Grammar(text, sentences)
	tone := s.Tone(text)
	score := CommunicationComposite(clarity, grammar, tone, n)

	res := CommunicationResult{
		Score:            Round2(score),
		FillerWordsCount: n,
		FillerWords:      fillers.Distinct(occ),
		ClarityScore:     Round2(clarity),
		GrammarScore:     Round2(grammar),
		ToneScore:        Round2(tone),
		Suggestions:      CommunicationSuggestions(n, clarity, grammar, tone),
	}
	if !readabilityOK {
		return Degraded(res, "readability unavailable, neutral readability used")
	}
	return OK(res)
}

// CommunicationComposite weights the sub-scores and applies the filler penalty:
// x0.9 above five fillers and a further x0.8 above ten
func CommunicationComposite(clarity, grammar, tone float64, fillerCount int) float64 {
	score := 0.4*clarity + 0.3*grammar + 0.3*tone
	if fillerCount > 5 {
		score *= 0.9
	}
	if fillerCount > 10 {
		score *= 0.8
	}
	return clamp01(score)
}

func blank(text string) bool { return strings.TrimSpace(text) == "" }

// Clarity blends sentence length, lexical diversity and readability.
// The second return is false when readability fell back to its default
func Clarity(text string, sentences []string) (float64, bool) {
	if blank(text) {
		return 0, true
	}
	if len(sentences) == 0 {
		return Neutral, true
	}

	length := sentenceLengthScore(textstats.MeanSentenceLength(sentences))

	words := textstats.Words(strings.ToLower(text))
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	var ratio float64
	if len(words) > 0 {
		ratio = float64(len(unique)) / float64(len(words))
	}
	diversity := min(1.0, ratio*1.2)

	readability, ok := 0.7, false
	if fre, err := textstats.FleschReadingEase(text); err == nil {
		readability, ok = clamp01((fre-30)/70), true
	}

	return clamp01(0.3*length + 0.3*diversity + 0.4*readability), ok
}

func sentenceLengthScore(avg float64) float64 {
	switch {
	case avg >= 15 && avg <= 20:
		return 1.0
	case avg >= 10 && avg <= 25:
		return 0.8
	case avg >= 5 && avg <= 30:
		return 0.6
	default:
		return 0.4
	}
}

// Grammar scores terminal punctuation and leading capitals per sentence
func Grammar(text string, sentences []string) float64 {
	if blank(text) {
		return 0
	}
	if len(sentences) == 0 {
		return Neutral
	}

	var ended, capped int
	for _, s := range sentences {
		if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
			ended++
		}
		if startsUpper(s) {
			capped++
		}
	}
	total := float64(len(sentences))
	return clamp01(0.7 + 0.2*float64(ended)/total + 0.1*float64(capped)/total)
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// Tone starts at 0.7 and moves with confident, hedging and professional phrasing
func (s *CommunicationScorer) Tone(text string) float64 {
	if blank(text) {
		return Neutral
	}
	lower := strings.ToLower(text)

	score := 0.7
	score += min(0.2, 0.05*float64(presentCount(lower, s.tone.Positive)))
	score -= min(0.2, 0.05*float64(presentCount(lower, s.tone.Hedging)))
	score += min(0.1, 0.02*float64(presentCount(lower, s.tone.Professional)))
	return clamp01(score)
}

// presentCount counts lexicon entries that occur in s as substrings
func presentCount(s string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(s, t) {
			n++
		}
	}
	return n
}

// CommunicationSuggestions lists tips in a fixed order, or one encouragement
func CommunicationSuggestions(fillerCount int, clarity, grammar, tone float64) []string {
	var out []string
	if fillerCount > 5 {
		out = append(out, fmt.Sprintf(suggestFillersFmt, fillerCount))
	}
	if clarity < 0.6 {
		out = append(out, suggestClarity)
	}
	if grammar < 0.6 {
		out = append(out, suggestGrammar)
	}
	if tone < 0.6 {
		out = append(out, suggestTone)
	}
	if len(out) == 0 {
		out = append(out, suggestKeepGoing)
	}
	return out
}
