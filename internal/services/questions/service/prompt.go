package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"interviewcoach/internal/core/lexicon"
)

const questionMarker = "Question:"

// Prompt is the generation prompt for an opening question
func Prompt(d lexicon.Domain, lvl lexicon.Level) string {
	return fmt.Sprintf("Generate an interview question for a %s level %s engineer. %s", lvl, d, questionMarker)
}

// ExtractQuestion keeps the text after the last "Question:" and accepts it
// only when it is longer than 10 and shorter than 200 characters
func ExtractQuestion(generated string) (string, bool) {
	q := generated
	if i := strings.LastIndex(q, questionMarker); i >= 0 {
		q = q[i+len(questionMarker):]
	}
	q = strings.TrimSpace(q)
	n := utf8.RuneCountInString(q)
	return q, n > 10 && n < 200
}

// fallbackFollowUp is used when the lexicon carries no follow-up templates
func fallbackFollowUp(d lexicon.Domain) string {
	return fmt.Sprintf("Tell me about your experience with %s.", d)
}
