// Package textstats computes surface statistics of a transcript:
// sentence split, word split, syllable estimate and Flesch reading ease
package textstats

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoWords is returned when a readability formula has nothing to measure
var ErrNoWords = errors.New("textstats: text has no words")

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }

// Sentences splits text after runs of . ! or ? that are followed by whitespace
// or the end of input. Sentences keep their punctuation and are trimmed; a
// trailing fragment without terminal punctuation is kept as its own sentence
func Sentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); {
		r, sz := utf8.DecodeRuneInString(text[i:])
		if !isTerminal(r) {
			i += sz
			continue
		}
		j := i + sz
		for j < len(text) {
			r2, sz2 := utf8.DecodeRuneInString(text[j:])
			if !isTerminal(r2) {
				break
			}
			j += sz2
		}
		if j == len(text) {
			i = j
			break
		}
		if next, _ := utf8.DecodeRuneInString(text[j:]); unicode.IsSpace(next) {
			if s := strings.TrimSpace(text[start:j]); s != "" {
				out = append(out, s)
			}
			start = j
		}
		i = j
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// Words splits on whitespace
func Words(text string) []string { return strings.Fields(text) }

// letters strips everything but letters and lowercases the rest
func letters(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Syllables estimates syllables by counting vowel groups. A silent trailing e
// is dropped except in "-le" endings. Any word with letters has at least one
func Syllables(word string) int {
	w := letters(word)
	if w == "" {
		return 0
	}
	n := 0
	prev := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prev {
			n++
		}
		prev = v
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && n > 1 {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Counts are the raw totals behind the readability formula
type Counts struct {
	Sentences int
	Words     int
	Syllables int
}

// Count tallies sentences, words with letters or digits, and their syllables
func Count(text string) Counts {
	var c Counts
	c.Sentences = len(Sentences(text))
	for _, w := range Words(text) {
		if !hasAlnum(w) {
			continue
		}
		c.Words++
		c.Syllables += max(1, Syllables(w))
	}
	return c
}

func hasAlnum(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// FleschReadingEase returns 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
// The score is unbounded; callers clamp or remap it
func FleschReadingEase(text string) (float64, error) {
	c := Count(text)
	if c.Words == 0 || c.Sentences == 0 {
		return 0, ErrNoWords
	}
	wps := float64(c.Words) / float64(c.Sentences)
	spw := float64(c.Syllables) / float64(c.Words)
	return 206.835 - 1.015*wps - 84.6*spw, nil
}

// MeanSentenceLength is the average whitespace word count per sentence
func MeanSentenceLength(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += len(Words(s))
	}
	return float64(total) / float64(len(sentences))
}
