package fillers

import (
	"unicode"
	"unicode/utf8"
)

// isWord reports whether r counts as a word character for boundary checks.
// Letters, numbers, combining marks and connector punctuation are word runes;
// apostrophes and hyphens are not
func isWord(r rune) bool {
	if r == utf8.RuneError || r == 0 {
		return false
	}
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.In(r, unicode.Mn, unicode.Pc)
}

// onBoundary reports whether [start,end) is not glued to word runes on either side
func onBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWord(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWord(r) {
			return false
		}
	}
	return true
}
