package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize removes invalid UTF-8 and control characters. Tab, newline and
// carriage return survive; clean input is returned as is
func Sanitize(s string) string {
	if isClean(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if keepRune(r) {
			return r
		}
		return -1
	}, strings.ToValidUTF8(s, ""))
}

func isClean(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !keepRune(r) {
			return false
		}
	}
	return true
}

// keepRune rejects C0 controls, DEL and C1 controls
func keepRune(r rune) bool {
	switch {
	case r == '\n', r == '\r', r == '\t':
		return true
	case r < 0x20, r == 0x7f:
		return false
	case r >= 0x80 && r <= 0x9f:
		return false
	}
	return true
}
