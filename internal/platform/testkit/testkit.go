// Package testkit provides testing helpers shared by package tests
package testkit

import (
	"strings"
	"testing"
)

// MustPanic asserts that fn panics and returns the panic message
func MustPanic(t *testing.T, fn func()) (msg string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic, got none")
		}
		if s, ok := r.(string); ok {
			msg = s
		}
	}()
	fn()
	return ""
}

// Swap replaces a package-level seam for the duration of the test
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// MustContain fails unless haystack contains every needle
func MustContain(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			t.Fatalf("expected %q in\n%s", n, haystack)
		}
	}
}
