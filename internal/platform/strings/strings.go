// Package strings has the few string helpers module wiring needs
package strings

import std "strings"

// IfEmpty is in, or def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustString returns s unless it is blank, in which case it panics with "<name> is required"
func MustString(s, name string) string {
	if std.TrimSpace(s) != "" {
		return s
	}
	panic(name + " is required")
}

// MustPrefix turns " sessions/ " into "/sessions". An empty or "/" prefix panics.
func MustPrefix(s string) string {
	trimmed := std.Trim(std.TrimSpace(s), "/ ")
	if trimmed == "" {
		panic("root path is required")
	}
	return "/" + trimmed
}
