// Package raw reads bootstrap settings before the logger exists.
// It must not import the logger package.
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefixed, logging-free view over the environment
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix returns a view with p appended to the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) value(k string) string { return strings.TrimSpace(os.Getenv(c.prefix + k)) }

// Get returns the trimmed value or def when it is blank
func (c Conf) Get(k, def string) string {
	if v := c.value(k); v != "" {
		return v
	}
	return def
}

// GetBool treats 1, true, yes and on as true and anything else set as false
func (c Conf) GetBool(k string, def bool) bool {
	switch strings.ToLower(c.value(k)) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// GetInt parses a non-negative decimal; anything else yields def
func (c Conf) GetInt(k string, def int) int {
	n, err := strconv.ParseUint(c.value(k), 10, 31)
	if err != nil {
		return def
	}
	return int(n)
}
