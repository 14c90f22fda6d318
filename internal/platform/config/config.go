// Package config reads service settings from the environment.
// A Conf carries a key prefix so each module owns its own namespace
// (CORE_SESSIONS_TTL, SERVICE_GEMINI_MODEL, ...).
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"interviewcoach/internal/platform/logger"
)

// Conf is a prefixed view over the process environment
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix returns a view whose keys are prefixed by p on top of the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the full key name and its trimmed value
func (c Conf) lookup(k string) (string, string) {
	name := c.key(k)
	return name, strings.TrimSpace(os.Getenv(name))
}

// must parses a required value; a missing or malformed value is fatal
func must[T any](c Conf, k, kind string, parse func(string) (T, error)) T {
	name, s := c.lookup(k)
	if s == "" {
		logger.Get().Panic().Str("key", name).Msg("missing required env")
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Panic().Err(err).Str("key", name).Str("value", s).Msgf("invalid %s value", kind)
	}
	return v
}

// may parses an optional value; a malformed value is logged and def is used
func may[T any](c Conf, k, kind string, def T, parse func(string) (T, error)) T {
	name, s := c.lookup(k)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", name).Str("value", s).Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

func asString(s string) (string, error) { return s, nil }

func asFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func asAbsURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("url %q is not absolute", s)
	}
	return u, nil
}

// asAddr turns a port number into a listen address like ":4000"
func asAddr(s string) (string, error) {
	p, err := strconv.Atoi(s)
	if err != nil {
		return "", err
	}
	if p < 1 || p > 65535 {
		return "", fmt.Errorf("port %d outside 1..65535", p)
	}
	return ":" + s, nil
}

// MustString returns a required value
func (c Conf) MustString(k string) string { return must(c, k, "string", asString) }

// MustInt returns a required integer
func (c Conf) MustInt(k string) int { return must(c, k, "int", strconv.Atoi) }

// MustBool returns a required boolean
func (c Conf) MustBool(k string) bool { return must(c, k, "bool", strconv.ParseBool) }

// MustDuration returns a required duration such as 250ms or 2s
func (c Conf) MustDuration(k string) time.Duration {
	return must(c, k, "duration", time.ParseDuration)
}

// MustURL returns a required absolute URL
func (c Conf) MustURL(k string) *url.URL { return must(c, k, "absolute url", asAbsURL) }

// MustPort returns a listen address built from a required port number
func (c Conf) MustPort(k string) string { return must(c, k, "port", asAddr) }

// Require panics on the first listed key that is unset or blank
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if name, s := c.lookup(k); s == "" {
			logger.Get().Panic().Str("key", name).Msg("missing required env")
		}
	}
}

// MayString returns the value or def
func (c Conf) MayString(k, def string) string { return may(c, k, "string", def, asString) }

// MayInt returns the value or def
func (c Conf) MayInt(k string, def int) int { return may(c, k, "int", def, strconv.Atoi) }

// MayFloat64 returns the value or def
func (c Conf) MayFloat64(k string, def float64) float64 {
	return may(c, k, "float64", def, asFloat)
}

// MayBool returns the value or def
func (c Conf) MayBool(k string, def bool) bool { return may(c, k, "bool", def, strconv.ParseBool) }

// MayDuration returns the value or def
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	return may(c, k, "duration", def, time.ParseDuration)
}

// MayCSV splits a comma separated value, dropping blank items; def when nothing remains
func (c Conf) MayCSV(k string, def []string) []string {
	_, s := c.lookup(k)
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it case-insensitively matches one of allowed.
// An unset key yields def; any other value is fatal.
func (c Conf) MayEnum(k, def string, allowed ...string) string {
	v := c.MayString(k, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.key(k)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
