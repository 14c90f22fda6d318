package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"trace":   "trace",
		"DEBUG":   "debug",
		"warning": "warn",
		"error":   "error",
		"":        "debug",
		" huh ":   "debug",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

// Init runs once per process so the whole root logger flow lives in one test
func TestRootLogger_RequestAndSessionFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "debug",
		Format:       "json",
		Service:      "coach-api",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "test"},
	})

	ctx := WithSession(WithRequest(context.Background(), "req-1"), "sess-9")
	C(ctx).Info().Msg("scored")
	Named("scoring").Debug().Msg("named")
	C(WithRequest(context.Background(), "")).Info().Msg("bare")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d: %s", len(lines), buf.String())
	}
	for _, want := range []string{`"request_id":"req-1"`, `"session_id":"sess-9"`, `"service":"coach-api"`, `"build":"test"`} {
		if !strings.Contains(lines[0], want) {
			t.Fatalf("line %s missing %s", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], `"component":"scoring"`) {
		t.Fatalf("named line = %s", lines[1])
	}
	if strings.Contains(lines[2], "request_id") {
		t.Fatalf("empty request id should not be logged: %s", lines[2])
	}
}
