package pg

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestOneLine(t *testing.T) {
	in := "SELECT id,\n\t  answer\r\nFROM turns  WHERE id = $1 "
	if got := oneLine(in); got != "SELECT id, answer FROM turns WHERE id = $1" {
		t.Fatalf("oneLine = %q", got)
	}
}

func TestTracer_SlowQueriesWarn(t *testing.T) {
	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 1", ElapsedUS: 1500})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT pg_sleep(1)", ElapsedUS: 1e6, Slow: true})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d: %s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"level":"info"`) || !strings.Contains(lines[0], `"elapsed_ms":1.5`) {
		t.Fatalf("first line = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"level":"warn"`) || !strings.Contains(lines[1], `"component":"pg"`) {
		t.Fatalf("second line = %s", lines[1])
	}
}
