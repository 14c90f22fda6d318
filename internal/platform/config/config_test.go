package config

import (
	"testing"
	"time"

	kit "interviewcoach/internal/platform/testkit"
)

func TestPrefixNesting(t *testing.T) {
	core := New().Prefix("CORE_")
	sessions := core.Prefix("SESSIONS_")
	if got := sessions.key("TTL"); got != "CORE_SESSIONS_TTL" {
		t.Fatalf("key = %q", got)
	}
	if got := core.key("API_PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key = %q", got)
	}
}

func TestMust_ParsesOrPanics(t *testing.T) {
	c := New().Prefix("CORE_API_")
	t.Setenv("CORE_API_SERVICE_NAME", "  coach-api ")
	t.Setenv("CORE_API_THROTTLE", " 64 ")
	t.Setenv("CORE_API_SWAGGER", "true")
	t.Setenv("CORE_API_REQUEST_TIMEOUT", "15s")
	t.Setenv("CORE_API_PORT", "4000")
	t.Setenv("CORE_API_BASE_URL", "https://coach.example.com/api")

	if got := c.MustString("SERVICE_NAME"); got != "coach-api" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MustInt("THROTTLE"); got != 64 {
		t.Fatalf("MustInt = %d", got)
	}
	if !c.MustBool("SWAGGER") {
		t.Fatal("MustBool = false")
	}
	if got := c.MustDuration("REQUEST_TIMEOUT"); got != 15*time.Second {
		t.Fatalf("MustDuration = %v", got)
	}
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	if u := c.MustURL("BASE_URL"); u.Host != "coach.example.com" {
		t.Fatalf("MustURL host = %q", u.Host)
	}

	bad := map[string]string{
		"CORE_API_B_INT":  "eight",
		"CORE_API_B_BOOL": "sometimes",
		"CORE_API_B_DUR":  "soon",
		"CORE_API_B_URL":  "/relative",
		"CORE_API_B_PORT": "70000",
	}
	for k, v := range bad {
		t.Setenv(k, v)
	}
	cases := map[string]func(){
		"missing string": func() { _ = c.MustString("NOPE") },
		"bad int":        func() { _ = c.MustInt("B_INT") },
		"bad bool":       func() { _ = c.MustBool("B_BOOL") },
		"bad duration":   func() { _ = c.MustDuration("B_DUR") },
		"relative url":   func() { _ = c.MustURL("B_URL") },
		"port range":     func() { _ = c.MustPort("B_PORT") },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) { kit.MustPanic(t, fn) })
	}
}

func TestRequire(t *testing.T) {
	c := New().Prefix("SERVICE_GEMINI_")
	t.Setenv("SERVICE_GEMINI_API_KEY", "k")
	t.Setenv("SERVICE_GEMINI_MODEL", "gemini-1.5-flash")
	t.Setenv("SERVICE_GEMINI_BLANK", "   ")

	c.Require("API_KEY", "MODEL")
	kit.MustPanic(t, func() { c.Require("API_KEY", "EMBED_MODEL") })
	kit.MustPanic(t, func() { c.Require("BLANK") })
}

func TestMay_FallsBackToDefault(t *testing.T) {
	c := New().Prefix("CORE_EVALUATION_")
	t.Setenv("CORE_EVALUATION_DEFAULT_MIME", " audio/ogg ")
	t.Setenv("CORE_EVALUATION_POOL_SIZE", "8")
	t.Setenv("CORE_EVALUATION_BAD_POOL", "x")
	t.Setenv("CORE_EVALUATION_WEIGHT", "0.25")
	t.Setenv("CORE_EVALUATION_BAD_WEIGHT", "heavy")
	t.Setenv("CORE_EVALUATION_STRICT", "1")
	t.Setenv("CORE_EVALUATION_BAD_STRICT", "nope")
	t.Setenv("CORE_EVALUATION_SEMANTIC_TIMEOUT", "150ms")
	t.Setenv("CORE_EVALUATION_BAD_TIMEOUT", "later")

	if got := c.MayString("DEFAULT_MIME", "audio/webm"); got != "audio/ogg" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("UNSET", "audio/webm"); got != "audio/webm" {
		t.Fatalf("MayString default = %q", got)
	}

	ints := []struct {
		key       string
		def, want int
	}{
		{"POOL_SIZE", 4, 8},
		{"BAD_POOL", 4, 4},
		{"UNSET", 3, 3},
	}
	for _, tc := range ints {
		if got := c.MayInt(tc.key, tc.def); got != tc.want {
			t.Fatalf("MayInt(%s) = %d, want %d", tc.key, got, tc.want)
		}
	}

	if got := c.MayFloat64("WEIGHT", 1); got != 0.25 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	if got := c.MayFloat64("BAD_WEIGHT", 1); got != 1 {
		t.Fatalf("MayFloat64 bad = %v", got)
	}
	if !c.MayBool("STRICT", false) || c.MayBool("BAD_STRICT", false) || !c.MayBool("UNSET", true) {
		t.Fatal("MayBool fallbacks wrong")
	}
	if got := c.MayDuration("SEMANTIC_TIMEOUT", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD_TIMEOUT", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CORE_API_")
	def := []string{"*"}

	cases := []struct {
		name string
		env  string
		want []string
	}{
		{"unset", "", []string{"*"}},
		{"blank items dropped", " http://a.test, http://b.test , ,", []string{"http://a.test", "http://b.test"}},
		{"only separators", " , ,  ,", []string{"*"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CORE_API_CORS_ORIGINS", tc.env)
			got := c.MayCSV("CORS_ORIGINS", def)
			if len(got) != len(tc.want) {
				t.Fatalf("MayCSV = %#v, want %#v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("LOG_")

	if got := c.MayEnum("FORMAT", "json", "json", "console"); got != "json" {
		t.Fatalf("default = %q", got)
	}
	if got := c.MayEnum("FORMAT", "", "json", "console"); got != "" {
		t.Fatalf("empty default = %q", got)
	}

	t.Setenv("LOG_FORMAT", "Console")
	if got := c.MayEnum("FORMAT", "json", "json", "console"); got != "Console" {
		t.Fatalf("allowed = %q", got)
	}

	t.Setenv("LOG_FORMAT", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("FORMAT", "json", "json", "console") })
}
