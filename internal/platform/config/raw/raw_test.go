package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " coach-api ")
	t.Setenv("LOG_LEVEL", "   ")

	log := New().Prefix("LOG_")
	if got := log.Get("SERVICE", "x"); got != "coach-api" {
		t.Fatalf("Get = %q", got)
	}
	if got := log.Get("LEVEL", "info"); got != "info" {
		t.Fatalf("blank Get = %q, want default", got)
	}
	if got := New().Get("LOG_SERVICE", ""); got != "coach-api" {
		t.Fatalf("root Get = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	log := New().Prefix("LOG_")
	cases := []struct {
		env  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{" YES ", false, true},
		{"on", false, true},
		{"0", true, false},
		{"off", true, false},
		{"maybe", true, false},
	}
	for _, tc := range cases {
		t.Setenv("LOG_CALLER", tc.env)
		if got := log.GetBool("CALLER", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tc.env, tc.def, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	log := New().Prefix("LOG_")
	cases := []struct {
		env       string
		def, want int
	}{
		{"", 0, 0},
		{"10", 0, 10},
		{" 7 ", 1, 7},
		{"12x", 9, 9},
		{"-5", 3, 3},
		{"99999999999", 2, 2},
	}
	for _, tc := range cases {
		t.Setenv("LOG_SAMPLE_EVERY", tc.env)
		if got := log.GetInt("SAMPLE_EVERY", tc.def); got != tc.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tc.env, got, tc.want)
		}
	}
}

func TestPrefixesDoNotCollide(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("CORE_LOG_LEVEL", "debug")

	if got := New().Prefix("LOG_").Get("LEVEL", ""); got != "info" {
		t.Fatalf("LOG_LEVEL = %q", got)
	}
	if got := New().Prefix("CORE_").Prefix("LOG_").Get("LEVEL", ""); got != "debug" {
		t.Fatalf("CORE_LOG_LEVEL = %q", got)
	}
}
