package lexicon

import (
	"strings"
	"testing"
)

func TestLoad_EmbeddedTablesValid(t *testing.T) {
	lx, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lx.Fillers) != 19 {
		t.Fatalf("fillers = %d, want 19", len(lx.Fillers))
	}
	for _, d := range []Domain{Software, DataScience, Electronics, General} {
		if !lx.Keywords.Has(d) || !lx.Concepts.Has(d) {
			t.Fatalf("domain %q missing from tables", d)
		}
		if got := len(lx.Concepts[d]); got != 4 {
			t.Fatalf("concepts[%s] = %d, want 4", d, got)
		}
	}
	if len(lx.FollowUps) != 5 {
		t.Fatalf("follow ups = %d, want 5", len(lx.FollowUps))
	}
	if len(lx.Domains) != 4 || lx.Domains[0].ID != Software {
		t.Fatalf("domains order = %+v", lx.Domains)
	}
}

func TestTable_LookupFallsBackToGeneral(t *testing.T) {
	lx := MustLoad()

	got := lx.Keywords.Lookup("marketing")
	want := lx.Keywords[General]
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Lookup(marketing) = %v, want general %v", got, want)
	}
	if lx.Keywords.Has("marketing") {
		t.Fatal("Has(marketing) should be false")
	}
}

func TestQuestionPool_Fallbacks(t *testing.T) {
	lx := MustLoad()

	cases := []struct {
		name  string
		d     Domain
		lvl   Level
		first string
	}{
		{"known domain and level", Software, Intermediate, "Explain the difference between SQL and NoSQL databases."},
		{"missing level", Software, Senior, "Tell me about yourself."},
		{"unknown domain", "marketing", Fresher, "Tell me about yourself."},
		{"general has fresher only", General, Intermediate, "Tell me about yourself."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pool := lx.QuestionPool(tc.d, tc.lvl)
			if len(pool) == 0 || pool[0] != tc.first {
				t.Fatalf("pool = %v, want first %q", pool, tc.first)
			}
		})
	}
}

func TestParse_RequiresGeneralEntry(t *testing.T) {
	doc := `
fillers: [um]
tone: {positive: [good], hedging: [maybe], professional: [built]}
domains:
  - id: software
    keywords: [code]
    concepts: [programming]
    questions: {fresher: [What is code?]}
`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "general") {
		t.Fatalf("want missing general error, got %v", err)
	}
}

func TestParse_RejectsDuplicatesAndEmptyFillers(t *testing.T) {
	dup := `
fillers: [um]
tone: {positive: [a], hedging: [b], professional: [c]}
domains:
  - {id: general, keywords: [x], concepts: [y], questions: {fresher: [q]}}
  - {id: General, keywords: [x], concepts: [y], questions: {fresher: [q]}}
`
	if _, err := Parse([]byte(dup)); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("want duplicate error, got %v", err)
	}

	empty := `
tone: {positive: [a], hedging: [b], professional: [c]}
domains:
  - {id: general, keywords: [x], concepts: [y], questions: {fresher: [q]}}
`
	if _, err := Parse([]byte(empty)); err == nil || !strings.Contains(err.Error(), "filler") {
		t.Fatalf("want filler error, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	if got := NormalizeDomain("  Data_Science "); got != DataScience {
		t.Fatalf("NormalizeDomain = %q", got)
	}
	if got := NormalizeDomain(""); got != General {
		t.Fatalf("empty domain = %q, want general", got)
	}
	if got := NormalizeLevel(""); got != Fresher {
		t.Fatalf("empty level = %q, want fresher", got)
	}
}
