package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"interviewcoach/internal/core/capability"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/services/questions/domain"
)

type fakeGen struct {
	out    string
	err    error
	prompt string
}

func (f *fakeGen) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.out, f.err
}

func readyGate(t *testing.T) *capability.Gate {
	t.Helper()
	g := capability.NewGate(capability.Generation)
	if err := g.Start(context.Background(), func(context.Context) error { return nil }).Wait(context.Background()); err != nil {
		t.Fatalf("gate: %v", err)
	}
	return g
}

func TestPrompt(t *testing.T) {
	got := Prompt(lexicon.Software, lexicon.Senior)
	if got != "Generate an interview question for a senior level software engineer. Question:" {
		t.Fatalf("prompt = %q", got)
	}
}

func TestExtractQuestion(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Generate ... Question: What is a goroutine leak?", "What is a goroutine leak?", true},
		{"Question: a Question:  How do you test a REST API?  ", "How do you test a REST API?", true},
		{"Explain CAP theorem in practice.", "Explain CAP theorem in practice.", true},
		{"Question: Why?", "Why?", false},
		{"Question: 0123456789", "0123456789", false},
		{"Question: " + strings.Repeat("x", 200), strings.Repeat("x", 200), false},
		{"Question: " + strings.Repeat("x", 199), strings.Repeat("x", 199), true},
	}
	for _, tc := range cases {
		got, ok := ExtractQuestion(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ExtractQuestion(%q) = %q %v, want %q %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestGenerate_Sources(t *testing.T) {
	lx := lexicon.MustLoad()
	ctx := context.Background()

	cases := []struct {
		name string
		gen  *fakeGen
		gate func(t *testing.T) *capability.Gate
		src  domain.Source
	}{
		{"generated", &fakeGen{out: "Question: What is dependency injection?"}, readyGate, domain.SourceGenerated},
		{"too short", &fakeGen{out: "Question: Why?"}, readyGate, domain.SourceTemplate},
		{"generator error", &fakeGen{err: capability.ErrGenerationUnavailable}, readyGate, domain.SourceTemplate},
		{"gate never started", &fakeGen{out: "Question: What is dependency injection?"}, func(*testing.T) *capability.Gate {
			return capability.NewGate(capability.Generation)
		}, domain.SourceTemplate},
		{"gate failed", &fakeGen{out: "Question: What is dependency injection?"}, func(*testing.T) *capability.Gate {
			g := capability.NewGate(capability.Generation)
			g.MarkFailed(errors.New("no key"))
			return g
		}, domain.SourceTemplate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(lx, tc.gate(t), nil, tc.gen, Options{CapabilityWait: 10 * time.Millisecond})
			s.pick = func(int) int { return 0 }

			q, err := s.Generate(ctx, domain.GenerateInput{Domain: "software", ExperienceLevel: "intermediate"})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if q.Source != tc.src {
				t.Fatalf("source = %s, want %s (%q)", q.Source, tc.src, q.Question)
			}
			if tc.src == domain.SourceTemplate && q.Question != lx.QuestionPool(lexicon.Software, lexicon.Intermediate)[0] {
				t.Fatalf("template = %q", q.Question)
			}
		})
	}
}

func TestGenerate_NilGeneratorUsesTemplateForUnknownDomain(t *testing.T) {
	lx := lexicon.MustLoad()
	s := New(lx, nil, nil, nil, Options{})
	s.pick = func(int) int { return 0 }

	q, _ := s.Generate(context.Background(), domain.GenerateInput{Domain: "marketing", ExperienceLevel: "senior"})
	if q.Question != "Tell me about yourself." || q.Domain != "marketing" {
		t.Fatalf("q = %+v", q)
	}
}

func TestFollowUp(t *testing.T) {
	lx := lexicon.MustLoad()
	s := New(lx, nil, nil, nil, Options{})
	s.pick = func(n int) int { return n - 1 }

	q, _ := s.Next(context.Background(), domain.NextInput{Domain: "software", PreviousAnswers: []string{"I used Go"}})
	if q.Question != "How would you improve that approach?" || q.Source != domain.SourceFollowUp {
		t.Fatalf("q = %+v", q)
	}

	empty := *lx
	empty.FollowUps = nil
	s = New(&empty, nil, nil, nil, Options{})
	if got := s.FollowUp(context.Background(), "electronics", lexicon.Fresher, nil); got != "Tell me about your experience with electronics." {
		t.Fatalf("fallback = %q", got)
	}
}

func TestDomains_Copy(t *testing.T) {
	lx := lexicon.MustLoad()
	s := New(lx, nil, nil, nil, Options{})
	out := s.Domains()
	out.Domains[0].Name = "changed"
	if lx.Domains[0].Name == "changed" {
		t.Fatal("Domains leaks the lexicon slice")
	}
}
