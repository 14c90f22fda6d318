package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/scoring"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/testkit"
	"interviewcoach/internal/services/sessions/domain"
	"interviewcoach/internal/services/sessions/repo"
)

type fakeQuestions struct{ previous []string }

func (f *fakeQuestions) Question(_ context.Context, d lexicon.Domain, lvl lexicon.Level) string {
	return "first " + string(d) + "/" + string(lvl)
}

func (f *fakeQuestions) FollowUp(_ context.Context, _ lexicon.Domain, _ lexicon.Level, previous []string) string {
	f.previous = previous
	return "follow up after " + strings.Join(previous, ",")
}

func newSvc() (*Svc, *fakeQuestions) {
	q := &fakeQuestions{}
	s := New(repo.NewMemory(time.Hour, time.Minute), q)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s, q
}

func TestNew_PanicsWithoutDeps(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, &fakeQuestions{}) })
	testkit.MustPanic(t, func() { New(repo.NewMemory(time.Hour, time.Minute), nil) })
}

func TestStart_NormalizesAndAsksFirstQuestion(t *testing.T) {
	s, _ := newSvc()
	ctx := context.Background()

	out, err := s.Start(ctx, domain.StartInput{Domain: "Data_Science"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if out.Domain != lexicon.DataScience || out.ExperienceLevel != lexicon.Fresher {
		t.Fatalf("out = %+v", out)
	}
	if out.Question != "first data_science/fresher" {
		t.Fatalf("question = %q", out.Question)
	}

	sess, err := s.Get(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.QuestionsAsked != 1 || sess.CurrentQuestion != out.Question || !sess.CreatedAt.Equal(s.now()) {
		t.Fatalf("session = %+v", sess)
	}
	if sess.History == nil || sess.Answers == nil {
		t.Fatal("new session must carry empty, non-nil lists")
	}
}

func TestAppendTurnThenNext(t *testing.T) {
	s, q := newSvc()
	ctx := context.Background()
	out, _ := s.Start(ctx, domain.StartInput{Domain: "software", ExperienceLevel: "intermediate"})

	for _, answer := range []string{"one", "two"} {
		if _, err := s.AppendTurn(ctx, out.SessionID, scoring.TurnFeedback{Answer: answer}); err != nil {
			t.Fatalf("AppendTurn: %v", err)
		}
	}

	next, err := s.Next(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if next.Question != "follow up after one,two" || next.QuestionsAsked != 2 {
		t.Fatalf("next = %+v", next)
	}
	if len(q.previous) != 2 {
		t.Fatalf("follow-up saw %v", q.previous)
	}
}

func TestUnknownSession(t *testing.T) {
	s, _ := newSvc()
	ctx := context.Background()
	id := uuid.New()

	if _, err := s.Next(ctx, id); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Next err = %v", err)
	}
	if _, err := s.AppendTurn(ctx, id, scoring.TurnFeedback{}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("AppendTurn err = %v", err)
	}
}
