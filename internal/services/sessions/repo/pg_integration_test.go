//go:build integration_pg

package repo

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"interviewcoach/internal/core/scoring"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/store"
	"interviewcoach/internal/platform/testkit"
)

func openPG(t *testing.T) *PG {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "sessions-test",
		PG:      store.PGConfig{Enabled: true, URL: testkit.StartPostgres(t), MaxConns: 8, ConnectRetries: 30, PingTimeout: 2 * time.Second},
	}, store.WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	p := NewPG(st.PG)
	if err := p.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := p.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema is not idempotent: %v", err)
	}
	return p
}

func TestPG_Integration_Lifecycle(t *testing.T) {
	p := openPG(t)
	ctx := context.Background()

	s := newSession()
	s.CurrentQuestion = "Tell me about yourself."
	s.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	if err := p.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := p.Create(ctx, s); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("duplicate Create err = %v", err)
	}
	if _, err := p.Get(ctx, uuid.New()); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Get unknown err = %v", err)
	}

	got, err := p.SetQuestion(ctx, s.ID, "Can you give a specific example?")
	if err != nil || got.QuestionsAsked != 2 || got.CurrentQuestion != "Can you give a specific example?" {
		t.Fatalf("SetQuestion = %+v, %v", got, err)
	}

	turn := scoring.TurnFeedback{Question: s.CurrentQuestion, Answer: "I build APIs", OverallScore: 0.62, Timestamp: time.Now().UTC()}
	got, err = p.AppendTurn(ctx, s.ID, turn)
	if err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}
	if len(got.History) != 1 || got.Answers[0] != "I build APIs" || got.History[0].OverallScore != 0.62 {
		t.Fatalf("after append = %+v", got)
	}
	if !got.CreatedAt.Equal(s.CreatedAt) || got.Domain != s.Domain {
		t.Fatalf("round trip = %+v", got)
	}
}

func TestPG_Integration_ConcurrentAppendsAreDense(t *testing.T) {
	p := openPG(t)
	ctx := context.Background()
	s := newSession()
	if err := p.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := p.AppendTurn(ctx, s.ID, scoring.TurnFeedback{Answer: fmt.Sprint(i), Timestamp: time.Now()}); err != nil {
				t.Errorf("AppendTurn %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	got, err := p.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.History) != n {
		t.Fatalf("turns = %d, want %d", len(got.History), n)
	}
	seen := map[string]bool{}
	for _, a := range got.Answers {
		seen[a] = true
	}
	if len(seen) != n {
		t.Fatalf("distinct answers = %d, want %d", len(seen), n)
	}
}
