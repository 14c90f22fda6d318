package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/scoring"
	"interviewcoach/internal/modkit/repokit"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/store"
	"interviewcoach/internal/services/sessions/domain"
)

var schema = []string{
	`create table if not exists interview_sessions (
  id uuid primary key,
  domain text not null,
  experience_level text not null,
  current_question text not null default '',
  questions_asked int not null default 0,
  created_at timestamptz not null,
  updated_at timestamptz not null default now()
)`,
	`create table if not exists interview_turns (
  session_id uuid not null references interview_sessions(id) on delete cascade,
  turn_index int not null,
  feedback jsonb not null,
  created_at timestamptz not null,
  primary key (session_id, turn_index)
)`,
}

// appendAttempts bounds retries of an append that lost a lock race
const appendAttempts = 3

// PG stores sessions in postgres. Turns live in their own table keyed by a dense index
type PG struct {
	db repokit.TxRunner
}

// NewPG binds the store to db
func NewPG(db repokit.TxRunner) *PG { return &PG{db: db} }

// EnsureSchema creates the tables when missing
func (p *PG) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := p.db.Exec(ctx, stmt); err != nil {
			return perr.FromPostgres(err, "ensure session schema")
		}
	}
	return nil
}

type queries struct{ q repokit.Queryer }

var bind = repokit.BindFunc[*queries](func(q repokit.Queryer) *queries { return &queries{q: q} })

// Create inserts the session row
func (p *PG) Create(ctx context.Context, s domain.Session) error {
	err := store.ExecOne(ctx, p.db, `
insert into interview_sessions (id, domain, experience_level, current_question, questions_asked, created_at)
values ($1::uuid, $2, $3, $4, $5, $6)`,
		s.ID.String(), string(s.Domain), string(s.ExperienceLevel), s.CurrentQuestion, s.QuestionsAsked, s.CreatedAt)
	if perr.IsDuplicateKey(err) {
		return perr.Conflictf("session %s already exists", s.ID)
	}
	return perr.FromPostgres(err, "create session")
}

// Get loads the session with its full history
func (p *PG) Get(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	return bind.Bind(p.db).load(ctx, id)
}

// AppendTurn locks the session row, assigns the next turn index and inserts the turn
func (p *PG) AppendTurn(ctx context.Context, id uuid.UUID, turn scoring.TurnFeedback) (domain.Session, error) {
	raw, err := json.Marshal(turn)
	if err != nil {
		return domain.Session{}, fmt.Errorf("encode turn: %w", err)
	}

	var out domain.Session
	for attempt := 1; ; attempt++ {
		err = repokit.WithTx(ctx, p.db, bind, func(qs *queries) error {
			if err := qs.lock(ctx, id); err != nil {
				return err
			}
			next, err := store.Scalar[int](ctx, qs.q,
				`select coalesce(max(turn_index) + 1, 0) from interview_turns where session_id = $1::uuid`, id.String())
			if err != nil {
				return perr.FromPostgres(err, "next turn index")
			}
			if err := store.ExecOne(ctx, qs.q, `
insert into interview_turns (session_id, turn_index, feedback, created_at)
values ($1::uuid, $2, $3::jsonb, $4)`, id.String(), next, string(raw), turn.Timestamp); err != nil {
				return perr.FromPostgres(err, "insert turn")
			}
			if _, err := qs.q.Exec(ctx, `update interview_sessions set updated_at = now() where id = $1::uuid`, id.String()); err != nil {
				return perr.FromPostgres(err, "touch session")
			}
			out, err = qs.load(ctx, id)
			return err
		})
		if err == nil || attempt == appendAttempts || !perr.IsRetryable(err) {
			return out, err
		}
	}
}

// SetQuestion updates the current question under the row lock
func (p *PG) SetQuestion(ctx context.Context, id uuid.UUID, question string) (domain.Session, error) {
	var out domain.Session
	err := repokit.WithTx(ctx, p.db, bind, func(qs *queries) error {
		if err := qs.lock(ctx, id); err != nil {
			return err
		}
		if err := store.ExecOne(ctx, qs.q, `
update interview_sessions
set current_question = $2, questions_asked = questions_asked + 1, updated_at = now()
where id = $1::uuid`, id.String(), question); err != nil {
			return perr.FromPostgres(err, "set question")
		}
		var err error
		out, err = qs.load(ctx, id)
		return err
	})
	return out, err
}

func scanSession(r store.Row) (domain.Session, error) {
	var (
		s         domain.Session
		id        string
		dom, lvl  string
		createdAt time.Time
	)
	if err := r.Scan(&id, &dom, &lvl, &s.CurrentQuestion, &s.QuestionsAsked, &createdAt); err != nil {
		return s, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return s, fmt.Errorf("session id %q: %w", id, err)
	}
	s.ID = parsed
	s.Domain = lexicon.Domain(dom)
	s.ExperienceLevel = lexicon.Level(lvl)
	s.CreatedAt = createdAt.UTC()
	return s, nil
}

func scanTurn(r store.Row) (scoring.TurnFeedback, error) {
	var (
		raw []byte
		t   scoring.TurnFeedback
	)
	if err := r.Scan(&raw); err != nil {
		return t, err
	}
	return t, json.Unmarshal(raw, &t)
}

const selectSession = `
select id::text, domain, experience_level, current_question, questions_asked, created_at
from interview_sessions where id = $1::uuid`

// lock takes the row lock that serializes writers of one session
func (qs *queries) lock(ctx context.Context, id uuid.UUID) error {
	_, err := store.One(ctx, qs.q, scanSession, selectSession+` for update`, id.String())
	return qs.mapErr(err, id, "lock session")
}

func (qs *queries) load(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	s, err := store.One(ctx, qs.q, scanSession, selectSession, id.String())
	if err != nil {
		return s, qs.mapErr(err, id, "load session")
	}
	turns, err := store.Many(ctx, qs.q, scanTurn,
		`select feedback from interview_turns where session_id = $1::uuid order by turn_index`, id.String())
	if err != nil {
		return s, perr.FromPostgres(err, "load turns")
	}
	s.History = append([]scoring.TurnFeedback{}, turns...)
	s.Answers = make([]string, 0, len(turns))
	for _, t := range turns {
		s.Answers = append(s.Answers, t.Answer)
	}
	return s, nil
}

func (qs *queries) mapErr(err error, id uuid.UUID, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, perr.ErrNotFound) {
		return notFound(id)
	}
	return perr.FromPostgres(err, msg)
}
