package repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"interviewcoach/internal/core/scoring"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/services/sessions/domain"
)

type entry struct {
	mu sync.Mutex
	s  domain.Session
}

// Memory keeps sessions in a TTL cache; every write refreshes the TTL
type Memory struct {
	c *cache.Cache
}

// NewMemory returns a store whose sessions expire ttl after their last write
func NewMemory(ttl, cleanup time.Duration) *Memory {
	return &Memory{c: cache.New(ttl, cleanup)}
}

// Create stores s; an existing id is a conflict
func (m *Memory) Create(_ context.Context, s domain.Session) error {
	if err := m.c.Add(s.ID.String(), &entry{s: s.Clone()}, cache.DefaultExpiration); err != nil {
		return perr.Conflictf("session %s already exists", s.ID)
	}
	return nil
}

// Get returns a copy of the session
func (m *Memory) Get(_ context.Context, id uuid.UUID) (domain.Session, error) {
	e, err := m.lookup(id)
	if err != nil {
		return domain.Session{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s.Clone(), nil
}

// AppendTurn adds turn and its answer to the end of the session
func (m *Memory) AppendTurn(_ context.Context, id uuid.UUID, turn scoring.TurnFeedback) (domain.Session, error) {
	return m.update(id, func(s *domain.Session) {
		s.History = append(s.History, turn)
		s.Answers = append(s.Answers, turn.Answer)
	})
}

// SetQuestion records question as the one being asked
func (m *Memory) SetQuestion(_ context.Context, id uuid.UUID, question string) (domain.Session, error) {
	return m.update(id, func(s *domain.Session) {
		s.CurrentQuestion = question
		s.QuestionsAsked++
	})
}

// Len reports how many sessions are live
func (m *Memory) Len() int { return m.c.ItemCount() }

func (m *Memory) lookup(id uuid.UUID) (*entry, error) {
	v, ok := m.c.Get(id.String())
	if !ok {
		return nil, notFound(id)
	}
	return v.(*entry), nil
}

func (m *Memory) update(id uuid.UUID, fn func(*domain.Session)) (domain.Session, error) {
	e, err := m.lookup(id)
	if err != nil {
		return domain.Session{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.s)
	m.c.SetDefault(id.String(), e)
	return e.s.Clone(), nil
}
