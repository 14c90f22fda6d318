package capability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"interviewcoach/internal/platform/logger"
)

// DefaultWait is the bounded wait used when callers pass a non-positive wait
const DefaultWait = time.Second

// ErrNotReady is returned by callers that give up on a gate
var ErrNotReady = errors.New("capability not ready")

// Loader prepares a capability; a nil error marks the gate Ready
type Loader func(ctx context.Context) error

// Task is the handle of a running or finished load
type Task struct {
	done chan struct{}
	err  error
}

// Done is closed once the loader has returned
func (t *Task) Done() <-chan struct{} { return t.done }

// Err returns the loader error after Done is closed, nil before
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the load finishes or ctx ends
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Gate guards one capability. The zero value is not usable, use NewGate
type Gate struct {
	name   string
	status atomic.Int32

	mu   sync.Mutex
	task *Task
}

// NewGate returns an Unloaded gate
func NewGate(name string) *Gate {
	return &Gate{name: name}
}

// Name is the capability name used in logs and snapshots
func (g *Gate) Name() string { return g.name }

// Status returns the current state without blocking
func (g *Gate) Status() Status { return Status(g.status.Load()) }

// IsReady reports whether the capability finished loading successfully
func (g *Gate) IsReady() bool { return g.Status() == Ready }

// Start launches load in its own goroutine the first time it is called and
// returns the task handle; later calls return the same handle and ignore load.
// A panicking loader marks the gate Failed
func (g *Gate) Start(ctx context.Context, load Loader) *Task {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.task != nil {
		return g.task
	}

	t := &Task{done: make(chan struct{})}
	g.task = t
	g.status.Store(int32(Loading))

	log := logger.Named("capability")
	log.Info().Str("capability", g.name).Msg("loading")

	go func() {
		started := time.Now()
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.err = fmt.Errorf("capability %s: loader panic: %v", g.name, r)
				g.status.Store(int32(Failed))
				log.Error().Str("capability", g.name).Err(t.err).Msg("load failed")
			}
		}()

		if load == nil {
			t.err = fmt.Errorf("capability %s: no loader", g.name)
		} else {
			t.err = load(ctx)
		}
		if t.err != nil {
			g.status.Store(int32(Failed))
			log.Warn().Str("capability", g.name).Err(t.err).Dur("took", time.Since(started)).Msg("load failed, callers degrade to fallbacks")
			return
		}
		g.status.Store(int32(Ready))
		log.Info().Str("capability", g.name).Dur("took", time.Since(started)).Msg("ready")
	}()
	return t
}

// MarkFailed moves a gate that was never started straight to Failed, used when
// a capability is not configured. It is a no-op once Start has run
func (g *Gate) MarkFailed(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.task != nil {
		return
	}
	t := &Task{done: make(chan struct{}), err: err}
	close(t.done)
	g.task = t
	g.status.Store(int32(Failed))
	logger.Named("capability").Warn().Str("capability", g.name).Err(err).Msg("disabled")
}

// AwaitReady returns at once when the gate is terminal or was never started.
// While Loading it waits at most wait (DefaultWait when wait <= 0) or until
// ctx ends, then reports whether the gate is Ready
func (g *Gate) AwaitReady(ctx context.Context, wait time.Duration) bool {
	st := g.Status()
	if st.Terminal() || st == Unloaded {
		return st == Ready
	}

	g.mu.Lock()
	t := g.task
	g.mu.Unlock()
	if t == nil {
		return g.IsReady()
	}

	if wait <= 0 {
		wait = DefaultWait
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-t.done:
	case <-timer.C:
	case <-ctx.Done():
	}
	return g.IsReady()
}
