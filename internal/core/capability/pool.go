package capability

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Pool bounds concurrent inference calls. Work runs on its own goroutine so a
// caller whose context ends can walk away while the call finishes in the background
type Pool struct {
	sem  *semaphore.Weighted
	size int64
}

// NewPool returns a pool with size slots, at least one
func NewPool(size int) *Pool {
	n := int64(max(1, size))
	return &Pool{sem: semaphore.NewWeighted(n), size: n}
}

// Size is the number of concurrent slots
func (p *Pool) Size() int { return int(p.size) }

type result[T any] struct {
	v   T
	err error
}

// Do runs fn on the pool and waits for its result or for ctx to end.
// fn receives a context detached from ctx cancellation but bound to the same
// deadline, so an abandoned call still ends and releases its slot
func Do[T any](ctx context.Context, p *Pool, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return zero, err
	}

	out := make(chan result[T], 1)
	go func() {
		defer p.sem.Release(1)
		run := context.WithoutCancel(ctx)
		if dl, ok := ctx.Deadline(); ok {
			var cancel context.CancelFunc
			run, cancel = context.WithDeadline(run, dl)
			defer cancel()
		}
		v, err := fn(run)
		out <- result[T]{v: v, err: err}
	}()

	select {
	case r := <-out:
		return r.v, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
