// Package pool provides the explicit worker-pool handle shared by the
// parallel union-find executor and the parallel centrality engines.
//
// There is no process-wide pool: the caller creates a Pool, passes it into
// the constructors that need parallelism, and owns its lifetime. A Pool caps
// the number of tasks running at once across every computation that shares
// it, and optionally enforces a memory budget for the large per-worker
// arrays (DSU parents, distance/sigma buffers, accumulators).
//
// A nil *Pool is valid and runs tasks one after another with no budget.
package pool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ErrResourceExhausted is returned when an allocation would exceed the
// Pool's memory budget or cannot be satisfied at the requested size.
// Retrying with the same size cannot succeed.
var ErrResourceExhausted = errors.New("pool: resource exhausted")

// Task is one unit of work. Tasks must not submit further tasks to the same
// Pool and wait for them.
type Task func(ctx context.Context) error

// Pool bounds concurrent task execution and tracks reserved memory.
type Pool struct {
	workers int
	slots   *semaphore.Weighted

	memLimit int64
	memory   *semaphore.Weighted // nil if unlimited
	memUsed  atomic.Int64
}

// Option configures a Pool.
type Option func(*Pool)

// WithMemoryLimit caps the bytes that may be reserved at once. Zero or a
// negative value means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(p *Pool) {
		if bytes > 0 {
			p.memLimit = bytes
		}
	}
}

// New returns a Pool running at most workers tasks at once. workers <= 0
// selects runtime.GOMAXPROCS(0).
func New(workers int, opts ...Option) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		slots:   semaphore.NewWeighted(int64(workers)),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.memLimit > 0 {
		p.memory = semaphore.NewWeighted(p.memLimit)
	}

	return p
}

// Workers returns the concurrency cap. A nil Pool reports 1.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}

	return p.workers
}

// Run executes tasks and waits for all of them: it is the barrier between
// the compute phase and the merge/summation phase of every parallel
// algorithm. The first task error cancels the context handed to the others
// and is returned. If ctx is cancelled, no new tasks are started, tasks
// already running are allowed to finish, and ctx.Err() is returned.
func (p *Pool) Run(ctx context.Context, tasks ...Task) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if p == nil {
		for _, t := range tasks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := t(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	var acquireErr error
	for _, t := range tasks {
		if err := p.slots.Acquire(gctx, 1); err != nil {
			acquireErr = err
			break
		}
		g.Go(func() error {
			defer p.slots.Release(1)
			return t(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if acquireErr != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		return acquireErr
	}

	return nil
}

// Reserve books bytes against the memory budget. The returned release
// function must be called once the memory is no longer referenced.
func (p *Pool) Reserve(bytes int64) (release func(), err error) {
	if p == nil || bytes <= 0 {
		return func() {}, nil
	}
	if p.memory != nil && !p.memory.TryAcquire(bytes) {
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrResourceExhausted, bytes, p.memUsed.Load(), p.memLimit)
	}
	p.memUsed.Add(bytes)

	var once atomic.Bool
	return func() {
		if !once.CompareAndSwap(false, true) {
			return
		}
		if p.memory != nil {
			p.memory.Release(bytes)
		}
		p.memUsed.Add(-bytes)
	}, nil
}

// MemoryUsage returns the bytes currently reserved.
func (p *Pool) MemoryUsage() int64 {
	if p == nil {
		return 0
	}

	return p.memUsed.Load()
}

// MemoryLimit returns the configured budget, 0 if unlimited.
func (p *Pool) MemoryLimit() int64 {
	if p == nil {
		return 0
	}

	return p.memLimit
}

// Alloc reserves and allocates a slice of n elements. Sizes the runtime
// cannot satisfy are reported as ErrResourceExhausted instead of panicking.
func Alloc[T any](p *Pool, n int) (s []T, release func(), err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("%w: negative length %d", ErrResourceExhausted, n)
	}
	var zero T
	elem := int64(unsafe.Sizeof(zero))
	if elem > 0 && int64(n) > (1<<62)/elem {
		return nil, nil, fmt.Errorf("%w: %d elements overflow", ErrResourceExhausted, n)
	}
	release, err = p.Reserve(int64(n) * elem)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			release()
			s, release = nil, nil
			err = fmt.Errorf("%w: allocating %d elements: %v", ErrResourceExhausted, n, r)
		}
	}()

	return make([]T, n), release, nil
}
