package centrality

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/internal/progress"
	"github.com/katalvlaran/graphalgo/msbfs"
	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/termination"
)

// Parallel partitions the sources over the workers of a pool. Sources are
// cut into batches of msbfs.Width; each worker pulls batches, runs the
// successor-stack pass for every source in it and adds into a private
// accumulator. After all workers are done the accumulators are summed over
// disjoint node ranges, again on the pool.
type Parallel struct {
	graph core.View
	pool  *pool.Pool
	opts  Options
}

// NewParallel validates g and opts. A nil pool runs on a single worker.
func NewParallel(g core.View, p *pool.Pool, opts ...Option) (*Parallel, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	return &Parallel{graph: g, pool: p, opts: o}, nil
}

// Workers returns the number of workers Compute will start.
func (pc *Parallel) Workers() int {
	w := pc.opts.Concurrency
	if w == 0 {
		w = pc.pool.Workers()
	}
	batches := (pc.graph.NodeCount() + msbfs.Width - 1) / msbfs.Width

	return max(1, min(w, batches))
}

// Compute returns the betweenness of every node. The flag is polled before
// each batch; on cancellation every partial accumulator is discarded.
func (pc *Parallel) Compute(ctx context.Context) (*Result, error) {
	flag := termination.Any(pc.opts.Flag, termination.FromContext(ctx))
	if err := termination.Check(flag); err != nil {
		return nil, err
	}

	n := pc.graph.NodeCount()
	batches := (n + msbfs.Width - 1) / msbfs.Width
	workers := pc.Workers()

	log := progress.New(pc.opts.Logger, "BetweennessCentrality(Parallel)", 0)
	ctx = log.Start(ctx, "nodes", n, "batches", batches, "workers", workers,
		"direction", pc.opts.Direction.String())

	mem := allocations{pool: pc.pool}
	defer mem.release()
	cb, err := allocate[float64](&mem, n)
	if err != nil {
		return nil, log.Finish(ctx, err)
	}

	sets := make([]*workingSet, workers)
	releaseAll := func() {
		for _, ws := range sets {
			if ws != nil {
				ws.release()
			}
		}
	}
	defer releaseAll()

	var (
		nextBatch atomic.Int64
		done      atomic.Int64
	)
	tasks := make([]pool.Task, workers)
	for w := range tasks {
		tasks[w] = func(context.Context) error {
			ws, err := newWorkingSet(pc.pool, n)
			if err != nil {
				return err
			}
			sets[w] = ws
			for {
				b := int(nextBatch.Add(1) - 1)
				if b >= batches {
					return nil
				}
				if err := termination.Check(flag); err != nil {
					return err
				}
				for src := b * msbfs.Width; src < min((b+1)*msbfs.Width, n); src++ {
					ws.accumulate(pc.graph, pc.opts.Direction, src)
				}
				log.Progress(ctx, done.Add(1), int64(batches))
			}
		}
	}
	if err := pc.pool.Run(ctx, tasks...); err != nil {
		return nil, log.Finish(ctx, asCancelled(err))
	}

	d := pc.opts.divisor()
	chunk := (n + workers - 1) / workers
	sums := make([]pool.Task, 0, workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		sums = append(sums, func(context.Context) error {
			for _, ws := range sets {
				for i, v := range ws.acc[start:end] {
					cb[start+i] += v
				}
			}
			for i := start; i < end; i++ {
				cb[i] /= d
			}
			return nil
		})
	}
	if err := pc.pool.Run(ctx, sums...); err != nil {
		return nil, log.Finish(ctx, asCancelled(err))
	}

	return &Result{scores: cb}, log.Finish(ctx, nil)
}
