package unionfind

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/dss"
	"github.com/katalvlaran/graphalgo/internal/progress"
	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/termination"
)

// Executor computes connected components with several workers.
//
// The id space is cut into ceil(n/BatchSize) contiguous batches. Workers pull
// the next unclaimed batch from a shared counter and union it into their own
// full-size DisjointSetStruct, so the compute phase shares nothing else.
// After the barrier, structures are merged pairwise (binary tree) until one
// remains.
type Executor struct {
	graph core.View
	pool  *pool.Pool
	opts  Options
}

// NewExecutor validates g and opts. p supplies the workers and the memory
// budget; its lifetime belongs to the caller.
func NewExecutor(g core.View, p *pool.Pool, opts ...Option) (*Executor, error) {
	if err := core.Validate(g); err != nil {
		return nil, fmt.Errorf("unionfind: %w", err)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return &Executor{graph: g, pool: p, opts: o}, nil
}

// Workers returns the number of workers Compute will use.
func (e *Executor) Workers() int {
	w := e.opts.Concurrency
	if w <= 0 {
		w = e.pool.Workers()
	}
	if b := e.Batches(); w > b {
		w = b
	}

	return max(w, 1)
}

// Batches returns the number of batches the id space is cut into.
func (e *Executor) Batches() int {
	n, b := e.graph.NodeCount(), e.opts.BatchSize

	return (n + b - 1) / b
}

// Compute runs the compute and merge phases. On cancellation, batches
// already started finish, nothing new is issued, all partial structures are
// released and termination.ErrCancelled is returned.
func (e *Executor) Compute(ctx context.Context) (*dss.DisjointSetStruct, error) {
	flag := termination.Any(e.opts.Flag, termination.FromContext(ctx))
	if err := termination.Check(flag); err != nil {
		return nil, err
	}

	n := e.graph.NodeCount()
	batches, workers := e.Batches(), e.Workers()
	log := progress.New(e.opts.Logger, "CC(ParallelUnionFind)", 0)
	ctx = log.Start(ctx, "nodes", n, "batches", batches, "workers", workers, "threshold", e.opts.HasThreshold)

	structs := make([]*dss.DisjointSetStruct, workers)
	releaseAll := func() {
		for _, s := range structs {
			if s != nil {
				s.Release()
			}
		}
	}
	for w := range structs {
		s, err := dss.NewWithPool(e.pool, n)
		if err != nil {
			releaseAll()
			return nil, log.Finish(ctx, err)
		}
		structs[w] = s
	}

	// compute phase
	var (
		nextBatch atomic.Int64
		done      atomic.Int64
	)
	tasks := make([]pool.Task, workers)
	for w := range tasks {
		local := structs[w]
		tasks[w] = func(context.Context) error {
			for {
				b := int(nextBatch.Add(1) - 1)
				if b >= batches {
					return nil
				}
				if err := termination.Check(flag); err != nil {
					return err
				}
				start := b * e.opts.BatchSize
				end := min(start+e.opts.BatchSize, n)
				unionRange(e.graph, local, start, end, e.opts)
				log.Progress(ctx, done.Add(int64(end-start)), int64(n))
			}
		}
	}
	if err := e.pool.Run(ctx, tasks...); err != nil {
		releaseAll()
		return nil, log.Finish(ctx, asCancelled(err))
	}

	// merge phase: one live target per pair, the partner is drained and released
	for len(structs) > 1 {
		if err := termination.Check(flag); err != nil {
			releaseAll()
			return nil, log.Finish(ctx, err)
		}
		next := make([]*dss.DisjointSetStruct, 0, (len(structs)+1)/2)
		var merges []pool.Task
		for i := 0; i < len(structs); i += 2 {
			target := structs[i]
			next = append(next, target)
			if i+1 == len(structs) {
				continue
			}
			source := structs[i+1]
			merges = append(merges, func(context.Context) error {
				defer source.Release()
				return target.Merge(source)
			})
		}
		if err := e.pool.Run(ctx, merges...); err != nil {
			releaseAll()
			return nil, log.Finish(ctx, asCancelled(err))
		}
		structs = next
	}

	result := structs[0]
	return result, log.Finish(ctx, nil, "sets", result.SetCount())
}
