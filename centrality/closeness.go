package centrality

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/msbfs"
	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/termination"
)

// Closeness computes closeness centrality from one multi-source BFS per
// batch of 64 sources:
//
//	farness(v)   = Σ dist(v, u) over every u reachable from v
//	closeness(v) = reached(v) / farness(v), 0 when v reaches nothing
//
// With Wasserman-Faust normalization the score is further scaled by
// reached(v) / (n-1), which penalizes nodes in small components.
type Closeness struct {
	graph          core.View
	pool           *pool.Pool
	opts           Options
	wassermanFaust bool
}

// NewCloseness validates g and opts.
func NewCloseness(g core.View, p *pool.Pool, wassermanFaust bool, opts ...Option) (*Closeness, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	return &Closeness{graph: g, pool: p, opts: o, wassermanFaust: wassermanFaust}, nil
}

// Compute returns the closeness of every node.
func (c *Closeness) Compute(ctx context.Context) (*Result, error) {
	if err := termination.Check(termination.Any(c.opts.Flag, termination.FromContext(ctx))); err != nil {
		return nil, err
	}

	n := c.graph.NodeCount()
	engine, err := msbfs.New(c.graph, c.pool,
		msbfs.WithDirection(c.opts.Direction),
		msbfs.WithTerminationFlag(c.opts.Flag),
		msbfs.WithLogger(c.opts.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("centrality: %w", err)
	}

	mem := allocations{pool: c.pool}
	defer mem.release()
	sources, err := allocate[int](&mem, n)
	if err != nil {
		return nil, err
	}
	for v := range sources {
		sources[v] = v
	}
	// sources are 0..n-1, so a source's index is its node id and every
	// batch writes a disjoint range of these slices
	var farness, reached []int64
	for _, dst := range []*[]int64{&farness, &reached} {
		if *dst, err = allocate[int64](&mem, n); err != nil {
			return nil, err
		}
	}
	scores, err := allocate[float64](&mem, n)
	if err != nil {
		return nil, err
	}

	err = engine.RunParallel(ctx, sources, func(int) msbfs.Visitor {
		return func(_, depth int, set msbfs.SourceSet) {
			if depth == 0 {
				return
			}
			for idx := range set.Indexes() {
				farness[idx] += int64(depth)
				reached[idx]++
			}
		}
	}, c.opts.Concurrency)
	if err != nil {
		return nil, err
	}

	for v := range scores {
		if farness[v] == 0 {
			continue
		}
		scores[v] = float64(reached[v]) / float64(farness[v])
		if c.wassermanFaust && n > 1 {
			scores[v] *= float64(reached[v]) / float64(n-1)
		}
	}

	return &Result{scores: scores}, nil
}
