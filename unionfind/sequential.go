package unionfind

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/dss"
	"github.com/katalvlaran/graphalgo/internal/progress"
	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/termination"
)

// UnionFind computes connected components on one goroutine.
type UnionFind struct {
	graph core.View
	pool  *pool.Pool
	opts  Options
}

// New validates g and opts. p is only used for its memory budget and may be nil.
func New(g core.View, p *pool.Pool, opts ...Option) (*UnionFind, error) {
	if err := core.Validate(g); err != nil {
		return nil, fmt.Errorf("unionfind: %w", err)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return &UnionFind{graph: g, pool: p, opts: o}, nil
}

// Compute unites the endpoints of every outgoing relationship and returns
// the resulting structure. On cancellation it returns
// termination.ErrCancelled and no structure.
func (u *UnionFind) Compute(ctx context.Context) (*dss.DisjointSetStruct, error) {
	flag := termination.Any(u.opts.Flag, termination.FromContext(ctx))
	if err := termination.Check(flag); err != nil {
		return nil, err
	}

	n := u.graph.NodeCount()
	log := progress.New(u.opts.Logger, "CC(SequentialUnionFind)", 0)
	ctx = log.Start(ctx, "nodes", n, "threshold", u.opts.HasThreshold)

	d, err := dss.NewWithPool(u.pool, n)
	if err != nil {
		return nil, log.Finish(ctx, err)
	}

	for start := 0; start < n; start += u.opts.BatchSize {
		if err := termination.Check(flag); err != nil {
			d.Release()
			return nil, log.Finish(ctx, err)
		}
		end := min(start+u.opts.BatchSize, n)
		unionRange(u.graph, d, start, end, u.opts)
		log.Progress(ctx, int64(end), int64(n))
	}

	return d, log.Finish(ctx, nil, "sets", d.SetCount())
}

// unionRange applies the outgoing relationships of nodes [start, end) to d.
func unionRange(g core.View, d *dss.DisjointSetStruct, start, end int, o Options) {
	if o.HasThreshold {
		t := o.Threshold
		for node := start; node < end; node++ {
			g.ForEachRelationship(node, core.Outgoing, func(s, t2 int, w float64) bool {
				d.UnionWithThreshold(s, t2, w, t)
				return true
			})
		}
		return
	}
	for node := start; node < end; node++ {
		g.ForEachRelationship(node, core.Outgoing, func(s, t int, _ float64) bool {
			d.Union(s, t)
			return true
		})
	}
}
