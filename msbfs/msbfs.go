package msbfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/internal/progress"
	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/termination"
)

// Engine runs multi-source BFS over a view.
type Engine struct {
	graph core.View
	pool  *pool.Pool
	opts  Options
}

// New validates g and opts. p provides workers for RunParallel and the
// memory budget for traversal state; it may be nil.
func New(g core.View, p *pool.Pool, opts ...Option) (*Engine, error) {
	if err := core.Validate(g); err != nil {
		return nil, fmt.Errorf("msbfs: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{graph: g, pool: p, opts: o}, nil
}

// Run traverses from sources in batches of Width, one batch after another,
// delivering every visit to visit. Invalid sources fail before any work.
func (e *Engine) Run(ctx context.Context, sources []int, visit Visitor) error {
	return e.RunParallel(ctx, sources, func(int) Visitor { return visit }, 1)
}

// RunParallel traverses the batches of sources concurrently on the pool.
// newVisitor is called once per batch (with the batch index) before that
// batch starts; visitors of different batches may run at the same time, so
// each should write to state it owns. workers <= 0 uses the pool size.
func (e *Engine) RunParallel(ctx context.Context, sources []int, newVisitor func(batch int) Visitor, workers int) error {
	n := e.graph.NodeCount()
	for _, s := range sources {
		if err := core.CheckNode(s, n); err != nil {
			return fmt.Errorf("msbfs: source: %w", err)
		}
	}
	flag := termination.Any(e.opts.Flag, termination.FromContext(ctx))
	if err := termination.Check(flag); err != nil {
		return err
	}
	batches := Batches(sources, Width)
	if len(batches) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = e.pool.Workers()
	}
	workers = max(1, min(workers, len(batches)))

	log := progress.New(e.opts.Logger, "MSBFS", 0)
	ctx = log.Start(ctx, "nodes", n, "sources", len(sources), "batches", len(batches), "workers", workers)

	var (
		nextBatch atomic.Int64
		done      atomic.Int64
	)
	tasks := make([]pool.Task, workers)
	for w := range tasks {
		tasks[w] = func(context.Context) error {
			t, err := newTraversal(e.pool, n)
			if err != nil {
				return err
			}
			defer t.release()
			for {
				b := int(nextBatch.Add(1) - 1)
				if b >= len(batches) {
					return nil
				}
				if err := termination.Check(flag); err != nil {
					return err
				}
				batch := SourceSet{batch: batches[b], offset: b * Width}
				if err := t.run(e.graph, e.opts, flag, batch, newVisitor(b)); err != nil {
					return err
				}
				log.Progress(ctx, done.Add(1), int64(len(batches)))
			}
		}
	}
	err := e.pool.Run(ctx, tasks...)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %w", termination.ErrCancelled, err)
	}

	return log.Finish(ctx, err)
}

// Distances returns, for each source in order, the hop distance to every
// node; unreachable nodes hold -1.
func (e *Engine) Distances(ctx context.Context, sources []int) ([][]int32, error) {
	n := e.graph.NodeCount()
	dist := make([][]int32, len(sources))
	err := e.RunParallel(ctx, sources, func(b int) Visitor {
		// each batch owns rows [b*Width, b*Width+len(batch))
		for i := b * Width; i < min((b+1)*Width, len(sources)); i++ {
			row := make([]int32, n)
			for j := range row {
				row[j] = -1
			}
			dist[i] = row
		}
		return func(node, depth int, set SourceSet) {
			for idx := range set.Indexes() {
				dist[idx][node] = int32(depth)
			}
		}
	}, 0)
	if err != nil {
		return nil, err
	}

	return dist, nil
}

// traversal is the per-worker frontier state, reused across batches.
//
//	seen[v]  bits of the sources that reached v at or before the current depth
//	visit[v] bits that reached v exactly at the current depth (active frontier)
//	next[v]  bits reaching v at depth+1, built during the current layer
//
// seen only grows within a batch; it is cleared between batches.
type traversal struct {
	seen, visit, next []uint64
	marks             *bitset.BitSet
	active, upcoming  []int32
	releases          []func()
}

func newTraversal(p *pool.Pool, n int) (*traversal, error) {
	t := &traversal{}
	for _, dst := range []*[]uint64{&t.seen, &t.visit, &t.next} {
		buf, rel, err := pool.Alloc[uint64](p, n)
		if err != nil {
			t.release()
			return nil, fmt.Errorf("msbfs: frontier state: %w", err)
		}
		*dst = buf
		t.releases = append(t.releases, rel)
	}
	t.marks = bitset.New(uint(n))

	return t, nil
}

func (t *traversal) release() {
	for _, r := range t.releases {
		r()
	}
	t.releases = nil
}

// run advances all sources of batch layer by layer until no node gains a
// new source. The flag is polled once per layer.
func (t *traversal) run(g core.View, o Options, flag termination.Flag, batch SourceSet, visit Visitor) error {
	clear(t.seen)
	t.active = t.active[:0]
	for k, s := range batch.batch {
		bit := uint64(1) << uint(k)
		if t.visit[s] == 0 {
			t.active = append(t.active, int32(s))
		}
		t.seen[s] |= bit
		t.visit[s] |= bit
	}
	slices.Sort(t.active)
	for _, s := range t.active {
		visit(int(s), 0, SourceSet{bits: t.visit[s], batch: batch.batch, offset: batch.offset})
	}

	for depth := 1; len(t.active) > 0; depth++ {
		stopped := !flag.Running()
		if stopped || (o.MaxDepth > 0 && depth > o.MaxDepth) {
			for _, u := range t.active {
				t.visit[u] = 0
			}
			t.active = t.active[:0]
			if stopped {
				return termination.ErrCancelled
			}
			return nil
		}

		t.upcoming = t.upcoming[:0]
		for _, u := range t.active {
			frontier := t.visit[u]
			g.ForEachRelationship(int(u), o.Direction, func(_, v int, _ float64) bool {
				if fresh := frontier &^ t.seen[v]; fresh != 0 {
					t.seen[v] |= fresh
					t.next[v] |= fresh
					if !t.marks.Test(uint(v)) {
						t.marks.Set(uint(v))
						t.upcoming = append(t.upcoming, int32(v))
					}
				}
				return true
			})
		}
		for _, u := range t.active {
			t.visit[u] = 0
		}

		slices.Sort(t.upcoming)
		for _, v := range t.upcoming {
			t.visit[v] = t.next[v]
			t.next[v] = 0
			t.marks.Clear(uint(v))
			visit(int(v), depth, SourceSet{bits: t.visit[v], batch: batch.batch, offset: batch.offset})
		}
		t.active, t.upcoming = t.upcoming, t.active
	}

	return nil
}
