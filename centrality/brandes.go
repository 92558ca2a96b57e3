package centrality

import (
	"context"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/internal/progress"
	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/termination"
)

// Brandes is the textbook betweenness algorithm: one BFS per source that
// records explicit predecessor lists, followed by a reverse accumulation
// over the visit stack.
// Complexity: O(V·E) time, O(V + E) space.
type Brandes struct {
	graph core.View
	pool  *pool.Pool
	opts  Options
}

// NewBrandes validates g and opts. p supplies the memory budget for the
// per-node arrays and may be nil; predecessor lists grow outside of it.
func NewBrandes(g core.View, p *pool.Pool, opts ...Option) (*Brandes, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	return &Brandes{graph: g, pool: p, opts: o}, nil
}

// Compute returns the betweenness of every node. The flag is polled before
// each source; on cancellation nothing is returned.
func (b *Brandes) Compute(ctx context.Context) (*Result, error) {
	flag := termination.Any(b.opts.Flag, termination.FromContext(ctx))
	if err := termination.Check(flag); err != nil {
		return nil, err
	}

	n := b.graph.NodeCount()
	log := progress.New(b.opts.Logger, "BetweennessCentrality", 0)
	ctx = log.Start(ctx, "nodes", n, "direction", b.opts.Direction.String())

	mem := allocations{pool: b.pool}
	defer mem.release()
	var (
		cb, sigma, delta   []float64
		dist, queue, stack []int32
		pred               [][]int32
		err                error
	)
	for _, dst := range []*[]float64{&cb, &sigma, &delta} {
		if *dst, err = allocate[float64](&mem, n); err != nil {
			return nil, log.Finish(ctx, err)
		}
	}
	for _, dst := range []*[]int32{&dist, &queue, &stack} {
		if *dst, err = allocate[int32](&mem, n); err != nil {
			return nil, log.Finish(ctx, err)
		}
	}
	if pred, err = allocate[[]int32](&mem, n); err != nil {
		return nil, log.Finish(ctx, err)
	}
	queue, stack = queue[:0], stack[:0]
	for i := range dist {
		dist[i] = -1
	}

	for s := 0; s < n; s++ {
		if err := termination.Check(flag); err != nil {
			return nil, log.Finish(ctx, err)
		}

		// reset only what the previous source touched
		for _, v := range stack {
			dist[v], sigma[v], delta[v] = -1, 0, 0
			pred[v] = pred[v][:0]
		}
		stack, queue = stack[:0], queue[:0]

		dist[s], sigma[s] = 0, 1
		queue = append(queue, int32(s))
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			stack = append(stack, v)
			next := dist[v] + 1
			b.graph.ForEachRelationship(int(v), b.opts.Direction, func(_, w int, _ float64) bool {
				if dist[w] < 0 {
					dist[w] = next
					queue = append(queue, int32(w))
				}
				if dist[w] == next {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
				return true
			})
		}

		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			coeff := (1 + delta[w]) / sigma[w]
			for _, v := range pred[w] {
				delta[v] += sigma[v] * coeff
			}
			if int(w) != s {
				cb[w] += delta[w]
			}
		}
		log.Progress(ctx, int64(s+1), int64(n))
	}

	if d := b.opts.divisor(); d != 1 {
		for i := range cb {
			cb[i] /= d
		}
	}

	return &Result{scores: cb}, log.Finish(ctx, nil)
}
