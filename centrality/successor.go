package centrality

import (
	"context"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/internal/progress"
	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/termination"
)

// Successor computes betweenness without predecessor lists. The forward BFS
// keeps only distance, path count and a successor count per node; the
// reverse pass re-reads the relationships of every node that has at least
// one successor and picks the neighbors exactly one layer deeper.
// Complexity: O(V·E) time, O(V) space.
type Successor struct {
	graph core.View
	pool  *pool.Pool
	opts  Options
}

// NewSuccessor validates g and opts. p supplies the memory budget for the
// working arrays and may be nil.
func NewSuccessor(g core.View, p *pool.Pool, opts ...Option) (*Successor, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	return &Successor{graph: g, pool: p, opts: o}, nil
}

// Compute returns the betweenness of every node. The flag is polled before
// each source.
func (s *Successor) Compute(ctx context.Context) (*Result, error) {
	flag := termination.Any(s.opts.Flag, termination.FromContext(ctx))
	if err := termination.Check(flag); err != nil {
		return nil, err
	}

	n := s.graph.NodeCount()
	log := progress.New(s.opts.Logger, "BetweennessCentrality(Successor)", 0)
	ctx = log.Start(ctx, "nodes", n, "direction", s.opts.Direction.String())

	ws, err := newWorkingSet(s.pool, n)
	if err != nil {
		return nil, log.Finish(ctx, err)
	}
	defer ws.release()

	for src := 0; src < n; src++ {
		if err := termination.Check(flag); err != nil {
			return nil, log.Finish(ctx, err)
		}
		ws.accumulate(s.graph, s.opts.Direction, src)
		log.Progress(ctx, int64(src+1), int64(n))
	}

	// acc stays valid after the reservation is handed back
	cb := ws.acc
	if d := s.opts.divisor(); d != 1 {
		for i := range cb {
			cb[i] /= d
		}
	}

	return &Result{scores: cb}, log.Finish(ctx, nil)
}

// workingSet is the per-worker state of the successor-stack algorithm.
// Between sources only the nodes recorded on stack are reset.
type workingSet struct {
	dist         []int32
	succ         []int32
	sigma, delta []float64
	acc          []float64
	queue, stack []int32
	mem          allocations
}

func newWorkingSet(p *pool.Pool, n int) (*workingSet, error) {
	ws := &workingSet{mem: allocations{pool: p}}
	var err error
	for _, dst := range []*[]int32{&ws.dist, &ws.succ, &ws.queue, &ws.stack} {
		if *dst, err = allocate[int32](&ws.mem, n); err != nil {
			ws.release()
			return nil, err
		}
	}
	for _, dst := range []*[]float64{&ws.sigma, &ws.delta, &ws.acc} {
		if *dst, err = allocate[float64](&ws.mem, n); err != nil {
			ws.release()
			return nil, err
		}
	}
	for i := range ws.dist {
		ws.dist[i] = -1
	}
	ws.queue, ws.stack = ws.queue[:0], ws.stack[:0]

	return ws, nil
}

func (ws *workingSet) release() { ws.mem.release() }

// accumulate adds the dependencies of every node on source into ws.acc.
func (ws *workingSet) accumulate(g core.View, dir core.Direction, source int) {
	dist, succ, sigma, delta := ws.dist, ws.succ, ws.sigma, ws.delta
	for _, v := range ws.stack {
		dist[v], succ[v], sigma[v], delta[v] = -1, 0, 0, 0
	}
	ws.stack, ws.queue = ws.stack[:0], ws.queue[:0]

	dist[source], sigma[source] = 0, 1
	ws.queue = append(ws.queue, int32(source))
	for head := 0; head < len(ws.queue); head++ {
		v := ws.queue[head]
		ws.stack = append(ws.stack, v)
		next := dist[v] + 1
		g.ForEachRelationship(int(v), dir, func(_, w int, _ float64) bool {
			if dist[w] < 0 {
				dist[w] = next
				ws.queue = append(ws.queue, int32(w))
			}
			if dist[w] == next {
				sigma[w] += sigma[v]
				succ[v]++
			}
			return true
		})
	}

	for i := len(ws.stack) - 1; i >= 0; i-- {
		w := ws.stack[i]
		if succ[w] > 0 {
			next := dist[w] + 1
			g.ForEachRelationship(int(w), dir, func(_, x int, _ float64) bool {
				if dist[x] == next {
					delta[w] += sigma[w] / sigma[x] * (1 + delta[x])
				}
				return true
			})
		}
		if int(w) != source {
			ws.acc[w] += delta[w]
		}
	}
}
