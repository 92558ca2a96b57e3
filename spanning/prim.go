package spanning

import (
	"container/heap"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/termination"
)

// candidate is a relationship leaving the tree; seq orders equal weights by
// discovery.
type candidate struct {
	Edge
	next int
	seq  int
}

type candidates []candidate

func (c candidates) Len() int { return len(c) }
func (c candidates) Less(i, j int) bool {
	if c[i].Weight != c[j].Weight {
		return c[i].Weight < c[j].Weight
	}
	return c[i].seq < c[j].seq
}
func (c candidates) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c *candidates) Push(x any)   { *c = append(*c, x.(candidate)) }
func (c *candidates) Pop() any {
	old := *c
	last := old[len(old)-1]
	*c = old[:len(old)-1]
	return last
}

func prim(g core.View, o Options) (*Forest, error) {
	n := g.NodeCount()
	inTree := make([]bool, n)
	pq := &candidates{}
	seq := 0

	expand := func(u int) {
		inTree[u] = true
		// incoming relationships are reported as (u, peer) too
		g.ForEachRelationship(u, core.Both, func(_, peer int, w float64) bool {
			if !inTree[peer] {
				heap.Push(pq, candidate{Edge: Edge{Source: u, Target: peer, Weight: w}, next: peer, seq: seq})
				seq++
			}
			return true
		})
	}

	f := &Forest{}
	expand(o.Root)
	for pq.Len() > 0 && len(f.Edges) < n-1 {
		c := heap.Pop(pq).(candidate)
		if inTree[c.next] {
			continue
		}
		if err := termination.Check(o.Flag); err != nil {
			return nil, err
		}
		f.Edges = append(f.Edges, c.Edge)
		f.Weight += c.Weight
		expand(c.next)
	}
	f.Trees = 1

	return f, nil
}
