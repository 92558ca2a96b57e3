package spanning

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/dss"
	"github.com/katalvlaran/graphalgo/termination"
)

func kruskal(g core.View, o Options) (*Forest, error) {
	n := g.NodeCount()
	var edges []Edge
	for u := 0; u < n; u++ {
		g.ForEachRelationship(u, core.Outgoing, func(_, v int, w float64) bool {
			if u != v {
				edges = append(edges, Edge{Source: u, Target: v, Weight: w})
			}
			return true
		})
	}
	slices.SortStableFunc(edges, func(a, b Edge) int { return cmp.Compare(a.Weight, b.Weight) })

	sets, err := dss.NewWithPool(o.Pool, n)
	if err != nil {
		return nil, fmt.Errorf("spanning: %w", err)
	}
	defer sets.Release()

	f := &Forest{Edges: make([]Edge, 0, max(n-1, 0))}
	for _, e := range edges {
		if len(f.Edges) == n-1 {
			break
		}
		if !sets.Union(e.Source, e.Target) {
			continue
		}
		if err := termination.Check(o.Flag); err != nil {
			return nil, err
		}
		f.Edges = append(f.Edges, e)
		f.Weight += e.Weight
	}
	f.Trees = n - len(f.Edges)

	return f, nil
}
