package gridgraph

import (
	"context"
	"slices"

	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/unionfind"
)

// Islands finds all contiguous regions of land cells with the parallel
// union-find executor; opts are passed through, so WithThreshold(t) keeps
// only links between cells whose values are both ≥ t.
//
// Each island lists its cell indices in ascending order; islands are sorted
// by their first cell.
func (gg *GridGraph) Islands(ctx context.Context, p *pool.Pool, opts ...unionfind.Option) ([][]int, error) {
	e, err := unionfind.NewExecutor(gg, p, opts...)
	if err != nil {
		return nil, err
	}
	sets, err := e.Compute(ctx)
	if err != nil {
		return nil, err
	}
	defer sets.Release()

	var islands [][]int
	for _, members := range sets.Components() {
		first := int(members.Minimum())
		if !gg.IsLand(gg.Coordinate(first)) {
			continue
		}
		island := make([]int, 0, members.GetCardinality())
		for it := members.Iterator(); it.HasNext(); {
			island = append(island, int(it.Next()))
		}
		islands = append(islands, island)
	}
	slices.SortFunc(islands, func(a, b []int) int { return a[0] - b[0] })

	return islands, nil
}
