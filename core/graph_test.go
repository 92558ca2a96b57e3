package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
)

func TestBuilder_Errors(t *testing.T) {
	b := core.NewBuilder(2)
	require.ErrorIs(t, b.AddEdge(0, 2), core.ErrNodeOutOfRange)
	require.ErrorIs(t, b.AddEdge(-1, 0), core.ErrNodeOutOfRange)
	require.ErrorIs(t, b.AddWeightedEdge(0, 1, math.NaN()), core.ErrBadWeight)

	_, err := b.Build()
	require.NoError(t, err)
	require.ErrorIs(t, b.AddEdge(0, 1), core.ErrGraphFrozen)
	_, err = b.Build()
	require.ErrorIs(t, err, core.ErrGraphFrozen)

	_, err = core.NewBuilder(0).Build()
	require.ErrorIs(t, err, core.ErrInvalidNodeCount)
}

func TestBuilder_AddNodes(t *testing.T) {
	b := core.NewBuilder(2)
	first := b.AddNodes(3)
	assert.Equal(t, 2, first)
	assert.Equal(t, 5, b.NodeCount())
	require.NoError(t, b.AddEdge(first, first+2))

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, []int{4}, g.Neighbors(2, core.Outgoing))
	assert.Equal(t, []int{2}, g.Neighbors(4, core.Incoming))
}

func TestGraph_Weights(t *testing.T) {
	b := core.NewBuilder(3, core.WithDefaultWeight(2))
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddWeightedEdge(1, 2, 2))
	g, err := b.Build()
	require.NoError(t, err)
	assert.False(t, g.Weighted(), "explicit weights equal to the default keep the graph unweighted")
	assert.Equal(t, 2.0, g.DefaultWeight())

	b = core.NewBuilder(3)
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddWeightedEdge(1, 2, 7))
	require.NoError(t, b.AddEdge(2, 0))
	g, err = b.Build()
	require.NoError(t, err)
	assert.True(t, g.Weighted())

	want := map[[2]int]float64{{0, 1}: 1, {1, 2}: 7, {2, 0}: 1}
	for u := 0; u < 3; u++ {
		g.ForEachRelationship(u, core.Outgoing, func(s, tgt int, w float64) bool {
			assert.Equal(t, want[[2]int{s, tgt}], w, "%d→%d", s, tgt)
			return true
		})
		g.ForEachRelationship(u, core.Incoming, func(s, src int, w float64) bool {
			assert.Equal(t, want[[2]int{src, s}], w, "incoming %d←%d", s, src)
			return true
		})
	}
}

func TestGraph_Directions(t *testing.T) {
	g, err := core.FromEdges(4, [][2]int{{0, 1}, {0, 2}, {3, 0}, {0, 1}})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 1}, g.Neighbors(0, core.Outgoing), "multi-edges are kept in insertion order")
	assert.Equal(t, []int{3}, g.Neighbors(0, core.Incoming))
	assert.Equal(t, []int{1, 2, 1, 3}, g.Neighbors(0, core.Both))
	assert.Equal(t, 4, g.Degree(0, core.Both))
	assert.Equal(t, 4, core.Degree(g, 0, core.Both))

	var seen []int
	g.ForEachRelationship(0, core.Both, func(_, tgt int, _ float64) bool {
		seen = append(seen, tgt)
		return len(seen) < 2
	})
	assert.Equal(t, []int{1, 2}, seen, "returning false stops iteration")

	noIn, err := core.FromEdges(2, [][2]int{{0, 1}}, core.WithoutIncoming())
	require.NoError(t, err)
	assert.Empty(t, noIn.Neighbors(1, core.Incoming))
	assert.Equal(t, 0, noIn.Degree(1, core.Both))
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want core.Direction
	}{
		{"", core.Outgoing},
		{"out", core.Outgoing},
		{">", core.Outgoing},
		{"incoming", core.Incoming},
		{"<", core.Incoming},
		{"both", core.Both},
		{"<>", core.Both},
	}
	for _, tc := range tests {
		got, err := core.ParseDirection(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.NotEmpty(t, got.String())
	}
	_, err := core.ParseDirection("sideways")
	require.Error(t, err)
	assert.Equal(t, "direction(9)", core.Direction(9).String())
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, core.Validate(nil), core.ErrGraphNil)
	g, err := core.FromEdges(1, nil)
	require.NoError(t, err)
	require.NoError(t, core.Validate(g))

	require.NoError(t, core.CheckNode(0, 1))
	require.ErrorIs(t, core.CheckNode(1, 1), core.ErrNodeOutOfRange)
}

func TestIDMap(t *testing.T) {
	ids := core.NewIDMap(-1)
	assert.Equal(t, 0, ids.Add(-5))
	assert.Equal(t, 1, ids.Add(1<<40))
	assert.Equal(t, 0, ids.Add(-5))

	_, ok := ids.ToDense(3)
	assert.False(t, ok)
	_, err := ids.ToOriginal(2)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
	orig, err := ids.ToOriginal(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), orig)
}
