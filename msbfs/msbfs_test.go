package msbfs_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/bfs"
	"github.com/katalvlaran/graphalgo/builder"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/msbfs"
	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/termination"
)

func randomGraph(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

// TestDistancesMatchBFS compares every row against a single-source BFS.
func TestDistancesMatchBFS(t *testing.T) {
	g := randomGraph(t, 150, 0.02, 7)
	sources := msbfs.AllNodes(g.NodeCount()) // three batches, the last one partial

	for _, dir := range []core.Direction{core.Outgoing, core.Incoming, core.Both} {
		t.Run(dir.String(), func(t *testing.T) {
			e, err := msbfs.New(g, pool.New(3), msbfs.WithDirection(dir))
			require.NoError(t, err)
			dist, err := e.Distances(context.Background(), sources)
			require.NoError(t, err)
			require.Len(t, dist, len(sources))

			for i, s := range sources {
				ref, err := bfs.BFS(g, s, bfs.WithDirection(dir))
				require.NoError(t, err)
				for v := range ref.Depth {
					require.EqualValues(t, ref.Depth[v], dist[i][v], "source %d node %d", s, v)
				}
			}
		})
	}
}

// TestVisitorContract checks that each (node, depth) is reported once per
// batch with exactly the sources at that shortest distance.
func TestVisitorContract(t *testing.T) {
	g, err := core.FromEdges(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}, core.WithUndirected())
	require.NoError(t, err)
	e, err := msbfs.New(g, nil)
	require.NoError(t, err)

	type key struct{ node, depth int }
	got := map[key][]int{}
	err = e.Run(context.Background(), []int{0, 5, 2}, func(node, depth int, s msbfs.SourceSet) {
		k := key{node, depth}
		_, dup := got[k]
		require.False(t, dup, "duplicate visit %v", k)
		for src := range s.Nodes() {
			got[k] = append(got[k], src)
		}
		assert.Equal(t, len(got[k]), s.Len())
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0}, got[key{0, 0}])
	assert.Equal(t, []int{2}, got[key{2, 0}])
	assert.Equal(t, []int{5}, got[key{5, 0}])
	// node 3 is one hop from source 2, two from 5 and three from 0
	assert.Equal(t, []int{2}, got[key{3, 1}])
	assert.Equal(t, []int{5}, got[key{3, 2}])
	assert.Equal(t, []int{0}, got[key{3, 3}])
	// node 1 is one hop from both 0 and 2
	assert.ElementsMatch(t, []int{0, 2}, got[key{1, 1}])
}

func TestSourceSet(t *testing.T) {
	g, err := core.FromEdges(4, [][2]int{{0, 3}, {1, 3}, {2, 3}})
	require.NoError(t, err)
	e, err := msbfs.New(g, nil)
	require.NoError(t, err)

	sources := []int{2, 0, 1}
	var at3 msbfs.SourceSet
	require.NoError(t, e.Run(context.Background(), sources, func(node, depth int, s msbfs.SourceSet) {
		if node == 3 {
			at3 = s
		}
	}))
	assert.Equal(t, uint64(0b111), at3.Bits())
	assert.Equal(t, 3, at3.Len())
	assert.True(t, at3.Has(1))
	assert.False(t, at3.Has(3))
	assert.False(t, at3.Has(-1))
	assert.Zero(t, at3.Offset())

	var idx, nodes []int
	for i, n := range at3.Indexes() {
		idx = append(idx, i)
		nodes = append(nodes, n)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, sources, nodes)
}

func TestOffsetsAcrossBatches(t *testing.T) {
	g := randomGraph(t, 200, 0.03, 11)
	e, err := msbfs.New(g, pool.New(4))
	require.NoError(t, err)

	sources := msbfs.AllNodes(g.NodeCount())
	var mu sync.Mutex
	selfSeen := make([]bool, len(sources))
	err = e.RunParallel(context.Background(), sources, func(batch int) msbfs.Visitor {
		return func(node, depth int, s msbfs.SourceSet) {
			assert.Equal(t, batch*msbfs.Width, s.Offset())
			if depth != 0 {
				return
			}
			for idx, src := range s.Indexes() {
				mu.Lock()
				selfSeen[idx] = src == node
				mu.Unlock()
			}
		}
	}, 0)
	require.NoError(t, err)
	for i, ok := range selfSeen {
		assert.True(t, ok, "source %d reported at depth 0", i)
	}
}

func TestMaxDepth(t *testing.T) {
	g, err := core.FromEdges(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)
	e, err := msbfs.New(g, nil, msbfs.WithMaxDepth(2))
	require.NoError(t, err)

	dist, err := e.Distances(context.Background(), []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2, -1, -1}, dist[0])
}

func TestErrors(t *testing.T) {
	g, err := core.FromEdges(3, [][2]int{{0, 1}})
	require.NoError(t, err)

	_, err = msbfs.New(nil, nil)
	require.ErrorIs(t, err, core.ErrGraphNil)
	_, err = msbfs.New(g, nil, msbfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, msbfs.ErrOptionViolation)
	_, err = msbfs.New(g, nil, msbfs.WithDirection(core.Direction(5)))
	require.ErrorIs(t, err, msbfs.ErrOptionViolation)

	e, err := msbfs.New(g, nil)
	require.NoError(t, err)
	calls := 0
	err = e.Run(context.Background(), []int{0, 3}, func(int, int, msbfs.SourceSet) { calls++ })
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
	assert.Zero(t, calls, "invalid sources fail before any work")

	require.NoError(t, e.Run(context.Background(), nil, func(int, int, msbfs.SourceSet) { calls++ }))
	assert.Zero(t, calls)
}

func TestCancellation(t *testing.T) {
	g := randomGraph(t, 300, 0.02, 3)

	stop := termination.NewAtomic()
	stop.Stop()
	e, err := msbfs.New(g, pool.New(2), msbfs.WithTerminationFlag(stop))
	require.NoError(t, err)
	calls := 0
	err = e.Run(context.Background(), msbfs.AllNodes(g.NodeCount()), func(int, int, msbfs.SourceSet) { calls++ })
	require.ErrorIs(t, err, termination.ErrCancelled)
	assert.Zero(t, calls)

	ctx, cancel := context.WithCancel(context.Background())
	e, err = msbfs.New(g, pool.New(2))
	require.NoError(t, err)
	var once sync.Once
	err = e.RunParallel(ctx, msbfs.AllNodes(g.NodeCount()), func(int) msbfs.Visitor {
		return func(int, int, msbfs.SourceSet) { once.Do(cancel) }
	}, 2)
	require.ErrorIs(t, err, termination.ErrCancelled)
}

func TestBatches(t *testing.T) {
	src := msbfs.AllNodes(130)
	b := msbfs.Batches(src, msbfs.Width)
	require.Len(t, b, 3)
	assert.Len(t, b[0], 64)
	assert.Len(t, b[2], 2)
	assert.Equal(t, 128, b[2][0])

	assert.Len(t, msbfs.Batches(src, 0), 3, "invalid width falls back to Width")
	assert.Len(t, msbfs.Batches(src, 10), 13)
	assert.Empty(t, msbfs.Batches(nil, 64))
}

func ExampleEngine_Run() {
	g, _ := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	e, _ := msbfs.New(g, nil, msbfs.WithDirection(core.Both))

	_ = e.Run(context.Background(), []int{0, 3}, func(node, depth int, s msbfs.SourceSet) {
		for src := range s.Nodes() {
			fmt.Printf("%d reaches %d at %d\n", src, node, depth)
		}
	})
	// Output:
	// 0 reaches 0 at 0
	// 3 reaches 3 at 0
	// 0 reaches 1 at 1
	// 3 reaches 2 at 1
	// 3 reaches 1 at 2
	// 0 reaches 2 at 2
	// 3 reaches 0 at 3
	// 0 reaches 3 at 3
}
