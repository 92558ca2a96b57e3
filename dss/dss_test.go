package dss_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/dss"
	"github.com/katalvlaran/graphalgo/pool"
)

func TestNew(t *testing.T) {
	_, err := dss.New(0)
	require.ErrorIs(t, err, core.ErrInvalidNodeCount)

	d, err := dss.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Capacity())
	assert.Equal(t, 4, d.SetCount())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, d.Find(i))
		assert.Equal(t, 1, d.SetSize(i))
	}
}

func TestNewWithPool_Budget(t *testing.T) {
	p := pool.New(1, pool.WithMemoryLimit(80))
	d, err := dss.NewWithPool(p, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 80, p.MemoryUsage())

	_, err = dss.NewWithPool(p, 1)
	require.ErrorIs(t, err, pool.ErrResourceExhausted)
	assert.EqualValues(t, 80, p.MemoryUsage(), "a failed allocation releases its partial reservation")

	d.Release()
	d.Release()
	assert.Zero(t, p.MemoryUsage())
}

func TestUnion_TieBreak(t *testing.T) {
	d, err := dss.New(6)
	require.NoError(t, err)

	assert.True(t, d.Union(3, 1))
	assert.Equal(t, 1, d.Find(3), "equal sizes: the lower id becomes the root")

	assert.True(t, d.Union(5, 3))
	assert.Equal(t, 1, d.Find(5), "the larger set wins")
	assert.False(t, d.Union(5, 1))

	assert.True(t, d.Union(4, 0))
	assert.True(t, d.Union(0, 2))
	assert.Equal(t, 0, d.Find(2))

	assert.True(t, d.Union(2, 3))
	assert.Equal(t, 0, d.Find(5), "3 vs 3 members: root 0 beats root 1")
	assert.Equal(t, 6, d.SetSize(4))
	assert.Equal(t, 1, d.SetCount())
}

func TestUnionWithThreshold(t *testing.T) {
	d, err := dss.New(3)
	require.NoError(t, err)

	assert.False(t, d.UnionWithThreshold(0, 1, 0.4, 0.5))
	assert.False(t, d.Connected(0, 1))
	assert.True(t, d.UnionWithThreshold(0, 1, 0.5, 0.5), "weight equal to threshold merges")
	assert.True(t, d.Connected(0, 1))
	assert.Equal(t, 2, d.SetCount())
}

func TestFind_PathCompression(t *testing.T) {
	d, err := dss.New(5)
	require.NoError(t, err)
	// chain built by always merging a singleton into the growing set
	for i := 1; i < 5; i++ {
		d.Union(0, i)
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, d.Find(i))
	}
	root, size := d.LargestSet()
	assert.Equal(t, 0, root)
	assert.Equal(t, 5, size)
}

func TestMerge(t *testing.T) {
	a, _ := dss.New(6)
	b, _ := dss.New(6)
	a.Union(0, 1)
	a.Union(2, 3)
	b.Union(1, 2)
	b.Union(4, 5)

	require.NoError(t, a.Merge(b))
	assert.True(t, a.Connected(0, 3))
	assert.True(t, a.Connected(4, 5))
	assert.False(t, a.Connected(0, 4))
	assert.Equal(t, 2, a.SetCount())
	assert.Equal(t, 4, b.SetCount(), "the merged-in structure is left untouched")

	c, _ := dss.New(3)
	require.ErrorIs(t, a.Merge(c), dss.ErrCapacityMismatch)
}

// TestMerge_OrderIndependent splits random unions over several structures,
// merges them in two different orders and compares the partitions.
func TestMerge_OrderIndependent(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(5))
	parts := make([]*dss.DisjointSetStruct, 4)
	ref, _ := dss.New(n)
	for i := range parts {
		parts[i], _ = dss.New(n)
	}
	for k := 0; k < 150; k++ {
		u, v := rng.Intn(n), rng.Intn(n)
		parts[k%len(parts)].Union(u, v)
		ref.Union(u, v)
	}

	forward, _ := dss.New(n)
	backward, _ := dss.New(n)
	for i := range parts {
		require.NoError(t, forward.Merge(parts[i]))
		require.NoError(t, backward.Merge(parts[len(parts)-1-i]))
	}

	assert.Equal(t, ref.SetCount(), forward.SetCount())
	assert.Equal(t, ref.SetCount(), backward.SetCount())
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v += 7 {
			want := ref.Connected(u, v)
			assert.Equal(t, want, forward.Connected(u, v))
			assert.Equal(t, want, backward.Connected(u, v))
		}
	}
}

func TestComponentsAndMembers(t *testing.T) {
	d, _ := dss.New(5)
	d.Union(0, 4)
	d.Union(1, 2)

	comps := d.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, []uint32{0, 4}, comps[0].ToArray())
	assert.Equal(t, []uint32{1, 2}, comps[1].ToArray())
	assert.Equal(t, []uint32{3}, comps[3].ToArray())

	assert.Equal(t, []uint32{1, 2}, d.Members(2).ToArray())

	var nodes, sets []int
	for node, set := range d.All() {
		nodes = append(nodes, node)
		sets = append(sets, set)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, nodes)
	assert.Equal(t, []int{0, 1, 1, 3, 0}, sets)

	for node := range d.All() {
		if node == 1 {
			break
		}
	}
}

func TestReset(t *testing.T) {
	d, _ := dss.New(3)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Reset()
	assert.Equal(t, 3, d.SetCount())
	assert.Equal(t, 1, d.SetSize(2))
}

func BenchmarkUnionFind(b *testing.B) {
	const n = 1 << 16
	d, _ := dss.New(n)
	rng := rand.New(rand.NewSource(1))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Reset()
		for _, p := range pairs {
			d.Union(p[0], p[1])
		}
	}
}
