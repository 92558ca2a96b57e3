package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphalgo/bfs"
	"github.com/katalvlaran/graphalgo/core"
)

func benchGraph(b *testing.B, n int, add func(bld *core.Builder)) *core.Graph {
	b.Helper()
	bld := core.NewBuilder(n)
	add(bld)
	g, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := benchGraph(b, N+1, func(bld *core.Builder) {
		for i := 0; i < N; i++ {
			_ = bld.AddEdge(i, i+1)
		}
	})

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount()) + g.RelationshipCount())
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices, 1022 edges
	nodeCount := (1 << depth) - 1
	g := benchGraph(b, nodeCount, func(bld *core.Builder) {
		// connect parent → children (heap layout, 0-based)
		for i := 0; 2*i+2 < nodeCount; i++ {
			_ = bld.AddEdge(i, 2*i+1)
			_ = bld.AddEdge(i, 2*i+2)
		}
	})

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount()) + g.RelationshipCount())
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² nodes, ≈2*M*(M−1) edges).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	g := benchGraph(b, M*M, func(bld *core.Builder) {
		for i := 0; i < M; i++ {
			for j := 0; j < M; j++ {
				id := i*M + j
				if i+1 < M {
					_ = bld.AddEdge(id, id+M)
				}
				if j+1 < M {
					_ = bld.AddEdge(id, id+1)
				}
			}
		}
	})

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount()) + g.RelationshipCount())
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := benchGraph(b, V, func(bld *core.Builder) {
		// duplicates and loops are fine, BFS ignores repeats
		for k := 0; k < E; k++ {
			_ = bld.AddEdge(rnd.Intn(V), rnd.Intn(V))
		}
	})

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount()) + g.RelationshipCount())
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, bfs.WithDirection(core.Both))
	}
}

// BenchmarkBFS_HookOverhead compares BFS with and without an expensive OnVisit hook.
func BenchmarkBFS_HookOverhead(b *testing.B) {
	const N = 1000
	g := benchGraph(b, N+1, func(bld *core.Builder) {
		for i := 0; i < N; i++ {
			_ = bld.AddEdge(i, i+1)
		}
	})

	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(g, 0)
		}
	})

	b.Run("HeavyVisitHook", func(b *testing.B) {
		heavy := func(_, _ int) error {
			sum := 0
			for i := 0; i < 100; i++ {
				sum += i
			}
			_ = sum

			return nil
		}

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(g, 0, bfs.WithOnVisit(heavy))
		}
	})
}
