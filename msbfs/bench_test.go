package msbfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/graphalgo/bfs"
	"github.com/katalvlaran/graphalgo/builder"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/msbfs"
	"github.com/katalvlaran/graphalgo/pool"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(2000, 0.003))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkMSBFS_64Sources runs one full batch.
func BenchmarkMSBFS_64Sources(b *testing.B) {
	g := benchGraph(b)
	e, _ := msbfs.New(g, nil)
	sources := msbfs.AllNodes(msbfs.Width)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Run(context.Background(), sources, func(int, int, msbfs.SourceSet) {})
	}
}

// BenchmarkBFS_64Sources is the single-source baseline for the same work.
func BenchmarkBFS_64Sources(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for s := 0; s < msbfs.Width; s++ {
			_, _ = bfs.BFS(g, s)
		}
	}
}

// BenchmarkMSBFS_AllSourcesParallel spreads every node over the pool.
func BenchmarkMSBFS_AllSourcesParallel(b *testing.B) {
	g := benchGraph(b)
	e, _ := msbfs.New(g, pool.New(0))
	sources := msbfs.AllNodes(g.NodeCount())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.RunParallel(context.Background(), sources, func(int) msbfs.Visitor {
			return func(int, int, msbfs.SourceSet) {}
		}, 0)
	}
}
