package centrality_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/graphalgo/builder"
	"github.com/katalvlaran/graphalgo/centrality"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/pool"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(1000, 0.005))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func benchAlgorithm(b *testing.B, algo centrality.Algorithm) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := algo.Compute(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBrandes(b *testing.B) {
	algo, err := centrality.NewBrandes(benchGraph(b), nil)
	if err != nil {
		b.Fatal(err)
	}
	benchAlgorithm(b, algo)
}

func BenchmarkSuccessor(b *testing.B) {
	algo, err := centrality.NewSuccessor(benchGraph(b), nil)
	if err != nil {
		b.Fatal(err)
	}
	benchAlgorithm(b, algo)
}

func BenchmarkParallel(b *testing.B) {
	algo, err := centrality.NewParallel(benchGraph(b), pool.New(0))
	if err != nil {
		b.Fatal(err)
	}
	benchAlgorithm(b, algo)
}
