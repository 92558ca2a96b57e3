// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/graphalgo/core"
)

// BenchmarkBuild measures freezing a 100k-relationship ring into CSR form.
func BenchmarkBuild(b *testing.B) {
	const n = 100_000
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bld := core.NewBuilder(n)
		for u := 0; u < n; u++ {
			_ = bld.AddEdge(u, (u+1)%n)
		}
		if _, err := bld.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_Weighted exercises the weight column.
func BenchmarkBuild_Weighted(b *testing.B) {
	const n = 100_000
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bld := core.NewBuilder(n)
		for u := 0; u < n; u++ {
			_ = bld.AddWeightedEdge(u, (u+1)%n, float64(u%7))
		}
		if _, err := bld.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkForEachRelationship iterates a star with 1000 leaves from the
// center in both directions.
func BenchmarkForEachRelationship(b *testing.B) {
	bld := core.NewBuilder(1001)
	for i := 1; i <= 1000; i++ {
		_ = bld.AddEdge(0, i)
		_ = bld.AddEdge(i, 0)
	}
	g, _ := bld.Build()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		g.ForEachRelationship(0, core.Both, func(_, t int, _ float64) bool {
			sum += t
			return true
		})
		_ = sum
	}
}
