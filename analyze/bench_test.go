package analyze_test

import (
	"testing"

	"github.com/marvin-hansen/next-graph/analyze"
	"github.com/marvin-hansen/next-graph/csr"
	"github.com/marvin-hansen/next-graph/dyngraph"
	"github.com/marvin-hansen/next-graph/transform"
)

func chainCsrPair(n int) *csr.CsrPair[int, int] {
	d := dyngraph.WithCapacity[int, int](n, 1)
	ids := make([]dyngraph.Idx, n)
	for i := 0; i < n; i++ {
		ids[i] = d.AddNode(i)
	}
	for i := 0; i+1 < n; i++ {
		_ = d.AddEdge(ids[i], ids[i+1], 1)
	}

	return transform.Freeze[int, int](d)
}

func BenchmarkShortestPath_Chain10000(b *testing.B) {
	g := chainCsrPair(10_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		analyze.ShortestPath[int, int](g, 0, 9999)
	}
}

func BenchmarkTopologicalSort_Chain10000(b *testing.B) {
	g := chainCsrPair(10_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = analyze.TopologicalSort[int, int](g)
	}
}

func BenchmarkFindCycle_Chain10000(b *testing.B) {
	g := chainCsrPair(10_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		analyze.FindCycle[int, int](g)
	}
}
