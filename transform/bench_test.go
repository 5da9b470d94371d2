package transform_test

import (
	"testing"

	"github.com/marvin-hansen/next-graph/dyngraph"
	"github.com/marvin-hansen/next-graph/transform"
)

func buildChainDynGraph(n int) *dyngraph.DynGraph[int, int] {
	d := dyngraph.WithCapacity[int, int](n, 1)
	ids := make([]dyngraph.Idx, n)
	for i := 0; i < n; i++ {
		ids[i] = d.AddNode(i)
	}
	for i := 0; i+1 < n; i++ {
		_ = d.AddEdge(ids[i], ids[i+1], 1)
	}

	return d
}

func BenchmarkFreeze_Chain10000(b *testing.B) {
	d := buildChainDynGraph(10_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		transform.Freeze[int, int](d)
	}
}

func BenchmarkRoundTrip_Chain1000(b *testing.B) {
	d := buildChainDynGraph(1_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		transform.Unfreeze[int, int](transform.Freeze[int, int](d))
	}
}
