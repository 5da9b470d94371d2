package csr_test

import (
	"testing"

	"github.com/marvin-hansen/next-graph/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLinear builds a 4-node chain 0->1->2->3 directly through csr.Build,
// standing in for what package transform's Freeze would compute, so this
// package's own tests don't need to depend on transform.
func buildLinear(t *testing.T) *csr.CsrPair[string, int] {
	t.Helper()

	payloads := []string{"a", "b", "c", "d"}
	fwdOffsets := []int{0, 1, 2, 3, 3}
	fwdTargets := []int{1, 2, 3}
	fwdWeights := []int{1, 1, 1}
	bwdOffsets := []int{0, 0, 1, 2, 3}
	bwdTargets := []int{0, 1, 2}
	bwdWeights := []int{1, 1, 1}
	origOf := []csr.Idx{0, 1, 2, 3}

	return csr.Build[string, int](payloads, fwdOffsets, fwdTargets, fwdWeights, bwdOffsets, bwdTargets, bwdWeights, origOf, 4, -1, 0)
}

func TestBuild_BasicQueries(t *testing.T) {
	g := buildLinear(t)

	assert.Equal(t, 4, g.NumberNodes())
	assert.Equal(t, 3, g.NumberEdges())
	assert.Equal(t, csr.Idx(4), g.NextIndex())
	assert.Equal(t, csr.DefaultLinearThreshold, g.LinearThreshold())
	assert.True(t, g.IsFrozen())

	p, ok := g.GetNode(0)
	require.True(t, ok)
	assert.Equal(t, "a", p)

	_, ok = g.GetNode(99)
	assert.False(t, ok)
}

func TestContainsEdge_LinearAndMissing(t *testing.T) {
	g := buildLinear(t)

	assert.True(t, g.ContainsEdge(0, 1))
	assert.True(t, g.ContainsEdge(2, 3))
	assert.False(t, g.ContainsEdge(3, 0))
	assert.False(t, g.ContainsEdge(99, 0))
	assert.False(t, g.ContainsEdge(0, 99))
}

func TestOutNeighbors_InNeighbors(t *testing.T) {
	g := buildLinear(t)

	out, err := g.OutNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []csr.Idx{2}, out)

	in, err := g.InNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []csr.Idx{0}, in)

	_, err = g.OutNeighbors(42)
	require.ErrorIs(t, err, csr.ErrNodeNotFound)
}

func TestContainsEdge_BinarySearchAboveThreshold(t *testing.T) {
	// Build a star with one source fanning out to enough targets to cross
	// a small, explicitly configured LinearThreshold, exercising the
	// binary-search branch of the adaptive lookup.
	const fanout = 10
	payloads := make([]string, fanout+1)
	for i := range payloads {
		payloads[i] = "n"
	}
	fwdOffsets := make([]int, fanout+2)
	fwdTargets := make([]int, fanout)
	fwdWeights := make([]int, fanout)
	for i := 0; i < fanout; i++ {
		fwdOffsets[i+1] = fanout
		fwdTargets[i] = i + 1
		fwdWeights[i] = 1
	}
	fwdOffsets[fanout+1] = fanout

	bwdOffsets := make([]int, fanout+2)
	bwdTargets := make([]int, fanout)
	bwdWeights := make([]int, fanout)
	bwdOffsets[0] = 0
	for i := 0; i < fanout; i++ {
		bwdOffsets[i+2] = i + 1
		bwdTargets[i] = 0
		bwdWeights[i] = 1
	}

	origOf := make([]csr.Idx, fanout+1)
	for i := range origOf {
		origOf[i] = csr.Idx(i)
	}

	g := csr.Build[string, int](payloads, fwdOffsets, fwdTargets, fwdWeights, bwdOffsets, bwdTargets, bwdWeights, origOf, csr.Idx(fanout+1), -1, 4)

	assert.Equal(t, 4, g.LinearThreshold())
	assert.True(t, g.ContainsEdge(0, 7))
	assert.False(t, g.ContainsEdge(0, fanout+5))
}

func TestRootNode_PresentAndAbsent(t *testing.T) {
	g := buildLinear(t)
	assert.False(t, g.ContainsRootNode())
	_, ok := g.GetRootIndex()
	assert.False(t, ok)

	payloads := []string{"root"}
	withRoot := csr.Build[string, int](payloads, []int{0, 0}, nil, nil, []int{0, 0}, nil, nil, []csr.Idx{5}, 6, 0, 0)
	assert.True(t, withRoot.ContainsRootNode())
	idx, ok := withRoot.GetRootIndex()
	require.True(t, ok)
	assert.Equal(t, csr.Idx(5), idx)
}

func TestAsDirected_GonumAdapter(t *testing.T) {
	g := buildLinear(t)
	d := csr.AsDirected[string, int](g)

	assert.True(t, d.HasEdgeFromTo(0, 1))
	assert.False(t, d.HasEdgeFromTo(1, 0))
	assert.True(t, d.HasEdgeBetween(0, 1))

	from := d.From(0)
	require.Equal(t, 1, from.Len())
	from.Next()
	assert.Equal(t, int64(1), from.Node().ID())
}

func TestAsWeightedDirected_GonumAdapter(t *testing.T) {
	g := buildLinear(t)
	wd := csr.AsWeightedDirected[string, int](g, func(w int) float64 { return float64(w) })

	w, ok := wd.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1.0, w)

	_, ok = wd.Weight(0, 99)
	assert.False(t, ok)
}
