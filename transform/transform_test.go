package transform_test

import (
	"testing"

	"github.com/marvin-hansen/next-graph/dyngraph"
	"github.com/marvin-hansen/next-graph/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeze_FourCityGraph(t *testing.T) {
	d := dyngraph.New[string, int]()
	a := d.AddNode("NYC")
	b := d.AddNode("CHI")
	c := d.AddNode("DEN")
	e := d.AddNode("LAX")
	require.NoError(t, d.AddEdge(a, b, 1))
	require.NoError(t, d.AddEdge(b, c, 1))
	require.NoError(t, d.AddEdge(c, e, 1))
	require.NoError(t, d.AddEdge(a, e, 1))

	g := transform.Freeze[string, int](d)

	assert.Equal(t, 4, g.NumberNodes())
	assert.Equal(t, 4, g.NumberEdges())
	assert.True(t, g.ContainsEdge(a, b))
	assert.True(t, g.ContainsEdge(a, e))
	assert.False(t, g.ContainsEdge(e, a))

	nyc, ok := g.GetNode(a)
	require.True(t, ok)
	assert.Equal(t, "NYC", nyc)
}

func TestFreeze_SkipsTombstones(t *testing.T) {
	d := dyngraph.New[string, int]()
	a := d.AddNode("a")
	b := d.AddNode("b")
	c := d.AddNode("c")
	require.NoError(t, d.AddEdge(a, b, 1))
	require.NoError(t, d.AddEdge(b, c, 1))

	d.RemoveNode(b)

	g := transform.Freeze[string, int](d)

	assert.Equal(t, 2, g.NumberNodes())
	assert.Equal(t, 0, g.NumberEdges())
	assert.False(t, g.ContainsNode(b))
	assert.True(t, g.ContainsNode(a))
	assert.True(t, g.ContainsNode(c))
}

func TestRoundTrip_PreservesNodesEdgesAndIndices(t *testing.T) {
	d := dyngraph.New[string, int]()
	a := d.AddNode("a")
	b := d.AddNode("b")
	c := d.AddNode("c")
	require.NoError(t, d.AddEdge(a, b, 10))
	require.NoError(t, d.AddEdge(b, c, 20))
	d.RemoveNode(b) // tombstoned: a, c survive, b's edges gone

	e := d.AddNode("d") // allocated after the tombstone, must not reuse b's index
	require.NoError(t, d.AddEdge(a, e, 30))

	frozen := transform.Freeze[string, int](d)
	back := transform.Unfreeze[string, int](frozen)

	assert.Equal(t, d.NumberNodes(), back.NumberNodes())
	assert.Equal(t, d.NextIndex(), back.NextIndex())
	assert.False(t, back.ContainsNode(b))
	assert.True(t, back.ContainsNode(a))
	assert.True(t, back.ContainsNode(e))
	assert.True(t, back.ContainsEdge(a, e))
	assert.False(t, back.ContainsEdge(b, c))

	p, ok := back.GetNode(e)
	require.True(t, ok)
	assert.Equal(t, "d", p)

	neighbors, err := back.Neighbors(a)
	require.NoError(t, err)
	assert.Len(t, neighbors, 1)
	assert.Equal(t, e, neighbors[0].Target)
	assert.Equal(t, 30, neighbors[0].Weight)
}

func TestRoundTrip_PreservesRootNode(t *testing.T) {
	d := dyngraph.New[string, int]()
	root := d.AddRootNode("root")
	leaf := d.AddNode("leaf")
	require.NoError(t, d.AddEdge(root, leaf, 1))

	back := transform.Unfreeze[string, int](transform.Freeze[string, int](d))

	idx, ok := back.GetRootIndex()
	require.True(t, ok)
	assert.Equal(t, root, idx)
	payload, ok := back.GetRootNode()
	require.True(t, ok)
	assert.Equal(t, "root", payload)
}

func TestRoundTrip_TombstonedRootNodeDoesNotSurvive(t *testing.T) {
	d := dyngraph.New[string, int]()
	root := d.AddRootNode("root")
	d.AddNode("other")
	d.RemoveNode(root)

	frozen := transform.Freeze[string, int](d)
	assert.False(t, frozen.ContainsRootNode())

	back := transform.Unfreeze[string, int](frozen)
	assert.False(t, back.ContainsRootNode())
}

func TestFreeze_EmptyGraph(t *testing.T) {
	d := dyngraph.New[string, int]()
	g := transform.Freeze[string, int](d)

	assert.Equal(t, 0, g.NumberNodes())
	assert.Equal(t, 0, g.NumberEdges())
	assert.Equal(t, dyngraph.Idx(0), g.NextIndex())
}
