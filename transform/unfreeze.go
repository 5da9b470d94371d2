package transform

import (
	"github.com/marvin-hansen/next-graph/csr"
	"github.com/marvin-hansen/next-graph/dyngraph"
)

// Unfreeze converts g back into a mutable dyngraph.DynGraph. g is not
// modified, and nothing about g's immutability is lost — the result is an
// independent copy.
//
// The returned DynGraph's index space matches the one g.NextIndex() was
// recorded from at Freeze time exactly, tombstones included: Freeze then
// Unfreeze is the identity on node set, edge set with weights, index
// stability and root-node designation. Each node's neighbors are rebuilt
// in ascending index order, not in their original insertion order.
//
// Complexity: O(n + m) where n is g.NextIndex() and m is g.NumberEdges().
func Unfreeze[N any, W any](g *csr.CsrPair[N, W], opts ...Option) *dyngraph.DynGraph[N, W] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	nextIndex := g.NextIndex()
	live := make([]bool, nextIndex)
	nodes := make([]N, nextIndex)
	adjacency := make([][]dyngraph.Neighbor[W], nextIndex)

	for _, orig := range g.Nodes() {
		live[orig] = true
		p, _ := g.GetNode(orig)
		nodes[orig] = p

		edges, _ := g.OutEdges(orig)
		row := make([]dyngraph.Neighbor[W], len(edges))
		for k, e := range edges {
			row[k] = dyngraph.Neighbor[W]{Target: e.Target, Weight: e.Weight}
		}
		adjacency[orig] = row
	}

	root, hasRoot := g.GetRootIndex()

	cfg.logger.Debug("unfreeze complete",
		"nodes", g.NumberNodes(),
		"edges", g.NumberEdges(),
		"index_space", int(nextIndex),
	)

	return dyngraph.Rebuild[N, W](nextIndex, live, nodes, adjacency, root, hasRoot)
}
