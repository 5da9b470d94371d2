package dyngraph

import "github.com/marvin-hansen/next-graph/indexspace"

// NextIndex returns one past the largest index ever allocated. It bounds
// every valid Idx for this graph and is the value the transform package
// records so that a later Unfreeze can rehydrate the same index space.
//
// Complexity: O(1).
func (g *DynGraph[N, W]) NextIndex() Idx {
	return g.idx.NextIndex()
}

// Rebuild constructs a DynGraph directly from a flattened, original-index
// keyed snapshot: live[i] says whether index i is a live slot, nodes[i]
// holds its payload when live, and adjacency[i] holds its outbound edges
// (already expressed in original-index space). All three slices must have
// length nextIndex.
//
// Rebuild exists for package transform's Unfreeze conversion, which is the
// only place a DynGraph's index space needs to be reconstructed verbatim
// rather than grown one AddNode call at a time. Callers outside transform
// should prefer New, WithCapacity, AddNode and AddEdge.
//
// Complexity: O(nextIndex + total adjacency length).
func Rebuild[N any, W any](nextIndex Idx, live []bool, nodes []N, adjacency [][]Neighbor[W], root Idx, hasRoot bool) *DynGraph[N, W] {
	g := &DynGraph[N, W]{
		idx:    indexspace.Rehydrate(live),
		nodes:  make([]nodeSlot[N], nextIndex),
		adj:    make([][]edge[W], nextIndex),
		logger: discardLogger(),
	}

	for i := Idx(0); i < nextIndex; i++ {
		if !live[i] {
			continue
		}
		g.nodes[i] = nodeSlot[N]{payload: nodes[i], live: true}
		if len(adjacency[i]) > 0 {
			es := make([]edge[W], len(adjacency[i]))
			for k, n := range adjacency[i] {
				es[k] = edge[W]{target: n.Target, weight: n.Weight}
			}
			g.adj[i] = es
		}
	}

	if hasRoot && g.idx.IsLive(root) {
		g.rootIndex = root
		g.hasRoot = true
	}

	return g
}
