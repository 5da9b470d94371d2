package csr

import "github.com/marvin-hansen/next-graph/indexspace"

// Idx is the stable node handle shared with package dyngraph. It is a
// type alias for indexspace.Idx, so a dyngraph.Idx and a csr.Idx are the
// same type and pass between the two packages without conversion.
type Idx = indexspace.Idx

// DefaultLinearThreshold is the adjacency length, in edges, at or below
// which ContainsEdge scans linearly rather than binary-searching. It
// matches the threshold used by the original graph_csm implementation
// this package's CSR layout is grounded on.
const DefaultLinearThreshold = 64

// Neighbor is one adjacency entry as seen by a caller: the neighbor's
// original index and the weight of the edge connecting it.
type Neighbor[W any] struct {
	Target Idx
	Weight W
}

// rowSet is one direction's CSR storage: offsets has len(payloads)+1
// entries, so that row i's entries live at targets[offsets[i]:offsets[i+1]].
// Each row's slice is kept sorted by compact target index, which is also
// ascending original-index order because compact positions are assigned
// in ascending original-index order during Freeze.
type rowSet[W any] struct {
	offsets []int
	targets []int // compact indices
	weights []W
}

// CsrPair is the immutable, dual-direction CSR representation of a
// directed, edge-weighted graph with opaque node payload N and edge
// weight payload W.
type CsrPair[N any, W any] struct {
	payloads []N // compact-indexed
	fwd      rowSet[W]
	bwd      rowSet[W]

	origOf    []Idx // compact -> original, strictly increasing
	compactOf []int // original -> compact, -1 where absent, len == int(nextIndex)

	nextIndex Idx // dyngraph.DynGraph.NextIndex() at the moment of Freeze

	rootCompact int // -1 if no root node
	hasRoot     bool

	linearThreshold int
}
