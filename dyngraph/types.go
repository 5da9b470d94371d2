package dyngraph

import (
	"io"
	"log/slog"

	"github.com/marvin-hansen/next-graph/indexspace"
)

// Idx is the stable node handle shared by DynGraph and csr.CsrPair. It is
// a type alias for indexspace.Idx so that callers never need to import
// the indexspace package directly.
type Idx = indexspace.Idx

// nodeSlot is a dense slot-table entry: a payload plus a liveness flag.
// Dead slots are tombstones — they keep their position so that later
// indices are never shifted.
type nodeSlot[N any] struct {
	payload N
	live    bool
}

// edge is one forward adjacency entry: a target index and its weight.
type edge[W any] struct {
	target Idx
	weight W
}

// DynGraph is the mutable, edit-phase representation of a directed,
// edge-weighted graph with opaque node payload N and edge weight payload
// W. See the package doc comment for the representation invariants.
type DynGraph[N any, W any] struct {
	idx   *indexspace.IndexSpace
	nodes []nodeSlot[N]
	adj   [][]edge[W] // adj[i] is the outbound adjacency of node i, insertion order

	rootIndex Idx
	hasRoot   bool

	perNodeEdgeHint int // capacity hint applied to each new node's adjacency slice

	logger *slog.Logger
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Option configures a DynGraph at construction time (New or WithCapacity).
type Option[N any, W any] func(*DynGraph[N, W])

// WithLogger routes a DynGraph's mutation diagnostics (currently: node
// removal, including how many edges were purged) through l instead of a
// discard logger.
func WithLogger[N any, W any](l *slog.Logger) Option[N, W] {
	return func(g *DynGraph[N, W]) {
		if l != nil {
			g.logger = l
		}
	}
}

// New returns an empty DynGraph with no pre-allocated capacity.
//
// Complexity: O(1).
func New[N any, W any](opts ...Option[N, W]) *DynGraph[N, W] {
	g := &DynGraph[N, W]{idx: indexspace.New(), logger: discardLogger()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithCapacity returns an empty DynGraph whose node slot table is
// pre-sized for nodeHint nodes. If perNodeEdgeHint is positive, each
// node's adjacency slice is pre-sized for that many edges as new nodes
// are added. Both are pure performance hints with no semantic effect.
//
// Complexity: O(nodeHint) to allocate the backing slices.
func WithCapacity[N any, W any](nodeHint, perNodeEdgeHint int, opts ...Option[N, W]) *DynGraph[N, W] {
	if nodeHint < 0 {
		nodeHint = 0
	}

	g := &DynGraph[N, W]{
		idx:             indexspace.WithCapacity(nodeHint),
		nodes:           make([]nodeSlot[N], 0, nodeHint),
		adj:             make([][]edge[W], 0, nodeHint),
		perNodeEdgeHint: perNodeEdgeHint,
		logger:          discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
