package csr

import (
	"fmt"
	"sort"
)

// NumberNodes returns the number of nodes in this CsrPair.
//
// Complexity: O(1).
func (g *CsrPair[N, W]) NumberNodes() int {
	return len(g.payloads)
}

// NumberEdges returns the number of forward edges.
//
// Complexity: O(1).
func (g *CsrPair[N, W]) NumberEdges() int {
	return len(g.fwd.targets)
}

// NextIndex returns the DynGraph.NextIndex() value recorded at the moment
// this CsrPair was produced by Freeze. Unfreeze uses it to rehydrate the
// same index space.
//
// Complexity: O(1).
func (g *CsrPair[N, W]) NextIndex() Idx {
	return g.nextIndex
}

// LinearThreshold returns the adjacency length at or below which
// ContainsEdge scans linearly, fixed at construction time.
//
// Complexity: O(1).
func (g *CsrPair[N, W]) LinearThreshold() int {
	return g.linearThreshold
}

// IsFrozen always reports true: a CsrPair is the immutable, post-Freeze
// representation, as opposed to DynGraph's mutable edit-phase one.
//
// Complexity: O(1).
func (g *CsrPair[N, W]) IsFrozen() bool {
	return true
}

// compact returns i's compact row index and whether it has one.
func (g *CsrPair[N, W]) compact(i Idx) (int, bool) {
	if i >= Idx(len(g.compactOf)) {
		return -1, false
	}
	c := g.compactOf[i]

	return c, c >= 0
}

// ContainsNode reports whether original index i names a node in this
// CsrPair.
//
// Complexity: O(1).
func (g *CsrPair[N, W]) ContainsNode(i Idx) bool {
	_, ok := g.compact(i)

	return ok
}

// GetNode returns the payload stored at original index i and true iff i
// names a node in this CsrPair.
//
// Complexity: O(1).
func (g *CsrPair[N, W]) GetNode(i Idx) (N, bool) {
	c, ok := g.compact(i)
	if !ok {
		var zero N
		return zero, false
	}

	return g.payloads[c], true
}

// Nodes returns every node's original index, in ascending order.
//
// Complexity: O(n).
func (g *CsrPair[N, W]) Nodes() []Idx {
	out := make([]Idx, len(g.origOf))
	copy(out, g.origOf)

	return out
}

// ContainsRootNode reports whether this CsrPair carries a designated
// root node.
//
// Complexity: O(1).
func (g *CsrPair[N, W]) ContainsRootNode() bool {
	return g.hasRoot
}

// GetRootNode returns the root node's payload, if one is designated.
//
// Complexity: O(1).
func (g *CsrPair[N, W]) GetRootNode() (N, bool) {
	if !g.hasRoot {
		var zero N
		return zero, false
	}

	return g.payloads[g.rootCompact], true
}

// GetRootIndex returns the root node's original index, if one is
// designated.
//
// Complexity: O(1).
func (g *CsrPair[N, W]) GetRootIndex() (Idx, bool) {
	if !g.hasRoot {
		return 0, false
	}

	return g.origOf[g.rootCompact], true
}

// row returns the [start, end) target/weight slice window for compact
// row c within rs.
func row[W any](rs rowSet[W], c int) ([]int, []W) {
	start, end := rs.offsets[c], rs.offsets[c+1]

	return rs.targets[start:end], rs.weights[start:end]
}

// OutNeighbors returns u's forward neighbors' original indices, ascending.
// Fails with ErrNodeNotFound if u is not in this CsrPair.
//
// Complexity: O(deg_out(u)); touches only the targets array, never weights.
func (g *CsrPair[N, W]) OutNeighbors(u Idx) ([]Idx, error) {
	c, ok := g.compact(u)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	targets, _ := row(g.fwd, c)

	return g.translate(targets), nil
}

// InNeighbors returns u's backward (predecessor) neighbors' original
// indices, ascending. Fails with ErrNodeNotFound if u is not in this
// CsrPair.
//
// Complexity: O(deg_in(u)).
func (g *CsrPair[N, W]) InNeighbors(u Idx) ([]Idx, error) {
	c, ok := g.compact(u)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	targets, _ := row(g.bwd, c)

	return g.translate(targets), nil
}

// OutEdges returns u's forward adjacency as (original index, weight)
// pairs, ascending by target. Fails with ErrNodeNotFound if u is not in
// this CsrPair.
//
// Complexity: O(deg_out(u)).
func (g *CsrPair[N, W]) OutEdges(u Idx) ([]Neighbor[W], error) {
	c, ok := g.compact(u)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	targets, weights := row(g.fwd, c)

	return g.translateWeighted(targets, weights), nil
}

// InEdges returns u's backward adjacency as (original index, weight)
// pairs, ascending by source. Fails with ErrNodeNotFound if u is not in
// this CsrPair.
//
// Complexity: O(deg_in(u)).
func (g *CsrPair[N, W]) InEdges(u Idx) ([]Neighbor[W], error) {
	c, ok := g.compact(u)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	targets, weights := row(g.bwd, c)

	return g.translateWeighted(targets, weights), nil
}

func (g *CsrPair[N, W]) translate(compactTargets []int) []Idx {
	out := make([]Idx, len(compactTargets))
	for k, c := range compactTargets {
		out[k] = g.origOf[c]
	}

	return out
}

func (g *CsrPair[N, W]) translateWeighted(compactTargets []int, weights []W) []Neighbor[W] {
	out := make([]Neighbor[W], len(compactTargets))
	for k, c := range compactTargets {
		out[k] = Neighbor[W]{Target: g.origOf[c], Weight: weights[k]}
	}

	return out
}

// ContainsEdge reports whether a forward edge (u, v) exists. It scans
// linearly when u's out-degree is at or below LinearThreshold, and
// binary-searches u's (already sorted) target row otherwise. The choice
// is made per call from u's row length alone; it is not a tunable
// runtime flag.
//
// Complexity: O(deg_out(u)) below the threshold, O(log deg_out(u)) above
// it.
func (g *CsrPair[N, W]) ContainsEdge(u, v Idx) bool {
	c, ok := g.compact(u)
	if !ok {
		return false
	}
	vc, ok := g.compact(v)
	if !ok {
		return false
	}

	targets, _ := row(g.fwd, c)
	if len(targets) <= g.linearThreshold {
		for _, t := range targets {
			if t == vc {
				return true
			}
		}

		return false
	}

	idx := sort.SearchInts(targets, vc)

	return idx < len(targets) && targets[idx] == vc
}
