package dyngraph

import "fmt"

// Neighbor is one outbound adjacency entry as seen by a caller: the
// target node and the weight of the edge reaching it.
type Neighbor[W any] struct {
	Target Idx
	Weight W
}

// AddEdge appends (v, w) to u's adjacency and returns nil on success.
//
// Fails with ErrNodeNotFound if either endpoint is not live, or with
// ErrEdgeAlreadyExists if an edge (u, v) already exists — DynGraph
// forbids parallel edges; a second insertion is rejected rather than
// silently replacing the weight.
//
// Complexity: O(1) amortized to append, plus O(deg_out(u)) for the
// pre-insertion existence scan.
func (g *DynGraph[N, W]) AddEdge(u, v Idx, w W) error {
	if !g.idx.IsLive(u) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	if !g.idx.IsLive(v) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	if g.ContainsEdge(u, v) {
		return fmt.Errorf("%w: (%d, %d)", ErrEdgeAlreadyExists, u, v)
	}

	g.adj[u] = append(g.adj[u], edge[W]{target: v, weight: w})

	return nil
}

// RemoveEdge removes the entry for v from u's adjacency.
//
// Fails with ErrNodeNotFound if either endpoint is not live, or with
// ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(deg_out(u)).
func (g *DynGraph[N, W]) RemoveEdge(u, v Idx) error {
	if !g.idx.IsLive(u) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	if !g.idx.IsLive(v) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}

	before := len(g.adj[u])
	g.adj[u] = removeTarget(g.adj[u], v)
	if len(g.adj[u]) == before {
		return fmt.Errorf("%w: (%d, %d)", ErrEdgeNotFound, u, v)
	}

	return nil
}

// ContainsEdge reports whether a live edge (u, v) exists. It is a linear
// scan of u's adjacency; if u is not live the result is false rather than
// an error, matching the read-only View capability's tolerance of
// unchecked inputs.
//
// Complexity: O(deg_out(u)).
func (g *DynGraph[N, W]) ContainsEdge(u, v Idx) bool {
	if !g.idx.IsLive(u) {
		return false
	}
	for _, e := range g.adj[u] {
		if e.target == v {
			return true
		}
	}

	return false
}

// NumberEdges returns the sum of live adjacency lengths.
//
// Complexity: O(n) where n = NextIndex().
func (g *DynGraph[N, W]) NumberEdges() int {
	total := 0
	for _, a := range g.adj {
		total += len(a)
	}

	return total
}

// Neighbors returns the outbound neighbors of live node i, in insertion
// order. Fails with ErrNodeNotFound if i is not live.
//
// Complexity: O(deg_out(i)).
func (g *DynGraph[N, W]) Neighbors(i Idx) ([]Neighbor[W], error) {
	if !g.idx.IsLive(i) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}

	out := make([]Neighbor[W], len(g.adj[i]))
	for k, e := range g.adj[i] {
		out[k] = Neighbor[W]{Target: e.target, Weight: e.weight}
	}

	return out, nil
}
