package dyngraph


// AddNode allocates a fresh Idx, stores payload p as a live slot, and
// returns the new index. AddNode always succeeds.
//
// Complexity: O(1) amortized.
func (g *DynGraph[N, W]) AddNode(p N) Idx {
	i := g.idx.Alloc()
	g.growTo(i)
	g.nodes[i] = nodeSlot[N]{payload: p, live: true}

	return i
}

// AddRootNode allocates a fresh node exactly like AddNode, then
// designates it the graph's root node, displacing any previous
// designation (the previous root's node itself is untouched).
//
// Complexity: O(1) amortized.
func (g *DynGraph[N, W]) AddRootNode(p N) Idx {
	i := g.AddNode(p)
	g.rootIndex = i
	g.hasRoot = true

	return i
}

// growTo ensures nodes and adj have a slot for index i, extending both
// with tombstoned/empty entries as needed. It is the only place new slots
// are appended, so AddNode and the root-node helpers share one invariant:
// len(nodes) == len(adj) == idx.NextIndex().
func (g *DynGraph[N, W]) growTo(i Idx) {
	for Idx(len(g.nodes)) <= i {
		g.nodes = append(g.nodes, nodeSlot[N]{})
		var adjSlice []edge[W]
		if g.perNodeEdgeHint > 0 {
			adjSlice = make([]edge[W], 0, g.perNodeEdgeHint)
		}
		g.adj = append(g.adj, adjSlice)
	}
}

// RemoveNode tombstones slot i, drops its payload, and purges every edge
// with source i or target i (as both source and target, in the same
// operation, per the slot-validity invariant). Returns whether i was live
// before the call; removing an already-dead or out-of-range index is a
// no-op that returns false.
//
// If i was the designated root node, the root designation is cleared.
//
// Complexity: O(deg_in(i) + deg_out(i) + touched backrefs); the backref
// cost is paid by a linear sweep of all adjacencies.
func (g *DynGraph[N, W]) RemoveNode(i Idx) bool {
	if !g.idx.IsLive(i) {
		return false
	}

	g.idx.Free(i)
	var zero N
	outDegree := len(g.adj[i])
	g.nodes[i] = nodeSlot[N]{payload: zero, live: false}
	g.adj[i] = nil

	// Purge every edge that targets i from every other node's adjacency.
	purged := 0
	for u := range g.adj {
		if Idx(u) == i {
			continue
		}
		before := len(g.adj[u])
		g.adj[u] = removeTarget(g.adj[u], i)
		if len(g.adj[u]) != before {
			purged++
		}
	}

	wasRoot := g.hasRoot && g.rootIndex == i
	if wasRoot {
		g.hasRoot = false
	}

	g.logger.Debug("node removed",
		"index", uint64(i),
		"out_edges_dropped", outDegree,
		"in_edges_purged", purged,
		"was_root", wasRoot,
	)

	return true
}

// removeTarget returns adj with any entry targeting i removed, reusing
// the backing array (order-preserving, since adjacency order is
// insertion order and callers depend on it).
func removeTarget[W any](adj []edge[W], i Idx) []edge[W] {
	for k, e := range adj {
		if e.target == i {
			return append(adj[:k], adj[k+1:]...)
		}
	}

	return adj
}

// GetNode returns the payload stored at i and true iff i is live.
//
// Complexity: O(1).
func (g *DynGraph[N, W]) GetNode(i Idx) (N, bool) {
	if !g.idx.IsLive(i) {
		var zero N
		return zero, false
	}

	return g.nodes[i].payload, true
}

// ContainsNode reports whether i is live.
//
// Complexity: O(1).
func (g *DynGraph[N, W]) ContainsNode(i Idx) bool {
	return g.idx.IsLive(i)
}

// NumberNodes returns the number of currently live nodes.
//
// Complexity: O(1).
func (g *DynGraph[N, W]) NumberNodes() int {
	return g.idx.LiveCount()
}

// Nodes returns the live node indices in ascending order.
//
// Complexity: O(n) where n = NextIndex(); O(live) extra space.
func (g *DynGraph[N, W]) Nodes() []Idx {
	out := make([]Idx, 0, g.idx.LiveCount())
	for i := Idx(0); i < g.idx.NextIndex(); i++ {
		if g.idx.IsLive(i) {
			out = append(out, i)
		}
	}

	return out
}

// ContainsRootNode reports whether a root node is currently designated.
//
// Complexity: O(1).
func (g *DynGraph[N, W]) ContainsRootNode() bool {
	return g.hasRoot && g.idx.IsLive(g.rootIndex)
}

// GetRootNode returns the root node's payload, if one is designated and
// still live.
//
// Complexity: O(1).
func (g *DynGraph[N, W]) GetRootNode() (N, bool) {
	if !g.ContainsRootNode() {
		var zero N
		return zero, false
	}

	return g.nodes[g.rootIndex].payload, true
}

// GetRootIndex returns the root node's index, if one is designated and
// still live.
//
// Complexity: O(1).
func (g *DynGraph[N, W]) GetRootIndex() (Idx, bool) {
	if !g.ContainsRootNode() {
		return 0, false
	}

	return g.rootIndex, true
}
