package csr

import "gonum.org/v1/gonum/graph"

// node is a gonum graph.Node whose ID is a CsrPair original index (never
// a compact row index), so host code that already has a
// dyngraph.Idx/csr.Idx can match it against gonum's int64 IDs directly.
type node struct {
	id int64
}

func (n node) ID() int64 { return n.id }

// directed adapts a *CsrPair to gonum's graph.Directed, read-only, so a
// host can run gonum algorithms (graph/path.DijkstraFrom and friends)
// against a frozen graph's existing edge weights without this package
// taking on a weighted-shortest-path implementation of its own.
//
// directed never copies the underlying CSR arrays; every method
// translates through the same compact/original machinery CsrPair's own
// methods use.
type directed[N any, W any] struct {
	g *CsrPair[N, W]
}

// AsDirected wraps g as a gonum.org/v1/gonum/graph.Directed. Node IDs in
// the returned graph are g's original indices converted to int64.
func AsDirected[N any, W any](g *CsrPair[N, W]) graph.Directed {
	return directed[N, W]{g: g}
}

func (d directed[N, W]) Node(id int64) graph.Node {
	if !d.g.ContainsNode(Idx(id)) {
		return nil
	}

	return node{id: id}
}

func (d directed[N, W]) Nodes() graph.Nodes {
	ids := d.g.Nodes()
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = node{id: int64(id)}
	}

	return &nodeIterator{nodes: nodes, cursor: -1}
}

func (d directed[N, W]) From(id int64) graph.Nodes {
	out, err := d.g.OutNeighbors(Idx(id))
	if err != nil {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(out))
	for i, t := range out {
		nodes[i] = node{id: int64(t)}
	}

	return &nodeIterator{nodes: nodes, cursor: -1}
}

func (d directed[N, W]) To(id int64) graph.Nodes {
	in, err := d.g.InNeighbors(Idx(id))
	if err != nil {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(in))
	for i, t := range in {
		nodes[i] = node{id: int64(t)}
	}

	return &nodeIterator{nodes: nodes, cursor: -1}
}

func (d directed[N, W]) HasEdgeBetween(xid, yid int64) bool {
	return d.g.ContainsEdge(Idx(xid), Idx(yid)) || d.g.ContainsEdge(Idx(yid), Idx(xid))
}

func (d directed[N, W]) Edge(uid, vid int64) graph.Edge {
	return d.EdgeBetween(uid, vid)
}

func (d directed[N, W]) EdgeBetween(uid, vid int64) graph.Edge {
	if !d.g.ContainsEdge(Idx(uid), Idx(vid)) {
		return nil
	}

	return simpleEdge{from: node{id: uid}, to: node{id: vid}}
}

func (d directed[N, W]) HasEdgeFromTo(uid, vid int64) bool {
	return d.g.ContainsEdge(Idx(uid), Idx(vid))
}

type simpleEdge struct {
	from, to node
	weight   float64
}

func (e simpleEdge) From() graph.Node         { return e.from }
func (e simpleEdge) To() graph.Node           { return e.to }
func (e simpleEdge) ReversedEdge() graph.Edge { return simpleEdge{from: e.to, to: e.from, weight: e.weight} }
func (e simpleEdge) Weight() float64          { return e.weight }

// weightedDirected adapts a *CsrPair to gonum's graph.WeightedDirected by
// pairing it with a toFloat conversion for the opaque edge weight type W.
// CsrPair never assumes W is numeric; this adapter is the one place a
// host supplies that assumption, only when it actually wants a weighted
// gonum algorithm such as graph/path.DijkstraFrom.
type weightedDirected[N any, W any] struct {
	directed[N, W]
	toFloat func(W) float64
}

// AsWeightedDirected wraps g as a gonum.org/v1/gonum/graph.WeightedDirected,
// converting each edge weight through toFloat. Use this instead of
// AsDirected when the host needs a weighted gonum algorithm.
func AsWeightedDirected[N any, W any](g *CsrPair[N, W], toFloat func(W) float64) graph.WeightedDirected {
	return weightedDirected[N, W]{directed: directed[N, W]{g: g}, toFloat: toFloat}
}

func (d weightedDirected[N, W]) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	w, ok := d.Weight(uid, vid)
	if !ok {
		return nil
	}

	return simpleEdge{from: node{id: uid}, to: node{id: vid}, weight: w}
}

func (d weightedDirected[N, W]) Weight(xid, yid int64) (float64, bool) {
	edges, err := d.g.OutEdges(Idx(xid))
	if err != nil {
		return 0, false
	}
	for _, e := range edges {
		if e.Target == Idx(yid) {
			return d.toFloat(e.Weight), true
		}
	}

	return 0, false
}

type nodeIterator struct {
	nodes  []graph.Node
	cursor int
}

func (it *nodeIterator) Next() bool {
	if it.cursor+1 >= len(it.nodes) {
		return false
	}
	it.cursor++

	return true
}

func (it *nodeIterator) Len() int {
	return len(it.nodes) - (it.cursor + 1)
}

func (it *nodeIterator) Reset() {
	it.cursor = -1
}

func (it *nodeIterator) Node() graph.Node {
	return it.nodes[it.cursor]
}
