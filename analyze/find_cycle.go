package analyze

import "github.com/marvin-hansen/next-graph/csr"

// color is a node's state during the iterative DFS cycle search.
type color int

const (
	white color = iota // unvisited
	gray               // on the explicit DFS stack, ancestor of the current node
	black              // fully explored
)

// frame is one explicit-stack entry: the node being explored, its
// (already fetched) forward neighbors, and how far the scan has gotten.
type frame struct {
	node      csr.Idx
	neighbors []csr.Idx
	next      int
}

// FindCycle returns a cycle as a sequence of original indices, with the
// back-edge target appearing as both the first and last element, and
// true iff g contains one. It explores with an iterative, explicit-stack
// DFS using three-colour marking; on encountering a gray successor it
// reconstructs the cycle from the portion of the stack at or above that
// successor's frame.
//
// A self-loop counts as a cycle of length 1 and is returned as [v, v].
//
// Complexity: O(n + m).
func FindCycle[N any, W any](g *csr.CsrPair[N, W]) ([]csr.Idx, bool) {
	colors := make(map[csr.Idx]color)
	for _, v := range g.Nodes() {
		colors[v] = white
	}

	for _, start := range g.Nodes() {
		if colors[start] != white {
			continue
		}
		if cycle, ok := dfsFromWhite(g, start, colors); ok {
			return cycle, true
		}
	}

	return nil, false
}

// IsCyclic reports whether g contains a cycle.
//
// Complexity: O(n + m).
func IsCyclic[N any, W any](g *csr.CsrPair[N, W]) bool {
	_, ok := FindCycle[N, W](g)

	return ok
}

func dfsFromWhite[N any, W any](g *csr.CsrPair[N, W], start csr.Idx, colors map[csr.Idx]color) ([]csr.Idx, bool) {
	colors[start] = gray
	out, _ := g.OutNeighbors(start)
	stack := []frame{{node: start, neighbors: out}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.neighbors) {
			colors[top.node] = black
			stack = stack[:len(stack)-1]
			continue
		}

		w := top.neighbors[top.next]
		top.next++

		switch colors[w] {
		case white:
			colors[w] = gray
			wOut, _ := g.OutNeighbors(w)
			stack = append(stack, frame{node: w, neighbors: wOut})
		case gray:
			return reconstructCycle(stack, w), true
		case black:
			// already fully explored, no cycle through here
		}
	}

	return nil, false
}

// reconstructCycle builds [w, ..., w] from the portion of the DFS stack
// at or above w's frame, plus w repeated as the closing element.
func reconstructCycle(stack []frame, w csr.Idx) []csr.Idx {
	start := 0
	for i, f := range stack {
		if f.node == w {
			start = i
			break
		}
	}

	cycle := make([]csr.Idx, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		cycle = append(cycle, f.node)
	}
	cycle = append(cycle, w)

	return cycle
}
