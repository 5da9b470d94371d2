package analyze

import "github.com/marvin-hansen/next-graph/csr"

// TopologicalSort returns a topological ordering of g's nodes, as
// original indices, using Kahn's algorithm: in-degree is read from the
// backward CSR, a queue is seeded with every in-degree-0 node in
// ascending order, and each emission decrements its forward neighbors'
// in-degree, enqueuing any that reach zero in encounter order.
//
// Returns ErrGraphContainsCycle if fewer nodes were emitted than g has —
// some nodes never reached in-degree zero, which is only possible if they
// sit on a cycle.
//
// Complexity: O(n + m).
func TopologicalSort[N any, W any](g *csr.CsrPair[N, W]) ([]csr.Idx, error) {
	nodes := g.Nodes() // ascending original == ascending compact order

	indegree := make(map[csr.Idx]int, len(nodes))
	queue := make([]csr.Idx, 0, len(nodes))
	for _, v := range nodes {
		in, _ := g.InNeighbors(v)
		indegree[v] = len(in)
		if len(in) == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]csr.Idx, 0, len(nodes))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		out, _ := g.OutNeighbors(u)
		for _, w := range out {
			indegree[w]--
			if indegree[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	if len(order) < len(nodes) {
		return nil, ErrGraphContainsCycle
	}

	return order, nil
}
