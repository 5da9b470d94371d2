package analyze

import "github.com/marvin-hansen/next-graph/csr"

// ShortestPath returns the sequence of original indices from s to t
// inclusive, treating every edge as unit-weight, and true iff one exists.
// It returns (nil, false) if either endpoint is absent from g or t is
// unreachable from s.
//
// s == t returns []Idx{s} without traversing any edge, including a
// self-loop at s.
//
// Ties among equal-length paths are broken by the first-discovered parent:
// because each node's forward row is sorted ascending by original index,
// this means the path preferring numerically smaller neighbors at each
// step wins.
//
// Complexity: O(n + m) in the worst case (BFS over the reachable
// subgraph).
func ShortestPath[N any, W any](g *csr.CsrPair[N, W], s, t csr.Idx) ([]csr.Idx, bool) {
	if !g.ContainsNode(s) || !g.ContainsNode(t) {
		return nil, false
	}
	if s == t {
		return []csr.Idx{s}, true
	}

	bound := int(g.NextIndex())
	visited := make([]bool, bound)
	parent := make([]csr.Idx, bound)
	visited[s] = true

	queue := make([]csr.Idx, 0, bound)
	queue = append(queue, s)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		neighbors, _ := g.OutNeighbors(u)
		for _, v := range neighbors {
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == t {
				return reconstructPath(parent, s, t), true
			}
			queue = append(queue, v)
		}
	}

	return nil, false
}

func reconstructPath(parent []csr.Idx, s, t csr.Idx) []csr.Idx {
	path := []csr.Idx{t}
	for path[len(path)-1] != s {
		path = append(path, parent[path[len(path)-1]])
	}

	reversed := make([]csr.Idx, len(path))
	for i, v := range path {
		reversed[len(path)-1-i] = v
	}

	return reversed
}
