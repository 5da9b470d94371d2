package transform

import (
	"sort"

	"github.com/marvin-hansen/next-graph/csr"
	"github.com/marvin-hansen/next-graph/dyngraph"
)

// rawEdge is a freeze-local forward adjacency entry in compact-index
// space, before it has been flattened into CSR offsets/targets/weights.
type rawEdge[W any] struct {
	target int
	weight W
}

// Freeze converts d into an immutable csr.CsrPair. d is not modified.
//
// Freeze walks d's live nodes in ascending original-index order and
// assigns each one a dense compact position in that same order — this is
// what makes the resulting CSR rows sorted by original index as a side
// effect of being sorted by compact index, with no separate translation
// pass needed afterward. It then builds the forward CSR by source and the
// backward CSR by target, sorting each row's targets.
//
// Complexity: O(n + m) where n is d.NextIndex() and m is d.NumberEdges().
func Freeze[N any, W any](d *dyngraph.DynGraph[N, W], opts ...Option) *csr.CsrPair[N, W] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	origOf := d.Nodes() // ascending live original indices == compact order
	compact := len(origOf)

	compactOf := make([]int, d.NextIndex())
	for i := range compactOf {
		compactOf[i] = -1
	}
	for c, orig := range origOf {
		compactOf[orig] = c
	}

	payloads := make([]N, compact)
	fwdRows := make([][]rawEdge[W], compact)

	totalEdges := 0
	for c, orig := range origOf {
		p, _ := d.GetNode(orig)
		payloads[c] = p

		neighbors, _ := d.Neighbors(orig)
		row := make([]rawEdge[W], len(neighbors))
		for k, n := range neighbors {
			row[k] = rawEdge[W]{target: compactOf[n.Target], weight: n.Weight}
		}
		sort.Slice(row, func(a, b int) bool { return row[a].target < row[b].target })
		fwdRows[c] = row
		totalEdges += len(row)
	}

	fwdOffsets := make([]int, compact+1)
	fwdTargets := make([]int, 0, totalEdges)
	fwdWeights := make([]W, 0, totalEdges)
	for c := 0; c < compact; c++ {
		fwdOffsets[c+1] = fwdOffsets[c] + len(fwdRows[c])
		for _, e := range fwdRows[c] {
			fwdTargets = append(fwdTargets, e.target)
			fwdWeights = append(fwdWeights, e.weight)
		}
	}

	bwdDegree := make([]int, compact)
	for c := 0; c < compact; c++ {
		for _, e := range fwdRows[c] {
			bwdDegree[e.target]++
		}
	}
	bwdOffsets := make([]int, compact+1)
	for c := 0; c < compact; c++ {
		bwdOffsets[c+1] = bwdOffsets[c] + bwdDegree[c]
	}
	bwdTargets := make([]int, totalEdges)
	bwdWeights := make([]W, totalEdges)
	cursor := append([]int(nil), bwdOffsets[:compact]...)
	for c := 0; c < compact; c++ {
		for _, e := range fwdRows[c] {
			pos := cursor[e.target]
			bwdTargets[pos] = c
			bwdWeights[pos] = e.weight
			cursor[e.target]++
		}
	}
	for c := 0; c < compact; c++ {
		start, end := bwdOffsets[c], bwdOffsets[c+1]
		sortBwdRow(bwdTargets[start:end], bwdWeights[start:end])
	}

	rootCompact := -1
	if rootOrig, ok := d.GetRootIndex(); ok {
		rootCompact = compactOf[rootOrig]
	}

	cfg.logger.Debug("freeze complete",
		"nodes", compact,
		"edges", totalEdges,
		"index_space", int(d.NextIndex()),
	)

	return csr.Build[N, W](payloads, fwdOffsets, fwdTargets, fwdWeights, bwdOffsets, bwdTargets, bwdWeights, origOf, d.NextIndex(), rootCompact, cfg.linearThreshold)
}

// sortBwdRow sorts a backward CSR row's (target, weight) pair by target,
// keeping weight aligned with its target across the swap.
func sortBwdRow[W any](targets []int, weights []W) {
	sort.Sort(&bwdRowSorter[W]{targets: targets, weights: weights})
}

type bwdRowSorter[W any] struct {
	targets []int
	weights []W
}

func (s *bwdRowSorter[W]) Len() int { return len(s.targets) }
func (s *bwdRowSorter[W]) Less(i, j int) bool { return s.targets[i] < s.targets[j] }
func (s *bwdRowSorter[W]) Swap(i, j int) {
	s.targets[i], s.targets[j] = s.targets[j], s.targets[i]
	s.weights[i], s.weights[j] = s.weights[j], s.weights[i]
}
