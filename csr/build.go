package csr

// Build assembles a CsrPair from already-computed compact-indexed CSR
// arrays. It exists for package transform's Freeze conversion, which
// computes offsets/targets/weights and the origOf translation table in a
// single linear pass over a dyngraph.DynGraph; Build's job is only to
// derive compactOf from origOf and wrap everything in the public type.
//
// fwdOffsets/fwdTargets/fwdWeights and bwdOffsets/bwdTargets/bwdWeights
// must already be valid CSR rows over the same compact index space as
// payloads and origOf. rootCompact is the root node's compact index, or
// -1 if there is none. linearThreshold <= 0 selects DefaultLinearThreshold.
//
// Complexity: O(nextIndex) to build compactOf; the rest is O(1) wrapping.
func Build[N any, W any](
	payloads []N,
	fwdOffsets, fwdTargets []int, fwdWeights []W,
	bwdOffsets, bwdTargets []int, bwdWeights []W,
	origOf []Idx,
	nextIndex Idx,
	rootCompact int,
	linearThreshold int,
) *CsrPair[N, W] {
	if linearThreshold <= 0 {
		linearThreshold = DefaultLinearThreshold
	}

	compactOf := make([]int, nextIndex)
	for i := range compactOf {
		compactOf[i] = -1
	}
	for compact, orig := range origOf {
		compactOf[orig] = compact
	}

	return &CsrPair[N, W]{
		payloads:        payloads,
		fwd:             rowSet[W]{offsets: fwdOffsets, targets: fwdTargets, weights: fwdWeights},
		bwd:             rowSet[W]{offsets: bwdOffsets, targets: bwdTargets, weights: bwdWeights},
		origOf:          origOf,
		compactOf:       compactOf,
		nextIndex:       nextIndex,
		rootCompact:     rootCompact,
		hasRoot:         rootCompact >= 0,
		linearThreshold: linearThreshold,
	}
}
