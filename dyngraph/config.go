package dyngraph

import "github.com/marvin-hansen/next-graph/graphconfig"

// NewWithConfig returns an empty DynGraph sized from cfg's capacity
// hints. It is equivalent to WithCapacity(cfg.NodeCapacityHint,
// cfg.EdgeCapacityHint), provided as a convenience for callers that
// already load a graphconfig.Config at startup.
//
// Complexity: O(cfg.NodeCapacityHint).
func NewWithConfig[N any, W any](cfg graphconfig.Config) *DynGraph[N, W] {
	return WithCapacity[N, W](cfg.NodeCapacityHint, cfg.EdgeCapacityHint)
}
