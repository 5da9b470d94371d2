package dyngraph

import "errors"

// Sentinel errors for DynGraph mutation. Each is wrapped with operand
// context via fmt.Errorf("%w: ...", ErrX, ...) at the call site, so
// callers can still discriminate with errors.Is while humans reading logs
// get the concrete indices involved.
var (
	// ErrNodeNotFound indicates an operation referenced an index that is
	// outside the index space or refers to a tombstoned slot.
	ErrNodeNotFound = errors.New("dyngraph: node not found")

	// ErrEdgeNotFound indicates RemoveEdge was asked to remove an edge
	// that does not exist in the source node's adjacency.
	ErrEdgeNotFound = errors.New("dyngraph: edge not found")

	// ErrEdgeAlreadyExists indicates AddEdge was asked to create a
	// parallel edge; DynGraph forbids parallel edges per invariant.
	ErrEdgeAlreadyExists = errors.New("dyngraph: edge already exists")
)
