// Package indexspace provides a monotonically growing index allocator with
// per-slot liveness tracking.
//
// It is the lowest-level building block of the graph engine: both the
// mutable DynGraph and the immutable CsrPair rely on it (directly or via
// the freeze/unfreeze translation tables) to guarantee that an Idx value,
// once issued, always denotes the same logical node for the lifetime of a
// graph, even across tombstoned removals and freeze/unfreeze cycles.
//
// IndexSpace never reuses a previously issued index. Reuse would break the
// "index stability" invariant that the rest of the engine depends on, so
// freed slots are retained as tombstones rather than recycled.
package indexspace
