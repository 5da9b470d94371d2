// Package dyngraph provides DynGraph, the mutable, edit-phase
// representation of a directed, edge-weighted graph.
//
// DynGraph stores node payloads in a dense, tombstoned slot table keyed by
// a stable Idx, and per-node outbound adjacency as an unordered slice of
// (target, weight) pairs. Indices are allocated by an
// github.com/marvin-hansen/next-graph/indexspace.IndexSpace and, once
// issued, never change meaning: removing a node tombstones its slot rather
// than shifting later indices down.
//
// DynGraph is the entry and exit point of the transform package's Freeze
// and Unfreeze conversions; it is not safe for concurrent mutation and
// carries no internal locking.
package dyngraph
