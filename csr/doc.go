// Package csr provides CsrPair, the immutable, analysis-phase
// representation of a directed, edge-weighted graph.
//
// CsrPair stores both the forward and the transposed (backward) adjacency
// as struct-of-arrays compressed sparse row data: a per-node offsets slice
// plus flat targets and weights slices. Forward and backward rows are
// kept separate so that Analyzer algorithms that only need one direction
// (shortest path and cycle detection only walk forward) never pull the
// other direction's cache lines; topological sort reads in-degrees from
// the backward rows and walks the forward rows.
//
// Node identity is carried across the Freeze/Unfreeze boundary by two
// translation tables: origOf maps a dense compact position (the row index
// used inside the CSR arrays) back to the original dyngraph.Idx it was
// assigned before freezing, and compactOf is its inverse. Every method on
// CsrPair accepts and returns original indices; the compact/original
// split never leaks into the public API.
//
// CsrPair itself is never mutated after construction. It is produced by
// package transform's Freeze, which assembles it through Build (Build is
// exported and can also be called directly with ready-made CSR arrays),
// and the only way back to a mutable graph is package transform's
// Unfreeze.
package csr
