// Package nextgraph is a dual-representation, in-process graph engine: a
// mutable edit-phase graph for building and changing topology, and an
// immutable, cache-friendly CSR graph for running analysis algorithms
// against — with an explicit, linear-time conversion between the two.
//
// Everything is organized under six subpackages:
//
//	indexspace/  — the monotone index allocator both representations build on
//	dyngraph/    — DynGraph, the mutable edit-phase representation
//	csr/         — CsrPair, the immutable dual-direction CSR representation
//	transform/   — Freeze (DynGraph -> CsrPair) and Unfreeze (CsrPair -> DynGraph)
//	analyze/     — shortest path, topological sort, and cycle detection over CsrPair
//	graphconfig/ — construction-time tuning knobs (capacity hints, search threshold)
//
// A typical session builds a graph with dyngraph, freezes it with
// transform.Freeze once editing is done, runs one or more analyze
// functions against the frozen csr.CsrPair, and optionally unfreezes it
// to resume editing — indices issued before the freeze keep denoting the
// same nodes on the other side of either conversion.
package nextgraph
