// Package transform converts between the two graph representations:
// Freeze turns a mutable dyngraph.DynGraph into an immutable csr.CsrPair,
// and Unfreeze turns a csr.CsrPair back into a dyngraph.DynGraph.
//
// Both conversions are total and run in time linear in the number of
// nodes plus edges touched; neither can fail, so neither returns an
// error. Both are implemented entirely in terms of the public APIs of
// dyngraph and csr (their read methods plus the csr.Build and
// dyngraph.Rebuild constructors) — this package holds the only code that
// imports both, by design, so that dyngraph and csr never need to know
// about each other.
//
// A round trip through Freeze then Unfreeze reproduces the original
// DynGraph's node set, edge set with weights, index space (tombstones
// included) and root-node designation exactly. Adjacency order is not
// preserved: each node's neighbors come back in ascending index order,
// not in their original insertion order. Freeze assigns each surviving node a
// dense compact position by walking original indices in ascending order,
// and records the translation table so Unfreeze can invert it.
package transform
