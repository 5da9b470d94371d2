// Package analyze provides the read-only algorithms that exploit
// csr.CsrPair's immutable, dual-direction CSR layout: unit-weight
// shortest path, topological sort, and cycle detection.
//
// Every function here accepts and returns original indices; translation
// to and from the compact row index CsrPair stores internally happens at
// the call boundary through CsrPair's own public methods. None of these
// algorithms touches edge weights — shortest path counts hops, and
// topological sort and cycle detection only care about topology — so
// none of them pulls the weights array's cache lines.
//
// In keeping with this module's free-function convention, these are
// package-level functions over *csr.CsrPair rather than methods, the way
// package bfs and package dfs operate over *core.Graph.
package analyze
