// Package graphconfig loads construction-time tuning knobs for DynGraph
// and the Freeze/Unfreeze conversions: capacity hints and the adaptive
// ContainsEdge linear-search threshold. None of these affect a graph's
// observable behavior, only how eagerly it pre-allocates and where the
// adaptive lookup switches strategy.
//
// Configuration layers, lowest to highest priority: built-in defaults,
// an optional "nextgraph.toml" file, then NEXTGRAPH_-prefixed environment
// variables. There is no flags layer — this package configures library
// construction, not a command-line host, which is out of scope for this
// module.
package graphconfig
