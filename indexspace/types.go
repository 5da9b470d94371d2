package indexspace

// Idx is a stable integer handle into a graph's index space. Idx values are
// never reused within the lifetime of one graph, including across freeze
// and unfreeze boundaries.
type Idx uint64

// IndexSpace allocates fresh Idx values and tracks, per slot, whether the
// index is currently live. It does not itself store node payloads or
// adjacency; callers key their own storage off the Idx values it returns.
type IndexSpace struct {
	live      []bool // live[i] reports whether index i is currently allocated
	liveCount int    // number of true entries in live, maintained incrementally
}

// New returns an empty IndexSpace.
func New() *IndexSpace {
	return &IndexSpace{}
}

// WithCapacity returns an empty IndexSpace whose backing slice is
// pre-sized for hint future allocations. Purely a performance hint; it has
// no effect on the sequence of indices Alloc returns.
func WithCapacity(hint int) *IndexSpace {
	if hint < 0 {
		hint = 0
	}

	return &IndexSpace{live: make([]bool, 0, hint)}
}
