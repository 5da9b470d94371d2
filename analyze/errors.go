package analyze

import "errors"

// ErrGraphContainsCycle is returned by TopologicalSort when the graph is
// not a DAG: fewer nodes were emitted than the graph has, because some
// remained stuck at a nonzero in-degree.
var ErrGraphContainsCycle = errors.New("analyze: graph contains a cycle")
