package csr

import "errors"

// ErrNodeNotFound indicates an operation referenced an original index
// that has no corresponding compact row in this CsrPair.
var ErrNodeNotFound = errors.New("csr: node not found")
