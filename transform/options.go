package transform

import (
	"io"
	"log/slog"
)

// config holds the options common to Freeze and Unfreeze. Neither
// conversion can fail, so options only ever tune logging and the
// resulting CsrPair's adaptive ContainsEdge threshold, never behavior.
type config struct {
	logger          *slog.Logger
	linearThreshold int
}

func defaultConfig() config {
	return config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Freeze or Unfreeze call.
type Option func(*config)

// WithLogger routes this conversion's diagnostic log lines (node/edge
// counts, index-space size) through l instead of a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLinearThreshold overrides Freeze's output csr.CsrPair's adaptive
// ContainsEdge threshold (see csr.DefaultLinearThreshold). It has no
// effect on Unfreeze, whose output is always a DynGraph.
func WithLinearThreshold(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.linearThreshold = n
		}
	}
}
