package graphconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds construction-time tuning knobs shared by dyngraph and
// transform.
type Config struct {
	// NodeCapacityHint pre-sizes a new DynGraph's node slot table.
	NodeCapacityHint int `koanf:"node_capacity_hint"`

	// EdgeCapacityHint pre-sizes each new node's adjacency slice.
	EdgeCapacityHint int `koanf:"edge_capacity_hint"`

	// LinearThreshold is the adjacency length at or below which a frozen
	// csr.CsrPair's ContainsEdge scans linearly rather than
	// binary-searching. See csr.DefaultLinearThreshold.
	LinearThreshold int `koanf:"linear_threshold"`
}

const envPrefix = "NEXTGRAPH_"

// Load layers built-in defaults, an optional "nextgraph.toml" in the
// current directory, and NEXTGRAPH_-prefixed environment variables (e.g.
// NEXTGRAPH_LINEAR_THRESHOLD=128), in that order of increasing priority.
// A missing config file is not an error.
func Load() (Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"node_capacity_hint": 0,
		"edge_capacity_hint": 0,
		"linear_threshold":   0,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, fmt.Errorf("graphconfig: load defaults: %w", err)
	}

	if err := k.Load(file.Provider("nextgraph.toml"), toml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("graphconfig: load nextgraph.toml: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("graphconfig: load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("graphconfig: unmarshal: %w", err)
	}

	return cfg, nil
}
