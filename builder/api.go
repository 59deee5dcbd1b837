// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/optpart/core"
)

// Constructor adds a deterministic edge pattern to g using cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph allocates an n-vertex graph, resolves bopts and applies cons in order.
// Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Shifted runs c on vertices offset, offset+1, ... of the target graph.
func Shifted(offset int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Shifted: nil constructor: %w", ErrConstructFailed)
		}
		cfg.offset += offset

		return c(g, cfg)
	}
}

// requireVertices checks that local vertices 0..need-1 exist after shifting.
func requireVertices(method string, g *core.Graph, cfg builderConfig, need int) error {
	if cfg.offset < 0 || cfg.offset+need > g.VertexCount() {
		return fmt.Errorf("%s: needs vertices %d..%d, graph has %d: %w",
			method, cfg.offset, cfg.offset+need-1, g.VertexCount(), ErrTooFewVertices)
	}

	return nil
}

// addEdge connects local vertices u and v, translating by cfg.offset.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	if err := g.AddEdge(cfg.offset+u, cfg.offset+v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
