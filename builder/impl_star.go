// SPDX-License-Identifier: MIT
// impl_star.go: Star(n) and Wheel(n). The hub is local vertex 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/optpart/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // rim must be a cycle of at least 3
)

// Star returns a Constructor connecting hub 0 to leaves 1..n-1 (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := requireVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: hub 0 plus a rim cycle on 1..n-1 (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Star(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: spokes: %w", methodWheel, err)
		}
		if err := Shifted(1, Cycle(n-1))(g, cfg); err != nil {
			return fmt.Errorf("%s: rim: %w", methodWheel, err)
		}

		return nil
	}
}
