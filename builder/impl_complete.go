// SPDX-License-Identifier: MIT
// impl_complete.go: Complete(n) and Grid(rows, cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/optpart/core"
)

const (
	methodComplete = "Complete"
	methodGrid     = "Grid"
	minCompleteN   = 1
	minGridDim     = 1
)

// Complete returns a Constructor for K_n (n ≥ 1), edges in (i<j) lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}
		if err := requireVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighbourhood grid.
// Vertex r*cols+c sits at row r, column c.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := requireVertices(methodGrid, g, cfg, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
