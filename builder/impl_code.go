// SPDX-License-Identifier: MIT
// impl_code.go: explicit edge lists and bitmask-coded graphs.
//
// Pair order for FromCode: (0,1),(0,2),...,(0,n-1),(1,2),... ; bit k of code
// selects pair k. Looping code over 0..2^PairCount(n)-1 visits every labelled
// simple graph on n vertices exactly once.

package builder

import (
	"fmt"

	"github.com/katalvlaran/optpart/core"
)

const (
	methodEdgeList = "EdgeList"
	methodFromCode = "FromCode"
	maxCodeBits    = 64
)

// PairCount returns n(n-1)/2, the number of bits FromCode consumes.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// EdgeList returns a Constructor adding the given local edges in order.
func EdgeList(edges [][2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, e := range edges {
			if err := addEdge(methodEdgeList, g, cfg, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// FromCode returns a Constructor for the labelled graph on n vertices whose
// edge set is the bitmask code.
func FromCode(n int, code uint64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", methodFromCode, n, ErrTooFewVertices)
		}
		pairs := PairCount(n)
		if pairs > maxCodeBits {
			return fmt.Errorf("%s: n=%d needs %d bits: %w", methodFromCode, n, pairs, ErrInvalidCode)
		}
		if pairs < maxCodeBits && code>>uint(pairs) != 0 {
			return fmt.Errorf("%s: code %#x exceeds %d bits: %w", methodFromCode, code, pairs, ErrInvalidCode)
		}
		if err := requireVertices(methodFromCode, g, cfg, n); err != nil {
			return err
		}

		bit := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if code&(1<<uint(bit)) != 0 {
					if err := addEdge(methodFromCode, g, cfg, i, j); err != nil {
						return err
					}
				}
				bit++
			}
		}

		return nil
	}
}
