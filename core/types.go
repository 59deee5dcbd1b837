// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeSize indicates NewGraph was asked for a negative vertex count.
	ErrNegativeSize = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop u==v.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected edge with U < V.
type Edge struct {
	U int
	V int
}

// Graph is an undirected simple graph over vertices 0..n-1.
type Graph struct {
	mu    sync.RWMutex
	n     int
	adj   [][]int // adj[v] sorted ascending
	edges int
}

// NewGraph returns an edgeless graph with n vertices.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &Graph{n: n, adj: make([][]int, n)}, nil
}
