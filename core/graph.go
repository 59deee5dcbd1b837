// SPDX-License-Identifier: MIT
// File: graph.go
// Role: edge lifecycle and adjacency queries for Graph.
// Determinism:
//   - Neighbors() ascending, Edges() ordered by (U, V).

package core

import (
	"fmt"
	"sort"
)

// VertexCount returns n.
func (g *Graph) VertexCount() int {
	return g.n
}

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.n
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// AddEdge connects u and v.
//
// Errors:
//   - ErrVertexOutOfRange if either endpoint is not in 0..n-1.
//   - ErrLoopNotAllowed if u == v.
//   - ErrMultiEdgeNotAllowed if the edge already exists.
func (g *Graph) AddEdge(u, v int) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if contains(g.adj[u], v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adj[u] = insertSorted(g.adj[u], v)
	g.adj[v] = insertSorted(g.adj[v], u)
	g.edges++

	return nil
}

// HasEdge reports whether u and v are adjacent. Out-of-range input yields false.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return contains(g.adj[u], v)
}

// Neighbors returns a sorted copy of v's adjacency.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexOutOfRange)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexOutOfRange)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v]), nil
}

// Edges returns every edge once, ordered by (U, V).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for u := 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{n: g.n, adj: make([][]int, g.n), edges: g.edges}
	for v := range g.adj {
		c.adj[v] = append([]int(nil), g.adj[v]...)
	}

	return c
}

// contains performs a binary search over a sorted adjacency slice.
func contains(list []int, x int) bool {
	i := sort.SearchInts(list, x)

	return i < len(list) && list[i] == x
}

// insertSorted places x into list keeping ascending order.
func insertSorted(list []int, x int) []int {
	i := sort.SearchInts(list, x)
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = x

	return list
}
