// SPDX-License-Identifier: MIT

// Package core provides the undirected simple graph consumed by the
// graph-connectivity lattice.
//
// Vertices are the integers 0..n-1 fixed at construction; they are the
// atomic elements of the universe, so a vertex index is also an element
// index. Edges are undirected, unweighted, and unique; self-loops are
// rejected because they never change connectivity.
//
// Determinism:
//
//	Neighbors(v) is sorted ascending and Edges() is sorted by (U, V), so every
//	traversal built on top of core (bfs, lattice) is reproducible.
//
// Concurrency:
//
//	Graph guards its adjacency with a sync.RWMutex. Readers may run in
//	parallel; AddEdge takes the write lock.
//
// Complexity:
//
//	AddEdge       O(deg(u) + deg(v))   (sorted insert)
//	HasEdge       O(log deg(u))
//	Neighbors     O(deg(v))            (copy)
//	Edges         O(V + E)
package core
