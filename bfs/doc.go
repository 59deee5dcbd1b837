// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph and the
// connectivity queries built on it.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex and
//     returns a Result with visit Order, Depth and Parent links.
//   - Hooks: OnVisit (may abort with an error), FilterNeighbor (prune edges,
//     which is how induced subgraphs are searched), MaxDepth.
//   - Components splits a graph into connected components, each listed in BFS
//     order from its lowest vertex; components are ordered by lowest vertex.
//   - IsConnected decides whether a vertex set induces a connected subgraph.
//     It is deliberately brute force and serves as the oracle against which
//     the graph-connectivity lattice is checked.
//
// Determinism
//
//	core.Graph.Neighbors is ascending, so the visit order is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per BFS, Components and IsConnected.
//   - Memory: O(V).
package bfs
