// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph families used as fixtures for
// the graph-connectivity lattice and its exhaustive property tests.
//
// The package offers:
//
//   - BuildGraph(n, bopts, cons...): one orchestrator that allocates an
//     n-vertex core.Graph, resolves options and applies constructors in order.
//   - Topology constructors: Path, Cycle, Star, Wheel, Complete, Grid,
//     RandomSparse, EdgeList, FromCode.
//   - Shifted(offset, c): places a constructor on vertices offset.. so several
//     families can be combined into one disconnected graph.
//   - FromCode(n, code) + PairCount(n): enumerate every labelled simple graph
//     on n vertices by treating code as an edge bitmask over the pairs (i<j)
//     in lexicographic order. This drives the brute-force connectivity checks.
//
// Guarantees:
//
//   - Same inputs, options and seed give the identical graph.
//   - Option constructors panic on meaningless input (nil RNG); constructors
//     themselves never panic and return sentinel errors wrapped with %w.
package builder
