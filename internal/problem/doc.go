// SPDX-License-Identifier: MIT

// Package problem decodes a YAML problem description into a lattice with its
// objective attached and values computed.
//
//	name: fixture-a
//	structure:
//	  kind: ordered          # ordered | ring | hierarchy | powerset | graph | product
//	  size: 5
//	  labels: [a, b, c, d, e]
//	objective:
//	  kind: relative-entropy
//	  values: [24, 30, 0, 4, 34]
//	  references: [100, 110, 10, 20, 50]
//	  normalize: true
//
// Graphs list `edges: [[u, v], ...]` and may set `require_connected`.
// Hierarchies give a `tree` of nested `children`, or `depth` and `arity` for
// a balanced tree. Products list `dimensions`, each a structure of its own.
// Score objectives take `post_size`, `prior`, and `train`/`test` rows of
// [pre, post, count]; the bottleneck objective takes a `chain` with `size`,
// `distribution` and column-stochastic `transition`.
package problem
