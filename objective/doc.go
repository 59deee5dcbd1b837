// SPDX-License-Identifier: MIT

// Package objective defines the composable quality statistic attached to every
// feasible subset of a lattice, and the objectives that produce it.
//
// An Objective turns raw per-atom data into Values bottom-up:
//
//	Leaf(atom)        value of an atomic subset
//	Combine(a, b)     value of the union of two disjoint subsets
//	CombineMany(vs)   value of the union of several disjoint subsets
//	Normalize(v, ref) rescale v against the top-level value
//	Scalar(v, p)      scalarised score of v at trade-off parameter p
//
// Decomposability: for any refinement of a subset, CombineMany of the members'
// values equals the value computed directly for the union. The lattice relies
// on this to evaluate each subset from its first refinement only.
//
// Sum aggregates the values of the parts of a partition field by field; it is
// what a Partition reports as its overall value.
//
// Concrete objectives:
//
//   - RelativeEntropy: maximise p·reduction − (1−p)·divergence over p ∈ [0,1].
//   - InformationCriterion: same statistic, reparametrised p = u/(1−u).
//   - LogarithmicScore, QuadraticScore: held-out prediction quality of a
//     train/test Dataset of (pre, post, count) observations.
//   - InformationBottleneck: statistics derived from a MarkovChain.
//
// The Objective never traverses the lattice; evaluation order is the
// lattice's responsibility.
package objective
