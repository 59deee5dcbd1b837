// SPDX-License-Identifier: MIT

// Package lattice builds the feasible subsets of a structured universe and
// their refinements, and annotates them with objective values.
//
// A universe of M atomic elements 0..M-1 is constrained by a structure. A
// feasible subset is an allowed part; a refinement of a subset is an exact
// disjoint decomposition of it into other feasible subsets. Variants:
//
//	Ordered    intervals of 0..N-1; one refinement per cut point
//	Ring       arcs of a circle; the whole ring splits at any two boundaries
//	Hierarchy  nodes of a tree; the single refinement is the children
//	Powerset   every nonempty subset; every 2-split (small N only)
//	Graph      vertex sets inducing connected subgraphs; every connected bipartition
//	Product    tuples of subsets of k sub-lattices; refine one dimension at a time
//
// Identifiers
//
//	Subsets live in an arena addressed by SubsetRef. Ids are topological:
//	every member of a refinement has a smaller id than its owner, and the top
//	subset has the largest id. ComputeValues is therefore a single ascending
//	sweep with no recursion, and any DP over the lattice can visit subsets in
//	id order.
//
// Lifecycle
//
//	build (New*) → AttachObjective → ComputeValues → NormalizeValues (optional)
//	→ queried by the solver any number of times. The lattice shape never
//	changes after build.
//
// Errors
//
//	ErrInvalidStructure  malformed build parameters
//	ErrTooLarge          exponential variants beyond their size cap
//	ErrObjectiveNotSet   values requested without an objective
//	ErrValuesNotComputed values read before ComputeValues
//	ErrSubsetNotFound    unknown SubsetRef or element set
//	ErrDimensionMismatch objective/product arity disagreement
package lattice
