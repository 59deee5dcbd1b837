// SPDX-License-Identifier: MIT

// Package solver finds optimal partitions of a lattice whose values have been
// computed, and traces how the optimum moves as the objective's trade-off
// parameter sweeps its domain.
//
// For a parameter p the optimum of a subset s is
//
//	best(s) = opt( Scalar(Value(s), p),  Σ_{m ∈ R} best(m) for each refinement R of s )
//
// with opt = max or min following Objective.Maximize. Comparisons are strict:
// on an exact tie the subset is kept whole, and among refinements the first
// listed wins. The synthetic root of a disconnected graph is never kept whole.
//
// Strategies:
//
//	StrategyAuto      interval recurrence for Ordered and Ring, DAG DP otherwise
//	StrategyGeneric   DAG DP for every lattice
//
// The DAG DP walks subsets from the top with an explicit stack, so deep
// hierarchies cannot exhaust the goroutine stack. Per-subset state moves
// unvisited → valueComputed → optimized once per solve and is tracked by a
// generation stamp, so repeated solves reuse the same arrays.
//
// Frontier bisects the unit interval: it solves at units 0 and 1, splits any
// span whose end partitions differ and whose width exceeds the threshold, and
// finally drops consecutive duplicates. Stability intervals narrower than the
// threshold may be missed.
//
// A Solver is not safe for concurrent use; build one per goroutine.
package solver
