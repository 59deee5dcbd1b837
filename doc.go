// SPDX-License-Identifier: MIT

// Package optpart finds optimal aggregations of structured data: the
// partition of a universe into allowed parts that maximizes (or minimizes)
// a parametrized objective, and the whole family of such partitions as the
// trade-off parameter sweeps its range.
//
// What is optpart?
//
//	A pure-Go toolkit in a few layers:
//		• core/, bfs/, builder/  adjacency graphs, connectivity, topology constructors
//		• objective/             the Objective contract plus entropy, scoring and bottleneck measures
//		• lattice/               feasible subsets and their refinements for six structures
//		• partition/             partition values with comparison and refinement checks
//		• solver/                optimal-partition dynamic programs and the Pareto frontier
//		• cmd/partopt            YAML problems in, CSV partitions out
//
// Quick example:
//
//	values  24 30  0  4 34
//	refs   100 110 10 20 50
//
//	frontier (unit → partition)
//	  0         [{0} {1} {2} {3} {4}]
//	  0.0332    [{0,1} {2} {3} {4}]
//	  0.2881    [{0,1,2,3} {4}]
//	  0.7598    [{0,1,2,3,4}]
//
// Typical flow:
//
//	l, _ := lattice.NewOrdered(5)
//	obj, _ := objective.NewRelativeEntropy(values, refs)
//	_ = l.AttachObjective(obj)
//	_ = l.ComputeValues()
//	_ = l.NormalizeValues()
//	s, _ := solver.New(l)
//	front, _ := s.Frontier(0.01)
//
//	go get github.com/katalvlaran/optpart
package optpart
