// SPDX-License-Identifier: MIT

package solver_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/optpart/builder"
	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/solver"
)

func benchSolve(b *testing.B, l lattice.Lattice, opts ...solver.Option) {
	withObjective(b, l, randomEntropy(b, rand.New(rand.NewSource(1)), l.AtomicCount()))
	s, err := solver.New(l, opts...)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.OptimalValue(float64(i%10) / 10); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkOptimalValue_Ordered is the interval recurrence over 120 elements.
func BenchmarkOptimalValue_Ordered(b *testing.B) {
	l, _ := lattice.NewOrdered(120)
	benchSolve(b, l)
}

// BenchmarkOptimalValue_OrderedGeneric is the same lattice through the DAG DP.
func BenchmarkOptimalValue_OrderedGeneric(b *testing.B) {
	l, _ := lattice.NewOrdered(120)
	benchSolve(b, l, solver.WithStrategy(solver.StrategyGeneric))
}

// BenchmarkOptimalValue_Grid solves the connected-set lattice of a 3×4 grid.
func BenchmarkOptimalValue_Grid(b *testing.B) {
	g, _ := builder.BuildGraph(12, nil, builder.Grid(3, 4))
	l, _ := lattice.NewGraph(g)
	benchSolve(b, l)
}

// BenchmarkFrontier_Ordered traces a 60-element frontier.
func BenchmarkFrontier_Ordered(b *testing.B) {
	l, _ := lattice.NewOrdered(60)
	withObjective(b, l, randomEntropy(b, rand.New(rand.NewSource(2)), 60))
	s, _ := solver.New(l)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Frontier(0.01); err != nil {
			b.Fatal(err)
		}
	}
}
