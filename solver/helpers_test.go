// SPDX-License-Identifier: MIT

package solver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/objective"
)

// Fixture A: five ordered elements with reference values.
var (
	fixtureValues = []float64{24, 30, 0, 4, 34}
	fixtureRefs   = []float64{100, 110, 10, 20, 50}
)

// withObjective attaches obj to l and computes values.
func withObjective(t testing.TB, l lattice.Lattice, obj objective.Objective) lattice.Lattice {
	t.Helper()
	require.NoError(t, l.AttachObjective(obj))
	require.NoError(t, l.ComputeValues())

	return l
}

func fixtureA(t testing.TB) *lattice.Ordered {
	t.Helper()
	l, err := lattice.NewOrdered(5)
	require.NoError(t, err)
	obj, err := objective.NewRelativeEntropy(fixtureValues, fixtureRefs)
	require.NoError(t, err)
	withObjective(t, l, obj)

	return l
}

func randomEntropy(t testing.TB, rng *rand.Rand, n int) objective.Objective {
	t.Helper()
	values := make([]float64, n)
	refs := make([]float64, n)
	for i := range values {
		values[i] = float64(rng.Intn(40))
		refs[i] = float64(1 + rng.Intn(60))
	}
	obj, err := objective.NewRelativeEntropy(values, refs)
	require.NoError(t, err)

	return obj
}

// predictionData is a 5×5 pre/post dataset with a held-out split.
func predictionData(t testing.TB) *objective.Dataset {
	t.Helper()
	d, err := objective.NewDataset(5, 5)
	require.NoError(t, err)
	for _, o := range [][3]int{
		{0, 0, 2}, {0, 1, 2}, {0, 2, 1}, {0, 3, 1}, {0, 4, 1},
		{1, 1, 2}, {2, 1, 3}, {2, 2, 1},
		{4, 0, 1}, {4, 1, 1}, {4, 2, 1}, {4, 3, 1},
	} {
		require.NoError(t, d.AddTrain(o[0], o[1], o[2]))
	}
	for _, o := range [][3]int{{0, 1, 1}, {2, 2, 2}, {2, 3, 4}, {3, 0, 3}} {
		require.NoError(t, d.AddTest(o[0], o[1], o[2]))
	}

	return d
}

// bruteForce scores every set partition of the universe whose blocks are all
// feasible subsets and returns the best total scalar at param.
func bruteForce(t *testing.T, l lattice.Lattice, param float64) float64 {
	t.Helper()
	obj := l.Objective()
	n := l.AtomicCount()
	labels := make([]int, n)
	best, found := math.NaN(), false

	evaluate := func(blocks int) {
		groups := make([][]int, blocks)
		for e, b := range labels {
			groups[b] = append(groups[b], e)
		}
		total := 0.0
		for _, g := range groups {
			s, err := l.Lookup(g)
			if err != nil || !l.Feasible(s) {
				return
			}
			v, err := l.Value(s)
			require.NoError(t, err)
			x, err := obj.Scalar(v, param)
			require.NoError(t, err)
			total += x
		}
		if !found || (obj.Maximize() && total > best) || (!obj.Maximize() && total < best) {
			best, found = total, true
		}
	}

	// restricted growth strings enumerate each set partition once
	var walk func(i, blocks int)
	walk = func(i, blocks int) {
		if i == n {
			evaluate(blocks)
			return
		}
		for b := 0; b <= blocks; b++ {
			labels[i] = b
			next := blocks
			if b == blocks {
				next++
			}
			walk(i+1, next)
		}
	}
	walk(0, 0)
	require.True(t, found)

	return best
}

// recursiveOptimum evaluates the optimal scalar of id straight from its
// refinements with no memoisation or shared state.
func recursiveOptimum(t *testing.T, l lattice.Lattice, id lattice.SubsetRef, param float64) float64 {
	t.Helper()
	obj := l.Objective()
	best, found := math.NaN(), false
	consider := func(x float64) {
		if !found || (obj.Maximize() && x > best) || (!obj.Maximize() && x < best) {
			best, found = x, true
		}
	}
	if l.Feasible(id) {
		v, err := l.Value(id)
		require.NoError(t, err)
		x, err := obj.Scalar(v, param)
		require.NoError(t, err)
		consider(x)
	}
	refs, err := l.Refinements(id)
	require.NoError(t, err)
	for _, r := range refs {
		sum := 0.0
		for _, m := range r {
			sum += recursiveOptimum(t, l, m, param)
		}
		consider(sum)
	}
	require.True(t, found, "subset %d has no candidate", id)

	return best
}
