// SPDX-License-Identifier: MIT

package objective_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optpart/objective"
)

// predictionFixture is a 5×5 pre/post dataset with a small held-out split.
func predictionFixture(t *testing.T) *objective.Dataset {
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

// TestDataset_Validation checks observation bounds.
func TestDataset_Validation(t *testing.T) {
	_, err := objective.NewDataset(0, 3)
	assert.ErrorIs(t, err, objective.ErrInvalidInput)

	d, err := objective.NewDataset(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, d.AddTrain(2, 0, 1), objective.ErrDimensionMismatch)
	assert.ErrorIs(t, d.AddTest(0, 3, 1), objective.ErrDimensionMismatch)
	assert.ErrorIs(t, d.AddTrain(0, 0, -1), objective.ErrInvalidInput)

	d.Train = append(d.Train, objective.Observation{Pre: 9})
	_, err = objective.NewLogarithmicScore(d, 1)
	assert.ErrorIs(t, err, objective.ErrDimensionMismatch)

	_, err = objective.NewLogarithmicScore(predictionFixture(t), -1)
	assert.ErrorIs(t, err, objective.ErrInvalidInput)
	_, err = objective.NewQuadraticScore(nil)
	assert.ErrorIs(t, err, objective.ErrInvalidInput)
}

// TestLogarithmicScore_Leaves checks the smoothed log loss per pre state.
func TestLogarithmicScore_Leaves(t *testing.T) {
	obj, err := objective.NewLogarithmicScore(predictionFixture(t), 1)
	require.NoError(t, err)
	assert.False(t, obj.Maximize())
	assert.Equal(t, 5, obj.Atoms())

	ls := leaves(t, obj)

	// pre 0: train counts + prior = [3 3 2 2 2], one test hit in bin 1
	v0 := ls[0].(*objective.ScoreValue)
	assert.Equal(t, []float64{3, 3, 2, 2, 2}, v0.Train)
	assert.InDelta(t, 12, v0.TrainTotal, eps)
	assert.InDelta(t, math.Log10(12)-math.Log10(3), v0.Score, eps)

	// pre 3: prior only, three test hits in bin 0
	v3 := ls[3].(*objective.ScoreValue)
	assert.InDelta(t, 3*math.Log10(5), v3.Score, eps)

	// pre 1: no test mass
	assert.Zero(t, ls[1].(*objective.ScoreValue).Score)

	s, err := obj.Scalar(ls[3], 123)
	require.NoError(t, err)
	assert.InDelta(t, v3.Score, s, eps)
	assert.Zero(t, obj.Param(0.7))
	assert.Zero(t, obj.UnitDistance(0, 1))
}

// TestLogarithmicScore_Decomposable compares nested and flat merges.
func TestLogarithmicScore_Decomposable(t *testing.T) {
	obj, err := objective.NewLogarithmicScore(predictionFixture(t), 1)
	require.NoError(t, err)
	ls := leaves(t, obj)

	ab, err := obj.Combine(ls[2], ls[3])
	require.NoError(t, err)
	abc, err := obj.Combine(ab, ls[4])
	require.NoError(t, err)
	flat, err := obj.CombineMany(ls[2:])
	require.NoError(t, err)
	assertVectorsClose(t, flat, abc)

	// merged train [1+1+2, 4+1+2, 2+1+2, 1+1+2, 1+1+1] = [4 7 5 4 3], total 23
	// test [3 0 2 4 0], total 9
	want := 9*math.Log10(23) - 3*math.Log10(4) - 2*math.Log10(5) - 4*math.Log10(4)
	assert.InDelta(t, want, flat.(*objective.ScoreValue).Score, eps)

	sum, err := obj.Sum([]objective.Value{ls[0], flat})
	require.NoError(t, err)
	assert.InDelta(t, ls[0].(*objective.ScoreValue).Score+want, sum.(*objective.ScoreValue).Score, eps)
}

// TestLogarithmicScore_GlobalFallback uses the global distribution for
// subsets without training mass.
func TestLogarithmicScore_GlobalFallback(t *testing.T) {
	d, err := objective.NewDataset(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.AddTrain(0, 0, 3))
	require.NoError(t, d.AddTrain(0, 1, 1))
	require.NoError(t, d.AddTest(1, 1, 2))

	obj, err := objective.NewLogarithmicScore(d, 0)
	require.NoError(t, err)
	v, err := obj.Leaf(1)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Log10(4)-2*math.Log10(1), v.(*objective.ScoreValue).Score, eps)
}

// TestQuadraticScore checks the Brier-style score on a tiny dataset.
func TestQuadraticScore(t *testing.T) {
	d, err := objective.NewDataset(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.AddTrain(0, 0, 3))
	require.NoError(t, d.AddTrain(0, 1, 1))
	require.NoError(t, d.AddTrain(1, 1, 2))
	require.NoError(t, d.AddTest(0, 0, 1))
	require.NoError(t, d.AddTest(1, 1, 1))

	obj, err := objective.NewQuadraticScore(d)
	require.NoError(t, err)
	assert.True(t, obj.Maximize())
	ls := leaves(t, obj)

	// pre 0: q = [0.75 0.25], Σq² = 0.625, test bin 0 once, global test 2
	assert.InDelta(t, (1.5-0.625)/2, ls[0].(*objective.ScoreValue).Score, eps)
	// pre 1: q = [0 1], Σq² = 1, test bin 1 once
	assert.InDelta(t, (2-1.0)/2, ls[1].(*objective.ScoreValue).Score, eps)

	// merged: q = [0.5 0.5], Σq² = 0.5, each test scores (1 − 0.5)/2
	all, err := obj.CombineMany(ls)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, all.(*objective.ScoreValue).Score, eps)

	_, err = obj.Normalize(&objective.ScoreValue{}, nil)
	assert.ErrorIs(t, err, objective.ErrObjectiveNotReady)
}
