// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optpart/core"
)

// TestNewGraph_Size checks vertex count bookkeeping and the negative-size sentinel.
func TestNewGraph_Size(t *testing.T) {
	_, err := core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrNegativeSize)

	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Empty(t, g.Edges())

	g, err = core.NewGraph(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(-1))
}

// TestGraph_AddEdgeConstraints covers every AddEdge rejection path.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 3), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 1), core.ErrLoopNotAllowed)

	require.NoError(t, g.AddEdge(0, 1))
	assert.ErrorIs(t, g.AddEdge(1, 0), core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_NeighborsSorted verifies adjacency is symmetric and ascending.
func TestGraph_NeighborsSorted(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for _, e := range [][2]int{{2, 4}, {2, 0}, {2, 3}, {1, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	nbrs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, nbrs)

	deg, err := g.Degree(4)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
	assert.True(t, g.HasEdge(4, 2))
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 9))

	_, err = g.Neighbors(7)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Degree(-2)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	// returned slice is a copy
	nbrs[0] = 99
	again, _ := g.Neighbors(2)
	assert.Equal(t, 0, again[0])
}

// TestGraph_EdgesOrderAndClone checks Edges ordering and Clone independence.
func TestGraph_EdgesOrderAndClone(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 0))

	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}}, g.Edges())

	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 3))
	assert.Equal(t, 4, c.EdgeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.HasEdge(2, 3))
}
