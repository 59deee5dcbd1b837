// SPDX-License-Identifier: MIT

package lattice_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optpart/bfs"
	"github.com/katalvlaran/optpart/builder"
	"github.com/katalvlaran/optpart/core"
	"github.com/katalvlaran/optpart/lattice"
)

func maskVertices(mask uint64) []int {
	var out []int
	for m := mask; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}

	return out
}

func connected(t *testing.T, g *core.Graph, mask uint64) bool {
	t.Helper()
	ok, err := bfs.IsConnected(g, maskVertices(mask))
	require.NoError(t, err)

	return ok
}

// assertMatchesBruteForce compares the lattice with a subset-by-subset
// connectivity check: the same feasible sets, and for each of them exactly
// the two-block splits into connected halves, each listed once.
func assertMatchesBruteForce(t *testing.T, g *core.Graph, l *lattice.Graph) {
	t.Helper()
	n := g.VertexCount()
	full := uint64(1)<<uint(n) - 1
	rooted := len(l.Components()) > 1

	feasible := 0
	for mask := uint64(1); mask <= full; mask++ {
		id, err := l.Lookup(maskVertices(mask))
		if !connected(t, g, mask) {
			if rooted && mask == full {
				require.NoError(t, err)
				assert.False(t, l.Feasible(id))
				continue
			}
			require.ErrorIs(t, err, lattice.ErrSubsetNotFound, "mask %b", mask)
			continue
		}
		require.NoError(t, err, "mask %b", mask)
		require.True(t, l.Feasible(id))
		feasible++

		want := 0
		low := mask & -mask
		for sub := (mask - 1) & mask; sub != 0; sub = (sub - 1) & mask {
			if sub&low == 0 {
				continue
			}
			if connected(t, g, sub) && connected(t, g, mask^sub) {
				want++
			}
		}
		refs, err := l.Refinements(id)
		require.NoError(t, err)
		require.Len(t, refs, want, "mask %b", mask)

		seen := make(map[[2]lattice.SubsetRef]bool, len(refs))
		for _, r := range refs {
			require.Len(t, r, 2)
			key := [2]lattice.SubsetRef{r[0], r[1]}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			require.False(t, seen[key], "duplicate split of mask %b", mask)
			seen[key] = true
		}
	}
	extra := 0
	if rooted {
		extra = 1
	}
	assert.Equal(t, feasible+extra, l.SubsetCount())
}

// TestGraph_FixtureB checks the five-vertex example graph in full.
func TestGraph_FixtureB(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.EdgeList([][2]int{{0, 4}, {1, 4}, {1, 2}, {1, 3}, {2, 3}}))
	require.NoError(t, err)
	l, err := lattice.NewGraph(g, lattice.WithRequireConnected())
	require.NoError(t, err)

	assert.Equal(t, lattice.KindGraph, l.Kind())
	assert.Equal(t, 5, l.AtomicCount())
	assert.Len(t, l.Components(), 1)
	assert.Same(t, g, l.Source())
	assertExact(t, l)
	assertMatchesBruteForce(t, g, l)

	top, err := l.Elements(l.Top())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, top)

	_, err = l.Lookup([]int{0, 1})
	assert.ErrorIs(t, err, lattice.ErrSubsetNotFound)
	s, err := l.Lookup([]int{4, 0, 1})
	require.NoError(t, err)
	els, err := l.Elements(s)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, els)
}

// TestGraph_AllSmallGraphs runs the brute-force comparison over every
// labelled graph on up to five vertices.
func TestGraph_AllSmallGraphs(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for code := uint64(0); code < 1<<uint(builder.PairCount(n)); code++ {
			g, err := builder.BuildGraph(n, nil, builder.FromCode(n, code))
			require.NoError(t, err)
			l, err := lattice.NewGraph(g)
			require.NoError(t, err)
			assertExact(t, l)
			assertMatchesBruteForce(t, g, l)
		}
	}
}

// TestGraph_RandomGraphs samples graphs on six to eight vertices.
func TestGraph_RandomGraphs(t *testing.T) {
	if testing.Short() {
		t.Skip("sampled exhaustive check")
	}
	rng := rand.New(rand.NewSource(7))
	for _, tc := range []struct{ n, samples int }{{6, 60}, {7, 60}, {8, 16}} {
		n := tc.n
		for i := 0; i < tc.samples; i++ {
			code := rng.Uint64() & (uint64(1)<<uint(builder.PairCount(n)) - 1)
			g, err := builder.BuildGraph(n, nil, builder.FromCode(n, code))
			require.NoError(t, err)
			l, err := lattice.NewGraph(g)
			require.NoError(t, err)
			assertExact(t, l)
			assertMatchesBruteForce(t, g, l)
		}
	}
}

// TestGraph_EightVertexFamilies checks the regular eight-vertex topologies,
// from the sparsest connected shapes to the complete graph.
func TestGraph_EightVertexFamilies(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
	}{
		{"path", builder.Path(8)},
		{"cycle", builder.Cycle(8)},
		{"star", builder.Star(8)},
		{"wheel", builder.Wheel(8)},
		{"grid", builder.Grid(2, 4)},
		{"complete", builder.Complete(8)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(8, nil, tc.cons)
			require.NoError(t, err)
			l, err := lattice.NewGraph(g, lattice.WithRequireConnected())
			require.NoError(t, err)
			assertExact(t, l)
			assertMatchesBruteForce(t, g, l)
		})
	}
}

// TestGraph_Disconnected covers the synthetic root and RequireConnected.
func TestGraph_Disconnected(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.Path(2), builder.Shifted(2, builder.Path(3)))
	require.NoError(t, err)

	_, err = lattice.NewGraph(g, lattice.WithRequireConnected())
	assert.ErrorIs(t, err, lattice.ErrInvalidStructure)

	l, err := lattice.NewGraph(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3, 4}}, l.Components())
	// 3 sets in the pair, 6 in the path of three, plus the root
	assert.Equal(t, 10, l.SubsetCount())
	assert.False(t, l.Feasible(l.Top()))
	assert.False(t, l.IsAtomic(l.Top()))

	refs, err := l.Refinements(l.Top())
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, lattice.Refinement(l.ComponentTops()), refs[0])

	_, err = lattice.NewGraph(nil)
	assert.ErrorIs(t, err, lattice.ErrInvalidStructure)
}
