// SPDX-License-Identifier: MIT

package problem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optpart/internal/problem"
	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/objective"
)

const fixtureA = `
name: fixture-a
structure:
  kind: ordered
  size: 5
  labels: [a, b, c, d, e]
objective:
  kind: relative-entropy
  values: [24, 30, 0, 4, 34]
  references: [100, 110, 10, 20, 50]
  normalize: true
`

func TestParse_Ordered(t *testing.T) {
	p, err := problem.Parse([]byte(fixtureA))
	require.NoError(t, err)
	assert.Equal(t, "fixture-a", p.Name)
	assert.Equal(t, lattice.KindOrdered, p.Lattice.Kind())
	assert.Equal(t, "relative-entropy", p.Objective.Name())
	assert.True(t, p.Lattice.ValuesComputed())
	assert.Equal(t, [][]string{{"a", "b", "c", "d", "e"}}, p.Labels)

	top, err := p.Lattice.Value(p.Lattice.Top())
	require.NoError(t, err)
	assert.InDelta(t, 1, top.(*objective.EntropyValue).Reduction, 1e-12)
}

func TestParse_Structures(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		kind    lattice.Kind
		atoms   int
		subsets int
	}{
		{"ring", `
structure: {kind: ring, size: 4}
objective: {kind: information-criterion, values: [1, 2, 3, 4]}
`, lattice.KindRing, 4, 13},
		{"graph", `
structure:
  kind: graph
  size: 5
  edges: [[0, 4], [1, 4], [1, 2], [1, 3], [2, 3]]
  require_connected: true
objective: {kind: relative-entropy, values: [1, 2, 3, 4, 5]}
`, lattice.KindGraph, 5, 18},
		{"tree", `
structure:
  kind: hierarchy
  tree:
    children:
      - {}
      - children: [{}, {}]
objective: {kind: relative-entropy, values: [1, 2, 3]}
`, lattice.KindHierarchy, 3, 5},
		{"balanced", `
structure: {kind: hierarchy, depth: 2, arity: 2}
objective: {kind: relative-entropy, values: [1, 2, 3, 4]}
`, lattice.KindHierarchy, 4, 7},
		{"powerset", `
structure: {kind: powerset, size: 3}
objective: {kind: relative-entropy, values: [1, 2, 3]}
`, lattice.KindPowerset, 3, 7},
		{"product", `
structure:
  kind: product
  dimensions:
    - {kind: ordered, size: 2, labels: [lo, hi]}
    - {kind: ordered, size: 3}
objective: {kind: relative-entropy, values: [1, 2, 3, 4, 5, 6]}
`, lattice.KindProduct, 6, 18},
		{"bottleneck", `
structure: {kind: ordered, size: 2}
objective:
  kind: information-bottleneck
  chain:
    size: 2
    distribution: [0.5, 0.5]
    transition: [0.9, 0.2, 0.1, 0.8]
`, lattice.KindOrdered, 2, 3},
		{"score", `
structure: {kind: ordered, size: 3}
objective:
  kind: logarithmic-score
  prior: 1
  post_size: 2
  train: [[0, 0, 3], [1, 1, 2], [2, 1, 1]]
  test: [[0, 0, 1], [2, 1, 2]]
`, lattice.KindOrdered, 3, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := problem.Parse([]byte(tc.doc))
			require.NoError(t, err)
			assert.Equal(t, tc.kind, p.Lattice.Kind())
			assert.Equal(t, tc.atoms, p.Lattice.AtomicCount())
			assert.Equal(t, tc.subsets, p.Lattice.SubsetCount())
			assert.True(t, p.Lattice.ValuesComputed())
		})
	}
}

func TestParse_ProductLabels(t *testing.T) {
	p, err := problem.Parse([]byte(`
structure:
  kind: product
  dimensions:
    - {kind: ordered, size: 2, labels: [lo, hi]}
    - {kind: ring, size: 3}
objective: {kind: relative-entropy, values: [1, 2, 3, 4, 5, 6]}
`))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"lo", "hi"}, {"0", "1", "2"}}, p.Labels)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", ``, problem.ErrInvalidProblem},
		{"unknown field", "structure: {kind: ordered, size: 2, colour: red}\n", problem.ErrInvalidProblem},
		{"unknown structure", "structure: {kind: lattice}\nobjective: {kind: relative-entropy, values: [1]}\n", problem.ErrUnknownKind},
		{"unknown objective", "structure: {kind: ordered, size: 1}\nobjective: {kind: magic}\n", problem.ErrUnknownKind},
		{"bad size", "structure: {kind: ordered, size: 0}\nobjective: {kind: relative-entropy, values: [1]}\n", lattice.ErrInvalidStructure},
		{"atom mismatch", "structure: {kind: ordered, size: 3}\nobjective: {kind: relative-entropy, values: [1, 2]}\n", lattice.ErrDimensionMismatch},
		{"labels", "structure: {kind: ordered, size: 2, labels: [x]}\nobjective: {kind: relative-entropy, values: [1, 2]}\n", problem.ErrInvalidProblem},
		{"disconnected", `
structure: {kind: graph, size: 3, edges: [[0, 1]], require_connected: true}
objective: {kind: relative-entropy, values: [1, 2, 3]}
`, lattice.ErrInvalidStructure},
		{"negative value", "structure: {kind: ordered, size: 2}\nobjective: {kind: relative-entropy, values: [1, -2]}\n", objective.ErrInvalidInput},
		{"no chain", "structure: {kind: ordered, size: 2}\nobjective: {kind: information-bottleneck}\n", problem.ErrInvalidProblem},
		{"empty product", "structure: {kind: product}\nobjective: {kind: relative-entropy, values: [1]}\n", problem.ErrInvalidProblem},
		{"no tree", "structure: {kind: hierarchy}\nobjective: {kind: relative-entropy, values: [1]}\n", problem.ErrInvalidProblem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problem.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := problem.Build(nil)
	assert.ErrorIs(t, err, problem.ErrInvalidProblem)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureA), 0o600))
	p, err := problem.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Lattice.AtomicCount())

	_, err = problem.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
