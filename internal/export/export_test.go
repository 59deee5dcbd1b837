// SPDX-License-Identifier: MIT

package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optpart/builder"
	"github.com/katalvlaran/optpart/internal/export"
	"github.com/katalvlaran/optpart/internal/problem"
	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/partition"
	"github.com/katalvlaran/optpart/solver"
)

func part(els ...int) partition.Part { return partition.Part{Elements: els} }

func TestLabeler_Styles(t *testing.T) {
	ord, err := lattice.NewOrdered(4)
	require.NoError(t, err)
	lb, err := export.NewLabeler(ord, [][]string{{"a", "b", "c", "d"}})
	require.NoError(t, err)
	assert.Equal(t, "b-d", lb.Part(part(1, 2, 3)))
	assert.Equal(t, "c", lb.Part(part(2)))

	ring, err := lattice.NewRing(6)
	require.NoError(t, err)
	lb, err = export.NewLabeler(ring, [][]string{{"r0", "r1", "r2", "r3", "r4", "r5"}})
	require.NoError(t, err)
	assert.Equal(t, "r4-r0", lb.Part(part(0, 4, 5)))
	assert.Equal(t, "r1-r3", lb.Part(part(1, 2, 3)))
	assert.Equal(t, "r0-r5", lb.Part(part(0, 1, 2, 3, 4, 5)))

	g, err := builder.BuildGraph(3, nil, builder.Path(3))
	require.NoError(t, err)
	gl, err := lattice.NewGraph(g)
	require.NoError(t, err)
	lb, err = export.NewLabeler(gl, [][]string{{"x", "y", "z"}})
	require.NoError(t, err)
	assert.Equal(t, "{x,y}", lb.Part(part(0, 1)))

	rows, err := lattice.NewOrdered(2)
	require.NoError(t, err)
	cols, err := lattice.NewRing(3)
	require.NoError(t, err)
	prod, err := lattice.NewProduct([]lattice.Lattice{rows, cols})
	require.NoError(t, err)
	lb, err = export.NewLabeler(prod, [][]string{{"lo", "hi"}, {"p", "q", "s"}})
	require.NoError(t, err)
	assert.Equal(t, "(lo-hi)x(s-p)", lb.Part(partition.Part{
		Elements:   []int{0, 2, 3, 5},
		Components: [][]int{{0, 1}, {0, 2}},
	}))

	_, err = export.NewLabeler(prod, [][]string{{"lo", "hi"}})
	assert.ErrorIs(t, err, export.ErrLabelMismatch)
	_, err = export.NewLabeler(ord, [][]string{{"a"}})
	assert.ErrorIs(t, err, export.ErrLabelMismatch)
}

const fixtureA = `
structure: {kind: ordered, size: 5, labels: [a, b, c, d, e]}
objective:
  kind: relative-entropy
  values: [24, 30, 0, 4, 34]
  references: [100, 110, 10, 20, 50]
  normalize: true
`

func frontierA(t *testing.T) (*problem.Problem, []*partition.Partition) {
	t.Helper()
	p, err := problem.Parse([]byte(fixtureA))
	require.NoError(t, err)
	s, err := solver.New(p.Lattice)
	require.NoError(t, err)
	front, err := s.Frontier(0.001)
	require.NoError(t, err)

	return p, front
}

func TestWriteParts(t *testing.T) {
	p, front := frontierA(t)
	lb, err := export.NewLabeler(p.Lattice, p.Labels)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteParts(&buf, p.Objective, lb, front))
	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 1+5+4+2+1)
	assert.Equal(t, export.PartsHeader, rows[0])
	assert.Equal(t, []string{"0", "0", "a", "24", "100", "0", "0"}, rows[1])
	assert.Equal(t, []string{"3", "0.759765625", "a-e", "92", "290", "1", "1"}, rows[len(rows)-1])
}

func TestWriteSummary(t *testing.T) {
	p, front := frontierA(t)
	var buf bytes.Buffer
	require.NoError(t, export.WriteSummary(&buf, p.Objective, front))
	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 5)
	assert.Equal(t, export.SummaryHeader, rows[0])
	assert.Equal(t, []string{"0", "0", "0", "5", "0", "0", "0"}, rows[1])
	assert.Equal(t, "1", rows[4][3])

	assert.ErrorIs(t, export.WriteSummary(nil, p.Objective, front), export.ErrNilWriter)
}
