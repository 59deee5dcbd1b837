// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/partition"
)

// style is how one dimension prints its element lists.
type style int

const (
	styleInterval style = iota
	styleArc
	styleSet
)

// Labeler maps parts to human-readable labels.
type Labeler struct {
	labels [][]string
	styles []style
}

// NewLabeler pairs a lattice with one label list per dimension (a single list
// unless l is a product).
func NewLabeler(l lattice.Lattice, labels [][]string) (*Labeler, error) {
	dims := []lattice.Lattice{l}
	if p, ok := l.(*lattice.Product); ok {
		dims = p.Dimensions()
	}
	if len(labels) != len(dims) {
		return nil, fmt.Errorf("NewLabeler: %d label lists for %d dimensions: %w", len(labels), len(dims), ErrLabelMismatch)
	}
	lb := &Labeler{labels: labels, styles: make([]style, len(dims))}
	for d, dim := range dims {
		if len(labels[d]) != dim.AtomicCount() {
			return nil, fmt.Errorf("NewLabeler: dimension %d: %d labels for %d atoms: %w",
				d, len(labels[d]), dim.AtomicCount(), ErrLabelMismatch)
		}
		switch dim.Kind() {
		case lattice.KindOrdered, lattice.KindHierarchy:
			lb.styles[d] = styleInterval
		case lattice.KindRing:
			lb.styles[d] = styleArc
		default:
			lb.styles[d] = styleSet
		}
	}

	return lb, nil
}

// Part labels a part. Product parts need Components.
func (lb *Labeler) Part(p partition.Part) string {
	if len(lb.styles) == 1 && p.Components == nil {
		return lb.format(0, p.Elements)
	}
	parts := make([]string, len(p.Components))
	for d, els := range p.Components {
		parts[d] = "(" + lb.format(d, els) + ")"
	}

	return strings.Join(parts, "x")
}

func (lb *Labeler) format(d int, els []int) string {
	names := lb.labels[d]
	if len(els) == 1 {
		return names[els[0]]
	}
	switch lb.styles[d] {
	case styleInterval:
		return names[els[0]] + "-" + names[els[len(els)-1]]
	case styleArc:
		start, end := arcBounds(els, len(names))
		return names[start] + "-" + names[end]
	default:
		out := make([]string, len(els))
		for i, e := range els {
			out[i] = names[e]
		}
		return "{" + strings.Join(out, ",") + "}"
	}
}

// arcBounds finds the first and last element of an arc given its sorted
// elements on a circle of n: the arc wraps when it holds both 0 and n−1.
func arcBounds(els []int, n int) (start, end int) {
	start, end = els[0], els[len(els)-1]
	if len(els) == n || start != 0 || end != n-1 {
		return start, end
	}
	for i := 1; i < len(els); i++ {
		if els[i] != els[i-1]+1 {
			return els[i], els[i-1]
		}
	}

	return start, end
}
