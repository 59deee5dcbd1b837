// SPDX-License-Identifier: MIT
// File: ordered.go
// Role: intervals of 0..N-1 in a triangular (length, start) table.
//
// Layout: interval [start, start+length-1] has id
//
//	j*N − j*(j−1)/2 + start,   j = length−1
//
// so all intervals of length 1 come first (id = start), then length 2, and
// so on; the full interval is the last id N(N+1)/2 − 1.

package lattice

import (
	"fmt"
	"sort"
)

// Ordered is the interval lattice over N ordered atoms.
type Ordered struct {
	base
	size    int
	starts  []int
	lengths []int
}

var _ Lattice = (*Ordered)(nil)

// NewOrdered builds the interval lattice over n ≥ 1 atoms.
// Complexity: O(n²) build for n(n+1)/2 subsets; their O(n³) refinements are
// listed on demand.
func NewOrdered(n int, opts ...Option) (*Ordered, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewOrdered(%d): %w", n, ErrInvalidStructure)
	}
	o := &Ordered{base: newBase(KindOrdered, resolve(opts)), size: n}
	o.atoms = n
	o.count = n * (n + 1) / 2
	o.starts = make([]int, o.count)
	o.lengths = make([]int, o.count)
	for length := 1; length <= n; length++ {
		for start := 0; start+length <= n; start++ {
			id := o.index(start, length)
			o.starts[id] = start
			o.lengths[id] = length
		}
	}
	o.logBuilt(o.count*(n-1)/3, "size", n)

	return o, nil
}

// Size returns N.
func (o *Ordered) Size() int { return o.size }

func (o *Ordered) index(start, length int) int {
	j := length - 1

	return j*o.size - j*(j-1)/2 + start
}

// Index returns the id of interval [start, start+length-1].
func (o *Ordered) Index(start, length int) (SubsetRef, error) {
	if length < 1 || start < 0 || start+length > o.size {
		return 0, fmt.Errorf("Index(%d,%d): %w", start, length, ErrSubsetNotFound)
	}

	return SubsetRef(o.index(start, length)), nil
}

// Interval returns the start and length of s.
func (o *Ordered) Interval(s SubsetRef) (start, length int, err error) {
	if err = o.checkRef("Interval", s); err != nil {
		return 0, 0, err
	}

	return o.starts[s], o.lengths[s], nil
}

func (o *Ordered) IsAtomic(s SubsetRef) bool { return o.valid(s) && o.lengths[s] == 1 }

func (o *Ordered) Feasible(s SubsetRef) bool { return o.valid(s) }

func (o *Ordered) Atom(i int) (SubsetRef, error) {
	if i < 0 || i >= o.size {
		return 0, fmt.Errorf("Atom(%d): %w", i, ErrSubsetNotFound)
	}

	return SubsetRef(i), nil
}

// Lookup accepts any permutation of a contiguous run.
func (o *Ordered) Lookup(elements []int) (SubsetRef, error) {
	sorted, err := normalizeElements("Lookup", elements, o.size)
	if err != nil {
		return 0, err
	}
	if sorted[len(sorted)-1]-sorted[0]+1 != len(sorted) {
		return 0, fmt.Errorf("Lookup(%v): not an interval: %w", elements, ErrSubsetNotFound)
	}

	return o.Index(sorted[0], len(sorted))
}

func (o *Ordered) Elements(s SubsetRef) ([]int, error) {
	if err := o.checkRef("Elements", s); err != nil {
		return nil, err
	}

	return span(o.starts[s], o.lengths[s]), nil
}

// Refinements lists the cuts c = 1..length−1 in order:
// [start, start+c−1] and [start+c, end].
func (o *Ordered) Refinements(s SubsetRef) ([]Refinement, error) {
	if err := o.checkRef("Refinements", s); err != nil {
		return nil, err
	}
	start, length := o.starts[s], o.lengths[s]
	out := make([]Refinement, 0, length-1)
	for c := 1; c < length; c++ {
		out = append(out, Refinement{
			SubsetRef(o.index(start, c)),
			SubsetRef(o.index(start+c, length-c)),
		})
	}

	return out, nil
}

func (o *Ordered) ComputeValues() error { return o.compute(o) }

func (o *Ordered) atomOf(s SubsetRef) int { return o.starts[s] }

func (o *Ordered) firstRefinement(s SubsetRef) Refinement {
	start, length := o.starts[s], o.lengths[s]

	return Refinement{SubsetRef(o.index(start, 1)), SubsetRef(o.index(start+1, length-1))}
}

// span returns start, start+1, ..., start+length-1.
func span(start, length int) []int {
	out := make([]int, length)
	for k := range out {
		out[k] = start + k
	}

	return out
}

// normalizeElements sorts a copy of elements and rejects empty input,
// duplicates and indices outside 0..limit-1.
func normalizeElements(method string, elements []int, limit int) ([]int, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("%s: empty element set: %w", method, ErrSubsetNotFound)
	}
	sorted := append([]int(nil), elements...)
	sort.Ints(sorted)
	for k, e := range sorted {
		if e < 0 || e >= limit {
			return nil, fmt.Errorf("%s: element %d outside 0..%d: %w", method, e, limit-1, ErrSubsetNotFound)
		}
		if k > 0 && sorted[k-1] == e {
			return nil, fmt.Errorf("%s: duplicate element %d: %w", method, e, ErrSubsetNotFound)
		}
	}

	return sorted, nil
}
