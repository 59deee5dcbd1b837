// SPDX-License-Identifier: MIT
// File: ring.go
// Role: arcs of a circle of N atoms.
//
// Arc (start, length), 1 ≤ length ≤ N−1, covers start, start+1, ... mod N
// and has id (length−1)·N + start. The whole ring is the single subset of
// length N, id N(N−1). A proper arc refines like an interval; the whole ring
// splits at any two boundaries a < b into the arcs [a, b−1] and [b, a−1].

package lattice

import (
	"fmt"
	"sort"
)

// Ring is the arc lattice over N ≥ 2 atoms arranged on a circle.
type Ring struct {
	base
	size int
}

var _ Lattice = (*Ring)(nil)

// NewRing builds the arc lattice over n ≥ 2 atoms.
func NewRing(n int, opts ...Option) (*Ring, error) {
	if n < 2 {
		return nil, fmt.Errorf("NewRing(%d): %w", n, ErrInvalidStructure)
	}
	r := &Ring{base: newBase(KindRing, resolve(opts)), size: n}
	r.atoms = n
	r.count = n*(n-1) + 1
	r.logBuilt(n*(n-1)*(n-2)/2+n*(n-1)/2, "size", n)

	return r, nil
}

// Size returns N.
func (r *Ring) Size() int { return r.size }

// Arc returns the id of the arc of the given start and length; length N
// denotes the whole ring whatever the start.
func (r *Ring) Arc(start, length int) (SubsetRef, error) {
	if start < 0 || start >= r.size || length < 1 || length > r.size {
		return 0, fmt.Errorf("Arc(%d,%d): %w", start, length, ErrSubsetNotFound)
	}

	return r.arc(start, length), nil
}

func (r *Ring) arc(start, length int) SubsetRef {
	if length == r.size {
		return SubsetRef(r.count - 1)
	}

	return SubsetRef((length-1)*r.size + start)
}

// Bounds returns the start and length of s. The whole ring reports start 0.
func (r *Ring) Bounds(s SubsetRef) (start, length int, err error) {
	if err = r.checkRef("Bounds", s); err != nil {
		return 0, 0, err
	}
	if int(s) == r.count-1 {
		return 0, r.size, nil
	}

	return int(s) % r.size, int(s)/r.size + 1, nil
}

func (r *Ring) IsAtomic(s SubsetRef) bool { return s >= 0 && int(s) < r.size }

func (r *Ring) Feasible(s SubsetRef) bool { return r.valid(s) }

func (r *Ring) Atom(i int) (SubsetRef, error) {
	if i < 0 || i >= r.size {
		return 0, fmt.Errorf("Atom(%d): %w", i, ErrSubsetNotFound)
	}

	return SubsetRef(i), nil
}

// Lookup accepts the elements of any arc, in any order.
func (r *Ring) Lookup(elements []int) (SubsetRef, error) {
	sorted, err := normalizeElements("Lookup", elements, r.size)
	if err != nil {
		return 0, err
	}
	if len(sorted) == r.size {
		return r.arc(0, r.size), nil
	}
	in := make([]bool, r.size)
	for _, e := range sorted {
		in[e] = true
	}
	// the arc starts at the only member whose predecessor is absent
	start := -1
	for _, e := range sorted {
		if !in[(e-1+r.size)%r.size] {
			if start >= 0 {
				return 0, fmt.Errorf("Lookup(%v): not an arc: %w", elements, ErrSubsetNotFound)
			}
			start = e
		}
	}

	return r.arc(start, len(sorted)), nil
}

func (r *Ring) Elements(s SubsetRef) ([]int, error) {
	start, length, err := r.Bounds(s)
	if err != nil {
		return nil, err
	}
	out := make([]int, length)
	for k := range out {
		out[k] = (start + k) % r.size
	}
	sort.Ints(out)

	return out, nil
}

// Refinements of a proper arc are its cut points in order. The whole ring
// lists boundary pairs (a, b), a < b, in lexicographic order.
func (r *Ring) Refinements(s SubsetRef) ([]Refinement, error) {
	start, length, err := r.Bounds(s)
	if err != nil {
		return nil, err
	}
	n := r.size
	if length == n {
		out := make([]Refinement, 0, n*(n-1)/2)
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				out = append(out, Refinement{r.arc(a, b-a), r.arc(b, n-(b-a))})
			}
		}

		return out, nil
	}
	out := make([]Refinement, 0, length-1)
	for c := 1; c < length; c++ {
		out = append(out, Refinement{r.arc(start, c), r.arc((start+c)%n, length-c)})
	}

	return out, nil
}

func (r *Ring) ComputeValues() error { return r.compute(r) }

func (r *Ring) atomOf(s SubsetRef) int { return int(s) }

func (r *Ring) firstRefinement(s SubsetRef) Refinement {
	start, length, _ := r.Bounds(s)
	if length == r.size {
		return Refinement{r.arc(0, 1), r.arc(1, r.size-1)}
	}

	return Refinement{r.arc(start, 1), r.arc((start+1)%r.size, length-1)}
}
