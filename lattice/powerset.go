// SPDX-License-Identifier: MIT
// File: powerset.go
// Role: unconstrained lattice of every nonempty subset of N atoms.
//
// Subset with bitmask m has id m−1; submasks are numerically smaller, so ids
// stay topological. Refinements are the 2-splits {A, m\A} with A holding the
// lowest element of m, listed by increasing A.

package lattice

import (
	"fmt"
	"math/bits"
)

// Powerset is the lattice of all nonempty subsets of a small universe.
type Powerset struct {
	base
	identity []int
}

var _ Lattice = (*Powerset)(nil)

// NewPowerset builds the lattice over n atoms, 1 ≤ n ≤ MaxPowersetAtoms.
// Complexity: 2^n−1 subsets; a subset of size m has 2^(m−1)−1 refinements,
// O(3^n) splits over the whole lattice.
func NewPowerset(n int, opts ...Option) (*Powerset, error) {
	o := resolve(opts)
	if n < 1 {
		return nil, fmt.Errorf("NewPowerset(%d): %w", n, ErrInvalidStructure)
	}
	if n > o.MaxPowersetAtoms {
		return nil, fmt.Errorf("NewPowerset(%d): cap %d: %w", n, o.MaxPowersetAtoms, ErrTooLarge)
	}
	p := &Powerset{base: newBase(KindPowerset, o), identity: make([]int, n)}
	for i := range p.identity {
		p.identity[i] = i
	}
	p.atoms = n
	p.count = (1 << uint(n)) - 1
	pow3 := 1
	for i := 0; i < n; i++ {
		pow3 *= 3
	}
	p.logBuilt((pow3-(2<<uint(n))+1)/2, "size", n)

	return p, nil
}

func (p *Powerset) mask(s SubsetRef) uint64 { return uint64(s) + 1 }

func (p *Powerset) IsAtomic(s SubsetRef) bool {
	return p.valid(s) && bits.OnesCount64(p.mask(s)) == 1
}

func (p *Powerset) Feasible(s SubsetRef) bool { return p.valid(s) }

func (p *Powerset) Atom(i int) (SubsetRef, error) {
	if i < 0 || i >= p.atoms {
		return 0, fmt.Errorf("Atom(%d): %w", i, ErrSubsetNotFound)
	}

	return SubsetRef(uint64(1)<<uint(i) - 1), nil
}

func (p *Powerset) Lookup(elements []int) (SubsetRef, error) {
	sorted, err := normalizeElements("Lookup", elements, p.atoms)
	if err != nil {
		return 0, err
	}
	var m uint64
	for _, e := range sorted {
		m |= 1 << uint(e)
	}

	return SubsetRef(m - 1), nil
}

func (p *Powerset) Elements(s SubsetRef) ([]int, error) {
	if err := p.checkRef("Elements", s); err != nil {
		return nil, err
	}

	return maskElements(p.mask(s), p.identity), nil
}

func (p *Powerset) Refinements(s SubsetRef) ([]Refinement, error) {
	if err := p.checkRef("Refinements", s); err != nil {
		return nil, err
	}
	m := p.mask(s)
	low := m & -m
	rest := m ^ low
	if rest == 0 {
		return nil, nil
	}
	out := make([]Refinement, 0, (1<<uint(bits.OnesCount64(rest)))-1)
	for sub := uint64(0); sub != rest; sub = (sub - rest) & rest {
		a := low | sub
		out = append(out, Refinement{SubsetRef(a - 1), SubsetRef((m ^ a) - 1)})
	}

	return out, nil
}

func (p *Powerset) ComputeValues() error { return p.compute(p) }

func (p *Powerset) atomOf(s SubsetRef) int { return bits.TrailingZeros64(p.mask(s)) }

func (p *Powerset) firstRefinement(s SubsetRef) Refinement {
	m := p.mask(s)
	low := m & -m

	return Refinement{SubsetRef(low - 1), SubsetRef((m ^ low) - 1)}
}
