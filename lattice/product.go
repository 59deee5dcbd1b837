// SPDX-License-Identifier: MIT
// File: product.go
// Role: n-ary product of sub-lattices.
//
// A product subset is a tuple (s0, ..., s_{k−1}) of component subsets with
// mixed-radix id Σ s_d·Π_{e<d} count_e (dimension 0 least significant).
// Replacing one component by a refinement member lowers that digit, so ids
// stay topological and the top tuple is the last id.
//
// Elements are flattened row-major, dimension 0 most significant:
// (e0, ..., e_{k−1}) ↦ ((e0·M1 + e1)·M2 + e2)... with M_d atoms per dimension.
// Refinements are generated on demand, one per (dimension, component
// refinement) pair, in dimension order.

package lattice

import "fmt"

// Product is the cross-product of k ≥ 1 sub-lattices.
type Product struct {
	base
	dims    []Lattice
	stride  []int // subset id stride per dimension
	atomDiv []int // element stride per dimension (row-major)
}

var _ Lattice = (*Product)(nil)

// NewProduct combines dims. It fails with ErrInvalidStructure on an empty or
// nil dimension and ErrTooLarge when the tuple arena would exceed its cap.
//
// Complexity:
//
//	Subsets     = Π_d |S_d|
//	Refinements = Σ_d R_d·Π_{e≠d} |S_e|, R_d the refinements of dimension d
//	Build       = O(k); tuples and their refinements are derived from ids on demand
func NewProduct(dims []Lattice, opts ...Option) (*Product, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("NewProduct: no dimensions: %w", ErrInvalidStructure)
	}
	p := &Product{
		base:    newBase(KindProduct, resolve(opts)),
		dims:    append([]Lattice(nil), dims...),
		stride:  make([]int, len(dims)),
		atomDiv: make([]int, len(dims)),
	}

	count, atoms := 1, 1
	for d, dim := range dims {
		if dim == nil || dim.SubsetCount() < 1 {
			return nil, fmt.Errorf("NewProduct: dimension %d empty: %w", d, ErrInvalidStructure)
		}
		p.stride[d] = count
		count *= dim.SubsetCount()
		atoms *= dim.AtomicCount()
		if count > maxProductSubsets {
			return nil, fmt.Errorf("NewProduct: more than %d subsets: %w", maxProductSubsets, ErrTooLarge)
		}
	}
	div := 1
	for d := len(dims) - 1; d >= 0; d-- {
		p.atomDiv[d] = div
		div *= dims[d].AtomicCount()
	}
	p.atoms = atoms
	p.count = count
	p.log.V(1).Info("lattice built", "atoms", atoms, "subsets", count, "dimensions", len(dims))

	return p, nil
}

// Dimensions returns the sub-lattices.
func (p *Product) Dimensions() []Lattice { return append([]Lattice(nil), p.dims...) }

// Components decomposes s into its per-dimension subsets.
func (p *Product) Components(s SubsetRef) ([]SubsetRef, error) {
	if err := p.checkRef("Components", s); err != nil {
		return nil, err
	}

	return p.components(s), nil
}

func (p *Product) components(s SubsetRef) []SubsetRef {
	out := make([]SubsetRef, len(p.dims))
	rem := int(s)
	for d, dim := range p.dims {
		out[d] = SubsetRef(rem % dim.SubsetCount())
		rem /= dim.SubsetCount()
	}

	return out
}

// Compose returns the product subset of a component tuple.
func (p *Product) Compose(components []SubsetRef) (SubsetRef, error) {
	if len(components) != len(p.dims) {
		return 0, fmt.Errorf("Compose: %d components, %d dimensions: %w",
			len(components), len(p.dims), ErrDimensionMismatch)
	}
	id := 0
	for d, c := range components {
		if c < 0 || int(c) >= p.dims[d].SubsetCount() {
			return 0, fmt.Errorf("Compose: dimension %d subset %d: %w", d, c, ErrSubsetNotFound)
		}
		id += int(c) * p.stride[d]
	}

	return SubsetRef(id), nil
}

func (p *Product) IsAtomic(s SubsetRef) bool {
	if !p.valid(s) {
		return false
	}
	for d, c := range p.components(s) {
		if !p.dims[d].IsAtomic(c) {
			return false
		}
	}

	return true
}

func (p *Product) Feasible(s SubsetRef) bool {
	if !p.valid(s) {
		return false
	}
	for d, c := range p.components(s) {
		if !p.dims[d].Feasible(c) {
			return false
		}
	}

	return true
}

// Atom maps a flat element index to its atomic tuple.
func (p *Product) Atom(i int) (SubsetRef, error) {
	if i < 0 || i >= p.atoms {
		return 0, fmt.Errorf("Atom(%d): %w", i, ErrSubsetNotFound)
	}
	comps := make([]SubsetRef, len(p.dims))
	for d, dim := range p.dims {
		a, err := dim.Atom(i / p.atomDiv[d] % dim.AtomicCount())
		if err != nil {
			return 0, fmt.Errorf("Atom(%d): %w", i, err)
		}
		comps[d] = a
	}

	return p.Compose(comps)
}

// Lookup accepts a flat element set that is a full cross-product of
// per-dimension feasible subsets.
func (p *Product) Lookup(elements []int) (SubsetRef, error) {
	sorted, err := normalizeElements("Lookup", elements, p.atoms)
	if err != nil {
		return 0, err
	}
	comps := make([]SubsetRef, len(p.dims))
	size := 1
	for d, dim := range p.dims {
		seen := make(map[int]bool)
		var coords []int
		for _, e := range sorted {
			x := e / p.atomDiv[d] % dim.AtomicCount()
			if !seen[x] {
				seen[x] = true
				coords = append(coords, x)
			}
		}
		c, err := dim.Lookup(coords)
		if err != nil {
			return 0, fmt.Errorf("Lookup: dimension %d: %w", d, err)
		}
		comps[d] = c
		size *= len(coords)
	}
	if size != len(sorted) {
		return 0, fmt.Errorf("Lookup(%v): not a cross-product: %w", elements, ErrSubsetNotFound)
	}

	return p.Compose(comps)
}

// Elements flattens the cross-product of the component element lists.
func (p *Product) Elements(s SubsetRef) ([]int, error) {
	comps, err := p.Components(s)
	if err != nil {
		return nil, err
	}
	out := []int{0}
	for d, c := range comps {
		els, err := p.dims[d].Elements(c)
		if err != nil {
			return nil, err
		}
		next := make([]int, 0, len(out)*len(els))
		for _, prefix := range out {
			for _, e := range els {
				next = append(next, prefix+e*p.atomDiv[d])
			}
		}
		out = next
	}

	return out, nil
}

// ComponentElements returns the per-dimension element lists of s.
func (p *Product) ComponentElements(s SubsetRef) ([][]int, error) {
	comps, err := p.Components(s)
	if err != nil {
		return nil, err
	}
	out := make([][]int, len(comps))
	for d, c := range comps {
		if out[d], err = p.dims[d].Elements(c); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (p *Product) Refinements(s SubsetRef) ([]Refinement, error) {
	comps, err := p.Components(s)
	if err != nil {
		return nil, err
	}
	var out []Refinement
	for d, c := range comps {
		refs, err := p.dims[d].Refinements(c)
		if err != nil {
			return nil, fmt.Errorf("Refinements: dimension %d: %w", d, err)
		}
		for _, r := range refs {
			out = append(out, p.substitute(s, d, c, r))
		}
	}

	return out, nil
}

// substitute replaces component c of dimension d in s by each member of r.
func (p *Product) substitute(s SubsetRef, d int, c SubsetRef, r Refinement) Refinement {
	out := make(Refinement, len(r))
	for i, m := range r {
		out[i] = s + SubsetRef((int(m)-int(c))*p.stride[d])
	}

	return out
}

func (p *Product) ComputeValues() error { return p.compute(p) }

func (p *Product) atomOf(s SubsetRef) int {
	idx := 0
	for d, c := range p.components(s) {
		els, _ := p.dims[d].Elements(c) // atomic: exactly one element
		idx += els[0] * p.atomDiv[d]
	}

	return idx
}

// firstRefinement refines the first non-atomic dimension by its first refinement.
func (p *Product) firstRefinement(s SubsetRef) Refinement {
	for d, c := range p.components(s) {
		if p.dims[d].IsAtomic(c) {
			continue
		}
		if src, ok := p.dims[d].(valueSource); ok {
			return p.substitute(s, d, c, src.firstRefinement(c))
		}
		refs, err := p.dims[d].Refinements(c)
		if err != nil || len(refs) == 0 {
			panic(fmt.Sprintf("lattice: product dimension %d subset %d has no refinement", d, c))
		}

		return p.substitute(s, d, c, refs[0])
	}
	panic(fmt.Sprintf("lattice: product subset %d is atomic", s))
}
