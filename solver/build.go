// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/objective"
	"github.com/katalvlaran/optpart/partition"
)

// build follows the recorded choices from the top subset: a subset kept whole
// becomes a Part, a refined one is replaced by its winning members.
func (s *Solver) build(method string) (*partition.Partition, error) {
	obj, err := s.objective(method)
	if err != nil {
		return nil, err
	}
	product, _ := s.lat.(*lattice.Product)

	top := s.lat.Top()
	out := &partition.Partition{Score: s.best[top]}
	var values []objective.Value
	stack := []lattice.SubsetRef{top}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.stateOf(id) != optimized {
			return nil, fmt.Errorf("%s: subset %d not optimized: %w", method, id, lattice.ErrValuesNotComputed)
		}

		if c := s.choice[id]; c != noCut {
			refs, err := s.lat.Refinements(id)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
			r := refs[c]
			for i := len(r) - 1; i >= 0; i-- {
				stack = append(stack, r[i])
			}
			continue
		}

		part, err := s.part(product, id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		out.Parts = append(out.Parts, part)
		values = append(values, part.Value)
	}

	if out.Value, err = obj.Sum(values); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	out.Canonical()

	return out, nil
}

func (s *Solver) part(product *lattice.Product, id lattice.SubsetRef) (partition.Part, error) {
	els, err := s.lat.Elements(id)
	if err != nil {
		return partition.Part{}, err
	}
	v, err := s.lat.Value(id)
	if err != nil {
		return partition.Part{}, err
	}
	part := partition.Part{Elements: els, Value: v}
	if product != nil {
		if part.Components, err = product.ComponentElements(id); err != nil {
			return partition.Part{}, err
		}
	}

	return part, nil
}
