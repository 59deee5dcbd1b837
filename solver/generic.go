// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/objective"
)

// frame is one pending subset of the DAG walk with the refinements fetched
// when it was first expanded.
type frame struct {
	id   lattice.SubsetRef
	refs []lattice.Refinement
}

// solveGeneric evaluates the DP from the top subset with an explicit stack.
// A subset is expanded once (unvisited → valueComputed, its unoptimized
// members pushed above it) and resolved once all members are optimized.
// Shared members reached again are skipped by their state.
//
// Complexity:
//
//	Time   = O(V + Σ |R|) objective calls and additions, V the subsets below
//	         the top and Σ |R| the total refinement membership
//	Memory = O(V) for the state arrays and the stack
func (s *Solver) solveGeneric(obj objective.Objective) error {
	maximize := obj.Maximize()
	stack := []frame{{id: s.lat.Top()}}
	visited := 0
	for len(stack) > 0 {
		top := len(stack) - 1
		id := stack[top].id
		switch s.stateOf(id) {
		case optimized:
			stack = stack[:top]

		case unvisited:
			if s.lat.Feasible(id) {
				v, err := s.own(obj, id)
				if err != nil {
					return fmt.Errorf("subset %d: %w", id, err)
				}
				s.best[id] = v
			}
			refs, err := s.lat.Refinements(id)
			if err != nil {
				return err
			}
			stack[top].refs = refs
			s.mark(id, valueComputed)
			visited++
			for i := len(refs) - 1; i >= 0; i-- {
				for j := len(refs[i]) - 1; j >= 0; j-- {
					if m := refs[i][j]; s.stateOf(m) == unvisited {
						stack = append(stack, frame{id: m})
					}
				}
			}

		case valueComputed:
			if err := s.resolve(maximize, id, stack[top].refs); err != nil {
				return err
			}
			stack = stack[:top]
		}
	}
	s.log.V(2).Info("dag solved", "visited", visited, "subsets", s.lat.SubsetCount())

	return nil
}

// resolve picks the winner for id among keeping it whole (when feasible) and
// each refinement, all of whose members are optimized.
func (s *Solver) resolve(maximize bool, id lattice.SubsetRef, refs []lattice.Refinement) error {
	feasible := s.lat.Feasible(id)
	best, choice := s.best[id], int32(noCut)
	for i, r := range refs {
		sum := 0.0
		for _, m := range r {
			if s.stateOf(m) != optimized {
				panic(fmt.Sprintf("solver: member %d of subset %d resolved before it", m, id))
			}
			sum += s.best[m]
		}
		if (!feasible && choice == noCut) || better(maximize, sum, best) {
			best, choice = sum, int32(i)
		}
	}
	if !feasible && choice == noCut {
		return fmt.Errorf("subset %d is neither feasible nor refinable: %w", id, lattice.ErrInvalidStructure)
	}
	s.best[id] = best
	s.choice[id] = choice
	s.mark(id, optimized)

	return nil
}
