// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/objective"
)

// solveOrdered runs the interval recurrence
//
//	best[i,j] = opt(own[i,j], best[i,c−1] + best[c,j] for c in (i,j])
//
// bottom-up by length. Choice c−i−1 matches the order of Ordered.Refinements.
//
// Complexity: O(n³) time, O(n²) memory, n the number of atoms.
func (s *Solver) solveOrdered(l *lattice.Ordered, obj objective.Objective) error {
	n := l.Size()
	maximize := obj.Maximize()
	for length := 1; length <= n; length++ {
		for start := 0; start+length <= n; start++ {
			id, _ := l.Index(start, length) // in range
			best, err := s.own(obj, id)
			if err != nil {
				return err
			}
			choice := int32(noCut)
			for c := 1; c < length; c++ {
				left, _ := l.Index(start, c)
				right, _ := l.Index(start+c, length-c)
				if sum := s.best[left] + s.best[right]; better(maximize, sum, best) {
					best, choice = sum, int32(c-1)
				}
			}
			s.best[id] = best
			s.choice[id] = choice
			s.mark(id, optimized)
		}
	}

	return nil
}

// solveRing runs the interval recurrence on arcs, then tries every pair of
// boundaries a < b on the whole ring, in the order of Ring.Refinements.
//
// Complexity: O(n³) time for the arcs plus O(n²) wrap candidates, O(n²) memory.
func (s *Solver) solveRing(l *lattice.Ring, obj objective.Objective) error {
	n := l.Size()
	maximize := obj.Maximize()
	for length := 1; length < n; length++ {
		for start := 0; start < n; start++ {
			id, _ := l.Arc(start, length) // in range
			best, err := s.own(obj, id)
			if err != nil {
				return err
			}
			choice := int32(noCut)
			for c := 1; c < length; c++ {
				left, _ := l.Arc(start, c)
				right, _ := l.Arc((start+c)%n, length-c)
				if sum := s.best[left] + s.best[right]; better(maximize, sum, best) {
					best, choice = sum, int32(c-1)
				}
			}
			s.best[id] = best
			s.choice[id] = choice
			s.mark(id, optimized)
		}
	}

	top := l.Top()
	best, err := s.own(obj, top)
	if err != nil {
		return err
	}
	choice, k := int32(noCut), int32(0)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			first, _ := l.Arc(a, b-a)
			second, _ := l.Arc(b, n-(b-a))
			if sum := s.best[first] + s.best[second]; better(maximize, sum, best) {
				best, choice = sum, k
			}
			k++
		}
	}
	s.best[top] = best
	s.choice[top] = choice
	s.mark(top, optimized)

	return nil
}
