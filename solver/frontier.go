// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/optpart/partition"
)

// sample is one solved point of the unit interval.
type sample struct {
	unit float64
	part *partition.Partition
}

// span is a pending bisection interval.
type span struct {
	lo, hi sample
}

// Frontier returns the distinct optimal partitions met while bisecting the
// unit interval, ordered by unit. A span is split while its end partitions
// differ and Objective.UnitDistance exceeds threshold; consecutive equal
// partitions are then coalesced, keeping the first of each run.
//
// Complexity: every split costs one full solve. For a unit-based objective at
// most O(F·log2(1/threshold)) solves run, F the number of distinct
// partitions found; a parameter-free objective stops after the two end
// solves.
func (s *Solver) Frontier(threshold float64) ([]*partition.Partition, error) {
	const method = "Frontier"
	if !(threshold > 0) || math.IsInf(threshold, 1) {
		return nil, fmt.Errorf("%s(%g): %w", method, threshold, ErrInvalidThreshold)
	}
	obj, err := s.objective(method)
	if err != nil {
		return nil, err
	}

	at := func(unit float64) (sample, error) {
		p, err := s.partitionAt(method, obj.Param(unit), unit)
		if err != nil {
			return sample{}, err
		}

		return sample{unit: unit, part: p}, nil
	}
	lo, err := at(0)
	if err != nil {
		return nil, err
	}
	hi, err := at(1)
	if err != nil {
		return nil, err
	}

	samples := []sample{lo}
	stack := []span{{lo: lo, hi: hi}}
	solves := 2
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mid := obj.MidpointUnit(sp.lo.unit, sp.hi.unit)
		if partition.Equal(sp.lo.part, sp.hi.part) ||
			obj.UnitDistance(sp.lo.unit, sp.hi.unit) <= threshold ||
			!(mid > sp.lo.unit && mid < sp.hi.unit) {
			samples = append(samples, sp.hi)
			continue
		}
		m, err := at(mid)
		if err != nil {
			return nil, err
		}
		solves++
		s.log.V(2).Info("frontier split", "lo", sp.lo.unit, "mid", mid, "hi", sp.hi.unit, "parts", m.part.Len())
		// left half first so samples stay ordered by unit
		stack = append(stack, span{lo: m, hi: sp.hi}, span{lo: sp.lo, hi: m})
	}

	out := make([]*partition.Partition, 0, len(samples))
	for _, smp := range samples {
		if n := len(out); n > 0 && partition.Equal(out[n-1], smp.part) {
			continue
		}
		out = append(out, smp.part)
	}
	s.log.V(1).Info("frontier built", "threshold", threshold, "solves", solves, "partitions", len(out))

	return out, nil
}
