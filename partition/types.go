// SPDX-License-Identifier: MIT

package partition

import (
	"errors"

	"github.com/katalvlaran/optpart/objective"
)

// Sentinel errors returned by Validate.
var (
	ErrEmptyPart    = errors.New("partition: empty part")
	ErrOutOfRange   = errors.New("partition: element out of range")
	ErrOverlap      = errors.New("partition: element in more than one part")
	ErrIncomplete   = errors.New("partition: universe not covered")
	ErrNilPartition = errors.New("partition: nil partition")
)

// Part is one block of a partition.
type Part struct {
	// Elements are the atomic element indices, ascending.
	Elements []int
	// Components are the per-dimension element lists of a product part, nil otherwise.
	Components [][]int
	// Value is the objective value of the feasible subset behind the part.
	Value objective.Value
}

// Partition is a disjoint cover of the universe produced at one parameter.
type Partition struct {
	// Parameter is the objective parameter the partition is optimal for.
	Parameter float64
	// Unit is the position in [0,1] that Parameter was derived from.
	Unit  float64
	Parts []Part
	// Value aggregates the part values with Objective.Sum.
	Value objective.Value
	// Score is the optimal scalar reached by the solver.
	Score float64
}
