// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/objective"
	"github.com/katalvlaran/optpart/partition"
)

// Solver runs the optimal-partition DP over one lattice. It never changes the
// lattice shape; it only reads values and keeps its own per-subset state.
type Solver struct {
	lat      lattice.Lattice
	strategy Strategy
	log      logr.Logger

	gen    uint32
	stamp  []uint32 // generation that last wrote state/best/choice
	state  []state
	best   []float64
	choice []int32 // winning refinement index, or noCut

	param float64
}

// New prepares a solver over l. Values may be computed later, but must be
// present when a solve runs.
func New(l lattice.Lattice, opts ...Option) (*Solver, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := l.SubsetCount()

	return &Solver{
		lat:      l,
		strategy: o.Strategy,
		log:      o.Logger.WithValues("lattice", l.Kind().String()),
		stamp:    make([]uint32, n),
		state:    make([]state, n),
		best:     make([]float64, n),
		choice:   make([]int32, n),
	}, nil
}

// Lattice returns the lattice being solved.
func (s *Solver) Lattice() lattice.Lattice { return s.lat }

// OptimalValue returns the optimal scalar of the top subset at param.
func (s *Solver) OptimalValue(param float64) (float64, error) {
	if err := s.solve("OptimalValue", param); err != nil {
		return 0, err
	}

	return s.best[s.lat.Top()], nil
}

// OptimalPartition returns the optimal partition at param. Its Unit equals
// param since no unit was supplied.
func (s *Solver) OptimalPartition(param float64) (*partition.Partition, error) {
	return s.partitionAt("OptimalPartition", param, param)
}

// OptimalPartitionAtUnit maps unit through Objective.Param and solves there.
func (s *Solver) OptimalPartitionAtUnit(unit float64) (*partition.Partition, error) {
	if !(unit >= 0 && unit <= 1) {
		return nil, fmt.Errorf("OptimalPartitionAtUnit(%g): %w", unit, ErrInvalidUnit)
	}
	obj, err := s.objective("OptimalPartitionAtUnit")
	if err != nil {
		return nil, err
	}

	return s.partitionAt("OptimalPartitionAtUnit", obj.Param(unit), unit)
}

func (s *Solver) partitionAt(method string, param, unit float64) (*partition.Partition, error) {
	if err := s.solve(method, param); err != nil {
		return nil, err
	}
	p, err := s.build(method)
	if err != nil {
		return nil, err
	}
	p.Parameter = param
	p.Unit = unit
	s.log.V(1).Info("partition solved", "param", param, "parts", len(p.Parts), "score", p.Score)

	return p, nil
}

func (s *Solver) objective(method string) (objective.Objective, error) {
	obj := s.lat.Objective()
	if obj == nil {
		return nil, fmt.Errorf("%s: %w", method, lattice.ErrObjectiveNotSet)
	}

	return obj, nil
}

// solve fills best and choice for the top subset at param.
func (s *Solver) solve(method string, param float64) error {
	obj, err := s.objective(method)
	if err != nil {
		return err
	}
	if !s.lat.ValuesComputed() {
		return fmt.Errorf("%s: %w", method, lattice.ErrValuesNotComputed)
	}
	if math.IsNaN(param) {
		return fmt.Errorf("%s: parameter is NaN: %w", method, objective.ErrInvalidInput)
	}
	s.nextGeneration()
	s.param = param

	ordered, isOrdered := s.lat.(*lattice.Ordered)
	ring, isRing := s.lat.(*lattice.Ring)
	switch {
	case s.strategy == StrategyAuto && isOrdered:
		err = s.solveOrdered(ordered, obj)
	case s.strategy == StrategyAuto && isRing:
		err = s.solveRing(ring, obj)
	default:
		err = s.solveGeneric(obj)
	}
	if err != nil {
		return fmt.Errorf("%s(%g): %w", method, param, err)
	}

	return nil
}

// nextGeneration invalidates every subset state in O(1); the stamps are
// cleared only when the counter wraps.
func (s *Solver) nextGeneration() {
	s.gen++
	if s.gen == 0 {
		for i := range s.stamp {
			s.stamp[i] = 0
		}
		s.gen = 1
	}
}

func (s *Solver) stateOf(id lattice.SubsetRef) state {
	if s.stamp[id] != s.gen {
		return unvisited
	}

	return s.state[id]
}

func (s *Solver) mark(id lattice.SubsetRef, st state) {
	s.stamp[id] = s.gen
	s.state[id] = st
}

// better reports whether a strictly beats b in the objective's direction.
func better(maximize bool, a, b float64) bool {
	if maximize {
		return a > b
	}

	return a < b
}

// own returns the scalar of s kept whole.
func (s *Solver) own(obj objective.Objective, id lattice.SubsetRef) (float64, error) {
	v, err := s.lat.Value(id)
	if err != nil {
		return 0, err
	}

	return obj.Scalar(v, s.param)
}
