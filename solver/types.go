// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
)

// Sentinel errors of the solver. Lattice errors (values not computed,
// objective not set) are wrapped and pass through errors.Is.
var (
	ErrNilLattice       = errors.New("solver: nil lattice")
	ErrInvalidThreshold = errors.New("solver: threshold must be positive")
	ErrInvalidUnit      = errors.New("solver: unit outside [0,1]")
)

// Strategy selects the dynamic program.
type Strategy int

const (
	// StrategyAuto uses the interval recurrence for Ordered and Ring lattices.
	StrategyAuto Strategy = iota
	// StrategyGeneric forces the DAG DP.
	StrategyGeneric
)

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyGeneric:
		return "generic"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option configures a Solver.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// Logger receives solve summaries at V(1) and frontier steps at V(2).
	Logger logr.Logger
	// Strategy selects the dynamic program.
	Strategy Strategy
}

// DefaultOptions returns a discarding logger and StrategyAuto.
func DefaultOptions() Options {
	return Options{Logger: logr.Discard(), Strategy: StrategyAuto}
}

// WithLogger routes solver tracing to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithStrategy selects the dynamic program. Panics on an unknown strategy.
func WithStrategy(s Strategy) Option {
	if s != StrategyAuto && s != StrategyGeneric {
		panic(fmt.Sprintf("solver: WithStrategy(%d): unknown strategy", int(s)))
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// state is the per-subset progress of one solve.
type state uint8

const (
	unvisited state = iota
	valueComputed
	optimized
)

// noCut marks a subset kept whole.
const noCut = -1
