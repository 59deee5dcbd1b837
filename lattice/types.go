// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/optpart/objective"
)

// Sentinel errors for lattice construction and queries.
var (
	ErrInvalidStructure  = errors.New("lattice: invalid structure")
	ErrTooLarge          = errors.New("lattice: structure too large")
	ErrObjectiveNotSet   = errors.New("lattice: objective not set")
	ErrValuesNotComputed = errors.New("lattice: values not computed")
	ErrSubsetNotFound    = errors.New("lattice: subset not found")
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")
)

// Kind tags a lattice variant.
type Kind int

const (
	KindOrdered Kind = iota
	KindRing
	KindHierarchy
	KindPowerset
	KindGraph
	KindProduct
)

var kindNames = [...]string{"ordered", "ring", "hierarchy", "powerset", "graph", "product"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// SubsetRef addresses a feasible subset inside its lattice.
type SubsetRef int

// Refinement is an ordered list of subsets that exactly partitions its owner.
type Refinement []SubsetRef

// Lattice is the common contract of every structural variant.
type Lattice interface {
	Kind() Kind
	AtomicCount() int
	SubsetCount() int
	Top() SubsetRef
	IsAtomic(s SubsetRef) bool
	// Feasible is false only for the synthetic root joining the components
	// of a disconnected graph; such a root must always be refined.
	Feasible(s SubsetRef) bool
	Atom(i int) (SubsetRef, error)
	Lookup(elements []int) (SubsetRef, error)
	Elements(s SubsetRef) ([]int, error)
	Refinements(s SubsetRef) ([]Refinement, error)

	AttachObjective(obj objective.Objective) error
	Objective() objective.Objective
	ComputeValues() error
	NormalizeValues() error
	Value(s SubsetRef) (objective.Value, error)
	ValuesComputed() bool
}

// DefaultMaxPowersetAtoms caps Powerset, whose top alone has 2^(N-1)-1 refinements.
const DefaultMaxPowersetAtoms = 20

// maxComponentVertices is the widest graph component a uint64 mask can hold
// while leaving headroom for submask arithmetic.
const maxComponentVertices = 62

// maxProductSubsets caps the arena of a Product.
const maxProductSubsets = 1 << 22

// Option configures lattice construction.
type Option func(*Options)

// Options holds construction parameters shared by every variant.
type Options struct {
	// Logger receives build summaries at V(1). Defaults to logr.Discard().
	Logger logr.Logger
	// RequireConnected makes NewGraph reject disconnected graphs.
	RequireConnected bool
	// MaxPowersetAtoms bounds NewPowerset.
	MaxPowersetAtoms int
}

// DefaultOptions returns a discarding logger, no connectivity requirement and
// the default powerset cap.
func DefaultOptions() Options {
	return Options{
		Logger:           logr.Discard(),
		MaxPowersetAtoms: DefaultMaxPowersetAtoms,
	}
}

// WithLogger routes build tracing to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRequireConnected makes a disconnected graph an ErrInvalidStructure.
func WithRequireConnected() Option {
	return func(o *Options) {
		o.RequireConnected = true
	}
}

// WithMaxPowersetAtoms overrides the powerset cap. Panics outside 1..62.
func WithMaxPowersetAtoms(n int) Option {
	if n < 1 || n > maxComponentVertices {
		panic(fmt.Sprintf("lattice: WithMaxPowersetAtoms(%d) outside 1..%d", n, maxComponentVertices))
	}
	return func(o *Options) {
		o.MaxPowersetAtoms = n
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
