// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/optpart/objective"
)

// valueSource is what the shared value sweep needs from a variant.
type valueSource interface {
	IsAtomic(s SubsetRef) bool
	// atomOf returns the atom index of an atomic subset.
	atomOf(s SubsetRef) int
	// firstRefinement returns one refinement of a non-atomic subset.
	firstRefinement(s SubsetRef) Refinement
}

// base holds the arena bookkeeping and objective values shared by all variants.
type base struct {
	kind       Kind
	log        logr.Logger
	atoms      int
	count      int
	obj        objective.Objective
	values     []objective.Value
	computed   bool
	normalized bool
}

func newBase(kind Kind, o Options) base {
	return base{kind: kind, log: o.Logger.WithValues("lattice", kind.String())}
}

func (b *base) Kind() Kind { return b.kind }

func (b *base) AtomicCount() int { return b.atoms }

func (b *base) SubsetCount() int { return b.count }

// Top is the last id of the arena.
func (b *base) Top() SubsetRef { return SubsetRef(b.count - 1) }

func (b *base) valid(s SubsetRef) bool { return s >= 0 && int(s) < b.count }

func (b *base) checkRef(method string, s SubsetRef) error {
	if !b.valid(s) {
		return fmt.Errorf("%s(%d): %w", method, s, ErrSubsetNotFound)
	}

	return nil
}

// AttachObjective binds obj and discards previously computed values.
func (b *base) AttachObjective(obj objective.Objective) error {
	if obj == nil {
		return fmt.Errorf("AttachObjective: %w", ErrObjectiveNotSet)
	}
	if obj.Atoms() != b.atoms {
		return fmt.Errorf("AttachObjective: objective covers %d atoms, lattice has %d: %w",
			obj.Atoms(), b.atoms, ErrDimensionMismatch)
	}
	b.obj = obj
	b.values = nil
	b.computed = false
	b.normalized = false

	return nil
}

func (b *base) Objective() objective.Objective { return b.obj }

func (b *base) ValuesComputed() bool { return b.computed }

// Value returns the attached value of s.
func (b *base) Value(s SubsetRef) (objective.Value, error) {
	if err := b.checkRef("Value", s); err != nil {
		return nil, err
	}
	if !b.computed {
		return nil, fmt.Errorf("Value(%d): %w", s, ErrValuesNotComputed)
	}

	return b.values[s], nil
}

// compute sweeps ids in ascending order: atoms from raw data, everything else
// from its first refinement, whose members always have smaller ids.
func (b *base) compute(src valueSource) error {
	if b.obj == nil {
		return fmt.Errorf("ComputeValues: %w", ErrObjectiveNotSet)
	}

	values := make([]objective.Value, b.count)
	for id := 0; id < b.count; id++ {
		s := SubsetRef(id)
		var (
			v   objective.Value
			err error
		)
		if src.IsAtomic(s) {
			v, err = b.obj.Leaf(src.atomOf(s))
		} else {
			v, err = b.combine(values, s, src.firstRefinement(s))
		}
		if err != nil {
			return fmt.Errorf("ComputeValues: subset %d: %w", id, err)
		}
		values[id] = v
	}

	b.values = values
	b.computed = true
	b.normalized = false
	b.log.V(1).Info("values computed", "objective", b.obj.Name(), "subsets", b.count)

	return nil
}

func (b *base) combine(values []objective.Value, owner SubsetRef, r Refinement) (objective.Value, error) {
	members := make([]objective.Value, len(r))
	for i, m := range r {
		if m >= owner {
			panic(fmt.Sprintf("lattice: refinement member %d not below owner %d", m, owner))
		}
		members[i] = values[m]
	}
	if len(members) == 2 {
		return b.obj.Combine(members[0], members[1])
	}

	return b.obj.CombineMany(members)
}

// NormalizeValues rescales every value against the top value. A second call
// is a no-op until values are recomputed.
func (b *base) NormalizeValues() error {
	if b.obj == nil {
		return fmt.Errorf("NormalizeValues: %w", ErrObjectiveNotSet)
	}
	if !b.computed {
		return fmt.Errorf("NormalizeValues: %w", ErrValuesNotComputed)
	}
	if b.normalized {
		return nil
	}

	ref := b.values[b.count-1]
	for id := range b.values {
		v, err := b.obj.Normalize(b.values[id], ref)
		if err != nil {
			return fmt.Errorf("NormalizeValues: subset %d: %w", id, err)
		}
		b.values[id] = v
	}
	b.normalized = true

	return nil
}

func (b *base) logBuilt(refinements int, kv ...any) {
	b.log.V(1).Info("lattice built",
		append([]any{"atoms", b.atoms, "subsets", b.count, "refinements", refinements}, kv...)...)
}
