// SPDX-License-Identifier: MIT

package objective

import "errors"

// Sentinel errors for objective evaluation.
var (
	// ErrObjectiveNotReady indicates a combine/scalar call on a missing or
	// foreign value, i.e. an evaluation-order violation.
	ErrObjectiveNotReady = errors.New("objective: input value not computed")

	// ErrInvalidInput indicates malformed raw data (negative counts, bad probabilities).
	ErrInvalidInput = errors.New("objective: invalid input")

	// ErrDimensionMismatch indicates raw arrays whose lengths disagree.
	ErrDimensionMismatch = errors.New("objective: dimension mismatch")

	// ErrAtomOutOfRange indicates Leaf was asked for an atom outside 0..Atoms()-1.
	ErrAtomOutOfRange = errors.New("objective: atom out of range")
)

// Value is the quality statistic attached to one feasible subset.
// Vector flattens it for comparison and reporting.
type Value interface {
	Vector() []float64
}

// Objective produces and scores Values.
type Objective interface {
	// Name is a short identifier used in logs and exports.
	Name() string
	// Maximize reports the optimisation direction of Scalar.
	Maximize() bool
	// Atoms is the number of atomic elements the raw data covers.
	Atoms() int

	Leaf(atom int) (Value, error)
	Combine(a, b Value) (Value, error)
	CombineMany(vs []Value) (Value, error)
	Sum(vs []Value) (Value, error)
	Normalize(v, ref Value) (Value, error)
	Scalar(v Value, param float64) (float64, error)

	// Param maps a unit in [0,1] to the objective's parameter domain.
	Param(unit float64) float64
	// UnitDistance measures the width of [uMin, uMax] for frontier bisection.
	UnitDistance(uMin, uMax float64) float64
	// MidpointUnit splits [uMin, uMax] for frontier bisection.
	MidpointUnit(uMin, uMax float64) float64
}

// Breakdown is the export view of a value: raw and reference mass, the
// complexity reduction, and the information loss.
type Breakdown struct {
	Raw       float64
	Reference float64
	Reduction float64
	Loss      float64
}

// Breakdowner is implemented by objectives that can report a Breakdown.
type Breakdowner interface {
	Breakdown(v Value) (Breakdown, error)
}

// linearParam is the identity reparametrisation shared by objectives whose
// parameter already lives in [0,1].
type linearParam struct{}

func (linearParam) Param(unit float64) float64 { return unit }

func (linearParam) UnitDistance(uMin, uMax float64) float64 { return uMax - uMin }

func (linearParam) MidpointUnit(uMin, uMax float64) float64 { return uMin + (uMax-uMin)/2 }

// ratioParam maps u ∈ [0,1) to u/(1−u) ∈ [0,∞) and u = 1 to −1, which the
// objectives read as "loss only".
type ratioParam struct{}

func (ratioParam) Param(unit float64) float64 {
	if unit < 1 {
		return unit / (1 - unit)
	}

	return -1
}

func (ratioParam) UnitDistance(uMin, uMax float64) float64 { return uMax - uMin }

func (ratioParam) MidpointUnit(uMin, uMax float64) float64 { return uMin + (uMax-uMin)/2 }

// fixedParam is used by parameter-free objectives: a frontier collapses to a
// single partition.
type fixedParam struct{}

func (fixedParam) Param(float64) float64 { return 0 }

func (fixedParam) UnitDistance(float64, float64) float64 { return 0 }

func (fixedParam) MidpointUnit(float64, float64) float64 { return 0 }
