// SPDX-License-Identifier: MIT
// File: entropy.go
// Role: RelativeEntropy and InformationCriterion, which share EntropyValue.
//
// For a subset with value mass V = Σv and reference mass R = Σr:
//
//	Micro      = Σ −v·log2(v/r)            (atoms with v = 0 contribute 0)
//	Divergence = −Micro − V·log2(V/R)       (≥ 0 by the log-sum inequality)
//	Reduction  = |subset| − 1               (atomic units merged)

package objective

import (
	"fmt"
	"math"
)

// EntropyValue is the statistic of RelativeEntropy and InformationCriterion.
type EntropyValue struct {
	Size       int
	Sum        float64
	Ref        float64
	Micro      float64
	Reduction  float64
	Divergence float64
}

// Vector implements Value.
func (v *EntropyValue) Vector() []float64 {
	return []float64{float64(v.Size), v.Sum, v.Ref, v.Micro, v.Reduction, v.Divergence}
}

// entropyBase holds the raw arrays and the value algebra shared by both objectives.
type entropyBase struct {
	values []float64
	refs   []float64
}

// newEntropyBase validates values ≥ 0 and refs > 0. A nil refs means all ones.
func newEntropyBase(method string, values, refs []float64) (entropyBase, error) {
	if len(values) == 0 {
		return entropyBase{}, fmt.Errorf("%s: no values: %w", method, ErrInvalidInput)
	}
	if refs == nil {
		refs = make([]float64, len(values))
		for i := range refs {
			refs[i] = 1
		}
	}
	if len(refs) != len(values) {
		return entropyBase{}, fmt.Errorf("%s: %d values, %d references: %w",
			method, len(values), len(refs), ErrDimensionMismatch)
	}
	for i := range values {
		if values[i] < 0 || math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return entropyBase{}, fmt.Errorf("%s: value[%d]=%g: %w", method, i, values[i], ErrInvalidInput)
		}
		if !(refs[i] > 0) || math.IsInf(refs[i], 0) {
			return entropyBase{}, fmt.Errorf("%s: reference[%d]=%g: %w", method, i, refs[i], ErrInvalidInput)
		}
	}

	return entropyBase{
		values: append([]float64(nil), values...),
		refs:   append([]float64(nil), refs...),
	}, nil
}

func (e entropyBase) Atoms() int { return len(e.values) }

func (e entropyBase) Leaf(atom int) (Value, error) {
	if atom < 0 || atom >= len(e.values) {
		return nil, fmt.Errorf("Leaf(%d): %w", atom, ErrAtomOutOfRange)
	}
	v, r := e.values[atom], e.refs[atom]
	out := &EntropyValue{Size: 1, Sum: v, Ref: r}
	if v > 0 {
		out.Micro = -v * math.Log2(v/r)
	}

	return out, nil
}

func (e entropyBase) Combine(a, b Value) (Value, error) {
	return e.CombineMany([]Value{a, b})
}

func (e entropyBase) CombineMany(vs []Value) (Value, error) {
	out, err := e.accumulate("CombineMany", vs)
	if err != nil {
		return nil, err
	}
	out.Reduction += float64(len(vs) - 1)
	out.Divergence = -out.Micro
	if out.Sum > 0 {
		out.Divergence -= out.Sum * math.Log2(out.Sum/out.Ref)
	}

	return out, nil
}

// Sum adds every field, so Reduction and Divergence of a partition are the
// totals over its parts.
func (e entropyBase) Sum(vs []Value) (Value, error) {
	out, err := e.accumulate("Sum", vs)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (e entropyBase) Breakdown(v Value) (Breakdown, error) {
	ev, err := asEntropy("Breakdown", v)
	if err != nil {
		return Breakdown{}, err
	}

	return Breakdown{Raw: ev.Sum, Reference: ev.Ref, Reduction: ev.Reduction, Loss: ev.Divergence}, nil
}

// accumulate sums every field of vs into a fresh value.
func (e entropyBase) accumulate(method string, vs []Value) (*EntropyValue, error) {
	if len(vs) == 0 {
		return nil, fmt.Errorf("%s: empty input: %w", method, ErrInvalidInput)
	}
	out := &EntropyValue{}
	for _, v := range vs {
		ev, err := asEntropy(method, v)
		if err != nil {
			return nil, err
		}
		out.Size += ev.Size
		out.Sum += ev.Sum
		out.Ref += ev.Ref
		out.Micro += ev.Micro
		out.Reduction += ev.Reduction
		out.Divergence += ev.Divergence
	}

	return out, nil
}

func asEntropy(method string, v Value) (*EntropyValue, error) {
	ev, ok := v.(*EntropyValue)
	if !ok || ev == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrObjectiveNotReady)
	}

	return ev, nil
}

// RelativeEntropy trades complexity reduction against divergence from the
// reference distribution. Scalar(v, p) = p·Reduction − (1−p)·Divergence,
// maximised, p ∈ [0,1]: p = 0 keeps every atom apart, p = 1 merges everything.
type RelativeEntropy struct {
	entropyBase
	linearParam
}

// NewRelativeEntropy builds the objective over values with optional references.
func NewRelativeEntropy(values, refs []float64) (*RelativeEntropy, error) {
	base, err := newEntropyBase("NewRelativeEntropy", values, refs)
	if err != nil {
		return nil, err
	}

	return &RelativeEntropy{entropyBase: base}, nil
}

func (*RelativeEntropy) Name() string { return "relative-entropy" }

func (*RelativeEntropy) Maximize() bool { return true }

// Normalize divides Reduction and Divergence by the reference's, when positive.
func (*RelativeEntropy) Normalize(v, ref Value) (Value, error) {
	ev, err := asEntropy("Normalize", v)
	if err != nil {
		return nil, err
	}
	rv, err := asEntropy("Normalize", ref)
	if err != nil {
		return nil, err
	}
	out := *ev
	if rv.Reduction > 0 {
		out.Reduction /= rv.Reduction
	}
	if rv.Divergence > 0 {
		out.Divergence /= rv.Divergence
	}

	return &out, nil
}

func (*RelativeEntropy) Scalar(v Value, param float64) (float64, error) {
	ev, err := asEntropy("Scalar", v)
	if err != nil {
		return 0, err
	}

	return param*ev.Reduction - (1-param)*ev.Divergence, nil
}

// InformationCriterion penalises divergence by a ratio parameter:
// Scalar(v, p) = Reduction − p·Divergence for p ≥ 0, and −Divergence for p < 0.
// Param(u) = u/(1−u), with u = 1 mapped to the loss-only regime.
type InformationCriterion struct {
	entropyBase
	ratioParam
}

// NewInformationCriterion builds the objective over values with optional references.
func NewInformationCriterion(values, refs []float64) (*InformationCriterion, error) {
	base, err := newEntropyBase("NewInformationCriterion", values, refs)
	if err != nil {
		return nil, err
	}

	return &InformationCriterion{entropyBase: base}, nil
}

func (*InformationCriterion) Name() string { return "information-criterion" }

func (*InformationCriterion) Maximize() bool { return true }

// Normalize is the identity; the criterion compares absolute counts.
func (*InformationCriterion) Normalize(v, _ Value) (Value, error) {
	ev, err := asEntropy("Normalize", v)
	if err != nil {
		return nil, err
	}
	out := *ev

	return &out, nil
}

func (*InformationCriterion) Scalar(v Value, param float64) (float64, error) {
	ev, err := asEntropy("Scalar", v)
	if err != nil {
		return 0, err
	}
	if param < 0 {
		return -ev.Divergence, nil
	}

	return ev.Reduction - param*ev.Divergence, nil
}
