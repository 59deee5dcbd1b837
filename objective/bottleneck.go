// SPDX-License-Identifier: MIT
// File: bottleneck.go
// Role: InformationBottleneck over the states of a MarkovChain.
//
// For a subset k of states with mass pk and joint next-state mass pkj:
//
//	Iki = −pk·log2 pk
//	Ikj = Iki + Σ_j pkj·log2 pkj − Σ_j pkj·log2 pj
//
// where pj is the global next-state distribution. Ikj is the subset's share
// of the mutual information between the aggregated state and the next state.

package objective

import (
	"fmt"
	"math"
)

// BottleneckValue is the statistic of InformationBottleneck.
type BottleneckValue struct {
	Pk  float64
	Pkj []float64
	Iki float64
	Ikj float64
}

// Vector implements Value.
func (v *BottleneckValue) Vector() []float64 {
	return append([]float64{v.Pk, v.Iki, v.Ikj}, v.Pkj...)
}

// InformationBottleneck compresses the state space of a Markov chain while
// preserving predictive information. Scalar(v, p) = Iki − p·Ikj for p ≥ 0 and
// −Ikj otherwise, minimised, with Param(u) = u/(1−u).
type InformationBottleneck struct {
	ratioParam
	chain *MarkovChain
	pj    []float64
}

// NewInformationBottleneck builds the objective from a validated chain.
func NewInformationBottleneck(chain *MarkovChain) (*InformationBottleneck, error) {
	if err := chain.validate("NewInformationBottleneck"); err != nil {
		return nil, err
	}
	pj, err := chain.Next(chain.Distribution)
	if err != nil {
		return nil, err
	}

	return &InformationBottleneck{chain: chain, pj: pj}, nil
}

func (*InformationBottleneck) Name() string { return "information-bottleneck" }

func (*InformationBottleneck) Maximize() bool { return false }

func (ib *InformationBottleneck) Atoms() int { return ib.chain.Size }

func (ib *InformationBottleneck) Leaf(atom int) (Value, error) {
	n := ib.chain.Size
	if atom < 0 || atom >= n {
		return nil, fmt.Errorf("Leaf(%d): %w", atom, ErrAtomOutOfRange)
	}
	pi := ib.chain.Distribution[atom]
	v := &BottleneckValue{Pk: pi, Pkj: make([]float64, n)}
	for j := 0; j < n; j++ {
		v.Pkj[j] = pi * ib.chain.Transition[j*n+atom]
	}
	ib.information(v)

	return v, nil
}

func (ib *InformationBottleneck) Combine(a, b Value) (Value, error) {
	return ib.CombineMany([]Value{a, b})
}

func (ib *InformationBottleneck) CombineMany(vs []Value) (Value, error) {
	out, err := ib.accumulate("CombineMany", vs)
	if err != nil {
		return nil, err
	}
	ib.information(out)

	return out, nil
}

// Sum adds masses and information terms of the parts of a partition.
func (ib *InformationBottleneck) Sum(vs []Value) (Value, error) {
	out, err := ib.accumulate("Sum", vs)
	if err != nil {
		return nil, err
	}
	for _, v := range vs {
		bv := v.(*BottleneckValue)
		out.Iki += bv.Iki
		out.Ikj += bv.Ikj
	}

	return out, nil
}

// Normalize is the identity.
func (ib *InformationBottleneck) Normalize(v, _ Value) (Value, error) {
	bv, err := ib.asBottleneck("Normalize", v)
	if err != nil {
		return nil, err
	}
	out := *bv
	out.Pkj = append([]float64(nil), bv.Pkj...)

	return &out, nil
}

func (ib *InformationBottleneck) Scalar(v Value, param float64) (float64, error) {
	bv, err := ib.asBottleneck("Scalar", v)
	if err != nil {
		return 0, err
	}
	if param < 0 {
		return -bv.Ikj, nil
	}

	return bv.Iki - param*bv.Ikj, nil
}

// Breakdown reports mass, state entropy share and lost predictive information.
func (ib *InformationBottleneck) Breakdown(v Value) (Breakdown, error) {
	bv, err := ib.asBottleneck("Breakdown", v)
	if err != nil {
		return Breakdown{}, err
	}

	return Breakdown{Raw: bv.Pk, Reference: bv.Iki, Loss: bv.Ikj}, nil
}

// information fills Iki and Ikj from Pk and Pkj.
func (ib *InformationBottleneck) information(v *BottleneckValue) {
	v.Iki = 0
	if v.Pk > 0 {
		v.Iki = -v.Pk * math.Log2(v.Pk)
	}
	v.Ikj = v.Iki
	for j, p := range v.Pkj {
		if p > 0 {
			v.Ikj += p * math.Log2(p)
			if ib.pj[j] > 0 {
				v.Ikj -= p * math.Log2(ib.pj[j])
			}
		}
	}
}

func (ib *InformationBottleneck) accumulate(method string, vs []Value) (*BottleneckValue, error) {
	if len(vs) == 0 {
		return nil, fmt.Errorf("%s: empty input: %w", method, ErrInvalidInput)
	}
	out := &BottleneckValue{Pkj: make([]float64, ib.chain.Size)}
	for _, v := range vs {
		bv, err := ib.asBottleneck(method, v)
		if err != nil {
			return nil, err
		}
		out.Pk += bv.Pk
		for j, p := range bv.Pkj {
			out.Pkj[j] += p
		}
	}

	return out, nil
}

func (ib *InformationBottleneck) asBottleneck(method string, v Value) (*BottleneckValue, error) {
	bv, ok := v.(*BottleneckValue)
	if !ok || bv == nil || len(bv.Pkj) != ib.chain.Size {
		return nil, fmt.Errorf("%s: %w", method, ErrObjectiveNotReady)
	}

	return bv, nil
}
