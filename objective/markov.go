// SPDX-License-Identifier: MIT

package objective

import (
	"fmt"
	"math"
)

const probTolerance = 1e-6

// MarkovChain is a finite chain with an initial distribution and a one-step
// kernel stored column-major by destination: Transition[j*Size+i] = P(i→j).
type MarkovChain struct {
	Size         int
	Distribution []float64
	Transition   []float64
}

// NewMarkovChain validates and copies the chain. Probabilities must be in
// [0,1]; the distribution and every row of the kernel must sum to 1.
func NewMarkovChain(size int, distribution, transition []float64) (*MarkovChain, error) {
	m := &MarkovChain{
		Size:         size,
		Distribution: append([]float64(nil), distribution...),
		Transition:   append([]float64(nil), transition...),
	}
	if err := m.validate("NewMarkovChain"); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MarkovChain) validate(method string) error {
	if m == nil || m.Size < 1 {
		return fmt.Errorf("%s: empty chain: %w", method, ErrInvalidInput)
	}
	if len(m.Distribution) != m.Size || len(m.Transition) != m.Size*m.Size {
		return fmt.Errorf("%s: size %d, distribution %d, transition %d: %w",
			method, m.Size, len(m.Distribution), len(m.Transition), ErrDimensionMismatch)
	}
	if err := checkStochastic(method, "distribution", m.Distribution); err != nil {
		return err
	}
	for i := 0; i < m.Size; i++ {
		row := make([]float64, m.Size)
		for j := 0; j < m.Size; j++ {
			row[j] = m.Transition[j*m.Size+i]
		}
		if err := checkStochastic(method, fmt.Sprintf("transition from %d", i), row); err != nil {
			return err
		}
	}

	return nil
}

func checkStochastic(method, what string, p []float64) error {
	var sum float64
	for k, x := range p {
		if x < 0 || x > 1 || math.IsNaN(x) {
			return fmt.Errorf("%s: %s[%d]=%g: %w", method, what, k, x, ErrInvalidInput)
		}
		sum += x
	}
	if math.Abs(sum-1) > probTolerance {
		return fmt.Errorf("%s: %s sums to %g: %w", method, what, sum, ErrInvalidInput)
	}

	return nil
}

// Next returns the distribution after one step from dist.
func (m *MarkovChain) Next(dist []float64) ([]float64, error) {
	if len(dist) != m.Size {
		return nil, fmt.Errorf("Next: len %d, size %d: %w", len(dist), m.Size, ErrDimensionMismatch)
	}
	out := make([]float64, m.Size)
	for i, pi := range dist {
		for j := 0; j < m.Size; j++ {
			out[j] += pi * m.Transition[j*m.Size+i]
		}
	}

	return out, nil
}

// Stationary iterates Next from Distribution until the L1 change drops below
// threshold or maxSteps is reached, and returns the last distribution.
func (m *MarkovChain) Stationary(threshold float64, maxSteps int) ([]float64, error) {
	if !(threshold > 0) || maxSteps < 1 {
		return nil, fmt.Errorf("Stationary(%g,%d): %w", threshold, maxSteps, ErrInvalidInput)
	}
	cur := append([]float64(nil), m.Distribution...)
	for step := 0; step < maxSteps; step++ {
		next, err := m.Next(cur)
		if err != nil {
			return nil, err
		}
		var delta float64
		for j := range next {
			delta += math.Abs(next[j] - cur[j])
		}
		cur = next
		if delta < threshold {
			break
		}
	}

	return cur, nil
}
