// SPDX-License-Identifier: MIT

package objective

import "fmt"

// Observation is one (pre, post, count) triple: count occurrences of post
// outcome Post following pre state Pre.
type Observation struct {
	Pre   int
	Post  int
	Count int
}

// Dataset is a labelled train/test split over PreSize pre states (the atoms
// of the lattice) and PostSize post outcomes (the prediction bins).
type Dataset struct {
	PreSize  int
	PostSize int
	Train    []Observation
	Test     []Observation
}

// NewDataset returns an empty dataset. Both sizes must be positive.
func NewDataset(preSize, postSize int) (*Dataset, error) {
	if preSize < 1 || postSize < 1 {
		return nil, fmt.Errorf("NewDataset(%d,%d): %w", preSize, postSize, ErrInvalidInput)
	}

	return &Dataset{PreSize: preSize, PostSize: postSize}, nil
}

// AddTrain records a training observation.
func (d *Dataset) AddTrain(pre, post, count int) error {
	if err := d.check("AddTrain", pre, post, count); err != nil {
		return err
	}
	d.Train = append(d.Train, Observation{Pre: pre, Post: post, Count: count})

	return nil
}

// AddTest records a held-out observation.
func (d *Dataset) AddTest(pre, post, count int) error {
	if err := d.check("AddTest", pre, post, count); err != nil {
		return err
	}
	d.Test = append(d.Test, Observation{Pre: pre, Post: post, Count: count})

	return nil
}

func (d *Dataset) check(method string, pre, post, count int) error {
	if pre < 0 || pre >= d.PreSize || post < 0 || post >= d.PostSize {
		return fmt.Errorf("%s(%d,%d): outside %dx%d: %w", method, pre, post, d.PreSize, d.PostSize, ErrDimensionMismatch)
	}
	if count < 0 {
		return fmt.Errorf("%s(%d,%d): count %d: %w", method, pre, post, count, ErrInvalidInput)
	}

	return nil
}

// validate re-checks observations appended directly to the slices.
func (d *Dataset) validate(method string) error {
	if d == nil {
		return fmt.Errorf("%s: nil dataset: %w", method, ErrInvalidInput)
	}
	if d.PreSize < 1 || d.PostSize < 1 {
		return fmt.Errorf("%s: sizes %dx%d: %w", method, d.PreSize, d.PostSize, ErrInvalidInput)
	}
	for _, obs := range append(append([]Observation(nil), d.Train...), d.Test...) {
		if err := d.check(method, obs.Pre, obs.Post, obs.Count); err != nil {
			return err
		}
	}

	return nil
}
