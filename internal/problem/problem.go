// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/optpart/builder"
	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/objective"
)

// Load reads and builds the problem file at path.
func Load(path string, opts ...lattice.Option) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}

	return Parse(data, opts...)
}

// Parse decodes a YAML document and builds it.
func Parse(data []byte, opts ...lattice.Option) (*Problem, error) {
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return Build(f, opts...)
}

// Decode reads one YAML document, rejecting unknown fields.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("problem: empty document: %w", ErrInvalidProblem)
		}
		return nil, fmt.Errorf("problem: decode: %w: %w", ErrInvalidProblem, err)
	}

	return &f, nil
}

// Build constructs the lattice, attaches the objective and computes values,
// normalising them when requested.
func Build(f *File, opts ...lattice.Option) (*Problem, error) {
	if f == nil {
		return nil, fmt.Errorf("problem: nil file: %w", ErrInvalidProblem)
	}
	l, err := buildLattice("structure", f.Structure, opts)
	if err != nil {
		return nil, err
	}
	obj, err := buildObjective(f.Objective, l.AtomicCount())
	if err != nil {
		return nil, err
	}
	if err = l.AttachObjective(obj); err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	if err = l.ComputeValues(); err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	if f.Objective.Normalize {
		if err = l.NormalizeValues(); err != nil {
			return nil, fmt.Errorf("problem: %w", err)
		}
	}
	labels, err := buildLabels("structure", f.Structure, l)
	if err != nil {
		return nil, err
	}

	return &Problem{Name: f.Name, Lattice: l, Objective: obj, Labels: labels}, nil
}

func buildLattice(path string, s Structure, opts []lattice.Option) (lattice.Lattice, error) {
	var (
		l   lattice.Lattice
		err error
	)
	switch s.Kind {
	case KindOrdered:
		l, err = lattice.NewOrdered(s.Size, opts...)
	case KindRing:
		l, err = lattice.NewRing(s.Size, opts...)
	case KindPowerset:
		l, err = lattice.NewPowerset(s.Size, opts...)
	case KindHierarchy:
		root, terr := buildTree(path, s)
		if terr != nil {
			return nil, terr
		}
		l, err = lattice.NewHierarchy(root, opts...)
	case KindGraph:
		g, gerr := builder.BuildGraph(s.Size, nil, builder.EdgeList(s.Edges))
		if gerr != nil {
			return nil, fmt.Errorf("problem: %s: %w: %w", path, ErrInvalidProblem, gerr)
		}
		if s.RequireConnected {
			opts = append(append([]lattice.Option(nil), opts...), lattice.WithRequireConnected())
		}
		l, err = lattice.NewGraph(g, opts...)
	case KindProduct:
		if len(s.Dimensions) == 0 {
			return nil, fmt.Errorf("problem: %s: product without dimensions: %w", path, ErrInvalidProblem)
		}
		dims := make([]lattice.Lattice, len(s.Dimensions))
		for d, sub := range s.Dimensions {
			if dims[d], err = buildLattice(fmt.Sprintf("%s.dimensions[%d]", path, d), sub, opts); err != nil {
				return nil, err
			}
		}
		l, err = lattice.NewProduct(dims, opts...)
	default:
		return nil, fmt.Errorf("problem: %s: structure %q: %w", path, s.Kind, ErrUnknownKind)
	}
	if err != nil {
		return nil, fmt.Errorf("problem: %s: %w", path, err)
	}

	return l, nil
}

// buildTree converts the YAML tree without recursion.
func buildTree(path string, s Structure) (*lattice.Node, error) {
	if s.Tree == nil {
		if s.Arity == 0 {
			return nil, fmt.Errorf("problem: %s: hierarchy needs tree or arity: %w", path, ErrInvalidProblem)
		}
		root, err := lattice.Balanced(s.Depth, s.Arity)
		if err != nil {
			return nil, fmt.Errorf("problem: %s: %w", path, err)
		}
		return root, nil
	}

	type item struct {
		src *Tree
		dst *lattice.Node
	}
	root := &lattice.Node{}
	queue := []item{{src: s.Tree, dst: root}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		for i := range it.src.Children {
			child := &lattice.Node{}
			it.dst.Children = append(it.dst.Children, child)
			queue = append(queue, item{src: &it.src.Children[i], dst: child})
		}
	}

	return root, nil
}

func buildObjective(o Objective, atoms int) (objective.Objective, error) {
	var (
		obj objective.Objective
		err error
	)
	switch o.Kind {
	case ObjectiveRelativeEntropy:
		obj, err = objective.NewRelativeEntropy(o.Values, o.References)
	case ObjectiveInformationCriterion:
		obj, err = objective.NewInformationCriterion(o.Values, o.References)
	case ObjectiveLogarithmicScore, ObjectiveQuadraticScore:
		d, derr := buildDataset(o, atoms)
		if derr != nil {
			return nil, derr
		}
		if o.Kind == ObjectiveLogarithmicScore {
			obj, err = objective.NewLogarithmicScore(d, o.Prior)
		} else {
			obj, err = objective.NewQuadraticScore(d)
		}
	case ObjectiveInformationBottleneck:
		if o.Chain == nil {
			return nil, fmt.Errorf("problem: objective: bottleneck without chain: %w", ErrInvalidProblem)
		}
		chain, cerr := objective.NewMarkovChain(o.Chain.Size, o.Chain.Distribution, o.Chain.Transition)
		if cerr != nil {
			return nil, fmt.Errorf("problem: objective: %w", cerr)
		}
		obj, err = objective.NewInformationBottleneck(chain)
	default:
		return nil, fmt.Errorf("problem: objective %q: %w", o.Kind, ErrUnknownKind)
	}
	if err != nil {
		return nil, fmt.Errorf("problem: objective: %w", err)
	}

	return obj, nil
}

// buildDataset lays train and test rows over atoms pre-states.
func buildDataset(o Objective, atoms int) (*objective.Dataset, error) {
	d, err := objective.NewDataset(atoms, o.PostSize)
	if err != nil {
		return nil, fmt.Errorf("problem: objective: %w", err)
	}
	for i, row := range o.Train {
		if err = d.AddTrain(row[0], row[1], row[2]); err != nil {
			return nil, fmt.Errorf("problem: objective: train[%d]: %w", i, err)
		}
	}
	for i, row := range o.Test {
		if err = d.AddTest(row[0], row[1], row[2]); err != nil {
			return nil, fmt.Errorf("problem: objective: test[%d]: %w", i, err)
		}
	}

	return d, nil
}

// buildLabels returns one label list per dimension, checked against the
// atom count of each dimension.
func buildLabels(path string, s Structure, l lattice.Lattice) ([][]string, error) {
	if p, ok := l.(*lattice.Product); ok {
		dims := p.Dimensions()
		out := make([][]string, len(dims))
		for d, dim := range dims {
			labels, err := labelList(fmt.Sprintf("%s.dimensions[%d]", path, d), s.Dimensions[d].Labels, dim.AtomicCount())
			if err != nil {
				return nil, err
			}
			out[d] = labels
		}
		return out, nil
	}
	labels, err := labelList(path, s.Labels, l.AtomicCount())
	if err != nil {
		return nil, err
	}

	return [][]string{labels}, nil
}

func labelList(path string, given []string, n int) ([]string, error) {
	if given == nil {
		out := make([]string, n)
		for i := range out {
			out[i] = strconv.Itoa(i)
		}
		return out, nil
	}
	if len(given) != n {
		return nil, fmt.Errorf("problem: %s: %d labels for %d atoms: %w", path, len(given), n, ErrInvalidProblem)
	}

	return append([]string(nil), given...), nil
}
