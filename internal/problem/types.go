// SPDX-License-Identifier: MIT

package problem

import (
	"errors"

	"github.com/katalvlaran/optpart/lattice"
	"github.com/katalvlaran/optpart/objective"
)

// Sentinel errors for problem decoding.
var (
	ErrInvalidProblem = errors.New("problem: invalid problem")
	ErrUnknownKind    = errors.New("problem: unknown kind")
)

// Structure kinds.
const (
	KindOrdered   = "ordered"
	KindRing      = "ring"
	KindHierarchy = "hierarchy"
	KindPowerset  = "powerset"
	KindGraph     = "graph"
	KindProduct   = "product"
)

// Objective kinds.
const (
	ObjectiveRelativeEntropy       = "relative-entropy"
	ObjectiveInformationCriterion  = "information-criterion"
	ObjectiveLogarithmicScore      = "logarithmic-score"
	ObjectiveQuadraticScore        = "quadratic-score"
	ObjectiveInformationBottleneck = "information-bottleneck"
)

// File is the YAML document.
type File struct {
	Name      string    `yaml:"name"`
	Structure Structure `yaml:"structure"`
	Objective Objective `yaml:"objective"`
}

// Structure describes one lattice. Products nest structures in Dimensions.
type Structure struct {
	Kind             string      `yaml:"kind"`
	Size             int         `yaml:"size"`
	Edges            [][2]int    `yaml:"edges"`
	RequireConnected bool        `yaml:"require_connected"`
	Tree             *Tree       `yaml:"tree"`
	Depth            int         `yaml:"depth"`
	Arity            int         `yaml:"arity"`
	Dimensions       []Structure `yaml:"dimensions"`
	Labels           []string    `yaml:"labels"`
}

// Tree is a hierarchy node; a node without children is a leaf.
type Tree struct {
	Children []Tree `yaml:"children"`
}

// Objective describes the objective and its raw data.
type Objective struct {
	Kind       string    `yaml:"kind"`
	Values     []float64 `yaml:"values"`
	References []float64 `yaml:"references"`
	Normalize  bool      `yaml:"normalize"`
	Prior      float64   `yaml:"prior"`
	PostSize   int       `yaml:"post_size"`
	Train      [][3]int  `yaml:"train"`
	Test       [][3]int  `yaml:"test"`
	Chain      *Chain    `yaml:"chain"`
}

// Chain is a Markov model for the bottleneck objective.
type Chain struct {
	Size         int       `yaml:"size"`
	Distribution []float64 `yaml:"distribution"`
	Transition   []float64 `yaml:"transition"`
}

// Problem is a decoded, ready-to-solve problem.
type Problem struct {
	Name      string
	Lattice   lattice.Lattice
	Objective objective.Objective
	// Labels holds one label list per dimension (a single list unless the
	// lattice is a product). Missing labels default to element indices.
	Labels [][]string
}
