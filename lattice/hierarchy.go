// SPDX-License-Identifier: MIT
// File: hierarchy.go
// Role: tree-structured lattice. Leaves are atoms numbered in depth-first
// order, so every node covers a contiguous range of atoms; ids follow
// post-order, children before parents.

package lattice

import "fmt"

// Node is one vertex of a hierarchy. A node without children is a leaf.
type Node struct {
	Children []*Node
}

// Leaf returns a childless node.
func Leaf() *Node { return &Node{} }

// Branch returns a node over the given children.
func Branch(children ...*Node) *Node { return &Node{Children: children} }

// Balanced returns a complete tree of the given depth (0 is a single leaf)
// where every internal node has arity ≥ 2 children.
func Balanced(depth, arity int) (*Node, error) {
	if depth < 0 || arity < 2 {
		return nil, fmt.Errorf("Balanced(%d,%d): %w", depth, arity, ErrInvalidStructure)
	}
	level := []*Node{Leaf()}
	leaves := level
	for d := 0; d < depth; d++ {
		next := make([]*Node, 0, len(leaves)*arity)
		for _, n := range leaves {
			n.Children = make([]*Node, arity)
			for c := range n.Children {
				n.Children[c] = Leaf()
			}
			next = append(next, n.Children...)
		}
		leaves = next
	}

	return level[0], nil
}

// hnode is the arena record of a tree node.
type hnode struct {
	children Refinement
	lo, hi   int // covered atoms lo..hi-1
}

// Hierarchy is the lattice of the nodes of a rooted tree.
type Hierarchy struct {
	base
	nodes  []hnode
	ranges map[[2]int]SubsetRef
	atomID []SubsetRef
}

var _ Lattice = (*Hierarchy)(nil)

// NewHierarchy flattens root into an arena without native recursion. Shared
// nodes, cycles, nil children and unary nodes are ErrInvalidStructure.
func NewHierarchy(root *Node, opts ...Option) (*Hierarchy, error) {
	if root == nil {
		return nil, fmt.Errorf("NewHierarchy: nil root: %w", ErrInvalidStructure)
	}
	h := &Hierarchy{base: newBase(KindHierarchy, resolve(opts)), ranges: make(map[[2]int]SubsetRef)}

	type frame struct {
		node *Node
		next int
		kids Refinement
		lo   int
	}
	seen := map[*Node]bool{root: true}
	stack := []*frame{{node: root}}
	atoms, refinements := 0, 0
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == 0 && len(top.node.Children) == 0 {
			// leaf
			id := SubsetRef(len(h.nodes))
			h.nodes = append(h.nodes, hnode{lo: atoms, hi: atoms + 1})
			h.atomID = append(h.atomID, id)
			h.ranges[[2]int{atoms, atoms + 1}] = id
			atoms++
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.kids = append(parent.kids, id)
			}
			continue
		}
		if top.next == 0 {
			if len(top.node.Children) == 1 {
				return nil, fmt.Errorf("NewHierarchy: unary node: %w", ErrInvalidStructure)
			}
			top.lo = atoms
		}
		if top.next < len(top.node.Children) {
			child := top.node.Children[top.next]
			top.next++
			if child == nil {
				return nil, fmt.Errorf("NewHierarchy: nil child: %w", ErrInvalidStructure)
			}
			if seen[child] {
				return nil, fmt.Errorf("NewHierarchy: node reached twice: %w", ErrInvalidStructure)
			}
			seen[child] = true
			stack = append(stack, &frame{node: child})
			continue
		}
		// all children done
		id := SubsetRef(len(h.nodes))
		h.nodes = append(h.nodes, hnode{children: top.kids, lo: top.lo, hi: atoms})
		h.ranges[[2]int{top.lo, atoms}] = id
		refinements++
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.kids = append(parent.kids, id)
		}
	}

	h.atoms = atoms
	h.count = len(h.nodes)
	h.logBuilt(refinements)

	return h, nil
}

func (h *Hierarchy) IsAtomic(s SubsetRef) bool {
	return h.valid(s) && len(h.nodes[s].children) == 0
}

func (h *Hierarchy) Feasible(s SubsetRef) bool { return h.valid(s) }

func (h *Hierarchy) Atom(i int) (SubsetRef, error) {
	if i < 0 || i >= h.atoms {
		return 0, fmt.Errorf("Atom(%d): %w", i, ErrSubsetNotFound)
	}

	return h.atomID[i], nil
}

// Lookup resolves the atom range covered by a node.
func (h *Hierarchy) Lookup(elements []int) (SubsetRef, error) {
	sorted, err := normalizeElements("Lookup", elements, h.atoms)
	if err != nil {
		return 0, err
	}
	lo, hi := sorted[0], sorted[len(sorted)-1]+1
	if hi-lo == len(sorted) {
		if id, ok := h.ranges[[2]int{lo, hi}]; ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("Lookup(%v): no such node: %w", elements, ErrSubsetNotFound)
}

func (h *Hierarchy) Elements(s SubsetRef) ([]int, error) {
	if err := h.checkRef("Elements", s); err != nil {
		return nil, err
	}
	n := h.nodes[s]

	return span(n.lo, n.hi-n.lo), nil
}

// Refinements returns the children of s, or nothing for a leaf.
func (h *Hierarchy) Refinements(s SubsetRef) ([]Refinement, error) {
	if err := h.checkRef("Refinements", s); err != nil {
		return nil, err
	}
	if h.IsAtomic(s) {
		return nil, nil
	}

	return []Refinement{append(Refinement(nil), h.nodes[s].children...)}, nil
}

func (h *Hierarchy) ComputeValues() error { return h.compute(h) }

func (h *Hierarchy) atomOf(s SubsetRef) int { return h.nodes[s].lo }

func (h *Hierarchy) firstRefinement(s SubsetRef) Refinement { return h.nodes[s].children }
