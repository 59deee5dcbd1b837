// SPDX-License-Identifier: MIT
// File: graph.go
// Role: connected-subgraph lattice with bipartition discovery.
//
// Construction, per connected component with vertices v0..vk in BFS order:
//
//	for each vi:
//	  grow every connected set whose highest-order vertex is vi, level by
//	  level from {vi}, adding neighbours of order < i;
//	  for each new set S, enumerate the connected B ⊊ S that contain vi;
//	  when S\B is a recorded (hence connected) set, {S\B, B} is a bipartition.
//
// Every connected set is grown exactly once (deduplicated by mask), and each
// unordered bipartition is found exactly once because B is always the side
// holding the highest-order vertex. Both sides are recorded before S, so ids
// stay topological.
//
// A disconnected graph gets a synthetic, non-feasible root whose single
// refinement is the list of component tops, unless RequireConnected is set.

package lattice

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/optpart/bfs"
	"github.com/katalvlaran/optpart/core"
)

// gsubset is the arena record of one connected vertex set.
type gsubset struct {
	comp int
	mask uint64 // bits index gcomponent.order
	refs []Refinement
}

// gcomponent is one connected component.
type gcomponent struct {
	order []int // local index → vertex
	index map[uint64]SubsetRef
	top   SubsetRef
}

// Graph is the lattice of connected vertex sets of a core.Graph.
type Graph struct {
	base
	graph   *core.Graph
	subsets []gsubset
	comps   []gcomponent
	local   []int // vertex → local index in its component
	compOf  []int // vertex → component
	rooted  bool  // synthetic root present
}

var _ Lattice = (*Graph)(nil)

// NewGraph enumerates the connected subsets of g and their bipartitions.
// Components are built independently; each may hold at most 62 vertices.
//
// Complexity, per component of k vertices with C connected subsets:
//
//	Time   = O(C·k) to grow the subsets, plus O(k) per connected B ⊆ S
//	         containing S's newest vertex, summed over all S; O(3^k·k) on a
//	         complete graph, far less on sparse ones
//	Memory = O(C + R), R the number of bipartitions recorded
func NewGraph(g *core.Graph, opts ...Option) (*Graph, error) {
	o := resolve(opts)
	if g == nil || g.VertexCount() == 0 {
		return nil, fmt.Errorf("NewGraph: empty graph: %w", ErrInvalidStructure)
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("NewGraph: %w: %w", ErrInvalidStructure, err)
	}
	if o.RequireConnected && len(comps) > 1 {
		return nil, fmt.Errorf("NewGraph: %d components, connected graph required: %w", len(comps), ErrInvalidStructure)
	}

	n := g.VertexCount()
	l := &Graph{
		base:   newBase(KindGraph, o),
		graph:  g,
		local:  make([]int, n),
		compOf: make([]int, n),
	}
	l.atoms = n

	refinements := 0
	for c, verts := range comps {
		if len(verts) > maxComponentVertices {
			return nil, fmt.Errorf("NewGraph: component of %d vertices, cap %d: %w",
				len(verts), maxComponentVertices, ErrTooLarge)
		}
		for i, v := range verts {
			l.local[v] = i
			l.compOf[v] = c
		}
		refinements += l.buildComponent(c, verts)
	}

	if len(comps) > 1 {
		root := gsubset{comp: -1, refs: []Refinement{make(Refinement, len(l.comps))}}
		for c := range l.comps {
			root.refs[0][c] = l.comps[c].top
		}
		l.subsets = append(l.subsets, root)
		l.rooted = true
		refinements++
	}
	l.count = len(l.subsets)
	l.logBuilt(refinements, "components", len(comps))

	return l, nil
}

// buildComponent records every connected subset of one component and returns
// the number of bipartitions found.
func (l *Graph) buildComponent(c int, verts []int) int {
	k := len(verts)
	nbr := make([]uint64, k)
	for i, v := range verts {
		adj, _ := l.graph.Neighbors(v) // v is in range
		for _, u := range adj {
			nbr[i] |= 1 << uint(l.local[u])
		}
	}
	comp := gcomponent{order: verts, index: make(map[uint64]SubsetRef)}
	l.comps = append(l.comps, comp)
	index := comp.index

	record := func(mask uint64) SubsetRef {
		id := SubsetRef(len(l.subsets))
		l.subsets = append(l.subsets, gsubset{comp: c, mask: mask})
		index[mask] = id

		return id
	}
	neighbourhood := func(mask uint64) uint64 {
		var out uint64
		for m := mask; m != 0; m &= m - 1 {
			out |= nbr[bits.TrailingZeros64(m)]
		}

		return out
	}

	found := 0
	var last SubsetRef
	for i := 0; i < k; i++ {
		newest := uint64(1) << uint(i)
		lower := newest - 1
		last = record(newest)
		level := []uint64{newest}
		for len(level) > 0 {
			var next []uint64
			for _, s := range level {
				ext := neighbourhood(s) & lower &^ s
				for e := ext; e != 0; e &= e - 1 {
					t := s | e&-e
					if _, ok := index[t]; ok {
						continue
					}
					last = record(t)
					found += l.bipartitions(last, t, newest, neighbourhood, index)
					next = append(next, t)
				}
			}
			level = next
		}
	}
	l.comps[c].top = last

	return found
}

// bipartitions attaches to id (mask s) every {S\B, B} with B connected,
// newest ∈ B ⊊ S and S\B recorded.
func (l *Graph) bipartitions(id SubsetRef, s, newest uint64,
	neighbourhood func(uint64) uint64, index map[uint64]SubsetRef,
) int {
	seen := map[uint64]bool{newest: true}
	queue := []uint64{newest}
	found := 0
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		if rest, ok := index[s^b]; ok {
			l.subsets[id].refs = append(l.subsets[id].refs, Refinement{rest, index[b]})
			found++
		}
		ext := neighbourhood(b) & s &^ b
		for e := ext; e != 0; e &= e - 1 {
			t := b | e&-e
			if t == s || seen[t] {
				continue
			}
			seen[t] = true
			queue = append(queue, t)
		}
	}

	return found
}

// Source returns the underlying graph.
func (l *Graph) Source() *core.Graph { return l.graph }

// Components returns the vertex lists of the connected components, in BFS order.
func (l *Graph) Components() [][]int {
	out := make([][]int, len(l.comps))
	for c := range l.comps {
		out[c] = append([]int(nil), l.comps[c].order...)
	}

	return out
}

// ComponentTops returns the top subset of every component.
func (l *Graph) ComponentTops() []SubsetRef {
	out := make([]SubsetRef, len(l.comps))
	for c := range l.comps {
		out[c] = l.comps[c].top
	}

	return out
}

func (l *Graph) IsAtomic(s SubsetRef) bool {
	return l.valid(s) && l.subsets[s].comp >= 0 && bits.OnesCount64(l.subsets[s].mask) == 1
}

func (l *Graph) Feasible(s SubsetRef) bool {
	return l.valid(s) && l.subsets[s].comp >= 0
}

func (l *Graph) Atom(i int) (SubsetRef, error) {
	if i < 0 || i >= l.atoms {
		return 0, fmt.Errorf("Atom(%d): %w", i, ErrSubsetNotFound)
	}

	return l.comps[l.compOf[i]].index[1<<uint(l.local[i])], nil
}

// Lookup resolves a connected vertex set, or the whole vertex set of a
// disconnected graph to its synthetic root.
func (l *Graph) Lookup(elements []int) (SubsetRef, error) {
	sorted, err := normalizeElements("Lookup", elements, l.atoms)
	if err != nil {
		return 0, err
	}
	if l.rooted && len(sorted) == l.atoms {
		return l.Top(), nil
	}
	c := l.compOf[sorted[0]]
	var mask uint64
	for _, v := range sorted {
		if l.compOf[v] != c {
			return 0, fmt.Errorf("Lookup(%v): spans components: %w", elements, ErrSubsetNotFound)
		}
		mask |= 1 << uint(l.local[v])
	}
	id, ok := l.comps[c].index[mask]
	if !ok {
		return 0, fmt.Errorf("Lookup(%v): not connected: %w", elements, ErrSubsetNotFound)
	}

	return id, nil
}

func (l *Graph) Elements(s SubsetRef) ([]int, error) {
	if err := l.checkRef("Elements", s); err != nil {
		return nil, err
	}
	sub := l.subsets[s]
	if sub.comp < 0 {
		return span(0, l.atoms), nil
	}

	return maskElements(sub.mask, l.comps[sub.comp].order), nil
}

func (l *Graph) Refinements(s SubsetRef) ([]Refinement, error) {
	if err := l.checkRef("Refinements", s); err != nil {
		return nil, err
	}
	refs := l.subsets[s].refs
	out := make([]Refinement, len(refs))
	for i, r := range refs {
		out[i] = append(Refinement(nil), r...)
	}

	return out, nil
}

func (l *Graph) ComputeValues() error { return l.compute(l) }

func (l *Graph) atomOf(s SubsetRef) int {
	sub := l.subsets[s]

	return l.comps[sub.comp].order[bits.TrailingZeros64(sub.mask)]
}

func (l *Graph) firstRefinement(s SubsetRef) Refinement { return l.subsets[s].refs[0] }
