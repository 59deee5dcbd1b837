// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/optpart/core"
)

// Components returns the connected components of g. Each component lists its
// vertices in BFS order from its lowest vertex; components are ordered by
// that lowest vertex.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	seen := make([]bool, n)
	var out [][]int
	for v := 0; v < n; v++ {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// IsConnected reports whether vertices induce a connected subgraph of g.
// An empty set is not connected; a singleton is. Duplicates are ignored.
func IsConnected(g *core.Graph, vertices []int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if len(vertices) == 0 {
		return false, nil
	}

	members := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		if !g.HasVertex(v) {
			return false, fmt.Errorf("bfs: IsConnected vertex %d: %w", v, ErrStartVertexNotFound)
		}
		members[v] = true
	}
	res, err := BFS(g, vertices[0], WithinSet(members))
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(members), nil
}
