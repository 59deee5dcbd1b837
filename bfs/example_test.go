// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/optpart/bfs"
	"github.com/katalvlaran/optpart/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid where
// vertex r*3+c sits at row r, column c.
func ExampleBFS_gridTraversal() {
	g, _ := core.NewGraph(9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v := r*3 + c
			if c+1 < 3 {
				_ = g.AddEdge(v, v+1)
			}
			if r+1 < 3 {
				_ = g.AddEdge(v, v+3)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleComponents shows component decomposition of a disconnected graph.
func ExampleComponents() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 4)
	_ = g.AddEdge(1, 2)

	comps, _ := bfs.Components(g)
	fmt.Println(comps)
	// Output:
	// [[0 4] [1 2] [3]]
}
