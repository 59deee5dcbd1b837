// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/optpart/core"
)

// ExampleGraph_Edges builds a small star and prints its edge list.
func ExampleGraph_Edges() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(2, 0)

	fmt.Println(g.Edges())
	// Output:
	// [{0 1} {0 2} {0 3}]
}
