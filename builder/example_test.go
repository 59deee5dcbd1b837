// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/optpart/builder"
)

// ExampleBuildGraph composes a wheel and a detached edge.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(6, nil,
		builder.Wheel(4),
		builder.Shifted(4, builder.Path(2)),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.EdgeCount(), g.Edges())
	// Output:
	// 7 [{0 1} {0 2} {0 3} {1 2} {1 3} {2 3} {4 5}]
}
