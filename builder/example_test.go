// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Mearman/Academic-Explorer-sub005/builder"
	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// ExampleBuildGraph composes two triangles joined by a bridge.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLogger(log.New(io.Discard))},
		[]builder.BuilderOption{builder.WithPrefixIDs("W")},
		builder.DisjointCliques(2, 3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = g.AddEdge(core.Edge{ID: "bridge", Source: "W2", Target: "W3"})
	fmt.Println(g.NodeIDs(), g.EdgeCount())
	// Output:
	// [W0 W1 W2 W3 W4 W5] 7
}
