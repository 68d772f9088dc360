// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Mearman/Academic-Explorer-sub005/bfs"
	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// ExampleBFS walks a small citation chain backwards from the most cited work
// to find everything that builds on it.
func ExampleBFS() {
	g := core.NewGraph[core.Vertex, core.Edge](core.WithDirected(true), core.WithLogger(log.New(io.Discard)))
	for _, id := range []string{"W1", "W2", "W3", "W4"} {
		_ = g.AddNode(core.Vertex{ID: id, Type: "work"})
	}
	_ = g.AddEdge(core.Edge{ID: "c1", Source: "W2", Target: "W1"})
	_ = g.AddEdge(core.Edge{ID: "c2", Source: "W3", Target: "W2"})
	_ = g.AddEdge(core.Edge{ID: "c3", Source: "W4", Target: "W1"})

	res, err := bfs.BFS(g, "W1", bfs.WithDirection(core.In))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Layers())
	path, _ := res.PathTo("W3")
	fmt.Println(path)

	// Output:
	// [[W1] [W2 W4] [W3]]
	// [W1 W2 W3]
}
