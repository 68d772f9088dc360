// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// ExampleBuild shows bulk construction with a dangling edge being skipped.
func ExampleBuild() {
	nodes := []core.Vertex{
		{ID: "W1", Type: "work", Label: "Attention Is All You Need"},
		{ID: "W2", Type: "work", Label: "Sequence to Sequence Learning"},
		{ID: "A1", Type: "author", Label: "A. Vaswani"},
	}
	edges := []core.Edge{
		{ID: "c1", Source: "W1", Target: "W2", Relation: core.RelationCites},
		{ID: "a1", Source: "A1", Target: "W1", Relation: core.RelationAuthored},
		{ID: "c2", Source: "W1", Target: "W404", Relation: core.RelationCites},
	}

	g, report, err := core.Build(nodes, edges, core.WithDirected(true), core.WithLogger(quietLogger()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nodes:", report.Nodes, "edges:", report.Edges)
	fmt.Println("skipped:", report.SkippedEdges)
	fmt.Println("W1 cites:", g.Neighbors("W1", core.Out))
	fmt.Println("W1 in-degree:", g.Degree("W1", core.In))

	// Output:
	// nodes: 3 edges: 2
	// skipped: [c2]
	// W1 cites: [W2]
	// W1 in-degree: 1
}

// ExampleEgoNetwork extracts the one-hop neighbourhood of a work.
func ExampleEgoNetwork() {
	g := core.NewGraph[core.Vertex, core.Edge](core.WithDirected(true), core.WithLogger(quietLogger()))
	for _, id := range []string{"W1", "W2", "W3", "W4"} {
		_ = g.AddNode(core.Vertex{ID: id, Type: "work"})
	}
	_ = g.AddEdge(core.Edge{ID: "c1", Source: "W1", Target: "W2"})
	_ = g.AddEdge(core.Edge{ID: "c2", Source: "W3", Target: "W2"})
	_ = g.AddEdge(core.Edge{ID: "c3", Source: "W3", Target: "W4"})

	ego, _ := core.EgoNetwork(g, []string{"W2"}, 1)
	fmt.Println(ego.NodeIDs(), ego.EdgeCount())

	// Output:
	// [W1 W2 W3] 2
}
