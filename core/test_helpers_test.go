// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"io"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Common node ids used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"
	NodeX = "X"
)

type testGraph = core.Graph[core.Vertex, core.Edge]

// quietLogger discards construction warnings so test output stays readable.
func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// work returns a vertex of type "work".
func work(id string) core.Vertex {
	return core.Vertex{ID: id, Type: "work", Label: "Work " + id}
}

// link returns a cites edge with the given endpoints and the cites relation.
func link(id, src, dst string) core.Edge {
	return core.Edge{ID: id, Source: src, Target: dst, Relation: core.RelationCites}
}

// newTestGraph builds a graph over ids with edges given as [src, dst] pairs.
// Edge ids are "e1", "e2", ... in pair order.
func newTestGraph(t *testing.T, directed bool, ids []string, pairs [][2]string) *testGraph {
	t.Helper()
	g := core.NewGraph[core.Vertex, core.Edge](core.WithDirected(directed), core.WithLogger(quietLogger()))
	for _, id := range ids {
		require.NoError(t, g.AddNode(work(id)), "AddNode(%s)", id)
	}
	for i, p := range pairs {
		require.NoError(t, g.AddEdge(link(edgeID(i), p[0], p[1])), "AddEdge(%s,%s)", p[0], p[1])
	}
	return g
}

func edgeID(i int) string {
	return "e" + strconv.Itoa(i+1)
}

func ptr[T any](v T) *T { return &v }
