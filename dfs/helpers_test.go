// SPDX-License-Identifier: MIT

package dfs_test

import (
	"io"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

type graph = core.Graph[core.Vertex, core.Edge]

// build creates a graph over ids with one edge per [src, dst] pair.
// Edge ids are "e0", "e1", ... in pair order.
func build(t testing.TB, directed bool, ids []string, pairs [][2]string) *graph {
	t.Helper()
	g := core.NewGraph[core.Vertex, core.Edge](core.WithDirected(directed), core.WithLogger(log.New(io.Discard)))
	for _, id := range ids {
		require.NoError(t, g.AddNode(core.Vertex{ID: id, Type: "work"}))
	}
	for i, p := range pairs {
		require.NoError(t, g.AddEdge(core.Edge{ID: "e" + strconv.Itoa(i), Source: p[0], Target: p[1]}))
	}
	return g
}

// buildChain creates a directed chain N0→N1→…→N(n-1).
func buildChain(t testing.TB, n int) *graph {
	ids := make([]string, n)
	pairs := make([][2]string, 0, n)
	for i := range ids {
		ids[i] = "N" + strconv.Itoa(i)
		if i > 0 {
			pairs = append(pairs, [2]string{ids[i-1], ids[i]})
		}
	}
	return build(t, true, ids, pairs)
}

// buildBinaryTree creates a directed complete binary tree with 2^depth-1 nodes.
func buildBinaryTree(t testing.TB, depth int) *graph {
	n := 1<<depth - 1
	ids := make([]string, n)
	pairs := make([][2]string, 0, n)
	for i := range ids {
		ids[i] = "T-" + strconv.Itoa(i+1)
		if i > 0 {
			pairs = append(pairs, [2]string{ids[(i-1)/2], ids[i]})
		}
	}
	return build(t, true, ids, pairs)
}

// position returns the index of v in order, or -1.
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}
	return -1
}
