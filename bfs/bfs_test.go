// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/Mearman/Academic-Explorer-sub005/bfs"
	"github.com/Mearman/Academic-Explorer-sub005/core"
)

type graph = core.Graph[core.Vertex, core.Edge]

// build creates a graph over ids with one edge per [src, dst] pair.
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

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[core.Vertex, core.Edge](nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, false, []string{"A"}, nil)
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = bfs.BFS(g, "A", bfs.WithDirection(core.Direction(9)))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := build(t, false, []string{"A"}, nil)
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, res.Order)
	require.Equal(t, 0, res.Depth["A"])
	require.Empty(t, res.Parent)
}

func TestBFS_CycleDepths(t *testing.T) {
	// A–B–C–D–A
	g := build(t, false, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	require.Equal(t, [][]string{{"A"}, {"B", "D"}, {"C"}}, res.Layers())

	path, err := res.PathTo("C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)
}

func TestBFS_Direction(t *testing.T) {
	// W1 cites W2, W3 cites W2
	g := build(t, true, []string{"W1", "W2", "W3"}, [][2]string{{"W1", "W2"}, {"W3", "W2"}})

	res, err := bfs.BFS(g, "W2")
	require.NoError(t, err)
	require.Equal(t, []string{"W2"}, res.Order, "nothing is cited by W2")

	res, err = bfs.BFS(g, "W2", bfs.WithDirection(core.In))
	require.NoError(t, err)
	require.Equal(t, []string{"W2", "W1", "W3"}, res.Order)

	res, err = bfs.BFS(g, "W1", bfs.WithDirection(core.Both))
	require.NoError(t, err)
	require.Equal(t, []string{"W1", "W2", "W3"}, res.Order)
	require.Equal(t, 2, res.Depth["W3"])
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := build(t, false, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)

	_, err = res.PathTo("D")
	require.Error(t, err)
}

func TestBFS_Hooks(t *testing.T) {
	g := build(t, false, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"A", "C"}})

	var enq, deq []string
	res, err := bfs.BFS(g, "A",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	require.Equal(t, res.Order, enq)
	require.Equal(t, res.Order, deq)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestBFS_Cancellation(t *testing.T) {
	g := build(t, false, []string{"A", "B"}, [][2]string{{"A", "B"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
