// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mearman/Academic-Explorer-sub005/core"
	"github.com/Mearman/Academic-Explorer-sub005/dfs"
)

func TestDetectCycle_NilGraph(t *testing.T) {
	_, err := dfs.DetectCycle[core.Vertex, core.Edge](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDetectCycle_DirectedAcyclic(t *testing.T) {
	// A→B→C, A→D→C: a diamond is not a directed cycle
	g := build(t, true, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"A", "D"}, {"D", "C"}})
	res, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.False(t, res.HasCycle)
	assert.Nil(t, res.Cycle)
}

func TestDetectCycle_DirectedCycle(t *testing.T) {
	g := build(t, true, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "B"}})
	res, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.True(t, res.HasCycle)
	assert.Equal(t, []string{"B", "C", "D", "B"}, res.Cycle)
}

func TestDetectCycle_SelfLoop(t *testing.T) {
	g := build(t, true, []string{"A"}, [][2]string{{"A", "A"}})
	res, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, res.Cycle)
}

func TestDetectCycle_Undirected(t *testing.T) {
	// path A–B–C–D has no cycle
	path := build(t, false, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})
	res, err := dfs.DetectCycle(path)
	require.NoError(t, err)
	assert.False(t, res.HasCycle)

	tri := build(t, false, []string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	res, err = dfs.DetectCycle(tri)
	require.NoError(t, err)
	assert.True(t, res.HasCycle)
	assert.Equal(t, []string{"A", "B", "C", "A"}, res.Cycle)
}

func TestDetectCycle_UndirectedParallelEdges(t *testing.T) {
	g := build(t, false, []string{"A", "B"}, [][2]string{{"A", "B"}, {"B", "A"}})
	res, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.True(t, res.HasCycle)
	assert.Equal(t, []string{"A", "B", "A"}, res.Cycle)
}

func TestDetectCycle_DeepChain(t *testing.T) {
	const n = 100_000
	g := buildChain(t, n)
	require.NoError(t, g.AddEdge(core.Edge{ID: "back", Source: "N99999", Target: "N0"}))

	res, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	require.True(t, res.HasCycle)
	require.Len(t, res.Cycle, n+1)
	assert.Equal(t, "N0", res.Cycle[0])
	assert.Equal(t, "N99999", res.Cycle[n-1])
}
