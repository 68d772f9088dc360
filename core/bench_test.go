// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for core.Graph operations.

package core_test

import (
	"strconv"
	"testing"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// ring builds an n-node directed cycle with one chord per node.
func ring(n int) *testGraph {
	g := core.NewGraph[core.Vertex, core.Edge](core.WithDirected(true), core.WithLogger(quietLogger()))
	for i := 0; i < n; i++ {
		_ = g.AddNode(work("N" + strconv.Itoa(i)))
	}
	for i := 0; i < n; i++ {
		src := "N" + strconv.Itoa(i)
		_ = g.AddEdge(link("r"+strconv.Itoa(i), src, "N"+strconv.Itoa((i+1)%n)))
		_ = g.AddEdge(link("c"+strconv.Itoa(i), src, "N"+strconv.Itoa((i+7)%n)))
	}
	return g
}

// BenchmarkAddEdge measures insertion into a star around a root node.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph[core.Vertex, core.Edge](core.WithLogger(quietLogger()))
	_ = g.AddNode(work("Root"))
	leaves := make([]string, b.N)
	for i := range leaves {
		leaves[i] = "N" + strconv.Itoa(i)
		_ = g.AddNode(work(leaves[i]))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(link("e"+strconv.Itoa(i), "Root", leaves[i]))
	}
}

// BenchmarkNeighbors measures Both-direction neighbour listing.
func BenchmarkNeighbors(b *testing.B) {
	g := ring(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors("N"+strconv.Itoa(i%1000), core.Both)
	}
}

// BenchmarkInducedSubgraph measures extraction of half the nodes.
func BenchmarkInducedSubgraph(b *testing.B) {
	g := ring(1000)
	ids := make([]string, 0, 500)
	for i := 0; i < 1000; i += 2 {
		ids = append(ids, "N"+strconv.Itoa(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.InducedSubgraph(g, ids)
	}
}

// BenchmarkFingerprint measures content hashing.
func BenchmarkFingerprint(b *testing.B) {
	g := ring(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Fingerprint()
	}
}
