// SPDX-License-Identifier: MIT

package bfs_test

import (
	"strconv"
	"testing"

	"github.com/Mearman/Academic-Explorer-sub005/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	ids := make([]string, N+1)
	pairs := make([][2]string, N)
	for i := range ids {
		ids[i] = "v" + strconv.Itoa(i)
	}
	for i := 0; i < N; i++ {
		pairs[i] = [2]string{ids[i], ids[i+1]}
	}
	g := build(b, false, ids, pairs)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of 1023 vertices.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const n = 1<<10 - 1
	ids := make([]string, n)
	pairs := make([][2]string, 0, n-1)
	for i := range ids {
		ids[i] = "t" + strconv.Itoa(i)
		if i > 0 {
			pairs = append(pairs, [2]string{ids[(i-1)/2], ids[i]})
		}
	}
	g := build(b, false, ids, pairs)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "t0")
	}
}
