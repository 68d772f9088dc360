// SPDX-License-Identifier: MIT

package community_test

import (
	"strconv"
	"testing"

	"github.com/Mearman/Academic-Explorer-sub005/community"
)

// cliqueChain links size-node cliques in a chain by single bridges.
func cliqueChain(b *testing.B, cliques, size int) *graph {
	var ids []string
	var pairs [][2]string
	for c := 0; c < cliques; c++ {
		base := len(ids)
		for i := 0; i < size; i++ {
			ids = append(ids, strconv.Itoa(base+i))
		}
		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				pairs = append(pairs, [2]string{ids[base+i], ids[base+j]})
			}
		}
		if c > 0 {
			pairs = append(pairs, [2]string{ids[base-1], ids[base]})
		}
	}
	return build(b, false, ids, pairs)
}

func BenchmarkLouvain(b *testing.B) {
	g := cliqueChain(b, 200, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := community.Louvain(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLeiden(b *testing.B) {
	g := cliqueChain(b, 200, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := community.Leiden(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInfomap(b *testing.B) {
	g := cliqueChain(b, 200, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := community.Infomap(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSpectral(b *testing.B) {
	g := cliqueChain(b, 20, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := community.Spectral(g, 20); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHierarchical(b *testing.B) {
	g := cliqueChain(b, 20, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := community.Hierarchical(g, community.Average); err != nil {
			b.Fatal(err)
		}
	}
}
