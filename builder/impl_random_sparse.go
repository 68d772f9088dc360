// SPDX-License-Identifier: MIT
//
// File: impl_random_sparse.go
// Role: Erdős–Rényi-like sampling. Each admissible pair is an independent
//       Bernoulli(p) trial.
// Determinism:
//   - Vertices by index ascending.
//   - Trials for i ascending, then j ascending (j > i when undirected, j != i
//     when directed), so a fixed seed fixes the edge set.

package builder

import (
	"fmt"
	"math"
)

// RandomSparse samples a graph over n vertices with edge probability p.
// p ∈ {0, 1} needs no RNG; any other p requires WithSeed or WithRand.
//
// Errors: ErrTooFewVertices for n < 1, ErrInvalidProbability for p outside
// [0, 1], ErrNeedRandSource.
//
// Complexity: O(n^2) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		const method = "RandomSparse"
		if err := requireMin(method, "n", n, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return wrapNeedRand(method)
		}
		ids, err := addVertices(g, method, cfg.idFn, 0, n, cfg.nodeType)
		if err != nil {
			return err
		}

		include := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}
			return cfg.rng.Float64() < p
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !include() {
					continue
				}
				if err := addEdge(g, cfg, method, ids[i], ids[j], cfg.relation); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
