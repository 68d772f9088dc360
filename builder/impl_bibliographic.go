// SPDX-License-Identifier: MIT
//
// File: impl_bibliographic.go
// Role: Fixtures shaped like bibliographic data: authorship links between
//       author and work vertices, and acyclic citation chains.

package builder

import (
	"slices"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Authorship adds authors vertices (type "author", ids prefix+index from
// WithPartitionPrefix, "A0", "A1", ... by default) and works vertices (type
// "work", "W0", ...). Work w is linked from authors (w+j) mod authors for
// j = 0..perWork-1 with relation "authored"; the edge carries
// AuthorPosition j+1 and the first author is marked corresponding.
//
// Errors: ErrTooFewVertices unless authors ≥ 1, works ≥ 1 and
// 1 ≤ perWork ≤ authors.
//
// Complexity: O(authors + works · perWork).
func Authorship(authors, works, perWork int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		const method = "Authorship"
		if err := requireMin(method, "authors", authors, 1); err != nil {
			return err
		}
		if err := requireMin(method, "works", works, 1); err != nil {
			return err
		}
		if err := requireMin(method, "perWork", perWork, 1); err != nil {
			return err
		}
		if perWork > authors {
			return requireMin(method, "authors", authors, perWork)
		}
		as, err := addVertices(g, method, PrefixIDFn(cfg.leftPrefix), 0, authors, "author")
		if err != nil {
			return err
		}
		ws, err := addVertices(g, method, PrefixIDFn(cfg.rightPrefix), 0, works, "work")
		if err != nil {
			return err
		}
		for w, work := range ws {
			for j := 0; j < perWork; j++ {
				pos, corresponding := j+1, j == 0
				e := core.Edge{
					Source:                as[(w+j)%authors],
					Target:                work,
					Relation:              core.RelationAuthored,
					AuthorPosition:        &pos,
					IsCorrespondingAuthor: &corresponding,
				}
				if err := emit(g, cfg, method, e); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// CitationDAG adds n works where work i cites min(refs, i) distinct earlier
// works drawn with the configured RNG, emitted in ascending index order.
// Every edge points from the citing to the cited work, so the result is
// acyclic and index order is a valid reverse topological order.
//
// Errors: ErrTooFewVertices for n < 1 or refs < 0, ErrNeedRandSource when
// refs > 0 and no RNG is configured.
//
// Complexity: O(n^2) draws in the worst case.
func CitationDAG(n, refs int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		const method = "CitationDAG"
		if err := requireMin(method, "n", n, 1); err != nil {
			return err
		}
		if err := requireMin(method, "refs", refs, 0); err != nil {
			return err
		}
		if refs > 0 && cfg.rng == nil {
			return wrapNeedRand(method)
		}
		ids, err := addVertices(g, method, cfg.idFn, 0, n, cfg.nodeType)
		if err != nil {
			return err
		}
		if refs == 0 {
			return nil
		}
		for i := 1; i < n; i++ {
			cited := cfg.rng.Perm(i)
			if len(cited) > refs {
				cited = cited[:refs]
			}
			slices.Sort(cited)
			for _, j := range cited {
				if err := addEdge(g, cfg, method, ids[i], ids[j], cfg.relation); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
