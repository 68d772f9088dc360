// SPDX-License-Identifier: MIT

package community

import (
	"github.com/Mearman/Academic-Explorer-sub005/core"
	"github.com/Mearman/Academic-Explorer-sub005/quality"
)

// Community is one block of a clustering.
type Community struct {
	// ID is the community's index in Result.Communities.
	ID int

	// Members lists node ids in insertion order.
	Members []string

	Size int

	// Density is the internal edge density (Louvain and Infomap only).
	Density float64

	// Conductance is the boundary ratio (Leiden and Infomap only).
	Conductance float64
}

// Result is the outcome of a clustering run.
//
// Communities are numbered by the insertion rank of their first member, so
// equal input always gives identical ids.
type Result struct {
	Communities []Community

	// Membership maps node id -> community ID.
	Membership map[string]int

	// Modularity of the returned partition at the configured resolution.
	Modularity float64

	// Iterations counts passes over all levels.
	Iterations int

	// Levels counts aggregation levels (1 when no aggregation happened).
	Levels int

	// Converged is false when a pass cap cut optimisation short. The
	// partition is still valid; Err reports the shortfall.
	Converged bool

	// Codelength is the two-level map equation value in bits (Infomap only).
	Codelength float64

	algorithm string
}

// Err returns a *core.ConvergenceError when the run hit its iteration cap,
// nil otherwise.
func (r *Result) Err() error {
	if r == nil || r.Converged {
		return nil
	}
	return &core.ConvergenceError{Algorithm: r.algorithm, Iterations: r.Iterations}
}

// Partition returns the communities as member lists.
func (r *Result) Partition() [][]string {
	out := make([][]string, len(r.Communities))
	for i, c := range r.Communities {
		out[i] = c.Members
	}
	return out
}

// scoreKind selects which quality field a routine fills in.
type scoreKind int

const (
	scoreNone scoreKind = iota
	scoreDensity
	scoreConductance
	scoreBoth
)

// run carries the bookkeeping common to every routine.
type run struct {
	algorithm  string
	iterations int
	levels     int
	converged  bool
	codelength float64
}

// finish renumbers labels (indexed by node insertion rank) into a Result.
func finish[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], labels []int, o Options, st run, kind scoreKind) (*Result, error) {
	ids := g.NodeIDs()
	renumber := make(map[int]int)
	res := &Result{
		Membership: make(map[string]int, len(ids)),
		Iterations: st.iterations,
		Levels:     max(st.levels, 1),
		Converged:  st.converged,
		Codelength: st.codelength,
		algorithm:  st.algorithm,
	}
	for i, id := range ids {
		c, ok := renumber[labels[i]]
		if !ok {
			c = len(res.Communities)
			renumber[labels[i]] = c
			res.Communities = append(res.Communities, Community{ID: c})
		}
		res.Communities[c].Members = append(res.Communities[c].Members, id)
		res.Membership[id] = c
	}
	for i := range res.Communities {
		res.Communities[i].Size = len(res.Communities[i].Members)
	}

	parts := res.Partition()
	q, err := quality.Modularity(g, parts, o.Resolution)
	if err != nil {
		return nil, err
	}
	res.Modularity = q
	if kind != scoreNone {
		scores, err := quality.Scores(g, parts)
		if err != nil {
			return nil, err
		}
		for i, s := range scores {
			if kind == scoreDensity || kind == scoreBoth {
				res.Communities[i].Density = s.Density
			}
			if kind == scoreConductance || kind == scoreBoth {
				res.Communities[i].Conductance = s.Conductance
			}
		}
	}

	if !res.Converged {
		g.Logger().Debug("clustering stopped at iteration cap",
			"algorithm", st.algorithm, "iterations", st.iterations, "levels", res.Levels)
	}
	return res, nil
}
