// SPDX-License-Identifier: MIT

package community

import (
	"math"
	"slices"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// pageRankTolerance and pageRankMaxRounds bound the stationary-flow solve.
const (
	pageRankTolerance = 1e-15
	pageRankMaxRounds = 1000
)

// flowGraph carries the random-walk flow Infomap compresses.
type flowGraph struct {
	n        int
	nodeFlow []float64 // visit rate p_i
	out      [][]wedge // link flow i -> j, i != j
	in       [][]wedge // link flow j -> i, i != j
}

// Infomap minimises the two-level map equation with the Louvain scaffold:
// local moving of nodes between modules, then aggregation of modules into
// super-nodes, repeated until a level shortens the codelength by at most
// MinImprovement.
//
// On undirected graphs node flow is proportional to weighted degree. On
// directed graphs it is the PageRank distribution with teleportation
// probability Teleportation; teleport steps are not coded.
//
// The result reports Codelength in bits; communities report density and
// conductance.
//
// Errors: as Louvain.
//
// Complexity: O(levels · passes · E) plus the flow solve.
func Infomap[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], opts ...Option) (*Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := core.RequireNodes(g, 1); err != nil {
		return nil, err
	}
	fg, err := newFlowGraph(g, o.Teleportation)
	if err != nil {
		return nil, err
	}

	st := run{algorithm: "infomap", converged: true}
	assign := identity(fg.n)
	cur := fg
	prev := newMapState(cur, identity(cur.n)).codelength()

	for o.MaxLevels == 0 || st.levels < o.MaxLevels {
		labels := identity(cur.n)
		moved, passes, converged, err := cur.localMove(labels, o)
		st.iterations += passes
		if err != nil {
			return nil, err
		}
		if !moved {
			break
		}
		st.levels++
		st.converged = st.converged && converged

		k := compact(labels)
		for i := range assign {
			assign[i] = labels[assign[i]]
		}
		l := newMapState(cur, labels).codelength()
		cur = cur.aggregate(labels, k)
		if prev-l <= o.MinImprovement || k == 1 {
			break
		}
		prev = l
	}

	st.codelength = newMapState(fg, assign).codelength()
	return finish(g, assign, o, st, scoreBoth)
}

// newFlowGraph computes node and link flows for g.
func newFlowGraph[N core.VertexData, E core.EdgeData](g *core.Graph[N, E], alpha float64) (*flowGraph, error) {
	w, err := newWGraph(g)
	if err != nil {
		return nil, err
	}
	n := w.n
	fg := &flowGraph{n: n, nodeFlow: make([]float64, n), out: make([][]wedge, n), in: make([][]wedge, n)}

	if !g.Directed() {
		if w.total == 0 {
			for i := range fg.nodeFlow {
				fg.nodeFlow[i] = 1 / float64(n)
			}
			return fg, nil
		}
		for i := 0; i < n; i++ {
			fg.nodeFlow[i] = w.deg[i] / w.total
			for _, e := range w.nbrs[i] {
				f := wedge{to: e.to, w: e.w / w.total}
				fg.out[i] = append(fg.out[i], f)
				fg.in[i] = append(fg.in[i], f)
			}
		}
		return fg, nil
	}

	// directed: weighted out-links including loops drive the walk
	outW := make([]float64, n)
	links := make([]map[int]float64, n)
	for _, e := range g.Edges() {
		u, v := g.Rank(e.SourceID()), g.Rank(e.TargetID())
		x := core.WeightOf(e)
		outW[u] += x
		if links[u] == nil {
			links[u] = make(map[int]float64)
		}
		links[u][v] += x
	}
	adj := make([][]wedge, n)
	for i, m := range links {
		adj[i] = sortedEdges(m)
	}

	p := make([]float64, n)
	for i := range p {
		p[i] = 1 / float64(n)
	}
	next := make([]float64, n)
	for round := 0; round < pageRankMaxRounds; round++ {
		dangling := 0.0
		for i := range next {
			next[i] = 0
			if outW[i] == 0 {
				dangling += p[i]
			}
		}
		for i, nbrs := range adj {
			if outW[i] == 0 {
				continue
			}
			for _, e := range nbrs {
				next[e.to] += (1 - alpha) * p[i] * e.w / outW[i]
			}
		}
		base := (alpha + (1-alpha)*dangling) / float64(n)
		diff := 0.0
		for i := range next {
			next[i] += base
			diff += math.Abs(next[i] - p[i])
		}
		p, next = next, p
		if diff < pageRankTolerance {
			break
		}
	}
	copy(fg.nodeFlow, p)

	for i, nbrs := range adj {
		for _, e := range nbrs {
			if e.to == i || outW[i] == 0 {
				continue
			}
			f := (1 - alpha) * p[i] * e.w / outW[i]
			fg.out[i] = append(fg.out[i], wedge{to: e.to, w: f})
			fg.in[e.to] = append(fg.in[e.to], wedge{to: i, w: f})
		}
	}
	for i := range fg.in {
		slices.SortFunc(fg.in[i], func(a, b wedge) int { return a.to - b.to })
	}
	return fg, nil
}

// aggregate merges modules into super-nodes, dropping intra-module flow.
func (fg *flowGraph) aggregate(labels []int, k int) *flowGraph {
	next := &flowGraph{n: k, nodeFlow: make([]float64, k), out: make([][]wedge, k), in: make([][]wedge, k)}
	acc := make([]map[int]float64, k)
	for i := 0; i < fg.n; i++ {
		ci := labels[i]
		next.nodeFlow[ci] += fg.nodeFlow[i]
		for _, e := range fg.out[i] {
			cj := labels[e.to]
			if ci == cj {
				continue
			}
			if acc[ci] == nil {
				acc[ci] = make(map[int]float64)
			}
			acc[ci][cj] += e.w
		}
	}
	for c, m := range acc {
		next.out[c] = sortedEdges(m)
		for _, e := range next.out[c] {
			next.in[e.to] = append(next.in[e.to], wedge{to: c, w: e.w})
		}
	}
	return next
}

// mapState tracks per-module exit and total flow for the map equation.
type mapState struct {
	fg      *flowGraph
	exit    []float64
	flow    []float64
	outTot  []float64 // flow leaving each node
	inTot   []float64 // flow entering each node
	nodeEnt float64   // Σ plogp(p_i)
}

func newMapState(fg *flowGraph, labels []int) *mapState {
	s := &mapState{
		fg:     fg,
		exit:   make([]float64, fg.n),
		flow:   make([]float64, fg.n),
		outTot: make([]float64, fg.n),
		inTot:  make([]float64, fg.n),
	}
	for i := 0; i < fg.n; i++ {
		s.nodeEnt += plogp(fg.nodeFlow[i])
		s.flow[labels[i]] += fg.nodeFlow[i]
		for _, e := range fg.out[i] {
			s.outTot[i] += e.w
			if labels[e.to] != labels[i] {
				s.exit[labels[i]] += e.w
			}
		}
		for _, e := range fg.in[i] {
			s.inTot[i] += e.w
		}
	}
	return s
}

// codelength evaluates
// L = plogp(Σq) − 2Σ plogp(q_c) − Σ plogp(p_i) + Σ plogp(q_c + p_c).
func (s *mapState) codelength() float64 {
	var sumExit, exitTerm, moduleTerm float64
	for c := range s.exit {
		sumExit += s.exit[c]
		exitTerm += plogp(s.exit[c])
		moduleTerm += plogp(s.exit[c] + s.flow[c])
	}
	return plogp(sumExit) - 2*exitTerm - s.nodeEnt + moduleTerm
}

// localMove moves nodes between modules while the codelength shrinks.
func (fg *flowGraph) localMove(labels []int, o Options) (moved bool, passes int, converged bool, err error) {
	s := newMapState(fg, labels)
	var sumExit, exitTerm, moduleTerm float64
	for c := range s.exit {
		sumExit += s.exit[c]
		exitTerm += plogp(s.exit[c])
		moduleTerm += plogp(s.exit[c] + s.flow[c])
	}
	length := func() float64 { return plogp(sumExit) - 2*exitTerm - s.nodeEnt + moduleTerm }

	outTo := make([]float64, fg.n)
	inFrom := make([]float64, fg.n)
	mark := make([]bool, fg.n)
	var touched []int

	for passes < o.MaxIterations {
		if err := o.cancelled(); err != nil {
			return moved, passes, false, err
		}
		passes++
		before := length()
		moves := 0

		for i := 0; i < fg.n; i++ {
			for _, c := range touched {
				outTo[c], inFrom[c], mark[c] = 0, 0, false
			}
			touched = touched[:0]
			touch := func(c int) {
				if !mark[c] {
					mark[c] = true
					touched = append(touched, c)
				}
			}
			for _, e := range fg.out[i] {
				c := labels[e.to]
				touch(c)
				outTo[c] += e.w
			}
			for _, e := range fg.in[i] {
				c := labels[e.to]
				touch(c)
				inFrom[c] += e.w
			}
			slices.Sort(touched)

			a := labels[i]
			p := fg.nodeFlow[i]
			exitA := s.exit[a] - (s.outTot[i] - outTo[a]) + inFrom[a]
			flowA := s.flow[a] - p

			// remove the old module's terms and add the shrunk module's
			baseSum := sumExit - s.exit[a] + exitA
			baseExit := exitTerm - plogp(s.exit[a]) + plogp(exitA)
			baseModule := moduleTerm - plogp(s.exit[a]+s.flow[a]) + plogp(exitA+flowA)

			best := a
			bestLen := length()
			var bestExitB float64
			for _, b := range touched {
				if b == a {
					continue
				}
				exitB := s.exit[b] + (s.outTot[i] - outTo[b]) - inFrom[b]
				flowB := s.flow[b] + p
				l := plogp(baseSum-s.exit[b]+exitB) -
					2*(baseExit-plogp(s.exit[b])+plogp(exitB)) -
					s.nodeEnt +
					(baseModule - plogp(s.exit[b]+s.flow[b]) + plogp(exitB+flowB))
				if l < bestLen-gainEpsilon {
					best, bestLen, bestExitB = b, l, exitB
				}
			}
			if best == a {
				continue
			}

			b := best
			sumExit = baseSum - s.exit[b] + bestExitB
			exitTerm = baseExit - plogp(s.exit[b]) + plogp(bestExitB)
			moduleTerm = baseModule - plogp(s.exit[b]+s.flow[b]) + plogp(bestExitB+s.flow[b]+p)
			s.exit[a], s.flow[a] = exitA, flowA
			s.exit[b], s.flow[b] = bestExitB, s.flow[b]+p
			labels[i] = b
			moves++
		}

		if moves == 0 {
			return moved, passes, true, nil
		}
		moved = true
		if before-length() <= o.MinImprovement {
			return moved, passes, true, nil
		}
	}
	return moved, passes, false, nil
}

// plogp returns p·log2(p), 0 for p <= 0.
func plogp(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return p * math.Log2(p)
}
