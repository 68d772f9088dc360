// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Mearman/Academic-Explorer-sub005/components"
	"github.com/Mearman/Academic-Explorer-sub005/dfs"
)

type statsReport struct {
	Fingerprint string         `json:"fingerprint"`
	Directed    bool           `json:"directed"`
	Nodes       int            `json:"nodes"`
	Edges       int            `json:"edges"`
	SelfLoops   int            `json:"self_loops"`
	Isolated    int            `json:"isolated"`
	Components  int            `json:"components"`
	Largest     int            `json:"largest_component"`
	Strong      int            `json:"strong_components,omitempty"`
	Cycle       []string       `json:"cycle,omitempty"`
	NodeTypes   map[string]int `json:"node_types,omitempty"`
	Relations   map[string]int `json:"relations,omitempty"`
}

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <graph>",
		Short: "Summarise size, connectivity and cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			st := g.Stats()
			rep := statsReport{
				Fingerprint: g.Fingerprint().String(),
				Directed:    st.Directed,
				Nodes:       st.NodeCount,
				Edges:       st.EdgeCount,
				SelfLoops:   st.SelfLoops,
				Isolated:    st.Isolated,
				NodeTypes:   st.NodeTypes,
				Relations:   st.Relations,
			}
			cc, err := components.Connected(g)
			if err != nil {
				return err
			}
			rep.Components = cc.Count()
			if c, ok := components.Largest(cc); ok {
				rep.Largest = c.Size
			}
			if g.Directed() {
				scc, err := components.StronglyConnected(g)
				if err != nil {
					return err
				}
				rep.Strong = scc.Count()
			}
			cyc, err := dfs.DetectCycle(g)
			if err != nil {
				return err
			}
			rep.Cycle = cyc.Cycle

			return a.render(cmd, rep, func(w io.Writer) {
				rows := [][]string{
					{"fingerprint", rep.Fingerprint},
					{"directed", strconv.FormatBool(rep.Directed)},
					{"nodes", strconv.Itoa(rep.Nodes)},
					{"edges", strconv.Itoa(rep.Edges)},
					{"self-loops", strconv.Itoa(rep.SelfLoops)},
					{"isolated", strconv.Itoa(rep.Isolated)},
					{"components", strconv.Itoa(rep.Components)},
					{"largest component", strconv.Itoa(rep.Largest)},
				}
				if rep.Directed {
					rows = append(rows, []string{"strong components", strconv.Itoa(rep.Strong)})
				}
				cycle := "none"
				if len(rep.Cycle) > 0 {
					cycle = joinIDs(rep.Cycle)
				}
				rows = append(rows, []string{"cycle", cycle})
				rows = append(rows, countRows("type", rep.NodeTypes)...)
				rows = append(rows, countRows("relation", rep.Relations)...)
				writeTable(w, []string{"METRIC", "VALUE"}, rows)
			})
		},
	}
}

// countRows renders a count map as sorted "prefix key" rows.
func countRows(prefix string, m map[string]int) [][]string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{fmt.Sprintf("%s %s", prefix, k), strconv.Itoa(m[k])})
	}
	return rows
}
