// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mearman/Academic-Explorer-sub005/dijkstra"
)

type pathReport struct {
	Found    bool     `json:"found"`
	Nodes    []string `json:"nodes"`
	Edges    []string `json:"edges"`
	Distance float64  `json:"distance"`
}

func (a *app) newPathCmd() *cobra.Command {
	var (
		weight    string
		invert    bool
		direction string
	)
	cmd := &cobra.Command{
		Use:   "path <graph> <source> <target>",
		Short: "Find the shortest path between two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("weight") {
				cfg.Path.WeightProperty = weight
			}
			if cmd.Flags().Changed("invert") {
				cfg.Path.InvertWeight = invert
			}
			if cmd.Flags().Changed("direction") {
				if _, err := parseDirection(direction); err != nil {
					return err
				}
				cfg.Path.Direction = direction
			}
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			opts := append([]dijkstra.Option{dijkstra.WithContext(cmd.Context())}, cfg.Path.Options()...)
			p, err := dijkstra.ShortestPath(g, args[1], args[2], opts...)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("path search done", "found", p.Found, "hops", len(p.Edges))
			rep := pathReport{Found: p.Found, Nodes: p.Nodes, Edges: p.Edges, Distance: p.Distance}
			return a.render(cmd, rep, func(w io.Writer) {
				if !p.Found {
					fmt.Fprintf(w, "no path from %s to %s\n", args[1], args[2])
					return
				}
				fmt.Fprintln(w, strings.Join(p.Nodes, " -> "))
				fmt.Fprintf(w, "distance %s over %d edges\n", ftoa(p.Distance), len(p.Edges))
			})
		},
	}
	cmd.Flags().StringVar(&weight, "weight", "", "edge property to use as weight")
	cmd.Flags().BoolVar(&invert, "invert", false, "use the reciprocal of the weight property so higher values are cheaper")
	cmd.Flags().StringVar(&direction, "direction", "", "edges to follow: out, in or both")
	return cmd
}
