// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Mearman/Academic-Explorer-sub005/core"
	"github.com/Mearman/Academic-Explorer-sub005/motif"
)

type triangleReport struct {
	Count                 int         `json:"count"`
	ConnectedTriples      int         `json:"connected_triples"`
	ClusteringCoefficient float64     `json:"clustering_coefficient"`
	Triangles             [][3]string `json:"triangles"`
}

func (a *app) newMotifsCmd() *cobra.Command {
	var (
		kind      string
		minCount  int
		direction string
		relations []string
	)
	cmd := &cobra.Command{
		Use:   "motifs <graph>",
		Short: "Count triangles, stars, co-citations or bibliographic coupling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			var opts []motif.Option
			if len(relations) > 0 {
				opts = append(opts, motif.WithRelation(relations...))
			}
			switch kind {
			case "triangles":
				return a.runTriangles(cmd, g)
			case "stars":
				dir, err := parseDirection(direction)
				if err != nil {
					return err
				}
				return a.runStars(cmd, g, minCount, dir)
			case "cocitation":
				pairs, err := motif.CoCitations(g, minCount, opts...)
				if err != nil {
					return err
				}
				return a.renderPairs(cmd, pairs)
			case "coupling":
				pairs, err := motif.BibliographicCoupling(g, minCount, opts...)
				if err != nil {
					return err
				}
				return a.renderPairs(cmd, pairs)
			}
			return fmt.Errorf("unknown motif %q: %w", kind, core.ErrInvalidInput)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "triangles", "triangles, stars, cocitation or coupling")
	cmd.Flags().IntVar(&minCount, "min", 2, "minimum star degree or shared-citation count")
	cmd.Flags().StringVar(&direction, "direction", "both", "with --kind stars: out, in or both")
	cmd.Flags().StringSliceVar(&relations, "relation", nil, "edge relations that count as citations")
	return cmd
}

func (a *app) runTriangles(cmd *cobra.Command, g *graph) error {
	res, err := motif.Triangles(g)
	if err != nil {
		return err
	}
	rep := triangleReport{
		Count:                 res.Count,
		ConnectedTriples:      res.ConnectedTriples,
		ClusteringCoefficient: res.ClusteringCoefficient,
		Triangles:             make([][3]string, 0, len(res.Triangles)),
	}
	for _, t := range res.Triangles {
		rep.Triangles = append(rep.Triangles, t)
	}
	return a.render(cmd, rep, func(w io.Writer) {
		for _, t := range rep.Triangles {
			fmt.Fprintf(w, "%s %s %s\n", t[0], t[1], t[2])
		}
		fmt.Fprintf(w, "triangles %d, triples %d, clustering %s\n", rep.Count, rep.ConnectedTriples, ftoa(rep.ClusteringCoefficient))
	})
}

func (a *app) runStars(cmd *cobra.Command, g *graph, minCount int, dir core.Direction) error {
	stars, err := motif.Stars(g, minCount, dir)
	if err != nil {
		return err
	}
	return a.render(cmd, stars, func(w io.Writer) {
		rows := make([][]string, 0, len(stars))
		for _, s := range stars {
			rows = append(rows, []string{s.Hub, strconv.Itoa(s.Degree), joinIDs(s.Leaves)})
		}
		writeTable(w, []string{"HUB", "DEGREE", "LEAVES"}, rows)
	})
}

func (a *app) renderPairs(cmd *cobra.Command, pairs []motif.Pair) error {
	return a.render(cmd, pairs, func(w io.Writer) {
		rows := make([][]string, 0, len(pairs))
		for _, p := range pairs {
			rows = append(rows, []string{p.A, p.B, strconv.Itoa(p.Count), joinIDs(p.Common)})
		}
		writeTable(w, []string{"A", "B", "COUNT", "COMMON"}, rows)
	})
}
