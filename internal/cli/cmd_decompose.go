// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Mearman/Academic-Explorer-sub005/core"
	"github.com/Mearman/Academic-Explorer-sub005/decompose"
)

type kcoreReport struct {
	MaxCore  int            `json:"max_core"`
	Coreness map[string]int `json:"coreness"`
	Core     []string       `json:"core,omitempty"`
}

type trussEntry struct {
	Edge  string `json:"edge"`
	Truss int    `json:"truss"`
}

func (a *app) newDecomposeCmd() *cobra.Command {
	var (
		kind string
		k    int
	)
	cmd := &cobra.Command{
		Use:   "decompose <graph>",
		Short: "Run k-core, k-truss, biconnected or core-periphery decomposition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			switch kind {
			case "kcore":
				return a.runKCore(cmd, g, k)
			case "truss":
				return a.runTruss(cmd, g)
			case "biconnected":
				return a.runBiconnected(cmd, g)
			case "core-periphery":
				return a.runCorePeriphery(cmd, g)
			}
			return fmt.Errorf("unknown decomposition %q: %w", kind, core.ErrInvalidInput)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "kcore", "kcore, truss, biconnected or core-periphery")
	cmd.Flags().IntVar(&k, "k", 0, "with --kind kcore, list the members of the k-core")
	return cmd
}

func (a *app) runKCore(cmd *cobra.Command, g *graph, k int) error {
	d, err := decompose.KCore(g)
	if err != nil {
		return err
	}
	rep := kcoreReport{MaxCore: d.MaxCore, Coreness: d.Coreness}
	if k > 0 {
		rep.Core = d.Core(k)
	}
	return a.render(cmd, rep, func(w io.Writer) {
		rows := make([][]string, 0, g.NodeCount())
		for _, id := range g.NodeIDs() {
			rows = append(rows, []string{id, strconv.Itoa(d.Coreness[id])})
		}
		writeTable(w, []string{"NODE", "CORENESS"}, rows)
		fmt.Fprintf(w, "max core %d\n", d.MaxCore)
		if k > 0 {
			fmt.Fprintf(w, "%d-core: %s\n", k, joinIDs(rep.Core))
		}
	})
}

func (a *app) runTruss(cmd *cobra.Command, g *graph) error {
	tn, err := decompose.TrussNumbers(g)
	if err != nil {
		return err
	}
	entries := make([]trussEntry, 0, len(tn))
	for _, e := range g.Edges() {
		if t, ok := tn[e.ID]; ok {
			entries = append(entries, trussEntry{Edge: e.ID, Truss: t})
		}
	}
	return a.render(cmd, entries, func(w io.Writer) {
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Edge, strconv.Itoa(e.Truss)})
		}
		writeTable(w, []string{"EDGE", "TRUSS"}, rows)
	})
}

func (a *app) runBiconnected(cmd *cobra.Command, g *graph) error {
	res, err := decompose.Biconnected(g)
	if err != nil {
		return err
	}
	return a.render(cmd, res, func(w io.Writer) {
		rows := make([][]string, 0, len(res.Components))
		for _, b := range res.Components {
			rows = append(rows, []string{strconv.Itoa(b.ID), joinIDs(b.Nodes), joinIDs(b.Edges), strconv.FormatBool(b.IsBridge)})
		}
		writeTable(w, []string{"ID", "NODES", "EDGES", "BRIDGE"}, rows)
		fmt.Fprintf(w, "articulation points: %s\n", joinIDs(res.ArticulationPoints))
	})
}

func (a *app) runCorePeriphery(cmd *cobra.Command, g *graph) error {
	res, err := decompose.CorePeriphery(g)
	if err != nil {
		return err
	}
	return a.render(cmd, res, func(w io.Writer) {
		rows := make([][]string, 0, g.NodeCount())
		for _, id := range g.NodeIDs() {
			rows = append(rows, []string{id, ftoa(res.Coreness[id])})
		}
		writeTable(w, []string{"NODE", "CORENESS"}, rows)
		fmt.Fprintf(w, "core: %s\nperiphery: %s\nfit %s\n", joinIDs(res.Core), joinIDs(res.Periphery), ftoa(res.Fit))
	})
}
