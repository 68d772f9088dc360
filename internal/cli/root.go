// SPDX-License-Identifier: MIT

// Package cli implements the citegraph command-line interface.
//
// Every analysis command reads a graph document (YAML or JSON, see package
// codec), runs one library routine and prints a table, or JSON with
// --output json. Logs go to stderr through charmbracelet/log; --verbose
// switches to debug level.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Mearman/Academic-Explorer-sub005/codec"
	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Version is reported by --version; main may override it.
var Version = "dev"

// app carries the state shared by every subcommand.
type app struct {
	verbose bool
	output  string
	config  string
}

// NewRootCommand assembles the command tree. Logs are written to errOut.
func NewRootCommand(errOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "citegraph",
		Short:         "Analyse citation graphs",
		Long:          "citegraph runs traversal, path, decomposition, motif and clustering routines over citation graph documents.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.output != outputText && a.output != outputJSON {
				return fmt.Errorf("--output must be %q or %q, got %q", outputText, outputJSON, a.output)
			}
			level := log.InfoLevel
			if a.verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(errOut, level)))
			return nil
		},
	}
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputText, "output format: text or json")
	root.PersistentFlags().StringVarP(&a.config, "config", "c", "", "analysis config file (.toml or .yaml)")

	root.AddCommand(
		a.newStatsCmd(),
		a.newTraverseCmd(),
		a.newPathCmd(),
		a.newDecomposeCmd(),
		a.newMotifsCmd(),
		a.newCommunitiesCmd(),
		a.newGenerateCmd(),
	)
	return root
}

// Execute runs the CLI with ctx and the given arguments.
func Execute(ctx context.Context, out, errOut io.Writer, args []string) error {
	root := NewRootCommand(errOut)
	root.SetOut(out)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// loadGraph reads a document and builds the graph with the command logger.
func (a *app) loadGraph(cmd *cobra.Command, path string) (*codec.Graph, error) {
	logger := loggerFromContext(cmd.Context())
	doc, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, report, err := codec.ToGraph(doc, core.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug("graph loaded", "path", path, "nodes", report.Nodes, "edges", report.Edges)
	if n := len(report.SkippedEdges); n > 0 {
		logger.Warn("edges skipped", "count", n)
	}
	return g, nil
}

// loadConfig returns the --config file, or an empty config when unset.
func (a *app) loadConfig() (*codec.AnalysisConfig, error) {
	if a.config == "" {
		return &codec.AnalysisConfig{}, nil
	}
	return codec.LoadConfig(a.config)
}

// render prints v as JSON or hands the writer to text.
func (a *app) render(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	if a.output == outputJSON {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	text(cmd.OutOrStdout())
	return nil
}

// graph is the concrete graph type every command works on.
type graph = codec.Graph
