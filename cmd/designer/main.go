// Package main provides the designer CLI: an interactive terminal canvas
// for laying out go-tui components, and an exporter that turns a saved
// layout into Go source.
//
// Usage:
//
//	designer run [--config designer.yaml] [--layout layout.yaml]
//	designer export layout.yaml [-o design.go] [--format go|yaml]
//	designer version
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Populated by ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if err := buildRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// buildRootCmd creates the root command with all subcommands attached.
func buildRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "designer",
		Short:        "Lay out go-tui components on a terminal canvas",
		Version:      fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "designer.yaml",
		"Path to YAML configuration file (missing file uses defaults)")

	root.AddCommand(
		buildRunCmd(&configPath),
		buildExportCmd(&configPath),
		buildVersionCmd(),
	)
	return root
}

func buildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "designer %s (commit: %s)\n", version, commit)
		},
	}
}
