package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tui-designer/internal/config"
	"github.com/grindlemire/go-tui-designer/pkg/canvas"
	"github.com/grindlemire/go-tui-designer/pkg/codegen"
)

type exportOptions struct {
	configPath string
	output     string
	format     string
	pkg        string
	funcName   string
}

func buildExportCmd(configPath *string) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export <layout.yaml>",
		Short: "Export a saved layout as go-tui Go source",
		Long: `Export a layout saved by "designer run --layout" as a Go file that builds
the same components with go-tui. With --format yaml the layout is written
back out with default properties filled in.`,
		Example: `  designer export home.yaml -o ui/home_gen.go --package ui --func Home
  designer export home.yaml --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = *configPath
			return runExport(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "go", "Output format: go or yaml")
	cmd.Flags().StringVar(&opts.pkg, "package", "", "Package clause of the generated file (overrides export.package)")
	cmd.Flags().StringVar(&opts.funcName, "func", "Design", "Name of the generated constructor")
	return cmd
}

func runExport(stdout io.Writer, layoutPath string, opts exportOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	f, err := os.Open(layoutPath)
	if err != nil {
		return fmt.Errorf("open layout: %w", err)
	}
	comps, selected, err := canvas.DecodeLayout(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", layoutPath, err)
	}

	var out []byte
	switch opts.format {
	case "go":
		pkg := cfg.Export.Package
		if opts.pkg != "" {
			pkg = opts.pkg
		}
		out, err = codegen.Generate(comps, codegen.Options{
			Package:   pkg,
			FuncName:  opts.funcName,
			TUIImport: cfg.Export.TUIImport,
			Source:    filepath.Base(layoutPath),
			Sizes:     cfg.KindSizes(),
		})
	case "yaml":
		out, err = normalizedLayout(comps, selected)
	default:
		return fmt.Errorf("unknown format %q (want go or yaml)", opts.format)
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = stdout.Write(out)
		return err
	}
	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// normalizedLayout re-encodes comps through a document.
func normalizedLayout(comps []canvas.Component, selected string) ([]byte, error) {
	doc := canvas.NewDocument()
	for _, c := range comps {
		if err := doc.Insert(c); err != nil {
			return nil, err
		}
	}
	doc.Select(selected)

	var buf bytes.Buffer
	if err := doc.EncodeLayout(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
