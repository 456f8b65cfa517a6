package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nilesh-iiita/hiveplot/pkg/graph"
	"github.com/nilesh-iiita/hiveplot/pkg/pipeline"
)

// renderCommand creates the render command for generating visualizations.
// It accepts either a graph.json (full pipeline) or a layout.json produced
// by the layout command (render only).
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph or layout file to SVG, PNG, PDF, or JSON",
		Long: `Render a graph or layout file to one or more output formats.

The input may be a graph.json (the full pipeline runs: layout is computed,
then rendered) or a layout.json written by the layout command (only the
render stage runs). The file kind is detected from its contents.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	cmd.Flags().StringVarP(&opts.VizType, "type", "t", opts.VizType, "visualization type: hive (default), nodelink")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "axis scale factor")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: simple (default), ink")
	cmd.Flags().BoolVar(&opts.Labels, "labels", opts.Labels, "draw node labels")
	cmd.Flags().Float64Var(&opts.Padding, "padding", opts.Padding, "margin around the plot")

	return cmd
}

// runRender loads the input file, runs the needed pipeline stages, and
// writes one output file per requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	track := newProgress(c.Logger)

	artifacts, cacheHit, err := c.renderInput(ctx, runner, data, opts)
	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(output, input)
	var written []string
	for _, format := range opts.Formats {
		path := output
		if path == "" || len(opts.Formats) > 1 {
			path = base + "." + format
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		written = append(written, path)
	}

	track.done("Render complete")
	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(0, 0, 0, cacheHit)

	return nil
}

// renderInput detects whether data is a layout or a graph and runs the
// appropriate pipeline stages.
func (c *CLI) renderInput(ctx context.Context, runner *pipeline.Runner, data []byte, opts pipeline.Options) (map[string][]byte, bool, error) {
	if l, err := graph.UnmarshalLayout(data); err == nil {
		artifacts, hit, err := runner.RenderWithCacheInfo(ctx, l, opts)
		if err != nil {
			return nil, false, fmt.Errorf("render layout: %w", err)
		}
		return artifacts, hit, nil
	}

	g, err := graph.UnmarshalGraph(data)
	if err != nil {
		return nil, false, fmt.Errorf("parse input (not a graph or layout file): %w", err)
	}

	result, err := runner.Execute(ctx, g, opts)
	if err != nil {
		return nil, false, err
	}
	return result.Artifacts, result.CacheInfo.RenderHit, nil
}

// basePath derives the base output path from the output and input paths.
// A format extension on the output path is stripped so multi-format runs
// produce sibling files.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
