package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nilesh-iiita/hiveplot/pkg/graph"
	"github.com/nilesh-iiita/hiveplot/pkg/pipeline"
)

// layoutCommand creates the layout command for computing hive plot layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a hive plot layout from a graph file",
		Long: `Compute a hive plot layout from a graph file.

The layout command takes a graph.json file and computes axis, node, and
edge-path positions. The output is a layout.json file (same format as
'render -f json') that can be rendered to SVG/PNG/PDF using 'render'.

Supports both hive (-t hive) and nodelink (-t nodelink) visualization types.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	cmd.Flags().StringVarP(&opts.VizType, "type", "t", opts.VizType, "visualization type: hive (default), nodelink")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "axis scale factor")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: simple (default), ink")

	return cmd
}

// runLayout loads the graph, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinner(ctx, fmt.Sprintf("Computing %s layout...", opts.VizType))
	spinner.Start()

	l, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := graph.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	if opts.IsNodelink() {
		printWarning("nodelink positioning is delegated to Graphviz; the layout file stores the DOT description")
	}
	printFile(outputPath)
	printStats(len(g.Groups), g.NodeCount(), g.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}
