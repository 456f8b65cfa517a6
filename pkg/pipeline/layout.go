package pipeline

import (
	"github.com/nilesh-iiita/hiveplot/pkg/graph"
	"github.com/nilesh-iiita/hiveplot/pkg/render/hive/layout"
	"github.com/nilesh-iiita/hiveplot/pkg/render/nodelink"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout generates a complete layout for any visualization type.
// This is the unified entry point for producing serializable layout data.
func GenerateLayout(g graph.Graph, opts Options) (graph.Layout, error) {
	if opts.IsNodelink() {
		return generateNodelinkLayout(g, opts)
	}
	return generateHiveLayout(g, opts)
}

// =============================================================================
// Hive
// =============================================================================

// generateHiveLayout computes axis positions, node placements, and edge
// control points for a hive plot.
func generateHiveLayout(g graph.Graph, opts Options) (graph.Layout, error) {
	set, edges, colors, err := graph.ToNodeSet(g)
	if err != nil {
		return graph.Layout{}, err
	}

	cfg := layout.Config{
		Scale:    opts.Scale,
		Directed: g.Directed,
		Colors:   colors,
	}

	l, err := layout.Build(set, edges, cfg)
	if err != nil {
		return graph.Layout{}, err
	}

	out := l.Export()
	out.Style = opts.Style
	return out, nil
}

// =============================================================================
// Nodelink
// =============================================================================

// generateNodelinkLayout produces a DOT description for Graphviz. Positions
// are computed by the Graphviz engine at render time, so the layout carries
// the DOT string rather than coordinates.
func generateNodelinkLayout(g graph.Graph, opts Options) (graph.Layout, error) {
	return graph.Layout{
		VizType:  graph.VizTypeNodelink,
		Directed: g.Directed,
		Style:    opts.Style,
		DOT:      nodelink.ToDOT(g),
	}, nil
}
