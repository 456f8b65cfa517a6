// Package styles defines the visual appearance of hive plot SVG output.
// The sink converts layout geometry to SVG coordinates and hands styled
// primitives to a Style implementation.
package styles

import "bytes"

// Style defines the visual appearance for hive plot rendering.
// Implementations control how the background, axes, node markers, and edge
// curves are drawn. All coordinates passed in are SVG user units with the
// origin at the top-left of the viewport.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, markers, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBackground writes the backdrop for a viewport of the given size.
	RenderBackground(buf *bytes.Buffer, width, height float64)
	// RenderAxis writes the SVG for a single axis line.
	RenderAxis(buf *bytes.Buffer, a Axis)
	// RenderNode writes the SVG for a node marker.
	RenderNode(buf *bytes.Buffer, n Node)
	// RenderEdge writes the SVG for an edge curve.
	RenderEdge(buf *bytes.Buffer, e Edge)
	// RenderLabel writes the SVG for a node's text label.
	RenderLabel(buf *bytes.Buffer, n Node)
}

// Axis contains positioning data for rendering one axis line.
type Axis struct {
	Group          string  // Owning group label
	X1, Y1, X2, Y2 float64 // Line endpoints, inner to outer
}

// Node contains all data needed to render a single node marker.
type Node struct {
	ID     string  // Node identifier
	Group  string  // Owning group label
	Color  string  // Group color token
	CX, CY float64 // Marker center
	R      float64 // Marker radius (dot radius)
}

// Edge contains the cubic curve data for rendering one edge.
type Edge struct {
	Source, Target string  // Connected node IDs
	Color          string  // Stroke color ("" = style default)
	X0, Y0         float64 // Curve start
	X1, Y1         float64 // First control point
	X2, Y2         float64 // Second control point
	X3, Y3         float64 // Curve end
	Arrow          bool    // Draw a direction marker at the end
}
