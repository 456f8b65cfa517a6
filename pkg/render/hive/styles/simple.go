package styles

import (
	"bytes"
	"fmt"
)

// Simple is the default light style: white backdrop, black axes, solid
// color node dots, and translucent edge curves.
type Simple struct{}

// defaultEdgeColor is used when an edge carries no color attribute.
const defaultEdgeColor = "#555555"

// RenderDefs emits the arrowhead marker used for directed plots.
func (Simple) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">` + "\n")
	buf.WriteString(`      <path d="M 0 0 L 10 5 L 0 10 z" fill="#555555"/>` + "\n")
	buf.WriteString("    </marker>\n")
	buf.WriteString("  </defs>\n")
}

// RenderBackground fills the viewport white.
func (Simple) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="white"/>`+"\n", width, height)
}

// RenderAxis draws the axis as a plain black line.
func (Simple) RenderAxis(buf *bytes.Buffer, a Axis) {
	fmt.Fprintf(buf,
		`  <line class="axis" data-group=%q x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="black" stroke-width="1.5"/>`+"\n",
		a.Group, a.X1, a.Y1, a.X2, a.Y2)
}

// RenderNode draws the node marker as a filled circle in the group color.
func (Simple) RenderNode(buf *bytes.Buffer, n Node) {
	fmt.Fprintf(buf,
		`  <circle class="node" id="node-%s" data-group=%q cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
		n.ID, n.Group, n.CX, n.CY, n.R, n.Color)
}

// RenderEdge draws the cubic curve at stroke width 1 and 30% opacity with
// no fill, so overlapping bundles stay readable.
func (Simple) RenderEdge(buf *bytes.Buffer, e Edge) {
	color := e.Color
	if color == "" {
		color = defaultEdgeColor
	}
	marker := ""
	if e.Arrow {
		marker = ` marker-end="url(#arrow)"`
	}
	fmt.Fprintf(buf,
		`  <path class="edge" d="M %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f" fill="none" stroke="%s" stroke-width="1" opacity="0.3"%s/>`+"\n",
		e.X0, e.Y0, e.X1, e.Y1, e.X2, e.Y2, e.X3, e.Y3, color, marker)
}

// RenderLabel places the node ID just outside the marker.
func (Simple) RenderLabel(buf *bytes.Buffer, n Node) {
	fmt.Fprintf(buf,
		`  <text class="node-label" x="%.2f" y="%.2f" font-size="%.1f" font-family="sans-serif" fill="#333333">%s</text>`+"\n",
		n.CX+n.R*1.8, n.CY+n.R*0.6, n.R*3.2, n.ID)
}

var _ Style = Simple{}
