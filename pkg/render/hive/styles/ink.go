package styles

import (
	"bytes"
	"fmt"
)

// Ink is the dark style: near-black backdrop with light axes, brighter
// node dots, and slightly stronger edge opacity so curves stay visible
// against the dark background.
type Ink struct{}

const (
	inkBackground  = "#15151a"
	inkAxisColor   = "#d8d8de"
	inkLabelColor  = "#c8c8cf"
	inkEdgeDefault = "#9a9aa6"
)

// RenderDefs emits the arrowhead marker in the dark palette.
func (Ink) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">` + "\n")
	fmt.Fprintf(buf, `      <path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/>`+"\n", inkEdgeDefault)
	buf.WriteString("    </marker>\n")
	buf.WriteString("  </defs>\n")
}

// RenderBackground fills the viewport with the dark backdrop.
func (Ink) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", width, height, inkBackground)
}

// RenderAxis draws the axis as a light line with a soft round cap.
func (Ink) RenderAxis(buf *bytes.Buffer, a Axis) {
	fmt.Fprintf(buf,
		`  <line class="axis" data-group=%q x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1.5" stroke-linecap="round"/>`+"\n",
		a.Group, a.X1, a.Y1, a.X2, a.Y2, inkAxisColor)
}

// RenderNode draws the node marker with a thin light outline.
func (Ink) RenderNode(buf *bytes.Buffer, n Node) {
	fmt.Fprintf(buf,
		`  <circle class="node" id="node-%s" data-group=%q cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="0.5"/>`+"\n",
		n.ID, n.Group, n.CX, n.CY, n.R, n.Color, inkAxisColor)
}

// RenderEdge draws the cubic curve at 45% opacity for contrast on dark.
func (Ink) RenderEdge(buf *bytes.Buffer, e Edge) {
	color := e.Color
	if color == "" {
		color = inkEdgeDefault
	}
	marker := ""
	if e.Arrow {
		marker = ` marker-end="url(#arrow)"`
	}
	fmt.Fprintf(buf,
		`  <path class="edge" d="M %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f" fill="none" stroke="%s" stroke-width="1" opacity="0.45"%s/>`+"\n",
		e.X0, e.Y0, e.X1, e.Y1, e.X2, e.Y2, e.X3, e.Y3, color, marker)
}

// RenderLabel places the node ID just outside the marker.
func (Ink) RenderLabel(buf *bytes.Buffer, n Node) {
	fmt.Fprintf(buf,
		`  <text class="node-label" x="%.2f" y="%.2f" font-size="%.1f" font-family="sans-serif" fill="%s">%s</text>`+"\n",
		n.CX+n.R*1.8, n.CY+n.R*0.6, n.R*3.2, inkLabelColor, n.ID)
}

var _ Style = Ink{}
