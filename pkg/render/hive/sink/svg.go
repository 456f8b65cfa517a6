package sink

import (
	"bytes"
	"fmt"

	"github.com/nilesh-iiita/hiveplot/pkg/render/hive/layout"
	"github.com/nilesh-iiita/hiveplot/pkg/render/hive/styles"
)

// DefaultPadding is the margin between the plot's bounding circle and the
// viewport edge, in layout units.
const DefaultPadding = 10.0

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	padding    float64
	showLabels bool
}

// WithStyle sets the visual style (default styles.Simple).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithPadding sets the viewport margin in layout units.
func WithPadding(p float64) SVGOption { return func(r *svgRenderer) { r.padding = p } }

// WithLabels enables node ID labels next to the markers.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.showLabels = true } }

// RenderSVG renders a hive plot layout as an SVG document.
// Draw order is axes, then edges, then node markers, so dots stay legible
// on top of curve bundles.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	size := 2 * (l.PlotRadius + r.padding)
	center := l.PlotRadius + r.padding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		size, size, size, size)

	r.style.RenderDefs(&buf)
	r.style.RenderBackground(&buf, size, size)

	for _, a := range l.Axes {
		start := layout.Cartesian(a.Start, a.Theta)
		end := layout.Cartesian(a.End, a.Theta)
		r.style.RenderAxis(&buf, styles.Axis{
			Group: string(a.Group),
			X1:    center + start.X, Y1: center - start.Y,
			X2: center + end.X, Y2: center - end.Y,
		})
	}

	for _, p := range l.Paths {
		r.style.RenderEdge(&buf, styles.Edge{
			Source: p.Source,
			Target: p.Target,
			Color:  edgeColor(p.Attrs),
			X0:     center + p.Points[0].X, Y0: center - p.Points[0].Y,
			X1: center + p.Points[1].X, Y1: center - p.Points[1].Y,
			X2: center + p.Points[2].X, Y2: center - p.Points[2].Y,
			X3: center + p.Points[3].X, Y3: center - p.Points[3].Y,
			Arrow: l.Directed,
		})
	}

	for _, n := range l.Nodes {
		sn := styles.Node{
			ID:    n.ID,
			Group: string(n.Group),
			Color: l.Colors[n.Group],
			CX:    center + n.Pos.X,
			CY:    center - n.Pos.Y,
			R:     l.DotRadius,
		}
		r.style.RenderNode(&buf, sn)
		if r.showLabels {
			r.style.RenderLabel(&buf, sn)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, padding: DefaultPadding}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// edgeColor extracts the "color" attribute if the edge carries one.
// Anything else in the payload is the renderer's callers' business.
func edgeColor(attrs map[string]any) string {
	if attrs == nil {
		return ""
	}
	if c, ok := attrs["color"].(string); ok {
		return c
	}
	return ""
}
