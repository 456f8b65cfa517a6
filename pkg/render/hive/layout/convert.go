package layout

import (
	"github.com/nilesh-iiita/hiveplot/pkg/graph"
	"github.com/nilesh-iiita/hiveplot/pkg/hive"
)

// Export converts the internal layout to its serialization format for
// JSON files, API responses, and cache entries.
func (l Layout) Export() graph.Layout {
	out := graph.Layout{
		VizType:    graph.VizTypeHive,
		PlotRadius: l.PlotRadius,
		DotRadius:  l.DotRadius,
		Scale:      l.Scale,
		Directed:   l.Directed,
	}

	if len(l.Colors) > 0 {
		out.Colors = make(map[string]string, len(l.Colors))
		for g, token := range l.Colors {
			out.Colors[string(g)] = token
		}
	}

	out.Axes = make([]graph.AxisLine, len(l.Axes))
	for i, a := range l.Axes {
		out.Axes[i] = graph.AxisLine{
			Group: string(a.Group),
			Theta: a.Theta,
			Start: a.Start,
			End:   a.End,
		}
	}

	out.Nodes = make([]graph.NodePos, len(l.Nodes))
	for i, n := range l.Nodes {
		out.Nodes[i] = graph.NodePos{
			ID:     n.ID,
			Group:  string(n.Group),
			Theta:  n.Theta,
			Radius: n.Radius,
			X:      n.Pos.X,
			Y:      n.Pos.Y,
		}
	}

	out.Paths = make([]graph.Path, len(l.Paths))
	for i, p := range l.Paths {
		points := make([][2]float64, len(p.Points))
		for j, pt := range p.Points {
			points[j] = [2]float64{pt.X, pt.Y}
		}
		out.Paths[i] = graph.Path{
			Source: p.Source,
			Target: p.Target,
			Points: points,
			Attrs:  p.Attrs,
		}
	}

	return out
}

// Parse converts a serialized layout back to the internal representation,
// for rendering layouts that were computed elsewhere (e.g. cached).
func Parse(in graph.Layout) Layout {
	l := Layout{
		PlotRadius: in.PlotRadius,
		DotRadius:  in.DotRadius,
		Scale:      in.Scale,
		Directed:   in.Directed,
	}

	if len(in.Colors) > 0 {
		l.Colors = make(map[hive.Group]string, len(in.Colors))
		for g, token := range in.Colors {
			l.Colors[hive.Group(g)] = token
		}
	}

	l.Axes = make([]Axis, len(in.Axes))
	for i, a := range in.Axes {
		l.Axes[i] = Axis{
			Group: hive.Group(a.Group),
			Theta: a.Theta,
			Start: a.Start,
			End:   a.End,
		}
	}

	l.Nodes = make([]NodePoint, len(in.Nodes))
	for i, n := range in.Nodes {
		l.Nodes[i] = NodePoint{
			ID:     n.ID,
			Group:  hive.Group(n.Group),
			Theta:  n.Theta,
			Radius: n.Radius,
			Pos:    Point{X: n.X, Y: n.Y},
		}
	}

	l.Paths = make([]EdgePath, len(in.Paths))
	for i, p := range in.Paths {
		var points [4]Point
		for j, pt := range p.Points {
			if j >= len(points) {
				break
			}
			points[j] = Point{X: pt[0], Y: pt[1]}
		}
		l.Paths[i] = EdgePath{
			Source: p.Source,
			Target: p.Target,
			Points: points,
			Attrs:  p.Attrs,
		}
	}

	return l
}
