package graph

import (
	"github.com/nilesh-iiita/hiveplot/pkg/hive"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visualization types.
const (
	VizTypeHive     = "hive"
	VizTypeNodelink = "nodelink"
)

// Visual styles for rendering.
const (
	StyleSimple = "simple"
	StyleInk    = "ink"
)

// =============================================================================
// Graph - Hive Plot Input
// =============================================================================

// Graph is the canonical serialization format for hive plot inputs.
// Group order is axis order; node order within a group is rank.
//
// The format is designed for round-trip fidelity: import → layout → export
// → re-import produces identical results.
type Graph struct {
	Directed bool        `json:"directed,omitempty" bson:"directed,omitempty"`
	Groups   []GroupSpec `json:"groups" bson:"groups"`
	Edges    []Edge      `json:"edges,omitempty" bson:"edges,omitempty"`
}

// NodeCount returns the number of nodes across all groups.
func (g Graph) NodeCount() int {
	n := 0
	for _, grp := range g.Groups {
		n += len(grp.Nodes)
	}
	return n
}

// EdgeCount returns the number of edges.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// GroupSpec is one node group: a label, an optional color token, and the
// ordered node sequence drawn along the group's axis.
type GroupSpec struct {
	Name  string   `json:"name" bson:"name"`
	Color string   `json:"color,omitempty" bson:"color,omitempty"`
	Nodes []string `json:"nodes" bson:"nodes"`
}

// Edge represents a connection between two nodes. Attrs is an opaque
// payload the layout engine never interprets; the SVG sink recognizes the
// "color" key for stroke color.
type Edge struct {
	Source string         `json:"source" bson:"source"`
	Target string         `json:"target" bson:"target"`
	Attrs  map[string]any `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// =============================================================================
// Graph ↔ NodeSet Conversion
// =============================================================================

// ToNodeSet converts a Graph into the internal input representation: the
// node set, edge list, and group color map. Groups without a color token
// get one from the default palette so the layout's color-map requirement
// is satisfied without forcing every file to name colors.
func ToNodeSet(g Graph) (*hive.NodeSet, []hive.Edge, map[hive.Group]string, error) {
	set := hive.NewNodeSet()
	colors := make(map[hive.Group]string, len(g.Groups))

	var unassigned []hive.Group
	for _, spec := range g.Groups {
		name := hive.Group(spec.Name)
		if err := set.AddGroup(name, spec.Nodes...); err != nil {
			return nil, nil, nil, err
		}
		if spec.Color != "" {
			colors[name] = spec.Color
		} else {
			unassigned = append(unassigned, name)
		}
	}
	for g, token := range defaultTokens(unassigned) {
		colors[g] = token
	}

	edges := make([]hive.Edge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = hive.Edge{Source: e.Source, Target: e.Target, Attrs: e.Attrs}
	}

	return set, edges, colors, nil
}

// FromNodeSet converts the internal representation back to the
// serialization format, preserving group and node order.
func FromNodeSet(set *hive.NodeSet, edges []hive.Edge, colors map[hive.Group]string, directed bool) Graph {
	out := Graph{Directed: directed}

	for _, g := range set.Groups() {
		out.Groups = append(out.Groups, GroupSpec{
			Name:  string(g),
			Color: colors[g],
			Nodes: set.Nodes(g),
		})
	}

	out.Edges = make([]Edge, len(edges))
	for i, e := range edges {
		out.Edges[i] = Edge{Source: e.Source, Target: e.Target, Attrs: e.Attrs}
	}

	return out
}

// defaultPalette mirrors the layout package's palette for groups that ship
// without a color token.
var defaultPalette = []string{"#1f77b4", "#ff7f0e", "#2ca02c"}

func defaultTokens(groups []hive.Group) map[hive.Group]string {
	tokens := make(map[hive.Group]string, len(groups))
	for i, g := range groups {
		tokens[g] = defaultPalette[i%len(defaultPalette)]
	}
	return tokens
}
