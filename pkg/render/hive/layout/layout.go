package layout

import (
	"github.com/nilesh-iiita/hiveplot/pkg/hive"
)

// Axis is one radial axis line. Split groups contribute two axes with the
// same group and radial extent but different angles.
type Axis struct {
	Group hive.Group
	Theta float64
	Start float64 // inner radius (the internal exclusion radius)
	End   float64 // outer radius (internal + scale·axis length)
}

// NodePoint is a placed node marker. Nodes of a split group appear once per
// duplicate axis, so a node ID can occur twice with different angles.
type NodePoint struct {
	ID     string
	Group  hive.Group
	Theta  float64
	Radius float64
	Pos    Point
}

// EdgePath is a 4-point cubic curve between two node positions, carrying
// the edge's original attribute payload for the renderer.
type EdgePath struct {
	Source string
	Target string
	Points [4]Point // start, control1, control2, end
	Attrs  map[string]any
}

// Layout is the complete computed geometry of one hive plot. It is built
// once by Build and never mutated afterwards.
type Layout struct {
	Axes  []Axis
	Nodes []NodePoint
	Paths []EdgePath

	// PlotRadius bounds the drawing: renderers use the square viewport
	// [-PlotRadius, PlotRadius] on both axes.
	PlotRadius float64

	// DotRadius is the node marker radius (scale/4).
	DotRadius float64

	Scale    float64
	Directed bool
	Colors   map[hive.Group]string
}

// engine carries the per-computation caches: the validated index, derived
// angles, and the per-group internal-edge flags. It lives for one Build
// call only.
type engine struct {
	set       *hive.NodeSet
	idx       *hive.Index
	cfg       Config
	numGroups int
	major     float64
	minor     float64
	internal  float64

	// split caches hive.Index.HasInternalEdges per group, so the O(E) scan
	// runs once per group instead of once per edge.
	split map[hive.Group]bool
}

// Build computes the full layout for a node set and edge list.
// It validates eagerly (config, node membership, edge endpoints) and
// aborts on the first violation with no partial result. The computation is
// deterministic: identical inputs produce identical layouts.
func Build(set *hive.NodeSet, edges []hive.Edge, cfg Config) (Layout, error) {
	if err := cfg.validate(set); err != nil {
		return Layout{}, err
	}

	idx, err := set.Index()
	if err != nil {
		return Layout{}, err
	}
	if err := idx.Validate(edges); err != nil {
		return Layout{}, err
	}

	e := &engine{
		set:       set,
		idx:       idx,
		cfg:       cfg,
		numGroups: set.NumGroups(),
		major:     MajorAngle(set.NumGroups()),
		minor:     MinorAngle(set.NumGroups()),
		internal:  cfg.InternalRadius(),
		split:     make(map[hive.Group]bool, set.NumGroups()),
	}
	for _, g := range set.Groups() {
		e.split[g] = idx.HasInternalEdges(g, edges)
	}

	l := Layout{
		PlotRadius: e.plotRadius(),
		DotRadius:  cfg.DotRadius(),
		Scale:      cfg.Scale,
		Directed:   cfg.Directed,
		Colors:     cfg.Colors,
	}
	e.placeAxes(&l)
	if err := e.buildPaths(&l, edges); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// plotRadius returns the bounding radius: the longest group axis plus the
// internal exclusion radius.
func (e *engine) plotRadius() float64 {
	var longest float64
	for _, g := range e.set.Groups() {
		if r := float64(e.set.AxisLength(g)) * e.cfg.Scale; r > longest {
			longest = r
		}
	}
	return longest + e.internal
}

// placeAxes fills in l.Axes and l.Nodes. A group with internal edges
// occupies two axes at its base angle ± the minor angle, with every node
// duplicated on both; otherwise it occupies a single axis at the base angle.
func (e *engine) placeAxes(l *Layout) {
	for gi, g := range e.set.Groups() {
		theta := GroupTheta(gi, e.numGroups)
		if e.split[g] {
			e.placeAxis(l, g, theta-e.minor)
			e.placeAxis(l, g, theta+e.minor)
		} else {
			e.placeAxis(l, g, theta)
		}
	}
}

// placeAxis appends one axis line and the group's node markers along it.
// Node radius grows linearly with rank: internal + rank·scale.
func (e *engine) placeAxis(l *Layout, g hive.Group, theta float64) {
	nodes := e.set.Nodes(g)
	l.Axes = append(l.Axes, Axis{
		Group: g,
		Theta: theta,
		Start: e.internal,
		End:   e.internal + e.cfg.Scale*float64(len(nodes)),
	})
	for rank, id := range nodes {
		r := e.internal + float64(rank)*e.cfg.Scale
		l.Nodes = append(l.Nodes, NodePoint{
			ID:     id,
			Group:  g,
			Theta:  theta,
			Radius: r,
			Pos:    Cartesian(r, theta),
		})
	}
}

// nodeRadius returns the radial position of a node: internal + rank·scale.
func (e *engine) nodeRadius(node string) (float64, error) {
	rank, err := e.idx.Rank(node)
	if err != nil {
		return 0, err
	}
	return e.internal + float64(rank)*e.cfg.Scale, nil
}

// nodeTheta returns the un-split base angle of a node's group. Axis
// splitting and per-edge correction are applied at path-construction time,
// because the effective angle depends on which duplicate axis an edge
// resolves the node to.
func (e *engine) nodeTheta(node string) (float64, error) {
	gi, err := e.idx.GroupIndexOf(node)
	if err != nil {
		return 0, err
	}
	return GroupTheta(gi, e.numGroups), nil
}
