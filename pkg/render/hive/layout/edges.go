package layout

import (
	"github.com/nilesh-iiita/hiveplot/pkg/hive"
)

// buildPaths constructs one EdgePath per edge, in input order. Membership
// was validated up front, so lookups here only fail on programming errors;
// any failure aborts without partial paths.
func (e *engine) buildPaths(l *Layout, edges []hive.Edge) error {
	l.Paths = make([]EdgePath, 0, len(edges))
	for _, edge := range edges {
		p, err := e.buildPath(edge)
		if err != nil {
			return err
		}
		l.Paths = append(l.Paths, p)
	}
	return nil
}

// buildPath resolves an edge's endpoint geometry and synthesizes the
// 4-point cubic curve: start, two control points, end.
func (e *engine) buildPath(edge hive.Edge) (EdgePath, error) {
	startR, err := e.nodeRadius(edge.Source)
	if err != nil {
		return EdgePath{}, err
	}
	startT, err := e.nodeTheta(edge.Source)
	if err != nil {
		return EdgePath{}, err
	}
	endR, err := e.nodeRadius(edge.Target)
	if err != nil {
		return EdgePath{}, err
	}
	endT, err := e.nodeTheta(edge.Target)
	if err != nil {
		return EdgePath{}, err
	}

	// Group indices are taken before any angle rewriting; the adjustment
	// works on display order, not on the corrected angles.
	startIdx, err := e.idx.GroupIndexOf(edge.Source)
	if err != nil {
		return EdgePath{}, err
	}
	endIdx, err := e.idx.GroupIndexOf(edge.Target)
	if err != nil {
		return EdgePath{}, err
	}

	startT, endT = correctAngles(startT, endT, e.minor)
	startT, endT = adjustAngles(startIdx, endIdx, e.numGroups, startT, endT, e.minor)

	// Both control points sit at the extremal endpoint radii, sharing the
	// mean angle, so the curve bows toward the center or the rim rather
	// than interpolating angle smoothly.
	mid1R := min(startR, endR)
	mid2R := max(startR, endR)

	// Historical behavior, kept for output compatibility: the radii were
	// just ordered by min/max, then swapped back when startR > endR, which
	// reverses the control points for inward edges.
	if startR > endR {
		mid1R, mid2R = mid2R, mid1R
	}

	midT := (startT + endT) / 2

	return EdgePath{
		Source: edge.Source,
		Target: edge.Target,
		Points: [4]Point{
			Cartesian(startR, startT),
			Cartesian(mid1R, midT),
			Cartesian(mid2R, midT),
			Cartesian(endR, endT),
		},
		Attrs: edge.Attrs,
	}, nil
}
