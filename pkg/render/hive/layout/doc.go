// Package layout computes the geometry of a hive plot: axis angles, node
// radii, and the 4-point cubic curves that connect axis positions.
//
// # Overview
//
// The engine consumes a validated [hive.NodeSet] plus an edge list and
// produces an immutable [Layout] value for a renderer to draw. It has four
// responsibilities, composed in sequence:
//
//  1. Geometry primitives: polar-to-Cartesian conversion ([Cartesian]).
//  2. Axis layout: one axis per group at i·2π/G, split into a ±minor-angle
//     pair when the group has within-group edges.
//  3. Node placement: radius grows linearly with a node's rank inside its
//     group, starting from an internal exclusion radius of scale².
//  4. Edge path construction: per-edge angle correction and duplicate-axis
//     adjustment, then a cubic curve through two control points at the
//     extremal endpoint radii and the shared mean angle.
//
// # Usage
//
//	cfg := layout.Config{
//	    Scale:  10,
//	    Colors: map[hive.Group]string{"tf": "#1f77b4", "gene": "#ff7f0e"},
//	}
//	l, err := layout.Build(set, edges, cfg)
//
// Build is a pure function over its inputs: running it twice on identical
// inputs yields identical layouts, and nothing is drawn or mutated outside
// the returned value.
//
// # Known quirks
//
// Two long-standing behaviors are preserved for output compatibility; both
// are marked in the code:
//
//   - The duplicate-axis angle adjustment applies to every edge, even when
//     neither endpoint's axis was actually split, so edges between single
//     axes receive a small angular nudge.
//   - Edge construction carries a conditional control-radius swap that runs
//     after the radii were already ordered by min/max.
//
// # Concurrency
//
// Build is single-threaded and synchronous. All derived state is local to
// one call; the returned Layout is read-only and safe to share.
package layout
