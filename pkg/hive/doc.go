// Package hive provides the grouped node-set data model used by hive plot
// layouts.
//
// # Overview
//
// A hive plot places nodes on straight radial axes, one axis (or axis pair)
// per group, with edges drawn as curves between axis positions. This package
// provides the input side of that computation: an ordered collection of
// groups, each holding an ordered sequence of node IDs, plus the edge list
// connecting them.
//
// The caller is responsible for grouping and ordering. Group order determines
// axis angles (the first group sits at angle zero), and a node's position in
// its group's sequence determines its radius. A common setup is grouping by a
// node attribute and ordering by degree centrality.
//
// # Basic Usage
//
// Create a node set with [NewNodeSet], add groups in display order with
// [NodeSet.AddGroup], then build the membership index with [NodeSet.Index]:
//
//	s := hive.NewNodeSet()
//	s.AddGroup("tf", "n1", "n2", "n3")
//	s.AddGroup("gene", "n4", "n5")
//	idx, err := s.Index()
//
// The index performs the eager validation pass: every node must appear in
// exactly one group, exactly once. [Index.Validate] additionally checks that
// all edge endpoints are known. Layout code assumes a validated index and
// does not re-check membership per edge.
//
// # Constraints
//
//   - At most [MaxGroups] (3) groups.
//   - Node IDs are unique across the whole set.
//   - Edge attributes are opaque and passed through to the renderer.
//
// # Concurrency
//
// NodeSet is not safe for concurrent mutation. A built Index is read-only
// and safe for concurrent use.
package hive
