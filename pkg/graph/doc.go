// Package graph provides serialization types for hive plot inputs and
// computed layouts.
//
// This package defines the canonical wire format for hiveplot's data, used
// for JSON files, API requests and responses, and cache entries. It sits at
// the boundary between internal representations and external formats:
//
//   - [Graph], [Layout]: serialization types (this package)
//   - pkg/hive.NodeSet: internal input representation
//   - pkg/render/hive/layout.Layout: internal computed geometry
//
// Use [ToNodeSet]/[FromNodeSet] and the layout package's Export/Parse to
// convert between them.
//
// # Graph Format
//
// Graphs use a grouped node-list JSON format. Group order in the file is
// axis order, and node order within a group is rank:
//
//	{
//	  "groups": [
//	    {"name": "tf", "color": "#1f77b4", "nodes": ["n1", "n2", "n3"]},
//	    {"name": "gene", "color": "#ff7f0e", "nodes": ["n4", "n5"]}
//	  ],
//	  "edges": [
//	    {"source": "n1", "target": "n4", "attrs": {"color": "gray"}}
//	  ]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadGraphFile("net.json")     // File → Graph
//	graph.WriteGraphFile(g, "out.json")         // Graph → File
//	data, _ := graph.MarshalGraph(g)            // Graph → []byte
//	parsed, _ := graph.UnmarshalGraph(data)     // []byte → Graph
//
// # Layout Format
//
// Computed layouts serialize the axis lines, node positions, and edge curve
// control points exactly as a renderer consumes them, plus the bounding
// plot radius for the square viewport.
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
