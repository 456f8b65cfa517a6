// Package nodelink renders a grouped graph as a conventional node-link
// diagram via Graphviz.
//
// The hive layout engine is the primary visualization; this package is the
// companion view for sanity-checking inputs: each group becomes a Graphviz
// cluster filled with the group's color, so the same file can be compared
// side by side in both idioms.
//
// [ToDOT] produces the DOT source, and [RenderSVG], [RenderPNG], and
// [RenderPDF] rasterize it with the embedded Graphviz engine
// (github.com/goccy/go-graphviz), no system Graphviz install required.
package nodelink
