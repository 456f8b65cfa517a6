// Package sink renders computed hive plot layouts to output formats.
//
// SVG is the native format, produced directly from layout geometry by
// [RenderSVG] with a pluggable [styles.Style]. PNG and PDF are produced by
// converting the SVG with rsvg-convert (see pkg/render), and JSON emits the
// layout's serialization format for tooling and the HTTP API.
//
// The sink owns the coordinate mapping: layout space is centered on the
// plot origin with y up, SVG space has the origin at the top-left with y
// down. A layout with plot radius R maps into a square viewport of side
// 2·(R + padding).
package sink
