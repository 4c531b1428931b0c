// Package render turns computed menu plans into developer preview artifacts.
//
// Two sinks are provided:
//
//   - [SVG]: a hand-written standalone SVG (anchor and satellite circles,
//     optional spokes and labels), fitted to the plan's extent.
//   - [ToDOT] / [RenderDOT]: a Graphviz DOT export with pinned positions,
//     rasterized via goccy/go-graphviz.
//
// These artifacts exist to inspect layouts during development; applying
// positions to real UI widgets is the consumer's job and out of scope here.
package render
