// Package dot writes Graphviz DOT documents and renders them with Graphviz.
//
// The main entry point is [Convert], which streams a GFA file and emits one
// DOT statement per segment or link, in input order:
//
//	digraph G {
//	1 [label="ACGT"]
//	2 [label="TTTT"]
//	1 -> 2;
//	}
//
// Nothing is buffered beyond the current line, and no referential check is
// made: a link may name a node that no segment declared, and duplicate links
// produce duplicate edges.
//
// # Labels
//
// Labels are escaped so that a quote or backslash in a segment cannot break
// the document. [Options.RawLabels] turns escaping off for byte-compatible
// output with older tooling. Identifiers are written as-is unless
// [Options.QuoteIDs] is set.
//
// # Rendering
//
// [RenderSVG] and [RenderPNG] lay out a DOT document with the dot engine via
// github.com/goccy/go-graphviz, which bundles Graphviz as WebAssembly so no
// system installation is needed.
package dot
