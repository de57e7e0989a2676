// Package dot exports indexed graphs as Graphviz DOT and renders them to SVG.
//
// # Usage
//
//	src := dot.ToDOT(g, dot.Options{EdgeLabels: true})
//	svg, err := dot.RenderSVG(ctx, src)
//
// Vertices are emitted as v0..vN-1 in index order with their label as the
// visible text, so graphs whose labels repeat still render one box per
// vertex. Edges are emitted in index order.
//
// # Dependencies
//
// SVG rendering runs Graphviz in-process through [github.com/goccy/go-graphviz];
// no external binary is needed.
package dot
