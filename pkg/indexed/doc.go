// Package indexed provides a directed multigraph addressed by dense integer
// indices, with a string label on every vertex and edge.
//
// It is the hand-off format between GraphML documents and graph algorithms:
// vertices and edges are numbered 0..n-1 in insertion order, adjacency is
// stored as index slices, and the original string ids survive as labels.
//
//	g := indexed.New()
//	a := g.AddVertex("n0")
//	b := g.AddVertex("n1")
//	g.MustAddEdge(a, b, "e1")
//
// Use [Graph.ToGonum] to hand the structure to gonum's graph algorithms.
// Vertex i becomes gonum node i and edge j becomes the line with UID j, so
// results map back through [Graph.VertexLabel] and [Graph.Edge].
//
// A Graph is not safe for concurrent mutation. Read-only use from several
// goroutines is fine.
package indexed
