package indexed

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph/multi"
)

// ErrVertexOutOfRange is returned by [Graph.AddEdge] when an endpoint index
// does not name an existing vertex.
var ErrVertexOutOfRange = errors.New("vertex index out of range")

// Vertex is a labeled vertex.
type Vertex struct {
	Index int
	Label string
}

// Edge is a labeled directed edge between two vertex indices.
type Edge struct {
	Index  int
	Source int
	Target int
	Label  string
}

// Graph is a directed multigraph with dense vertex and edge indices.
// Parallel edges and self-loops are allowed.
//
// The zero value is not usable; create graphs with [New].
type Graph struct {
	labels  []string
	edges   []Edge
	out     [][]int // vertex -> outgoing edge indices
	in      [][]int // vertex -> incoming edge indices
	byLabel map[string]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{byLabel: make(map[string]int)}
}

// NewWithCapacity returns an empty graph sized for the given counts.
func NewWithCapacity(vertices, edges int) *Graph {
	return &Graph{
		labels:  make([]string, 0, vertices),
		edges:   make([]Edge, 0, edges),
		out:     make([][]int, 0, vertices),
		in:      make([][]int, 0, vertices),
		byLabel: make(map[string]int, vertices),
	}
}

// AddVertex appends a vertex and returns its index.
// If several vertices share a label, [Graph.Index] resolves to the first.
func (g *Graph) AddVertex(label string) int {
	i := len(g.labels)
	g.labels = append(g.labels, label)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	if _, taken := g.byLabel[label]; !taken {
		g.byLabel[label] = i
	}
	return i
}

// AddEdge appends a directed edge src→dst and returns its index.
func (g *Graph) AddEdge(src, dst int, label string) (int, error) {
	if !g.valid(src) {
		return 0, fmt.Errorf("source %d: %w", src, ErrVertexOutOfRange)
	}
	if !g.valid(dst) {
		return 0, fmt.Errorf("target %d: %w", dst, ErrVertexOutOfRange)
	}
	i := len(g.edges)
	g.edges = append(g.edges, Edge{Index: i, Source: src, Target: dst, Label: label})
	g.out[src] = append(g.out[src], i)
	g.in[dst] = append(g.in[dst], i)
	return i, nil
}

// MustAddEdge is like [Graph.AddEdge] but panics on out-of-range indices.
func (g *Graph) MustAddEdge(src, dst int, label string) int {
	i, err := g.AddEdge(src, dst, label)
	if err != nil {
		panic(err)
	}
	return i
}

func (g *Graph) valid(i int) bool { return i >= 0 && i < len(g.labels) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.labels) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// VertexLabel returns the label of vertex i. It panics if i is out of range.
func (g *Graph) VertexLabel(i int) string { return g.labels[i] }

// Edge returns edge i. It panics if i is out of range.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Index returns the index of the first vertex carrying label.
func (g *Graph) Index(label string) (int, bool) {
	i, ok := g.byLabel[label]
	return i, ok
}

// Vertices returns all vertices in index order.
func (g *Graph) Vertices() []Vertex {
	vs := make([]Vertex, len(g.labels))
	for i, l := range g.labels {
		vs[i] = Vertex{Index: i, Label: l}
	}
	return vs
}

// Labels returns the vertex labels in index order.
func (g *Graph) Labels() []string { return slices.Clone(g.labels) }

// Edges returns a copy of all edges in index order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// OutEdges returns the edges leaving vertex i, in insertion order.
func (g *Graph) OutEdges(i int) []Edge { return g.collect(g.out, i) }

// InEdges returns the edges entering vertex i, in insertion order.
func (g *Graph) InEdges(i int) []Edge { return g.collect(g.in, i) }

func (g *Graph) collect(adj [][]int, i int) []Edge {
	if !g.valid(i) {
		return nil
	}
	es := make([]Edge, len(adj[i]))
	for k, ei := range adj[i] {
		es[k] = g.edges[ei]
	}
	return es
}

// Successors returns the target indices of edges leaving vertex i.
// Parallel edges produce repeated entries.
func (g *Graph) Successors(i int) []int {
	if !g.valid(i) {
		return nil
	}
	s := make([]int, len(g.out[i]))
	for k, ei := range g.out[i] {
		s[k] = g.edges[ei].Target
	}
	return s
}

// Predecessors returns the source indices of edges entering vertex i.
func (g *Graph) Predecessors(i int) []int {
	if !g.valid(i) {
		return nil
	}
	p := make([]int, len(g.in[i]))
	for k, ei := range g.in[i] {
		p[k] = g.edges[ei].Source
	}
	return p
}

// OutDegree returns the number of edges leaving vertex i.
func (g *Graph) OutDegree(i int) int {
	if !g.valid(i) {
		return 0
	}
	return len(g.out[i])
}

// InDegree returns the number of edges entering vertex i.
func (g *Graph) InDegree(i int) int {
	if !g.valid(i) {
		return 0
	}
	return len(g.in[i])
}

// ToGonum copies the graph into a gonum directed multigraph. Vertex i
// becomes node ID i and edge j becomes a line with UID j.
func (g *Graph) ToGonum() *multi.DirectedGraph {
	dg := multi.NewDirectedGraph()
	for i := range g.labels {
		dg.AddNode(multi.Node(i))
	}
	for _, e := range g.edges {
		dg.SetLine(multi.Line{
			F:   multi.Node(e.Source),
			T:   multi.Node(e.Target),
			UID: int64(e.Index),
		})
	}
	return dg
}
