package indexed

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

// Components returns the strongly connected components. Each component
// lists its vertex indices in ascending order, and components are ordered
// by their smallest vertex.
func (g *Graph) Components() [][]int {
	sccs := topo.TarjanSCC(g.ToGonum())
	out := make([][]int, 0, len(sccs))
	for _, c := range sccs {
		ids := make([]int, len(c))
		for i, n := range c {
			ids[i] = int(n.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })
	return out
}

// TopoSort returns the vertex indices in an order where every edge points
// forward. Ties are broken by index. It reports false if the graph has a
// cycle, including a self-loop.
func (g *Graph) TopoSort() ([]int, bool) {
	for _, e := range g.edges {
		if e.Source == e.Target {
			return nil, false
		}
	}
	sorted, err := topo.SortStabilized(g.ToGonum(), byID)
	if err != nil {
		return nil, false
	}
	order := make([]int, len(sorted))
	for i, n := range sorted {
		order[i] = int(n.ID())
	}
	return order, true
}

func byID(nodes []graph.Node) {
	slices.SortFunc(nodes, func(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) })
}
