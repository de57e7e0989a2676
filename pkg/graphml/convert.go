package graphml

import (
	"fmt"
	"time"

	gmlerrors "github.com/matzehuels/minigraphml/pkg/errors"
	"github.com/matzehuels/minigraphml/pkg/indexed"
	"github.com/matzehuels/minigraphml/pkg/observability"
)

// IntoIndexed moves the graph into a dense indexed graph.
//
// Vertices are numbered from 0 in node order and labeled with node ids;
// edges follow in edge order, labeled with edge ids. Payloads and edge
// directions are dropped. Afterwards g is empty, [Graph.Consumed] reports
// true, and further calls return a CONSUMED error.
//
// IntoIndexed panics if an edge endpoint does not resolve. Loaded graphs
// never trigger this.
func (g *Graph[P]) IntoIndexed() (*indexed.Graph, error) {
	if g.consumed {
		return nil, gmlerrors.Wrap(gmlerrors.ErrCodeConsumed, ErrConsumed, "convert graph %q", g.id)
	}
	start := time.Now()

	ig := indexed.NewWithCapacity(g.nodes.Len(), g.edges.Len())
	index := make(map[string]int, g.nodes.Len())
	for n := range g.nodes.Values() {
		index[n.ID] = ig.AddVertex(n.ID)
	}
	for e := range g.edges.Values() {
		src, ok := index[e.Source]
		if !ok {
			panic(fmt.Sprintf("graphml: edge %q: unresolved source %q", e.ID, e.Source))
		}
		dst, ok := index[e.Target]
		if !ok {
			panic(fmt.Sprintf("graphml: edge %q: unresolved target %q", e.ID, e.Target))
		}
		ig.MustAddEdge(src, dst, e.ID)
	}

	g.release()
	elapsed := time.Since(start)
	if g.logger != nil {
		g.logger.Debug("converted graph",
			"graph", g.id,
			"vertices", ig.VertexCount(),
			"edges", ig.EdgeCount(),
			"duration", elapsed)
	}
	observability.Load().OnConvertComplete(g.id, ig.VertexCount(), ig.EdgeCount(), elapsed)
	return ig, nil
}

// IntoIndexed converts the document's graph; see [Graph.IntoIndexed].
func (d *Document[P]) IntoIndexed() (*indexed.Graph, error) {
	return d.graph.IntoIndexed()
}
