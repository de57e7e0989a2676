package indexed_test

import (
	"fmt"

	"github.com/matzehuels/minigraphml/pkg/indexed"
)

func ExampleGraph() {
	g := indexed.New()
	app := g.AddVertex("app")
	lib := g.AddVertex("lib")
	g.MustAddEdge(app, lib, "uses")

	for _, e := range g.Edges() {
		fmt.Printf("%s: %s -> %s\n", e.Label, g.VertexLabel(e.Source), g.VertexLabel(e.Target))
	}
	// Output:
	// uses: app -> lib
}
