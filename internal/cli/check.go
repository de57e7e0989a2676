package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/minigraphml/pkg/graphml"
)

func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Load and validate a GraphML file",
		Long:  `Load a GraphML file, run the consistency checks and print a summary of the graph.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := c.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			g := doc.Graph()

			printSuccess(out, "%s is valid", args[0])
			printKeyValue(out, "graph", orNone(g.ID()))
			printKeyValue(out, "edgedefault", orNone(g.EdgeDefault()))
			printKeyValue(out, "keys", strconv.Itoa(len(doc.AllKeys())))
			printKeyValue(out, "nodes", strconv.Itoa(g.NodeCount()))
			printKeyValue(out, "edges", strconv.Itoa(g.EdgeCount()))
			printKeyValue(out, "directions", directionSummary(g))
			if g.NodeCount() == 0 {
				printWarning(out, "graph has no nodes")
			}
			return nil
		},
	}
}

// directionSummary counts edges per direction marker, e.g.
// "2 directed, 1 unspecified".
func directionSummary[P any](g *graphml.Graph[P]) string {
	counts := make(map[graphml.EdgeDirection]int)
	for e := range g.AllEdges() {
		counts[e.Direction]++
	}
	var parts []string
	for _, d := range []graphml.EdgeDirection{graphml.DirectionDirected, graphml.DirectionUndirected, graphml.DirectionUnspecified} {
		if n := counts[d]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, d))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
