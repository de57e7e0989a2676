package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) statsCommand() *cobra.Command {
	var showOrder bool

	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print structural facts about a GraphML graph",
		Long: `Load a GraphML file, convert it to an indexed graph and report its strongly
connected components and whether it is acyclic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := c.load(args[0])
			if err != nil {
				return err
			}
			ig, err := doc.IntoIndexed()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			comps := ig.Components()
			largest := 0
			for _, comp := range comps {
				largest = max(largest, len(comp))
			}
			order, acyclic := ig.TopoSort()

			printKeyValue(out, "vertices", strconv.Itoa(ig.VertexCount()))
			printKeyValue(out, "edges", strconv.Itoa(ig.EdgeCount()))
			printKeyValue(out, "components", strconv.Itoa(len(comps)))
			printKeyValue(out, "largest", strconv.Itoa(largest))
			if !acyclic {
				printKeyValue(out, "acyclic", "no")
				return nil
			}
			printKeyValue(out, "acyclic", "yes")
			if showOrder {
				labels := make([]string, len(order))
				for i, v := range order {
					labels[i] = ig.VertexLabel(v)
				}
				printKeyValue(out, "order", strings.Join(labels, " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showOrder, "order", false, "print a topological order of the node ids")
	return cmd
}
