package cli

import (
	"github.com/spf13/cobra"

	gmlerrors "github.com/matzehuels/minigraphml/pkg/errors"
	"github.com/matzehuels/minigraphml/pkg/render/dot"
)

func (c *CLI) dotCommand() *cobra.Command {
	var (
		output     string
		svg        bool
		rankdir    string
		edgeLabels bool
	)

	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Convert a GraphML file to Graphviz DOT or SVG",
		Long: `Load a GraphML file, convert it to an indexed graph and print it as Graphviz DOT.
With --svg the diagram is rendered in-process instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, cfg, err := c.load(args[0])
			if err != nil {
				return err
			}
			opts := cfg.RenderOptions()
			if cmd.Flags().Changed("rankdir") {
				if !dot.ValidRankDir(rankdir) {
					return gmlerrors.New(gmlerrors.ErrCodeInvalidInput, "unknown rankdir %q", rankdir)
				}
				opts.RankDir = rankdir
			}
			if cmd.Flags().Changed("edge-labels") {
				opts.EdgeLabels = edgeLabels
			}

			ig, err := doc.IntoIndexed()
			if err != nil {
				return err
			}
			data := []byte(dot.ToDOT(ig, opts))

			if svg {
				prog := newProgress(c.Logger)
				data, err = dot.RenderSVG(cmd.Context(), string(data))
				if err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}

			if err := writeOutput(cmd.OutOrStdout(), output, data); err != nil {
				return gmlerrors.Wrap(gmlerrors.ErrCodeIO, err, "write %s", output)
			}
			if output != "" && output != "-" {
				printFile(cmd.ErrOrStderr(), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of printing DOT")
	cmd.Flags().StringVar(&rankdir, "rankdir", "", "layout direction: TB, LR, BT or RL")
	cmd.Flags().BoolVar(&edgeLabels, "edge-labels", true, "print edge ids on arrows")
	return cmd
}
