package cli

import (
	"os"

	"github.com/spf13/cobra"

	gmlerrors "github.com/matzehuels/minigraphml/pkg/errors"
)

func (c *CLI) fmtCommand() *cobra.Command {
	var (
		output  string
		inPlace bool
	)

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a GraphML file in canonical form",
		Long: `Load a GraphML file and write it back as UTF-8 with two-space indentation.
Node and edge order is kept. The result goes to stdout unless -o or -w is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inPlace && output != "" {
				return gmlerrors.New(gmlerrors.ErrCodeInvalidInput, "-w and -o are mutually exclusive")
			}
			doc, _, err := c.load(args[0])
			if err != nil {
				return err
			}
			text, err := doc.Serialize()
			if err != nil {
				return err
			}

			dest := output
			if inPlace {
				dest = args[0]
				if current, err := os.ReadFile(dest); err == nil && string(current) == text {
					c.Logger.Debug("already formatted", "path", dest)
					return nil
				}
			}
			if err := writeOutput(cmd.OutOrStdout(), dest, []byte(text)); err != nil {
				return gmlerrors.Wrap(gmlerrors.ErrCodeIO, err, "write %s", dest)
			}
			if dest != "" && dest != "-" {
				printFile(cmd.ErrOrStderr(), dest)
			}
			c.Logger.Debug("formatted graph", "source", args[0], "bytes", len(text))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "rewrite the input file in place")
	return cmd
}
