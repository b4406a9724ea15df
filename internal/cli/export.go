package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/render"
)

// Export format constants.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// exportCommand creates the export command for graph serialization.
func (c *CLI) exportCommand() *cobra.Command {
	flags := &pipelineFlags{}
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the graph as DOT or SVG",
		Long: `Export the filtered graph in Graphviz DOT format, or render it to SVG
with the neato engine.

With no --output the result goes to stdout, so it can be piped into
other Graphviz tooling:

  edgeviz export -f edges.csv | dot -Tpdf -o network.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatDOT && format != formatSVG {
				return errors.New(errors.ErrCodeInvalidInput,
					"invalid format: %q (must be dot or svg)", format)
			}

			opts, err := c.newOptions()
			if err != nil {
				return err
			}
			flags.apply(cmd, &opts)
			opts.Logger = c.Logger

			prog := newProgress(c.Logger)
			g, err := c.newRunner().Load(cmd.Context(), opts)
			if err != nil {
				return err
			}

			dot := render.ToDOT(g)
			data := []byte(dot)
			if format == formatSVG {
				if data, err = render.SVG(cmd.Context(), dot); err != nil {
					return err
				}
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()
			if _, err := out.Write(data); err != nil {
				return err
			}
			if output != "" {
				prog.done(fmt.Sprintf("Wrote %s to %s", format, output))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatDOT, "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
