package cli

import (
	"github.com/spf13/cobra"
)

// renderCommand creates the render command for the image-only branch.
func (c *CLI) renderCommand() *cobra.Command {
	flags := &pipelineFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the network image only",
		Long: `Render the network image without computing centrality measures.

The layout is a seeded force simulation, so the same input and seed
always produce the same image. Use --labels to annotate each node with
its identifier; the labeled image is written under a distinct name so
both variants can coexist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.newOptions()
			if err != nil {
				return err
			}
			flags.apply(cmd, &opts)
			return c.runPipeline(cmd.Context(), opts, stageRender)
		},
	}

	flags.register(cmd)
	flags.registerRender(cmd)
	return cmd
}
