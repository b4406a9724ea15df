package cli

import (
	"github.com/spf13/cobra"
)

// analyzeCommand creates the analyze command for the centrality-only branch.
func (c *CLI) analyzeCommand() *cobra.Command {
	flags := &pipelineFlags{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute centrality measures only",
		Long: `Compute degree, betweenness, and eigenvector centrality for every
node in the filtered graph and write them as a CSV table, skipping the
image render.

All three measures treat the graph as unweighted; the weight threshold
decides which edges exist, not how much they count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.newOptions()
			if err != nil {
				return err
			}
			flags.apply(cmd, &opts)
			return c.runPipeline(cmd.Context(), opts, stageAnalyze)
		},
	}

	flags.register(cmd)
	flags.registerAnalyze(cmd)
	return cmd
}
