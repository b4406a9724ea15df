package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/pipeline"
)

// pipelineFlags holds the flag values shared by run, render, and analyze.
type pipelineFlags struct {
	file       string
	threshold  float64
	labels     bool
	vizDir     string
	outDir     string
	seed       uint64
	iterations int
	dpi        int
}

// register adds the shared flags to cmd.
func (f *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", pipeline.DefaultInputFile, "weighted edge list CSV")
	cmd.Flags().Float64VarP(&f.threshold, "weight-threshold", "w", pipeline.DefaultThreshold, "keep edges with weight strictly above this")
	cmd.Flags().Uint64Var(&f.seed, "seed", pipeline.DefaultSeed, "random seed for layout")
	cmd.Flags().IntVar(&f.iterations, "iterations", 0, "layout iterations (0 = default)")
}

// registerRender adds the rendering flags to cmd.
func (f *pipelineFlags) registerRender(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.labels, "labels", "l", false, "draw node labels")
	cmd.Flags().StringVar(&f.vizDir, "viz-dir", pipeline.DefaultVizDir, "directory for the network image")
	cmd.Flags().IntVar(&f.dpi, "dpi", 0, "image resolution (0 = 300)")
}

// registerAnalyze adds the analysis flags to cmd.
func (f *pipelineFlags) registerAnalyze(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.outDir, "out-dir", pipeline.DefaultOutDir, "directory for the centrality CSV")
}

// apply overrides opts with any flag the user set explicitly, preserving
// config file values for the rest.
func (f *pipelineFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	set := cmd.Flags().Changed
	if set("file") {
		opts.InputFile = f.file
	}
	if set("weight-threshold") {
		opts.WeightThreshold = f.threshold
	}
	if set("labels") {
		opts.Labels = f.labels
	}
	if set("viz-dir") {
		opts.VizDir = f.vizDir
	}
	if set("out-dir") {
		opts.OutDir = f.outDir
	}
	if set("seed") {
		opts.Seed = f.seed
	}
	if set("iterations") {
		opts.Iterations = f.iterations
	}
	if set("dpi") {
		opts.DPI = f.dpi
	}
}

// runCommand creates the run command for the full pipeline.
func (c *CLI) runCommand() *cobra.Command {
	flags := &pipelineFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Render the network and compute centrality measures",
		Long: `Run the full pipeline: load the weighted edge list, keep edges with
weight strictly above the threshold, render the network image, and write
degree, betweenness, and eigenvector centrality for every node.

Both artifacts are computed before either is written, so a failing run
leaves the output directories untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.newOptions()
			if err != nil {
				return err
			}
			flags.apply(cmd, &opts)
			return c.runPipeline(cmd.Context(), opts, stageAll)
		},
	}

	flags.register(cmd)
	flags.registerRender(cmd)
	flags.registerAnalyze(cmd)
	return cmd
}

// stage selects which pipeline branch to execute.
type stage int

const (
	stageAll stage = iota
	stageRender
	stageAnalyze
)

// runPipeline executes the selected branch and prints the result summary.
func (c *CLI) runPipeline(ctx context.Context, opts pipeline.Options, st stage) error {
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Analyzing %s...", opts.InputFile))
	spinner.Start()

	var (
		result *pipeline.Result
		err    error
	)
	runner := c.newRunner()
	switch st {
	case stageRender:
		result, err = runner.Render(ctx, opts)
	case stageAnalyze:
		result, err = runner.Analyze(ctx, opts)
	default:
		result, err = runner.Execute(ctx, opts)
	}
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.Stop()

	printSuccess("Processed %s", opts.InputFile)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount)
	printDetail("%d of %d rows above threshold %v",
		result.Stats.RowsKept, result.Stats.RowsRead, opts.WeightThreshold)
	if result.ImagePath != "" {
		printFile(result.ImagePath)
	}
	if result.CSVPath != "" {
		printFile(result.CSVPath)
	}
	return nil
}
