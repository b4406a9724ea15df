package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/edgeviz/edgeviz/pkg/centrality"
	"github.com/edgeviz/edgeviz/pkg/edgelist"
	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/render"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is
// used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → build → render → analyze pipeline and
// persists both artifacts. Everything is computed in memory first; files
// are written only once both the image and the table exist, so a failed
// run leaves the output directories untouched.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	g, err := r.loadAndBuild(ctx, opts, result)
	if err != nil {
		return nil, err
	}

	image, err := r.renderImage(ctx, g, opts, result)
	if err != nil {
		return nil, err
	}

	table, err := r.analyzeGraph(ctx, g, opts, result)
	if err != nil {
		return nil, err
	}

	// Persist both artifacts together.
	imagePath := filepath.Join(opts.VizDir, VizFileName(opts.Labels))
	if err := writeFile(imagePath, image); err != nil {
		return nil, err
	}
	result.ImagePath = imagePath

	csvPath := filepath.Join(opts.OutDir, CSVFileName)
	if err := table.WriteFile(csvPath); err != nil {
		return nil, err
	}
	result.CSVPath = csvPath

	return result, nil
}

// Render runs the load → build → render branch and writes only the
// network image.
func (r *Runner) Render(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}
	g, err := r.loadAndBuild(ctx, opts, result)
	if err != nil {
		return nil, err
	}
	image, err := r.renderImage(ctx, g, opts, result)
	if err != nil {
		return nil, err
	}

	imagePath := filepath.Join(opts.VizDir, VizFileName(opts.Labels))
	if err := writeFile(imagePath, image); err != nil {
		return nil, err
	}
	result.ImagePath = imagePath
	return result, nil
}

// Analyze runs the load → build → analyze branch and writes only the
// centrality table.
func (r *Runner) Analyze(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}
	g, err := r.loadAndBuild(ctx, opts, result)
	if err != nil {
		return nil, err
	}
	table, err := r.analyzeGraph(ctx, g, opts, result)
	if err != nil {
		return nil, err
	}

	csvPath := filepath.Join(opts.OutDir, CSVFileName)
	if err := table.WriteFile(csvPath); err != nil {
		return nil, err
	}
	result.CSVPath = csvPath
	return result, nil
}

// Load reads and filters the edge list, then builds the graph. Exposed
// for commands that need the graph itself, such as export.
func (r *Runner) Load(ctx context.Context, opts Options) (*graph.Graph, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return r.loadAndBuild(ctx, opts, &Result{})
}

func (r *Runner) loadAndBuild(ctx context.Context, opts Options, result *Result) (*graph.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	table, err := edgelist.ReadFile(opts.InputFile)
	if err != nil {
		return nil, err
	}
	filtered := table.Filter(opts.WeightThreshold)

	g, err := graph.Build(filtered)
	if err != nil {
		return nil, err
	}

	result.Stats.RowsRead = table.Len()
	result.Stats.RowsKept = filtered.Len()
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.LoadTime = time.Since(start)

	opts.Logger.Info("built graph",
		"rows", table.Len(),
		"kept", filtered.Len(),
		"threshold", opts.WeightThreshold,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.LoadTime)

	return g, nil
}

func (r *Runner) renderImage(ctx context.Context, g *graph.Graph, opts Options, result *Result) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layoutStart := time.Now()
	layoutOpts := []layout.Option{layout.WithSeed(opts.Seed)}
	if opts.Iterations > 0 {
		layoutOpts = append(layoutOpts, layout.WithIterations(opts.Iterations))
	}
	positions, err := layout.Compute(g, layoutOpts...)
	if err != nil {
		return nil, err
	}
	result.Stats.LayoutTime = time.Since(layoutStart)

	opts.Logger.Info("computed layout",
		"nodes", len(positions),
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	renderOpts := []render.Option{}
	if opts.Labels {
		renderOpts = append(renderOpts, render.WithLabels())
	}
	if opts.DPI > 0 {
		renderOpts = append(renderOpts, render.WithDPI(opts.DPI))
	}
	image, err := render.PNG(g, positions, renderOpts...)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered image",
		"bytes", len(image),
		"labels", opts.Labels,
		"duration", result.Stats.RenderTime)

	return image, nil
}

func (r *Runner) analyzeGraph(ctx context.Context, g *graph.Graph, opts Options, result *Result) (*centrality.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	table, err := centrality.Analyze(g)
	if err != nil {
		return nil, err
	}
	result.Stats.AnalyzeTime = time.Since(start)

	opts.Logger.Info("computed centrality",
		"nodes", table.Len(),
		"duration", result.Stats.AnalyzeTime)

	return table, nil
}

// writeFile writes data to path, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeFilesystem, err, "create directory %q", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "write %q", path)
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
