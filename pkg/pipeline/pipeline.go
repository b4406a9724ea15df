// Package pipeline provides the core analysis pipeline for edgeviz.
//
// This package implements the complete load → filter → build → layout →
// render → analyze flow so the CLI commands share one implementation.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read the weighted edge list CSV and filter by weight threshold
//  2. Build: Construct the undirected weighted graph
//  3. Render: Compute a force-directed layout and draw the network PNG
//  4. Analyze: Compute centrality measures and tabulate them
//
// A full run holds both artifacts in memory and persists them together at
// the end, so a failure in any stage leaves no partial output behind.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    InputFile: "data/weighted_edgelist.csv",
//	    Labels:    true,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.ImagePath, result.CSVPath)
//
// Run a single branch:
//
//	result, err := runner.Render(ctx, opts)  // image only
//	result, err := runner.Analyze(ctx, opts) // centrality only
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Defaults shared by every entry point.
const (
	// DefaultInputFile is the conventional location of the edge list.
	DefaultInputFile = "data/weighted_edgelist.csv"

	// DefaultThreshold keeps only edges with weight strictly above it.
	DefaultThreshold = 500.0

	// DefaultVizDir receives the rendered network image.
	DefaultVizDir = "viz"

	// DefaultOutDir receives the centrality CSV.
	DefaultOutDir = "output"

	// DefaultSeed is the random seed for layout reproducibility.
	DefaultSeed = uint64(42)
)

// CSVFileName is the fixed name of the centrality table artifact.
const CSVFileName = "centrality_measures.csv"

// VizFileName returns the image artifact name; labeled renders get a
// distinct name so both variants can coexist.
func VizFileName(labels bool) string {
	if labels {
		return "network_w_labels.png"
	}
	return "network.png"
}

// Options contains all configuration for the analysis pipeline.
type Options struct {
	// Load options
	InputFile       string
	WeightThreshold float64

	// Render options
	Labels     bool
	VizDir     string
	Seed       uint64
	Iterations int
	DPI        int

	// Analyze options
	OutDir string

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run. Paths are empty for
// artifacts the executed branch did not produce.
type Result struct {
	// ImagePath is where the network PNG was written.
	ImagePath string

	// CSVPath is where the centrality table was written.
	CSVPath string

	// Stats contains graph size and timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowsRead    int
	RowsKept    int
	NodeCount   int
	EdgeCount   int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
	AnalyzeTime time.Duration
}

// ValidateAndSetDefaults applies defaults to unset fields. It is
// idempotent. A zero threshold is a meaningful value, so the default
// applies only when the field was never set; use NewOptions for
// flag-driven construction.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.InputFile == "" {
		o.InputFile = DefaultInputFile
	}
	if o.VizDir == "" {
		o.VizDir = DefaultVizDir
	}
	if o.OutDir == "" {
		o.OutDir = DefaultOutDir
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// NewOptions returns Options with every default applied, ready for
// field-by-field override from flags or config.
func NewOptions() Options {
	o := Options{WeightThreshold: DefaultThreshold}
	_ = o.ValidateAndSetDefaults()
	return o
}
