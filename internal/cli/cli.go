// Package cli implements the edgeviz command-line interface.
//
// This package provides commands for turning a weighted edge list into a
// network visualization and a table of centrality measures. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - run: Full pipeline - render the network and compute centrality
//   - render: Render the network image only
//   - analyze: Compute centrality measures only
//   - export: Write the graph as DOT or SVG
//
// All commands support --verbose (-v) for debug-level logging and
// --config for loading defaults from a TOML file.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/buildinfo"
	"github.com/edgeviz/edgeviz/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "edgeviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigFile is an explicit config path from --config; empty means
	// the default location is probed.
	ConfigFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Edgeviz visualizes and analyzes weighted networks",
		Long:         `Edgeviz is a CLI tool that loads a weighted edge list, filters it by a weight threshold, and produces a network visualization alongside degree, betweenness, and eigenvector centrality measures.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigFile, "config", "", "config file (default: $XDG_CONFIG_HOME/edgeviz/config.toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// newOptions builds pipeline options from config file defaults; flags
// override these afterwards in each command.
func (c *CLI) newOptions() (pipeline.Options, error) {
	opts := pipeline.NewOptions()
	cfg, err := LoadConfig(c.ConfigFile)
	if err != nil {
		return opts, err
	}
	cfg.Apply(&opts)
	return opts, nil
}
