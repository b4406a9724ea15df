package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/pipeline"
)

// Config holds file-based defaults for pipeline options. Pointer fields
// distinguish "unset" from a deliberate zero, so a config file can set a
// threshold of 0 without it being mistaken for absent.
type Config struct {
	InputFile       *string  `toml:"input_file"`
	WeightThreshold *float64 `toml:"weight_threshold"`
	Labels          *bool    `toml:"labels"`
	VizDir          *string  `toml:"viz_dir"`
	OutDir          *string  `toml:"out_dir"`
	Seed            *uint64  `toml:"seed"`
	Iterations      *int     `toml:"iterations"`
	DPI             *int     `toml:"dpi"`
}

// LoadConfig reads a TOML config file. An explicit path must exist; an
// empty path probes the default location and returns an empty Config if
// no file is there.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %q", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %q", path)
	}
	return &cfg, nil
}

// Apply copies set config values onto opts. Flags are applied after this,
// so the precedence is flags over config file over built-in defaults.
func (c *Config) Apply(opts *pipeline.Options) {
	if c.InputFile != nil {
		opts.InputFile = *c.InputFile
	}
	if c.WeightThreshold != nil {
		opts.WeightThreshold = *c.WeightThreshold
	}
	if c.Labels != nil {
		opts.Labels = *c.Labels
	}
	if c.VizDir != nil {
		opts.VizDir = *c.VizDir
	}
	if c.OutDir != nil {
		opts.OutDir = *c.OutDir
	}
	if c.Seed != nil {
		opts.Seed = *c.Seed
	}
	if c.Iterations != nil {
		opts.Iterations = *c.Iterations
	}
	if c.DPI != nil {
		opts.DPI = *c.DPI
	}
}

// defaultConfigPath returns the XDG-standard config location
// (~/.config/edgeviz/config.toml), or "" if no home is resolvable.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
