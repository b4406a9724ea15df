package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/pipeline"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
input_file = "edges.csv"
weight_threshold = 250.0
labels = true
seed = 7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.InputFile == nil || *cfg.InputFile != "edges.csv" {
		t.Errorf("InputFile = %v, want edges.csv", cfg.InputFile)
	}
	if cfg.WeightThreshold == nil || *cfg.WeightThreshold != 250.0 {
		t.Errorf("WeightThreshold = %v, want 250", cfg.WeightThreshold)
	}
	if cfg.Labels == nil || !*cfg.Labels {
		t.Errorf("Labels = %v, want true", cfg.Labels)
	}
	if cfg.OutDir != nil {
		t.Errorf("OutDir = %v, want unset", cfg.OutDir)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Fatalf("LoadConfig() error = %v, want code INVALID_PATH", err)
	}
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	// Point the default location at an empty directory.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.InputFile != nil || cfg.WeightThreshold != nil {
		t.Errorf("missing default config should load as empty, got %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("weight_threshold = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("LoadConfig() error = %v, want code INVALID_FORMAT", err)
	}
}

func TestConfigApply(t *testing.T) {
	threshold := 100.0
	labels := true
	cfg := &Config{
		WeightThreshold: &threshold,
		Labels:          &labels,
	}

	opts := pipeline.NewOptions()
	cfg.Apply(&opts)

	if opts.WeightThreshold != 100.0 {
		t.Errorf("WeightThreshold = %v, want 100", opts.WeightThreshold)
	}
	if !opts.Labels {
		t.Error("Labels not applied")
	}
	// Unset fields keep pipeline defaults.
	if opts.InputFile != pipeline.DefaultInputFile {
		t.Errorf("InputFile = %q, want default", opts.InputFile)
	}
	if opts.OutDir != pipeline.DefaultOutDir {
		t.Errorf("OutDir = %q, want default", opts.OutDir)
	}
}
