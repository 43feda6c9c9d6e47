package cmd

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ExplainOptionsFile is the YAML-loadable form of shap.ExplainOptions: a
// YAML-tagged struct with a Validate method that rejects NaN/Inf/negative
// numeric fields before the values ever reach the explainer.
type ExplainOptionsFile struct {
	NSamples      int     `yaml:"n_samples"`
	Ridge         float64 `yaml:"ridge"`
	MaxCellBudget int     `yaml:"max_cell_budget"`
}

// LoadExplainOptions reads and validates an options YAML file. An empty
// path is not an error: it returns the zero value, which the shap
// package resolves to its own defaults.
func LoadExplainOptions(path string) (ExplainOptionsFile, error) {
	if path == "" {
		return ExplainOptionsFile{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ExplainOptionsFile{}, fmt.Errorf("read options file: %w", err)
	}
	var opts ExplainOptionsFile
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return ExplainOptionsFile{}, fmt.Errorf("parse options YAML: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return ExplainOptionsFile{}, err
	}
	return opts, nil
}

// Validate rejects negative, NaN, or Inf values. Zero values are left
// alone; they mean "use the default" downstream.
func (o ExplainOptionsFile) Validate() error {
	if o.NSamples < 0 {
		return fmt.Errorf("n_samples must be non-negative, got %d", o.NSamples)
	}
	if o.MaxCellBudget < 0 {
		return fmt.Errorf("max_cell_budget must be non-negative, got %d", o.MaxCellBudget)
	}
	if math.IsNaN(o.Ridge) || math.IsInf(o.Ridge, 0) {
		return fmt.Errorf("ridge must be a finite number, got %v", o.Ridge)
	}
	if o.Ridge < 0 {
		return fmt.Errorf("ridge must be non-negative, got %v", o.Ridge)
	}
	return nil
}
