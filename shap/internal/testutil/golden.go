// Package testutil provides shared test infrastructure for the shap
// package: golden dataset loading and tolerance-aware float assertions.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset is the structure of testdata/shap_golden.json.
type GoldenDataset struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// GoldenScenario captures a logistic-regression predictor, a background
// matrix, and the expected per-row predictions / base value it produces.
type GoldenScenario struct {
	Name                string      `json:"name"`
	Beta                []float64   `json:"beta"`
	Bias                float64     `json:"bias"`
	Background          [][]float64 `json:"background"`
	Query               []float64   `json:"query"`
	ExpectedBgClass1    []float64   `json:"expected_bg_class1"`
	ExpectedBaseClass1  float64     `json:"expected_base_class1"`
	ExpectedFXClass1    float64     `json:"expected_fx_class1"`
	Seed                int64       `json:"seed"`
	NSamples            int         `json:"n_samples"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: shap/internal/testutil/
// -> repo root testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "shap_golden.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// AssertFloat64Near compares two float64 values against an absolute
// tolerance.
func AssertFloat64Near(t *testing.T, name string, want, got, absTol float64) {
	t.Helper()
	if math.Abs(want-got) > absTol {
		t.Errorf("%s: got %v, want %v (abs diff %v > tol %v)", name, got, want, math.Abs(want-got), absTol)
	}
}
