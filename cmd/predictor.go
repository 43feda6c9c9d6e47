package cmd

import (
	"context"
	"fmt"
	"math"

	"github.com/kernelshap/kernelshap/shap"
)

// LinearLogisticPredictor is a bundled two-class demo predictor: a
// logistic regression sigma(x.beta + b). It exists only to give the CLI
// something to explain end to end; real predictors are supplied by
// callers of the shap package, not by this package.
type LinearLogisticPredictor struct {
	Beta []float64
	Bias float64
}

// Predict implements shap.PredictFunc, returning a two-column matrix
// [1-p, p] per row so each row's two class probabilities sum to 1.
func (p *LinearLogisticPredictor) Predict(_ context.Context, X *shap.Matrix) (*shap.Matrix, error) {
	if X.Cols != len(p.Beta) {
		return nil, fmt.Errorf("linear predictor: input has %d columns, want %d", X.Cols, len(p.Beta))
	}
	out := shap.NewMatrix(X.Rows, 2)
	for i := 0; i < X.Rows; i++ {
		row := X.RowView(i)
		var z float64
		for j, b := range p.Beta {
			z += row[j] * b
		}
		z += p.Bias
		prob := 1 / (1 + math.Exp(-z))
		out.Set(i, 0, 1-prob)
		out.Set(i, 1, prob)
	}
	return out, nil
}
