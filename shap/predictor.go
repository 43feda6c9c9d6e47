package shap

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// PredictFunc evaluates a black-box model on a batch of rows. X has shape
// m x d; the returned Matrix must have shape m x k. Implementations must
// be pure with respect to row order: predict(X)[i] must depend only on
// X.RowView(i), never on neighboring rows or hidden state.
type PredictFunc func(ctx context.Context, X *Matrix) (*Matrix, error)

// Predictor wraps a PredictFunc and caches the base value (the mean
// prediction over the background), which depends only on the background
// data and so is computed once and reused across every explanation the
// owning Explainer performs.
type Predictor struct {
	fn       PredictFunc
	d, k     int
	basePred []float64 // phi_0, one entry per output class
}

// NewPredictor validates xbg's shape, evaluates fn once on it, and caches
// phi_0 = mean(fn(xbg), axis=0).
func NewPredictor(ctx context.Context, fn PredictFunc, xbg *Matrix, seed int64) (*Predictor, error) {
	d := xbg.Cols
	if xbg.Rows < 1 || d < 1 {
		return nil, newError(ErrShapeMismatch, seed, d, 0,
			fmt.Sprintf("background must have at least one row and one column, got %dx%d", xbg.Rows, d), nil)
	}
	if err := checkFinite(xbg, seed, d, 0); err != nil {
		return nil, err
	}

	bgPred, err := fn(ctx, xbg)
	if err != nil {
		return nil, newError(ErrPredictorFailure, seed, d, 0, "evaluating predictor on background", err)
	}
	if bgPred.Rows != xbg.Rows {
		return nil, newError(ErrShapeMismatch, seed, d, 0,
			fmt.Sprintf("predictor returned %d rows for %d background rows", bgPred.Rows, xbg.Rows), nil)
	}
	k := bgPred.Cols
	if err := checkFinite(bgPred, seed, d, 0); err != nil {
		return nil, err
	}

	basePred := make([]float64, k)
	col := make([]float64, bgPred.Rows)
	for c := 0; c < k; c++ {
		for i := 0; i < bgPred.Rows; i++ {
			col[i] = bgPred.At(i, c)
		}
		basePred[c] = stat.Mean(col, nil)
	}

	return &Predictor{fn: fn, d: d, k: k, basePred: basePred}, nil
}

// PredictQuery evaluates the predictor on a single query row and returns
// fx, validating shape and finiteness the same way Predict does for
// sample batches.
func (p *Predictor) PredictQuery(ctx context.Context, x []float64, seed int64) ([]float64, error) {
	if len(x) != p.d {
		return nil, newError(ErrShapeMismatch, seed, p.d, 0,
			fmt.Sprintf("query has %d features, background has %d", len(x), p.d), nil)
	}
	queryMat := &Matrix{Rows: 1, Cols: p.d, Data: append([]float64(nil), x...)}
	out, err := p.Predict(ctx, queryMat)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), out.Data...), nil
}

// Predict evaluates the wrapped predictor on an arbitrary m x d batch,
// checking the result for non-finite values before returning it.
func (p *Predictor) Predict(ctx context.Context, X *Matrix) (*Matrix, error) {
	out, err := p.fn(ctx, X)
	if err != nil {
		return nil, newError(ErrPredictorFailure, 0, p.d, 0, "evaluating predictor on sample batch", err)
	}
	if out.Cols != p.k {
		return nil, newError(ErrShapeMismatch, 0, p.d, 0,
			fmt.Sprintf("predictor returned %d output columns, want %d", out.Cols, p.k), nil)
	}
	if err := checkFinite(out, 0, p.d, 0); err != nil {
		return nil, err
	}
	return out, nil
}

// BaseValue returns phi_0, the mean predictor output over the background.
func (p *Predictor) BaseValue() []float64 {
	return append([]float64(nil), p.basePred...)
}

// checkFinite returns a NonFinitePrediction error naming the first
// offending row/column, or nil if every entry of m is finite.
func checkFinite(m *Matrix, seed int64, d, budget int) error {
	for i := 0; i < m.Rows; i++ {
		for c := 0; c < m.Cols; c++ {
			v := m.At(i, c)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return newError(ErrNonFinitePrediction, seed, d, budget,
					fmt.Sprintf("row %d, column %d = %v", i, c, v), nil)
			}
		}
	}
	return nil
}
