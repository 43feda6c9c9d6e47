// Package regression implements the weighted, equality-constrained
// least-squares solve that recovers Shapley values from sampled
// coalitions. It registers itself into shap's NewRegressorFunc via
// register.go's init(), keeping shap's core free of a direct gonum/mat
// dependency.
package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kernelshap/kernelshap/shap"
)

type solver struct {
	cfg shap.RegressorConfig
}

// New constructs a Regressor for a background of dimensionality cfg.D.
func New(cfg shap.RegressorConfig) (shap.Regressor, error) {
	if cfg.D < 2 {
		return nil, fmt.Errorf("regression: d=%d, need d>=2 (d=1 is handled without regression)", cfg.D)
	}
	return &solver{cfg: cfg}, nil
}

// Solve eliminates the last feature's coefficient using the efficiency
// constraint sum_j phi_j = fx - phi_0, reducing to an unconstrained
// weighted least squares in d-1 unknowns, solved per output class via
// ridged normal equations.
func (s *solver) Solve(Z *shap.Matrix, w []float64, yBar *shap.Matrix, basePred, fx []float64) (*shap.Matrix, error) {
	d := s.cfg.D
	m := Z.Rows
	free := d - 1
	k := yBar.Cols

	// A (weighted design matrix) and its normal-equations matrix AtA are
	// identical across output classes: only the right-hand side differs
	// per class, so both are built once.
	A := mat.NewDense(m, free, nil)
	sqrtW := make([]float64, m)
	for t := 0; t < m; t++ {
		sqrtW[t] = math.Sqrt(w[t])
		zLast := Z.At(t, d-1)
		for j := 0; j < free; j++ {
			A.Set(t, j, (Z.At(t, j)-zLast)*sqrtW[t])
		}
	}

	var AtADense mat.Dense
	AtADense.Mul(A.T(), A)

	ridge := s.cfg.Ridge
	if ridge == 0 {
		var trace float64
		for i := 0; i < free; i++ {
			trace += AtADense.At(i, i)
		}
		ridge = 1e-8 * trace / float64(d)
	}
	for i := 0; i < free; i++ {
		AtADense.Set(i, i, AtADense.At(i, i)+ridge)
	}

	sym := mat.NewSymDense(free, nil)
	for i := 0; i < free; i++ {
		for j := i; j < free; j++ {
			sym.SetSym(i, j, AtADense.At(i, j))
		}
	}

	phi := shap.NewMatrix(d, k)
	for c := 0; c < k; c++ {
		target := fx[c] - basePred[c]
		r := make([]float64, m)
		for t := 0; t < m; t++ {
			zLast := Z.At(t, d-1)
			r[t] = (yBar.At(t, c) - basePred[c] - zLast*target) * sqrtW[t]
		}

		var Atr mat.Dense
		Atr.Mul(A.T(), mat.NewDense(m, 1, r))

		x, err := solveRidged(sym, &AtADense, &Atr, free)
		if err != nil {
			return nil, &shap.Error{
				Kind:    shap.ErrDegenerateSystem,
				Seed:    s.cfg.Seed,
				D:       d,
				Context: fmt.Sprintf("class %d: ridged normal-equations system is rank-deficient after ridging (ridge=%g)", c, ridge),
				Err:     err,
			}
		}

		var sum float64
		for j := 0; j < free; j++ {
			v := x.At(j, 0)
			phi.Set(j, c, v)
			sum += v
		}
		phi.Set(d-1, c, target-sum)
	}
	return phi, nil
}

// solveRidged tries a Cholesky factorization of the (already-ridged)
// symmetric normal-equations matrix first, since it is the cheaper and
// more numerically stable path for a positive-definite system; it falls
// back to a general LU-based solve if Cholesky reports the matrix isn't
// positive-definite even after ridging.
func solveRidged(sym *mat.SymDense, dense *mat.Dense, rhs *mat.Dense, n int) (*mat.Dense, error) {
	var chol mat.Cholesky
	if chol.Factorize(sym) {
		var x mat.Dense
		if err := chol.SolveTo(&x, rhs); err == nil {
			return &x, nil
		}
	}

	var x mat.Dense
	if err := x.Solve(dense, rhs); err != nil {
		return nil, fmt.Errorf("degenerate coalition set: %w", err)
	}
	return &x, nil
}
