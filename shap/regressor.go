package shap

// Regressor solves the weighted, equality-constrained least-squares
// system that recovers phi from the sampled coalitions. Implementations
// live outside this package (see shap/regression) and register themselves
// into NewRegressorFunc via an init() function, keeping this package free
// of a direct dependency on any particular linear-algebra library.
type Regressor interface {
	// Solve returns phi (d x k) given the coalition design matrix Z
	// (M x d booleans packed as float64 0/1), per-coalition kernel
	// weights w (length M), the per-mask mean predictions yBar (M x k),
	// the base value phi_0 (length k), and the query prediction fx
	// (length k). The returned phi satisfies, for every class c,
	// phi_0[c] + sum_j phi[j][c] == fx[c] up to floating-point round-off.
	Solve(Z *Matrix, w []float64, yBar *Matrix, basePred, fx []float64) (*Matrix, error)
}

// RegressorConfig carries everything a Regressor implementation needs to
// construct itself and to report context in any DegenerateSystem error it
// raises.
type RegressorConfig struct {
	D     int
	Ridge float64 // 0 means "compute 1e-8*trace/d automatically"
	Seed  int64
}

// NewRegressorFunc is set by shap/regression's init(). It is nil until
// that package (or an equivalent implementation) is imported.
var NewRegressorFunc func(cfg RegressorConfig) (Regressor, error)

// MustNewRegressor calls NewRegressorFunc with a nil guard, panicking
// with an actionable message if no regressor implementation has been
// registered.
func MustNewRegressor(cfg RegressorConfig) (Regressor, error) {
	if NewRegressorFunc == nil {
		panic("shap: NewRegressorFunc not registered: import shap/regression to register it " +
			"(add: import _ \"github.com/kernelshap/kernelshap/shap/regression\")")
	}
	return NewRegressorFunc(cfg)
}
