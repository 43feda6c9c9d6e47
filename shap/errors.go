package shap

import "fmt"

// ErrKind identifies which of the explainer's fatal error categories a
// failure belongs to, so callers can branch with errors.As instead of
// matching on message text.
type ErrKind int

const (
	// ErrShapeMismatch: the query length or background width disagrees
	// with the feature count established at construction.
	ErrShapeMismatch ErrKind = iota
	// ErrBudgetTooSmall: the requested sample budget cannot represent
	// even the cheapest complementary pair (s=1, s=d-1).
	ErrBudgetTooSmall
	// ErrNonFinitePrediction: the predictor returned NaN or Inf.
	ErrNonFinitePrediction
	// ErrDegenerateSystem: the ridged normal-equations system is still
	// rank-deficient.
	ErrDegenerateSystem
	// ErrPredictorFailure: the predictor collaborator itself returned an
	// error; shap wraps it without retrying.
	ErrPredictorFailure
)

func (k ErrKind) String() string {
	switch k {
	case ErrShapeMismatch:
		return "ShapeMismatch"
	case ErrBudgetTooSmall:
		return "BudgetTooSmall"
	case ErrNonFinitePrediction:
		return "NonFinitePrediction"
	case ErrDegenerateSystem:
		return "DegenerateSystem"
	case ErrPredictorFailure:
		return "PredictorFailure"
	default:
		return "Unknown"
	}
}

// Error is the typed error shap returns for every fatal condition. It
// carries seed, d, M, and a free-form Context string naming e.g. a subset
// size or row index. Fields the reporting stage does not know are left
// zero: errors from Predictor.Predict (including those surfaced through
// PredictQuery and the sample builder) report seed 0 and M 0, and errors
// from NewPredictor, PredictQuery's shape check and the regressor's Solve
// report M 0.
type Error struct {
	Kind    ErrKind
	Seed    int64
	D       int
	M       int
	Context string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("shap: %s (seed=%d, d=%d, M=%d)", e.Kind, e.Seed, e.D, e.M)
	if e.Context != "" {
		msg += ": " + e.Context
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrKind, seed int64, d, m int, context string, err error) *Error {
	return &Error{Kind: kind, Seed: seed, D: d, M: m, Context: context, Err: err}
}
