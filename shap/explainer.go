package shap

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Diagnostics reports how an explanation's sample budget was spent
// across exhaustive enumeration and Monte-Carlo sampling.
type Diagnostics struct {
	NSamplesAdded int // total coalitions realized, <= requested M
	NEnumerated   int // coalitions covered by exhaustive enumeration
	NSampled      int // coalitions covered by Monte-Carlo sampling
}

// Result is the outcome of one explanation.
type Result struct {
	Phi         *Matrix // d x k, per-feature attributions
	BaseValue   []float64
	FX          []float64
	Diagnostics Diagnostics
}

// Explainer computes KernelSHAP attributions for queries against a fixed
// predictor and background dataset. One Explainer instance owns one RNG
// stream and performs explanations strictly sequentially; concurrent
// explanations require one Explainer per goroutine.
type Explainer struct {
	predictor *Predictor
	xbg       *Matrix
	d, k      int
	seed      int64
	rng       *RNG

	log *logrus.Entry
}

// NewExplainer validates xbg's shape, evaluates the predictor once on it
// to compute the base value, and seeds the explainer's deterministic RNG.
func NewExplainer(ctx context.Context, predict PredictFunc, xbg *Matrix, seed int64) (*Explainer, error) {
	predictor, err := NewPredictor(ctx, predict, xbg, seed)
	if err != nil {
		return nil, err
	}
	return &Explainer{
		predictor: predictor,
		xbg:       xbg,
		d:         xbg.Cols,
		k:         len(predictor.basePred),
		seed:      seed,
		rng:       NewRNG(seed),
		log:       logrus.WithFields(logrus.Fields{"component": "shap.Explainer", "seed": seed, "d": xbg.Cols}),
	}, nil
}

// BaseValue returns phi_0, the mean predictor output over the background.
func (e *Explainer) BaseValue() []float64 {
	return e.predictor.BaseValue()
}

// Explain attributes f(x) to each of x's features. Mask generation,
// sample-matrix construction, the predictor call(s), and the regression
// solve run strictly sequentially; the only suspension point is the
// predictor call, which honors ctx cancellation.
func (e *Explainer) Explain(ctx context.Context, x []float64, opts ExplainOptions) (*Result, error) {
	opts = opts.resolve(e.d)
	log := e.log.WithField("nSamples", opts.NSamples)

	fx, err := e.predictor.PredictQuery(ctx, x, e.seed)
	if err != nil {
		return nil, err
	}

	if e.d == 1 {
		log.Debug("single-feature explanation, skipping regression")
		return e.trivialResult(fx), nil
	}

	masks, err := buildCoalitions(e.seed, e.d, opts.NSamples, e.rng)
	if err != nil {
		return nil, err
	}
	diag := diagnose(masks, opts.NSamples)
	log.WithFields(logrus.Fields{
		"enumerated": diag.NEnumerated,
		"sampled":    diag.NSampled,
	}).Debug("coalition plan built")

	builder := NewSampleBuilder(e.xbg, opts.MaxCellBudget)
	yBar, err := builder.Build(ctx, x, masks, e.predictor.Predict)
	if err != nil {
		return nil, err
	}

	Z, w := maskDesignMatrix(masks, e.d)

	regressor, err := MustNewRegressor(RegressorConfig{D: e.d, Ridge: opts.Ridge, Seed: e.seed})
	if err != nil {
		return nil, newError(ErrDegenerateSystem, e.seed, e.d, opts.NSamples, "constructing regressor", err)
	}
	phi, err := regressor.Solve(Z, w, yBar, e.predictor.basePred, fx)
	if err != nil {
		return nil, err
	}

	return &Result{
		Phi:         phi,
		BaseValue:   e.predictor.BaseValue(),
		FX:          fx,
		Diagnostics: diag,
	}, nil
}

// trivialResult handles d=1: with a single feature there is nothing to
// apportion between coalitions, so phi is exactly f(x) - phi_0.
func (e *Explainer) trivialResult(fx []float64) *Result {
	base := e.predictor.BaseValue()
	phi := NewMatrix(1, e.k)
	for c := 0; c < e.k; c++ {
		phi.Set(0, c, fx[c]-base[c])
	}
	return &Result{
		Phi:         phi,
		BaseValue:   base,
		FX:          fx,
		Diagnostics: Diagnostics{NSamplesAdded: 0},
	}
}

// diagnose summarizes how the budget was spent across enumeration and
// sampling: the total never exceeds M, and equals M unless every interior
// size was enumerated with budget to spare (then it is 2^d - 2).
func diagnose(masks []Mask, budget int) Diagnostics {
	var enumerated, sampled int
	for _, m := range masks {
		if isEnumeratedWeight(m) {
			enumerated++
		} else {
			sampled++
		}
	}
	return Diagnostics{NSamplesAdded: len(masks), NEnumerated: enumerated, NSampled: sampled}
}

// isEnumeratedWeight distinguishes an exhaustively-enumerated mask (which
// carries its raw kernel weight) from a Monte-Carlo sampled one (which
// always carries the normalized 1/count weight); used only for reporting.
func isEnumeratedWeight(m Mask) bool {
	w := kernelWeight(len(m.Bits), m.Size)
	return m.Weight == w
}

// maskDesignMatrix packs masks into a 0/1 design matrix Z (M x d) and a
// parallel weight vector w (length M), the shape shap/regression expects.
func maskDesignMatrix(masks []Mask, d int) (*Matrix, []float64) {
	Z := NewMatrix(len(masks), d)
	w := make([]float64, len(masks))
	for t, m := range masks {
		for j, present := range m.Bits {
			if present {
				Z.Set(t, j, 1)
			}
		}
		w[t] = m.Weight
	}
	return Z, w
}

// String renders a Result as a human-readable feature-attribution table,
// used by the CLI collaborator and handy in debug logging.
func (r *Result) String() string {
	s := fmt.Sprintf("base value: %v\n", r.BaseValue)
	for j := 0; j < r.Phi.Rows; j++ {
		s += fmt.Sprintf("feature %d: %v\n", j, r.Phi.RowView(j))
	}
	return s
}
