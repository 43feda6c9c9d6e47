// Package shap implements KernelSHAP: it attributes a single scalar (or
// vector, for multi-class outputs) model prediction to each input feature
// by solving a weighted, equality-constrained linear regression over
// sampled feature coalitions.
//
// # Reading Guide
//
// Start with these files to understand the explanation pipeline:
//   - predictor.go: wraps a black-box predict function, caches the base
//     value and the query prediction.
//   - kernel.go: the SHAP kernel weight, computed in log-space for
//     numerical stability.
//   - coalition.go + sampler.go: enumerate cheap coalition sizes exactly,
//     Monte-Carlo sample the rest, always in complementary pairs.
//   - builder.go: expand masks into the synthetic sample matrix and
//     average predictions per mask.
//   - explainer.go: ties the stages together into the public Explainer API.
//
// # Architecture
//
// shap defines the pipeline and the public types; the regression solver
// lives in shap/regression and registers itself via an init() factory
// variable (NewRegressorFunc), keeping the interface-owning package free
// of a direct dependency on its own implementation.
//
// # Determinism
//
// Every source of randomness is an explicitly injected *RNG (rng.go).
// shap never reads from math/rand's global source, so two Explainers
// constructed with the same seed and fed the same predictor and inputs
// produce bit-for-bit identical results.
package shap
