package shap

// buildCoalitions runs the full enumerator+sampler pipeline:
// exhaustively enumerate the cheapest subset sizes, then Monte-Carlo
// sample the rest in complementary pairs, until the sample budget M is
// exhausted. d=1 has no interior sizes and is handled by the caller
// before this is reached.
func buildCoalitions(seed int64, d, budget int, rng *RNG) ([]Mask, error) {
	if d < 2 {
		return nil, nil
	}
	if budget < 2*d {
		return nil, newError(ErrBudgetTooSmall, seed, d, budget,
			"budget must allow at least the (s=1, s=d-1) complementary pair", nil)
	}

	plan := planEnumeration(d, budget)
	masks := plan.masks

	remaining := plan.remaining
	sizes := plan.remainingSizes(d)
	if remaining > 0 && len(sizes) > 0 {
		masks = append(masks, sampleMonteCarlo(d, sizes, remaining, rng)...)
	}
	return masks, nil
}
