package shap

import "sort"

// sampleMonteCarlo draws `count` coalitions from the interior sizes not
// already covered by exhaustive enumeration. Subset sizes are drawn from
// the normalized distribution over omega(s); for each drawn coalition the
// complement is also added, so draws proceed in pairs and the caller's
// count may be satisfied with one trailing unpaired mask when count is
// odd. Every mask receives weight 1/count, normalized across the sampled
// portion independently of the exhaustively enumerated portion.
func sampleMonteCarlo(d int, sizes []int, count int, rng *RNG) []Mask {
	if count <= 0 || len(sizes) == 0 {
		return nil
	}
	cum := cumulativeSizeWeights(d, sizes)
	perMaskWeight := 1.0 / float64(count)

	masks := make([]Mask, 0, count)
	for len(masks) < count {
		s := pickSize(sizes, cum, rng)
		z := sampleMaskOfSize(d, s, rng)
		z.Weight = perMaskWeight
		masks = append(masks, z)
		if len(masks) >= count {
			break
		}
		comp := z.complement()
		comp.Weight = perMaskWeight
		masks = append(masks, comp)
	}
	return masks
}

// cumulativeSizeWeights returns the normalized cumulative distribution
// function over sizes, indexed the same as sizes, used for inverse-CDF
// sampling of a subset size.
func cumulativeSizeWeights(d int, sizes []int) []float64 {
	weights := make([]float64, len(sizes))
	var total float64
	for i, s := range sizes {
		weights[i] = sizeWeight(d, s)
		total += weights[i]
	}
	cum := make([]float64, len(sizes))
	var acc float64
	for i, w := range weights {
		acc += w / total
		cum[i] = acc
	}
	// Guard against floating-point drift leaving the last entry under 1.
	cum[len(cum)-1] = 1
	return cum
}

// pickSize draws one subset size from sizes according to the cumulative
// distribution cum via inverse-CDF search.
func pickSize(sizes []int, cum []float64, rng *RNG) int {
	u := rng.Float64()
	i := sort.SearchFloat64s(cum, u)
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	return sizes[i]
}

// sampleMaskOfSize draws s feature positions uniformly without
// replacement out of d via a partial Fisher-Yates shuffle, then returns
// the corresponding Mask with an unset Weight (callers assign it).
func sampleMaskOfSize(d, s int, rng *RNG) Mask {
	positions := make([]int, d)
	for i := range positions {
		positions[i] = i
	}
	// Partial Fisher-Yates: only the first s swaps are needed to produce a
	// uniformly random s-subset in positions[:s].
	for i := 0; i < s; i++ {
		j := i + rng.IntN(d-i)
		positions[i], positions[j] = positions[j], positions[i]
	}
	return maskFromIndices(d, positions[:s])
}
