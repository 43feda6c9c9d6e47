package shap

// enumerationPlan is the result of walking subset sizes from the extremes
// inward and deciding which are cheap enough to enumerate exhaustively.
type enumerationPlan struct {
	masks           []Mask
	enumeratedSizes map[int]bool
	remaining       int // budget left for Monte-Carlo sampling
}

// planEnumeration walks sizes s=1,d-1,2,d-2,... inward, and enumerates
// both s and d-s exactly whenever the full pair fits in the budget that
// remains. It stops at the first size the budget can no longer afford,
// handing everything left to the Monte-Carlo sampler.
func planEnumeration(d, budget int) enumerationPlan {
	plan := enumerationPlan{enumeratedSizes: make(map[int]bool), remaining: budget}

	low, high := 1, d-1
	for low <= high {
		if low == high {
			cnt := int(choose(d, low))
			if cnt > plan.remaining {
				break
			}
			plan.appendSize(d, low)
			plan.remaining -= cnt
			low++
			high--
			continue
		}
		cnt := 2 * int(choose(d, low))
		if cnt > plan.remaining {
			break
		}
		plan.appendSize(d, low)
		plan.appendSize(d, high)
		plan.remaining -= cnt
		low++
		high--
	}
	return plan
}

// appendSize enumerates every mask of the given size, assigning each its
// full (non-down-weighted) kernel weight since the size is being covered
// exhaustively rather than estimated by sampling.
func (p *enumerationPlan) appendSize(d, s int) {
	w := kernelWeight(d, s)
	combinations(d, s, func(indices []int) {
		idx := append([]int(nil), indices...)
		m := maskFromIndices(d, idx)
		m.Weight = w
		p.masks = append(p.masks, m)
	})
	p.enumeratedSizes[s] = true
}

// remainingSizes returns the interior sizes (1..d-1) not already covered
// by exhaustive enumeration, in ascending order. These are the sizes the
// Monte-Carlo sampler draws from.
func (p *enumerationPlan) remainingSizes(d int) []int {
	var sizes []int
	for s := 1; s < d; s++ {
		if !p.enumeratedSizes[s] {
			sizes = append(sizes, s)
		}
	}
	return sizes
}
