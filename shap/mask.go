package shap

// Mask is a binary coalition vector: Bits[j] is true when feature j is
// "present" (takes its value from the query point) and false when it is
// "absent" (takes its value from a background row). Size is the number of
// present features; Weight is the SHAP kernel weight assigned to this
// coalition by the enumerator or sampler that produced it.
type Mask struct {
	Bits   []bool
	Size   int
	Weight float64
}

// newMask allocates a Mask of width d with all features absent.
func newMask(d int) Mask {
	return Mask{Bits: make([]bool, d)}
}

// complement returns the bitwise complement of m, used to schedule every
// coalition alongside its paired complement.
func (m Mask) complement() Mask {
	out := Mask{Bits: make([]bool, len(m.Bits)), Size: len(m.Bits) - m.Size}
	for i, b := range m.Bits {
		out.Bits[i] = !b
	}
	return out
}

// combinations generates, in lexicographic order, every subset of size s
// drawn from {0, ..., d-1}, invoking emit once per subset with the sorted
// index slice. emit must not retain the slice across calls.
func combinations(d, s int, emit func(indices []int)) {
	if s < 0 || s > d {
		return
	}
	if s == 0 {
		emit(nil)
		return
	}
	idx := make([]int, s)
	for i := range idx {
		idx[i] = i
	}
	for {
		emit(idx)
		// Find the rightmost index that can be incremented.
		i := s - 1
		for i >= 0 && idx[i] == d-s+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < s; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// maskFromIndices builds a width-d Mask with the given feature indices
// present.
func maskFromIndices(d int, indices []int) Mask {
	m := newMask(d)
	for _, j := range indices {
		m.Bits[j] = true
	}
	m.Size = len(indices)
	return m
}
