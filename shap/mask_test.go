package shap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCombinations_CountAndOrder verifies:
// GIVEN d=4, s=2
// WHEN combinations enumerates every subset
// THEN it visits all C(4,2)=6 subsets in lexicographic order.
func TestCombinations_CountAndOrder(t *testing.T) {
	var got [][]int
	combinations(4, 2, func(indices []int) {
		got = append(got, append([]int(nil), indices...))
	})
	want := [][]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}
	assert.Equal(t, want, got)
}

// TestCombinations_SizeZero verifies the empty subset is emitted exactly
// once for s=0.
func TestCombinations_SizeZero(t *testing.T) {
	var got [][]int
	combinations(5, 0, func(indices []int) {
		got = append(got, append([]int(nil), indices...))
	})
	assert.Len(t, got, 1)
	assert.Empty(t, got[0])
}

// TestMask_Complement verifies z and its complement are bitwise opposite
// and their sizes sum to d.
func TestMask_Complement(t *testing.T) {
	m := maskFromIndices(5, []int{0, 2, 4})
	c := m.complement()
	assert.Equal(t, []bool{false, true, false, true, false}, c.Bits)
	assert.Equal(t, 2, c.Size)
	assert.Equal(t, len(m.Bits), m.Size+c.Size)
}

// TestMaskFromIndices_SetsExpectedBits verifies the constructed mask has
// bits set exactly at the given indices and nowhere else.
func TestMaskFromIndices_SetsExpectedBits(t *testing.T) {
	m := maskFromIndices(4, []int{1, 3})
	assert.Equal(t, []bool{false, true, false, true}, m.Bits)
	assert.Equal(t, 2, m.Size)
}
