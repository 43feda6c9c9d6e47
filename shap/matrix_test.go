package shap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMatrixFromRows_CopiesValues verifies the constructed matrix
// holds the supplied row values at the expected offsets.
func TestNewMatrixFromRows_CopiesValues(t *testing.T) {
	m, err := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows)
	assert.Equal(t, 2, m.Cols)
	assert.Equal(t, []float64{3, 4}, m.RowView(1))
}

// TestNewMatrixFromRows_RejectsRaggedRows verifies rows of unequal length
// are rejected rather than silently truncated or zero-padded.
func TestNewMatrixFromRows_RejectsRaggedRows(t *testing.T) {
	_, err := NewMatrixFromRows([][]float64{{1, 2}, {3}})
	assert.Error(t, err)
}

// TestTileRows_RepeatsBackgroundExactly verifies invariant 8's precursor:
// before any mask is applied, every n-row block of the tiled matrix
// equals the background matrix exactly.
func TestTileRows_RepeatsBackgroundExactly(t *testing.T) {
	bg, err := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	tiled := TileRows(bg, 3)

	assert.Equal(t, 6, tiled.Rows)
	for block := 0; block < 3; block++ {
		assert.Equal(t, bg.Data, tiled.RowRange(block*2, (block+1)*2))
	}
}

// TestMatrix_SetCol_OnlyTouchesSpecifiedRange verifies SetCol leaves rows
// outside [start, end) untouched.
func TestMatrix_SetCol_OnlyTouchesSpecifiedRange(t *testing.T) {
	m := NewMatrix(4, 2)
	m.SetCol(1, 3, 0, 9.0)
	want := []float64{0, 0, 9, 0, 9, 0, 0, 0}
	assert.Equal(t, want, m.Data)
}
