package shap

import "context"

// SampleBuilder expands a stream of masks into the synthetic sample
// matrix S: each mask is realized as n background rows with the
// "present" columns overwritten to the query's value, and the
// predictor's output over those n rows is averaged into one row of yBar.
//
// Memory policy: S is never materialized for more than maxCellBudget
// cells at once, except that a chunk always holds at least one mask, so a
// single n*d block larger than the budget is still built whole. When
// len(masks)*n*d would exceed that budget, Build
// processes masks in contiguous chunks, calling the predictor once per
// chunk and accumulating yBar incrementally. This changes only
// floating-point accumulation order, never the logical result.
type SampleBuilder struct {
	xbg           *Matrix
	d, n          int
	maxCellBudget int
}

// NewSampleBuilder constructs a builder over the fixed background matrix
// xbg, chunking predictor calls so that no single call exceeds
// maxCellBudget cells unless one mask's n*d block alone does.
func NewSampleBuilder(xbg *Matrix, maxCellBudget int) *SampleBuilder {
	return &SampleBuilder{xbg: xbg, d: xbg.Cols, n: xbg.Rows, maxCellBudget: maxCellBudget}
}

// Build realizes every mask in masks against query x, predicts on each
// chunk, and returns yBar (len(masks) x k), the per-mask mean prediction.
func (b *SampleBuilder) Build(ctx context.Context, x []float64, masks []Mask, predict func(context.Context, *Matrix) (*Matrix, error)) (*Matrix, error) {
	if len(masks) == 0 {
		return &Matrix{Rows: 0, Cols: 0}, nil
	}

	chunkSize := b.chunkSize()
	var yBar *Matrix
	offset := 0
	for offset < len(masks) {
		end := offset + chunkSize
		if end > len(masks) {
			end = len(masks)
		}
		chunk := masks[offset:end]

		S := b.buildChunk(x, chunk)
		Y, err := predict(ctx, S)
		if err != nil {
			return nil, err
		}
		if yBar == nil {
			yBar = NewMatrix(len(masks), Y.Cols)
		}
		for t := range chunk {
			b.averageBlock(Y, t, yBar, offset+t)
		}
		offset = end
	}
	return yBar, nil
}

// chunkSize returns how many masks can be realized in one predictor call
// without S exceeding maxCellBudget cells, always at least 1 so chunking
// never stalls even when a single mask's block alone exceeds the budget.
func (b *SampleBuilder) chunkSize() int {
	perMask := b.n * b.d
	if perMask <= 0 {
		return 1
	}
	size := b.maxCellBudget / perMask
	if size < 1 {
		size = 1
	}
	return size
}

// buildChunk tiles the background n*len(chunk) times and overwrites the
// present-feature columns of each mask's block with the query's values:
// row t*n+i equals x_j where z_j=1 and X_bg[i,j] where z_j=0.
func (b *SampleBuilder) buildChunk(x []float64, chunk []Mask) *Matrix {
	S := TileRows(b.xbg, len(chunk))
	for t, m := range chunk {
		start, end := t*b.n, (t+1)*b.n
		for j, present := range m.Bits {
			if present {
				S.SetCol(start, end, j, x[j])
			}
		}
	}
	return S
}

// averageBlock collapses Y's rows [localIdx*n, (localIdx+1)*n) into
// yBar's row globalIdx, realizing E[f(x_S union X_Sbar)] as the mean
// over the background rows standing in for the absent features.
func (b *SampleBuilder) averageBlock(Y *Matrix, localIdx int, yBar *Matrix, globalIdx int) {
	start, end := localIdx*b.n, (localIdx+1)*b.n
	out := yBar.RowView(globalIdx)
	for c := 0; c < Y.Cols; c++ {
		var sum float64
		for i := start; i < end; i++ {
			sum += Y.At(i, c)
		}
		out[c] = sum / float64(b.n)
	}
}
