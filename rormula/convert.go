package rormula

import (
	"github.com/basf/rormula/matrix"
	"github.com/basf/rormula/value"
)

func indexOf(names []string, target string) int {
	for i, n := range names {
		if n == target {
			return i
		}
	}
	return -1
}

// bindColumn extracts column idx of data as its own n_rows x 1 matrix, in
// data's storage order, since each formula variable is bound to an
// independent single-column Array (§6).
func bindColumn(data *matrix.Dense, idx int) *matrix.Dense {
	col := matrix.Zeros(data.NumRows(), 1, data.Order())
	for r := 0; r < data.NumRows(); r++ {
		col.Set(r, 0, data.At(r, idx))
	}
	return col
}

// valueToMatrix converts an evaluator result to the 2D f64 matrix §6
// describes: Array as-is, RowInds as a len x 1 matrix of indices-as-float64,
// Scalar as a 1x1 matrix. Cats and Error have no matrix representation.
func valueToMatrix(v value.Value) (*matrix.Dense, error) {
	if msg, ok := v.AsError(); ok {
		return nil, translateError(msg)
	}
	if arr, ok := v.AsArray(); ok {
		return arr, nil
	}
	if inds, ok := v.AsRowInds(); ok {
		out := matrix.Zeros(len(inds), 1, matrix.ColumnMajor)
		for i, idx := range inds {
			out.Set(i, 0, float64(idx))
		}
		return out, nil
	}
	if s, ok := v.AsScalar(); ok {
		out := matrix.Zeros(1, 1, matrix.ColumnMajor)
		out.Set(0, 0, s)
		return out, nil
	}
	return nil, wrap(ErrTypeMismatch, "result is categorical, which has no matrix representation")
}
