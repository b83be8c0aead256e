// Package elemwise implements the pairwise-interaction algorithm shared by
// the arithmetic `*`/`/`/`+`/`-` operators (applied column-for-column when
// both operands are matrices) and the Wilkinson `:` operator: given A with p
// columns and B with q columns of equal row count, it produces a matrix with
// p*q columns where column j*p+i is op applied column-wise to A[:,i] and
// B[:,j].
package elemwise

import "github.com/basf/rormula/matrix"

// Componentwise computes the p*q-column pairwise interaction of a and b
// under op, following the memory-disciplined algorithm of the spec: for
// every column of b except the last, a fresh copy of each of a's original
// columns is folded with that column of b and appended; for the last column
// of b, a's own original columns are mutated in place. A final rotation
// restores the documented column order: of the flat buffer for ColumnMajor,
// of each row for RowMajor. It panics with matrix.ErrShapeMismatch if the
// row counts differ.
func Componentwise(a, b *matrix.Dense, op func(x, y float64) float64) *matrix.Dense {
	if a.NumRows() != b.NumRows() {
		panic(matrix.ErrShapeMismatch)
	}
	nInitialColsA := a.NumCols()
	_, qCols := b.Dims()

	for bCol := 0; bCol < qCols; bCol++ {
		foldWithBCol := func(row int, x float64) float64 {
			return op(x, b.At(row, bCol))
		}
		if bCol == qCols-1 {
			for aCol := 0; aCol < nInitialColsA; aCol++ {
				a.ColumnMutate(aCol, foldWithBCol)
			}
		} else {
			for aCol := 0; aCol < nInitialColsA; aCol++ {
				newCol := a.ColumnCopy(aCol)
				newCol.ColumnMutate(0, foldWithBCol)
				a = matrix.ConcatenateCols(a, newCol)
			}
		}
	}

	if a.Order() == matrix.ColumnMajor {
		nElts := len(a.RawData())
		a.RotateRightInPlace(nElts - nInitialColsA*a.NumRows())
	} else {
		nRows, nCols := a.Dims()
		shift := nCols - nInitialColsA
		row := make([]float64, nCols)
		for r := 0; r < nRows; r++ {
			for c := 0; c < nCols; c++ {
				row[(c+shift)%nCols] = a.At(r, c)
			}
			for c := 0; c < nCols; c++ {
				a.Set(r, c, row[c])
			}
		}
	}
	return a
}

// OpScalar applies op(elt, scalar) to every element of arr's buffer
// (order-irrelevant) and returns arr, mutated in place.
func OpScalar(arr *matrix.Dense, scalar float64, op func(x, y float64) float64) *matrix.Dense {
	arr.EltMutate(func(x float64) float64 { return op(x, scalar) })
	return arr
}

// ScalarOp applies op(scalar, elt) to every element of arr's buffer and
// returns arr, mutated in place. Used for the scalar-on-the-left case (e.g.
// 1 - x), where the operand order to op matters.
func ScalarOp(scalar float64, arr *matrix.Dense, op func(x, y float64) float64) *matrix.Dense {
	arr.EltMutate(func(x float64) float64 { return op(scalar, x) })
	return arr
}
