package matrix

// ConcatenateCols returns a new matrix with a's columns followed by b's,
// requiring equal row counts and equal storage order. It panics with
// ErrShapeMismatch otherwise.
//
// For ColumnMajor matrices the two buffers are simply appended. For RowMajor
// matrices the rows must be interleaved: the buffer is grown to
// nRows*(a.nCols+b.nCols), existing rows are shifted back-to-front to avoid
// overlap, and b's rows are written into the newly opened columns.
func ConcatenateCols(a, b *Dense) *Dense {
	if a.nRows != b.nRows {
		panic(ErrShapeMismatch)
	}
	if a.order != b.order {
		panic(ErrShapeMismatch)
	}
	switch a.order {
	case ColumnMajor:
		return concatColMajor(a, b)
	case RowMajor:
		return concatRowMajor(a, b)
	default:
		panic(ErrIllegalOrder)
	}
}

func concatColMajor(a, b *Dense) *Dense {
	nCols := a.nCols + b.nCols
	data := make([]float64, 0, len(a.data)+len(b.data)+a.capaHint)
	data = append(data, a.data...)
	data = append(data, b.data...)
	return &Dense{data: data, nRows: a.nRows, nCols: nCols, order: ColumnMajor, capaHint: a.capaHint}
}

func concatRowMajor(a, b *Dense) *Dense {
	nRows := a.nRows
	oldCols := a.nCols
	newCols := oldCols + b.nCols
	data := make([]float64, nRows*newCols, nRows*newCols+a.capaHint)
	copy(data, a.data[:oldCols])
	for row := nRows - 1; row >= 1; row-- {
		src := row * oldCols
		dest := row * newCols
		copy(data[dest:dest+oldCols], a.data[src:src+oldCols])
	}
	out := &Dense{data: data, nRows: nRows, nCols: newCols, order: RowMajor, capaHint: a.capaHint}
	for row := 0; row < nRows; row++ {
		for col := 0; col < b.nCols; col++ {
			out.Set(row, oldCols+col, b.At(row, col))
		}
	}
	return out
}

// RotateRightInPlace rotates the flat backing buffer right by k slots,
// wrapping around. It is used by the componentwise engine (see package
// elemwise) to move the in-place-mutated original columns from the front of
// the buffer to the back, after the last operand column has been folded in.
func (m *Dense) RotateRightInPlace(k int) {
	n := len(m.data)
	if n == 0 {
		return
	}
	k = ((k % n) + n) % n
	if k == 0 {
		return
	}
	reverse(m.data, 0, n-1)
	reverse(m.data, 0, k-1)
	reverse(m.data, k, n-1)
}

func reverse(s []float64, i, j int) {
	for i < j {
		s[i], s[j] = s[j], s[i]
		i++
		j--
	}
}
