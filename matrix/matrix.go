// Package matrix implements a dense 2-D float64 matrix whose storage order
// (column-major or row-major) is a runtime property of the value rather than
// a type parameter, together with the operations the expression evaluator
// needs: column copy and mutation, column-major/row-major concatenation, and
// a capacity hint that Clone and ConcatenateCols reserve as extra capacity on
// the buffers they allocate. ConcatenateCols always allocates a new buffer;
// it does not grow an operand's buffer in place.
package matrix

// Order is the mapping from a logical (row, col) position to an offset in
// the flat backing buffer.
type Order int

const (
	// ColumnMajor stores data[row + n_rows*col].
	ColumnMajor Order = iota
	// RowMajor stores data[row*n_cols + col].
	RowMajor
)

// Dense is a dense 2-D float64 matrix backed by a single contiguous buffer.
type Dense struct {
	data     []float64
	nRows    int
	nCols    int
	order    Order
	capaHint int
}

// NewDense constructs a Dense from data, which must hold exactly nRows*nCols
// elements already arranged according to order; a nil data yields a zero
// matrix of that size. It panics with ErrDimensionMismatch when a non-nil
// data has any other length, mirroring the teacher's own NewDense.
func NewDense(nRows, nCols int, data []float64, order Order) *Dense {
	if data == nil {
		data = make([]float64, nRows*nCols)
	}
	if len(data) != nRows*nCols {
		panic(ErrDimensionMismatch)
	}
	return &Dense{data: data, nRows: nRows, nCols: nCols, order: order}
}

// FromRowMajorIter fills a ColumnMajor zero matrix from an iterator of
// values presented in row-major logical order (row 0 left to right, then row
// 1, ...). next must return
// ok=false once exhausted. Panics with ErrEmptyIterator if the iterator runs
// dry before nRows*nCols values are read, or ErrIteratorNotDrained if values
// remain after that.
func FromRowMajorIter(next func() (float64, bool), nRows, nCols int) *Dense {
	m := Zeros(nRows, nCols, ColumnMajor)
	for r := 0; r < nRows; r++ {
		for c := 0; c < nCols; c++ {
			v, ok := next()
			if !ok {
				panic(ErrEmptyIterator)
			}
			m.Set(r, c, v)
		}
	}
	if _, ok := next(); ok {
		panic(ErrIteratorNotDrained)
	}
	return m
}

// Zeros returns an nRows x nCols matrix of zeros in the given order.
func Zeros(nRows, nCols int, order Order) *Dense {
	return &Dense{data: make([]float64, nRows*nCols), nRows: nRows, nCols: nCols, order: order}
}

// Ones returns an nRows x nCols matrix of ones in the given order.
func Ones(nRows, nCols int, order Order) *Dense {
	data := make([]float64, nRows*nCols)
	for i := range data {
		data[i] = 1
	}
	return &Dense{data: data, nRows: nRows, nCols: nCols, order: order}
}

// Dims returns the matrix dimensions.
func (m *Dense) Dims() (rows, cols int) { return m.nRows, m.nCols }

// NumRows returns the row count.
func (m *Dense) NumRows() int { return m.nRows }

// NumCols returns the column count.
func (m *Dense) NumCols() int { return m.nCols }

// Order returns the storage order.
func (m *Dense) Order() Order { return m.order }

func (m *Dense) index(r, c int) int {
	if r < 0 || r >= m.nRows || c < 0 || c >= m.nCols {
		panic(ErrIndexOutOfRange)
	}
	switch m.order {
	case ColumnMajor:
		return r + m.nRows*c
	case RowMajor:
		return r*m.nCols + c
	default:
		panic(ErrIllegalOrder)
	}
}

// At returns the value at (r, c). It panics with ErrIndexOutOfRange if r or c
// are out of bounds.
func (m *Dense) At(r, c int) float64 {
	return m.data[m.index(r, c)]
}

// Set assigns v to the element at (r, c).
func (m *Dense) Set(r, c int, v float64) {
	m.data[m.index(r, c)] = v
}

// RawData returns the underlying buffer in storage order. Callers must treat
// it as read-only; mutate through Set/ColumnMutate/EltMutate instead.
func (m *Dense) RawData() []float64 { return m.data }

// SetCapacityHint records extra capacity to reserve on the backing buffer
// the next time it grows (via Clone or ConcatenateCols). It is advisory and
// never observed except during allocation sizing.
func (m *Dense) SetCapacityHint(extra int) {
	if extra > 0 {
		m.capaHint = extra
	}
}

// CapacityHint returns the currently recorded hint.
func (m *Dense) CapacityHint() int { return m.capaHint }

// Clone deep-copies the matrix, honoring any recorded capacity hint by
// over-allocating the backing buffer.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data), len(m.data)+m.capaHint)
	copy(data, m.data)
	return &Dense{data: data, nRows: m.nRows, nCols: m.nCols, order: m.order, capaHint: m.capaHint}
}

// ColumnCopy returns a new nRows x 1 matrix holding a copy of column c, in
// the same storage order as m.
func (m *Dense) ColumnCopy(c int) *Dense {
	out := Zeros(m.nRows, 1, m.order)
	for r := 0; r < m.nRows; r++ {
		out.Set(r, 0, m.At(r, c))
	}
	return out
}

// ColumnMutate replaces each M[r,c] with f(r, M[r,c]) for r in [0, nRows).
func (m *Dense) ColumnMutate(c int, f func(row int, v float64) float64) {
	for r := 0; r < m.nRows; r++ {
		m.Set(r, c, f(r, m.At(r, c)))
	}
}

// EltMutate replaces every element of the raw buffer with f(element); it is
// order-independent since it runs over the flat buffer directly.
func (m *Dense) EltMutate(f func(float64) float64) {
	for i, v := range m.data {
		m.data[i] = f(v)
	}
}

// Iter returns a copy of the backing buffer in storage-order sequence.
func (m *Dense) Iter() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Equal reports whether m and other have identical dimensions and every pair
// of corresponding logical elements differs by at most 1e-12.
func (m *Dense) Equal(other *Dense) bool {
	const tol = 1e-12
	if m.nRows != other.nRows || m.nCols != other.nCols {
		return false
	}
	for r := 0; r < m.nRows; r++ {
		for c := 0; c < m.nCols; c++ {
			d := m.At(r, c) - other.At(r, c)
			if d < 0 {
				d = -d
			}
			if d > tol {
				return false
			}
		}
	}
	return true
}
