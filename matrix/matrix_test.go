package matrix

import "testing"

func allOrders() []Order { return []Order{ColumnMajor, RowMajor} }

// TestRoundTripLayout is testable property 1: reading back a value written
// via Set yields that value, under both storage orders.
func TestRoundTripLayout(t *testing.T) {
	for _, order := range allOrders() {
		m := Zeros(3, 4, order)
		for r := 0; r < 3; r++ {
			for c := 0; c < 4; c++ {
				v := float64(r*10 + c)
				m.Set(r, c, v)
				if got := m.At(r, c); got != v {
					t.Fatalf("order %v: At(%d,%d) = %v, want %v", order, r, c, got, v)
				}
			}
		}
	}
}

// TestOrderInvariantContent is testable property 2.
func TestOrderInvariantContent(t *testing.T) {
	vals := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	col := Zeros(3, 2, ColumnMajor)
	row := Zeros(3, 2, RowMajor)
	for r, rowVals := range vals {
		for c, v := range rowVals {
			col.Set(r, c, v)
			row.Set(r, c, v)
		}
	}
	for r := range vals {
		for c := range vals[r] {
			if col.At(r, c) != row.At(r, c) {
				t.Fatalf("at (%d,%d): colmajor %v != rowmajor %v", r, c, col.At(r, c), row.At(r, c))
			}
		}
	}
}

func TestFromRowMajorIter(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6}
	i := 0
	next := func() (float64, bool) {
		if i >= len(vals) {
			return 0, false
		}
		v := vals[i]
		i++
		return v, true
	}
	m := FromRowMajorIter(next, 2, 3)
	want := [][]float64{{1, 2, 3}, {4, 5, 6}}
	for r := range want {
		for c := range want[r] {
			if m.At(r, c) != want[r][c] {
				t.Errorf("At(%d,%d) = %v, want %v", r, c, m.At(r, c), want[r][c])
			}
		}
	}
}

func TestFromRowMajorIterDimensionMismatch(t *testing.T) {
	short := []float64{1, 2}
	i := 0
	next := func() (float64, bool) {
		if i >= len(short) {
			return 0, false
		}
		v := short[i]
		i++
		return v, true
	}
	err := Maybe(func() { FromRowMajorIter(next, 2, 2) })
	if err != ErrEmptyIterator {
		t.Fatalf("expected ErrEmptyIterator, got %v", err)
	}
}

func TestNewDenseDimensionMismatch(t *testing.T) {
	err := Maybe(func() { NewDense(2, 2, []float64{1, 2, 3}, ColumnMajor) })
	if err != ErrDimensionMismatch {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestColumnCopyAndMutate(t *testing.T) {
	for _, order := range allOrders() {
		m := reorder(FromRowMajorIter(sliceIter([]float64{1, 0, 1, 2, 1, 3, 1, 4}), 4, 2), order)
		m.ColumnMutate(1, func(row int, v float64) float64 { return float64(row) + v + 1 })
		want := []float64{1, 4, 6, 8}
		for r, w := range want {
			if m.At(r, 1) != w {
				t.Errorf("order %v: At(%d,1) = %v, want %v", order, r, m.At(r, 1), w)
			}
		}
		col := m.ColumnCopy(1)
		for r, w := range want {
			if col.At(r, 0) != w {
				t.Errorf("order %v: column copy At(%d,0) = %v, want %v", order, r, col.At(r, 0), w)
			}
		}
	}
}

func sliceIter(vals []float64) func() (float64, bool) {
	i := 0
	return func() (float64, bool) {
		if i >= len(vals) {
			return 0, false
		}
		v := vals[i]
		i++
		return v, true
	}
}

// TestConcatenateTotality is testable property 3.
func TestConcatenateTotality(t *testing.T) {
	for _, order := range allOrders() {
		a := reorder(FromRowMajorIter(sliceIter([]float64{1, 2, 3, 4}), 2, 2), order)
		b := reorder(FromRowMajorIter(sliceIter([]float64{5, 6}), 2, 1), order)

		res := ConcatenateCols(a, b)
		if _, cols := res.Dims(); cols != 3 {
			t.Fatalf("order %v: expected 3 cols, got %d", order, cols)
		}
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				if res.At(r, c) != a.At(r, c) {
					t.Errorf("order %v: At(%d,%d) = %v, want %v", order, r, c, res.At(r, c), a.At(r, c))
				}
			}
			if res.At(r, 2) != b.At(r, 0) {
				t.Errorf("order %v: At(%d,2) = %v, want %v", order, r, res.At(r, 2), b.At(r, 0))
			}
		}
	}
}

func reorder(m *Dense, order Order) *Dense {
	out := Zeros(m.nRows, m.nCols, order)
	for r := 0; r < m.nRows; r++ {
		for c := 0; c < m.nCols; c++ {
			out.Set(r, c, m.At(r, c))
		}
	}
	return out
}

func TestConcatenateColsShapeMismatch(t *testing.T) {
	a := Zeros(2, 2, ColumnMajor)
	b := Zeros(3, 2, ColumnMajor)
	err := Maybe(func() { ConcatenateCols(a, b) })
	if err != ErrShapeMismatch {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}

	c := Zeros(2, 2, RowMajor)
	err = Maybe(func() { ConcatenateCols(a, c) })
	if err != ErrShapeMismatch {
		t.Fatalf("expected ErrShapeMismatch for order mismatch, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	a := FromRowMajorIter(sliceIter([]float64{1, 2, 3, 4}), 2, 2)
	b := FromRowMajorIter(sliceIter([]float64{1, 2, 3, 4 + 1e-13}), 2, 2)
	if !a.Equal(b) {
		t.Errorf("expected equal within tolerance")
	}
	c := FromRowMajorIter(sliceIter([]float64{1, 2, 3, 4.1}), 2, 2)
	if a.Equal(c) {
		t.Errorf("expected not equal")
	}
}

func TestCapacityHintSurvivesConcat(t *testing.T) {
	a := Zeros(2, 1, ColumnMajor)
	a.SetCapacityHint(10)
	b := Zeros(2, 1, ColumnMajor)
	res := ConcatenateCols(a, b)
	if res.CapacityHint() != 10 {
		t.Fatalf("expected capacity hint to propagate, got %d", res.CapacityHint())
	}
	if cap(res.data) < len(res.data)+10 {
		t.Fatalf("expected backing array to have reserved hint capacity")
	}
}
