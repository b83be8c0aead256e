package elemwise

import (
	"testing"

	"github.com/basf/rormula/matrix"
)

func colVec(vals []float64, order matrix.Order) *matrix.Dense {
	m := matrix.Zeros(len(vals), 1, order)
	for i, v := range vals {
		m.Set(i, 0, v)
	}
	return m
}

// TestComponentwiseShapeLaw is testable property 4.
func TestComponentwiseShapeLaw(t *testing.T) {
	for _, order := range []matrix.Order{matrix.ColumnMajor, matrix.RowMajor} {
		a := matrix.Zeros(3, 2, order)
		b := matrix.Zeros(3, 3, order)
		for r := 0; r < 3; r++ {
			for c := 0; c < 2; c++ {
				a.Set(r, c, float64(r+c))
			}
			for c := 0; c < 3; c++ {
				b.Set(r, c, float64(r*c+1))
			}
		}
		aCopy := matrix.Zeros(3, 2, order)
		for r := 0; r < 3; r++ {
			for c := 0; c < 2; c++ {
				aCopy.Set(r, c, a.At(r, c))
			}
		}

		res := Componentwise(a, b, func(x, y float64) float64 { return x + y })
		_, cols := res.Dims()
		if cols != 6 {
			t.Fatalf("order %v: expected 6 cols, got %d", order, cols)
		}
		p := 2
		for j := 0; j < 3; j++ {
			for i := 0; i < p; i++ {
				col := j*p + i
				for r := 0; r < 3; r++ {
					want := aCopy.At(r, i) + b.At(r, j)
					if got := res.At(r, col); got != want {
						t.Errorf("order %v: col %d (i=%d,j=%d) row %d = %v, want %v", order, col, i, j, r, got, want)
					}
				}
			}
		}
	}
}

func TestComponentwiseShapeMismatch(t *testing.T) {
	a := matrix.Zeros(2, 1, matrix.ColumnMajor)
	b := matrix.Zeros(3, 1, matrix.ColumnMajor)
	err := matrix.Maybe(func() { Componentwise(a, b, func(x, y float64) float64 { return x + y }) })
	if err != matrix.ErrShapeMismatch {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

// TestComponentwiseMultiply is end-to-end scenario 6.
func TestComponentwiseMultiply(t *testing.T) {
	for _, order := range []matrix.Order{matrix.ColumnMajor, matrix.RowMajor} {
		a := colVec([]float64{0, 1, 2, 3, 4, 5}, order)
		b := colVec([]float64{2, 1, 3, 5, 10, 9}, order)
		res := Componentwise(a, b, func(x, y float64) float64 { return x * y })
		want := []float64{0, 1, 6, 15, 40, 45}
		for i, w := range want {
			if got := res.At(i, 0); got != w {
				t.Errorf("order %v: row %d = %v, want %v", order, i, got, w)
			}
		}
	}
}

func TestOpScalar(t *testing.T) {
	a := colVec([]float64{1, 2, 3}, matrix.ColumnMajor)
	res := OpScalar(a, 10, func(x, y float64) float64 { return x + y })
	want := []float64{11, 12, 13}
	for i, w := range want {
		if res.At(i, 0) != w {
			t.Errorf("row %d = %v, want %v", i, res.At(i, 0), w)
		}
	}
}

func TestScalarOp(t *testing.T) {
	a := colVec([]float64{1, 2, 3}, matrix.ColumnMajor)
	res := ScalarOp(10, a, func(x, y float64) float64 { return x - y })
	want := []float64{9, 8, 7}
	for i, w := range want {
		if res.At(i, 0) != w {
			t.Errorf("row %d = %v, want %v", i, res.At(i, 0), w)
		}
	}
}
