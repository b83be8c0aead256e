// Package value implements the tagged value algebra the arithmetic and
// Wilkinson evaluators are built on: a matrix, a scalar, a set of row
// indices, a categorical column, or a propagating error.
package value

import "github.com/basf/rormula/matrix"

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindArray holds a matrix.
	KindArray Kind = iota
	// KindScalar holds a single float64.
	KindScalar
	// KindRowInds holds a (possibly empty, possibly unsorted, possibly
	// duplicated) sequence of row indices.
	KindRowInds
	// KindCats holds one string per row.
	KindCats
	// KindError holds a propagating error message.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "Array"
	case KindScalar:
		return "Scalar"
	case KindRowInds:
		return "RowInds"
	case KindCats:
		return "Cats"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Value is the tagged variant {Array, Scalar, RowInds, Cats, Error}. Default()
// returns Error("default"), matching the spec's default-construction rule:
// take-by-replacement idioms (e.g. mem.take in the Rust original) never leave
// an invalid value. The Go zero value Value{} is not that value: its kind is
// KindArray with a nil matrix.
type Value struct {
	kind    Kind
	array   *matrix.Dense
	scalar  float64
	rowInds []int
	cats    []string
	errMsg  string
}

// Array constructs an Array value.
func Array(m *matrix.Dense) Value { return Value{kind: KindArray, array: m} }

// Scalar constructs a Scalar value.
func Scalar(s float64) Value { return Value{kind: KindScalar, scalar: s} }

// RowInds constructs a RowInds value.
func RowInds(idx []int) Value { return Value{kind: KindRowInds, rowInds: idx} }

// Cats constructs a Cats value.
func Cats(c []string) Value { return Value{kind: KindCats, cats: c} }

// Err constructs an Error value.
func Err(msg string) Value { return Value{kind: KindError, errMsg: msg} }

// Default returns the default Value, Error("default").
func Default() Value { return Err("default") }

func (v Value) Kind() Kind { return v.kind }

// AsArray returns the held matrix and true, or (nil, false) if v is not an Array.
func (v Value) AsArray() (*matrix.Dense, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.array, true
}

// AsScalar returns the held scalar and true, or (0, false) if v is not a Scalar.
func (v Value) AsScalar() (float64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	return v.scalar, true
}

// AsRowInds returns the held indices and true, or (nil, false) if v is not RowInds.
func (v Value) AsRowInds() ([]int, bool) {
	if v.kind != KindRowInds {
		return nil, false
	}
	return v.rowInds, true
}

// AsCats returns the held categories and true, or (nil, false) if v is not Cats.
func (v Value) AsCats() ([]string, bool) {
	if v.kind != KindCats {
		return nil, false
	}
	return v.cats, true
}

// AsError returns the held message and true, or ("", false) if v is not an Error.
func (v Value) AsError() (string, bool) {
	if v.kind != KindError {
		return "", false
	}
	return v.errMsg, true
}

// IsError reports whether v holds the Error variant.
func (v Value) IsError() bool { return v.kind == KindError }

// Propagate implements the Error propagation law: if either a or b is an
// Error, the left operand's error wins; otherwise ok is false and neither
// input was an error. Binary ops should call this first and return
// immediately when ok is true.
func Propagate(a, b Value) (result Value, ok bool) {
	if a.kind == KindError {
		return a, true
	}
	if b.kind == KindError {
		return b, true
	}
	return Value{}, false
}

// Equal reports deep equality between two Values, using the matrix package's
// 1e-12 tolerance for Array comparisons and exact comparison elsewhere. It
// exists primarily so tests can compare Values without reaching into
// unexported fields.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindArray:
		return a.array.Equal(b.array)
	case KindScalar:
		return a.scalar == b.scalar
	case KindRowInds:
		if len(a.rowInds) != len(b.rowInds) {
			return false
		}
		for i := range a.rowInds {
			if a.rowInds[i] != b.rowInds[i] {
				return false
			}
		}
		return true
	case KindCats:
		if len(a.cats) != len(b.cats) {
			return false
		}
		for i := range a.cats {
			if a.cats[i] != b.cats[i] {
				return false
			}
		}
		return true
	case KindError:
		return a.errMsg == b.errMsg
	default:
		return false
	}
}
