package wilkinson

import (
	"math"

	"github.com/basf/rormula/elemwise"
	"github.com/basf/rormula/matrix"
	"github.com/basf/rormula/value"
)

// liftCategorical converts a Cats-variant Value into its dummy-encoded
// Array, per §4.5's categorical lifting rule; any other variant passes
// through unchanged. The lifted Array replaces the operand before the
// concatenation/interaction/power operator itself runs.
func liftCategorical(v value.Value) value.Value {
	cats, ok := v.AsCats()
	if !ok {
		return v
	}
	m, err := CatToDummy(cats)
	if err != nil {
		return value.Err("wilkinson: " + err.Error())
	}
	return value.Array(m)
}

// Concat implements `+`: column concatenation, with categorical lifting
// applied to either operand first.
func Concat(a, b value.Value) value.Value {
	if res, ok := value.Propagate(a, b); ok {
		return res
	}
	a, b = liftCategorical(a), liftCategorical(b)
	if a.IsError() {
		return a
	}
	if b.IsError() {
		return b
	}
	aArr, aOk := a.AsArray()
	bArr, bOk := b.AsArray()
	if !aOk || !bOk {
		return value.Err("wilkinson: `+` requires matrix operands")
	}
	return safeConcat(aArr, bArr)
}

// Interact implements `:`: the multi-column componentwise product of §4.3,
// with categorical lifting applied to either operand first.
func Interact(a, b value.Value) value.Value {
	if res, ok := value.Propagate(a, b); ok {
		return res
	}
	a, b = liftCategorical(a), liftCategorical(b)
	if a.IsError() {
		return a
	}
	if b.IsError() {
		return b
	}
	aArr, aOk := a.AsArray()
	bArr, bOk := b.AsArray()
	if !aOk || !bOk {
		return value.Err("wilkinson: `:` requires matrix operands")
	}
	return safeComponentwise(aArr, bArr, func(x, y float64) float64 { return x * y })
}

// Power implements `^`: column-wise power of a matrix by a scalar exponent;
// any other operand combination is an Error.
func Power(a, b value.Value) value.Value {
	if res, ok := value.Propagate(a, b); ok {
		return res
	}
	a = liftCategorical(a)
	if a.IsError() {
		return a
	}
	exp, ok := b.AsScalar()
	if !ok {
		return value.Err("power only matrix×scalar")
	}
	arr, ok := a.AsArray()
	if !ok {
		return value.Err("power only matrix×scalar")
	}
	return value.Array(elemwise.OpScalar(arr, exp, func(x, y float64) float64 { return math.Pow(x, y) }))
}

func safeConcat(a, b *matrix.Dense) value.Value {
	var out *matrix.Dense
	err := matrix.Maybe(func() { out = matrix.ConcatenateCols(a, b) })
	if err != nil {
		return value.Err("wilkinson: " + err.Error())
	}
	return value.Array(out)
}

func safeComponentwise(a, b *matrix.Dense, op func(x, y float64) float64) value.Value {
	var out *matrix.Dense
	err := matrix.Maybe(func() { out = elemwise.Componentwise(a, b, op) })
	if err != nil {
		return value.Err("wilkinson: " + err.Error())
	}
	return value.Array(out)
}
