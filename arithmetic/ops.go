package arithmetic

import (
	"github.com/basf/rormula/elemwise"
	"github.com/basf/rormula/matrix"
	"github.com/basf/rormula/value"
)

// elementwise is the shared dispatcher behind Add/Sub/Mul/Div: it applies op
// to the operands following the §4.3 scalar-vs-array fused paths, after
// checking the Error-propagation law. Any operand combination other than
// {Array,Scalar} x {Array,Scalar} is a type mismatch.
func elementwise(a, b value.Value, op func(x, y float64) float64) value.Value {
	if res, ok := value.Propagate(a, b); ok {
		return res
	}
	if aArr, ok := a.AsArray(); ok {
		if bArr, ok := b.AsArray(); ok {
			return safeComponentwise(aArr, bArr, op)
		}
		if bScalar, ok := b.AsScalar(); ok {
			return value.Array(elemwise.OpScalar(aArr, bScalar, op))
		}
		return value.Err("arithmetic: type mismatch in binary operator")
	}
	if aScalar, ok := a.AsScalar(); ok {
		if bArr, ok := b.AsArray(); ok {
			return value.Array(elemwise.ScalarOp(aScalar, bArr, op))
		}
		if bScalar, ok := b.AsScalar(); ok {
			return value.Scalar(op(aScalar, bScalar))
		}
	}
	return value.Err("arithmetic: type mismatch in binary operator")
}

// safeComponentwise runs elemwise.Componentwise and turns its
// matrix.ErrShapeMismatch panic into an Error value rather than letting it
// escape as a Go panic, matching the monadic-error discipline of §4.2.
func safeComponentwise(a, b *matrix.Dense, op func(x, y float64) float64) value.Value {
	var out *matrix.Dense
	err := matrix.Maybe(func() { out = elemwise.Componentwise(a, b, op) })
	if err != nil {
		return value.Err("arithmetic: " + err.Error())
	}
	return value.Array(out)
}

// Add implements `+`.
func Add(a, b value.Value) value.Value {
	return elementwise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub implements binary `-`.
func Sub(a, b value.Value) value.Value {
	return elementwise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul implements `*`.
func Mul(a, b value.Value) value.Value {
	return elementwise(a, b, func(x, y float64) float64 { return x * y })
}

// Div implements `/`.
func Div(a, b value.Value) value.Value {
	return elementwise(a, b, func(x, y float64) float64 { return x / y })
}

// Pow implements `^`: the scalar-lifted power of §4.3. It rejects any right
// operand that is not a Scalar.
func Pow(a, b value.Value) value.Value {
	if res, ok := value.Propagate(a, b); ok {
		return res
	}
	exp, ok := b.AsScalar()
	if !ok {
		return value.Err("power only matrix×scalar or scalar×scalar")
	}
	if aArr, ok := a.AsArray(); ok {
		return value.Array(elemwise.OpScalar(aArr, exp, powOp))
	}
	if aScalar, ok := a.AsScalar(); ok {
		return value.Scalar(powOp(aScalar, exp))
	}
	return value.Err("power only matrix×scalar or scalar×scalar")
}

// Negate implements unary prefix `-`: it mutates each element of an Array,
// or negates a Scalar, in place per the spec's buffer-mutation discipline.
func Negate(a value.Value) value.Value {
	if msg, ok := a.AsError(); ok {
		return value.Err(msg)
	}
	if arr, ok := a.AsArray(); ok {
		return value.Array(elemwise.OpScalar(arr, 0, func(x, _ float64) float64 { return -x }))
	}
	if s, ok := a.AsScalar(); ok {
		return value.Scalar(-s)
	}
	return value.Err("arithmetic: type mismatch in unary operator -")
}
