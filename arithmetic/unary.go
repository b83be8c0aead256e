package arithmetic

import (
	"math"

	"github.com/basf/rormula/elemwise"
	"github.com/basf/rormula/value"
)

func powOp(x, y float64) float64 { return math.Pow(x, y) }

// functions is the named unary transcendental vocabulary of §4.4. "log" is a
// synonym for natural log, matching ln.
var functions = map[string]func(float64) float64{
	"abs":   math.Abs,
	"sqrt":  math.Sqrt,
	"round": math.Round,
	"floor": math.Floor,
	"ceil":  math.Ceil,
	"trunc": math.Trunc,
	"fract": func(x float64) float64 { _, frac := math.Modf(x); return frac },
	"sign":  func(x float64) float64 { return math.Copysign(1, x) },
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log,
	"log2":  math.Log2,
	"log10": math.Log10,
}

// ApplyFunc dispatches a named unary function (one of the functions table's
// keys) onto a Value: it operates element-wise on an Array, mutating the
// buffer in place, passes through on a Scalar, and errors on anything else
// (including an unrecognized function name).
func ApplyFunc(fn string, a value.Value) value.Value {
	if msg, ok := a.AsError(); ok {
		return value.Err(msg)
	}
	f, ok := functions[fn]
	if !ok {
		return value.Err("arithmetic: unknown function " + fn)
	}
	if arr, ok := a.AsArray(); ok {
		return value.Array(elemwise.OpScalar(arr, 0, func(x, _ float64) float64 { return f(x) }))
	}
	if s, ok := a.AsScalar(); ok {
		return value.Scalar(f(s))
	}
	return value.Err("arithmetic: type mismatch applying " + fn)
}
