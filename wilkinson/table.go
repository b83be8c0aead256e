package wilkinson

import (
	"strconv"

	"github.com/basf/rormula/expr"
	"github.com/basf/rormula/value"
)

// ValueOpTable builds the expr.OpTable that drives EvalVec over the
// Wilkinson Value algebra: literals parse as Scalar, `+`/`:`/`^` dispatch to
// Concat/Interact/Power, and each variable reference gets an independent
// clone of its bound Array so reusing one variable twice in a formula (e.g.
// "n+o+n") can't have one reference's in-place mutation corrupt another.
func ValueOpTable() expr.OpTable[value.Value] {
	return expr.OpTable[value.Value]{
		Literal: func(raw string) value.Value {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return value.Err("wilkinson: invalid numeric literal " + raw)
			}
			return value.Scalar(f)
		},
		Binary: func(op string, l, r value.Value) value.Value {
			switch op {
			case "+":
				return Concat(l, r)
			case ":":
				return Interact(l, r)
			case "^":
				return Power(l, r)
			default:
				return value.Err("wilkinson: unknown operator " + op)
			}
		},
		Unary: func(op string, x value.Value) value.Value {
			return value.Err("wilkinson: unknown unary operator " + op)
		},
		Call: func(fn string, x value.Value) value.Value {
			return value.Err("wilkinson: unknown function " + fn)
		},
		Variable: cloneValue,
	}
}

func cloneValue(v value.Value) value.Value {
	if arr, ok := v.AsArray(); ok {
		return value.Array(arr.Clone())
	}
	return v
}

// NameOpTable builds the expr.OpTable that drives EvalVec over the
// NameValue algebra of §4.6: literals bind as a scalar string (used as the
// right operand of `^`), re-serialized through strconv.FormatFloat so that
// "n^2" and "n^2.0" produce the same name, and `+`/`:`/`^` dispatch to
// NamePlus/NameColon/NamePower.
func NameOpTable() expr.OpTable[value.NameValue] {
	return expr.OpTable[value.NameValue]{
		Literal: func(raw string) value.NameValue {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return value.NameErr("wilkinson: invalid numeric literal " + raw)
			}
			return value.NameScalar(strconv.FormatFloat(f, 'g', -1, 64))
		},
		Binary: func(op string, l, r value.NameValue) value.NameValue {
			switch op {
			case "+":
				return NamePlus(l, r)
			case ":":
				return NameColon(l, r)
			case "^":
				return NamePower(l, r)
			default:
				return value.NameErr("wilkinson: unknown operator " + op)
			}
		},
		Unary: func(op string, x value.NameValue) value.NameValue {
			return value.NameErr("wilkinson: unknown unary operator " + op)
		},
		Call: func(fn string, x value.NameValue) value.NameValue {
			return value.NameErr("wilkinson: unknown function " + fn)
		},
	}
}
