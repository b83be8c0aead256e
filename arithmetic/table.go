package arithmetic

import (
	"strconv"

	"github.com/basf/rormula/expr"
	"github.com/basf/rormula/value"
)

// ValueOpTable builds the expr.OpTable that drives EvalVec over the
// arithmetic Value algebra: literals parse as Scalar, binary/unary operators
// dispatch to this package's Add/Sub/.../Restrict/Negate/ApplyFunc, and each
// variable reference is handed an independent clone of its bound Array so
// that reusing one variable twice in a formula can't have an earlier
// in-place mutation corrupt a later reference to the same variable.
func ValueOpTable() expr.OpTable[value.Value] {
	return expr.OpTable[value.Value]{
		Literal: func(raw string) value.Value {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return value.Err("arithmetic: invalid numeric literal " + raw)
			}
			return value.Scalar(f)
		},
		Binary: func(op string, l, r value.Value) value.Value {
			switch op {
			case "+":
				return Add(l, r)
			case "-":
				return Sub(l, r)
			case "*":
				return Mul(l, r)
			case "/":
				return Div(l, r)
			case "^":
				return Pow(l, r)
			case "==":
				return Equal(l, r)
			case "<":
				return Lt(l, r)
			case "<=":
				return Le(l, r)
			case ">":
				return Gt(l, r)
			case ">=":
				return Ge(l, r)
			case "|":
				return Restrict(l, r)
			default:
				return value.Err("arithmetic: unknown operator " + op)
			}
		},
		Unary: func(op string, x value.Value) value.Value {
			if op == "-" {
				return Negate(x)
			}
			return value.Err("arithmetic: unknown unary operator " + op)
		},
		Call:     ApplyFunc,
		Variable: cloneValue,
	}
}

func cloneValue(v value.Value) value.Value {
	if arr, ok := v.AsArray(); ok {
		return value.Array(arr.Clone())
	}
	return v
}
