package wilkinson

import "github.com/basf/rormula/expr"

// CountOpTable builds the column-count shadow evaluator of §4.6. Every
// variable leaf is bound to 1 by the caller (this table never sees the
// actual bound data, only combines whatever counts it's given): `+` adds,
// `:` multiplies, and `^` is left-identity (the exponent carries no column
// count of its own). The result predicts the output column count so the
// capacity hint of §4.1 can be set before evaluation.
func CountOpTable() expr.OpTable[int] {
	return expr.OpTable[int]{
		Literal: func(string) int { return 0 },
		Binary: func(op string, l, r int) int {
			switch op {
			case "+":
				return l + r
			case ":":
				return l * r
			case "^":
				return l
			default:
				return 0
			}
		},
		Unary: func(string, int) int { return 0 },
		Call:  func(string, int) int { return 0 },
	}
}
