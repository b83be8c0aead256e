// Package arithmetic implements the arithmetic formula language of §4.4: the
// five binary operators (scalar-lifted power, division, multiplication,
// subtraction/negation, addition), the named unary transcendental functions,
// the comparison operators that produce row-index sets, and the restrict
// operator that filters an Array by a RowInds set.
package arithmetic

import "github.com/basf/rormula/expr"

// Grammar is the arithmetic operator/function vocabulary, exposed so callers
// need not import the expr package directly just to call expr.Parse.
func Grammar() expr.Grammar { return expr.ArithmeticGrammar() }
