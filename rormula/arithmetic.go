package rormula

import (
	"fmt"

	"github.com/basf/rormula/arithmetic"
	"github.com/basf/rormula/expr"
	"github.com/basf/rormula/matrix"
	"github.com/basf/rormula/value"
)

// ArithmeticExpr is a parsed arithmetic formula (§4.4), reusable across
// evaluations against different host data.
type ArithmeticExpr struct {
	ast *expr.AST
}

// ParseArithmetic parses formula under the arithmetic grammar.
func ParseArithmetic(formula string) (*ArithmeticExpr, error) {
	ast, err := expr.Parse(formula, arithmetic.Grammar())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	return &ArithmeticExpr{ast: ast}, nil
}

// VarNames returns the expression's variable names in first-occurrence order.
func (e *ArithmeticExpr) VarNames() []string { return e.ast.VarNames() }

// HasRowChangeOp reports whether the formula uses the row-cardinality
// changing restrict operator `|` anywhere.
func (e *ArithmeticExpr) HasRowChangeOp() bool { return arithmetic.HasRowChangeOp(e.ast) }

// Unparse renders the parsed expression back to a formula string.
func (e *ArithmeticExpr) Unparse() string { return expr.Unparse(e.ast) }

// EvalArithmetic binds each of e's variables to the numericalData column
// selected by matching name in numericalCols, evaluates, and converts the
// result to a 2D f64 matrix per §6.
func EvalArithmetic(e *ArithmeticExpr, numericalData *matrix.Dense, numericalCols []string) (*matrix.Dense, error) {
	varNames := e.ast.VarNames()
	values := make([]value.Value, len(varNames))
	for i, name := range varNames {
		idx := indexOf(numericalCols, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrVariableNotFound, name)
		}
		values[i] = value.Array(bindColumn(numericalData, idx))
	}
	result := expr.EvalVec(e.ast, values, arithmetic.ValueOpTable())
	return valueToMatrix(result)
}
