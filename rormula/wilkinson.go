package rormula

import (
	"fmt"

	"github.com/basf/rormula/expr"
	"github.com/basf/rormula/matrix"
	"github.com/basf/rormula/value"
	"github.com/basf/rormula/wilkinson"
)

// WilkinsonExpr is the (expr, name_expr, count_expr) bundle of §6, all three
// parsed from the same formula string under the Wilkinson grammar (§4.5).
type WilkinsonExpr struct {
	ast      *expr.AST
	nameAst  *expr.AST
	countAst *expr.AST
}

// ParseWilkinson parses formula under the Wilkinson grammar, producing the
// value, name, and column-count shadow trees described in §4.6. The string
// is parsed three times rather than the one AST being reused three ways, so
// each evaluator's variable/operator bookkeeping stays independent, matching
// how the three expression types are parsed separately upstream.
func ParseWilkinson(formula string) (*WilkinsonExpr, error) {
	ast, err := expr.Parse(formula, wilkinson.Grammar())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	nameAst, err := expr.Parse(formula, wilkinson.Grammar())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	countAst, err := expr.Parse(formula, wilkinson.Grammar())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	return &WilkinsonExpr{ast: ast, nameAst: nameAst, countAst: countAst}, nil
}

// VarNames returns the expression's variable names in first-occurrence order.
func (e *WilkinsonExpr) VarNames() []string { return e.ast.VarNames() }

// CatColumn names a categorical host column available for binding to a
// Wilkinson variable.
type CatColumn struct {
	Name   string
	Values []string
}

func findCatColumn(cols []CatColumn, name string) *CatColumn {
	for i := range cols {
		if cols[i].Name == name {
			return &cols[i]
		}
	}
	return nil
}

// EvalWilkinson binds each of e's variables, first against numericalData (by
// name in numericalCols, as an Array), then against catCols (as Cats),
// evaluates the value and count expressions, sets the capacity hint of §4.1
// on the first Array-bound variable in var-index order, and evaluates the
// name expression unless skipNames. The returned matrix has an intercept
// column of ones prepended; the returned names, if requested, are prepended
// with "Intercept". A formula whose result is a bare categorical column is
// dummy-encoded the same way a categorical operand is.
func EvalWilkinson(e *WilkinsonExpr, numericalData *matrix.Dense, numericalCols []string, catCols []CatColumn, skipNames bool) ([]string, *matrix.Dense, error) {
	varNames := e.ast.VarNames()
	values := make([]value.Value, len(varNames))
	nameValues := make([]value.NameValue, len(varNames))
	for i, vn := range varNames {
		if idx := indexOf(numericalCols, vn); idx >= 0 {
			values[i] = value.Array(bindColumn(numericalData, idx))
			if !skipNames {
				nameValues[i] = value.NameArray([]string{vn})
			}
			continue
		}
		if cc := findCatColumn(catCols, vn); cc != nil {
			values[i] = value.Cats(append([]string(nil), cc.Values...))
			if !skipNames {
				nv, _ := value.CatsFromValue(vn, values[i])
				nameValues[i] = nv
			}
			continue
		}
		return nil, nil, fmt.Errorf("%w: %s", ErrVariableNotFound, vn)
	}

	countValues := make([]int, len(varNames))
	for i := range countValues {
		countValues[i] = 1
	}
	nCols := expr.EvalVec(e.countAst, countValues, wilkinson.CountOpTable())

	for _, v := range values {
		if arr, ok := v.AsArray(); ok {
			arr.SetCapacityHint(nCols*arr.NumRows() - len(arr.RawData()))
			break
		}
	}

	result := expr.EvalVec(e.ast, values, wilkinson.ValueOpTable())
	if cats, ok := result.AsCats(); ok {
		dummy, err := wilkinson.CatToDummy(cats)
		if err != nil {
			return nil, nil, wrap(ErrEmptyCategorical, err.Error())
		}
		result = value.Array(dummy)
	}
	resultArr, err := valueToMatrix(result)
	if err != nil {
		return nil, nil, err
	}

	withIntercept := matrix.ConcatenateCols(matrix.Ones(resultArr.NumRows(), 1, resultArr.Order()), resultArr)

	if skipNames {
		return nil, withIntercept, nil
	}
	nameResult := expr.EvalVec(e.nameAst, nameValues, wilkinson.NameOpTable())
	if feature, cats, ok := nameResult.AsCats(); ok {
		unique := wilkinson.UniqueCats(cats)
		lifted := make([]string, 0, len(unique))
		for _, u := range unique[:len(unique)-1] {
			lifted = append(lifted, feature+"_"+u)
		}
		nameResult = value.NameArray(lifted)
	}
	names, ok := nameResult.AsArray()
	if !ok {
		msg, _ := nameResult.AsError()
		return nil, nil, translateError(msg)
	}
	out := make([]string, 0, len(names)+1)
	out = append(out, "Intercept")
	out = append(out, names...)
	return out, withIntercept, nil
}
