package arithmetic

import (
	"github.com/basf/rormula/expr"
	"github.com/basf/rormula/matrix"
	"github.com/basf/rormula/value"
)

// Restrict implements the `|` operator of §4.4: Array(A) | RowInds(R) gathers
// A's single column at the positions named by R into a new Array; Cats(c) |
// RowInds(R) and RowInds(s) | RowInds(R) gather similarly. An index in R at
// or beyond the source's length is IndexOutOfBounds. An empty R is the
// degenerate case: it yields a 0-row, a.NumCols()-col matrix of ones rather
// than an empty Array, so the result shape stays defined even for a source
// with more than one column.
func Restrict(a, b value.Value) value.Value {
	if res, ok := value.Propagate(a, b); ok {
		return res
	}
	r, ok := b.AsRowInds()
	if !ok {
		return value.Err("arithmetic: restrict requires a RowInds right operand")
	}
	if arr, ok := a.AsArray(); ok {
		return restrictArray(arr, r)
	}
	if cats, ok := a.AsCats(); ok {
		return restrictCats(cats, r)
	}
	if inds, ok := a.AsRowInds(); ok {
		return restrictRowInds(inds, r)
	}
	return value.Err("arithmetic: restrict requires an Array, Cats, or RowInds left operand")
}

func restrictArray(a *matrix.Dense, r []int) value.Value {
	if len(r) == 0 {
		return value.Array(matrix.Ones(0, a.NumCols(), a.Order()))
	}
	n := a.NumRows()
	for _, idx := range r {
		if idx < 0 || idx >= n {
			return value.Err("arithmetic: restrict index out of bounds")
		}
	}
	out := matrix.Zeros(len(r), 1, a.Order())
	for i, idx := range r {
		out.Set(i, 0, a.At(idx, 0))
	}
	return value.Array(out)
}

func restrictCats(c []string, r []int) value.Value {
	if len(r) == 0 {
		return value.Cats(nil)
	}
	n := len(c)
	out := make([]string, len(r))
	for i, idx := range r {
		if idx < 0 || idx >= n {
			return value.Err("arithmetic: restrict index out of bounds")
		}
		out[i] = c[idx]
	}
	return value.Cats(out)
}

func restrictRowInds(s, r []int) value.Value {
	if len(r) == 0 {
		return value.RowInds(nil)
	}
	n := len(s)
	out := make([]int, len(r))
	for i, idx := range r {
		if idx < 0 || idx >= n {
			return value.Err("arithmetic: restrict index out of bounds")
		}
		out[i] = s[idx]
	}
	return value.RowInds(out)
}

// HasRowChangeOp reports whether ast uses the `|` restrict operator anywhere,
// the only arithmetic operator capable of changing row cardinality. A host
// can use this to decide whether a result's shape is inferable ahead of
// evaluation.
func HasRowChangeOp(ast *expr.AST) bool {
	for _, op := range ast.OperatorsUsed() {
		if op == "|" {
			return true
		}
	}
	return false
}
