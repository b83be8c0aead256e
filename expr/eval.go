package expr

// OpTable supplies the operations EvalVec needs to fold an AST down to a
// single value of type T. Each formula family (arithmetic over value.Value,
// Wilkinson over value.Value, Wilkinson over value.NameValue, Wilkinson over
// column counts) instantiates its own OpTable; the tree-walking logic itself
// is written once here.
type OpTable[T any] struct {
	// Literal converts a numeric literal's raw text into T.
	Literal func(raw string) T
	// Binary applies a binary operator symbol to two already-evaluated operands.
	Binary func(op string, l, r T) T
	// Unary applies a unary prefix operator symbol to an operand.
	Unary func(op string, x T) T
	// Call applies a named unary function to an operand.
	Call func(fn string, x T) T
	// Variable is applied to a bound variable's value each time it is
	// referenced. It exists so a family whose binary ops mutate their left
	// operand in place (the arithmetic/Wilkinson Value algebras) can hand
	// out an independent copy per reference instead of aliasing the same
	// backing buffer across multiple uses of one variable in a formula
	// (e.g. "n+o+n"). Families without that hazard may leave it nil, in
	// which case the bound value is returned unchanged.
	Variable func(x T) T
}

// EvalVec walks ast, looking up each variable reference positionally in
// values (values[i] corresponds to ast.VarNames()[i]), and folds the tree
// using ops. Any error produced mid-evaluation is expected to propagate
// through T itself (e.g. an Error-kind value.Value), not through a Go error
// return, matching how the formula algebras are defined.
func EvalVec[T any](ast *AST, values []T, ops OpTable[T]) T {
	idx := make(map[string]int, len(ast.varNames))
	for i, name := range ast.varNames {
		idx[name] = i
	}
	var walk func(n Node) T
	walk = func(n Node) T {
		switch v := n.(type) {
		case litNode:
			return ops.Literal(v.raw)
		case varNode:
			bound := values[idx[v.name]]
			if ops.Variable != nil {
				return ops.Variable(bound)
			}
			return bound
		case unaryNode:
			return ops.Unary(v.op, walk(v.x))
		case callNode:
			return ops.Call(v.fn, walk(v.arg))
		case binNode:
			return ops.Binary(v.op, walk(v.l), walk(v.r))
		default:
			panic("expr: unknown node type in EvalVec")
		}
	}
	return walk(ast.root)
}
