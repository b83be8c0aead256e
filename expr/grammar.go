package expr

// Grammar describes the operator vocabulary a particular formula family
// accepts. The lexer and the recursive-descent/precedence-climbing parser
// are shared; only the grammar varies between the arithmetic family and the
// Wilkinson family.
type Grammar struct {
	// BinOps maps an operator symbol to its precedence; higher binds
	// tighter. All binary operators are left-associative.
	BinOps map[string]int
	// UnaryPrefix lists symbols usable as a prefix unary operator (e.g. "-").
	UnaryPrefix map[string]bool
	// Funcs lists identifiers that, when immediately followed by "(", are
	// parsed as a unary function call rather than a bare variable
	// reference (e.g. "sqrt", "sin").
	Funcs map[string]bool
}

// ArithmeticGrammar is the operator/function vocabulary of §4.4.
func ArithmeticGrammar() Grammar {
	return Grammar{
		BinOps: map[string]int{
			"^":  6,
			"/":  5,
			"*":  4,
			"-":  3,
			"+":  2,
			"==": 1,
			"<":  1,
			"<=": 1,
			">":  1,
			">=": 1,
			"|":  0,
		},
		UnaryPrefix: map[string]bool{"-": true},
		Funcs: map[string]bool{
			"abs": true, "sqrt": true, "round": true, "floor": true, "ceil": true,
			"trunc": true, "fract": true, "sign": true, "sin": true, "cos": true,
			"tan": true, "asin": true, "acos": true, "atan": true, "exp": true,
			"ln": true, "log": true, "log2": true, "log10": true,
		},
	}
}

// WilkinsonGrammar is the operator vocabulary of §4.5.
func WilkinsonGrammar() Grammar {
	return Grammar{
		BinOps: map[string]int{
			"^": 2,
			":": 1,
			"+": 0,
		},
		UnaryPrefix: map[string]bool{},
		Funcs:       map[string]bool{},
	}
}
