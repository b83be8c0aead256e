// Package wilkinson implements the Wilkinson-notation formula language of
// §4.5: column concatenation (`+`), pairwise interaction (`:`), scalar-lifted
// power (`^`), and "drop-last" categorical dummy encoding, plus the two
// shadow evaluators of §4.6 that predict output column names and output
// column counts from the same parsed formula.
package wilkinson

import "github.com/basf/rormula/expr"

// Grammar is the Wilkinson operator vocabulary, exposed so callers need not
// import the expr package directly just to call expr.Parse.
func Grammar() expr.Grammar { return expr.WilkinsonGrammar() }
