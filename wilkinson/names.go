package wilkinson

import (
	"github.com/basf/rormula/value"
)

// liftCategoricalName mirrors liftCategorical, but for the name evaluator:
// a NameKindCats value is expanded to the dummy column names that
// CatToDummy would have produced for the same raw category column.
func liftCategoricalName(n value.NameValue) value.NameValue {
	featureName, cats, ok := n.AsCats()
	if !ok {
		return n
	}
	unique, _, ok := droppedLast(cats)
	if !ok {
		return value.NameErr("wilkinson: empty categorical column")
	}
	names := make([]string, len(unique))
	for i, u := range unique {
		names[i] = featureName + "_" + u
	}
	return value.NameArray(names)
}

// NamePlus implements the name evaluator's `+`: concatenation of the two
// operands' name lists.
func NamePlus(a, b value.NameValue) value.NameValue {
	if res, ok := value.NamePropagate(a, b); ok {
		return res
	}
	a, b = liftCategoricalName(a), liftCategoricalName(b)
	if a.IsError() {
		return a
	}
	if b.IsError() {
		return b
	}
	aNames, aOk := a.AsArray()
	bNames, bOk := b.AsArray()
	if !aOk || !bOk {
		return value.NameErr("wilkinson: `+` requires name-list operands")
	}
	out := make([]string, 0, len(aNames)+len(bNames))
	out = append(out, aNames...)
	out = append(out, bNames...)
	return value.NameArray(out)
}

// NameColon implements the name evaluator's `:`: for every pair (n, m) of
// names drawn from a's list (size p) and b's list (size q), in the same
// column order the numeric componentwise interaction produces (j*p+i for
// i<p, j<q), forms "n:m".
func NameColon(a, b value.NameValue) value.NameValue {
	if res, ok := value.NamePropagate(a, b); ok {
		return res
	}
	a, b = liftCategoricalName(a), liftCategoricalName(b)
	if a.IsError() {
		return a
	}
	if b.IsError() {
		return b
	}
	aNames, aOk := a.AsArray()
	bNames, bOk := b.AsArray()
	if !aOk || !bOk {
		return value.NameErr("wilkinson: `:` requires name-list operands")
	}
	p := len(aNames)
	out := make([]string, len(aNames)*len(bNames))
	for j, m := range bNames {
		for i, n := range aNames {
			out[j*p+i] = n + ":" + m
		}
	}
	return value.NameArray(out)
}

// NamePower implements the name evaluator's `^`: for each name n in a and
// the single scalar string s held by b, produces "n^s".
func NamePower(a, b value.NameValue) value.NameValue {
	if res, ok := value.NamePropagate(a, b); ok {
		return res
	}
	a = liftCategoricalName(a)
	if a.IsError() {
		return a
	}
	s, ok := b.AsScalar()
	if !ok {
		return value.NameErr("power only matrix×scalar")
	}
	aNames, ok := a.AsArray()
	if !ok {
		return value.NameErr("power only matrix×scalar")
	}
	out := make([]string, len(aNames))
	for i, n := range aNames {
		out[i] = n + "^" + s
	}
	return value.NameArray(out)
}
