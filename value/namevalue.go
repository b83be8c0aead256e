package value

// NameKind identifies which variant a NameValue holds.
type NameKind int

const (
	NameKindArray NameKind = iota
	NameKindCats
	NameKindScalar
	NameKindError
)

// NameValue is the name-evaluator's parallel variant over strings:
// Array(names) | Cats(feature_name, names) | Scalar(string) | Error(string).
type NameValue struct {
	kind        NameKind
	names       []string
	featureName string
	scalar      string
	errMsg      string
}

// NameArray constructs an Array NameValue.
func NameArray(names []string) NameValue { return NameValue{kind: NameKindArray, names: names} }

// NameCats constructs a Cats NameValue from a feature name and its category labels.
func NameCats(featureName string, cats []string) NameValue {
	return NameValue{kind: NameKindCats, featureName: featureName, names: cats}
}

// NameScalar constructs a Scalar NameValue.
func NameScalar(s string) NameValue { return NameValue{kind: NameKindScalar, scalar: s} }

// NameErr constructs an Error NameValue.
func NameErr(msg string) NameValue { return NameValue{kind: NameKindError, errMsg: msg} }

// NameDefault returns the default NameValue, Error("default"). The Go zero
// value NameValue{} is instead an Array holding no names.
func NameDefault() NameValue { return NameErr("default") }

func (n NameValue) Kind() NameKind { return n.kind }

func (n NameValue) AsArray() ([]string, bool) {
	if n.kind != NameKindArray {
		return nil, false
	}
	return n.names, true
}

func (n NameValue) AsCats() (featureName string, cats []string, ok bool) {
	if n.kind != NameKindCats {
		return "", nil, false
	}
	return n.featureName, n.names, true
}

func (n NameValue) AsScalar() (string, bool) {
	if n.kind != NameKindScalar {
		return "", false
	}
	return n.scalar, true
}

func (n NameValue) AsError() (string, bool) {
	if n.kind != NameKindError {
		return "", false
	}
	return n.errMsg, true
}

func (n NameValue) IsError() bool { return n.kind == NameKindError }

// CatsFromValue mirrors the original's NameValue::cats_from_value: given a
// feature name and a Value, returns a Cats NameValue and true if the Value
// actually held categories, or the zero NameValue and false otherwise.
func CatsFromValue(featureName string, v Value) (NameValue, bool) {
	cats, ok := v.AsCats()
	if !ok {
		return NameValue{}, false
	}
	return NameCats(featureName, cats), true
}

// NamePropagate is the Error-propagation law for NameValue.
func NamePropagate(a, b NameValue) (result NameValue, ok bool) {
	if a.kind == NameKindError {
		return a, true
	}
	if b.kind == NameKindError {
		return b, true
	}
	return NameValue{}, false
}
