package arithmetic

import (
	"math"

	"github.com/basf/rormula/matrix"
	"github.com/basf/rormula/value"
)

// epsilon is the relative tolerance the comparison operators use.
const epsilon = 1e-8

// smallestNormal is the smallest positive normal float64, 2^-1022.
const smallestNormal = 0x1p-1022

// floatsAlmostEquals implements the relative-epsilon equality predicate of
// §4.4: bitwise equality (so infinities compare equal to themselves) short
// circuits first; then a near-zero branch whose threshold is scaled by the
// smallest positive normal float, faithfully reproducing the spec's
// extremely tight subnormal handling; then relative error against the sum
// of the operands' magnitudes, with that sum capped at math.MaxFloat64.
func floatsAlmostEquals(a, b, eps float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 || diff < smallestNormal {
		return diff < eps*smallestNormal
	}
	sum := math.Abs(a) + math.Abs(b)
	if sum > math.MaxFloat64 {
		sum = math.MaxFloat64
	}
	return diff/sum < eps
}

func floatsEqual(a, b float64) bool { return floatsAlmostEquals(a, b, epsilon) }
func floatsGe(a, b float64) bool    { return floatsEqual(a, b) || a > b }
func floatsGt(a, b float64) bool    { return !floatsEqual(a, b) && a > b }
func floatsLe(a, b float64) bool    { return floatsEqual(a, b) || a < b }
func floatsLt(a, b float64) bool    { return !floatsEqual(a, b) && a < b }

func stringsEq(a, b string) bool { return a == b }
func stringsGe(a, b string) bool { return a >= b }
func stringsGt(a, b string) bool { return a > b }
func stringsLe(a, b string) bool { return a <= b }
func stringsLt(a, b string) bool { return a < b }

func intsEq(a, b int) bool { return a == b }
func intsGe(a, b int) bool { return a >= b }
func intsGt(a, b int) bool { return a > b }
func intsLe(a, b int) bool { return a <= b }
func intsLt(a, b int) bool { return a < b }

// Equal, Ge, Gt, Le, Lt implement the five comparison operators of §4.4.
// (Array,Array), (Array,Scalar), and (Scalar,Array) compare element-wise by
// linear buffer position; (Cats,Cats) and (RowInds,RowInds) compare exactly
// by index; any other combination is a type-mismatch Error.
func Equal(a, b value.Value) value.Value { return compare(a, b, floatsEqual, stringsEq, intsEq) }
func Ge(a, b value.Value) value.Value    { return compare(a, b, floatsGe, stringsGe, intsGe) }
func Gt(a, b value.Value) value.Value    { return compare(a, b, floatsGt, stringsGt, intsGt) }
func Le(a, b value.Value) value.Value    { return compare(a, b, floatsLe, stringsLe, intsLe) }
func Lt(a, b value.Value) value.Value    { return compare(a, b, floatsLt, stringsLt, intsLt) }

func compare(a, b value.Value,
	floatPred func(x, y float64) bool,
	strPred func(x, y string) bool,
	intPred func(x, y int) bool,
) value.Value {
	if res, ok := value.Propagate(a, b); ok {
		return res
	}
	if aArr, ok := a.AsArray(); ok {
		if bArr, ok := b.AsArray(); ok {
			return compareArrays(aArr, bArr, floatPred)
		}
		if bScalar, ok := b.AsScalar(); ok {
			return compareArrayScalar(aArr, bScalar, floatPred)
		}
		return value.Err("arithmetic: type mismatch in comparison operator")
	}
	if aScalar, ok := a.AsScalar(); ok {
		if bArr, ok := b.AsArray(); ok {
			return compareScalarArray(aScalar, bArr, floatPred)
		}
		return value.Err("arithmetic: type mismatch in comparison operator")
	}
	if aCats, ok := a.AsCats(); ok {
		if bCats, ok := b.AsCats(); ok {
			return compareCats(aCats, bCats, strPred)
		}
		return value.Err("arithmetic: type mismatch in comparison operator")
	}
	if aInds, ok := a.AsRowInds(); ok {
		if bInds, ok := b.AsRowInds(); ok {
			return compareRowInds(aInds, bInds, intPred)
		}
		return value.Err("arithmetic: type mismatch in comparison operator")
	}
	return value.Err("arithmetic: type mismatch in comparison operator")
}

func compareArrays(a, b *matrix.Dense, pred func(x, y float64) bool) value.Value {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		return value.Err("arithmetic: shape mismatch in comparison")
	}
	da, db := a.RawData(), b.RawData()
	var inds []int
	for i := range da {
		if pred(da[i], db[i]) {
			inds = append(inds, i)
		}
	}
	return value.RowInds(inds)
}

func compareArrayScalar(a *matrix.Dense, s float64, pred func(x, y float64) bool) value.Value {
	var inds []int
	for i, x := range a.RawData() {
		if pred(x, s) {
			inds = append(inds, i)
		}
	}
	return value.RowInds(inds)
}

func compareScalarArray(s float64, b *matrix.Dense, pred func(x, y float64) bool) value.Value {
	var inds []int
	for i, y := range b.RawData() {
		if pred(s, y) {
			inds = append(inds, i)
		}
	}
	return value.RowInds(inds)
}

func compareCats(a, b []string, pred func(x, y string) bool) value.Value {
	if len(a) != len(b) {
		return value.Err("arithmetic: shape mismatch in comparison")
	}
	var inds []int
	for i := range a {
		if pred(a[i], b[i]) {
			inds = append(inds, i)
		}
	}
	return value.RowInds(inds)
}

func compareRowInds(a, b []int, pred func(x, y int) bool) value.Value {
	if len(a) != len(b) {
		return value.Err("arithmetic: shape mismatch in comparison")
	}
	var inds []int
	for i := range a {
		if pred(a[i], b[i]) {
			inds = append(inds, i)
		}
	}
	return value.RowInds(inds)
}
