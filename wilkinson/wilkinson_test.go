package wilkinson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basf/rormula/expr"
	"github.com/basf/rormula/matrix"
	"github.com/basf/rormula/value"
)

func colVec(vals []float64) value.Value {
	m := matrix.Zeros(len(vals), 1, matrix.ColumnMajor)
	for i, v := range vals {
		m.Set(i, 0, v)
	}
	return value.Array(m)
}

func evalValue(t *testing.T, formula string, env map[string]value.Value) value.Value {
	t.Helper()
	ast, err := expr.Parse(formula, Grammar())
	require.NoError(t, err, "formula %q", formula)
	values := make([]value.Value, len(ast.VarNames()))
	for i, name := range ast.VarNames() {
		v, ok := env[name]
		require.True(t, ok, "formula %q references unbound variable %q", formula, name)
		values[i] = v
	}
	return expr.EvalVec(ast, values, ValueOpTable())
}

func evalNames(t *testing.T, formula string, env map[string]value.NameValue) value.NameValue {
	t.Helper()
	ast, err := expr.Parse(formula, Grammar())
	require.NoError(t, err, "formula %q", formula)
	values := make([]value.NameValue, len(ast.VarNames()))
	for i, name := range ast.VarNames() {
		v, ok := env[name]
		require.True(t, ok, "formula %q references unbound variable %q", formula, name)
		values[i] = v
	}
	return expr.EvalVec(ast, values, NameOpTable())
}

// TestDummyEncodingRank is testable property 8.
func TestDummyEncodingRank(t *testing.T) {
	cats := []string{"b", "a", "c", "a", "b"}
	out, err := CatToDummy(cats)
	require.NoError(t, err)
	rows, cols := out.Dims()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 2, cols) // k=3 uniques {a,b,c}, k-1=2 after dropping "c" (sort-max)

	for r := 0; r < rows; r++ {
		ones := 0
		for c := 0; c < cols; c++ {
			if out.At(r, c) == 1.0 {
				ones++
			}
		}
		assert.LessOrEqual(t, ones, 1, "row %d should have at most one 1.0", r)
	}
	// rows whose category is "c" (the dropped sort-max) are all-zero.
	for r, s := range cats {
		if s == "c" {
			for c := 0; c < cols; c++ {
				assert.Equal(t, 0.0, out.At(r, c), "row %d (category c) should be all-zero", r)
			}
		}
	}
}

func TestCatToDummyEmpty(t *testing.T) {
	_, err := CatToDummy(nil)
	assert.Error(t, err)
}

// TestWilkinsonConcat is end-to-end scenario 1.
func TestWilkinsonConcat(t *testing.T) {
	env := map[string]value.Value{
		"n": colVec([]float64{0.1, 0.2, 0.3}),
		"o": colVec([]float64{0.4, 0.5, 0.6}),
	}
	res := evalValue(t, "n+o+n", env)
	arr, ok := res.AsArray()
	require.True(t, ok)
	rows, cols := arr.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	want := [][]float64{{0.1, 0.4, 0.1}, {0.2, 0.5, 0.2}, {0.3, 0.6, 0.3}}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assert.InDelta(t, want[r][c], arr.At(r, c), 1e-12)
		}
	}

	nameEnv := map[string]value.NameValue{
		"n": value.NameArray([]string{"n"}),
		"o": value.NameArray([]string{"o"}),
	}
	names := evalNames(t, "n+o+n", nameEnv)
	got, ok := names.AsArray()
	require.True(t, ok)
	assert.Equal(t, []string{"n", "o", "n"}, got)
}

// TestWilkinsonInteraction is end-to-end scenario 2.
func TestWilkinsonInteraction(t *testing.T) {
	env := map[string]value.Value{
		"alpha": colVec([]float64{0, 0, 0, 0, 0}),
		"beta":  colVec([]float64{0, 0, 0, 0, 0}),
		"gamma": colVec([]float64{0, 0, 0, 0, 0}),
		"eta":   colVec([]float64{0, 0, 0, 0, 0}),
	}
	res := evalValue(t, "(alpha+beta):(gamma+eta)", env)
	arr, ok := res.AsArray()
	require.True(t, ok)
	rows, cols := arr.Dims()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 4, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assert.Equal(t, 0.0, arr.At(r, c))
		}
	}
}

// TestPowerNameLiteralNormalization guards the §C.4 round-trip: "n^2" and
// "n^2.0" must produce identical names, since the name literal is
// re-serialized through strconv.FormatFloat rather than kept as raw text.
func TestPowerNameLiteralNormalization(t *testing.T) {
	env := map[string]value.NameValue{"n": value.NameArray([]string{"n"})}
	integer := evalNames(t, "n^2", env)
	decimal := evalNames(t, "n^2.0", env)

	integerNames, ok := integer.AsArray()
	require.True(t, ok)
	decimalNames, ok := decimal.AsArray()
	require.True(t, ok)

	assert.Equal(t, []string{"n^2"}, integerNames)
	assert.Equal(t, integerNames, decimalNames)
}

func TestCountOpTable(t *testing.T) {
	ast, err := expr.Parse("(alpha+beta):(gamma+eta)", Grammar())
	require.NoError(t, err)
	values := make([]int, len(ast.VarNames()))
	for i := range values {
		values[i] = 1
	}
	count := expr.EvalVec(ast, values, CountOpTable())
	assert.Equal(t, 4, count)
}

func TestVariableReuseDoesNotAliasWilkinson(t *testing.T) {
	env := map[string]value.Value{"n": colVec([]float64{1, 2, 3})}
	res := evalValue(t, "n+n", env)
	arr, ok := res.AsArray()
	require.True(t, ok)
	rows, cols := arr.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	orig, _ := env["n"].AsArray()
	assert.Equal(t, 1.0, orig.At(0, 0))
}
