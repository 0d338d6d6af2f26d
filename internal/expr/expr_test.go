package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gradedb/internal/expr"
)

func TestEvaluate_Precedence(t *testing.T) {
	cases := []struct {
		input    string
		bindings map[string]float64
		want     float64
	}{
		{"1 + 2", nil, 3},
		{"2 + 3 * 4", nil, 14},
		{"(2 + 3) * 4", nil, 20},
		{"10 - 4 - 3", nil, 3}, // left associative
		{"12 / 4 / 3", nil, 1},
		{"-3 + 5", nil, 2},
		{"-(2 + 3)", nil, -5},
		{"grade * 2", map[string]float64{"grade": 1.5}, 3},
		{"(a + b) / 2", map[string]float64{"a": 1, "b": 2}, 1.5},
		{"1.5 + 0.25", nil, 1.75},
	}

	for _, c := range cases {
		e, err := expr.Parse(c.input)
		require.NoError(t, err, "parse %q", c.input)

		got, err := expr.Evaluate(e, c.bindings)
		require.NoError(t, err, "evaluate %q", c.input)
		require.InDelta(t, c.want, got, 1e-9, "evaluate %q", c.input)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, input := range []string{"", "1 +", "(1 + 2", "1 ? 2", "1 2"} {
		_, err := expr.Parse(input)
		require.Error(t, err, "parse %q should fail", input)
	}
}

func TestEvaluate_UnboundVariable(t *testing.T) {
	e, err := expr.Parse("grade + bonus")
	require.NoError(t, err)

	_, err = expr.Evaluate(e, map[string]float64{"grade": 1.0})
	require.ErrorContains(t, err, "bonus")
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	e, err := expr.Parse("1 / (2 - 2)")
	require.NoError(t, err)

	_, err = expr.Evaluate(e, nil)
	require.ErrorContains(t, err, "division by zero")
}

func TestReferencedVariables(t *testing.T) {
	e, err := expr.Parse("(grade + bonus) * grade - 3")
	require.NoError(t, err)

	require.Equal(t, []string{"bonus", "grade"}, expr.ReferencedVariables(e))

	literal, err := expr.Parse("1 + 2")
	require.NoError(t, err)
	require.Empty(t, expr.ReferencedVariables(literal))
}

func TestString_Roundtrip(t *testing.T) {
	e, err := expr.Parse("1 + 2 * x")
	require.NoError(t, err)
	require.Equal(t, "(1 + (2 * x))", e.String())
}
