package calc_test

import (
	"math"
	"testing"

	"github.com/numina-labs/numina/internal/testutil"
	"github.com/numina-labs/numina/pkg/calc"
	"github.com/numina-labs/numina/pkg/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv(t *testing.T) *calc.Env {
	t.Helper()
	return calc.NewEnv(calc.Config{Builtins: true, Logger: testutil.NewTestLogger(t)})
}

func TestEvalArithmetic(t *testing.T) {
	env := newEnv(t)

	cases := []struct {
		input string
		want  float64
	}{
		{"1 + 2", 3},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 4 - 3", 3},
		{"100 / 10 / 5", 2},
		{"7 % 3", 1},
		{"2 ^ 10", 1024},
		{"2 ^ 3 ^ 2", 512}, // right-associative
		{"-2 ^ 2", -4},     // '^' binds tighter than unary minus
		{"-(2 + 3)", -5},
		{"2 - -3", 5},
		{"2 ^ -1", 0.5},
		{".5 * 4", 2},
		{"1.5e2 + 50", 200},
	}
	for _, tc := range cases {
		got, err := env.Eval(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.InDelta(t, tc.want, got, 1e-12, "input %q", tc.input)
	}
}

func TestEvalNamedConstants(t *testing.T) {
	env := newEnv(t)

	got, err := env.Eval("two_pi / 2")
	require.NoError(t, err)
	assert.InDelta(t, mathutil.Pi, got, 1e-15)
}

func TestEvalDivisionByZeroIsNaN(t *testing.T) {
	env := newEnv(t)

	got, err := env.Eval("1 / 0")
	require.NoError(t, err, "division by zero is an anomaly, not an error")
	assert.True(t, math.IsNaN(got))
}

func TestEvalAssignment(t *testing.T) {
	env := newEnv(t)

	got, err := env.Eval("x = 2 + 3")
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = env.Eval("x * 2")
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	v, ok := env.Var("x")
	require.True(t, ok)
	assert.Equal(t, 5.0, v)
}

func TestEvalAssignmentToConstantFails(t *testing.T) {
	env := newEnv(t)

	_, err := env.Eval("pi = 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constant")
}

func TestEvalBuiltinFunctions(t *testing.T) {
	env := newEnv(t)

	got, err := env.Eval("sin(0)")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = env.Eval("sqrt(2) - sqrt2")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-15)

	got, err = env.Eval("pow(2, 10)")
	require.NoError(t, err)
	assert.Equal(t, 1024.0, got)

	got, err = env.Eval("max(min(5, 3), 1)")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestEvalUserFunction(t *testing.T) {
	env := newEnv(t)
	err := env.RegisterFunc("double", 1, func(args []float64) float64 {
		return args[0] * 2
	})
	require.NoError(t, err)

	got, err := env.Eval("double(21)")
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
}

func TestEvalZeroArityFunction(t *testing.T) {
	env := newEnv(t)
	err := env.RegisterFunc("answer", 0, func([]float64) float64 { return 42 })
	require.NoError(t, err)

	got, err := env.Eval("answer() + 1")
	require.NoError(t, err)
	assert.Equal(t, 43.0, got)
}

func TestEvalArityMismatch(t *testing.T) {
	env := newEnv(t)

	_, err := env.Eval("pow(2)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects 2 arguments")

	_, err = env.Eval("sin(1, 2)")
	require.Error(t, err)
}

func TestEvalUnknownIdentifiers(t *testing.T) {
	env := newEnv(t)

	_, err := env.Eval("nope + 1")
	var eerr *calc.EvalError
	require.ErrorAs(t, err, &eerr)
	assert.Contains(t, eerr.Message, "unknown variable")

	_, err = env.Eval("nope(1)")
	require.ErrorAs(t, err, &eerr)
	assert.Contains(t, eerr.Message, "unknown function")
}

func TestEvalSyntaxErrors(t *testing.T) {
	env := newEnv(t)

	for _, input := range []string{
		"",
		"   ",
		"1 +",
		"* 2",
		"(1 + 2",
		"1 + 2)",
		"1 2",
		"1 + $",
		"f(1,)",
		"1 = 2",
		"x + = 2",
	} {
		_, err := env.Eval(input)
		var eerr *calc.EvalError
		require.ErrorAs(t, err, &eerr, "input %q", input)
	}
}

func TestEvalErrorPosition(t *testing.T) {
	env := newEnv(t)

	_, err := env.Eval("1 + bogus")
	var eerr *calc.EvalError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, 4, eerr.Pos.Offset)
}

func TestEnvVarNames(t *testing.T) {
	env := newEnv(t)
	require.NoError(t, env.SetVar("b", 2))
	require.NoError(t, env.SetVar("a", 1))

	assert.Equal(t, []string{"a", "b"}, env.VarNames())
}

func TestRegisterFuncValidation(t *testing.T) {
	env := newEnv(t)

	assert.Error(t, env.RegisterFunc("", 1, func([]float64) float64 { return 0 }))
	assert.Error(t, env.RegisterFunc("f", -1, func([]float64) float64 { return 0 }))
	assert.Error(t, env.RegisterFunc("f", 1, nil))
}
