package symbolic

import "math"

// VarLookup resolves a variable name during evaluation. Returning false
// marks the variable unbound.
type VarLookup func(name string) (float64, bool)

// MapLookup adapts a plain map of bindings to a VarLookup.
func MapLookup(vars map[string]float64) VarLookup {
	return func(name string) (float64, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// Evaluate computes the numeric value of an expression tree. Anomalies are
// reported as NaN, never as errors: a nil lookup or unbound variable, and
// division by exactly zero, all yield NaN. Exponentiation uses math.Pow.
func Evaluate(e Expr, lookup VarLookup) float64 {
	switch n := e.(type) {
	case *Constant:
		return n.Value

	case *Variable:
		if lookup == nil {
			return math.NaN()
		}
		v, ok := lookup(n.Name)
		if !ok {
			return math.NaN()
		}
		return v

	case *BinaryExpr:
		a := Evaluate(n.Left, lookup)
		b := Evaluate(n.Right, lookup)
		return apply(n.Op, a, b)
	}
	return math.NaN()
}

// apply performs one binary arithmetic step.
func apply(op Op, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0.0 {
			return math.NaN()
		}
		return a / b
	case OpPow:
		return math.Pow(a, b)
	}
	return math.NaN()
}
