// Package numeric implements classical numerical methods over scalar
// functions: finite-difference derivatives, quadrature, and root finding.
package numeric

import (
	"math"
	"math/rand/v2"

	"github.com/numina-labs/numina/pkg/mathutil"
	"github.com/numina-labs/numina/pkg/symbolic"
)

// Func is a scalar function of one variable.
type Func func(x float64) float64

// FuncOf adapts a symbolic expression in one variable to a Func. Other
// variables in the expression are unbound and evaluate to NaN.
func FuncOf(e symbolic.Expr, variable string) Func {
	return func(x float64) float64 {
		return symbolic.Evaluate(e, func(name string) (float64, bool) {
			if name == variable {
				return x, true
			}
			return 0, false
		})
	}
}

// Derivative approximates f'(x) by central difference with step h.
func Derivative(f Func, x, h float64) float64 {
	if f == nil || h <= 0 {
		return math.NaN()
	}
	return (f(x+h) - f(x-h)) / (2.0 * h)
}

// DerivativeN approximates the n-th derivative of f at x by the central
// finite-difference formula with step h.
func DerivativeN(f Func, x float64, n int, h float64) float64 {
	if f == nil || h <= 0 {
		return math.NaN()
	}
	if n < 0 {
		return math.NaN()
	}
	if n == 0 {
		return f(x)
	}

	result := 0.0
	sign := 1.0
	for k := 0; k <= n; k++ {
		result += sign * mathutil.Binomial(n, k) * f(x+float64(n-2*k)*h)
		sign = -sign
	}
	return result / math.Pow(2.0*h, float64(n))
}

// Limit estimates the two-sided limit of f at x by averaging values just
// either side of it.
func Limit(f Func, x, h float64) float64 {
	if f == nil {
		return math.NaN()
	}
	return (f(x+h) + f(x-h)) / 2.0
}

// IntegrateTrapezoid integrates f over [a, b] with n trapezoids.
func IntegrateTrapezoid(f Func, a, b float64, n int) float64 {
	if f == nil || n <= 0 {
		return 0.0
	}
	h := (b - a) / float64(n)
	sum := 0.5 * (f(a) + f(b))
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}
	return sum * h
}

// IntegrateSimpson integrates f over [a, b] by Simpson's rule with n
// intervals; odd n is rounded up to even.
func IntegrateSimpson(f Func, a, b float64, n int) float64 {
	if f == nil || n <= 0 {
		return 0.0
	}
	if n%2 != 0 {
		n++
	}
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		factor := 2.0
		if i%2 == 1 {
			factor = 4.0
		}
		sum += factor * f(a+float64(i)*h)
	}
	return sum * h / 3.0
}

// IntegrateMonteCarlo integrates f over [a, b] by uniform sampling. A nil
// rng falls back to the global source.
func IntegrateMonteCarlo(f Func, a, b float64, samples int, rng *rand.Rand) float64 {
	if f == nil || samples <= 0 {
		return 0.0
	}
	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}
	sum := 0.0
	for i := 0; i < samples; i++ {
		sum += f(a + (b-a)*uniform())
	}
	return (b - a) * sum / float64(samples)
}

// IntegrateRomberg integrates f over [a, b] by Richardson extrapolation of
// the trapezoid rule. depth is clamped to 20 levels.
func IntegrateRomberg(f Func, a, b float64, depth int) float64 {
	if f == nil || depth <= 0 {
		return 0.0
	}
	const maxDepth = 20
	if depth > maxDepth {
		depth = maxDepth
	}

	r := make([][]float64, depth+1)
	for k := range r {
		r[k] = make([]float64, depth+1)
	}

	for k := 0; k <= depth; k++ {
		n := 1 << k
		h := (b - a) / float64(n)
		sum := 0.5 * (f(a) + f(b))
		for i := 1; i < n; i++ {
			sum += f(a + float64(i)*h)
		}
		r[k][0] = sum * h
		for j := 1; j <= k; j++ {
			r[k][j] = r[k][j-1] + (r[k][j-1]-r[k-1][j-1])/(math.Pow(4, float64(j))-1)
		}
	}
	return r[depth][depth]
}

// RootNewton finds a root of f near x0 by Newton-Raphson with derivative
// df, stopping when successive iterates differ by less than tol. Returns
// the last iterate when maxIter runs out.
func RootNewton(f, df Func, x0, tol float64, maxIter int) float64 {
	if f == nil || df == nil || maxIter <= 0 || tol <= 0 {
		return math.NaN()
	}
	x := x0
	for i := 0; i < maxIter; i++ {
		dy := df(x)
		if math.Abs(dy) < 1e-12 {
			break
		}
		next := x - f(x)/dy
		if math.Abs(next-x) < tol {
			return next
		}
		x = next
	}
	return x
}

// RootBisect finds a root of f in [a, b] by bisection. The interval must
// bracket a sign change; otherwise the result is NaN.
func RootBisect(f Func, a, b, tol float64, maxIter int) float64 {
	if f == nil || maxIter <= 0 || tol <= 0 {
		return math.NaN()
	}
	fa, fb := f(a), f(b)
	if fa*fb > 0 {
		return math.NaN()
	}
	for i := 0; i < maxIter; i++ {
		c := 0.5 * (a + b)
		fc := f(c)
		if math.Abs(fc) < tol || (b-a)/2 < tol {
			return c
		}
		if fa*fc < 0 {
			b, fb = c, fc
		} else {
			a, fa = c, fc
		}
	}
	return 0.5 * (a + b)
}

// Partial approximates the partial derivative of f with respect to the
// i-th coordinate at x.
func Partial(f func(x []float64) float64, x []float64, i int, h float64) float64 {
	if f == nil || i < 0 || i >= len(x) || h <= 0 {
		return math.NaN()
	}
	forward := append([]float64(nil), x...)
	backward := append([]float64(nil), x...)
	forward[i] += h
	backward[i] -= h
	return (f(forward) - f(backward)) / (2.0 * h)
}

// Gradient fills grad with the partial derivatives of f at x.
func Gradient(f func(x []float64) float64, x, grad []float64, h float64) {
	for i := range x {
		grad[i] = Partial(f, x, i, h)
	}
}

// Interpolate linearly interpolates between the points (x0, y0) and
// (x1, y1) at x. Coincident x-coordinates yield NaN.
func Interpolate(x0, y0, x1, y1, x float64) float64 {
	if mathutil.Equal(x1, x0, 1e-12) {
		return math.NaN()
	}
	t := (x - x0) / (x1 - x0)
	return mathutil.Lerp(y0, y1, t)
}
