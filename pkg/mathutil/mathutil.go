package mathutil

import "math"

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// SafeDiv divides num by den, returning fallback when den is too close to
// zero to divide meaningfully.
func SafeDiv(num, den, fallback float64) float64 {
	if math.Abs(den) < 1e-12 {
		return fallback
	}
	return num / den
}

// Equal reports whether a and b are within eps of each other.
func Equal(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep performs smooth Hermite interpolation between the edges,
// clamping x to [0, 1] in edge space first.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0.0, 1.0)
	return t * t * (3 - 2*t)
}

// Wrap maps x into the half-open range [lo, hi).
func Wrap(x, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	w := math.Mod(x-lo, span)
	if w < 0 {
		w += span
	}
	return lo + w
}

// Factorial returns n! as a float64, or NaN for negative n. Results above
// 170! overflow to +Inf, matching float64 range.
func Factorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// Binomial returns the binomial coefficient C(n, k), or NaN when the
// arguments are out of range.
func Binomial(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return math.NaN()
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}
	return result
}
