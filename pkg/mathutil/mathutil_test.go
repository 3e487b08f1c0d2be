package mathutil_test

import (
	"math"
	"testing"

	"github.com/numina-labs/numina/pkg/mathutil"
	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 3.5, mathutil.Abs(-3.5))
	assert.Equal(t, 3.5, mathutil.Abs(3.5))
	assert.Equal(t, 0.0, mathutil.Abs(0))
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 2.0, mathutil.SafeDiv(10, 5, -1))
	assert.Equal(t, -1.0, mathutil.SafeDiv(10, 0, -1))
	assert.Equal(t, -1.0, mathutil.SafeDiv(10, 1e-15, -1))
}

func TestEqual(t *testing.T) {
	assert.True(t, mathutil.Equal(1.0, 1.0+1e-12, 1e-9))
	assert.False(t, mathutil.Equal(1.0, 1.1, 1e-9))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, mathutil.Clamp(10, 0, 5))
	assert.Equal(t, 0.0, mathutil.Clamp(-10, 0, 5))
	assert.Equal(t, 3.0, mathutil.Clamp(3, 0, 5))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, mathutil.Lerp(0, 10, 0.5))
	assert.Equal(t, 0.0, mathutil.Lerp(0, 10, 0))
	assert.Equal(t, 10.0, mathutil.Lerp(0, 10, 1))
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, 0.0, mathutil.Smoothstep(0, 1, -1))
	assert.Equal(t, 1.0, mathutil.Smoothstep(0, 1, 2))
	assert.Equal(t, 0.5, mathutil.Smoothstep(0, 1, 0.5))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 1.0, mathutil.Wrap(361, 0, 360))
	assert.Equal(t, 359.0, mathutil.Wrap(-1, 0, 360))
	assert.Equal(t, 0.0, mathutil.Wrap(720, 0, 360))
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, 1.0, mathutil.Factorial(0))
	assert.Equal(t, 120.0, mathutil.Factorial(5))
	assert.True(t, math.IsNaN(mathutil.Factorial(-1)))
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1.0, mathutil.Binomial(5, 0))
	assert.Equal(t, 10.0, mathutil.Binomial(5, 2))
	assert.Equal(t, 10.0, mathutil.Binomial(5, 3))
	assert.True(t, math.IsNaN(mathutil.Binomial(3, 5)))
	assert.True(t, math.IsNaN(mathutil.Binomial(-1, 0)))
}

func TestLookupConstant(t *testing.T) {
	v, ok := mathutil.LookupConstant("pi")
	assert.True(t, ok)
	assert.Equal(t, mathutil.Pi, v)

	v, ok = mathutil.LookupConstant("half_pi")
	assert.True(t, ok)
	assert.Equal(t, mathutil.Pi/2, v)

	_, ok = mathutil.LookupConstant("tau")
	assert.False(t, ok)
}

func TestConstantNames(t *testing.T) {
	names := mathutil.ConstantNames()
	assert.Len(t, names, 12)
	assert.Contains(t, names, "pi")
	assert.Contains(t, names, "sqrt1_2")
	assert.IsIncreasing(t, names)
}
