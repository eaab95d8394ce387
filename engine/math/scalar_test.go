package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/icemath/engine/core"
)

const tol = 1e-6

func TestSinCosKnownValues(t *testing.T) {
	tests := []struct {
		x        float64
		sin, cos float64
	}{
		{0, 0, 1},
		{K_HALF_PI, 1, 0},
		{K_PI, 0, -1},
		{-K_HALF_PI, -1, 0},
		{K_PI / 6, 0.5, K_SQRT_THREE / 2},
		{K_PI / 4, K_SQRT_ONE_OVER_TWO, K_SQRT_ONE_OVER_TWO},
		{3*K_PI_2 + K_PI/6, 0.5, K_SQRT_THREE / 2},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.sin, Sin(tt.x), tol, "sin(%g)", tt.x)
		assert.InDelta(t, tt.cos, Cos(tt.x), tol, "cos(%g)", tt.x)
	}
}

func TestPythagoreanIdentity(t *testing.T) {
	for x := -20.0; x <= 20.0; x += 0.37 {
		s, c := Sin(x), Cos(x)
		assert.InDelta(t, 1.0, s*s+c*c, tol, "x=%g", x)
	}
}

func TestSeriesMatchesReducedNearZero(t *testing.T) {
	for _, x := range []float64{-1, -0.5, 0, 0.25, 1} {
		assert.InDelta(t, Sin(x), SinSeries(x), 1e-12)
		assert.InDelta(t, Cos(x), CosSeries(x), 1e-12)
	}
}

func TestTrigNaN(t *testing.T) {
	assert.True(t, IsNaN(Sin(nan())))
	assert.True(t, IsNaN(Cos(m.Inf(1))))
}

func TestInverseTrig(t *testing.T) {
	assert.InDelta(t, K_QUARTER_PI, Atan(1), 1e-12)
	assert.InDelta(t, -K_PI/3, Atan(-K_SQRT_THREE), 1e-12)
	assert.InDelta(t, 3*K_QUARTER_PI, Atan2(1, -1), 1e-12)
	assert.InDelta(t, -K_HALF_PI, Atan2(-2, 0), 1e-12)
	assert.InDelta(t, K_PI/6, Asin(0.5), 1e-9)
	assert.InDelta(t, K_PI/3, Acos(0.5), 1e-9)
	assert.InDelta(t, K_PI, Acos(-1), 1e-9)
	assert.True(t, IsNaN(Asin(1.5)))
}

func TestSqrt(t *testing.T) {
	assert.Equal(t, 2.0, Sqrt(4))
	assert.Equal(t, 3.0, Sqrt(9))
	assert.Equal(t, 0.0, Sqrt(0))
	assert.InDelta(t, K_SQRT_TWO, Sqrt(2), 1e-15)
	assert.InEpsilon(t, 1e150, Sqrt(1e300), 1e-14)
	assert.True(t, IsInf(Sqrt(m.Inf(1)), 1))
	assert.True(t, IsNaN(Sqrt(-1)))

	for _, x := range []float64{1e-300, 0.5, 17, 12345.678, 1e200} {
		r := Sqrt(x)
		assert.InEpsilon(t, x, r*r, 1e-12, "sqrt(%g)", x)
	}
}

func TestSqrtChecked(t *testing.T) {
	_, err := SqrtChecked(-4)
	assert.ErrorIs(t, err, core.ErrDomain)

	v, err := SqrtChecked(16)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestPow(t *testing.T) {
	assert.Equal(t, 1024.0, Pow(2, 10))
	assert.Equal(t, 0.125, Pow(2, -3))
	assert.Equal(t, -27.0, Pow(-3, 3))
	assert.Equal(t, 1.0, Pow(0, 0))
	assert.Equal(t, 0.0, Pow(0, 5))
	assert.InDelta(t, K_SQRT_TWO, Pow(2, 0.5), 1e-12)
	assert.InDelta(t, 3.0, Pow(27, 1.0/3.0), 1e-12)
	assert.InDelta(t, 0.1, Pow(100, -0.5), 1e-12)
	assert.True(t, IsNaN(Pow(-2, 0.5)))
}

func TestPowChecked(t *testing.T) {
	_, err := PowChecked(-8, 1.0/3.0)
	assert.ErrorIs(t, err, core.ErrDomain)

	v, err := PowChecked(0, -1)
	assert.ErrorIs(t, err, core.ErrDomain)
	assert.True(t, IsInf(v, 1))
}

func TestLogExp(t *testing.T) {
	assert.Equal(t, 0.0, Log(1))
	assert.InDelta(t, 1.0, Log(K_E), 1e-12)
	assert.Equal(t, 10.0, Log2(1024))
	assert.Equal(t, -3.0, Log2(0.125))
	assert.InDelta(t, 3.0, Log10(1000), 1e-12)
	assert.InDelta(t, K_E, Exp(1), 1e-12)
	assert.Equal(t, 1.0, Exp(0))
	assert.True(t, IsInf(Exp(1000), 1))
	assert.Equal(t, 0.0, Exp(-1000))

	for _, x := range []float64{-30, -2.5, -0.1, 0.3, 1, 7.25, 100} {
		assert.InEpsilon(t, x, Log(Exp(x)), 1e-12, "x=%g", x)
	}
}

func TestLogDomain(t *testing.T) {
	assert.True(t, IsInf(Log(0), -1))
	assert.True(t, IsNaN(Log(-1)))

	_, err := LogChecked(-1)
	assert.ErrorIs(t, err, core.ErrDomain)
	_, err = Log2Checked(0)
	assert.ErrorIs(t, err, core.ErrDomain)
}

func TestHyperbolic(t *testing.T) {
	for _, x := range []float64{-3, -0.5, 0.25, 2} {
		c, s := Cosh(x), Sinh(x)
		assert.InDelta(t, 1.0, c*c-s*s, 1e-9)
		assert.InDelta(t, s/c, Tanh(x), 1e-12)
		assert.InDelta(t, 1/Tanh(x), Coth(x), 1e-12)
		assert.InDelta(t, 1/c, Sech(x), 1e-12)
		assert.InDelta(t, 1/s, Csch(x), 1e-12)
	}
	assert.Equal(t, 1.0, Tanh(50))
	assert.Equal(t, 0.0, Sinh(0))
}

func TestRounding(t *testing.T) {
	tests := []struct {
		x                         float64
		floor, ceil, round, trunc float64
	}{
		{2.5, 2, 3, 3, 2},
		{-2.5, -3, -2, -3, -2},
		{1.2, 1, 2, 1, 1},
		{-0.7, -1, 0, -1, 0},
		{4, 4, 4, 4, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.floor, Floor(tt.x), "floor(%g)", tt.x)
		assert.Equal(t, tt.ceil, Ceil(tt.x), "ceil(%g)", tt.x)
		assert.Equal(t, tt.round, Round(tt.x), "round(%g)", tt.x)
		assert.Equal(t, tt.trunc, Trunc(tt.x), "trunc(%g)", tt.x)
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 1.5, Mod(7.5, 2))
	assert.Equal(t, -1.5, Mod(-7.5, 2))
	assert.True(t, IsNaN(Mod(1, 0)))
	assert.Equal(t, 3.0, Abs(-3))
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 5, Clamp(9, 0, 5))
	assert.Equal(t, -1.0, Clamp(-4.0, -1.0, 1.0))
	assert.Equal(t, 2, Min(2, 3))
	assert.Equal(t, "b", Max("a", "b"))
	assert.Equal(t, 7.5, Lerp(5, 10, 0.5))
	assert.True(t, FloatEqual(0.1+0.2, 0.3, 1e-12))
	assert.True(t, IsPowerOfTwo(64))
	assert.False(t, IsPowerOfTwo(0))
	assert.False(t, IsPowerOfTwo(96))
	assert.InDelta(t, K_PI, DegToRad(180), 1e-15)
	assert.InDelta(t, 90.0, RadToDeg(K_HALF_PI), 1e-12)
}
