package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/icemath/engine/core"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float64 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float64 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float64 = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI float64 = 1.0 / K_PI
	/** @brief One divided by half of an approximate representation of PI. */
	K_ONE_OVER_TWO_PI float64 = 1.0 / K_PI_2
	/** @brief Euler's number. */
	K_E float64 = 2.71828182845904523536
	/** @brief The natural logarithm of 2. */
	K_LN2 float64 = 0.693147180559945309417232121458176568
	/** @brief The natural logarithm of 10. */
	K_LN10 float64 = 2.30258509299404568401799145468436421
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float64 = 1.41421356237309504880
	/** @brief An approximation of the square root of 3. */
	K_SQRT_THREE float64 = 1.73205080756887729352
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float64 = 0.70710678118654752440
	/** @brief One divided by an approximation of the square root of 3. */
	K_SQRT_ONE_OVER_THREE float64 = 0.57735026918962576450
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float64 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float64 = 180.0 / K_PI
	/** @brief A huge number that should be larger than any valid number used. */
	K_INFINITY float64 = 1e30
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 1.0 */
	K_FLOAT_EPSILON float64 = 2.220446049250313e-16
)

// SqrtMaxIterations caps the Newton-Raphson loop of Sqrt. Starting from x/2
// the largest finite float64 needs a little over 500 steps.
const SqrtMaxIterations = 2048

const (
	ln2Hi = 6.93147180369123816490e-01
	ln2Lo = 1.90821492927058770002e-10

	expOverflow  = 7.09782712893383973096e+02
	expUnderflow = -7.45133219101941108420e+02

	// tan(pi/12), the switch point of the atan argument reduction.
	tanPiOver12 = 0.26794919243112270647

	// past 2^52 every float64 is an integer
	integralLimit = 1 << 52
)

func nan() float64 { return m.NaN() }

func IsNaN(x float64) bool { return x != x }

// IsInf reports whether x is an infinity, according to sign. If sign > 0 only
// +Inf matches, if sign < 0 only -Inf, if sign == 0 either.
func IsInf(x float64, sign int) bool {
	return sign >= 0 && x > m.MaxFloat64 || sign <= 0 && x < -m.MaxFloat64
}

// ------------------------------------------
// Rounding and helpers
// ------------------------------------------

func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	if x == 0 {
		return 0 // clears the sign of -0
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Trunc drops the fractional part of x.
func Trunc(x float64) float64 {
	if IsNaN(x) || Abs(x) >= integralLimit {
		return x
	}
	return float64(int64(x))
}

func Floor(x float64) float64 {
	t := Trunc(x)
	if t > x {
		t--
	}
	return t
}

func Ceil(x float64) float64 {
	t := Trunc(x)
	if t < x {
		t++
	}
	return t
}

// Round rounds half away from zero.
func Round(x float64) float64 {
	t := Trunc(x)
	if Abs(x-t) >= 0.5 {
		t += Sign(x)
	}
	return t
}

// Mod returns the floating-point remainder of x/y with the sign of x.
func Mod(x, y float64) float64 {
	if y == 0 || IsNaN(x) || IsNaN(y) || IsInf(x, 0) {
		return nan()
	}
	if IsInf(y, 0) {
		return x
	}
	return x - y*Trunc(x/y)
}

/**
 * @brief Linearly interpolates between a and b.
 *
 * @param a The value at t = 0.
 * @param b The value at t = 1.
 * @param t The interpolation factor, typically in [0, 1].
 * @return The interpolated value.
 */
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FloatEqual reports whether a and b differ by at most tolerance.
func FloatEqual(a, b, tolerance float64) bool {
	return Abs(a-b) <= tolerance
}

func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float64) float64 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float64) float64 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// ------------------------------------------
// Trigonometry
// ------------------------------------------

// SinSeries is the truncated Taylor series of sine through the x^13 term with
// no argument reduction. Precision degrades quickly once |x| leaves [-pi/2, pi/2].
func SinSeries(x float64) float64 {
	x2 := x * x
	term := x
	sum := x
	for n := 3; n <= 13; n += 2 {
		term *= -x2 / float64((n-1)*n)
		sum += term
	}
	return sum
}

// CosSeries is the truncated Taylor series of cosine through the x^12 term with
// no argument reduction.
func CosSeries(x float64) float64 {
	x2 := x * x
	term := 1.0
	sum := 1.0
	for n := 2; n <= 12; n += 2 {
		term *= -x2 / float64((n-1)*n)
		sum += term
	}
	return sum
}

// wrapAngle maps x into [-pi, pi].
func wrapAngle(x float64) float64 {
	if x > K_PI || x < -K_PI {
		x -= K_PI_2 * Round(x*K_ONE_OVER_TWO_PI)
	}
	return x
}

// foldAngle maps x from [-pi, pi] into [-pi/2, pi/2]. The returned sign must be
// applied to cosine, sine is unchanged by the fold.
func foldAngle(x float64) (float64, float64) {
	switch {
	case x > K_HALF_PI:
		return K_PI - x, -1
	case x < -K_HALF_PI:
		return -K_PI - x, -1
	}
	return x, 1
}

/**
 * @brief Sine of x radians. The argument is reduced into [-pi/2, pi/2] before
 * the Taylor series is evaluated. Use SinSeries for the unreduced series.
 */
func Sin(x float64) float64 {
	if IsNaN(x) || IsInf(x, 0) {
		return nan()
	}
	x, _ = foldAngle(wrapAngle(x))
	return SinSeries(x)
}

/**
 * @brief Cosine of x radians, reduced like Sin.
 */
func Cos(x float64) float64 {
	if IsNaN(x) || IsInf(x, 0) {
		return nan()
	}
	x, sign := foldAngle(wrapAngle(x))
	return sign * CosSeries(x)
}

// Tan is Sin/Cos. It is ±Inf or NaN where the cosine evaluates to exactly zero.
func Tan(x float64) float64 {
	return Sin(x) / Cos(x)
}

func Cot(x float64) float64 {
	return Cos(x) / Sin(x)
}

func Sec(x float64) float64 {
	return 1.0 / Cos(x)
}

func Csc(x float64) float64 {
	return 1.0 / Sin(x)
}

func atanSeries(x float64) float64 {
	x2 := x * x
	term := x
	sum := x
	for n := 3; n <= 41; n += 2 {
		term *= -x2
		sum += term / float64(n)
	}
	return sum
}

// Atan returns the arctangent of x in [-pi/2, pi/2].
func Atan(x float64) float64 {
	switch {
	case IsNaN(x):
		return nan()
	case x < 0:
		return -Atan(-x)
	case x > 1:
		return K_HALF_PI - Atan(1/x)
	case x > tanPiOver12:
		return K_PI/6 + atanSeries((x*K_SQRT_THREE-1)/(K_SQRT_THREE+x))
	}
	return atanSeries(x)
}

// Atan2 returns the angle of the point (x, y) in [-pi, pi].
func Atan2(y, x float64) float64 {
	switch {
	case IsNaN(x) || IsNaN(y):
		return nan()
	case x > 0:
		return Atan(y / x)
	case x < 0 && y >= 0:
		return Atan(y/x) + K_PI
	case x < 0:
		return Atan(y/x) - K_PI
	case y > 0:
		return K_HALF_PI
	case y < 0:
		return -K_HALF_PI
	}
	return 0
}

// Asin returns the arcsine of x, NaN outside [-1, 1].
func Asin(x float64) float64 {
	if IsNaN(x) || x > 1 || x < -1 {
		return nan()
	}
	return Atan2(x, Sqrt((1-x)*(1+x)))
}

// Acos returns the arccosine of x in [0, pi], NaN outside [-1, 1].
func Acos(x float64) float64 {
	if IsNaN(x) || x > 1 || x < -1 {
		return nan()
	}
	return Atan2(Sqrt((1-x)*(1+x)), x)
}

// ------------------------------------------
// Roots, powers, logarithms
// ------------------------------------------

/**
 * @brief Square root by Newton-Raphson iteration starting at x/2.
 * Negative and NaN inputs yield NaN.
 */
func Sqrt(x float64) float64 {
	r, err := SqrtChecked(x)
	if err != nil {
		return nan()
	}
	return r
}

// SqrtChecked is Sqrt reporting core.ErrDomain for negative or NaN input and
// core.ErrNoConvergence if SqrtMaxIterations is exceeded.
func SqrtChecked(x float64) (float64, error) {
	switch {
	case IsNaN(x) || x < 0:
		return nan(), fmt.Errorf("sqrt(%g): %w", x, core.ErrDomain)
	case x == 0 || IsInf(x, 1):
		return x, nil
	}

	guess := x / 2
	if guess == 0 {
		// x/2 underflowed for the smallest subnormals
		guess = x
	}
	prev := nan()
	for i := 0; i < SqrtMaxIterations; i++ {
		next := 0.5 * (guess + x/guess)
		// converged, or bouncing between two neighbouring floats
		if next == guess || next == prev {
			return guess, nil
		}
		prev, guess = guess, next
	}
	return guess, fmt.Errorf("sqrt(%g) after %d iterations: %w", x, SqrtMaxIterations, core.ErrNoConvergence)
}

// Exp returns e^x.
func Exp(x float64) float64 {
	switch {
	case IsNaN(x):
		return nan()
	case x > expOverflow:
		return m.Inf(1)
	case x < expUnderflow:
		return 0
	}

	// x = k*ln2 + r, |r| <= ln2/2
	k := Round(x / K_LN2)
	r := (x - k*ln2Hi) - k*ln2Lo

	sum := 1.0
	term := 1.0
	for i := 1; i <= 30; i++ {
		term *= r / float64(i)
		sum += term
		if Abs(term) < K_FLOAT_EPSILON*Abs(sum) {
			break
		}
	}
	return m.Ldexp(sum, int(k))
}

// logReduce splits a positive finite x into frac*2^exp with frac in
// [sqrt(1/2), sqrt(2)).
func logReduce(x float64) (float64, int) {
	frac, exp := m.Frexp(x)
	if frac < K_SQRT_ONE_OVER_TWO {
		frac *= 2
		exp--
	}
	return frac, exp
}

// lnSeries evaluates ln(f) as 2*atanh((f-1)/(f+1)) for f near 1.
func lnSeries(f float64) float64 {
	s := (f - 1) / (f + 1)
	s2 := s * s
	term := s
	sum := 0.0
	for n := 1; n <= 41; n += 2 {
		sum += term / float64(n)
		term *= s2
	}
	return 2 * sum
}

func logDomain(name string, x float64) (float64, error) {
	switch {
	case IsNaN(x) || x < 0:
		return nan(), fmt.Errorf("%s(%g): %w", name, x, core.ErrDomain)
	case x == 0:
		return m.Inf(-1), fmt.Errorf("%s(0): %w", name, core.ErrDomain)
	}
	return 0, nil
}

// LogChecked is the natural logarithm reporting core.ErrDomain for x <= 0.
func LogChecked(x float64) (float64, error) {
	if v, err := logDomain("log", x); err != nil {
		return v, err
	}
	if IsInf(x, 1) {
		return x, nil
	}
	frac, exp := logReduce(x)
	return lnSeries(frac) + float64(exp)*K_LN2, nil
}

// Log is the natural logarithm. Log(0) is -Inf, negative input is NaN.
func Log(x float64) float64 {
	v, _ := LogChecked(x)
	return v
}

// Log2Checked is the base-2 logarithm reporting core.ErrDomain for x <= 0.
// Exact powers of two produce exact integers.
func Log2Checked(x float64) (float64, error) {
	if v, err := logDomain("log2", x); err != nil {
		return v, err
	}
	if IsInf(x, 1) {
		return x, nil
	}
	frac, exp := logReduce(x)
	if frac == 1 {
		return float64(exp), nil
	}
	return float64(exp) + lnSeries(frac)/K_LN2, nil
}

func Log2(x float64) float64 {
	v, _ := Log2Checked(x)
	return v
}

func Log10(x float64) float64 {
	v, err := LogChecked(x)
	if err != nil {
		return v
	}
	return v / K_LN10
}

func isIntegral(x float64) bool {
	return Trunc(x) == x && !IsInf(x, 0)
}

func powUint(a float64, n uint64) float64 {
	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= a
		}
		a *= a
		n >>= 1
	}
	return result
}

/**
 * @brief Raises a to the power b. Integer exponents use repeated squaring,
 * fractional ones go through Exp(b*Log(a)).
 */
func Pow(a, b float64) float64 {
	v, _ := PowChecked(a, b)
	return v
}

// PowChecked is Pow reporting core.ErrDomain for a negative base with a
// fractional exponent, and for zero raised to a negative power.
func PowChecked(a, b float64) (float64, error) {
	switch {
	case IsNaN(a) || IsNaN(b):
		return nan(), fmt.Errorf("pow(%g, %g): %w", a, b, core.ErrDomain)
	case b == 0:
		return 1, nil
	case a == 0 && b < 0:
		return m.Inf(1), fmt.Errorf("pow(0, %g): %w", b, core.ErrDomain)
	case a == 0:
		return 0, nil
	}

	if isIntegral(b) && Abs(b) < 1<<63 {
		r := powUint(a, uint64(Abs(b)))
		if b < 0 {
			r = 1 / r
		}
		return r, nil
	}

	if a < 0 {
		if !isIntegral(b) {
			return nan(), fmt.Errorf("pow(%g, %g): %w", a, b, core.ErrDomain)
		}
		// |b| >= 2^63 is always even
		a = -a
	}
	return Exp(b * Log(a)), nil
}

// ------------------------------------------
// Hyperbolic functions
// ------------------------------------------

func Sinh(x float64) float64 {
	return (Exp(x) - Exp(-x)) / 2
}

func Cosh(x float64) float64 {
	return (Exp(x) + Exp(-x)) / 2
}

func Tanh(x float64) float64 {
	switch {
	case IsNaN(x):
		return nan()
	case x > 22:
		return 1
	case x < -22:
		return -1
	}
	e2x := Exp(2 * x)
	return (e2x - 1) / (e2x + 1)
}

func Coth(x float64) float64 {
	return 1 / Tanh(x)
}

func Sech(x float64) float64 {
	return 1 / Cosh(x)
}

func Csch(x float64) float64 {
	return 1 / Sinh(x)
}
