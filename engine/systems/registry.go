package systems

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spaghettifunk/icemath/engine/core"
	"github.com/spaghettifunk/icemath/engine/math"
)

// Function is a named operation callable with float64 arguments.
type Function struct {
	Name  string
	Arity int
	Doc   string
	Fn    func(args []float64) (float64, error)
}

// Registry maps function names to Functions. It is read-only after
// construction and safe for concurrent lookups.
type Registry struct {
	funcs map[string]Function
}

// NewRegistry returns a registry holding every scalar and number theory
// operation plus the random number helpers.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Function)}
	for _, f := range builtins() {
		r.funcs[f.Name] = f
	}
	return r
}

func (r *Registry) Lookup(name string) (Function, bool) {
	f, ok := r.funcs[name]
	return f, ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.funcs))
}

// Call evaluates name with args.
func (r *Registry) Call(name string, args []float64) (float64, error) {
	f, ok := r.funcs[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, core.ErrUnknownFunction)
	}
	if len(args) != f.Arity {
		return 0, fmt.Errorf("%s takes %d arguments, got %d: %w", name, f.Arity, len(args), core.ErrArity)
	}
	return f.Fn(args)
}

// 2^64 as a float64
const maxUint64Float = 18446744073709551616.0

// toUint converts an argument of an integer operation, rejecting negative,
// fractional and out of range values.
func toUint(name string, x float64) (uint64, error) {
	if math.IsNaN(x) || x < 0 || x >= maxUint64Float || math.Trunc(x) != x {
		return 0, fmt.Errorf("%s: %g is not a non-negative integer: %w", name, x, core.ErrDomain)
	}
	return uint64(x), nil
}

func toUint32(name string, x float64) (uint32, error) {
	v, err := toUint(name, x)
	if err != nil {
		return 0, err
	}
	if v > 1<<32-1 {
		return 0, fmt.Errorf("%s: %g does not fit in 32 bits: %w", name, x, core.ErrDomain)
	}
	return uint32(v), nil
}

func toInt(name string, x float64) (int64, error) {
	if math.IsNaN(x) || math.Abs(x) >= 1<<63 || math.Trunc(x) != x {
		return 0, fmt.Errorf("%s: %g is not an integer: %w", name, x, core.ErrDomain)
	}
	return int64(x), nil
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func unary(name, doc string, fn func(float64) float64) Function {
	return Function{Name: name, Arity: 1, Doc: doc, Fn: func(a []float64) (float64, error) {
		return fn(a[0]), nil
	}}
}

func unaryChecked(name, doc string, fn func(float64) (float64, error)) Function {
	return Function{Name: name, Arity: 1, Doc: doc, Fn: func(a []float64) (float64, error) {
		return fn(a[0])
	}}
}

func binary(name, doc string, fn func(float64, float64) float64) Function {
	return Function{Name: name, Arity: 2, Doc: doc, Fn: func(a []float64) (float64, error) {
		return fn(a[0], a[1]), nil
	}}
}

func sequence(name, doc string, fn func(uint64) (uint64, error)) Function {
	return Function{Name: name, Arity: 1, Doc: doc, Fn: func(a []float64) (float64, error) {
		n, err := toUint(name, a[0])
		if err != nil {
			return 0, err
		}
		v, err := fn(n)
		return float64(v), err
	}}
}

func predicate(name, doc string, fn func(uint64) bool) Function {
	return Function{Name: name, Arity: 1, Doc: doc, Fn: func(a []float64) (float64, error) {
		n, err := toUint(name, a[0])
		if err != nil {
			return 0, err
		}
		return boolValue(fn(n)), nil
	}}
}

func pair(name, doc string, fn func(uint64, uint64) (uint64, error)) Function {
	return Function{Name: name, Arity: 2, Doc: doc, Fn: func(a []float64) (float64, error) {
		x, err := toUint(name, a[0])
		if err != nil {
			return 0, err
		}
		y, err := toUint(name, a[1])
		if err != nil {
			return 0, err
		}
		v, err := fn(x, y)
		return float64(v), err
	}}
}

func rotation(name, doc string, fn func(uint32, int) uint32) Function {
	return Function{Name: name, Arity: 2, Doc: doc, Fn: func(a []float64) (float64, error) {
		x, err := toUint32(name, a[0])
		if err != nil {
			return 0, err
		}
		k, err := toInt(name, a[1])
		if err != nil {
			return 0, err
		}
		return float64(fn(x, int(k%32))), nil
	}}
}

func builtins() []Function {
	return []Function{
		// trigonometry
		unary("sin", "sine, argument reduced to [-pi/2, pi/2]", math.Sin),
		unary("cos", "cosine, argument reduced to [-pi/2, pi/2]", math.Cos),
		unary("sin_series", "raw Taylor series of sine, no reduction", math.SinSeries),
		unary("cos_series", "raw Taylor series of cosine, no reduction", math.CosSeries),
		unary("tan", "tangent", math.Tan),
		unary("cot", "cotangent", math.Cot),
		unary("sec", "secant", math.Sec),
		unary("csc", "cosecant", math.Csc),
		unary("asin", "arcsine", math.Asin),
		unary("acos", "arccosine", math.Acos),
		unary("atan", "arctangent", math.Atan),
		binary("atan2", "angle of the point (x, y), called as atan2 y x", math.Atan2),
		unary("deg2rad", "degrees to radians", math.DegToRad),
		unary("rad2deg", "radians to degrees", math.RadToDeg),

		// roots, powers, logarithms
		unaryChecked("sqrt", "square root by Newton-Raphson", math.SqrtChecked),
		Function{Name: "pow", Arity: 2, Doc: "a raised to b", Fn: func(a []float64) (float64, error) {
			return math.PowChecked(a[0], a[1])
		}},
		unary("exp", "e raised to x", math.Exp),
		unaryChecked("log", "natural logarithm", math.LogChecked),
		unaryChecked("log2", "base 2 logarithm", math.Log2Checked),
		unaryChecked("log10", "base 10 logarithm", func(x float64) (float64, error) {
			v, err := math.LogChecked(x)
			if err != nil {
				return v, err
			}
			return math.Log10(x), nil
		}),

		// hyperbolic
		unary("sinh", "hyperbolic sine", math.Sinh),
		unary("cosh", "hyperbolic cosine", math.Cosh),
		unary("tanh", "hyperbolic tangent", math.Tanh),
		unary("coth", "hyperbolic cotangent", math.Coth),
		unary("sech", "hyperbolic secant", math.Sech),
		unary("csch", "hyperbolic cosecant", math.Csch),

		// helpers
		unary("abs", "absolute value", math.Abs),
		unary("floor", "round towards -inf", math.Floor),
		unary("ceil", "round towards +inf", math.Ceil),
		unary("round", "round half away from zero", math.Round),
		unary("trunc", "round towards zero", math.Trunc),
		unary("sign", "-1, 0 or 1", math.Sign),
		binary("mod", "floating remainder with the sign of the dividend", math.Mod),
		binary("min", "smaller of two values", math.Min[float64]),
		binary("max", "larger of two values", math.Max[float64]),
		Function{Name: "lerp", Arity: 3, Doc: "linear interpolation a + (b-a)*t", Fn: func(a []float64) (float64, error) {
			return math.Lerp(a[0], a[1], a[2]), nil
		}},
		Function{Name: "clamp", Arity: 3, Doc: "x clamped to [low, high]", Fn: func(a []float64) (float64, error) {
			return math.Clamp(a[0], a[1], a[2]), nil
		}},

		// number theory
		predicate("prime", "1 if n is prime", math.Prime),
		pair("gcd", "greatest common divisor", func(a, b uint64) (uint64, error) { return math.GCD(a, b), nil }),
		pair("lcm", "least common multiple", math.LCM),
		pair("binomial", "n choose k", math.Binomial),
		sequence("fact", "factorial", math.Fact),
		sequence("double_fact", "double factorial", math.DoubleFact),
		sequence("fib", "Fibonacci number, fib 0 = 0", math.Fib),
		sequence("catalan", "Catalan number", math.Catalan),
		sequence("padovan", "Padovan number, P(0) = P(1) = P(2) = 1", math.Padovan),
		sequence("moser", "Moser-de Bruijn sequence", math.Moser),
		sequence("divisor_sum", "sum of the proper divisors", math.DivisorSum),
		predicate("perfect", "1 if n equals its divisor sum", math.Perfect),
		predicate("abundant", "1 if the divisor sum exceeds n", math.Abundant),
		predicate("deficient", "1 if the divisor sum is below n", math.Deficient),
		Function{Name: "amicable", Arity: 2, Doc: "1 if a and b are an amicable pair", Fn: func(a []float64) (float64, error) {
			x, err := toUint("amicable", a[0])
			if err != nil {
				return 0, err
			}
			y, err := toUint("amicable", a[1])
			if err != nil {
				return 0, err
			}
			return boolValue(math.Amicable(x, y)), nil
		}},
		rotation("rotl32", "rotate a 32-bit word left", math.RotL32),
		rotation("rotr32", "rotate a 32-bit word right", math.RotR32),

		// random numbers
		Function{Name: "rand", Arity: 0, Doc: "uniform value in [0, 1)", Fn: func([]float64) (float64, error) {
			return math.Random(), nil
		}},
		Function{Name: "rand_range", Arity: 2, Doc: "uniform integer in [min, max]", Fn: func(a []float64) (float64, error) {
			lo, err := toInt("rand_range", a[0])
			if err != nil {
				return 0, err
			}
			hi, err := toInt("rand_range", a[1])
			if err != nil {
				return 0, err
			}
			return float64(math.RandomInRange(lo, hi)), nil
		}},
	}
}
