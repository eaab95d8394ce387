package math

import (
	"fmt"
	"math/bits"

	"github.com/spaghettifunk/icemath/engine/core"
)

// Prime reports whether n is a prime number. Trial division stops at sqrt(n).
func Prime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// GCD returns the greatest common divisor using Euclid's algorithm.
// GCD(a, 0) == a.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, 0 if either is 0.
func LCM(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(a/GCD(a, b), b)
	if hi != 0 {
		return 0, fmt.Errorf("lcm(%d, %d): %w", a, b, core.ErrOverflow)
	}
	return lo, nil
}

func mulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

func addChecked(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// Fact returns n!. Anything past 20! overflows.
func Fact(n uint64) (uint64, error) {
	result := uint64(1)
	for i := uint64(2); i <= n; i++ {
		var ok bool
		if result, ok = mulChecked(result, i); !ok {
			return 0, fmt.Errorf("fact(%d): %w", n, core.ErrOverflow)
		}
	}
	return result, nil
}

// DoubleFact returns n!! = n*(n-2)*(n-4)*...; 0!! == 1!! == 1.
func DoubleFact(n uint64) (uint64, error) {
	result := uint64(1)
	for i := n; i > 1; i -= 2 {
		var ok bool
		if result, ok = mulChecked(result, i); !ok {
			return 0, fmt.Errorf("double fact(%d): %w", n, core.ErrOverflow)
		}
	}
	return result, nil
}

// Fib returns the n-th Fibonacci number with Fib(0) == 0 and Fib(1) == 1.
func Fib(n uint64) (uint64, error) {
	a, b := uint64(0), uint64(1)
	for i := uint64(0); i < n; i++ {
		next, ok := addChecked(a, b)
		if !ok && i+1 < n {
			return 0, fmt.Errorf("fib(%d): %w", n, core.ErrOverflow)
		}
		a, b = b, next
	}
	return a, nil
}

// Catalan returns the n-th Catalan number, C(0) == 1, using
// C(i+1) = C(i) * 2(2i+1) / (i+2).
func Catalan(n uint64) (uint64, error) {
	c := uint64(1)
	for i := uint64(0); i < n; i++ {
		hi, lo := bits.Mul64(c, 2*(2*i+1))
		if hi >= i+2 {
			return 0, fmt.Errorf("catalan(%d): %w", n, core.ErrOverflow)
		}
		c, _ = bits.Div64(hi, lo, i+2)
	}
	return c, nil
}

// Padovan returns P(n) with P(0) == P(1) == P(2) == 1 and P(n) = P(n-2) + P(n-3).
func Padovan(n uint64) (uint64, error) {
	// p0, p1, p2 hold P(i), P(i+1), P(i+2)
	p0, p1, p2 := uint64(1), uint64(1), uint64(1)
	for i := uint64(0); i < n; i++ {
		next, ok := addChecked(p0, p1)
		if !ok && i+3 <= n {
			return 0, fmt.Errorf("padovan(%d): %w", n, core.ErrOverflow)
		}
		p0, p1, p2 = p1, p2, next
	}
	return p0, nil
}

// Moser returns the n-th term of the Moser-de Bruijn sequence (sums of distinct
// powers of 4): S(0) = 0, S(2n) = 4*S(n), S(2n+1) = 4*S(n) + 1.
func Moser(n uint64) (uint64, error) {
	if n >= 1<<32 {
		return 0, fmt.Errorf("moser(%d): %w", n, core.ErrOverflow)
	}
	result := uint64(0)
	for i := 0; n != 0; i++ {
		if n&1 == 1 {
			result |= 1 << (2 * i)
		}
		n >>= 1
	}
	return result, nil
}

// Binomial returns n choose k, 0 when k > n.
func Binomial(n, k uint64) (uint64, error) {
	if k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}
	result := uint64(1)
	for i := uint64(1); i <= k; i++ {
		// result*(n-k+i) is always divisible by i
		hi, lo := bits.Mul64(result, n-k+i)
		if hi >= i {
			return 0, fmt.Errorf("binomial(%d, %d): %w", n, k, core.ErrOverflow)
		}
		result, _ = bits.Div64(hi, lo, i)
	}
	return result, nil
}

// DivisorSum returns the sum of the proper divisors of n (every divisor but n
// itself). DivisorSum(0) and DivisorSum(1) are 0.
func DivisorSum(n uint64) (uint64, error) {
	if n < 2 {
		return 0, nil
	}
	sum := uint64(1)
	for i := uint64(2); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		var ok bool
		if sum, ok = addChecked(sum, i); !ok {
			return 0, fmt.Errorf("divisor sum(%d): %w", n, core.ErrOverflow)
		}
		if other := n / i; other != i {
			if sum, ok = addChecked(sum, other); !ok {
				return 0, fmt.Errorf("divisor sum(%d): %w", n, core.ErrOverflow)
			}
		}
	}
	return sum, nil
}

// Perfect reports whether n equals the sum of its proper divisors.
func Perfect(n uint64) bool {
	s, err := DivisorSum(n)
	return err == nil && n > 0 && s == n
}

// Abundant reports whether the proper divisors of n add up to more than n.
func Abundant(n uint64) bool {
	s, err := DivisorSum(n)
	return err != nil || s > n
}

// Deficient reports whether the proper divisors of n add up to less than n.
func Deficient(n uint64) bool {
	s, err := DivisorSum(n)
	return err == nil && s < n
}

// Amicable reports whether a and b are distinct and each equals the divisor
// sum of the other.
func Amicable(a, b uint64) bool {
	if a == b {
		return false
	}
	sa, err := DivisorSum(a)
	if err != nil || sa != b {
		return false
	}
	sb, err := DivisorSum(b)
	return err == nil && sb == a
}

// RotL32 rotates x left by k bits.
func RotL32(x uint32, k int) uint32 {
	return bits.RotateLeft32(x, k)
}

// RotR32 rotates x right by k bits.
func RotR32(x uint32, k int) uint32 {
	return bits.RotateLeft32(x, -k)
}
