package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/icemath/engine/core"
)

func TestPrime(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 13, 97, 7919, 1_000_000_007}
	for _, p := range primes {
		assert.True(t, Prime(p), "%d", p)
	}
	composites := []uint64{0, 1, 4, 8, 9, 91, 7917, 1_000_000_007 * 3}
	for _, c := range composites {
		assert.False(t, Prime(c), "%d", c)
	}
}

func TestGCDAndLCM(t *testing.T) {
	assert.Equal(t, uint64(6), GCD(48, 18))
	assert.Equal(t, uint64(6), GCD(18, 48))
	assert.Equal(t, uint64(7), GCD(7, 0))
	assert.Equal(t, uint64(1), GCD(17, 5))

	l, err := LCM(4, 6)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), l)

	l, err = LCM(0, 6)
	require.NoError(t, err)
	assert.Zero(t, l)

	_, err = LCM(1<<63, 3)
	assert.ErrorIs(t, err, core.ErrOverflow)
}

func TestFactorials(t *testing.T) {
	f, err := Fact(5)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), f)

	f, err = Fact(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), f)

	f, err = Fact(20)
	require.NoError(t, err)
	assert.Equal(t, uint64(2432902008176640000), f)

	_, err = Fact(21)
	assert.ErrorIs(t, err, core.ErrOverflow)

	for n, want := range []uint64{1, 1, 2, 3, 8, 15, 48, 105} {
		got, err := DoubleFact(uint64(n))
		require.NoError(t, err)
		assert.Equal(t, want, got, "%d!!", n)
	}
}

func TestSequences(t *testing.T) {
	type seqFn func(uint64) (uint64, error)
	tests := []struct {
		name string
		fn   seqFn
		want []uint64
	}{
		{"fib", Fib, []uint64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}},
		{"catalan", Catalan, []uint64{1, 1, 2, 5, 14, 42, 132, 429, 1430, 4862, 16796}},
		{"padovan", Padovan, []uint64{1, 1, 1, 2, 2, 3, 4, 5, 7, 9, 12, 16, 21}},
		{"moser", Moser, []uint64{0, 1, 4, 5, 16, 17, 20, 21, 64, 65}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for n, want := range tt.want {
				got, err := tt.fn(uint64(n))
				require.NoError(t, err)
				assert.Equal(t, want, got, "%s(%d)", tt.name, n)
			}
		})
	}
}

func TestSequenceOverflow(t *testing.T) {
	f, err := Fib(93)
	require.NoError(t, err)
	assert.Equal(t, uint64(12200160415121876738), f)
	_, err = Fib(94)
	assert.ErrorIs(t, err, core.ErrOverflow)

	c, err := Catalan(36)
	require.NoError(t, err)
	assert.Equal(t, uint64(11959798385860453492), c)
	_, err = Catalan(37)
	assert.ErrorIs(t, err, core.ErrOverflow)

	_, err = Padovan(1000)
	assert.ErrorIs(t, err, core.ErrOverflow)

	_, err = Moser(1 << 32)
	assert.ErrorIs(t, err, core.ErrOverflow)
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k, want uint64
	}{
		{5, 2, 10},
		{5, 0, 1},
		{5, 5, 1},
		{10, 11, 0},
		{52, 5, 2598960},
		{67, 33, 14226520737620288370},
	}
	for _, tt := range tests {
		got, err := Binomial(tt.n, tt.k)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "C(%d, %d)", tt.n, tt.k)
	}

	_, err := Binomial(68, 34)
	assert.ErrorIs(t, err, core.ErrOverflow)
}

func TestDivisorClassification(t *testing.T) {
	s, err := DivisorSum(28)
	require.NoError(t, err)
	assert.Equal(t, uint64(28), s)

	s, err = DivisorSum(36)
	require.NoError(t, err)
	assert.Equal(t, uint64(1+2+3+4+6+9+12+18), s)

	assert.True(t, Perfect(6))
	assert.True(t, Perfect(496))
	assert.False(t, Perfect(0))
	assert.True(t, Abundant(12))
	assert.False(t, Abundant(28))
	assert.True(t, Deficient(8))
	assert.True(t, Deficient(13))
	assert.True(t, Amicable(220, 284))
	assert.True(t, Amicable(284, 220))
	assert.False(t, Amicable(6, 6))
	assert.False(t, Amicable(10, 12))
}

func TestRotations(t *testing.T) {
	assert.Equal(t, uint32(0x00000003), RotL32(0x80000001, 1))
	assert.Equal(t, uint32(0x80000001), RotR32(0x00000003, 1))
	assert.Equal(t, uint32(0x12345678), RotL32(0x12345678, 32))
	assert.Equal(t, uint32(0x23456781), RotL32(0x12345678, 4))
}
