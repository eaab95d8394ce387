package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/icemath/engine/core"
	"github.com/spaghettifunk/icemath/engine/math"
)

func TestRegistryCall(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		fn   string
		args []float64
		want float64
	}{
		{"sqrt", []float64{16}, 4},
		{"pow", []float64{2, 10}, 1024},
		{"gcd", []float64{48, 18}, 6},
		{"fact", []float64{5}, 120},
		{"prime", []float64{7}, 1},
		{"prime", []float64{8}, 0},
		{"fib", []float64{10}, 55},
		{"binomial", []float64{5, 2}, 10},
		{"amicable", []float64{220, 284}, 1},
		{"rotl32", []float64{0x80000001, 1}, 3},
		{"rotr32", []float64{3, 1}, 0x80000001},
		{"log2", []float64{1024}, 10},
		{"clamp", []float64{9, 0, 5}, 5},
		{"min", []float64{2, -3}, -3},
		{"round", []float64{-2.5}, -3},
	}
	for _, tt := range tests {
		got, err := r.Call(tt.fn, tt.args)
		require.NoError(t, err, tt.fn)
		assert.Equal(t, tt.want, got, "%s%v", tt.fn, tt.args)
	}

	got, err := r.Call("sin", []float64{math.K_HALF_PI})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-6)
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()

	_, err := r.Call("nope", nil)
	assert.ErrorIs(t, err, core.ErrUnknownFunction)

	_, err = r.Call("sqrt", []float64{1, 2})
	assert.ErrorIs(t, err, core.ErrArity)

	_, err = r.Call("sqrt", []float64{-1})
	assert.ErrorIs(t, err, core.ErrDomain)

	_, err = r.Call("log", []float64{0})
	assert.ErrorIs(t, err, core.ErrDomain)

	_, err = r.Call("fact", []float64{2.5})
	assert.ErrorIs(t, err, core.ErrDomain)

	_, err = r.Call("gcd", []float64{-4, 2})
	assert.ErrorIs(t, err, core.ErrDomain)

	_, err = r.Call("fact", []float64{21})
	assert.ErrorIs(t, err, core.ErrOverflow)

	_, err = r.Call("rotl32", []float64{1 << 33, 1})
	assert.ErrorIs(t, err, core.ErrDomain)
}

func TestRegistryRandom(t *testing.T) {
	r := NewRegistry()
	math.SeedRandom(3)

	v, err := r.Call("rand", nil)
	require.NoError(t, err)
	assert.True(t, v >= 0 && v < 1)

	v, err = r.Call("rand_range", []float64{1, 6})
	require.NoError(t, err)
	assert.True(t, v >= 1 && v <= 6)
	assert.Equal(t, math.Trunc(v), v)
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	names := r.Names()

	assert.IsIncreasing(t, names)
	for _, want := range []string{"sin", "cos", "sqrt", "pow", "log", "exp", "fib", "catalan", "padovan", "moser", "rand"} {
		assert.Contains(t, names, want)
	}
	for _, name := range names {
		f, ok := r.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, name, f.Name)
		assert.NotEmpty(t, f.Doc)
	}

	_, ok := r.Lookup("missing")
	assert.False(t, ok)
}
