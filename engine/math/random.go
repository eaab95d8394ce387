package math

import (
	"sync"

	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/icemath/engine/core"
)

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// MersenneTwister is an MT19937 generator. It implements rand.Source from
// golang.org/x/exp/rand and is not safe for concurrent use.
type MersenneTwister struct {
	state [mtN]uint32
	index int
}

// NewMersenneTwister returns a generator seeded with seed.
func NewMersenneTwister(seed uint64) *MersenneTwister {
	mt := &MersenneTwister{}
	mt.Seed(seed)
	return mt
}

// Seed resets the state. The two halves of seed are folded into the 32-bit
// seed of the reference algorithm, so seeds below 2^32 match it exactly.
func (mt *MersenneTwister) Seed(seed uint64) {
	mt.state[0] = uint32(seed ^ seed>>32)
	for i := 1; i < mtN; i++ {
		prev := mt.state[i-1]
		mt.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	mt.index = mtN
}

func (mt *MersenneTwister) twist() {
	for i := 0; i < mtN; i++ {
		y := (mt.state[i] & mtUpperMask) | (mt.state[(i+1)%mtN] & mtLowerMask)
		next := mt.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		mt.state[i] = next
	}
	mt.index = 0
}

// Uint32 returns the next tempered 32-bit output.
func (mt *MersenneTwister) Uint32() uint32 {
	if mt.index >= mtN {
		mt.twist()
	}
	y := mt.state[mt.index]
	mt.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 concatenates two successive 32-bit outputs, high word first.
func (mt *MersenneTwister) Uint64() uint64 {
	hi := uint64(mt.Uint32())
	return hi<<32 | uint64(mt.Uint32())
}

// Next returns a float64 in [0, 1) with 53-bit resolution.
func (mt *MersenneTwister) Next() float64 {
	a := float64(mt.Uint32() >> 5)
	b := float64(mt.Uint32() >> 6)
	return (a*67108864.0 + b) * (1.0 / 9007199254740992.0)
}

var _ rand.Source = (*MersenneTwister)(nil)

// process-wide generator, seeded once on first use
var (
	randomOnce sync.Once
	randomMu   sync.Mutex
	randomMT   *MersenneTwister
	randomRand *rand.Rand
)

func globalRandom() {
	randomOnce.Do(func() {
		seed := uint64(core.AbsoluteTime() * 1e9)
		randomMT = NewMersenneTwister(seed)
		randomRand = rand.New(randomMT)
	})
}

// SeedRandom reseeds the process-wide generator, making later draws reproducible.
func SeedRandom(seed uint64) {
	globalRandom()
	randomMu.Lock()
	defer randomMu.Unlock()
	randomMT.Seed(seed)
}

// Random returns a value in [0, 1) from the process-wide generator.
func Random() float64 {
	globalRandom()
	randomMu.Lock()
	defer randomMu.Unlock()
	return randomMT.Next()
}

// RandomInRange returns an integer in [min, max]. The bounds are swapped when
// min > max.
func RandomInRange(min, max int64) int64 {
	if min > max {
		min, max = max, min
	}
	globalRandom()
	randomMu.Lock()
	defer randomMu.Unlock()

	span := uint64(max-min) + 1
	if span == 0 {
		// the full int64 range
		return int64(randomRand.Uint64())
	}
	return min + int64(randomRand.Uint64n(span))
}

// FRandomInRange returns a value in [min, max).
func FRandomInRange(min, max float64) float64 {
	return min + Random()*(max-min)
}
