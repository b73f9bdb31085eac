package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGFromSeed_ZeroPolicy(t *testing.T) {
	assert.Equal(t, rngFromSeed(0).Int63(), rngFromSeed(defaultSeed).Int63())
	assert.NotEqual(t, rngFromSeed(2).Int63(), rngFromSeed(3).Int63())
}

func TestDeriveRNG_IndependentStreams(t *testing.T) {
	base := rand.New(rand.NewSource(11))
	a := deriveRNG(base, 0)
	b := deriveRNG(base, 1)
	assert.NotEqual(t, a.Int63(), b.Int63())

	x := deriveRNG(rand.New(rand.NewSource(11)), 0)
	y := deriveRNG(rand.New(rand.NewSource(11)), 0)
	assert.Equal(t, x.Int63(), y.Int63())
}

func TestDeriveSeed_Avalanche(t *testing.T) {
	assert.NotEqual(t, deriveSeed(1, 0), deriveSeed(1, 1))
	assert.NotEqual(t, deriveSeed(1, 0), deriveSeed(2, 0))
	assert.Equal(t, deriveSeed(5, 9), deriveSeed(5, 9))
}
