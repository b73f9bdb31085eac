package energy_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/peptide/energy"
	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/unit"
)

// BenchmarkScore measures scoring on a random 64-cell peptide.
func BenchmarkScore(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	p := peptide.NewRoot(unit.Arg)
	for i := 0; i < 63; i++ {
		p.MutateGrowth(rng)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = energy.Score(p)
	}
}
