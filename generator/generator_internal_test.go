package generator

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/peptide/notation"
	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/search"
)

// aliased has two Arg siblings with different subtrees: the matcher maps
// every Arg to the Down one, so the Phe pair is unreachable.
const aliased = `Arg at (0,0) -> (Down, Right), Arg at (0,-1) -> (Down), Asp at (0,-2),
	Arg at (1,0) -> (Up, Right), Phe at (1,1), Phe at (2,0)`

// scripted returns a grow func that hands out shapes in order.
func scripted(t *testing.T, srcs ...string) (func(*rand.Rand, int, int) *peptide.Peptide, *int) {
	t.Helper()
	shapes := make([]*peptide.Peptide, len(srcs))
	for i, src := range srcs {
		p, err := notation.Parse(src)
		require.NoError(t, err)
		shapes[i] = p
	}
	calls := 0
	return func(*rand.Rand, int, int) *peptide.Peptide {
		p := shapes[calls%len(shapes)].Clone()
		calls++
		return p
	}, &calls
}

func TestGenerate_UnsolvableWithoutRetries(t *testing.T) {
	grow, calls := scripted(t, aliased)
	o := newOptions([]Option{WithSeed(1), WithRetries(0)})
	o.grow = grow

	_, err := generate(context.Background(), o.rng, o)
	require.ErrorIs(t, err, search.ErrUnsolvable)
	assert.Equal(t, 1, *calls)
}

func TestGenerate_RegrowsUnsolvableShape(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	grow, calls := scripted(t, aliased, "Arg at (0,0) -> (Right), Asp at (1,0)")
	o := newOptions([]Option{WithSeed(1), WithRetries(1), WithLogger(zap.New(core))})
	o.grow = grow

	tmpl, err := generate(context.Background(), o.rng, o)
	require.NoError(t, err)
	assert.Equal(t, 2, *calls)
	assert.Equal(t, 2, tmpl.Size())
	assert.True(t, tmpl.Range.Valid())

	regrown := logs.FilterMessage("regrowing template").All()
	require.Len(t, regrown, 1)
	assert.Equal(t, int64(1), regrown[0].ContextMap()["attempt"])
}

func TestGenerate_RetriesExhausted(t *testing.T) {
	grow, calls := scripted(t, aliased)
	o := newOptions([]Option{WithSeed(1), WithRetries(3)})
	o.grow = grow

	_, err := generate(context.Background(), o.rng, o)
	require.ErrorIs(t, err, search.ErrUnsolvable)
	assert.Equal(t, 4, *calls)
}

func TestGenerate_CancellationNotRetried(t *testing.T) {
	grow, calls := scripted(t, "Arg at (0,0) -> (Right), Asp at (1,0)")
	o := newOptions([]Option{WithSeed(1), WithRetries(5)})
	o.grow = grow

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := generate(ctx, o.rng, o)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, *calls)
}
