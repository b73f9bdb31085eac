package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/search"
	"github.com/katalvlaran/peptide/template"
	"github.com/katalvlaran/peptide/unit"
)

// maxTitleNumber bounds the number in "Random Peptide #<n>".
const maxTitleNumber = 9999

// Generate grows and solves one random template. A shape whose search is
// unsolvable or runs out of nodes is regrown, up to the configured retries;
// the last failure is returned.
func Generate(opts ...Option) (template.Template, error) {
	o := newOptions(opts)
	return generate(context.Background(), o.rng, o)
}

// Batch generates n templates concurrently. For a fixed seed the result is
// identical to any other run with the same seed, n and growth bounds.
func Batch(ctx context.Context, n int, opts ...Option) ([]template.Template, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	o := newOptions(opts)

	streams := make([]*rand.Rand, n)
	for i := range streams {
		streams[i] = deriveRNG(o.rng, uint64(i))
	}

	out := make([]template.Template, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range out {
		g.Go(func() error {
			t, err := generate(gctx, streams[i], o)
			if err != nil {
				return fmt.Errorf("generator: template %d: %w", i, err)
			}
			out[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	o.logger.Info("batch generated", zap.Int("count", n), zap.Int("workers", o.workers))
	return out, nil
}

// generate grows shapes until one solves or the retries run out. Each
// attempt draws from rng in a fixed order: root type, step count, growth
// steps, title number, ID.
func generate(ctx context.Context, rng *rand.Rand, o options) (template.Template, error) {
	for attempt := 0; ; attempt++ {
		t, err := attemptOnce(ctx, rng, o)
		if err == nil || attempt >= o.retries || !regrowable(err) {
			return t, err
		}
		o.logger.Debug("regrowing template", zap.Int("attempt", attempt+1), zap.Error(err))
	}
}

// regrowable reports whether a fresh shape may succeed where this one did not.
// Cancellation and the time limit are never retried.
func regrowable(err error) bool {
	return errors.Is(err, search.ErrUnsolvable) || errors.Is(err, search.ErrNodeLimit)
}

func attemptOnce(ctx context.Context, rng *rand.Rand, o options) (template.Template, error) {
	shape := o.grow(rng, o.minGrowth, o.maxGrowth)

	title := fmt.Sprintf("Random Peptide #%d", 1+rng.Intn(maxTitleNumber))
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return template.Template{}, fmt.Errorf("generator: drawing id: %w", err)
	}

	t, err := template.New(title, Description, shape)
	if err != nil {
		// MutateGrowth only attaches to existing cells, so this is a bug.
		return template.Template{}, fmt.Errorf("generator: grown shape: %w", err)
	}
	t.ID = id.String()

	sopts := make([]search.Option, 0, len(o.search)+2)
	sopts = append(sopts, search.WithContext(ctx), search.WithLogger(o.logger))
	sopts = append(sopts, o.search...)
	res, err := search.Solve(t, sopts...)
	if err != nil {
		return template.Template{}, fmt.Errorf("generator: solving %q: %w", title, err)
	}
	t.Range = res.Range

	o.logger.Debug("template generated",
		zap.String("id", t.ID),
		zap.String("title", t.Title),
		zap.Int("size", t.Size()),
		zap.Int("assemblies", res.Completed),
		zap.Float64("min", t.Range.Min),
		zap.Float64("max", t.Range.Max))
	return t, nil
}

// Grow returns a random tree: a uniformly chosen root followed by between
// minSteps and maxSteps (inclusive) growth steps. It panics if
// maxSteps < minSteps.
func Grow(rng *rand.Rand, minSteps, maxSteps int) *peptide.Peptide {
	shape := peptide.NewRoot(unit.All[rng.Intn(len(unit.All))])
	steps := minSteps + rng.Intn(maxSteps-minSteps+1)
	for range steps {
		shape.MutateGrowth(rng)
	}
	return shape
}
