package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/search"
)

var (
	// ErrInvalidCount is returned by Batch for a non-positive count.
	ErrInvalidCount = errors.New("generator: count must be positive")
)

// Default growth bounds, inclusive.
const (
	DefaultMinGrowth = 4
	DefaultMaxGrowth = 12
)

// DefaultRetries is how many extra shapes are grown when one cannot be
// completed under its own matching rules or exhausts the node budget.
const DefaultRetries = 32

// Description is the placeholder description of every generated template.
const Description = "A randomly grown peptide. Fold it as tightly as you can."

// Option customizes generation. Constructors panic on programmer errors.
type Option func(*options)

type options struct {
	rng                  *rand.Rand
	minGrowth, maxGrowth int
	workers              int
	retries              int
	search               []search.Option
	logger               *zap.Logger
	grow                 func(rng *rand.Rand, minSteps, maxSteps int) *peptide.Peptide
}

func newOptions(opts []Option) options {
	o := options{
		minGrowth: DefaultMinGrowth,
		maxGrowth: DefaultMaxGrowth,
		workers:   runtime.GOMAXPROCS(0),
		retries:   DefaultRetries,
		logger:    zap.NewNop(),
		grow:      Grow,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rngFromClock()
	}
	return o
}

// WithSeed makes generation reproducible. Seed 0 is a valid fixed seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rngFromSeed(seed) }
}

// WithRand uses r as the random source. Panics if r is nil.
// r must not be shared with other goroutines while generation runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithGrowth sets the inclusive bounds on the number of growth steps.
// Panics if min < 0 or max < min.
func WithGrowth(min, max int) Option {
	if min < 0 || max < min {
		panic(fmt.Sprintf("generator: WithGrowth(%d, %d): need 0 <= min <= max", min, max))
	}
	return func(o *options) {
		o.minGrowth = min
		o.maxGrowth = max
	}
}

// WithWorkers bounds the goroutines used by Batch. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("generator: WithWorkers(%d): need at least one worker", n))
	}
	return func(o *options) { o.workers = n }
}

// WithRetries sets how many times a template is regrown after its search
// ends in search.ErrUnsolvable or search.ErrNodeLimit. Zero returns the
// first failure. Panics if n < 0.
func WithRetries(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("generator: WithRetries(%d): need n >= 0", n))
	}
	return func(o *options) { o.retries = n }
}

// WithSearch passes options to search.Solve, e.g. budgets.
func WithSearch(opts ...search.Option) Option {
	return func(o *options) { o.search = append(o.search, opts...) }
}

// WithLogger sets the logger; it is also handed to the search.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
