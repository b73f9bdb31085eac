package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/template"
)

// Sentinel errors for Solve.
var (
	// ErrUnsolvable is returned when no complete assembly is reachable.
	ErrUnsolvable = errors.New("search: no complete assembly reachable")
	// ErrSearchAborted is returned when a budget or the context stops the
	// search early. It wraps the specific cause.
	ErrSearchAborted = errors.New("search: aborted")
	// ErrNodeLimit is the cause when the node budget is exhausted.
	ErrNodeLimit = errors.New("search: node budget exhausted")
	// ErrTimeLimit is the cause when the time budget is exhausted.
	ErrTimeLimit = errors.New("search: time budget exhausted")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Status tags how a search ended.
type Status int

const (
	// Complete: the whole space was enumerated and Range is exact.
	Complete Status = iota
	// Unsolvable: the whole space was enumerated without a complete assembly.
	Unsolvable
	// Partial: stopped early; Range covers the complete assemblies seen so far.
	Partial
	// Aborted: stopped early before any complete assembly was seen.
	Aborted
)

func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case Unsolvable:
		return "unsolvable"
	case Partial:
		return "partial"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of Solve.
type Result struct {
	Status Status
	// Range of complete-assembly energies; template.UnknownRange when none.
	Range template.Range
	// Explored counts distinct assemblies dequeued and expanded.
	Explored int
	// Completed counts distinct complete assemblies scored.
	Completed int
	// Elapsed is the wall-clock time spent searching.
	Elapsed time.Duration
}

// Option configures Solve via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds the parameters and hooks of a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per node.
	Ctx context.Context

	// MaxNodes, if > 0, stops the search after that many distinct
	// assemblies have been expanded.
	MaxNodes int

	// TimeLimit, if > 0, stops the search once it has run this long.
	TimeLimit time.Duration

	// Logger receives progress at Debug and the outcome at Info.
	Logger *zap.Logger

	// ProgressEvery is the number of expanded nodes between progress logs.
	ProgressEvery int

	// OnComplete is called for every distinct complete assembly with its
	// energy. The assembly belongs to the search and must not be modified.
	OnComplete func(p *peptide.Peptide, energy float64)

	err error
}

// DefaultOptions returns Options with no budgets, a background context and
// a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        zap.NewNop(),
		ProgressEvery: 100_000,
		OnComplete:    func(*peptide.Peptide, float64) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxNodes bounds the number of expanded assemblies.
//
//	n > 0: limit to n
//	n == 0: no limit
//	n < 0: invalid → ErrOptionViolation
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithTimeLimit bounds the wall-clock time of the search; 0 disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgressEvery sets how many expanded nodes pass between progress logs.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: ProgressEvery must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.ProgressEvery = n
	}
}

// WithOnComplete registers a hook for every distinct complete assembly.
func WithOnComplete(fn func(p *peptide.Peptide, energy float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}
