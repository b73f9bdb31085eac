package search

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/peptide/energy"
	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/template"
)

// deadlineMask spaces out wall-clock probes to every 256th node.
const deadlineMask = 255

// engine holds the mutable state of one Solve call.
type engine struct {
	tmpl   template.Template
	target int
	opts   Options

	start    time.Time
	deadline time.Time

	queue []*peptide.Peptide
	seen  map[string]struct{}
	res   Result
}

// Solve enumerates every assembly reachable for t and returns the energy
// range of the complete ones. See the package documentation for the meaning
// of each Status and the errors that accompany it.
func Solve(t template.Template, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{Status: Aborted, Range: template.UnknownRange()}, o.err
	}
	if err := t.Validate(); err != nil {
		return Result{Status: Aborted, Range: template.UnknownRange()}, err
	}

	e := newEngine(t, o)
	err := e.run()
	return e.res, err
}

func newEngine(t template.Template, o Options) *engine {
	e := &engine{
		tmpl:   t,
		target: t.Size(),
		opts:   o,
		start:  time.Now(),
		queue:  []*peptide.Peptide{t.Start()},
		seen:   make(map[string]struct{}),
		res:    Result{Range: template.UnknownRange()},
	}
	if o.TimeLimit > 0 {
		e.deadline = e.start.Add(o.TimeLimit)
	}
	return e
}

// run drains the queue, then tags the result.
func (e *engine) run() error {
	log := e.opts.Logger.With(zap.String("template", e.tmpl.Title), zap.Int("size", e.target))
	log.Debug("search started")

	for len(e.queue) > 0 {
		if err := e.checkBudget(); err != nil {
			return e.abort(log, err)
		}

		cur := e.queue[0]
		e.queue[0] = nil
		e.queue = e.queue[1:]

		key := cur.Key()
		if _, ok := e.seen[key]; ok {
			continue
		}
		// only new assemblies count against the node budget
		if e.opts.MaxNodes > 0 && e.res.Explored >= e.opts.MaxNodes {
			return e.abort(log, ErrNodeLimit)
		}
		e.seen[key] = struct{}{}
		e.res.Explored++

		if cur.Len() == e.target {
			en := energy.Score(cur)
			e.res.Range = e.res.Range.Include(en)
			e.res.Completed++
			e.opts.OnComplete(cur, en)
		}

		for _, opt := range template.EnumerateOptions(e.tmpl, cur) {
			next := cur.Clone()
			if err := opt.Apply(next); err != nil {
				// EnumerateOptions only offers empty cells next to occupied ones.
				return fmt.Errorf("search: applying %+v: %w", opt, err)
			}
			e.queue = append(e.queue, next)
		}

		if e.res.Explored%e.opts.ProgressEvery == 0 {
			log.Debug("search progress",
				zap.Int("explored", e.res.Explored),
				zap.Int("queued", len(e.queue)),
				zap.Int("completed", e.res.Completed))
		}
	}

	e.res.Elapsed = time.Since(e.start)
	if e.res.Completed == 0 {
		e.res.Status = Unsolvable
		log.Info("search found no complete assembly", zap.Int("explored", e.res.Explored))
		return ErrUnsolvable
	}
	e.res.Status = Complete
	log.Info("search complete",
		zap.Int("explored", e.res.Explored),
		zap.Int("completed", e.res.Completed),
		zap.Float64("min", e.res.Range.Min),
		zap.Float64("max", e.res.Range.Max),
		zap.Duration("elapsed", e.res.Elapsed))
	return nil
}

// checkBudget returns the reason to stop before the next dequeue, if any.
// The node budget is checked separately, after the dedup gate.
func (e *engine) checkBudget() error {
	if err := e.opts.Ctx.Err(); err != nil {
		return err
	}
	if !e.deadline.IsZero() && e.res.Explored&deadlineMask == 0 && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}
	return nil
}

func (e *engine) abort(log *zap.Logger, cause error) error {
	e.res.Elapsed = time.Since(e.start)
	e.res.Status = Aborted
	if e.res.Completed > 0 {
		e.res.Status = Partial
	}
	log.Info("search aborted",
		zap.Error(cause),
		zap.Stringer("status", e.res.Status),
		zap.Int("explored", e.res.Explored),
		zap.Int("completed", e.res.Completed))
	return fmt.Errorf("%w: %w", ErrSearchAborted, cause)
}
