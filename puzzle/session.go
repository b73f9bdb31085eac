package puzzle

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/peptide/energy"
	"github.com/katalvlaran/peptide/lattice"
	"github.com/katalvlaran/peptide/level"
	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/template"
	"github.com/katalvlaran/peptide/unit"
)

var (
	// ErrNoSelection indicates an operation that needs a selected cell.
	ErrNoSelection = errors.New("puzzle: no cell selected")
	// ErrNoMove indicates that no unit can be placed in the requested direction.
	ErrNoMove = errors.New("puzzle: no legal move in that direction")
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session is one attempt at a template.
type Session struct {
	tmpl template.Template
	asm  *peptide.Peptide

	selected lattice.Vec
	hasSel   bool
	cycle    int

	log *zap.Logger
}

// New starts a session with the template's root alone.
func New(t template.Template, opts ...Option) (*Session, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	s := &Session{tmpl: t, asm: t.Start(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("template", t.Title))
	return s, nil
}

// Template returns the target.
func (s *Session) Template() template.Template { return s.tmpl }

// Assembly returns a copy of the player's assembly.
func (s *Session) Assembly() *peptide.Peptide { return s.asm.Clone() }

// Selected returns the selected cell.
func (s *Session) Selected() (lattice.Vec, bool) { return s.selected, s.hasSel }

// Select makes pos the selected cell. pos must be occupied and have a
// template counterpart.
func (s *Session) Select(pos lattice.Vec) error {
	if !s.asm.Has(pos) {
		return fmt.Errorf("%w: %v", peptide.ErrEmpty, pos)
	}
	if _, ok := s.tmpl.Locate(s.asm, pos); !ok {
		return fmt.Errorf("%w: %v", template.ErrUnmatched, pos)
	}
	s.selected, s.hasSel, s.cycle = pos, true, 0
	s.log.Debug("selected", zap.Stringer("pos", pos))
	return nil
}

// Deselect clears the selection.
func (s *Session) Deselect() {
	s.hasSel, s.cycle = false, 0
}

// Moves returns the options from the selected cell. An unmatched selection
// is cleared and reported as template.ErrUnmatched.
func (s *Session) Moves() ([]template.Option, error) {
	if !s.hasSel {
		return nil, ErrNoSelection
	}
	opts, err := template.Options(s.tmpl, s.asm, s.selected)
	if err != nil {
		s.log.Debug("selection dropped", zap.Stringer("pos", s.selected), zap.Error(err))
		s.Deselect()
		return nil, err
	}
	return opts, nil
}

// Candidates lists the types that can be placed from the selection toward
// dir, in the order the template lists its children.
func (s *Session) Candidates(dir lattice.Direction) ([]unit.Type, error) {
	opts, err := s.Moves()
	if err != nil {
		return nil, err
	}
	var out []unit.Type
	for _, o := range opts {
		if o.Dir == dir {
			out = append(out, o.Type)
		}
	}
	return out, nil
}

// Cycle shifts which candidate the next Place picks. Negative steps go back.
func (s *Session) Cycle(step int) {
	s.cycle += step
}

// Place attaches the current candidate next to the selection toward dir and
// returns the applied option. The selection stays on the parent.
func (s *Session) Place(dir lattice.Direction) (template.Option, error) {
	types, err := s.Candidates(dir)
	if err != nil {
		return template.Option{}, err
	}
	if len(types) == 0 {
		return template.Option{}, fmt.Errorf("%w: %v from %v", ErrNoMove, dir, s.selected)
	}
	i := s.cycle % len(types)
	if i < 0 {
		i += len(types)
	}
	opt := template.Option{Type: types[i], Pos: s.selected.Step(dir), Dir: dir}
	if err := opt.Apply(s.asm); err != nil {
		return template.Option{}, err
	}
	s.cycle = 0
	s.log.Debug("placed",
		zap.Stringer("type", opt.Type),
		zap.Stringer("pos", opt.Pos),
		zap.Int("size", s.asm.Len()))
	if s.Solved() {
		s.log.Info("solved", zap.Float64("energy", s.Energy()))
	}
	return opt, nil
}

// Remove deletes the subtree at pos. Removing the root clears everything
// but the root cell. A selection that disappears is cleared.
func (s *Session) Remove(pos lattice.Vec) {
	if !s.asm.Has(pos) {
		return
	}
	s.asm.Remove(pos)
	if s.hasSel && !s.asm.Has(s.selected) {
		s.Deselect()
	}
	s.log.Debug("removed", zap.Stringer("pos", pos), zap.Int("size", s.asm.Len()))
}

// Reset restarts from the template root.
func (s *Session) Reset() {
	s.asm = s.tmpl.Start()
	s.Deselect()
}

// Highlight returns the template cell that pos corresponds to.
func (s *Session) Highlight(pos lattice.Vec) (lattice.Vec, bool) {
	return s.tmpl.Locate(s.asm, pos)
}

// Energy scores the current assembly.
func (s *Session) Energy() float64 { return energy.Score(s.asm) }

// Complete reports whether the assembly has as many cells as the template.
func (s *Session) Complete() bool { return s.tmpl.Complete(s.asm) }

// Progress normalises the current energy against the template range.
func (s *Session) Progress() (float64, error) {
	return level.Progress(s.Energy(), s.tmpl.Range)
}

// Solved reports whether the level is won. A template without a usable
// range is never solved.
func (s *Session) Solved() bool {
	p, err := s.Progress()
	if err != nil {
		return false
	}
	return level.Solved(p, s.Complete())
}
