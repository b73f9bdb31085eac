package level

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/peptide/search"
	"github.com/katalvlaran/peptide/template"
)

var (
	// ErrNoLevels indicates a level file with an empty list.
	ErrNoLevels = errors.New("level: no levels")
	// ErrIndex indicates a level index outside the set.
	ErrIndex = errors.New("level: index out of range")
)

//go:embed campaign.yaml
var campaign []byte

// file is the on-disk layout.
type file struct {
	Levels []template.Record `yaml:"levels"`
}

// Set is an ordered, validated list of templates.
type Set struct {
	levels []template.Template
}

// NewSet wraps already validated templates.
func NewSet(ts ...template.Template) *Set {
	return &Set{levels: append([]template.Template(nil), ts...)}
}

// Load reads a level file from r.
func Load(r io.Reader) (*Set, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("level: %w: %w", template.ErrMalformedTemplate, err)
	}
	if len(f.Levels) == 0 {
		return nil, ErrNoLevels
	}
	s := &Set{levels: make([]template.Template, 0, len(f.Levels))}
	for i, rec := range f.Levels {
		t, err := template.FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		s.levels = append(s.levels, t)
	}
	return s, nil
}

// LoadFile reads a level file from disk.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Campaign returns a fresh copy of the built-in levels.
func Campaign() (*Set, error) {
	return Load(bytes.NewReader(campaign))
}

// Len returns the number of levels.
func (s *Set) Len() int { return len(s.levels) }

// Get returns level i. The template's shape is shared with the set; clone
// it before mutating.
func (s *Set) Get(i int) (template.Template, error) {
	if i < 0 || i >= len(s.levels) {
		return template.Template{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, i, len(s.levels))
	}
	return s.levels[i], nil
}

// All returns the levels in order.
func (s *Set) All() []template.Template {
	return append([]template.Template(nil), s.levels...)
}

// Resolve runs search.Solve for every level whose range is unknown and
// stores the result. It stops at the first search error and reports how
// many ranges were filled in before it.
func (s *Set) Resolve(log *zap.Logger, opts ...search.Option) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	n := 0
	for i := range s.levels {
		t := &s.levels[i]
		if t.Range.Valid() {
			continue
		}
		res, err := search.Solve(*t, append([]search.Option{search.WithLogger(log)}, opts...)...)
		if err != nil {
			return n, fmt.Errorf("level %d %q: %w", i, t.Title, err)
		}
		t.Range = res.Range
		n++
		log.Info("level resolved",
			zap.Int("level", i),
			zap.String("title", t.Title),
			zap.Float64("min", t.Range.Min),
			zap.Float64("max", t.Range.Max))
	}
	return n, nil
}

// Write encodes templates as a level file.
func Write(w io.Writer, ts []template.Template) error {
	f := file{Levels: make([]template.Record, len(ts))}
	for i, t := range ts {
		f.Levels[i] = template.ToRecord(t)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	return enc.Close()
}
