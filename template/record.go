package template

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/peptide/lattice"
	"github.com/katalvlaran/peptide/notation"
	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/unit"
)

// CellRecord is one shape cell in a record: a unit type (letter,
// abbreviation or name) and its child directions as letters, e.g. "UR".
type CellRecord struct {
	Type     string `yaml:"type"`
	Children string `yaml:"children,omitempty"`
}

// Record is the static, serialisable form of a template.
//
//	title: Salt Bridge
//	description: Keep the charges apart.
//	range: [-3, 7]
//	shape:
//	  "0,0": {type: R, children: R}
//	  "1,0": {type: D}
//
// The shape may be given as `notation:` text instead of a `shape:` map.
// A missing range means the template has not been solved yet.
type Record struct {
	ID          string                `yaml:"id,omitempty"`
	Title       string                `yaml:"title"`
	Description string                `yaml:"description"`
	Range       []float64             `yaml:"range,flow,omitempty"`
	Shape       map[string]CellRecord `yaml:"shape,omitempty"`
	Notation    string                `yaml:"notation,omitempty"`
}

// FromRecord converts and validates a decoded record.
func FromRecord(r Record) (Template, error) {
	shape, err := r.shape()
	if err != nil {
		return Template{}, fmt.Errorf("%w: %q: %w", ErrMalformedTemplate, r.Title, err)
	}

	t := Template{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Range:       UnknownRange(),
		Shape:       shape,
	}
	switch len(r.Range) {
	case 0:
	case 2:
		t.Range = Range{Min: r.Range[0], Max: r.Range[1]}
	default:
		return Template{}, fmt.Errorf("%w: %q: range needs 2 values, got %d", ErrMalformedTemplate, r.Title, len(r.Range))
	}
	if err := t.Validate(); err != nil {
		return Template{}, fmt.Errorf("%q: %w", r.Title, err)
	}
	return t, nil
}

func (r Record) shape() (*peptide.Peptide, error) {
	switch {
	case r.Notation != "" && len(r.Shape) > 0:
		return nil, ErrAmbiguousShape
	case r.Notation != "":
		return notation.Parse(r.Notation)
	}

	p := peptide.New()
	// sorted so the first reported error does not depend on map order
	for _, key := range slices.Sorted(maps.Keys(r.Shape)) {
		cell := r.Shape[key]
		pos, err := lattice.ParseVec(key)
		if err != nil {
			return nil, err
		}
		t, err := unit.Parse(cell.Type)
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", pos, err)
		}
		children, err := lattice.ParseBondSet(cell.Children)
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", pos, err)
		}
		if err := p.Insert(pos, peptide.Unit{Type: t, Children: children}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDuplicatePosition, pos)
		}
	}
	return p, nil
}

// ToRecord converts t to its serialisable form. Unknown ranges are omitted.
func ToRecord(t Template) Record {
	r := Record{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Shape:       make(map[string]CellRecord, t.Size()),
	}
	if t.Range.Valid() {
		r.Range = []float64{t.Range.Min, t.Range.Max}
	}
	if t.Shape != nil {
		t.Shape.Each(func(pos lattice.Vec, u peptide.Unit) {
			r.Shape[pos.String()] = CellRecord{
				Type:     string(u.Type.Letter()),
				Children: u.Children.String(),
			}
		})
	}
	return r
}

// Decode reads one YAML record from r and validates it.
func Decode(r io.Reader) (Template, error) {
	var rec Record
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return Template{}, fmt.Errorf("%w: %w", ErrMalformedTemplate, err)
	}
	return FromRecord(rec)
}

// Encode writes t to w as a YAML record.
func Encode(w io.Writer, t Template) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToRecord(t)); err != nil {
		return err
	}
	return enc.Close()
}
