package unit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownType indicates a letter or name that does not denote a unit type.
var ErrUnknownType = errors.New("unit: unknown type")

// Type is a unit variant. The zero value is Ala.
type Type uint8

const (
	Ala Type = iota // A
	Cys             // C
	Asp             // D
	Phe             // F
	Leu             // L
	Arg             // R

	numTypes
)

// All lists every type in catalog order.
var All = [numTypes]Type{Ala, Cys, Asp, Phe, Leu, Arg}

// Bond is one entry of an adjacency table: the bonus earned when a unit of
// type Partner sits next to this unit without a tree bond between them.
type Bond struct {
	Partner Type
	Bonus   int
}

// Properties are the catalog attributes of one unit type.
type Properties struct {
	Letter      byte
	Name        string
	Cost        int
	Charge      int
	Hydrophobic int // energy per exposed side
	Adjacency   []Bond
}

// Catalog is the fixed attribute table. Adjacency lists hold the non-bonded
// interactions only; a bonded neighbour never earns a bonus.
var Catalog = [numTypes]Properties{
	Ala: {
		Letter: 'A', Name: "Alanine", Cost: 2, Charge: 0, Hydrophobic: -1,
		Adjacency: []Bond{{Leu, -1}, {Phe, -1}, {Cys, -1}},
	},
	Cys: {
		Letter: 'C', Name: "Cysteine", Cost: 3, Charge: 0, Hydrophobic: -1,
		// disulfide bridge
		Adjacency: []Bond{{Cys, -15}, {Leu, -1}, {Phe, -1}, {Ala, -1}},
	},
	Asp: {
		Letter: 'D', Name: "Aspartate", Cost: 4, Charge: -1, Hydrophobic: 0,
		// salt bridge
		Adjacency: []Bond{{Arg, -10}},
	},
	Phe: {
		Letter: 'F', Name: "Phenylalanine", Cost: 5, Charge: 0, Hydrophobic: -3,
		// aromatic stacking
		Adjacency: []Bond{{Phe, -5}, {Leu, -1}, {Ala, -1}, {Cys, -1}},
	},
	Leu: {
		Letter: 'L', Name: "Leucine", Cost: 3, Charge: 0, Hydrophobic: -3,
		Adjacency: []Bond{{Ala, -1}, {Phe, -1}, {Cys, -1}},
	},
	Arg: {
		Letter: 'R', Name: "Arginine", Cost: 4, Charge: 1, Hydrophobic: 0,
		Adjacency: []Bond{{Asp, -10}},
	},
}

// Props returns the catalog entry of t.
func (t Type) Props() *Properties { return &Catalog[t%numTypes] }

// Letter returns the one-letter code of t.
func (t Type) Letter() byte { return t.Props().Letter }

// Name returns the full name of t.
func (t Type) Name() string { return t.Props().Name }

// Cost returns the intrinsic cost of t.
func (t Type) Cost() int { return t.Props().Cost }

// Charge returns the electric charge of t.
func (t Type) Charge() int { return t.Props().Charge }

// Hydrophobic returns the energy t contributes per exposed side.
func (t Type) Hydrophobic() int { return t.Props().Hydrophobic }

// Adjacency returns the non-bonded interaction table of t.
func (t Type) Adjacency() []Bond { return t.Props().Adjacency }

// Bonus returns the adjacency bonus between t and a non-bonded neighbour of
// type other, and whether t interacts with other at all.
func (t Type) Bonus(other Type) (int, bool) {
	for _, b := range t.Props().Adjacency {
		if b.Partner == other {
			return b.Bonus, true
		}
	}
	return 0, false
}

// String returns the three-letter abbreviation, e.g. "Arg".
func (t Type) String() string {
	if t >= numTypes {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return t.Name()[:3]
}

// Descriptor summarises the properties of t in a compact form: "+" or "-"
// for charged types, "δ" for hydrophobic ones, then the sorted letters of its
// interaction partners, joined by "∙". Arg reads "+∙D".
func (t Type) Descriptor() string {
	var parts []string
	switch c := t.Charge(); {
	case c > 0:
		parts = append(parts, "+")
	case c < 0:
		parts = append(parts, "-")
	}
	if t.Hydrophobic() < 0 {
		parts = append(parts, "δ")
	}
	if adj := t.Adjacency(); len(adj) > 0 {
		partners := make([]byte, 0, len(adj))
		for _, b := range adj {
			partners = append(partners, b.Partner.Letter())
		}
		sort.Slice(partners, func(i, j int) bool { return partners[i] < partners[j] })
		parts = append(parts, string(partners))
	}
	return strings.Join(parts, "∙")
}

// Parse resolves a one-letter code, a three-letter abbreviation or a full
// name, ignoring case.
func Parse(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for _, t := range All {
		p := t.Props()
		switch {
		case len(s) == 1 && strings.EqualFold(s, string(p.Letter)),
			strings.EqualFold(s, t.String()),
			strings.EqualFold(s, p.Name):
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}
