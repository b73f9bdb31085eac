package energy

import (
	"github.com/katalvlaran/peptide/lattice"
	"github.com/katalvlaran/peptide/peptide"
)

// Terms is the energy of a peptide split by contribution.
type Terms struct {
	Cost          float64
	Hydrophobic   float64
	Adjacency     float64
	Electrostatic float64
}

// Total returns the sum of all terms.
func (t Terms) Total() float64 {
	return t.Cost + t.Hydrophobic + t.Adjacency + t.Electrostatic
}

// Contact is a non-bonded pair of lattice neighbours whose types interact.
// A precedes B in canonical order.
type Contact struct {
	A, B  lattice.Vec
	Bonus int
}

// cell is a snapshot of one occupied position, taken once per call so the
// pair loop does not go back through the map.
type cell struct {
	pos  lattice.Vec
	unit peptide.Unit
}

func snapshot(p *peptide.Peptide) []cell {
	cells := make([]cell, 0, p.Len())
	p.Each(func(pos lattice.Vec, u peptide.Unit) {
		cells = append(cells, cell{pos: pos, unit: u})
	})
	return cells
}

// bonded reports whether the neighbour of u in direction d is tied to it by
// a tree bond in either direction.
func bonded(u, neighbour peptide.Unit, d lattice.Direction) bool {
	return u.Children.Contains(d) || neighbour.Children.Contains(d.Opposite())
}

// Score returns the energy of p. It is exactly Breakdown(p).Total().
func Score(p *peptide.Peptide) float64 {
	return Breakdown(p).Total()
}

// Breakdown returns the energy of p split into its four terms.
func Breakdown(p *peptide.Peptide) Terms {
	cells := snapshot(p)
	var terms Terms
	for i, c := range cells {
		t := c.unit.Type
		terms.Cost += float64(t.Cost())

		covered := 0
		for _, d := range lattice.All {
			n, ok := p.Get(c.pos.Step(d))
			if !ok {
				continue
			}
			covered++
			if bonded(c.unit, n, d) {
				continue
			}
			if bonus, ok := t.Bonus(n.Type); ok {
				terms.Adjacency += float64(bonus) / 2
			}
		}
		terms.Hydrophobic += float64(t.Hydrophobic() * (4 - covered))

		for _, o := range cells[i+1:] {
			q := t.Charge() * o.unit.Type.Charge()
			if q != 0 {
				terms.Electrostatic += float64(q) / float64(c.pos.Manhattan(o.pos))
			}
		}
	}
	return terms
}

// Interactions lists every non-bonded neighbour pair that earns an
// adjacency bonus, each pair once, in canonical order of A then direction.
func Interactions(p *peptide.Peptide) []Contact {
	var out []Contact
	p.Each(func(pos lattice.Vec, u peptide.Unit) {
		for _, d := range lattice.All {
			next := pos.Step(d)
			if !pos.Less(next) {
				continue
			}
			n, ok := p.Get(next)
			if !ok || bonded(u, n, d) {
				continue
			}
			if bonus, ok := u.Type.Bonus(n.Type); ok {
				out = append(out, Contact{A: pos, B: next, Bonus: bonus})
			}
		}
	})
	return out
}
