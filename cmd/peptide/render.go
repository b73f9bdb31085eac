package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/peptide/lattice"
	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/unit"
)

// palette colours units by their dominant property.
type palette struct {
	positive, negative, hydrophobic, neutral, bond lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		positive:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		negative:    r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		hydrophobic: r.NewStyle().Foreground(lipgloss.Color("11")),
		neutral:     r.NewStyle().Foreground(lipgloss.Color("7")),
		bond:        r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (p palette) unit(t unit.Type) lipgloss.Style {
	switch {
	case t.Charge() > 0:
		return p.positive
	case t.Charge() < 0:
		return p.negative
	case t.Hydrophobic() <= -3:
		return p.hydrophobic
	default:
		return p.neutral
	}
}

// render draws p on a character grid, y up: units as letters, bonds as
// ─ and │ between them, and · for empty lattice points inside the bounds.
func render(p *peptide.Peptide, r *lipgloss.Renderer) string {
	if p.Len() == 0 {
		return ""
	}
	pal := newPalette(r)
	lo, hi := p.Bounds()
	w, h := 2*(hi.X-lo.X)+1, 2*(hi.Y-lo.Y)+1

	grid := make([][]string, h)
	for row := range grid {
		grid[row] = make([]string, w)
		for col := range grid[row] {
			grid[row][col] = " "
			if row%2 == 0 && col%2 == 0 {
				grid[row][col] = pal.bond.Render("·")
			}
		}
	}
	at := func(v lattice.Vec) (row, col int) {
		return 2 * (hi.Y - v.Y), 2 * (v.X - lo.X)
	}

	p.Each(func(pos lattice.Vec, u peptide.Unit) {
		row, col := at(pos)
		grid[row][col] = pal.unit(u.Type).Render(string(u.Type.Letter()))
		for _, d := range u.Children.Dirs() {
			dr, dc := at(pos.Step(d))
			glyph := "│"
			if d.Horizontal() {
				glyph = "─"
			}
			grid[(row+dr)/2][(col+dc)/2] = pal.bond.Render(glyph)
		}
	})

	var b strings.Builder
	for _, line := range grid {
		b.WriteString(strings.TrimRight(strings.Join(line, ""), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
