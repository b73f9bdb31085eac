package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/peptide/lattice"
	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/unit"
)

var (
	// ErrSyntax wraps parser errors.
	ErrSyntax = errors.New("notation: syntax error")
	// ErrDuplicatePosition indicates two cells at the same position.
	ErrDuplicatePosition = errors.New("notation: duplicate position")
)

type shapeAST struct {
	Cells []*cellAST `parser:"@@ ( ',' @@ )*"`
}

type cellAST struct {
	Pos      lexer.Position
	Type     string   `parser:"@Ident 'at'"`
	X        int      `parser:"'(' @Int ','"`
	Y        int      `parser:"@Int ')'"`
	Children []string `parser:"( '->' '(' ( @Ident ( ',' @Ident )* )? ')' )?"`
}

var shapeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "whitespace", Pattern: `\s+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[(),]`},
})

var parser = participle.MustBuild[shapeAST](
	participle.Lexer(shapeLexer),
	participle.Elide("whitespace"),
	participle.UseLookahead(2),
)

// Parse reads a shape. Positions must be unique; unit types and directions
// must be known.
func Parse(src string) (*peptide.Peptide, error) {
	ast, err := parser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if len(ast.Cells) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrSyntax)
	}
	p := peptide.New()
	for _, c := range ast.Cells {
		t, err := unit.Parse(c.Type)
		if err != nil {
			return nil, fmt.Errorf("notation: %s: %w", c.Pos, err)
		}
		var bonds lattice.BondSet
		for _, name := range c.Children {
			d, err := lattice.ParseDirection(name)
			if err != nil {
				return nil, fmt.Errorf("notation: %s: %w", c.Pos, err)
			}
			if bonds.Contains(d) {
				return nil, fmt.Errorf("notation: %s: %w: %v", c.Pos, lattice.ErrDuplicateDirection, d)
			}
			bonds = bonds.Set(d)
		}
		pos := lattice.V(c.X, c.Y)
		if err := p.Insert(pos, peptide.Unit{Type: t, Children: bonds}); err != nil {
			return nil, fmt.Errorf("%w: %v at %s", ErrDuplicatePosition, pos, c.Pos)
		}
	}
	return p, nil
}

// Format writes p in canonical cell order, in the form Parse accepts.
func Format(p *peptide.Peptide) string {
	cells := make([]string, 0, p.Len())
	p.Each(func(pos lattice.Vec, u peptide.Unit) {
		var b strings.Builder
		fmt.Fprintf(&b, "%s at (%d, %d)", u.Type, pos.X, pos.Y)
		if !u.Children.IsEmpty() {
			dirs := u.Children.Dirs()
			names := make([]string, len(dirs))
			for i, d := range dirs {
				names[i] = d.String()
			}
			fmt.Fprintf(&b, " -> (%s)", strings.Join(names, ", "))
		}
		cells = append(cells, b.String())
	})
	return strings.Join(cells, ", ")
}
