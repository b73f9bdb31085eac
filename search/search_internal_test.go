package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peptide/lattice"
	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/template"
	"github.com/katalvlaran/peptide/unit"
)

// TestEngine_Unsolvable asks for more cells than the template can ever
// offer; the queue drains without a complete assembly.
func TestEngine_Unsolvable(t *testing.T) {
	shape := peptide.NewRoot(unit.Arg)
	_, err := shape.Attach(lattice.Origin, lattice.Right, unit.Asp)
	require.NoError(t, err)
	tmpl, err := template.New("pair", "", shape)
	require.NoError(t, err)

	e := newEngine(tmpl, DefaultOptions())
	e.target = tmpl.Size() + 1
	err = e.run()
	require.ErrorIs(t, err, ErrUnsolvable)
	assert.Equal(t, Unsolvable, e.res.Status)
	assert.Equal(t, 5, e.res.Explored)
	assert.False(t, e.res.Range.Valid())
}

// TestEngine_DedupOnPop: duplicates reach the queue but are expanded once.
func TestEngine_DedupOnPop(t *testing.T) {
	// two Leu under the root can be placed in either order
	shape := peptide.NewRoot(unit.Arg)
	_, err := shape.Attach(lattice.Origin, lattice.Left, unit.Leu)
	require.NoError(t, err)
	_, err = shape.Attach(lattice.Origin, lattice.Right, unit.Leu)
	require.NoError(t, err)
	tmpl, err := template.New("fork", "", shape)
	require.NoError(t, err)

	e := newEngine(tmpl, DefaultOptions())
	require.NoError(t, e.run())
	// 1 root + 4 single Leu + C(4,2) pairs
	assert.Equal(t, 1+4+6, e.res.Explored)
	assert.Equal(t, 6, e.res.Completed)
	assert.Len(t, e.seen, e.res.Explored)
}
