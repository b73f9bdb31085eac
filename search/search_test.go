package search_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/peptide/energy"
	"github.com/katalvlaran/peptide/notation"
	"github.com/katalvlaran/peptide/peptide"
	"github.com/katalvlaran/peptide/search"
	"github.com/katalvlaran/peptide/template"
)

const eps = 1e-9

func mustTemplate(t testing.TB, src string) template.Template {
	t.Helper()
	shape, err := notation.Parse(src)
	require.NoError(t, err)
	tmpl, err := template.New("test", "", shape)
	require.NoError(t, err)
	return tmpl
}

// TestSolve_SaltBridge: every placement of the Asp is a rotation of the
// same pair, so the range collapses to a point.
func TestSolve_SaltBridge(t *testing.T) {
	tmpl := mustTemplate(t, "R at (0,0) -> (R), D at (1,0)")

	res, err := search.Solve(tmpl)
	require.NoError(t, err)
	assert.Equal(t, search.Complete, res.Status)
	assert.InDelta(t, 7.0, res.Range.Min, eps)
	assert.InDelta(t, 7.0, res.Range.Max, eps)
	assert.Equal(t, 5, res.Explored)
	assert.Equal(t, 4, res.Completed)
}

// TestSolve_FourChain enumerates all 36 self-avoiding layouts of R─A─A─D.
// The 8 U-folds put D next to R; the rest keep them 3 apart.
func TestSolve_FourChain(t *testing.T) {
	tmpl := mustTemplate(t, "R at (0,0) -> (R), A at (1,0) -> (R), A at (2,0) -> (R), D at (3,0)")

	var energies []float64
	res, err := search.Solve(tmpl, search.WithOnComplete(func(p *peptide.Peptide, e float64) {
		assert.True(t, tmpl.Complete(p))
		assert.InDelta(t, energy.Score(p), e, eps)
		energies = append(energies, e)
	}))
	require.NoError(t, err)
	assert.Equal(t, search.Complete, res.Status)
	assert.Equal(t, 36, res.Completed)
	assert.Equal(t, 1+4+12+36, res.Explored)
	assert.InDelta(t, -3.0, res.Range.Min, eps)
	assert.InDelta(t, 23.0/3.0, res.Range.Max, eps)

	folds := 0
	for _, e := range energies {
		assert.GreaterOrEqual(t, e, res.Range.Min)
		assert.LessOrEqual(t, e, res.Range.Max)
		if math.Abs(e-res.Range.Min) < eps {
			folds++
		}
	}
	assert.Equal(t, 8, folds)
}

// TestSolve_IncludesTemplateShape: the template's own layout is always one
// of the enumerated assemblies.
func TestSolve_IncludesTemplateShape(t *testing.T) {
	tmpl := mustTemplate(t, `Cys at (0,0) -> (Right, Up), Phe at (0,1) -> (Up), Leu at (0,2),
		Cys at (1,0) -> (Right), Ala at (2,0)`)

	found := false
	res, err := search.Solve(tmpl, search.WithOnComplete(func(p *peptide.Peptide, _ float64) {
		if p.Equal(tmpl.Shape) {
			found = true
		}
	}))
	require.NoError(t, err)
	assert.True(t, found)
	own := energy.Score(tmpl.Shape)
	assert.GreaterOrEqual(t, own, res.Range.Min)
	assert.LessOrEqual(t, own, res.Range.Max)
}

func TestSolve_NodeBudget(t *testing.T) {
	tmpl := mustTemplate(t, "R at (0,0) -> (R), A at (1,0) -> (R), A at (2,0) -> (R), D at (3,0)")

	t.Run("Aborted", func(t *testing.T) {
		res, err := search.Solve(tmpl, search.WithMaxNodes(3))
		require.ErrorIs(t, err, search.ErrSearchAborted)
		assert.ErrorIs(t, err, search.ErrNodeLimit)
		assert.Equal(t, search.Aborted, res.Status)
		assert.Equal(t, 3, res.Explored)
		assert.Zero(t, res.Completed)
		assert.False(t, res.Range.Valid())
	})

	t.Run("Partial", func(t *testing.T) {
		res, err := search.Solve(tmpl, search.WithMaxNodes(20))
		require.ErrorIs(t, err, search.ErrSearchAborted)
		assert.Equal(t, search.Partial, res.Status)
		assert.Equal(t, 20, res.Explored)
		assert.Equal(t, 3, res.Completed)
		assert.True(t, res.Range.Valid())
	})
}

func TestSolve_Cancelled(t *testing.T) {
	tmpl := mustTemplate(t, "R at (0,0) -> (R), D at (1,0)")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := search.Solve(tmpl, search.WithContext(ctx))
	require.ErrorIs(t, err, search.ErrSearchAborted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, search.Aborted, res.Status)
	assert.Zero(t, res.Explored)
}

func TestSolve_DeadlineExceeded(t *testing.T) {
	tmpl := mustTemplate(t, "R at (0,0) -> (R), D at (1,0)")
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := search.Solve(tmpl, search.WithContext(ctx))
	require.ErrorIs(t, err, search.ErrSearchAborted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSolve_InvalidInput(t *testing.T) {
	tmpl := mustTemplate(t, "R at (0,0)")

	_, err := search.Solve(tmpl, search.WithMaxNodes(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	_, err = search.Solve(tmpl, search.WithTimeLimit(-time.Second))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	_, err = search.Solve(tmpl, search.WithProgressEvery(0))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Solve(template.Template{})
	assert.ErrorIs(t, err, template.ErrMalformedTemplate)
	assert.False(t, errors.Is(err, search.ErrSearchAborted))
}

// TestSolve_SingleUnit: the start assembly is already complete.
func TestSolve_SingleUnit(t *testing.T) {
	tmpl := mustTemplate(t, "Leu at (0,0)")
	res, err := search.Solve(tmpl)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Completed)
	assert.InDelta(t, 3.0-12.0, res.Range.Min, eps)
	assert.Equal(t, res.Range.Min, res.Range.Max)
}

func TestSolve_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tmpl := mustTemplate(t, "R at (0,0) -> (R), A at (1,0) -> (R), D at (2,0)")

	_, err := search.Solve(tmpl, search.WithLogger(zap.New(core)), search.WithProgressEvery(4))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("search complete").Len())
	assert.NotZero(t, logs.FilterMessage("search progress").Len())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "complete", search.Complete.String())
	assert.Equal(t, "partial", search.Partial.String())
	assert.Equal(t, "Status(9)", search.Status(9).String())
}

// TestSolve_BudgetCoversExactlyTheSpace: the fork template has 11 distinct
// assemblies and the queue ends with duplicates; a budget of 11 must still
// finish the enumeration.
func TestSolve_BudgetCoversExactlyTheSpace(t *testing.T) {
	tmpl := mustTemplate(t, "Arg at (0,0) -> (Left, Right), Leu at (-1,0), Leu at (1,0)")

	res, err := search.Solve(tmpl, search.WithMaxNodes(11))
	require.NoError(t, err)
	assert.Equal(t, search.Complete, res.Status)
	assert.Equal(t, 11, res.Explored)
	assert.Equal(t, 6, res.Completed)

	res, err = search.Solve(tmpl, search.WithMaxNodes(10))
	require.ErrorIs(t, err, search.ErrNodeLimit)
	assert.Equal(t, search.Partial, res.Status)
	assert.Equal(t, 10, res.Explored)
}

// TestSolve_SiblingAliasing: two Arg children with different subtrees share
// the path [Arg]; every player Arg resolves to the first one in direction
// order (Down), so the Phe branch under the Right Arg is never offered.
func TestSolve_SiblingAliasing(t *testing.T) {
	tmpl := mustTemplate(t, `Arg at (0,0) -> (Down, Right), Arg at (0,-1) -> (Down), Asp at (0,-2),
		Arg at (1,0) -> (Up, Right), Phe at (1,1), Phe at (2,0)`)

	res, err := search.Solve(tmpl)
	require.ErrorIs(t, err, search.ErrUnsolvable)
	assert.Equal(t, search.Unsolvable, res.Status)
	assert.NotZero(t, res.Explored)
	assert.Zero(t, res.Completed)
	assert.False(t, res.Range.Valid())
}
