package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peptide/level"
	"github.com/katalvlaran/peptide/notation"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

// run executes the CLI with a config that keeps generation small.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "peptide.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
generate:
  min_growth: 2
  max_growth: 3
  workers: 2
logging:
  level: error
  format: json
`), 0o644))

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"Pair", "R at (0,0) -> (R), D at (1,0)", "R─D\n"},
		{"UFold", "R at (0,0) -> (U), A at (0,1) -> (R), A at (1,1) -> (D), D at (1,0)", "A─A\n│ │\nR D\n"},
		{"Corner", "R at (0,0) -> (R), A at (1,0) -> (U), L at (1,1)", "· L\n  │\nR─A\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := notation.Parse(tc.src)
			require.NoError(t, err)
			r := lipgloss.NewRenderer(&bytes.Buffer{})
			assert.Equal(t, tc.want, plain(render(p, r)))
		})
	}
}

func TestLevelsCmd(t *testing.T) {
	out, err := run(t, "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "Salt Bridge")
	assert.Contains(t, out, "unsolved")

	out, err = run(t, "levels", "../../level/testdata/levels.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "[7.000, 7.000]")
}

func TestSolveCmd(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "solved.yaml")
	out, err := run(t, "solve", "--level", "1", "-o", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Hairpin")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "range [-3.000, 7.667]")

	set, err := level.LoadFile(dest)
	require.NoError(t, err)
	hairpin, err := set.Get(1)
	require.NoError(t, err)
	assert.True(t, hairpin.Range.Valid())
	other, err := set.Get(0)
	require.NoError(t, err)
	assert.False(t, other.Range.Valid())

	_, err = run(t, "solve", "--level", "1", "--max-nodes", "2")
	assert.Error(t, err)

	_, err = run(t, "solve", "--level", "99")
	assert.ErrorIs(t, err, level.ErrIndex)
}

func TestShowCmd(t *testing.T) {
	out, err := run(t, "show", "--notation", "Arg at (0, 0) -> (Right), Asp at (1, 0)")
	require.NoError(t, err)
	out = plain(out)
	assert.Contains(t, out, "R─D")
	assert.Regexp(t, `total\s+7\.000`, out)

	out, err = run(t, "show", "../../level/testdata/levels.yaml", "--level", "1")
	require.NoError(t, err)
	assert.Regexp(t, `progress -?0\.0%`, plain(out))

	_, err = run(t, "show", "--notation", "Arg at")
	assert.Error(t, err)
}

func TestGenerateCmd(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "random.yaml")
	_, err := run(t, "generate", "--seed", "5", "-n", "3", "-o", dest)
	require.NoError(t, err)

	set, err := level.LoadFile(dest)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())
	for _, tmpl := range set.All() {
		assert.True(t, tmpl.Range.Valid())
		assert.NotEmpty(t, tmpl.ID)
	}

	_, err = run(t, "generate", "-n", "0")
	assert.Error(t, err)
}

func TestBadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "peptide.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("generate:\n  workers: 0\n"), 0o644))
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "levels"})
	assert.Error(t, cmd.Execute())
}
