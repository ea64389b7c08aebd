package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/c-bata/go-prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/internal/console"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestRun_Stdin(t *testing.T) {
	script := "vertex A\nvertex B\n# weights are integers\nedge A B 5\nmatrix\n"
	out, _, err := execute(t, script, "run")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(out, "Adjacency matrix:\n  A B \nA 0 5 \nB 5 0 \n"), out)
}

func TestRun_StopsAtFirstError(t *testing.T) {
	out, _, err := execute(t, "vertex A\nedge A B 1\nvertex C\n", "run")
	require.ErrorIs(t, err, console.ErrUsage)
	assert.Contains(t, err.Error(), "line 2")
	assert.NotContains(t, out, "Added vertex: C")
}

func TestRun_ScriptFileAndGraphFile(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "g.toml")
	require.NoError(t, os.WriteFile(graph, []byte(`
vertices = ["A", "B", "C"]

[[edges]]
from = "A"
to = "B"
weight = 1

[[edges]]
from = "B"
to = "C"
weight = 2
`), 0o600))
	script := filepath.Join(dir, "s.wg")
	require.NoError(t, os.WriteFile(script, []byte("bellman A\n"), 0o600))

	out, _, err := execute(t, "", "run", "--graph", graph, script)
	require.NoError(t, err)
	assert.Equal(t, "Shortest paths (Bellman-Ford) from A:\nTo A: 0\nTo B: 1\nTo C: 3\n", out)
}

func TestRun_XXHash(t *testing.T) {
	out, _, err := execute(t, "vertex A\nvertex B\nedge A B 2\ninfo\n", "run", "--hash", "xxhash", "--buckets", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Edges: 1\n")
}

func TestRun_BadFlags(t *testing.T) {
	_, _, err := execute(t, "", "run", "--hash", "md5")
	require.ErrorContains(t, err, "unknown hash")

	_, _, err = execute(t, "", "run", "--buckets", "0")
	require.ErrorIs(t, err, core.ErrOptionViolation)

	_, _, err = execute(t, "", "run", "--graph", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestRun_VerboseLogsMutations(t *testing.T) {
	_, stderr, err := execute(t, "vertex A\n", "run", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "add vertex")

	_, stderr, err = execute(t, "vertex A\n", "run")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "add vertex")
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := newRootCmd(strings.NewReader("vertex A\n"), &bytes.Buffer{}, &bytes.Buffer{})
	root.SetArgs([]string{"run"})
	require.ErrorIs(t, root.ExecuteContext(ctx), context.Canceled)
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
}

func TestIsExit(t *testing.T) {
	assert.True(t, isExit("exit", true))
	assert.True(t, isExit(" QUIT ", true))
	assert.False(t, isExit("exit", false))
	assert.False(t, isExit("info", true))
}

func TestCompleter(t *testing.T) {
	g := core.MustNewGraph[string]()
	require.NoError(t, g.AddEdge("Alpha", "Beta", 1))
	require.NoError(t, g.AddVertex("Apex"))
	complete := completer(g)

	texts := func(in string) []string {
		buf := prompt.NewBuffer()
		buf.InsertText(in, false, true)
		var out []string
		for _, s := range complete(*buf.Document()) {
			out = append(out, s.Text)
		}
		return out
	}

	assert.Empty(t, texts(""))
	assert.ElementsMatch(t, []string{"rmvertex", "rmedge"}, texts("rm"))
	assert.ElementsMatch(t, []string{"Alpha", "Apex"}, texts("dfs A"))
	assert.ElementsMatch(t, []string{"Alpha", "Apex", "Beta"}, texts("edge Beta "))
}
